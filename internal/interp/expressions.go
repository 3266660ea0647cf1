package interp

import (
	"github.com/colecarley/bird-lang-sub000/internal/ast"
)

func (in *Interpreter) eval(expr ast.Expression) (Value, error) {
	switch e := expr.(type) {
	case *ast.Identifier:
		b, _ := in.values.Get(e.Value)
		return b.value, nil

	case *ast.IntegerLiteral:
		return IntValue(e.Value), nil

	case *ast.FloatLiteral:
		return FloatValue(e.Value), nil

	case *ast.StringLiteral:
		return StrValue(e.Value), nil

	case *ast.BoolLiteral:
		return BoolValue(e.Value), nil

	case *ast.Unary:
		operand, err := in.eval(e.Operand)
		if err != nil {
			return Value{}, err
		}
		return evalUnary(e.Operator, operand), nil

	case *ast.Binary:
		left, err := in.eval(e.Left)
		if err != nil {
			return Value{}, err
		}
		right, err := in.eval(e.Right)
		if err != nil {
			return Value{}, err
		}
		return evalBinary(e.Operator, left, right, e.Pos())

	case *ast.Ternary:
		cond, err := in.eval(e.Cond)
		if err != nil {
			return Value{}, err
		}
		if cond.B {
			return in.eval(e.Then)
		}
		return in.eval(e.Else)

	case *ast.Assign:
		return in.evalAssign(e)

	case *ast.Call:
		return in.evalCall(e)
	}

	return Value{}, nil
}

func (in *Interpreter) evalAssign(e *ast.Assign) (Value, error) {
	var result Value

	if e.Operator == "=" {
		v, err := in.eval(e.Value)
		if err != nil {
			return Value{}, err
		}
		result = v
	} else {
		current, _ := in.values.Get(e.Target.Value)
		rhs, err := in.eval(e.Value)
		if err != nil {
			return Value{}, err
		}
		op := e.Operator[:len(e.Operator)-1] // strip trailing '='
		v, err := evalBinary(op, current.value, rhs, e.Pos())
		if err != nil {
			return Value{}, err
		}
		result = v
	}

	current, _ := in.values.Get(e.Target.Value)
	in.values.Set(e.Target.Value, binding{value: result, mutable: current.mutable})
	return result, nil
}

func (in *Interpreter) evalCall(e *ast.Call) (Value, error) {
	fn, _ := in.callables.Get(e.Callee.Value)

	args := make([]Value, len(e.Args))
	for i, argExpr := range e.Args {
		v, err := in.eval(argExpr)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}

	in.pushScope()
	for i, param := range fn.Params {
		in.values.Declare(param.Name.Value, binding{value: args[i], mutable: true})
	}

	sig, err := in.execBlockBody(fn.Body.Stmts)
	in.popScope()
	if err != nil {
		return Value{}, err
	}

	if sig.kind == sigReturn && sig.hasValue {
		return sig.value, nil
	}
	return Value{}, nil
}
