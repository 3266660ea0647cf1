package typecheck

import (
	"strings"

	"github.com/colecarley/bird-lang-sub000/internal/ast"
	"github.com/colecarley/bird-lang-sub000/internal/types"
)

// checkExpression infers and annotates expr's type, bottom-up.
func (c *Checker) checkExpression(expr ast.Expression) types.Type {
	var t types.Type

	switch e := expr.(type) {
	case *ast.Identifier:
		info, ok := c.values.Get(e.Value)
		if !ok {
			t = types.Error
		} else {
			t = info.typ
		}

	case *ast.IntegerLiteral:
		t = types.Int

	case *ast.FloatLiteral:
		t = types.Float

	case *ast.StringLiteral:
		t = types.Str

	case *ast.BoolLiteral:
		t = types.Bool

	case *ast.Unary:
		operand := c.checkExpression(e.Operand)
		if operand.IsNumeric() {
			t = operand
		} else if operand == types.Error {
			t = types.Error
		} else {
			c.errorf(e.Pos(), "operator %q requires a numeric operand, got %s", e.Operator, operand)
			t = types.Error
		}

	case *ast.Binary:
		left := c.checkExpression(e.Left)
		right := c.checkExpression(e.Right)
		res, ok := c.binaryResult(e.Operator, left, right)
		if !ok {
			c.errorf(e.Pos(), "invalid operand types %s and %s for operator %q", left, right, e.Operator)
			res = types.Error
		}
		t = res

	case *ast.Ternary:
		c.checkCondition(e.Cond, "ternary")
		thenType := c.checkExpression(e.Then)
		elseType := c.checkExpression(e.Else)
		if thenType == types.Error || elseType == types.Error {
			t = types.Error
		} else if thenType.Equal(elseType) {
			t = thenType
		} else {
			c.errorf(e.Pos(), "ternary branches have mismatched types %s and %s", thenType, elseType)
			t = types.Error
		}

	case *ast.Assign:
		t = c.checkAssign(e)

	case *ast.Call:
		t = c.checkCall(e)

	default:
		t = types.Error
	}

	expr.SetType(t)
	return t
}

func (c *Checker) checkAssign(e *ast.Assign) types.Type {
	info, ok := c.values.Get(e.Target.Value)
	if !ok {
		c.checkExpression(e.Value)
		return types.Error
	}

	valueType := c.checkExpression(e.Value)

	if e.Operator == "=" {
		if assignable(info.typ, valueType) {
			return info.typ
		}
		if info.typ == types.Error || valueType == types.Error {
			return types.Error
		}
		c.errorf(e.Pos(), "cannot assign %s to %q of type %s", valueType, e.Target.Value, info.typ)
		return types.Error
	}

	baseOp := strings.TrimSuffix(e.Operator, "=")
	res, ok := c.binaryResult(baseOp, info.typ, valueType)
	if !ok {
		c.errorf(e.Pos(), "invalid operand types %s and %s for operator %q", info.typ, valueType, baseOp)
		return types.Error
	}
	return res
}

func (c *Checker) checkCall(e *ast.Call) types.Type {
	sig, ok := c.callables.Get(e.Callee.Value)
	if !ok {
		for _, arg := range e.Args {
			c.checkExpression(arg)
		}
		return types.Error
	}

	for i, arg := range e.Args {
		argType := c.checkExpression(arg)
		if i >= len(sig.Params) {
			continue // arity mismatch already reported by the semantic analyzer
		}
		if !assignable(sig.Params[i], argType) {
			c.errorf(arg.Pos(), "argument %d to %q: expected %s, got %s", i+1, e.Callee.Value, sig.Params[i], argType)
		}
	}

	return sig.Result
}
