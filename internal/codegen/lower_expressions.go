package codegen

import (
	"fmt"

	"github.com/colecarley/bird-lang-sub000/internal/ast"
	"github.com/colecarley/bird-lang-sub000/internal/types"
)

// lowerExpr emits one expression's bytecode and returns the Bird type the
// checker assigned it (so callers can decide whether a conversion or a
// print/drop dispatch is needed).
func (f *fnCtx) lowerExpr(expr ast.Expression) (types.Type, error) {
	switch e := expr.(type) {
	case *ast.Identifier:
		slot, _ := f.scope.Get(e.Value)
		f.emitOp(opLocalGet)
		f.emitU32(slot.index)
		return slot.typ, nil

	case *ast.IntegerLiteral:
		f.emitOp(opI32Const)
		f.emitI64(e.Value)
		return types.Int, nil

	case *ast.FloatLiteral:
		f.emitOp(opF64Const)
		f.emitF64(e.Value)
		return types.Float, nil

	case *ast.BoolLiteral:
		f.emitOp(opI32Const)
		if e.Value {
			f.emitI64(1)
		} else {
			f.emitI64(0)
		}
		return types.Bool, nil

	case *ast.StringLiteral:
		offset := f.lw.allocString(e.Value)
		f.emitOp(opI32Const)
		f.emitI64(int64(offset))
		return types.Str, nil

	case *ast.Unary:
		return f.lowerUnary(e)

	case *ast.Binary:
		return f.lowerBinary(e)

	case *ast.Ternary:
		return f.lowerTernary(e)

	case *ast.Assign:
		return f.lowerAssign(e)

	case *ast.Call:
		return f.lowerCall(e)
	}
	return types.Error, fmt.Errorf("codegen: unsupported expression %T", expr)
}

// allocString appends a fresh, NUL-terminated data segment for value and
// returns its offset. Every occurrence gets its own segment, matching the
// reference code generator's scheme — no interning.
func (lw *Lowerer) allocString(value string) uint32 {
	offset := lw.dataOffset
	bytes := append([]byte(value), 0)
	lw.data = append(lw.data, DataSegment{Offset: offset, Bytes: bytes})
	lw.dataOffset += uint32(len(bytes))
	return offset
}

func (f *fnCtx) lowerUnary(e *ast.Unary) (types.Type, error) {
	operandType := e.Operand.GetType()
	if operandType.Equal(types.Float) {
		if _, err := f.lowerExpr(e.Operand); err != nil {
			return types.Error, err
		}
		f.emitOp(opF64Neg)
		return types.Float, nil
	}

	f.emitOp(opI32Const)
	f.emitI64(0)
	if _, err := f.lowerExpr(e.Operand); err != nil {
		return types.Error, err
	}
	f.emitOp(opI32Sub)
	return types.Int, nil
}

func isArithmeticOp(op string) bool {
	switch op {
	case "+", "-", "*", "/":
		return true
	}
	return false
}

func (f *fnCtx) lowerBinary(e *ast.Binary) (types.Type, error) {
	lt, rt := e.Left.GetType(), e.Right.GetType()
	flag := lt.Equal(types.Float) || rt.Equal(types.Float)

	if e.Operator == "+" && lt.Equal(types.Str) && rt.Equal(types.Str) {
		return types.Error, &LowerError{
			Message: "string concatenation is not supported by the WebAssembly lowerer",
			Pos:     e.Pos(),
		}
	}
	if e.Operator == "%" && flag {
		return types.Error, &LowerError{
			Message: "'%' on float operands is not supported by the WebAssembly lowerer",
			Pos:     e.Pos(),
		}
	}

	if _, err := f.lowerExpr(e.Left); err != nil {
		return types.Error, err
	}
	f.convertOperand(lt, flag)

	if _, err := f.lowerExpr(e.Right); err != nil {
		return types.Error, err
	}
	f.convertOperand(rt, flag)

	if err := f.emitBinaryOpcode(e.Operator, flag); err != nil {
		return types.Error, &LowerError{Message: err.Error(), Pos: e.Pos()}
	}

	result := e.GetType()
	if isArithmeticOp(e.Operator) {
		from := types.Int
		if flag {
			from = types.Float
		}
		f.emitConversion(from, result)
	}
	return result, nil
}

// convertOperand converts an Int-tagged operand to Float64 when the other
// side of the binary expression is Float — the lowerer's own mixing rule,
// distinct from (and applied before) the type checker's static asymmetric
// result tagging.
func (f *fnCtx) convertOperand(t types.Type, flag bool) {
	if flag && t.Equal(types.Int) {
		f.emitOp(opF64ConvertI32S)
	}
}

func (f *fnCtx) emitBinaryOpcode(op string, flag bool) error {
	if flag {
		switch op {
		case "+":
			f.emitOp(opF64Add)
		case "-":
			f.emitOp(opF64Sub)
		case "*":
			f.emitOp(opF64Mul)
		case "/":
			f.emitOp(opF64Div)
		case "==":
			f.emitOp(opF64Eq)
		case "!=":
			f.emitOp(opF64Ne)
		case "<":
			f.emitOp(opF64Lt)
		case "<=":
			f.emitOp(opF64Le)
		case ">":
			f.emitOp(opF64Gt)
		case ">=":
			f.emitOp(opF64Ge)
		default:
			return fmt.Errorf("unsupported float operator %q", op)
		}
		return nil
	}

	switch op {
	case "+":
		f.emitOp(opI32Add)
	case "-":
		f.emitOp(opI32Sub)
	case "*":
		f.emitOp(opI32Mul)
	case "/":
		f.emitOp(opI32DivS)
	case "%":
		f.emitOp(opI32RemS)
	case "==":
		f.emitOp(opI32Eq)
	case "!=":
		f.emitOp(opI32Ne)
	case "<":
		f.emitOp(opI32LtS)
	case "<=":
		f.emitOp(opI32LeS)
	case ">":
		f.emitOp(opI32GtS)
	case ">=":
		f.emitOp(opI32GeS)
	default:
		return fmt.Errorf("unsupported operator %q", op)
	}
	return nil
}

// lowerTernary emits the true and false branches before the condition: the
// `select` instruction pops [cond, false, true] in that order (top to
// bottom) and keeps `true` when cond is non-zero, so the push order must
// be true-branch, false-branch, condition.
func (f *fnCtx) lowerTernary(e *ast.Ternary) (types.Type, error) {
	if _, err := f.lowerExpr(e.Then); err != nil {
		return types.Error, err
	}
	if _, err := f.lowerExpr(e.Else); err != nil {
		return types.Error, err
	}
	if _, err := f.lowerExpr(e.Cond); err != nil {
		return types.Error, err
	}
	f.emitOp(opSelect)
	return e.GetType(), nil
}

func (f *fnCtx) lowerAssign(e *ast.Assign) (types.Type, error) {
	slot, _ := f.scope.Get(e.Target.Value)

	if e.Operator == "=" {
		t, err := f.lowerExpr(e.Value)
		if err != nil {
			return types.Error, err
		}
		f.emitConversion(t, slot.typ)
		f.emitOp(opLocalTee)
		f.emitU32(slot.index)
		return slot.typ, nil
	}

	op := e.Operator[:len(e.Operator)-1]
	rt := e.Value.GetType()
	flag := slot.typ.Equal(types.Float) || rt.Equal(types.Float)

	if op == "%" && flag {
		return types.Error, &LowerError{
			Message: "'%' on float operands is not supported by the WebAssembly lowerer",
			Pos:     e.Pos(),
		}
	}

	f.emitOp(opLocalGet)
	f.emitU32(slot.index)
	f.convertOperand(slot.typ, flag)

	if _, err := f.lowerExpr(e.Value); err != nil {
		return types.Error, err
	}
	f.convertOperand(rt, flag)

	if err := f.emitBinaryOpcode(op, flag); err != nil {
		return types.Error, &LowerError{Message: err.Error(), Pos: e.Pos()}
	}

	from := types.Int
	if flag {
		from = types.Float
	}
	f.emitConversion(from, slot.typ)

	f.emitOp(opLocalTee)
	f.emitU32(slot.index)
	return slot.typ, nil
}

func (f *fnCtx) lowerCall(e *ast.Call) (types.Type, error) {
	sig := f.lw.sigs[e.Callee.Value]
	for i, arg := range e.Args {
		t, err := f.lowerExpr(arg)
		if err != nil {
			return types.Error, err
		}
		f.emitConversion(t, sig.Params[i])
	}
	f.emitOp(opCall)
	f.emitU32(f.lw.funcIndex(e.Callee.Value))
	return sig.Result, nil
}
