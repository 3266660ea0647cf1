package interp

import (
	"github.com/colecarley/bird-lang-sub000/internal/lexer"
	"github.com/colecarley/bird-lang-sub000/internal/types"
)

// evalUnary applies Bird's only prefix operator, numeric negation.
func evalUnary(op string, v Value) Value {
	if v.Type.Equal(types.Float) {
		return FloatValue(-v.F)
	}
	return IntValue(-v.I)
}

// evalBinary implements the arithmetic, comparison, and equality tables
// from the type checker, including the asymmetric mixed-numeric rule: when
// the left operand is Int and the right is Float the computation still
// happens in float64 (matching the lowerer's float opcode choice) but the
// result is truncated back to Int, since that is the type the checker
// assigned the expression.
func evalBinary(op string, l, r Value, pos lexer.Position) (Value, error) {
	switch op {
	case "==":
		return BoolValue(valuesEqual(l, r)), nil
	case "!=":
		return BoolValue(!valuesEqual(l, r)), nil
	case "<", "<=", ">", ">=":
		return evalComparison(op, l, r), nil
	}

	if l.Type.Equal(types.Str) && r.Type.Equal(types.Str) {
		if op == "+" {
			return StrValue(l.S + r.S), nil
		}
	}

	bothInt := l.Type.Equal(types.Int) && r.Type.Equal(types.Int)
	if bothInt {
		return evalIntArith(op, l.I, r.I, pos)
	}

	result, err := evalFloatArith(op, l.AsFloat(), r.AsFloat(), pos)
	if err != nil {
		return Value{}, err
	}
	if l.Type.Equal(types.Int) && r.Type.Equal(types.Float) {
		return IntValue(int64(result.F)), nil
	}
	return result, nil
}

func evalIntArith(op string, l, r int64, pos lexer.Position) (Value, error) {
	switch op {
	case "+":
		return IntValue(l + r), nil
	case "-":
		return IntValue(l - r), nil
	case "*":
		return IntValue(l * r), nil
	case "/":
		if r == 0 {
			return Value{}, &RuntimeError{Message: "division by zero", Pos: pos}
		}
		return IntValue(l / r), nil
	case "%":
		if r == 0 {
			return Value{}, &RuntimeError{Message: "modulo by zero", Pos: pos}
		}
		return IntValue(l % r), nil
	}
	return Value{}, &RuntimeError{Message: "unsupported operator " + op, Pos: pos}
}

func evalFloatArith(op string, l, r float64, pos lexer.Position) (Value, error) {
	switch op {
	case "+":
		return FloatValue(l + r), nil
	case "-":
		return FloatValue(l - r), nil
	case "*":
		return FloatValue(l * r), nil
	case "/":
		if r == 0 {
			return Value{}, &RuntimeError{Message: "division by zero", Pos: pos}
		}
		return FloatValue(l / r), nil
	case "%":
		if r == 0 {
			return Value{}, &RuntimeError{Message: "modulo by zero", Pos: pos}
		}
		return FloatValue(mod(l, r)), nil
	}
	return Value{}, &RuntimeError{Message: "unsupported operator " + op, Pos: pos}
}

func mod(l, r float64) float64 {
	q := float64(int64(l / r))
	return l - q*r
}

func evalComparison(op string, l, r Value) Value {
	lf, rf := l.AsFloat(), r.AsFloat()
	switch op {
	case "<":
		return BoolValue(lf < rf)
	case "<=":
		return BoolValue(lf <= rf)
	case ">":
		return BoolValue(lf > rf)
	case ">=":
		return BoolValue(lf >= rf)
	}
	return BoolValue(false)
}

func valuesEqual(l, r Value) bool {
	if l.Type.IsNumeric() && r.Type.IsNumeric() {
		return l.AsFloat() == r.AsFloat()
	}
	if l.Type.Equal(types.Str) && r.Type.Equal(types.Str) {
		return l.S == r.S
	}
	if l.Type.Equal(types.Bool) && r.Type.Equal(types.Bool) {
		return l.B == r.B
	}
	return false
}

// convertForDecl applies the same implicit numeric conversion a var/const
// declaration's declared type may require of its initializer.
func convertForDecl(declared types.Type, v Value) Value {
	if declared.Equal(types.Int) && v.Type.Equal(types.Float) {
		return IntValue(int64(v.F))
	}
	if declared.Equal(types.Float) && v.Type.Equal(types.Int) {
		return FloatValue(float64(v.I))
	}
	return v
}
