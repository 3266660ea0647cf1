package typecheck

import "github.com/colecarley/bird-lang-sub000/internal/types"

// numericResult implements the arithmetic result table, including the
// deliberately asymmetric mixed-numeric rule the spec requires preserving:
// (Int,Float)->Int but (Float,Int)->Float.
func numericResult(l, r types.Type) (types.Type, bool) {
	switch {
	case l.Equal(types.Int) && r.Equal(types.Int):
		return types.Int, true
	case l.Equal(types.Float) && r.Equal(types.Float):
		return types.Float, true
	case l.Equal(types.Int) && r.Equal(types.Float):
		return types.Int, true
	case l.Equal(types.Float) && r.Equal(types.Int):
		return types.Float, true
	}
	return types.Error, false
}

func (c *Checker) binaryResult(op string, l, r types.Type) (types.Type, bool) {
	if l == types.Error || r == types.Error {
		return types.Error, true
	}

	switch op {
	case "+":
		if res, ok := numericResult(l, r); ok {
			return res, true
		}
		if l.Equal(types.Str) && r.Equal(types.Str) {
			return types.Str, true
		}
	case "-", "*", "/":
		if res, ok := numericResult(l, r); ok {
			return res, true
		}
	case "%":
		if res, ok := numericResult(l, r); ok {
			return res, true
		}
	case "==", "!=":
		if (l.IsNumeric() && r.IsNumeric()) || l.Equal(r) {
			return types.Bool, true
		}
	case "<", "<=", ">", ">=":
		if _, ok := numericResult(l, r); ok {
			return types.Bool, true
		}
	}
	return types.Error, false
}
