// Package interp implements Bird's tree-walking interpreter: a direct
// evaluator over the AST produced by the parser, assumed to have already
// passed semantic analysis and type checking.
package interp

import (
	"strconv"

	"github.com/colecarley/bird-lang-sub000/internal/types"
)

// Value is a runtime value: a tagged union over Bird's four value types.
// Only the field matching Type is meaningful.
type Value struct {
	Type types.Type
	I    int64
	F    float64
	S    string
	B    bool
}

func IntValue(v int64) Value    { return Value{Type: types.Int, I: v} }
func FloatValue(v float64) Value { return Value{Type: types.Float, F: v} }
func StrValue(v string) Value   { return Value{Type: types.Str, S: v} }
func BoolValue(v bool) Value    { return Value{Type: types.Bool, B: v} }

// String renders v the way print does: no quotes around strings, no type
// tag, floats in the shortest round-tripping decimal form.
func (v Value) String() string {
	switch v.Type.Kind() {
	case types.INT:
		return strconv.FormatInt(v.I, 10)
	case types.FLOAT:
		return strconv.FormatFloat(v.F, 'f', -1, 64)
	case types.STR:
		return v.S
	case types.BOOL:
		if v.B {
			return "true"
		}
		return "false"
	default:
		return "<void>"
	}
}

// AsFloat widens an Int or Float value to float64; it must only be called
// on numeric values.
func (v Value) AsFloat() float64 {
	if v.Type.Equal(types.Float) {
		return v.F
	}
	return float64(v.I)
}
