// Package types defines Bird's closed set of static types and the
// function-signature shape used by the semantic analyzer, type checker,
// interpreter, and WebAssembly lowerer.
package types

import "strings"

// Kind identifies one member of Bird's closed type enumeration.
type Kind int

const (
	INT Kind = iota
	FLOAT
	STR
	BOOL
	VOID
	// ERROR is a sentinel type assigned to any expression whose type could
	// not be determined; it suppresses cascading diagnostics because checks
	// that find it (compared with ==) skip their own report. Equal treats it
	// as equal to nothing, itself included.
	ERROR
)

// Type is a single static type. Types compare by value (Kind equality); the
// zero Type is INT, so always construct one of the package-level singletons
// below rather than a bare types.Type{}.
type Type struct {
	kind Kind
}

var (
	Int   = Type{INT}
	Float = Type{FLOAT}
	Str   = Type{STR}
	Bool  = Type{BOOL}
	Void  = Type{VOID}
	Error = Type{ERROR}
)

// Kind returns the underlying type kind.
func (t Type) Kind() Kind { return t.kind }

// String renders the type the way it appears in Bird source and diagnostics.
func (t Type) String() string {
	switch t.kind {
	case INT:
		return "int"
	case FLOAT:
		return "float"
	case STR:
		return "str"
	case BOOL:
		return "bool"
	case VOID:
		return "void"
	default:
		return "<error>"
	}
}

// Equal reports whether two types are the same kind. ERROR is never equal
// to anything, including itself, so that a single mistyped expression
// cannot silently make an enclosing comparison "succeed".
func (t Type) Equal(other Type) bool {
	if t.kind == ERROR || other.kind == ERROR {
		return false
	}
	return t.kind == other.kind
}

// IsNumeric reports whether t is Int or Float.
func (t Type) IsNumeric() bool {
	return t.kind == INT || t.kind == FLOAT
}

// FromLiteral maps one of Bird's literal type-names ("int", "float", "str",
// "bool", "void") to its Type, or reports ok=false for anything else.
func FromLiteral(name string) (Type, bool) {
	switch name {
	case "int":
		return Int, true
	case "float":
		return Float, true
	case "str":
		return Str, true
	case "bool":
		return Bool, true
	case "void":
		return Void, true
	default:
		return Error, false
	}
}

// Signature is a function's type: its ordered parameter types and its
// result type (Void if the function declared no return type).
type Signature struct {
	Params []Type
	Result Type
}

// String renders a signature as "(int, float) -> bool".
func (s Signature) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, p := range s.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(") -> ")
	sb.WriteString(s.Result.String())
	return sb.String()
}
