package codegen

import (
	"fmt"

	"github.com/colecarley/bird-lang-sub000/internal/lexer"
)

// LowerError is raised for the handful of constructs the WebAssembly target
// cannot express: `%` on float operands, and string concatenation (left
// implemented only in the interpreter).
type LowerError struct {
	Message string
	Pos     lexer.Position
}

func (e *LowerError) Error() string {
	return fmt.Sprintf("lowering error at line %d, character %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}
