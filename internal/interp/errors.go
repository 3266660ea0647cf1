package interp

import (
	"fmt"

	"github.com/colecarley/bird-lang-sub000/internal/lexer"
)

// RuntimeError is a failure raised during evaluation: the only case the
// spec calls for is division or modulo by zero. It surfaces as a plain Go
// error rather than a panic, propagated explicitly through every eval call.
type RuntimeError struct {
	Message string
	Pos     lexer.Position
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error at line %d, character %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}
