// Package semantic walks the parsed AST to check scoping, shadowing,
// break/continue/return placement, and call arity. It does not infer or
// check types; that is the type checker's job.
package semantic

import "github.com/colecarley/bird-lang-sub000/internal/lexer"

// Error is one semantic diagnostic.
type Error struct {
	Message string
	Pos     lexer.Position
}
