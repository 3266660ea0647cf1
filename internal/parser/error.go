package parser

import "github.com/colecarley/bird-lang-sub000/internal/lexer"

// ParseError is one recoverable parser diagnostic: an expected-token
// mismatch, a malformed parameter list, or an assignment whose target
// wasn't an identifier.
type ParseError struct {
	Message string
	Pos     lexer.Position
}
