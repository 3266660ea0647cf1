package ast

import "github.com/colecarley/bird-lang-sub000/internal/lexer"

// TypeRef is a type reference appearing in a declaration, parameter list, or
// return-type position. It is either a literal type name (int, float, str,
// bool, void) or an identifier naming a previously declared type alias;
// Literal records which.
type TypeRef struct {
	Token   lexer.Token // the TYPE_LITER or IDENT token
	Name    string
	Literal bool
}

func (t *TypeRef) TokenLiteral() string { return t.Token.Literal }
func (t *TypeRef) String() string       { return t.Name }
func (t *TypeRef) Pos() lexer.Position  { return t.Token.Pos }
