package parser

import (
	"github.com/colecarley/bird-lang-sub000/internal/ast"
	"github.com/colecarley/bird-lang-sub000/internal/lexer"
)

// parseTypeRef parses a type reference from the current token, which must
// already be positioned on the reference's only token (a type-literal or an
// identifier naming a type alias).
func (p *Parser) parseTypeRef() (*ast.TypeRef, bool) {
	switch p.curToken.Type {
	case lexer.TYPE_LITER:
		return &ast.TypeRef{Token: p.curToken, Name: p.curToken.Literal, Literal: true}, true
	case lexer.IDENT:
		return &ast.TypeRef{Token: p.curToken, Name: p.curToken.Literal, Literal: false}, true
	default:
		p.errorf(p.curToken.Pos, "expected a type, got %s", p.curToken.Type)
		return nil, false
	}
}
