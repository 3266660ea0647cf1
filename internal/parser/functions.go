package parser

import (
	"github.com/colecarley/bird-lang-sub000/internal/ast"
	"github.com/colecarley/bird-lang-sub000/internal/lexer"
)

func (p *Parser) parseFunc() (ast.Statement, bool) {
	fn := &ast.Func{Token: p.curToken}
	if !p.expect(lexer.IDENT) {
		return nil, false
	}
	fn.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expect(lexer.LPAREN) {
		return nil, false
	}

	if !p.peekTokenIs(lexer.RPAREN) {
		for {
			if !p.expect(lexer.IDENT) {
				return nil, false
			}
			param := ast.Param{Name: &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}}

			if !p.expect(lexer.COLON) {
				return nil, false
			}
			p.advance() // move to the param type's first token
			typeRef, ok := p.parseTypeRef()
			if !ok {
				return nil, false
			}
			param.Type = typeRef
			fn.Params = append(fn.Params, param)

			if p.peekTokenIs(lexer.COMMA) {
				p.advance() // curToken = ','
				continue
			}
			break
		}
	}

	if !p.expect(lexer.RPAREN) {
		return nil, false
	}

	if p.peekTokenIs(lexer.ARROW) {
		p.advance() // curToken = '->'
		p.advance() // move to the return type's first token
		typeRef, ok := p.parseTypeRef()
		if !ok {
			return nil, false
		}
		fn.ReturnType = typeRef
	}

	if !p.expect(lexer.LBRACE) {
		return nil, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	fn.Body = body
	return fn, true
}
