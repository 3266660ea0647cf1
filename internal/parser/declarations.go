package parser

import (
	"github.com/colecarley/bird-lang-sub000/internal/ast"
	"github.com/colecarley/bird-lang-sub000/internal/lexer"
)

func (p *Parser) parseVarDecl() (ast.Statement, bool) {
	decl := &ast.VarDecl{Token: p.curToken}
	if !p.expect(lexer.IDENT) {
		return nil, false
	}
	decl.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if p.peekTokenIs(lexer.COLON) {
		p.advance() // curToken = ':'
		p.advance() // curToken = type ref's first token
		typeRef, ok := p.parseTypeRef()
		if !ok {
			return nil, false
		}
		decl.DeclaredType = typeRef
	}

	if !p.expect(lexer.ASSIGN) {
		return nil, false
	}
	p.advance() // move to initializer's first token
	init, ok := p.parseExpression(LOWEST)
	if !ok {
		return nil, false
	}
	decl.Initializer = init

	if !p.expect(lexer.SEMICOLON) {
		return nil, false
	}
	return decl, true
}

func (p *Parser) parseConstDecl() (ast.Statement, bool) {
	decl := &ast.ConstDecl{Token: p.curToken}
	if !p.expect(lexer.IDENT) {
		return nil, false
	}
	decl.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if p.peekTokenIs(lexer.COLON) {
		p.advance() // curToken = ':'
		p.advance() // curToken = type ref's first token
		typeRef, ok := p.parseTypeRef()
		if !ok {
			return nil, false
		}
		decl.DeclaredType = typeRef
	}

	if !p.expect(lexer.ASSIGN) {
		return nil, false
	}
	p.advance()
	init, ok := p.parseExpression(LOWEST)
	if !ok {
		return nil, false
	}
	decl.Initializer = init

	if !p.expect(lexer.SEMICOLON) {
		return nil, false
	}
	return decl, true
}

func (p *Parser) parseTypeDecl() (ast.Statement, bool) {
	decl := &ast.TypeDecl{Token: p.curToken}
	if !p.expect(lexer.IDENT) {
		return nil, false
	}
	decl.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expect(lexer.ASSIGN) {
		return nil, false
	}
	p.advance() // move to the referent type's token
	referent, ok := p.parseTypeRef()
	if !ok {
		return nil, false
	}
	decl.Referent = referent

	if !p.expect(lexer.SEMICOLON) {
		return nil, false
	}
	return decl, true
}
