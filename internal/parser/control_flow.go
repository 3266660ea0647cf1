package parser

import (
	"github.com/colecarley/bird-lang-sub000/internal/ast"
	"github.com/colecarley/bird-lang-sub000/internal/lexer"
)

func (p *Parser) parseIf() (ast.Statement, bool) {
	stmt := &ast.If{Token: p.curToken}
	p.advance() // move to condition's first token
	cond, ok := p.parseExpression(LOWEST)
	if !ok {
		return nil, false
	}
	stmt.Cond = cond

	p.advance() // move to then-branch's first token
	then, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	stmt.Then = then

	if p.peekTokenIs(lexer.ELSE) {
		p.advance() // curToken = 'else'
		p.advance() // move to else-branch's first token
		elseStmt, ok := p.parseStatement()
		if !ok {
			return nil, false
		}
		stmt.Else = elseStmt
	}

	return stmt, true
}

func (p *Parser) parseWhile() (ast.Statement, bool) {
	stmt := &ast.While{Token: p.curToken}
	p.advance() // move to condition's first token
	cond, ok := p.parseExpression(LOWEST)
	if !ok {
		return nil, false
	}
	stmt.Cond = cond

	p.advance() // move to body's first token
	body, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	stmt.Body = body
	return stmt, true
}

// parseFor follows the original bird-lang grammar's loose punctuation: a
// leading '(' is optional, the initializer and the condition-terminating
// ';' are each optional only in the sense that an absent clause still needs
// its separating ';', and a trailing ')' before 'do' is optional too.
func (p *Parser) parseFor() (ast.Statement, bool) {
	stmt := &ast.For{Token: p.curToken}

	if p.peekTokenIs(lexer.LPAREN) {
		p.advance() // curToken = '('
	}

	if !p.peekTokenIs(lexer.SEMICOLON) {
		p.advance() // move to initializer's first token
		init, ok := p.parseStatement()
		if !ok {
			return nil, false
		}
		stmt.Init = init
	}

	if p.peekTokenIs(lexer.SEMICOLON) {
		p.advance() // consume the separating ';' when there was no initializer
	}

	if !p.peekTokenIs(lexer.SEMICOLON) {
		p.advance() // move to condition's first token
		cond, ok := p.parseExpression(LOWEST)
		if !ok {
			return nil, false
		}
		stmt.Cond = cond
	}

	if !p.expect(lexer.SEMICOLON) {
		return nil, false
	}

	if !p.peekTokenIs(lexer.DO) && !p.peekTokenIs(lexer.RPAREN) {
		p.advance() // move to step expression's first token
		step, ok := p.parseExpression(LOWEST)
		if !ok {
			return nil, false
		}
		stmt.Step = step
	}

	if p.peekTokenIs(lexer.RPAREN) {
		p.advance() // curToken = ')'
	}

	if !p.expect(lexer.DO) {
		return nil, false
	}

	p.advance() // move to body's first token
	body, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	stmt.Body = body
	return stmt, true
}
