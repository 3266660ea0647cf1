package parser

import (
	"github.com/colecarley/bird-lang-sub000/internal/ast"
	"github.com/colecarley/bird-lang-sub000/internal/lexer"
)

// parseStatement dispatches on the current token's type. ok is false when
// the statement failed to parse and the caller should synchronize.
func (p *Parser) parseStatement() (ast.Statement, bool) {
	switch p.curToken.Type {
	case lexer.VAR:
		return p.parseVarDecl()
	case lexer.CONST:
		return p.parseConstDecl()
	case lexer.TYPE:
		return p.parseTypeDecl()
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.FOR:
		return p.parseFor()
	case lexer.PRINT:
		return p.parsePrint()
	case lexer.FN:
		return p.parseFunc()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.BREAK:
		return p.parseBreak()
	case lexer.CONTINUE:
		return p.parseContinue()
	case lexer.LBRACE:
		return p.parseBlock()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseBlock() (*ast.Block, bool) {
	block := &ast.Block{Token: p.curToken}
	p.advance() // consume '{'

	for !p.curTokenIs(lexer.RBRACE) && !p.curTokenIs(lexer.EOF) && p.lexFatal == nil {
		stmt, ok := p.parseStatement()
		if ok {
			block.Stmts = append(block.Stmts, stmt)
			p.advance()
		} else {
			p.synchronize()
		}
	}

	if !p.curTokenIs(lexer.RBRACE) {
		p.errorf(p.curToken.Pos, "expected %s, got %s", lexer.RBRACE, p.curToken.Type)
		return block, false
	}
	return block, true
}

func (p *Parser) parsePrint() (ast.Statement, bool) {
	stmt := &ast.PrintStmt{Token: p.curToken}
	p.advance() // consume 'print'

	arg, ok := p.parseExpression(LOWEST)
	if !ok {
		return nil, false
	}
	stmt.Args = append(stmt.Args, arg)

	for p.peekTokenIs(lexer.COMMA) {
		p.advance() // consume ','
		p.advance() // move to next expr's first token
		arg, ok := p.parseExpression(LOWEST)
		if !ok {
			return nil, false
		}
		stmt.Args = append(stmt.Args, arg)
	}

	if !p.expect(lexer.SEMICOLON) {
		return nil, false
	}
	return stmt, true
}

func (p *Parser) parseExprStmt() (ast.Statement, bool) {
	stmt := &ast.ExprStmt{Token: p.curToken}
	expr, ok := p.parseExpression(LOWEST)
	if !ok {
		return nil, false
	}
	stmt.Expr = expr
	if !p.expect(lexer.SEMICOLON) {
		return nil, false
	}
	return stmt, true
}

func (p *Parser) parseReturn() (ast.Statement, bool) {
	stmt := &ast.Return{Token: p.curToken}
	if p.peekTokenIs(lexer.SEMICOLON) {
		p.advance()
		return stmt, true
	}
	p.advance() // move to expression's first token
	expr, ok := p.parseExpression(LOWEST)
	if !ok {
		return nil, false
	}
	stmt.Value = expr
	if !p.expect(lexer.SEMICOLON) {
		return nil, false
	}
	return stmt, true
}

func (p *Parser) parseBreak() (ast.Statement, bool) {
	stmt := &ast.Break{Token: p.curToken}
	if !p.expect(lexer.SEMICOLON) {
		return nil, false
	}
	return stmt, true
}

func (p *Parser) parseContinue() (ast.Statement, bool) {
	stmt := &ast.Continue{Token: p.curToken}
	if !p.expect(lexer.SEMICOLON) {
		return nil, false
	}
	return stmt, true
}
