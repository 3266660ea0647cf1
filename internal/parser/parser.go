// Package parser implements Bird's recursive-descent parser: token stream
// to AST, with panic-mode error recovery so that a single malformed
// statement doesn't abort the whole parse.
package parser

import (
	"fmt"

	"github.com/colecarley/bird-lang-sub000/internal/ast"
	"github.com/colecarley/bird-lang-sub000/internal/lexer"
)

// maxErrors bounds how many parse errors ParseProgram accumulates before it
// stops parsing a program that is clearly too broken to analyze
// productively.
const maxErrors = 64

// Parser consumes a token stream and builds an ast.Program, recording
// errors and recovering from them rather than aborting.
type Parser struct {
	l *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token

	errors   []*ParseError
	lexFatal *lexer.LexError
}

// New creates a Parser over l and primes the two-token lookahead window.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.advance()
	p.advance()
	return p
}

// Errors returns the recoverable parse errors accumulated so far.
func (p *Parser) Errors() []*ParseError { return p.errors }

// LexError returns the fatal lex error encountered while scanning, if any.
func (p *Parser) LexError() *lexer.LexError { return p.lexFatal }

func (p *Parser) advance() {
	p.curToken = p.peekToken
	tok, err := p.l.NextToken()
	if err != nil {
		p.lexFatal = err
		p.peekToken = lexer.Token{Type: lexer.EOF, Pos: err.Pos}
		return
	}
	p.peekToken = tok
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

// expect advances past the peek token if it matches t, otherwise records an
// error and leaves the cursor where it is.
func (p *Parser) expect(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.advance()
		return true
	}
	p.errorf(p.peekToken.Pos, "expected %s, got %s", t, p.peekToken.Type)
	return false
}

func (p *Parser) errorf(pos lexer.Position, format string, args ...interface{}) {
	p.errors = append(p.errors, &ParseError{Message: fmt.Sprintf(format, args...), Pos: pos})
}

// ParseProgram parses the whole token stream into a Program. Statements
// that fail to parse are omitted from the result, but parsing continues
// (via synchronize) so multiple errors can surface from a single run.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(lexer.EOF) && p.lexFatal == nil {
		if len(p.errors) >= maxErrors {
			break
		}
		stmt, ok := p.parseStatement()
		if ok {
			program.Statements = append(program.Statements, stmt)
			p.advance()
		}
		if !ok {
			p.synchronize()
		}
	}

	return program
}

// synchronize discards tokens until the next ';' (inclusive), a token that
// begins a statement, or EOF, then returns control to statement parsing. It always consumes at least one
// token, which guarantees termination even on a single stray token.
func (p *Parser) synchronize() {
	// Always consume at least one token so a statement that failed to
	// parse without advancing the cursor can't spin ParseProgram forever.
	if p.curTokenIs(lexer.SEMICOLON) {
		p.advance()
		return
	}
	if p.curTokenIs(lexer.EOF) || p.lexFatal != nil {
		return
	}
	p.advance()

	for {
		if p.curTokenIs(lexer.SEMICOLON) {
			p.advance()
			return
		}
		if p.curTokenIs(lexer.EOF) || p.lexFatal != nil {
			return
		}
		if isStatementStart(p.curToken.Type) {
			return
		}
		p.advance()
	}
}

func isStatementStart(t lexer.TokenType) bool {
	switch t {
	case lexer.VAR, lexer.CONST, lexer.TYPE, lexer.IF, lexer.WHILE, lexer.FOR,
		lexer.PRINT, lexer.FN, lexer.RETURN, lexer.BREAK, lexer.CONTINUE, lexer.LBRACE:
		return true
	}
	return false
}
