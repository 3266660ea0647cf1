package parser

import (
	"strconv"

	"github.com/colecarley/bird-lang-sub000/internal/ast"
	"github.com/colecarley/bird-lang-sub000/internal/lexer"
)

// Precedence levels, lowest to highest. Assignment and the ternary are
// handled as dedicated right-associative productions rather than through
// the precedence table; the table only drives the left-associative binary
// operators from equality down through multiplicative.
const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < <= > >=
	SUM         // + -
	PRODUCT     // * / %
)

var precedences = map[lexer.TokenType]int{
	lexer.EQ:      EQUALS,
	lexer.NOT_EQ:  EQUALS,
	lexer.LT:      LESSGREATER,
	lexer.LT_EQ:   LESSGREATER,
	lexer.GT:      LESSGREATER,
	lexer.GT_EQ:   LESSGREATER,
	lexer.PLUS:    SUM,
	lexer.MINUS:   SUM,
	lexer.STAR:    PRODUCT,
	lexer.SLASH:   PRODUCT,
	lexer.PERCENT: PRODUCT,
}

func isAssignOp(t lexer.TokenType) bool {
	switch t {
	case lexer.ASSIGN, lexer.PLUS_EQ, lexer.MINUS_EQ, lexer.STAR_EQ, lexer.SLASH_EQ, lexer.PERCENT_EQ:
		return true
	}
	return false
}

// parseExpression parses curToken.. as a full expression. precedence is
// accepted for callers that follow the teacher's convention of always
// passing LOWEST at statement boundaries; Bird's grammar parses assignment
// and the ternary as dedicated right-associative forms above the
// precedence-climbing core, so the parameter is not used: every call
// parses a full expression starting at the assignment level.
func (p *Parser) parseExpression(precedence int) (ast.Expression, bool) {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() (ast.Expression, bool) {
	left, ok := p.parseTernary()
	if !ok {
		return nil, false
	}

	if isAssignOp(p.peekToken.Type) {
		opTok := p.peekToken
		target, isIdent := left.(*ast.Identifier)
		if !isIdent {
			p.errorf(opTok.Pos, "invalid assignment target")
			return nil, false
		}
		p.advance() // curToken = the assignment operator
		p.advance() // move to the value's first token
		value, ok := p.parseAssignment()
		if !ok {
			return nil, false
		}
		return &ast.Assign{Token: opTok, Target: target, Operator: opTok.Literal, Value: value}, true
	}

	return left, true
}

func (p *Parser) parseTernary() (ast.Expression, bool) {
	cond, ok := p.parseEquality()
	if !ok {
		return nil, false
	}

	if p.peekTokenIs(lexer.QUESTION) {
		tok := p.peekToken
		p.advance() // curToken = '?'
		p.advance() // move to the then-branch's first token
		then, ok := p.parseExpression(LOWEST)
		if !ok {
			return nil, false
		}
		if !p.expect(lexer.COLON) {
			return nil, false
		}
		p.advance() // move to the else-branch's first token
		elseExpr, ok := p.parseExpression(LOWEST)
		if !ok {
			return nil, false
		}
		return &ast.Ternary{Token: tok, Cond: cond, Then: then, Else: elseExpr}, true
	}

	return cond, true
}

func (p *Parser) parseEquality() (ast.Expression, bool) {
	return p.parseBinaryLevel(EQUALS, (*Parser).parseComparison)
}

func (p *Parser) parseComparison() (ast.Expression, bool) {
	return p.parseBinaryLevel(LESSGREATER, (*Parser).parseTerm)
}

func (p *Parser) parseTerm() (ast.Expression, bool) {
	return p.parseBinaryLevel(SUM, (*Parser).parseFactor)
}

func (p *Parser) parseFactor() (ast.Expression, bool) {
	return p.parseBinaryLevel(PRODUCT, (*Parser).parseUnary)
}

// parseBinaryLevel implements one left-associative precedence level: parse
// one operand at the next-higher level, then keep folding in further
// operands as long as the peeked operator belongs to exactly this level.
func (p *Parser) parseBinaryLevel(level int, next func(*Parser) (ast.Expression, bool)) (ast.Expression, bool) {
	left, ok := next(p)
	if !ok {
		return nil, false
	}

	for precedences[p.peekToken.Type] == level {
		opTok := p.peekToken
		p.advance() // curToken = the operator
		p.advance() // move to the right operand's first token
		right, ok := next(p)
		if !ok {
			return nil, false
		}
		left = &ast.Binary{Token: opTok, Left: left, Operator: opTok.Literal, Right: right}
	}

	return left, true
}

func (p *Parser) parseUnary() (ast.Expression, bool) {
	if p.curTokenIs(lexer.MINUS) {
		opTok := p.curToken
		p.advance() // move to the operand's first token
		operand, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return &ast.Unary{Token: opTok, Operator: opTok.Literal, Operand: operand}, true
	}
	return p.parseCall()
}

func (p *Parser) parseCall() (ast.Expression, bool) {
	primary, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}

	if p.peekTokenIs(lexer.LPAREN) {
		callee, isIdent := primary.(*ast.Identifier)
		if !isIdent {
			p.errorf(p.peekToken.Pos, "cannot call a non-function expression")
			return nil, false
		}
		tok := p.peekToken
		p.advance() // curToken = '('
		args, ok := p.parseCallArgs()
		if !ok {
			return nil, false
		}
		return &ast.Call{Token: tok, Callee: callee, Args: args}, true
	}

	return primary, true
}

func (p *Parser) parseCallArgs() ([]ast.Expression, bool) {
	var args []ast.Expression

	if p.peekTokenIs(lexer.RPAREN) {
		p.advance()
		return args, true
	}

	p.advance() // move to the first argument's first token
	arg, ok := p.parseExpression(LOWEST)
	if !ok {
		return nil, false
	}
	args = append(args, arg)

	for p.peekTokenIs(lexer.COMMA) {
		p.advance() // curToken = ','
		p.advance() // move to the next argument's first token
		arg, ok := p.parseExpression(LOWEST)
		if !ok {
			return nil, false
		}
		args = append(args, arg)
	}

	if !p.expect(lexer.RPAREN) {
		return nil, false
	}
	return args, true
}

func (p *Parser) parsePrimary() (ast.Expression, bool) {
	switch p.curToken.Type {
	case lexer.IDENT:
		return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}, true

	case lexer.INT:
		v, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
		if err != nil {
			p.errorf(p.curToken.Pos, "invalid integer literal %q", p.curToken.Literal)
			return nil, false
		}
		return &ast.IntegerLiteral{Token: p.curToken, Value: v}, true

	case lexer.FLOAT:
		v, err := strconv.ParseFloat(p.curToken.Literal, 64)
		if err != nil {
			p.errorf(p.curToken.Pos, "invalid float literal %q", p.curToken.Literal)
			return nil, false
		}
		return &ast.FloatLiteral{Token: p.curToken, Value: v}, true

	case lexer.STRING:
		return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}, true

	case lexer.TRUE:
		return &ast.BoolLiteral{Token: p.curToken, Value: true}, true

	case lexer.FALSE:
		return &ast.BoolLiteral{Token: p.curToken, Value: false}, true

	case lexer.LPAREN:
		p.advance() // move to the inner expression's first token
		expr, ok := p.parseExpression(LOWEST)
		if !ok {
			return nil, false
		}
		if !p.expect(lexer.RPAREN) {
			return nil, false
		}
		return expr, true

	default:
		p.errorf(p.curToken.Pos, "unexpected token %s in expression", p.curToken.Type)
		return nil, false
	}
}
