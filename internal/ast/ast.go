// Package ast defines the Abstract Syntax Tree node types produced by the
// parser and consumed, immutably, by every later pass.
package ast

import (
	"bytes"
	"strings"

	"github.com/colecarley/bird-lang-sub000/internal/lexer"
	"github.com/colecarley/bird-lang-sub000/internal/types"
)

// Node is implemented by every AST node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() lexer.Position
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	expressionNode()
	// GetType returns the type assigned by the type checker, or the zero
	// Type before type checking has run.
	GetType() types.Type
	SetType(types.Type)
}

// Statement is a node that performs an action.
type Statement interface {
	Node
	statementNode()
}

// Program is the root of the AST: the top-level statement sequence.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

func (p *Program) Pos() lexer.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}

// typedNode factors out the type-annotation bookkeeping shared by every
// expression node; embed it rather than repeating GetType/SetType.
type typedNode struct {
	typ types.Type
}

func (t *typedNode) GetType() types.Type  { return t.typ }
func (t *typedNode) SetType(ty types.Type) { t.typ = ty }

// Identifier is a primary expression naming a value, function, or (inside a
// TypeRef) a type alias.
type Identifier struct {
	typedNode
	Token lexer.Token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }
func (i *Identifier) Pos() lexer.Position  { return i.Token.Pos }

// IntegerLiteral is an int-literal primary expression.
type IntegerLiteral struct {
	typedNode
	Token lexer.Token
	Value int64
}

func (l *IntegerLiteral) expressionNode()      {}
func (l *IntegerLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *IntegerLiteral) String() string       { return l.Token.Literal }
func (l *IntegerLiteral) Pos() lexer.Position  { return l.Token.Pos }

// FloatLiteral is a float-literal primary expression.
type FloatLiteral struct {
	typedNode
	Token lexer.Token
	Value float64
}

func (l *FloatLiteral) expressionNode()      {}
func (l *FloatLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *FloatLiteral) String() string       { return l.Token.Literal }
func (l *FloatLiteral) Pos() lexer.Position  { return l.Token.Pos }

// StringLiteral is a string-literal primary expression. Value holds the
// decoded text, with no escape processing (Bird strings do not support
// escapes).
type StringLiteral struct {
	typedNode
	Token lexer.Token
	Value string
}

func (l *StringLiteral) expressionNode()      {}
func (l *StringLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *StringLiteral) String() string       { return "\"" + l.Value + "\"" }
func (l *StringLiteral) Pos() lexer.Position  { return l.Token.Pos }

// BoolLiteral is a true/false primary expression.
type BoolLiteral struct {
	typedNode
	Token lexer.Token
	Value bool
}

func (l *BoolLiteral) expressionNode()      {}
func (l *BoolLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *BoolLiteral) String() string       { return l.Token.Literal }
func (l *BoolLiteral) Pos() lexer.Position  { return l.Token.Pos }

// Unary is a prefix-operator expression ("-x").
type Unary struct {
	typedNode
	Token    lexer.Token // the operator token
	Operator string
	Operand  Expression
}

func (u *Unary) expressionNode()      {}
func (u *Unary) TokenLiteral() string { return u.Token.Literal }
func (u *Unary) Pos() lexer.Position  { return u.Token.Pos }
func (u *Unary) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(u.Operator)
	out.WriteString(u.Operand.String())
	out.WriteString(")")
	return out.String()
}

// Binary is an infix-operator expression ("a + b").
type Binary struct {
	typedNode
	Token    lexer.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (b *Binary) expressionNode()      {}
func (b *Binary) TokenLiteral() string { return b.Token.Literal }
func (b *Binary) Pos() lexer.Position  { return b.Token.Pos }
func (b *Binary) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(b.Left.String())
	out.WriteString(" " + b.Operator + " ")
	out.WriteString(b.Right.String())
	out.WriteString(")")
	return out.String()
}

// Ternary is the "cond ? then : else" conditional expression.
type Ternary struct {
	typedNode
	Token lexer.Token // the '?' token
	Cond  Expression
	Then  Expression
	Else  Expression
}

func (t *Ternary) expressionNode()      {}
func (t *Ternary) TokenLiteral() string { return t.Token.Literal }
func (t *Ternary) Pos() lexer.Position  { return t.Token.Pos }
func (t *Ternary) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(t.Cond.String())
	out.WriteString(" ? ")
	out.WriteString(t.Then.String())
	out.WriteString(" : ")
	out.WriteString(t.Else.String())
	out.WriteString(")")
	return out.String()
}

// Assign is an assignment expression: `target op= value` for op in
// {"", "+", "-", "*", "/", "%"} ("" means plain "=").
type Assign struct {
	typedNode
	Token    lexer.Token // the assignment-operator token
	Target   *Identifier
	Operator string // "=", "+=", "-=", "*=", "/=", "%="
	Value    Expression
}

func (a *Assign) expressionNode()      {}
func (a *Assign) TokenLiteral() string { return a.Token.Literal }
func (a *Assign) Pos() lexer.Position  { return a.Token.Pos }
func (a *Assign) String() string {
	var out bytes.Buffer
	out.WriteString(a.Target.String())
	out.WriteString(" " + a.Operator + " ")
	out.WriteString(a.Value.String())
	return out.String()
}

// Call is a function-call expression.
type Call struct {
	typedNode
	Token  lexer.Token // the '(' token
	Callee *Identifier
	Args   []Expression
}

func (c *Call) expressionNode()      {}
func (c *Call) TokenLiteral() string { return c.Token.Literal }
func (c *Call) Pos() lexer.Position  { return c.Token.Pos }
func (c *Call) String() string {
	var args []string
	for _, a := range c.Args {
		args = append(args, a.String())
	}
	var out bytes.Buffer
	out.WriteString(c.Callee.String())
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}
