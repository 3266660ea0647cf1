package ast

import "github.com/colecarley/bird-lang-sub000/internal/lexer"

// VarDecl declares a mutable binding. DeclaredType is nil when the
// declaration relies entirely on the initializer's inferred type.
type VarDecl struct {
	Token        lexer.Token // the 'var' token
	Name         *Identifier
	DeclaredType *TypeRef // nil if omitted
	Initializer  Expression
}

func (d *VarDecl) statementNode()      {}
func (d *VarDecl) TokenLiteral() string { return d.Token.Literal }
func (d *VarDecl) Pos() lexer.Position  { return d.Token.Pos }
func (d *VarDecl) String() string {
	s := "var " + d.Name.String()
	if d.DeclaredType != nil {
		s += ": " + d.DeclaredType.String()
	}
	return s + " = " + d.Initializer.String() + ";"
}

// ConstDecl declares an immutable binding; reassignment is rejected by the
// semantic analyzer.
type ConstDecl struct {
	Token        lexer.Token // the 'const' token
	Name         *Identifier
	DeclaredType *TypeRef // nil if omitted
	Initializer  Expression
}

func (d *ConstDecl) statementNode()      {}
func (d *ConstDecl) TokenLiteral() string { return d.Token.Literal }
func (d *ConstDecl) Pos() lexer.Position  { return d.Token.Pos }
func (d *ConstDecl) String() string {
	s := "const " + d.Name.String()
	if d.DeclaredType != nil {
		s += ": " + d.DeclaredType.String()
	}
	return s + " = " + d.Initializer.String() + ";"
}

// TypeDecl introduces a name as an alias for Referent, a literal type or
// another, previously declared alias.
type TypeDecl struct {
	Token    lexer.Token // the 'type' token
	Name     *Identifier
	Referent *TypeRef
}

func (d *TypeDecl) statementNode()      {}
func (d *TypeDecl) TokenLiteral() string { return d.Token.Literal }
func (d *TypeDecl) Pos() lexer.Position  { return d.Token.Pos }
func (d *TypeDecl) String() string {
	return "type " + d.Name.String() + " = " + d.Referent.String() + ";"
}
