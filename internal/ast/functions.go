package ast

import (
	"bytes"
	"strings"

	"github.com/colecarley/bird-lang-sub000/internal/lexer"
)

// Param is one function parameter: "name : type".
type Param struct {
	Name *Identifier
	Type *TypeRef
}

// Func is a top-level function declaration. Its Body is the only AST
// subtree that outlives parsing as a shared reference: the call table keeps
// it alive for the lifetime of every invocation.
type Func struct {
	Token      lexer.Token // the 'fn' token
	Name       *Identifier
	Params     []Param
	ReturnType *TypeRef // nil means Void
	Body       *Block
}

func (f *Func) statementNode()      {}
func (f *Func) TokenLiteral() string { return f.Token.Literal }
func (f *Func) Pos() lexer.Position  { return f.Token.Pos }
func (f *Func) String() string {
	var params []string
	for _, p := range f.Params {
		params = append(params, p.Name.String()+": "+p.Type.String())
	}
	var out bytes.Buffer
	out.WriteString("fn ")
	out.WriteString(f.Name.String())
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(")")
	if f.ReturnType != nil {
		out.WriteString(" -> " + f.ReturnType.String())
	}
	out.WriteString(" ")
	out.WriteString(f.Body.String())
	return out.String()
}
