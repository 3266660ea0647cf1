// Package typecheck performs bottom-up type inference and checking over a
// Bird program that has already passed semantic analysis. It annotates
// every expression node with its inferred type and reports a diagnostic for
// every type mismatch it finds, continuing after each one so multiple
// errors can surface from a single run.
package typecheck

import (
	"github.com/colecarley/bird-lang-sub000/internal/ast"
	"github.com/colecarley/bird-lang-sub000/internal/env"
	diag "github.com/colecarley/bird-lang-sub000/internal/errors"
	"github.com/colecarley/bird-lang-sub000/internal/lexer"
	"github.com/colecarley/bird-lang-sub000/internal/types"
)

type valueInfo struct {
	typ     types.Type
	mutable bool
}

// Checker walks an AST already validated by semantic.Analyzer, so it does
// not re-check redeclaration, assignment targets, or break/continue/return
// placement — only types.
type Checker struct {
	sink *diag.Sink

	values    *env.Scope[valueInfo]
	aliases   *env.Scope[types.Type]
	callables *env.Scope[types.Signature]

	returnStack []types.Type
}

// New creates a Checker that reports diagnostics to sink.
func New(sink *diag.Sink) *Checker {
	return &Checker{
		sink:      sink,
		values:    env.New[valueInfo](),
		aliases:   env.New[types.Type](),
		callables: env.New[types.Signature](),
	}
}

// Check walks program, annotating every expression's type.
func (c *Checker) Check(program *ast.Program) {
	for _, stmt := range program.Statements {
		c.checkStatement(stmt)
	}
}

func (c *Checker) pushScope() {
	c.values.Push()
	c.aliases.Push()
	c.callables.Push()
}

func (c *Checker) popScope() {
	c.values.Pop()
	c.aliases.Pop()
	c.callables.Pop()
}

func (c *Checker) errorf(pos lexer.Position, format string, args ...interface{}) {
	c.sink.Add(pos, format, args...)
}

// resolveTypeRef canonicalises a parsed type reference to a concrete Type,
// following the alias table one level (aliases are resolved eagerly at
// declaration, so there is never a chain to walk here).
func (c *Checker) resolveTypeRef(ref *ast.TypeRef) types.Type {
	if ref.Literal {
		t, ok := types.FromLiteral(ref.Name)
		if !ok {
			c.errorf(ref.Pos(), "unknown type %q", ref.Name)
			return types.Error
		}
		return t
	}
	t, ok := c.aliases.Get(ref.Name)
	if !ok {
		c.errorf(ref.Pos(), "unknown type %q", ref.Name)
		return types.Error
	}
	return t
}

// currentReturn returns the declared return type of the innermost function
// being checked, or Void if none is active (top-level code).
func (c *Checker) currentReturn() types.Type {
	if len(c.returnStack) == 0 {
		return types.Void
	}
	return c.returnStack[len(c.returnStack)-1]
}

// assignable reports whether a value of type got may be stored where want
// is expected: exact match, either numeric type where the other is expected
// (Int and Float convert implicitly in both directions here; the asymmetric
// rule applies only to arithmetic results), or Error on either side, which
// has already been reported.
func assignable(want, got types.Type) bool {
	if want.Equal(got) {
		return true
	}
	if want == types.Error || got == types.Error {
		return true
	}
	return want.IsNumeric() && got.IsNumeric()
}
