package interp

import (
	"io"

	"github.com/colecarley/bird-lang-sub000/internal/ast"
	"github.com/colecarley/bird-lang-sub000/internal/env"
	"github.com/colecarley/bird-lang-sub000/internal/types"
)

type binding struct {
	value   Value
	mutable bool
}

// signalKind distinguishes the three control-flow sentinels from normal
// completion. This replaces the exception-based break/continue/return the
// original implementation used: each exec call returns one explicitly and
// the caller decides whether to keep propagating it.
type signalKind int

const (
	sigNone signalKind = iota
	sigBreak
	sigContinue
	sigReturn
)

type signal struct {
	kind     signalKind
	value    Value
	hasValue bool
}

var normal = signal{kind: sigNone}

// Interpreter walks a Bird AST directly, evaluating statements and
// expressions against a stack of scope frames. It assumes the program
// already passed semantic analysis and type checking.
type Interpreter struct {
	values    *env.Scope[binding]
	callables *env.Scope[*ast.Func]
	aliases   *env.Scope[types.Type]

	out io.Writer
}

// New creates an Interpreter that writes print output to out.
func New(out io.Writer) *Interpreter {
	return &Interpreter{
		values:    env.New[binding](),
		callables: env.New[*ast.Func](),
		aliases:   env.New[types.Type](),
		out:       out,
	}
}

// Run executes every top-level statement in order, stopping at the first
// runtime error.
func (in *Interpreter) Run(program *ast.Program) error {
	for _, stmt := range program.Statements {
		_, err := in.exec(stmt)
		if err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) pushScope() {
	in.values.Push()
	in.callables.Push()
	in.aliases.Push()
}

func (in *Interpreter) popScope() {
	in.values.Pop()
	in.callables.Pop()
	in.aliases.Pop()
}

// resolveTypeRef mirrors typecheck.Checker.resolveTypeRef: the interpreter
// keeps its own tiny alias table, built as it executes type declarations in
// program order, so it can apply the same implicit numeric conversion on a
// declared variable's initializer without depending on the type-checker
// package.
func (in *Interpreter) resolveTypeRef(ref *ast.TypeRef) types.Type {
	if ref.Literal {
		t, ok := types.FromLiteral(ref.Name)
		if !ok {
			return types.Error
		}
		return t
	}
	t, ok := in.aliases.Get(ref.Name)
	if !ok {
		return types.Error
	}
	return t
}
