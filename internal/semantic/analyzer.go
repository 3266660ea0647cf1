package semantic

import (
	"github.com/colecarley/bird-lang-sub000/internal/ast"
	"github.com/colecarley/bird-lang-sub000/internal/env"
	diag "github.com/colecarley/bird-lang-sub000/internal/errors"
)

// valueBinding is what the analyzer tracks for a var/const name: whether
// reassignment is allowed. The type checker keeps its own, separate
// environment mapping the same names to types.Type.
type valueBinding struct {
	mutable bool
}

// callableBinding is what the analyzer tracks for a function name: its
// arity, and the declaration it names. Later passes build their own
// function tables; they do not read this one.
type callableBinding struct {
	arity int
	decl  *ast.Func
}

// aliasBinding records that a name was declared with "type NAME = ...";
// the analyzer only needs to know the name exists, not what it resolves
// to — that resolution is the type checker's job.
type aliasBinding struct {
	ref *ast.TypeRef
}

// Analyzer performs name resolution and structural validation over a Bird
// program: redeclaration, assignment to immutable or undeclared names,
// break/continue/return placement, and call arity.
type Analyzer struct {
	sink *diag.Sink

	values    *env.Scope[valueBinding]
	callables *env.Scope[callableBinding]
	aliases   *env.Scope[aliasBinding]

	loopDepth int
	funcDepth int
}

// New creates an Analyzer that reports diagnostics to sink.
func New(sink *diag.Sink) *Analyzer {
	return &Analyzer{
		sink:      sink,
		values:    env.New[valueBinding](),
		callables: env.New[callableBinding](),
		aliases:   env.New[aliasBinding](),
	}
}

// Analyze walks program, recording every violation it finds. It never stops
// early: the pipeline driver decides whether to proceed based on
// sink.HasErrors() afterward.
func (a *Analyzer) Analyze(program *ast.Program) {
	for _, stmt := range program.Statements {
		a.analyzeStatement(stmt)
	}
}

func (a *Analyzer) pushScope() {
	a.values.Push()
	a.callables.Push()
	a.aliases.Push()
}

func (a *Analyzer) popScope() {
	a.values.Pop()
	a.callables.Pop()
	a.aliases.Pop()
}

// boundInTop reports whether name is already bound in ANY of the three
// binding tables at the current lexical level — redeclaration is rejected
// across tables, not just within one.
func (a *Analyzer) boundInTop(name string) bool {
	return a.values.ContainsInTop(name) || a.callables.ContainsInTop(name) || a.aliases.ContainsInTop(name)
}
