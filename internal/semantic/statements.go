package semantic

import (
	"github.com/colecarley/bird-lang-sub000/internal/ast"
	"github.com/colecarley/bird-lang-sub000/internal/lexer"
)

func (a *Analyzer) analyzeStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		a.analyzeExpression(s.Expr)

	case *ast.PrintStmt:
		for _, arg := range s.Args {
			a.analyzeExpression(arg)
		}

	case *ast.Block:
		a.pushScope()
		for _, inner := range s.Stmts {
			a.analyzeStatement(inner)
		}
		a.popScope()

	case *ast.VarDecl:
		a.analyzeDecl(s.Token.Pos, s.Name.Value, s.Initializer, true)

	case *ast.ConstDecl:
		a.analyzeDecl(s.Token.Pos, s.Name.Value, s.Initializer, false)

	case *ast.TypeDecl:
		if a.boundInTop(s.Name.Value) {
			a.sink.Add(s.Token.Pos, "identifier %q is already declared in this scope", s.Name.Value)
			return
		}
		a.aliases.Declare(s.Name.Value, aliasBinding{ref: s.Referent})

	case *ast.If:
		a.analyzeExpression(s.Cond)
		a.analyzeStatement(s.Then)
		if s.Else != nil {
			a.analyzeStatement(s.Else)
		}

	case *ast.While:
		a.analyzeExpression(s.Cond)
		a.loopDepth++
		a.analyzeStatement(s.Body)
		a.loopDepth--

	case *ast.For:
		a.pushScope()
		if s.Init != nil {
			a.analyzeStatement(s.Init)
		}
		if s.Cond != nil {
			a.analyzeExpression(s.Cond)
		}
		a.loopDepth++
		a.analyzeStatement(s.Body)
		if s.Step != nil {
			a.analyzeExpression(s.Step)
		}
		a.loopDepth--
		a.popScope()

	case *ast.Func:
		a.analyzeFuncDecl(s)

	case *ast.Return:
		if a.funcDepth == 0 {
			a.sink.Add(s.Token.Pos, "'return' outside a function")
		}
		if s.Value != nil {
			a.analyzeExpression(s.Value)
		}

	case *ast.Break:
		if a.loopDepth == 0 {
			a.sink.Add(s.Token.Pos, "'break' outside a loop")
		}

	case *ast.Continue:
		if a.loopDepth == 0 {
			a.sink.Add(s.Token.Pos, "'continue' outside a loop")
		}
	}
}

// analyzeDecl handles the shared shape of var/const declarations: check for
// redeclaration in the current scope, analyze the initializer, then declare
// the name with the given mutability. Declared-type resolution is left to
// the type checker, which canonicalises type-ref names via the alias table.
func (a *Analyzer) analyzeDecl(pos lexer.Position, name string, init ast.Expression, mutable bool) {
	if a.boundInTop(name) {
		a.sink.Add(pos, "identifier %q is already declared in this scope", name)
		return
	}
	a.analyzeExpression(init)
	a.values.Declare(name, valueBinding{mutable: mutable})
}

func (a *Analyzer) analyzeFuncDecl(fn *ast.Func) {
	if a.boundInTop(fn.Name.Value) {
		a.sink.Add(fn.Token.Pos, "identifier %q is already declared in this scope", fn.Name.Value)
		return
	}
	a.callables.Declare(fn.Name.Value, callableBinding{arity: len(fn.Params), decl: fn})

	a.pushScope()
	for _, param := range fn.Params {
		if a.boundInTop(param.Name.Value) {
			a.sink.Add(param.Name.Pos(), "identifier %q is already declared in this scope", param.Name.Value)
			continue
		}
		a.values.Declare(param.Name.Value, valueBinding{mutable: true})
	}
	a.funcDepth++
	savedLoopDepth := a.loopDepth
	a.loopDepth = 0
	for _, stmt := range fn.Body.Stmts {
		a.analyzeStatement(stmt)
	}
	a.loopDepth = savedLoopDepth
	a.funcDepth--
	a.popScope()
}
