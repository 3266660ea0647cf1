package semantic

import "github.com/colecarley/bird-lang-sub000/internal/ast"

func (a *Analyzer) analyzeExpression(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.Identifier:
		if !a.values.ContainsAnywhere(e.Value) {
			a.sink.Add(e.Pos(), "undeclared identifier %q", e.Value)
		}

	case *ast.IntegerLiteral, *ast.FloatLiteral, *ast.StringLiteral, *ast.BoolLiteral:
		// no names to resolve

	case *ast.Unary:
		a.analyzeExpression(e.Operand)

	case *ast.Binary:
		a.analyzeExpression(e.Left)
		a.analyzeExpression(e.Right)

	case *ast.Ternary:
		a.analyzeExpression(e.Cond)
		a.analyzeExpression(e.Then)
		a.analyzeExpression(e.Else)

	case *ast.Assign:
		binding, ok := a.values.Get(e.Target.Value)
		if !ok {
			a.sink.Add(e.Target.Pos(), "undeclared identifier %q", e.Target.Value)
		} else if !binding.mutable {
			a.sink.Add(e.Pos(), "identifier %q is not mutable", e.Target.Value)
		}
		a.analyzeExpression(e.Value)

	case *ast.Call:
		binding, ok := a.callables.Get(e.Callee.Value)
		if !ok {
			a.sink.Add(e.Callee.Pos(), "undeclared function %q", e.Callee.Value)
		} else if len(e.Args) != binding.arity {
			a.sink.Add(e.Pos(), "function %q expects %d argument(s), got %d", e.Callee.Value, binding.arity, len(e.Args))
		}
		for _, arg := range e.Args {
			a.analyzeExpression(arg)
		}
	}
}
