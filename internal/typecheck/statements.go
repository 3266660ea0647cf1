package typecheck

import (
	"github.com/colecarley/bird-lang-sub000/internal/ast"
	"github.com/colecarley/bird-lang-sub000/internal/lexer"
	"github.com/colecarley/bird-lang-sub000/internal/types"
)

func (c *Checker) checkStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		c.checkExpression(s.Expr)

	case *ast.PrintStmt:
		for _, arg := range s.Args {
			c.checkExpression(arg)
		}

	case *ast.Block:
		c.pushScope()
		for _, inner := range s.Stmts {
			c.checkStatement(inner)
		}
		c.popScope()

	case *ast.VarDecl:
		c.checkVarOrConst(s.Token.Pos, s.Name.Value, s.DeclaredType, s.Initializer, true)

	case *ast.ConstDecl:
		c.checkVarOrConst(s.Token.Pos, s.Name.Value, s.DeclaredType, s.Initializer, false)

	case *ast.TypeDecl:
		c.aliases.Declare(s.Name.Value, c.resolveTypeRef(s.Referent))

	case *ast.If:
		c.checkCondition(s.Cond, "if")
		c.checkStatement(s.Then)
		if s.Else != nil {
			c.checkStatement(s.Else)
		}

	case *ast.While:
		c.checkCondition(s.Cond, "while")
		c.checkStatement(s.Body)

	case *ast.For:
		c.pushScope()
		if s.Init != nil {
			c.checkStatement(s.Init)
		}
		if s.Cond != nil {
			c.checkCondition(s.Cond, "for")
		}
		c.checkStatement(s.Body)
		if s.Step != nil {
			c.checkExpression(s.Step)
		}
		c.popScope()

	case *ast.Func:
		c.checkFunc(s)

	case *ast.Return:
		want := c.currentReturn()
		if s.Value == nil {
			if !want.Equal(types.Void) {
				c.errorf(s.Token.Pos, "missing return value of type %s", want)
			}
			return
		}
		got := c.checkExpression(s.Value)
		if !assignable(want, got) {
			c.errorf(s.Value.Pos(), "cannot return %s as %s", got, want)
		}

	case *ast.Break, *ast.Continue:
		// placement was already validated by the semantic analyzer
	}
}

func (c *Checker) checkCondition(cond ast.Expression, construct string) {
	t := c.checkExpression(cond)
	if !t.Equal(types.Bool) && t != types.Error {
		c.errorf(cond.Pos(), "%s condition must be bool, got %s", construct, t)
	}
}

func (c *Checker) checkVarOrConst(pos lexer.Position, name string, declared *ast.TypeRef, init ast.Expression, mutable bool) {
	initType := c.checkExpression(init)

	finalType := initType
	if declared != nil {
		declType := c.resolveTypeRef(declared)
		if declType.Equal(types.Void) {
			c.errorf(pos, "variable %q cannot be declared void", name)
			finalType = types.Error
		} else if assignable(declType, initType) {
			finalType = declType
		} else {
			c.errorf(init.Pos(), "cannot initialize %q of type %s with value of type %s", name, declType, initType)
			finalType = types.Error
		}
	}

	c.values.Declare(name, valueInfo{typ: finalType, mutable: mutable})
}

func (c *Checker) checkFunc(fn *ast.Func) {
	params := make([]types.Type, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = c.resolveTypeRef(p.Type)
	}
	result := types.Void
	if fn.ReturnType != nil {
		result = c.resolveTypeRef(fn.ReturnType)
	}
	c.callables.Declare(fn.Name.Value, types.Signature{Params: params, Result: result})

	c.pushScope()
	for i, p := range fn.Params {
		c.values.Declare(p.Name.Value, valueInfo{typ: params[i], mutable: true})
	}
	c.returnStack = append(c.returnStack, result)
	for _, stmt := range fn.Body.Stmts {
		c.checkStatement(stmt)
	}
	c.returnStack = c.returnStack[:len(c.returnStack)-1]
	c.popScope()
}
