package interp

import (
	"fmt"

	"github.com/colecarley/bird-lang-sub000/internal/ast"
)

// exec executes one statement, returning the control-flow signal it
// produced (sigNone for ordinary completion) and any runtime error.
func (in *Interpreter) exec(stmt ast.Statement) (signal, error) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, err := in.eval(s.Expr)
		return normal, err

	case *ast.PrintStmt:
		for i, arg := range s.Args {
			v, err := in.eval(arg)
			if err != nil {
				return normal, err
			}
			if i > 0 {
				fmt.Fprint(in.out, " ")
			}
			fmt.Fprint(in.out, v.String())
		}
		fmt.Fprintln(in.out)
		return normal, nil

	case *ast.Block:
		in.pushScope()
		sig, err := in.execBlockBody(s.Stmts)
		in.popScope()
		return sig, err

	case *ast.VarDecl:
		return normal, in.execDecl(s.Name.Value, s.DeclaredType, s.Initializer, true)

	case *ast.ConstDecl:
		return normal, in.execDecl(s.Name.Value, s.DeclaredType, s.Initializer, false)

	case *ast.TypeDecl:
		in.aliases.Declare(s.Name.Value, in.resolveTypeRef(s.Referent))
		return normal, nil

	case *ast.If:
		cond, err := in.eval(s.Cond)
		if err != nil {
			return normal, err
		}
		if cond.B {
			return in.exec(s.Then)
		}
		if s.Else != nil {
			return in.exec(s.Else)
		}
		return normal, nil

	case *ast.While:
		return in.execWhile(s)

	case *ast.For:
		return in.execFor(s)

	case *ast.Func:
		in.callables.Declare(s.Name.Value, s)
		return normal, nil

	case *ast.Return:
		if s.Value == nil {
			return signal{kind: sigReturn}, nil
		}
		v, err := in.eval(s.Value)
		if err != nil {
			return normal, err
		}
		return signal{kind: sigReturn, value: v, hasValue: true}, nil

	case *ast.Break:
		return signal{kind: sigBreak}, nil

	case *ast.Continue:
		return signal{kind: sigContinue}, nil
	}

	return normal, nil
}

// execBlockBody runs stmts in the current scope, stopping at the first
// statement that produces a non-None signal or an error.
func (in *Interpreter) execBlockBody(stmts []ast.Statement) (signal, error) {
	for _, stmt := range stmts {
		sig, err := in.exec(stmt)
		if err != nil {
			return normal, err
		}
		if sig.kind != sigNone {
			return sig, nil
		}
	}
	return normal, nil
}

func (in *Interpreter) execDecl(name string, declaredType *ast.TypeRef, init ast.Expression, mutable bool) error {
	v, err := in.eval(init)
	if err != nil {
		return err
	}
	if declaredType != nil {
		v = convertForDecl(in.resolveTypeRef(declaredType), v)
	}
	in.values.Declare(name, binding{value: v, mutable: mutable})
	return nil
}

func (in *Interpreter) execWhile(s *ast.While) (signal, error) {
	for {
		cond, err := in.eval(s.Cond)
		if err != nil {
			return normal, err
		}
		if !cond.B {
			return normal, nil
		}

		sig, err := in.exec(s.Body)
		if err != nil {
			return normal, err
		}
		switch sig.kind {
		case sigBreak:
			return normal, nil
		case sigReturn:
			return sig, nil
		}
	}
}

func (in *Interpreter) execFor(s *ast.For) (signal, error) {
	in.pushScope()
	defer in.popScope()

	if s.Init != nil {
		if _, err := in.exec(s.Init); err != nil {
			return normal, err
		}
	}

	for {
		if s.Cond != nil {
			cond, err := in.eval(s.Cond)
			if err != nil {
				return normal, err
			}
			if !cond.B {
				return normal, nil
			}
		}

		sig, err := in.exec(s.Body)
		if err != nil {
			return normal, err
		}
		switch sig.kind {
		case sigBreak:
			return normal, nil
		case sigReturn:
			return sig, nil
		}

		if s.Step != nil {
			if _, err := in.eval(s.Step); err != nil {
				return normal, err
			}
		}
	}
}
