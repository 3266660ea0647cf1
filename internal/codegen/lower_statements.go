package codegen

import (
	"github.com/colecarley/bird-lang-sub000/internal/ast"
	"github.com/colecarley/bird-lang-sub000/internal/types"
)

func (f *fnCtx) lowerBlockBody(stmts []ast.Statement) error {
	for _, s := range stmts {
		if err := f.lowerStatement(s); err != nil {
			return err
		}
	}
	return nil
}

func (f *fnCtx) lowerStatement(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		t, err := f.lowerExpr(s.Expr)
		if err != nil {
			return err
		}
		if !t.Equal(types.Void) {
			f.emitOp(opDrop)
		}
		return nil

	case *ast.PrintStmt:
		for _, arg := range s.Args {
			t, err := f.lowerExpr(arg)
			if err != nil {
				return err
			}
			f.emitPrintCall(t)
		}
		return nil

	case *ast.Block:
		f.pushScope()
		err := f.lowerBlockBody(s.Stmts)
		f.popScope()
		return err

	case *ast.VarDecl:
		return f.lowerDecl(s.Name.Value, s.DeclaredType, s.Initializer)

	case *ast.ConstDecl:
		return f.lowerDecl(s.Name.Value, s.DeclaredType, s.Initializer)

	case *ast.TypeDecl:
		return nil // resolved statically in Lowerer.collectAliases

	case *ast.If:
		return f.lowerIf(s)

	case *ast.While:
		return f.lowerWhile(s)

	case *ast.For:
		return f.lowerFor(s)

	case *ast.Func:
		return nil // module-level functions are lowered separately

	case *ast.Return:
		return f.lowerReturn(s)

	case *ast.Break:
		f.emitOp(opBr)
		f.emitU32(f.depthOf("EXIT"))
		return nil

	case *ast.Continue:
		f.emitOp(opBr)
		f.emitU32(f.depthOf("BODY"))
		return nil
	}
	return nil
}

func (f *fnCtx) emitPrintCall(t types.Type) {
	var name string
	switch {
	case t.Equal(types.Float):
		name = "print_f64"
	case t.Equal(types.Str):
		name = "print_str"
	default:
		name = "print_i32"
	}
	f.emitOp(opCall)
	f.emitU32(f.lw.funcIndex(name))
}

func (f *fnCtx) lowerDecl(name string, declared *ast.TypeRef, init ast.Expression) error {
	initType, err := f.lowerExpr(init)
	if err != nil {
		return err
	}

	declType := initType
	if declared != nil {
		declType = f.lw.resolveTypeRef(declared)
		f.emitConversion(initType, declType)
	}

	slot := f.allocLocal(name, declType)
	f.emitOp(opLocalSet)
	f.emitU32(slot.index)
	return nil
}

func (f *fnCtx) lowerIf(s *ast.If) error {
	if _, err := f.lowerExpr(s.Cond); err != nil {
		return err
	}
	f.enterBlock(opIf, "")
	if err := f.lowerStatement(s.Then); err != nil {
		return err
	}
	if s.Else != nil {
		f.emitOp(opElse)
		if err := f.lowerStatement(s.Else); err != nil {
			return err
		}
	}
	f.exitBlock()
	return nil
}

// lowerWhile emits:
//
//	block EXIT
//	  <cond>
//	  if
//	    loop LOOP
//	      block BODY
//	        <body>
//	      end
//	      <cond>
//	      br_if LOOP
//	    end
//	  end
//	end
//
// The condition is lowered twice — once for the entry guard, once for the
// bottom-of-loop recheck — since a flat instruction stream has no way to
// reference one already-emitted value twice the way an expression-graph IR
// does. Bird conditions are booleans built from comparisons and constants;
// they may embed an assignment (and so, in principle, a side effect), but
// re-evaluating that assignment on every iteration is what "the condition
// is evaluated at the bottom with a conditional br LOOP" calls for anyway,
// matching the for/while equivalence property.
func (f *fnCtx) lowerWhile(s *ast.While) error {
	f.enterBlock(opBlock, "EXIT")

	if _, err := f.lowerExpr(s.Cond); err != nil {
		return err
	}
	f.enterBlock(opIf, "")

	f.enterBlock(opLoop, "LOOP")
	f.enterBlock(opBlock, "BODY")
	if err := f.lowerStatement(s.Body); err != nil {
		return err
	}
	f.exitBlock() // BODY

	if _, err := f.lowerExpr(s.Cond); err != nil {
		return err
	}
	f.emitOp(opBrIf)
	f.emitU32(f.depthOf("LOOP"))
	f.exitBlock() // LOOP

	f.exitBlock() // IF
	f.exitBlock() // EXIT
	return nil
}

// lowerFor mirrors lowerWhile with an initializer that always runs exactly
// once before the loop (regardless of the condition) and a step that runs
// at the end of every iteration, including the one a `continue` shortcuts
// into. A missing condition lowers as a constant true, matching a bare
// `for ;; do ...`.
func (f *fnCtx) lowerFor(s *ast.For) error {
	f.pushScope()
	defer f.popScope()

	if s.Init != nil {
		if err := f.lowerStatement(s.Init); err != nil {
			return err
		}
	}

	f.enterBlock(opBlock, "EXIT")

	if err := f.lowerForCond(s.Cond); err != nil {
		return err
	}
	f.enterBlock(opIf, "")

	f.enterBlock(opLoop, "LOOP")
	f.enterBlock(opBlock, "BODY")
	if err := f.lowerStatement(s.Body); err != nil {
		return err
	}
	f.exitBlock() // BODY

	if s.Step != nil {
		t, err := f.lowerExpr(s.Step)
		if err != nil {
			return err
		}
		if !t.Equal(types.Void) {
			f.emitOp(opDrop)
		}
	}

	if err := f.lowerForCond(s.Cond); err != nil {
		return err
	}
	f.emitOp(opBrIf)
	f.emitU32(f.depthOf("LOOP"))
	f.exitBlock() // LOOP

	f.exitBlock() // IF
	f.exitBlock() // EXIT
	return nil
}

func (f *fnCtx) lowerForCond(cond ast.Expression) error {
	if cond == nil {
		f.emitOp(opI32Const)
		f.emitI64(1)
		return nil
	}
	_, err := f.lowerExpr(cond)
	return err
}

func (f *fnCtx) lowerReturn(s *ast.Return) error {
	if s.Value == nil {
		f.emitOp(opReturn)
		return nil
	}
	t, err := f.lowerExpr(s.Value)
	if err != nil {
		return err
	}
	f.emitConversion(t, f.returnType)
	f.emitOp(opReturn)
	return nil
}

// emitConversion inserts the single numeric conversion op needed when a
// value of type from is used where type to is expected; it is a no-op when
// the types already agree or neither is numeric.
func (f *fnCtx) emitConversion(from, to types.Type) {
	if from.Equal(to) || !from.IsNumeric() || !to.IsNumeric() {
		return
	}
	if from.Equal(types.Int) && to.Equal(types.Float) {
		f.emitOp(opF64ConvertI32S)
	} else if from.Equal(types.Float) && to.Equal(types.Int) {
		f.emitOp(opI32TruncF64S)
	}
}
