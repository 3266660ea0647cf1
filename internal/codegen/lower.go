// Package codegen lowers a type-checked Bird AST to a WebAssembly module.
// Unlike the interpreter, which is a fully self-contained pass, the lowerer
// consumes the type annotations the checker already attached to every
// expression node: re-deriving static types here would just be the checker
// a second time, and the lowerer needs them anyway to pick int vs. float
// opcodes ahead of emitting any bytes.
package codegen

import (
	"github.com/colecarley/bird-lang-sub000/internal/ast"
	"github.com/colecarley/bird-lang-sub000/internal/types"
)

// dataBaseOffset is where the first string literal's data segment begins,
// leaving the first kilobyte of linear memory free.
const dataBaseOffset = 1024

const wasmPageSize = 65536

// Lowerer walks a checked program once, building a Module. It keeps the
// same three concerns the spec assigns it: per-function locals, function
// signatures, and a rolling data-segment allocator for string literals.
type Lowerer struct {
	mod *Module

	aliases map[string]types.Type

	funcOrder []string
	funcDecls map[string]*ast.Func
	sigs      map[string]types.Signature

	dataOffset uint32
	data       []DataSegment

	importIdx map[string]uint32
}

// Lower runs a program that has already passed semantic analysis and type
// checking through the WebAssembly lowering walk and returns the finished
// module; it does not run those passes itself.
func Lower(program *ast.Program) (*Module, error) {
	lw := &Lowerer{
		mod:        &Module{},
		aliases:    map[string]types.Type{},
		sigs:       map[string]types.Signature{},
		dataOffset: dataBaseOffset,
		importIdx:  map[string]uint32{},
	}
	return lw.run(program)
}

func (lw *Lowerer) run(program *ast.Program) (*Module, error) {
	lw.declareImports()
	lw.collectAliases(program)
	lw.collectSignatures(program)

	for _, name := range lw.funcOrder {
		fn := lw.funcDecls[name]
		fnMod, err := lw.lowerFunc(fn)
		if err != nil {
			return nil, err
		}
		lw.mod.Functions = append(lw.mod.Functions, fnMod)
	}

	main, err := lw.lowerMain(program)
	if err != nil {
		return nil, err
	}
	lw.mod.Functions = append(lw.mod.Functions, main)

	lw.mod.Data = lw.data
	lw.mod.MemoryMax = lw.dataOffset/wasmPageSize + 1

	return lw.mod, nil
}

// declareImports registers the three host print functions the spec
// requires, in a fixed order so callers can rely on their indices.
func (lw *Lowerer) declareImports() {
	voidOf := func(p valtype) FuncType { return FuncType{Params: []valtype{p}} }
	imports := []Import{
		{Module: "env", Name: "print_i32", Type: voidOf(valI32)},
		{Module: "env", Name: "print_f64", Type: voidOf(valF64)},
		{Module: "env", Name: "print_str", Type: voidOf(valI32)},
	}
	for i, imp := range imports {
		lw.importIdx[imp.Name] = uint32(i)
		lw.mod.Imports = append(lw.mod.Imports, imp)
		lw.mod.typeIndex(imp.Type)
	}
}

// collectAliases resolves every top-level type declaration once, up front:
// the lowerer is a single static walk, not an execution-order-dependent
// pass like the interpreter, so a forward reference to an alias declared
// later in the same program is resolved the same as a backward one.
func (lw *Lowerer) collectAliases(program *ast.Program) {
	for _, stmt := range program.Statements {
		if decl, ok := stmt.(*ast.TypeDecl); ok {
			lw.aliases[decl.Name.Value] = lw.resolveTypeRef(decl.Referent)
		}
	}
}

func (lw *Lowerer) resolveTypeRef(ref *ast.TypeRef) types.Type {
	if ref.Literal {
		t, ok := types.FromLiteral(ref.Name)
		if !ok {
			return types.Error
		}
		return t
	}
	if t, ok := lw.aliases[ref.Name]; ok {
		return t
	}
	return types.Error
}

func (lw *Lowerer) collectSignatures(program *ast.Program) {
	lw.funcDecls = map[string]*ast.Func{}
	for _, stmt := range program.Statements {
		fn, ok := stmt.(*ast.Func)
		if !ok {
			continue
		}
		sig := types.Signature{Result: types.Void}
		for _, p := range fn.Params {
			sig.Params = append(sig.Params, lw.resolveTypeRef(p.Type))
		}
		if fn.ReturnType != nil {
			sig.Result = lw.resolveTypeRef(fn.ReturnType)
		}
		lw.sigs[fn.Name.Value] = sig
		lw.funcDecls[fn.Name.Value] = fn
		lw.funcOrder = append(lw.funcOrder, fn.Name.Value)
	}
}

// funcIndex returns name's index in the WASM function index space (imports
// occupy the first len(imports) slots).
func (lw *Lowerer) funcIndex(name string) uint32 {
	if i, ok := lw.importIdx[name]; ok {
		return i
	}
	for i, n := range lw.funcOrder {
		if n == name {
			return uint32(len(lw.mod.Imports) + i)
		}
	}
	return 0
}

func wasmValtype(t types.Type) valtype {
	if t.Equal(types.Float) {
		return valF64
	}
	return valI32
}
