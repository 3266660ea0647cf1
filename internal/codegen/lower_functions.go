package codegen

import (
	"bytes"

	"github.com/colecarley/bird-lang-sub000/internal/ast"
	"github.com/colecarley/bird-lang-sub000/internal/env"
	"github.com/colecarley/bird-lang-sub000/internal/types"
)

// localSlot records one local's WASM index and Bird type, the latter
// needed to decide whether an assignment or declaration must insert a
// numeric conversion.
type localSlot struct {
	index uint32
	typ   types.Type
}

// fnCtx is the lowering state for a single function body: its locals, a
// label stack for computing `br`/`br_if` depths, and the body bytes
// accumulated so far.
type fnCtx struct {
	lw *Lowerer

	returnType types.Type

	localTypes []types.Type
	localNames []string
	scope      *env.Scope[localSlot]

	body   bytes.Buffer
	labels []string

	text   bytes.Buffer
	indent int
}

func newFnCtx(lw *Lowerer, returnType types.Type) *fnCtx {
	return &fnCtx{
		lw:         lw,
		returnType: returnType,
		scope:      env.New[localSlot](),
	}
}

func (f *fnCtx) allocLocal(name string, t types.Type) localSlot {
	slot := localSlot{index: uint32(len(f.localTypes)), typ: t}
	f.localTypes = append(f.localTypes, t)
	f.localNames = append(f.localNames, name)
	f.scope.Declare(name, slot)
	return slot
}

func (f *fnCtx) pushScope() { f.scope.Push() }
func (f *fnCtx) popScope()  { f.scope.Pop() }

func (f *fnCtx) emitByte(b byte) { f.body.WriteByte(b) }

// emitOp writes one opcode byte and its mnemonic line; opcodes that carry
// an immediate operand leave their text line open (no trailing newline)
// for the following emitU32/emitI64/emitF64 call to complete.
func (f *fnCtx) emitOp(op opcode) {
	f.body.WriteByte(byte(op))
	f.writeIndent()
	f.text.WriteString(mnemonics[op])
	if !opHasOperand[op] {
		f.text.WriteByte('\n')
	}
}

func (f *fnCtx) emitU32(v uint32) {
	uleb128(&f.body, v)
	fmtAppend(&f.text, " %d\n", v)
}

func (f *fnCtx) emitI64(v int64) {
	sleb128(&f.body, v)
	fmtAppend(&f.text, " %d\n", v)
}

func (f *fnCtx) emitF64(v float64) {
	f64le(&f.body, v)
	fmtAppend(&f.text, " %g\n", v)
}

func (f *fnCtx) writeIndent() {
	for i := 0; i < f.indent; i++ {
		f.text.WriteString("  ")
	}
}

// enterBlock opens one structured construct (block/loop/if), pushing label
// onto the depth-tracking stack; label is "" for constructs break/continue
// never target directly (an `if` wrapping a loop, for instance), but it
// still occupies a nesting level that later depth lookups must count.
func (f *fnCtx) enterBlock(op opcode, label string) {
	f.writeIndent()
	f.text.WriteString(mnemonics[op])
	if label != "" {
		fmtAppend(&f.text, " $%s", label)
	}
	f.text.WriteByte('\n')

	f.body.WriteByte(byte(op))
	f.emitByte(blocktypeEmpty)
	f.labels = append(f.labels, label)
	f.indent++
}

func (f *fnCtx) exitBlock() {
	f.indent--
	f.writeIndent()
	f.text.WriteString("end\n")
	f.body.WriteByte(byte(opEnd))
	f.labels = f.labels[:len(f.labels)-1]
}

// depthOf returns the branch depth of the innermost construct labeled
// name, counting outward from the current position.
func (f *fnCtx) depthOf(name string) uint32 {
	for i := len(f.labels) - 1; i >= 0; i-- {
		if f.labels[i] == name {
			return uint32(len(f.labels) - 1 - i)
		}
	}
	return 0
}

// lowerFunc builds one exported function from a `fn` declaration.
func (lw *Lowerer) lowerFunc(fn *ast.Func) (Function, error) {
	sig := lw.sigs[fn.Name.Value]
	fx := newFnCtx(lw, sig.Result)

	var paramNames []string
	for i, p := range fn.Params {
		fx.allocLocal(p.Name.Value, sig.Params[i])
		paramNames = append(paramNames, p.Name.Value)
	}

	if err := fx.lowerBlockBody(fn.Body.Stmts); err != nil {
		return Function{}, err
	}

	paramCount := len(fn.Params)
	ft := FuncType{Results: resultValtypes(sig.Result)}
	for _, p := range sig.Params {
		ft.Params = append(ft.Params, wasmValtype(p))
	}

	return Function{
		Name:       fn.Name.Value,
		TypeIndex:  lw.mod.typeIndex(ft),
		Locals:     valtypesOf(fx.localTypes[paramCount:]),
		Body:       fx.body.Bytes(),
		ParamNames: paramNames,
		ParamTypes: ft.Params,
		LocalNames: fx.localNames[paramCount:],
		Text:       fx.text.String(),
	}, nil
}

// lowerMain builds the exported `main` function from every top-level
// statement that is not itself a `fn` or `type` declaration.
func (lw *Lowerer) lowerMain(program *ast.Program) (Function, error) {
	fx := newFnCtx(lw, types.Void)

	for _, stmt := range program.Statements {
		switch stmt.(type) {
		case *ast.Func, *ast.TypeDecl:
			continue
		}
		if err := fx.lowerStatement(stmt); err != nil {
			return Function{}, err
		}
	}

	ft := FuncType{}
	return Function{
		Name:       "main",
		TypeIndex:  lw.mod.typeIndex(ft),
		Locals:     valtypesOf(fx.localTypes),
		Body:       fx.body.Bytes(),
		LocalNames: fx.localNames,
		Text:       fx.text.String(),
	}, nil
}

func resultValtypes(t types.Type) []valtype {
	if t.Equal(types.Void) {
		return nil
	}
	return []valtype{wasmValtype(t)}
}

func valtypesOf(ts []types.Type) []valtype {
	out := make([]valtype, len(ts))
	for i, t := range ts {
		out[i] = wasmValtype(t)
	}
	return out
}
