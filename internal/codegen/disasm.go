package codegen

import (
	"bytes"
	"fmt"
	"io"
)

func fmtAppend(buf *bytes.Buffer, format string, args ...interface{}) {
	fmt.Fprintf(buf, format, args...)
}

// mnemonics names every opcode the lowerer can emit; disassembly is purely
// textual, built up during lowering rather than decoded back out of the
// binary, since the binary alone no longer carries Bird-level names.
var mnemonics = map[opcode]string{
	opUnreachable:    "unreachable",
	opBlock:          "block",
	opLoop:           "loop",
	opIf:             "if",
	opElse:           "else",
	opEnd:            "end",
	opBr:             "br",
	opBrIf:           "br_if",
	opReturn:         "return",
	opCall:           "call",
	opDrop:           "drop",
	opSelect:         "select",
	opLocalGet:       "local.get",
	opLocalSet:       "local.set",
	opLocalTee:       "local.tee",
	opI32Const:       "i32.const",
	opF64Const:       "f64.const",
	opI32Eqz:         "i32.eqz",
	opI32Eq:          "i32.eq",
	opI32Ne:          "i32.ne",
	opI32LtS:         "i32.lt_s",
	opI32GtS:         "i32.gt_s",
	opI32LeS:         "i32.le_s",
	opI32GeS:         "i32.ge_s",
	opF64Eq:          "f64.eq",
	opF64Ne:          "f64.ne",
	opF64Lt:          "f64.lt",
	opF64Gt:          "f64.gt",
	opF64Le:          "f64.le",
	opF64Ge:          "f64.ge",
	opI32Add:         "i32.add",
	opI32Sub:         "i32.sub",
	opI32Mul:         "i32.mul",
	opI32DivS:        "i32.div_s",
	opI32RemS:        "i32.rem_s",
	opF64Neg:         "f64.neg",
	opF64Add:         "f64.add",
	opF64Sub:         "f64.sub",
	opF64Mul:         "f64.mul",
	opF64Div:         "f64.div",
	opI32TruncF64S:   "i32.trunc_f64_s",
	opF64ConvertI32S: "f64.convert_i32_s",
}

// opHasOperand marks opcodes whose mnemonic line is completed by a
// following emitU32/emitI64/emitF64 call rather than immediately.
var opHasOperand = map[opcode]bool{
	opBr:       true,
	opBrIf:     true,
	opCall:     true,
	opLocalGet: true,
	opLocalSet: true,
	opLocalTee: true,
	opI32Const: true,
	opF64Const: true,
}

// Disassemble writes a human-readable rendering of the module: its
// imports, memory and data layout, and each function's locals and
// WAT-like body text, the way the reference compiler prints the textual
// module before serialising output.wasm.
func (m *Module) Disassemble(w io.Writer) {
	fmt.Fprintf(w, "(module\n")
	for _, imp := range m.Imports {
		fmt.Fprintf(w, "  (import %q %q (func %s))\n", imp.Module, imp.Name, valtypeSig(imp.Type))
	}
	fmt.Fprintf(w, "  (memory 1 %d)\n", m.MemoryMax)
	for _, seg := range m.Data {
		fmt.Fprintf(w, "  (data (i32.const %d) %q)\n", seg.Offset, string(seg.Bytes))
	}
	for _, fn := range m.Functions {
		m.disassembleFunc(w, fn)
	}
	fmt.Fprintf(w, ")\n")
}

func (m *Module) disassembleFunc(w io.Writer, fn Function) {
	fmt.Fprintf(w, "  (func $%s\n", fn.Name)
	for i, name := range fn.ParamNames {
		fmt.Fprintf(w, "    (param $%s %s)\n", name, valtypeName(fn.ParamTypes[i]))
	}
	for i, name := range fn.LocalNames {
		fmt.Fprintf(w, "    (local $%s %s)\n", name, valtypeName(fn.Locals[i]))
	}
	for _, line := range splitLines(fn.Text) {
		fmt.Fprintf(w, "    %s\n", line)
	}
	fmt.Fprintf(w, "  )\n")
}

func valtypeName(v valtype) string {
	if v == valF64 {
		return "f64"
	}
	return "i32"
}

func valtypeSig(ft FuncType) string {
	var sb bytes.Buffer
	sb.WriteString("(")
	for i, p := range ft.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(valtypeName(p))
	}
	sb.WriteString(")")
	return sb.String()
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			if i > start {
				lines = append(lines, s[start:i])
			}
			start = i + 1
		}
	}
	return lines
}
