package codegen

import (
	"bytes"
	"math"
)

// uleb128 appends the unsigned LEB128 encoding of v to buf. WASM's binary
// format uses it for every section size, index, and count field.
func uleb128(buf *bytes.Buffer, v uint32) {
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		buf.WriteByte(b)
		if v == 0 {
			return
		}
	}
}

// sleb128 appends the signed LEB128 encoding of v, the form i32.const and
// block types are encoded in.
func sleb128(buf *bytes.Buffer, v int64) {
	more := true
	for more {
		b := byte(v & 0x7F)
		v >>= 7
		signBitSet := b&0x40 != 0
		if (v == 0 && !signBitSet) || (v == -1 && signBitSet) {
			more = false
		} else {
			b |= 0x80
		}
		buf.WriteByte(b)
	}
}

func f64le(buf *bytes.Buffer, v float64) {
	bits := math.Float64bits(v)
	for i := 0; i < 8; i++ {
		buf.WriteByte(byte(bits))
		bits >>= 8
	}
}

// FuncType is a WASM function signature: ordered parameter and result
// value types. The lowerer deduplicates identical signatures into the
// module's type section, the way every hand-written WASM emitter does.
type FuncType struct {
	Params  []valtype
	Results []valtype
}

func (t FuncType) equal(o FuncType) bool {
	if len(t.Params) != len(o.Params) || len(t.Results) != len(o.Results) {
		return false
	}
	for i := range t.Params {
		if t.Params[i] != o.Params[i] {
			return false
		}
	}
	for i := range t.Results {
		if t.Results[i] != o.Results[i] {
			return false
		}
	}
	return true
}

// Import is a single imported function, always from module "env" in Bird's
// lowered output: the three print builtins the host must supply.
type Import struct {
	Module string
	Name   string
	Type   FuncType
}

// Function is one module-defined function: its signature (by type index),
// its locals beyond the parameters, and its already-encoded body bytes
// (everything between the locals declaration and the closing `end`, which
// encodeFunctionBody appends when the module is encoded).
type Function struct {
	Name       string
	TypeIndex  uint32
	Locals     []valtype // declared locals, beyond the parameters
	Body       []byte
	ParamNames []string  // for disassembly only
	ParamTypes []valtype // for disassembly only, aligned with ParamNames
	LocalNames []string  // for disassembly only, aligned with Locals
	Text       string    // WAT-like textual form, built during lowering
}

// DataSegment is an active initializer for memory 0 at Offset: Bird's string
// literals, packed back to back starting at offset 1024 the way the
// reference code generator lays them out, leaving the first kilobyte of
// linear memory free for a host runtime's own bookkeeping.
type DataSegment struct {
	Offset uint32
	Bytes  []byte
}

// Module is the in-memory representation of a lowered Bird program, ready
// to be serialized to the WASM binary format or dumped as text.
type Module struct {
	Types     []FuncType
	Imports   []Import
	Functions []Function
	Data      []DataSegment
	MemoryMax uint32 // pages, 64KiB each; initial is always fixed at 1
}

// typeIndex returns the index of ft in m.Types, appending it if not
// already present.
func (m *Module) typeIndex(ft FuncType) uint32 {
	for i, existing := range m.Types {
		if existing.equal(ft) {
			return uint32(i)
		}
	}
	m.Types = append(m.Types, ft)
	return uint32(len(m.Types) - 1)
}

// Encode assembles the module into the WASM binary format: the 8-byte
// header followed by the standard sections in ascending ID order.
func (m *Module) Encode() []byte {
	var out bytes.Buffer
	out.WriteString("\x00asm")
	out.Write([]byte{0x01, 0x00, 0x00, 0x00})

	writeSection(&out, secType, m.encodeTypeSection)
	writeSection(&out, secImport, m.encodeImportSection)
	writeSection(&out, secFunction, m.encodeFunctionSection)
	writeSection(&out, secMemory, m.encodeMemorySection)
	writeSection(&out, secExport, m.encodeExportSection)
	writeSection(&out, secCode, m.encodeCodeSection)
	writeSection(&out, secData, m.encodeDataSection)

	return out.Bytes()
}

func writeSection(out *bytes.Buffer, id byte, encode func() []byte) {
	body := encode()
	if body == nil {
		return
	}
	out.WriteByte(id)
	uleb128(out, uint32(len(body)))
	out.Write(body)
}

func (m *Module) encodeTypeSection() []byte {
	if len(m.Types) == 0 {
		return nil
	}
	var b bytes.Buffer
	uleb128(&b, uint32(len(m.Types)))
	for _, ft := range m.Types {
		b.WriteByte(0x60) // func type tag
		uleb128(&b, uint32(len(ft.Params)))
		for _, p := range ft.Params {
			b.WriteByte(byte(p))
		}
		uleb128(&b, uint32(len(ft.Results)))
		for _, r := range ft.Results {
			b.WriteByte(byte(r))
		}
	}
	return b.Bytes()
}

func (m *Module) encodeImportSection() []byte {
	if len(m.Imports) == 0 {
		return nil
	}
	var b bytes.Buffer
	uleb128(&b, uint32(len(m.Imports)))
	for _, imp := range m.Imports {
		writeName(&b, imp.Module)
		writeName(&b, imp.Name)
		b.WriteByte(externFunc)
		uleb128(&b, m.typeIndex(imp.Type))
	}
	return b.Bytes()
}

func (m *Module) encodeFunctionSection() []byte {
	if len(m.Functions) == 0 {
		return nil
	}
	var b bytes.Buffer
	uleb128(&b, uint32(len(m.Functions)))
	for _, fn := range m.Functions {
		uleb128(&b, fn.TypeIndex)
	}
	return b.Bytes()
}

func (m *Module) encodeMemorySection() []byte {
	var b bytes.Buffer
	uleb128(&b, 1)     // one memory
	b.WriteByte(0x01)  // flags: has max
	uleb128(&b, 1)     // initial pages, always 1
	uleb128(&b, m.MemoryMax)
	return b.Bytes()
}

// encodeExportSection exports every module-defined function — main and
// every user fn declaration — per spec §6's "main()→() and every user
// function" export contract.
func (m *Module) encodeExportSection() []byte {
	if len(m.Functions) == 0 {
		return nil
	}
	var b bytes.Buffer
	uleb128(&b, uint32(len(m.Functions)))
	for _, fn := range m.Functions {
		writeName(&b, fn.Name)
		b.WriteByte(externFunc)
		uleb128(&b, uint32(len(m.Imports))+indexOfFunc(m.Functions, fn.Name))
	}
	return b.Bytes()
}

func indexOfFunc(fns []Function, name string) uint32 {
	for i, fn := range fns {
		if fn.Name == name {
			return uint32(i)
		}
	}
	return 0
}

func (m *Module) encodeCodeSection() []byte {
	if len(m.Functions) == 0 {
		return nil
	}
	var b bytes.Buffer
	uleb128(&b, uint32(len(m.Functions)))
	for _, fn := range m.Functions {
		body := encodeFunctionBody(fn)
		uleb128(&b, uint32(len(body)))
		b.Write(body)
	}
	return b.Bytes()
}

// encodeFunctionBody writes the locals declaration (grouped by consecutive
// runs of the same valtype, as the format requires) followed by the
// already-lowered instruction bytes and a closing `end`.
func encodeFunctionBody(fn Function) []byte {
	var b bytes.Buffer

	type run struct {
		typ   valtype
		count uint32
	}
	var runs []run
	for _, l := range fn.Locals {
		if len(runs) > 0 && runs[len(runs)-1].typ == l {
			runs[len(runs)-1].count++
			continue
		}
		runs = append(runs, run{typ: l, count: 1})
	}

	uleb128(&b, uint32(len(runs)))
	for _, r := range runs {
		uleb128(&b, r.count)
		b.WriteByte(byte(r.typ))
	}

	b.Write(fn.Body)
	b.WriteByte(byte(opEnd))
	return b.Bytes()
}

func (m *Module) encodeDataSection() []byte {
	if len(m.Data) == 0 {
		return nil
	}
	var b bytes.Buffer
	uleb128(&b, uint32(len(m.Data)))
	for _, seg := range m.Data {
		uleb128(&b, 0) // active segment, memory index 0
		b.WriteByte(byte(opI32Const))
		sleb128(&b, int64(seg.Offset))
		b.WriteByte(byte(opEnd))
		uleb128(&b, uint32(len(seg.Bytes)))
		b.Write(seg.Bytes)
	}
	return b.Bytes()
}

func writeName(b *bytes.Buffer, s string) {
	uleb128(b, uint32(len(s)))
	b.WriteString(s)
}
