package codegen

// opcode is a single WebAssembly instruction byte. Only the subset the
// lowerer actually emits is named here; there is no disassembler-side
// decoder for the rest of the MVP instruction set.
type opcode byte

const (
	// Control flow. Block types used throughout are the empty ("void")
	// block type 0x40 — Bird functions that produce a value do so only at
	// a `return`, never by falling off the end of a structured block.
	opUnreachable opcode = 0x00
	opBlock       opcode = 0x02 // [] -> [] (plus blocktype byte)
	opLoop        opcode = 0x03 // [] -> [] (plus blocktype byte)
	opIf          opcode = 0x04 // [cond] -> [] (plus blocktype byte)
	opElse        opcode = 0x05
	opEnd         opcode = 0x0B
	opBr          opcode = 0x0C // [] -> [] (plus label depth)
	opBrIf        opcode = 0x0D // [cond] -> [] (plus label depth)
	opReturn      opcode = 0x0F
	opCall        opcode = 0x10 // [params...] -> [result?] (plus func index)

	opDrop   opcode = 0x1A // [v] -> []
	opSelect opcode = 0x1B // [a, b, cond] -> [a or b]

	opLocalGet opcode = 0x20 // [] -> [v]
	opLocalSet opcode = 0x21 // [v] -> []
	opLocalTee opcode = 0x22 // [v] -> [v]

	opI32Const opcode = 0x41
	opF64Const opcode = 0x44

	opI32Eqz opcode = 0x45 // [a] -> [a==0]
	opI32Eq  opcode = 0x46
	opI32Ne  opcode = 0x47
	opI32LtS opcode = 0x48
	opI32GtS opcode = 0x4A
	opI32LeS opcode = 0x4C
	opI32GeS opcode = 0x4E

	opF64Eq opcode = 0x61
	opF64Ne opcode = 0x62
	opF64Lt opcode = 0x63
	opF64Gt opcode = 0x64
	opF64Le opcode = 0x65
	opF64Ge opcode = 0x66

	opI32Add  opcode = 0x6A
	opI32Sub  opcode = 0x6B
	opI32Mul  opcode = 0x6C
	opI32DivS opcode = 0x6D
	opI32RemS opcode = 0x6F

	opF64Neg opcode = 0x9A
	opF64Add opcode = 0xA0
	opF64Sub opcode = 0xA1
	opF64Mul opcode = 0xA2
	opF64Div opcode = 0xA3

	opI32TruncF64S opcode = 0xAA // [f] -> [i], truncating toward zero
	opF64ConvertI32S opcode = 0xB7 // [i] -> [f]
)

// blocktype is the byte following block/loop/if that names the construct's
// result type; the lowerer never emits a value-producing structured
// control-flow construct, so this is always the empty type.
const blocktypeEmpty = 0x40

// valtype identifies a WASM local/param/result's storage type. Bird's Int,
// Str (as a data-segment pointer), and Bool all map to i32; Float maps to
// f64.
type valtype byte

const (
	valI32 valtype = 0x7F
	valF64 valtype = 0x7C
)

// Section IDs, in the fixed order they must appear in an encoded module.
const (
	secType     = 1
	secImport   = 2
	secFunction = 3
	secMemory   = 5
	secExport   = 7
	secCode     = 10
	secData     = 11
)

const (
	externFunc   = 0x00
	externMemory = 0x02
)
