package codegen

import (
	"bytes"
	"testing"

	"github.com/colecarley/bird-lang-sub000/internal/ast"
	"github.com/colecarley/bird-lang-sub000/internal/errors"
	"github.com/colecarley/bird-lang-sub000/internal/lexer"
	"github.com/colecarley/bird-lang-sub000/internal/parser"
	"github.com/colecarley/bird-lang-sub000/internal/semantic"
	"github.com/colecarley/bird-lang-sub000/internal/typecheck"
	"github.com/gkampitakis/go-snaps/snaps"
)

// checkedProgram runs the full front end (parse, semantic analysis, type
// checking) the way compileScript does, so the lowerer sees a program with
// every expression's type already annotated.
func checkedProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}

	semSink := errors.NewSink(input)
	semantic.New(semSink).Analyze(program)
	if semSink.HasErrors() {
		t.Fatalf("unexpected semantic errors: %s", semSink.Format())
	}

	checkSink := errors.NewSink(input)
	typecheck.New(checkSink).Check(program)
	if checkSink.HasErrors() {
		t.Fatalf("unexpected type errors: %s", checkSink.Format())
	}
	return program
}

func TestLowerEncodesValidWasmHeader(t *testing.T) {
	program := checkedProgram(t, `print 1;`)
	mod, err := Lower(program)
	if err != nil {
		t.Fatalf("Lower failed: %v", err)
	}
	data := mod.Encode()
	if !bytes.HasPrefix(data, []byte("\x00asm\x01\x00\x00\x00")) {
		t.Fatalf("encoded module does not start with the WASM magic + version header: %x", data[:8])
	}
}

func TestLowerDeclaresThreePrintImports(t *testing.T) {
	program := checkedProgram(t, `print 1;`)
	mod, err := Lower(program)
	if err != nil {
		t.Fatalf("Lower failed: %v", err)
	}
	if len(mod.Imports) != 3 {
		t.Fatalf("got %d imports, want 3", len(mod.Imports))
	}
	names := map[string]bool{}
	for _, imp := range mod.Imports {
		if imp.Module != "env" {
			t.Errorf("import %q has module %q, want env", imp.Name, imp.Module)
		}
		names[imp.Name] = true
	}
	for _, want := range []string{"print_i32", "print_f64", "print_str"} {
		if !names[want] {
			t.Errorf("missing import %q", want)
		}
	}
}

func TestLowerStringLiteralsAreNotInterned(t *testing.T) {
	program := checkedProgram(t, `print "hi"; print "hi";`)
	mod, err := Lower(program)
	if err != nil {
		t.Fatalf("Lower failed: %v", err)
	}
	if len(mod.Data) != 2 {
		t.Fatalf("got %d data segments for two identical string literals, want 2 (non-interned)", len(mod.Data))
	}
	if mod.Data[0].Offset == mod.Data[1].Offset {
		t.Error("identical string literals should still get distinct offsets")
	}
}

func TestLowerStringDataStartsAtBaseOffset(t *testing.T) {
	program := checkedProgram(t, `print "hi";`)
	mod, err := Lower(program)
	if err != nil {
		t.Fatalf("Lower failed: %v", err)
	}
	if len(mod.Data) != 1 {
		t.Fatalf("got %d data segments, want 1", len(mod.Data))
	}
	if mod.Data[0].Offset != dataBaseOffset {
		t.Errorf("first string segment offset = %d, want %d", mod.Data[0].Offset, dataBaseOffset)
	}
}

func TestLowerStringLiteralIsNulTerminated(t *testing.T) {
	program := checkedProgram(t, `print "hi";`)
	mod, err := Lower(program)
	if err != nil {
		t.Fatalf("Lower failed: %v", err)
	}
	seg := mod.Data[0].Bytes
	if len(seg) != len("hi")+1 || seg[len(seg)-1] != 0 {
		t.Errorf("data segment = %v, want \"hi\" plus a trailing NUL", seg)
	}
}

func TestLowerExportsMain(t *testing.T) {
	program := checkedProgram(t, `print 1;`)
	mod, err := Lower(program)
	if err != nil {
		t.Fatalf("Lower failed: %v", err)
	}
	found := false
	for _, fn := range mod.Functions {
		if fn.Name == "main" {
			found = true
		}
	}
	if !found {
		t.Error("expected a function named main in the lowered module")
	}
}

func TestLowerUserFunctionsPrecedeMain(t *testing.T) {
	program := checkedProgram(t, `
		fn add(a: int, b: int) -> int { return a + b; }
		print add(1, 2);`)
	mod, err := Lower(program)
	if err != nil {
		t.Fatalf("Lower failed: %v", err)
	}
	if len(mod.Functions) != 2 {
		t.Fatalf("got %d functions, want 2 (add, main)", len(mod.Functions))
	}
	if mod.Functions[0].Name != "add" || mod.Functions[1].Name != "main" {
		t.Errorf("got function order %q, %q, want add, main", mod.Functions[0].Name, mod.Functions[1].Name)
	}
}

func TestEncodeExportSectionExportsEveryFunction(t *testing.T) {
	program := checkedProgram(t, `
		fn add(a: int, b: int) -> int { return a + b; }
		print add(1, 2);`)
	mod, err := Lower(program)
	if err != nil {
		t.Fatalf("Lower failed: %v", err)
	}
	body := mod.encodeExportSection()
	if len(body) == 0 {
		t.Fatal("expected a non-empty export section")
	}
	if !bytes.Contains(body, []byte("add")) {
		t.Error("expected the export section to contain the user function \"add\", not just \"main\"")
	}
	if !bytes.Contains(body, []byte("main")) {
		t.Error("expected the export section to contain \"main\"")
	}
}

func TestLowerModuloOnFloatIsUnsupported(t *testing.T) {
	program := checkedProgram(t, `print 1.0 % 2.0;`)
	_, err := Lower(program)
	if err == nil {
		t.Fatal("expected a lowering error for float modulo, which WebAssembly cannot express directly")
	}
}

func TestLowerStringConcatenationIsUnsupported(t *testing.T) {
	program := checkedProgram(t, `print "a" + "b";`)
	_, err := Lower(program)
	if err == nil {
		t.Fatal("expected a lowering error for string concatenation, which has no WebAssembly target representation")
	}
}

func TestDisassembleRepresentativeProgram(t *testing.T) {
	program := checkedProgram(t, `
		fn add(a: int, b: int) -> int {
			return a + b;
		}

		var total: int = 0;
		for var i: int = 0; i < 3; i += 1 do {
			total = add(total, i);
		}
		print "result:", total;`)

	mod, err := Lower(program)
	if err != nil {
		t.Fatalf("Lower failed: %v", err)
	}

	var buf bytes.Buffer
	mod.Disassemble(&buf)
	snaps.MatchSnapshot(t, "disassemble_representative_program", buf.String())
}
