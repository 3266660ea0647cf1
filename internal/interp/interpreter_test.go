package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/colecarley/bird-lang-sub000/internal/errors"
	"github.com/colecarley/bird-lang-sub000/internal/lexer"
	"github.com/colecarley/bird-lang-sub000/internal/parser"
	"github.com/colecarley/bird-lang-sub000/internal/semantic"
	"github.com/colecarley/bird-lang-sub000/internal/typecheck"
)

// run lexes, parses, semantically analyzes, type-checks, and interprets
// input against a fresh Interpreter, returning everything print wrote.
func run(t *testing.T, input string) string {
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

	var buf bytes.Buffer
	if err := New(&buf).Run(program); err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	return buf.String()
}

func TestRunPrintLiterals(t *testing.T) {
	got := run(t, `print 1, 2.5, "hi", true;`)
	want := "1 2.5 hi true\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunArithmeticMixingAsymmetry(t *testing.T) {
	got := run(t, "var a: int = 1 + 2.9; var b: float = 2.9 + 1; print a; print b;")
	want := "3\n3.9\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunWhileLoop(t *testing.T) {
	got := run(t, "var i: int = 0; while i < 3 { print i; i += 1; }")
	want := "0\n1\n2\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunForLoopRunsInitUnconditionally(t *testing.T) {
	// for/while equivalence: init runs once even when the loop body never
	// executes because the condition is false from the start.
	got := run(t, "var x: int = 0; for var i: int = 0; false; i += 1 do { x = 99; } print x;")
	want := "0\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunBreakExitsLoop(t *testing.T) {
	got := run(t, "var i: int = 0; while true { if i == 3 { break; } print i; i += 1; }")
	want := "0\n1\n2\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunContinueSkipsRestOfBody(t *testing.T) {
	got := run(t, `
		for var i: int = 0; i < 5; i += 1 do {
			if i % 2 == 0 { continue; }
			print i;
		}`)
	want := "1\n3\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunFunctionCallAndReturn(t *testing.T) {
	got := run(t, `
		fn add(a: int, b: int) -> int { return a + b; }
		print add(2, 3);`)
	want := "5\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunTernary(t *testing.T) {
	got := run(t, `print true ? "yes" : "no";`)
	want := "yes\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunCompoundAssignment(t *testing.T) {
	got := run(t, "var x: int = 10; x -= 3; x *= 2; print x;")
	want := "14\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunDivisionByZeroIsRuntimeError(t *testing.T) {
	l := lexer.New("var x: int = 1 / 0; print x;")
	p := parser.New(l)
	program := p.ParseProgram()

	var buf bytes.Buffer
	err := New(&buf).Run(program)
	if err == nil {
		t.Fatal("expected a division-by-zero runtime error")
	}
	if !strings.Contains(err.Error(), "division by zero") {
		t.Errorf("got error %q, want it to mention division by zero", err.Error())
	}
}

func TestRunBlockScopingShadowsOuterVar(t *testing.T) {
	got := run(t, `
		var x: int = 1;
		{
			var x: int = 2;
			print x;
		}
		print x;`)
	want := "2\n1\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInterpreterRunAccumulatesTopLevelStateAcrossCalls(t *testing.T) {
	// The REPL depends on this: Run does not push/pop its own top-level
	// scope, so a name declared in one Run call is visible to the next.
	var buf bytes.Buffer
	in := New(&buf)

	l1 := lexer.New("var counter: int = 1;")
	p1 := parser.New(l1)
	if err := in.Run(p1.ParseProgram()); err != nil {
		t.Fatalf("first Run failed: %v", err)
	}

	l2 := lexer.New("counter += 1; print counter;")
	p2 := parser.New(l2)
	if err := in.Run(p2.ParseProgram()); err != nil {
		t.Fatalf("second Run failed: %v", err)
	}

	if got := buf.String(); got != "2\n" {
		t.Errorf("got %q, want %q", got, "2\n")
	}
}
