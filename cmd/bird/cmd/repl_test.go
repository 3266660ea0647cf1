package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/colecarley/bird-lang-sub000/internal/interp"
	"github.com/colecarley/bird-lang-sub000/internal/lexer"
	"github.com/colecarley/bird-lang-sub000/internal/parser"
)

func newTestRepl(buf *bytes.Buffer) *repl {
	r := newRepl()
	r.interpreter = interp.New(buf)
	return r
}

func TestEvalLinePrintsOutput(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRepl(&buf)

	r.evalLine(&buf, `print 1 + 2;`)
	if !strings.Contains(buf.String(), "3") {
		t.Errorf("output = %q, want it to contain the printed value", buf.String())
	}
}

func TestEvalLinePersistsStateAcrossLines(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRepl(&buf)

	r.evalLine(&buf, `var x: int = 10;`)
	buf.Reset()
	r.evalLine(&buf, `print x + 1;`)
	if !strings.Contains(buf.String(), "11") {
		t.Errorf("output = %q, want the var declared on the prior line to still be visible", buf.String())
	}
}

func TestEvalLineBareExpressionPrintsOk(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRepl(&buf)

	r.evalLine(&buf, `1 + 2;`)
	if !strings.Contains(buf.String(), "ok") {
		t.Errorf("output = %q, want a bare expression statement to report ok", buf.String())
	}
}

func TestEvalLineReportsTypeError(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRepl(&buf)

	r.evalLine(&buf, `var x: str = 1;`)
	if buf.Len() == 0 {
		t.Error("expected a type error to be reported")
	}
}

func TestEvalLineReportsParseError(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRepl(&buf)

	r.evalLine(&buf, `var ;`)
	if buf.Len() == 0 {
		t.Error("expected a parse error to be reported")
	}
}

func TestEvalLineRecoversFromRuntimeError(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRepl(&buf)

	r.evalLine(&buf, `print 1 / 0;`)
	if !strings.Contains(buf.String(), "division by zero") {
		t.Errorf("output = %q, want it to report the division-by-zero runtime error", buf.String())
	}
}

func TestIsBareExpr(t *testing.T) {
	parseLine := func(src string) *parser.Parser {
		return parser.New(lexer.New(src))
	}

	bare := parseLine(`1 + 2;`).ParseProgram()
	if !isBareExpr(bare) {
		t.Error("expected a single expression statement to be a bare expression")
	}

	decl := parseLine(`var x: int = 1;`).ParseProgram()
	if isBareExpr(decl) {
		t.Error("a var declaration is not a bare expression")
	}

	multi := parseLine(`1; 2;`).ParseProgram()
	if isBareExpr(multi) {
		t.Error("multiple statements are not a bare expression")
	}
}
