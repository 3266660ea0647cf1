package cmd

import (
	"strings"
	"testing"
)

func resetLexFlags() {
	evalExpr = ""
	showPos = false
	showType = false
	onlyErrors = false
}

func TestLexScriptPrintsEachToken(t *testing.T) {
	defer resetLexFlags()
	evalExpr = "x = 1;"

	var runErr error
	output := captureStdout(t, func() {
		runErr = lexScript(lexCmd, nil)
	})
	if runErr != nil {
		t.Fatalf("lexScript failed: %v", runErr)
	}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	// x, =, 1, ;, EOF
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5: %q", len(lines), output)
	}
	if !strings.Contains(lines[len(lines)-1], "EOF") {
		t.Errorf("last line = %q, want it to mention EOF", lines[len(lines)-1])
	}
}

func TestLexScriptShowTypeAndPos(t *testing.T) {
	defer resetLexFlags()
	evalExpr = "x"
	showType = true
	showPos = true

	output := captureStdout(t, func() {
		if err := lexScript(lexCmd, nil); err != nil {
			t.Fatalf("lexScript failed: %v", err)
		}
	})
	if !strings.Contains(output, "IDENT") {
		t.Errorf("output = %q, want it to show the IDENT token type", output)
	}
	if !strings.Contains(output, "@1:1") {
		t.Errorf("output = %q, want it to show the token position", output)
	}
}

func TestLexScriptStopsOnFatalLexError(t *testing.T) {
	defer resetLexFlags()
	evalExpr = "@"

	err := lexScript(lexCmd, nil)
	if err == nil {
		t.Fatal("expected lexScript to fail on an illegal character")
	}
}
