package parser

import (
	"testing"

	"github.com/colecarley/bird-lang-sub000/internal/ast"
	"github.com/colecarley/bird-lang-sub000/internal/lexer"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	l := lexer.New(input)
	p := New(l)
	program := p.ParseProgram()
	if lexErr := p.LexError(); lexErr != nil {
		t.Fatalf("unexpected lex error: %v", lexErr)
	}
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	return program
}

func TestParseVarDecl(t *testing.T) {
	program := parseProgram(t, "var x: int = 1 + 2;")
	if len(program.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(program.Statements))
	}
	decl, ok := program.Statements[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("got %T, want *ast.VarDecl", program.Statements[0])
	}
	if decl.Name.Value != "x" {
		t.Errorf("Name = %q, want x", decl.Name.Value)
	}
	if decl.DeclaredType == nil || decl.DeclaredType.Name != "int" {
		t.Errorf("DeclaredType = %v, want int", decl.DeclaredType)
	}
	bin, ok := decl.Initializer.(*ast.Binary)
	if !ok || bin.Operator != "+" {
		t.Fatalf("Initializer = %#v, want a '+' Binary", decl.Initializer)
	}
}

func TestParseConstDeclWithoutType(t *testing.T) {
	program := parseProgram(t, `const greeting = "hi";`)
	decl, ok := program.Statements[0].(*ast.ConstDecl)
	if !ok {
		t.Fatalf("got %T, want *ast.ConstDecl", program.Statements[0])
	}
	if decl.DeclaredType != nil {
		t.Errorf("DeclaredType = %v, want nil", decl.DeclaredType)
	}
	str, ok := decl.Initializer.(*ast.StringLiteral)
	if !ok || str.Value != "hi" {
		t.Fatalf("Initializer = %#v, want StringLiteral(hi)", decl.Initializer)
	}
}

func TestParseTypeDecl(t *testing.T) {
	program := parseProgram(t, "type meters = int;")
	decl, ok := program.Statements[0].(*ast.TypeDecl)
	if !ok {
		t.Fatalf("got %T, want *ast.TypeDecl", program.Statements[0])
	}
	if decl.Name.Value != "meters" || decl.Referent.Name != "int" {
		t.Errorf("got name=%q referent=%q", decl.Name.Value, decl.Referent.Name)
	}
}

func TestParseIfElse(t *testing.T) {
	program := parseProgram(t, "if x < 1 { print x; } else { print 0; }")
	ifStmt, ok := program.Statements[0].(*ast.If)
	if !ok {
		t.Fatalf("got %T, want *ast.If", program.Statements[0])
	}
	if ifStmt.Else == nil {
		t.Fatal("expected an else branch")
	}
	if _, ok := ifStmt.Then.(*ast.Block); !ok {
		t.Errorf("Then = %T, want *ast.Block", ifStmt.Then)
	}
}

func TestParseElseIfChain(t *testing.T) {
	program := parseProgram(t, "if x == 1 { } else if x == 2 { } else { }")
	ifStmt := program.Statements[0].(*ast.If)
	elseIf, ok := ifStmt.Else.(*ast.If)
	if !ok {
		t.Fatalf("Else = %T, want a nested *ast.If for else-if", ifStmt.Else)
	}
	if elseIf.Else == nil {
		t.Error("expected the final else branch on the nested if")
	}
}

func TestParseWhile(t *testing.T) {
	program := parseProgram(t, "while x < 10 { x = x + 1; }")
	w, ok := program.Statements[0].(*ast.While)
	if !ok {
		t.Fatalf("got %T, want *ast.While", program.Statements[0])
	}
	if w.Cond == nil {
		t.Error("expected a condition")
	}
}

func TestParseForAllClauses(t *testing.T) {
	program := parseProgram(t, "for var i: int = 0; i < 10; i += 1 do { print i; }")
	f, ok := program.Statements[0].(*ast.For)
	if !ok {
		t.Fatalf("got %T, want *ast.For", program.Statements[0])
	}
	if f.Init == nil || f.Cond == nil || f.Step == nil {
		t.Errorf("expected all three clauses present, got init=%v cond=%v step=%v", f.Init, f.Cond, f.Step)
	}
}

func TestParseForWithOmittedClauses(t *testing.T) {
	program := parseProgram(t, "for ; x < 10; do { break; }")
	f, ok := program.Statements[0].(*ast.For)
	if !ok {
		t.Fatalf("got %T, want *ast.For", program.Statements[0])
	}
	if f.Init != nil {
		t.Errorf("Init = %v, want nil", f.Init)
	}
	if f.Step != nil {
		t.Errorf("Step = %v, want nil", f.Step)
	}
}

func TestParseFuncDecl(t *testing.T) {
	program := parseProgram(t, "fn add(a: int, b: int) -> int { return a + b; }")
	fn, ok := program.Statements[0].(*ast.Func)
	if !ok {
		t.Fatalf("got %T, want *ast.Func", program.Statements[0])
	}
	if fn.Name.Value != "add" {
		t.Errorf("Name = %q, want add", fn.Name.Value)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("got %d params, want 2", len(fn.Params))
	}
	if fn.ReturnType == nil || fn.ReturnType.Name != "int" {
		t.Errorf("ReturnType = %v, want int", fn.ReturnType)
	}
}

func TestParseFuncNoReturnType(t *testing.T) {
	program := parseProgram(t, "fn sayHi() { print \"hi\"; }")
	fn := program.Statements[0].(*ast.Func)
	if fn.ReturnType != nil {
		t.Errorf("ReturnType = %v, want nil", fn.ReturnType)
	}
}

func TestParsePrintMultipleArgs(t *testing.T) {
	program := parseProgram(t, `print "x =", 1, true;`)
	print, ok := program.Statements[0].(*ast.PrintStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.PrintStmt", program.Statements[0])
	}
	if len(print.Args) != 3 {
		t.Fatalf("got %d args, want 3", len(print.Args))
	}
}

func TestParseCallExpression(t *testing.T) {
	program := parseProgram(t, "add(1, 2);")
	exprStmt := program.Statements[0].(*ast.ExprStmt)
	call, ok := exprStmt.Expr.(*ast.Call)
	if !ok {
		t.Fatalf("got %T, want *ast.Call", exprStmt.Expr)
	}
	if call.Callee.Value != "add" || len(call.Args) != 2 {
		t.Errorf("got callee=%q args=%d, want add/2", call.Callee.Value, len(call.Args))
	}
}

func TestParseTernary(t *testing.T) {
	program := parseProgram(t, "x = a ? 1 : 2;")
	exprStmt := program.Statements[0].(*ast.ExprStmt)
	assign := exprStmt.Expr.(*ast.Assign)
	ternary, ok := assign.Value.(*ast.Ternary)
	if !ok {
		t.Fatalf("got %T, want *ast.Ternary", assign.Value)
	}
	if ternary.Cond == nil || ternary.Then == nil || ternary.Else == nil {
		t.Error("expected all three ternary branches")
	}
}

func TestParseCompoundAssignment(t *testing.T) {
	program := parseProgram(t, "x += 1;")
	exprStmt := program.Statements[0].(*ast.ExprStmt)
	assign, ok := exprStmt.Expr.(*ast.Assign)
	if !ok {
		t.Fatalf("got %T, want *ast.Assign", exprStmt.Expr)
	}
	if assign.Operator != "+=" {
		t.Errorf("Operator = %q, want +=", assign.Operator)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3;", "(1 + (2 * 3));"},
		{"(1 + 2) * 3;", "((1 + 2) * 3);"},
		{"-1 + 2;", "((-1) + 2);"},
		{"1 < 2 == true;", "((1 < 2) == true);"},
	}
	for _, c := range cases {
		program := parseProgram(t, c.input)
		if got := program.String(); got != c.want {
			t.Errorf("%q -> %q, want %q", c.input, got, c.want)
		}
	}
}

func TestParserRecoversFromMalformedStatement(t *testing.T) {
	l := lexer.New("var ; print 1;")
	p := New(l)
	program := p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatal("expected at least one recoverable parse error")
	}
	found := false
	for _, s := range program.Statements {
		if ps, ok := s.(*ast.PrintStmt); ok {
			found = true
			if len(ps.Args) != 1 {
				t.Errorf("recovered print statement has %d args, want 1", len(ps.Args))
			}
		}
	}
	if !found {
		t.Error("expected parsing to recover and still parse the trailing print statement")
	}
}

func TestParserReportsLexFatalError(t *testing.T) {
	l := lexer.New("var x = @;")
	p := New(l)
	p.ParseProgram()
	if p.LexError() == nil {
		t.Fatal("expected a fatal lex error to propagate to the parser")
	}
}
