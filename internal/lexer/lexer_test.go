package lexer

import "testing"

func collectTokens(t *testing.T, input string) []Token {
	t.Helper()
	l := New(input)
	var toks []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("unexpected lex error: %v", err)
		}
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks
		}
	}
}

func TestNextTokenOperatorsAndPunctuation(t *testing.T) {
	input := `var x = 1 + 2 - 3 * 4 / 5 % 6;
x += 1; x -= 1; x *= 1; x /= 1; x %= 1;
x == 1; x != 1; x < 1; x <= 1; x > 1; x >= 1;
fn f() -> int { return x ? 1 : 2; }`

	toks := collectTokens(t, input)

	wantTypes := []TokenType{
		VAR, IDENT, ASSIGN, INT, PLUS, INT, MINUS, INT, STAR, INT, SLASH, INT, PERCENT, INT, SEMICOLON,
		IDENT, PLUS_EQ, INT, SEMICOLON, IDENT, MINUS_EQ, INT, SEMICOLON, IDENT, STAR_EQ, INT, SEMICOLON,
		IDENT, SLASH_EQ, INT, SEMICOLON, IDENT, PERCENT_EQ, INT, SEMICOLON,
		IDENT, EQ, INT, SEMICOLON, IDENT, NOT_EQ, INT, SEMICOLON, IDENT, LT, INT, SEMICOLON,
		IDENT, LT_EQ, INT, SEMICOLON, IDENT, GT, INT, SEMICOLON, IDENT, GT_EQ, INT, SEMICOLON,
		FN, IDENT, LPAREN, RPAREN, ARROW, TYPE_LITER, LBRACE,
		RETURN, IDENT, QUESTION, INT, COLON, INT, SEMICOLON, RBRACE, EOF,
	}

	if len(toks) != len(wantTypes) {
		t.Fatalf("token count = %d, want %d (%v)", len(toks), len(wantTypes), toks)
	}
	for i, want := range wantTypes {
		if toks[i].Type != want {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, want)
		}
	}
}

func TestNextTokenKeywordsAndIdents(t *testing.T) {
	toks := collectTokens(t, "var const type print if else while for do fn return break continue true false myVar1")
	want := []TokenType{VAR, CONST, TYPE, PRINT, IF, ELSE, WHILE, FOR, DO, FN, RETURN, BREAK, CONTINUE, TRUE, FALSE, IDENT, EOF}
	if len(toks) != len(want) {
		t.Fatalf("token count = %d, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, w)
		}
	}
}

func TestNextTokenIntVsFloat(t *testing.T) {
	l := New("123 123.45")
	first, err := l.NextToken()
	if err != nil || first.Type != INT || first.Literal != "123" {
		t.Errorf("got %v, %v, want INT(123)", first, err)
	}
	second, err := l.NextToken()
	if err != nil || second.Type != FLOAT || second.Literal != "123.45" {
		t.Errorf("got %v, %v, want FLOAT(123.45)", second, err)
	}
}

func TestNextTokenTrailingDotIsNotAFloat(t *testing.T) {
	// "123." with no trailing digit is not a float: the '.' is left
	// unconsumed, which then fails to lex as anything on its own.
	l := New("123.")
	first, err := l.NextToken()
	if err != nil || first.Type != INT || first.Literal != "123" {
		t.Errorf("got %v, %v, want INT(123)", first, err)
	}
	if _, err := l.NextToken(); err == nil {
		t.Fatal("expected a lex error scanning the stray '.'")
	}
}

func TestNextTokenString(t *testing.T) {
	toks := collectTokens(t, `"hello world"`)
	if toks[0].Type != STRING || toks[0].Literal != "hello world" {
		t.Errorf("got %v, want STRING(hello world)", toks[0])
	}
}

func TestNextTokenUnterminatedString(t *testing.T) {
	l := New(`"hello`)
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected lex error for unterminated string")
	}
}

func TestNextTokenUnterminatedBlockComment(t *testing.T) {
	l := New("/* comment never closes")
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected lex error for unterminated block comment")
	}
}

func TestNextTokenSkipsLineAndBlockComments(t *testing.T) {
	toks := collectTokens(t, "var x = 1; // trailing comment\n/* block */ var y = 2;")
	want := []TokenType{VAR, IDENT, ASSIGN, INT, SEMICOLON, VAR, IDENT, ASSIGN, INT, SEMICOLON, EOF}
	if len(toks) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, w)
		}
	}
}

func TestNextTokenIllegalCharacter(t *testing.T) {
	l := New("@")
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected lex error for illegal character")
	}
	if err.Pos.Line != 1 || err.Pos.Column != 1 {
		t.Errorf("got pos %+v, want line 1 column 1", err.Pos)
	}
}

func TestNextTokenArrowVsMinus(t *testing.T) {
	toks := collectTokens(t, "- -> -=")
	want := []TokenType{MINUS, ARROW, MINUS_EQ, EOF}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, w)
		}
	}
}

func TestNextTokenTracksLineAndColumn(t *testing.T) {
	l := New("x\ny")
	first, _ := l.NextToken()
	if first.Pos.Line != 1 {
		t.Errorf("first token line = %d, want 1", first.Pos.Line)
	}
	second, _ := l.NextToken()
	if second.Pos.Line != 2 {
		t.Errorf("second token line = %d, want 2", second.Pos.Line)
	}
}

func TestLexErrorStickyAfterFirstFailure(t *testing.T) {
	l := New("@@")
	_, err1 := l.NextToken()
	if err1 == nil {
		t.Fatal("expected error on first call")
	}
	_, err2 := l.NextToken()
	if err2 != err1 {
		t.Errorf("expected NextToken to keep returning the same error once it has failed")
	}
}
