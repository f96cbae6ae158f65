package lexer

import (
	"testing"

	"oxjs/internal/source"
	"oxjs/internal/token"
)

func lexKinds(t *testing.T, src string) []token.Kind {
	t.Helper()
	fs := source.NewFileSet()
	f, err := fs.AddVirtual("test.rs", []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	var kinds []token.Kind
	for _, tok := range Tokenize(f) {
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func lexOne(t *testing.T, src string) token.Token {
	t.Helper()
	fs := source.NewFileSet()
	f, err := fs.AddVirtual("test.rs", []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	return New(f).Next()
}

func kindsEqual(a, b []token.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLexSimpleFunction(t *testing.T) {
	got := lexKinds(t, "fn add(a: i32, b: i32) -> i32 { a + b }")
	want := []token.Kind{
		token.KwFn, token.Ident, token.LParen,
		token.Ident, token.Colon, token.Ident, token.Comma,
		token.Ident, token.Colon, token.Ident, token.RParen,
		token.Arrow, token.Ident,
		token.LBrace, token.Ident, token.Plus, token.Ident, token.RBrace,
		token.EOF,
	}
	if !kindsEqual(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
}

func TestLexAttributesSkipped(t *testing.T) {
	src := "#[derive(Debug, Clone)]\n#[to_js]\nstruct Point { x: i32 }"
	got := lexKinds(t, src)
	want := []token.Kind{
		token.KwStruct, token.Ident, token.LBrace,
		token.Ident, token.Colon, token.Ident, token.RBrace,
		token.EOF,
	}
	if !kindsEqual(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
}

func TestLexCommentsSkipped(t *testing.T) {
	src := "// line\n/* block /* nested */ still */ let x = 1;"
	got := lexKinds(t, src)
	want := []token.Kind{
		token.KwLet, token.Ident, token.Assign, token.IntLit, token.Semicolon, token.EOF,
	}
	if !kindsEqual(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
}

func TestLexNumbers(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Kind
		text string
	}{
		{"42", token.IntLit, "42"},
		{"42u32", token.IntLit, "42u32"},
		{"1_000_000", token.IntLit, "1_000_000"},
		{"0xFF", token.IntLit, "0xFF"},
		{"0b1010", token.IntLit, "0b1010"},
		{"3.14", token.FloatLit, "3.14"},
		{"1.5f64", token.FloatLit, "1.5f64"},
		{"2f32", token.FloatLit, "2f32"},
		{"1e9", token.FloatLit, "1e9"},
		{"2.5e-3", token.FloatLit, "2.5e-3"},
	}
	for _, tt := range tests {
		tok := lexOne(t, tt.src)
		if tok.Kind != tt.kind || tok.Text != tt.text {
			t.Errorf("lex(%q) = %v %q, want %v %q", tt.src, tok.Kind, tok.Text, tt.kind, tt.text)
		}
	}
}

func TestLexRangeAfterInt(t *testing.T) {
	got := lexKinds(t, "0..10")
	want := []token.Kind{token.IntLit, token.DotDot, token.IntLit, token.EOF}
	if !kindsEqual(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
	got = lexKinds(t, "0..=10")
	want = []token.Kind{token.IntLit, token.DotDotEq, token.IntLit, token.EOF}
	if !kindsEqual(got, want) {
		t.Errorf("inclusive kinds = %v, want %v", got, want)
	}
}

func TestLexMethodCallOnInt(t *testing.T) {
	got := lexKinds(t, "1.to_string()")
	want := []token.Kind{token.IntLit, token.Dot, token.Ident, token.LParen, token.RParen, token.EOF}
	if !kindsEqual(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
}

func TestLexStringsAndChars(t *testing.T) {
	tok := lexOne(t, `"hello \"world\""`)
	if tok.Kind != token.StringLit || tok.Text != `"hello \"world\""` {
		t.Errorf("string = %v %q", tok.Kind, tok.Text)
	}
	tok = lexOne(t, `'a'`)
	if tok.Kind != token.CharLit {
		t.Errorf("char = %v", tok.Kind)
	}
	tok = lexOne(t, `'\n'`)
	if tok.Kind != token.CharLit {
		t.Errorf("escaped char = %v", tok.Kind)
	}
}

func TestLexLifetime(t *testing.T) {
	got := lexKinds(t, "&'a str")
	want := []token.Kind{token.Amp, token.Lifetime, token.Ident, token.EOF}
	if !kindsEqual(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
}

func TestLexNestedGenericsClose(t *testing.T) {
	// '>>' must lex as two Gt tokens so nested generics close.
	got := lexKinds(t, "Vec<Vec<i32>>")
	want := []token.Kind{
		token.Ident, token.Lt, token.Ident, token.Lt, token.Ident,
		token.Gt, token.Gt, token.EOF,
	}
	if !kindsEqual(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
}

func TestLexOperators(t *testing.T) {
	got := lexKinds(t, "a += b; c == d; e != f; g && h || !i; j :: k => l ? m")
	want := []token.Kind{
		token.Ident, token.PlusAssign, token.Ident, token.Semicolon,
		token.Ident, token.EqEq, token.Ident, token.Semicolon,
		token.Ident, token.BangEq, token.Ident, token.Semicolon,
		token.Ident, token.AndAnd, token.Ident, token.OrOr, token.Bang, token.Ident, token.Semicolon,
		token.Ident, token.ColonColon, token.Ident, token.FatArrow, token.Ident,
		token.Question, token.Ident,
		token.EOF,
	}
	if !kindsEqual(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
}

func TestLexMacroBang(t *testing.T) {
	got := lexKinds(t, `println!("x = {}", x);`)
	want := []token.Kind{
		token.Ident, token.Bang, token.LParen, token.StringLit,
		token.Comma, token.Ident, token.RParen, token.Semicolon, token.EOF,
	}
	if !kindsEqual(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
}

func TestLexSpans(t *testing.T) {
	fs := source.NewFileSet()
	f, _ := fs.AddVirtual("test.rs", []byte("let foo = 1;"))
	lx := New(f)
	lx.Next() // let
	tok := lx.Next()
	if tok.Text != "foo" || tok.Span.Start != 4 || tok.Span.End != 7 {
		t.Errorf("foo span = %+v text %q", tok.Span, tok.Text)
	}
	if string(f.Content[tok.Span.Start:tok.Span.End]) != tok.Text {
		t.Error("span does not match text")
	}
}

func TestLexUnterminatedString(t *testing.T) {
	tok := lexOne(t, `"never closed`)
	if tok.Kind != token.Invalid {
		t.Errorf("kind = %v, want Invalid", tok.Kind)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	f, _ := fs.AddVirtual("test.rs", []byte("let x"))
	lx := New(f)
	if lx.Peek().Kind != token.KwLet {
		t.Error("peek should see let")
	}
	if lx.Next().Kind != token.KwLet {
		t.Error("next after peek should still be let")
	}
	if lx.Next().Kind != token.Ident {
		t.Error("then ident")
	}
}
