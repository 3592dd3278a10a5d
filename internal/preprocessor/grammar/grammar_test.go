package grammar

import (
	"testing"

	"acc/internal/preprocessor/basetok"
	"acc/internal/preprocessor/pptoken"
)

// history is a minimal Lookback fed with every emitted token.
type history []pptoken.Token

func (h history) At(i int) (pptoken.Token, bool) {
	if i < 0 || i >= len(h) {
		return pptoken.Token{}, false
	}
	return h[len(h)-1-i], true
}

func lex(input string) []pptoken.Token {
	p := New(basetok.FromSource(input))
	var h history
	for {
		tok, ok := p.Next(h)
		if !ok {
			return h
		}
		h = append(h, tok)
	}
}

type want struct {
	kind  pptoken.Kind
	value string
}

func checkLex(t *testing.T, input string, expected []want) {
	t.Helper()
	got := lex(input)
	if len(got) != len(expected) {
		t.Fatalf("%q: got %d tokens %v, want %d", input, len(got), got, len(expected))
	}
	for i, tok := range got {
		if tok.Kind != expected[i].kind || tok.Value != expected[i].value {
			t.Errorf("%q token %d = %v, want %v(%q)", input, i, tok, expected[i].kind, expected[i].value)
		}
	}
}

func TestIdentifiersAndNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []want
	}{
		{"identifier with digits", "foo_1bar2", []want{{pptoken.Identifier, "foo_1bar2"}}},
		{"identifier joined by splice", "ab\\\ncd", []want{{pptoken.Identifier, "abcd"}}},
		{"decimal", "123", []want{{pptoken.PPNumber, "123"}}},
		{"float with exponent sign", "1.5e+10", []want{{pptoken.PPNumber, "1.5e+10"}}},
		{"leading period", ".5f", []want{{pptoken.PPNumber, ".5f"}}},
		{"hex with suffix", "0x1FUL", []want{{pptoken.PPNumber, "0x1FUL"}}},
		{"sign only after exponent", "1+2", []want{
			{pptoken.PPNumber, "1"}, {pptoken.Symbol, "+"}, {pptoken.PPNumber, "2"},
		}},
		{"pp-number swallows e+ of hex", "0x1e+1", []want{{pptoken.PPNumber, "0x1e+1"}}},
		{"number then identifier needs space", "12 ab", []want{
			{pptoken.PPNumber, "12"}, {pptoken.Identifier, "ab"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkLex(t, tt.input, tt.want)
		})
	}
}

func TestPunctuators(t *testing.T) {
	tests := []struct {
		input string
		want  []pptoken.Punctuator
	}{
		{"<<=", []pptoken.Punctuator{pptoken.LeftShiftAssign}},
		{"a->b", nil},
		{"+++", []pptoken.Punctuator{pptoken.Increment, pptoken.Plus}},
		{"...", []pptoken.Punctuator{pptoken.Ellipsis}},
		{"..", []pptoken.Punctuator{pptoken.Period, pptoken.Period}},
		{"##", []pptoken.Punctuator{pptoken.DoubleHash}},
		{"+ +", []pptoken.Punctuator{pptoken.Plus, pptoken.Plus}},
		{"+\\\n+", []pptoken.Punctuator{pptoken.Increment}},
		{"??=??=", []pptoken.Punctuator{pptoken.DoubleHash}},
		{"&&||!=", []pptoken.Punctuator{pptoken.DoubleAnd, pptoken.DoublePipe, pptoken.NotEqualTo}},
	}
	for _, tt := range tests {
		got := lex(tt.input)
		if tt.want == nil {
			if len(got) != 3 || !got[1].Is(pptoken.RightArrow) {
				t.Errorf("%q: got %v, want identifier -> identifier", tt.input, got)
			}
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("%q: got %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i, p := range tt.want {
			if !got[i].Is(p) {
				t.Errorf("%q token %d = %v, want %v", tt.input, i, got[i], p)
			}
		}
	}
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  pptoken.Kind
		value string
		wide  bool
	}{
		{"string", `"hello world"`, pptoken.StringLiteral, "hello world", false},
		{"string keeps spacing", `"a   b"`, pptoken.StringLiteral, "a   b", false},
		{"escaped quote", `"say \"hi\""`, pptoken.StringLiteral, `say \"hi\"`, false},
		{"escaped backslash", `"a\\"`, pptoken.StringLiteral, `a\\`, false},
		{"wide string", `L"wide"`, pptoken.StringLiteral, "wide", true},
		{"char", `'a'`, pptoken.CharacterConstant, "a", false},
		{"escaped char", `'\''`, pptoken.CharacterConstant, `\'`, false},
		{"wide char", `L'x'`, pptoken.CharacterConstant, "x", true},
		{"empty string", `""`, pptoken.StringLiteral, "", false},
		{"angle brackets outside include", `"<x>"`, pptoken.StringLiteral, "<x>", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lex(tt.input)
			if len(got) != 1 {
				t.Fatalf("got %v, want one token", got)
			}
			tok := got[0]
			if tok.Kind != tt.kind || tok.Value != tt.value || tok.Wide != tt.wide {
				t.Errorf("got %v (wide=%v), want %v(%q) wide=%v", tok, tok.Wide, tt.kind, tt.value, tt.wide)
			}
		})
	}
}

func TestRecoverableErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason pptoken.ErrorKind
		msg    string
		after  string
	}{
		{"unterminated string", "\"abc\nx", pptoken.ErrUnterminatedString, "unterminated string literal", "x"},
		{"unterminated char", "'a\nx", pptoken.ErrUnterminatedChar, "unterminated character constant", "x"},
		{"empty char", "'' x", pptoken.ErrEmptyChar, "empty character constant", "x"},
		{"stray backslash", "\\ x", pptoken.ErrStrayCharacter, `stray '\' in program`, "x"},
		{"stray dollar", "$ x", pptoken.ErrStrayCharacter, "stray '$' in program", "x"},
		{"stray carriage return", "\r x", pptoken.ErrStrayCharacter, `stray '\r' in program`, "x"},
		{"unterminated comment", "/* never closed", pptoken.ErrUnterminatedComment, "unterminated comment", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lex(tt.input)
			if len(got) == 0 || got[0].Kind != pptoken.Error || got[0].Value != tt.msg {
				t.Fatalf("got %v, want leading error %q", got, tt.msg)
			}
			if got[0].Reason != tt.reason {
				t.Errorf("reason = %s, want %s", got[0].Reason, tt.reason)
			}
			if tt.after == "" {
				if len(got) != 1 {
					t.Errorf("expected nothing after the error, got %v", got[1:])
				}
				return
			}
			if len(got) != 2 || !got[1].IsIdent(tt.after) {
				t.Errorf("scanning did not resume: got %v", got)
			}
		})
	}
}

func TestStrayCharactersSeparateTokens(t *testing.T) {
	checkLex(t, "a$b", []want{
		{pptoken.Identifier, "a"},
		{pptoken.Error, "stray '$' in program"},
		{pptoken.Identifier, "b"},
	})
	checkLex(t, "1@2", []want{
		{pptoken.PPNumber, "1"},
		{pptoken.Error, "stray '@' in program"},
		{pptoken.PPNumber, "2"},
	})

	// a splice is still invisible
	checkLex(t, "a\\\nb", []want{{pptoken.Identifier, "ab"}})
}

func TestStrayCharacterInsideLiteral(t *testing.T) {
	got := lex("\"h\u00e9llo\";")
	if len(got) != 3 {
		t.Fatalf("got %v, want literal, error, semicolon", got)
	}
	if got[0].Kind != pptoken.StringLiteral || got[0].Value != "hllo" {
		t.Errorf("literal = %v", got[0])
	}
	if got[1].Kind != pptoken.Error || got[1].Reason != pptoken.ErrStrayCharacter || got[1].Value != "stray '\u00e9' in program" {
		t.Errorf("error = %v", got[1])
	}
	if got[1].Row != 0 || got[1].Col != 2 {
		t.Errorf("error at %d:%d, want 0:2", got[1].Row, got[1].Col)
	}
	if !got[2].Is(pptoken.Semicolon) {
		t.Errorf("got %v after the error, want ;", got[2])
	}
}

func TestCommentsAndLayout(t *testing.T) {
	got := lex("a/* one\ntwo */b\n  c")
	if len(got) != 3 {
		t.Fatalf("got %v, want 3 identifiers", got)
	}

	a, b, c := got[0], got[1], got[2]
	if !a.StartOfLine || a.LeadingSpace {
		t.Errorf("a: StartOfLine=%v LeadingSpace=%v", a.StartOfLine, a.LeadingSpace)
	}
	if b.StartOfLine || !b.LeadingSpace {
		t.Errorf("b: a comment is one space, not a line break (StartOfLine=%v LeadingSpace=%v)", b.StartOfLine, b.LeadingSpace)
	}
	if !c.StartOfLine || !c.LeadingSpace {
		t.Errorf("c: StartOfLine=%v LeadingSpace=%v", c.StartOfLine, c.LeadingSpace)
	}
	if c.Row != 2 || c.Col != 2 {
		t.Errorf("c at %d:%d, want 2:2", c.Row, c.Col)
	}
}

func TestSlashIsNotAComment(t *testing.T) {
	got := lex("a // b")
	if len(got) != 4 || !got[1].Is(pptoken.ForwardSlash) || !got[2].Is(pptoken.ForwardSlash) {
		t.Errorf("got %v, C90 has no line comments", got)
	}
}

func TestHeaderNames(t *testing.T) {
	tests := []struct {
		input string
		path  string
		local bool
	}{
		{"#include <stdio.h>", "stdio.h", false},
		{"#include \"my/header.h\"", "my/header.h", true},
		{"  # include<sys/types.h>", "sys/types.h", false},
		{"??=include <a.h>", "a.h", false},
	}
	for _, tt := range tests {
		got := lex(tt.input)
		if len(got) != 3 {
			t.Errorf("%q: got %v, want # include header", tt.input, got)
			continue
		}
		h := got[2]
		if h.Kind != pptoken.HeaderName || h.Value != tt.path || h.LocalScoped != tt.local {
			t.Errorf("%q: got %v (local=%v), want header %q local=%v", tt.input, h, h.LocalScoped, tt.path, tt.local)
		}
	}
}

func TestHeaderNameNeedsDirectiveContext(t *testing.T) {
	got := lex("a # include <x>")
	for _, tok := range got {
		if tok.Kind == pptoken.HeaderName {
			t.Fatalf("header name recognized outside a directive: %v", got)
		}
	}

	got = lex("#include <oops\nx")
	if len(got) != 4 || got[2].Kind != pptoken.Error || !got[3].IsIdent("x") {
		t.Errorf("got %v, want unterminated header error then x", got)
	}
}

func TestHeaderNameMustShareTheDirectiveLine(t *testing.T) {
	checkLex(t, "#include\n<x> y", []want{
		{pptoken.Symbol, "#"},
		{pptoken.Identifier, "include"},
		{pptoken.Symbol, "<"},
		{pptoken.Identifier, "x"},
		{pptoken.Symbol, ">"},
		{pptoken.Identifier, "y"},
	})
	checkLex(t, "#include\n\"s\";", []want{
		{pptoken.Symbol, "#"},
		{pptoken.Identifier, "include"},
		{pptoken.StringLiteral, "s"},
		{pptoken.Symbol, ";"},
	})

	// a splice keeps the header on the directive line
	checkLex(t, "#include \\\n<x>", []want{
		{pptoken.Symbol, "#"},
		{pptoken.Identifier, "include"},
		{pptoken.HeaderName, "x"},
	})
}

func TestEndIsSticky(t *testing.T) {
	p := New(basetok.FromSource("x"))
	if _, ok := p.Next(nil); !ok {
		t.Fatal("expected a token")
	}
	for i := 0; i < 3; i++ {
		if tok, ok := p.Next(nil); ok {
			t.Fatalf("pull %d past end returned %v", i, tok)
		}
	}
}
