package pptoken

import (
	"errors"
	"testing"
)

func TestPunctuatorSpellingRoundTrip(t *testing.T) {
	for p := LeftSquareBracket; p <= Ellipsis; p++ {
		s := p.Spelling()
		if s == "" {
			t.Errorf("%v has no spelling", p)
			continue
		}
		if len(s) > MaxPunctuatorLen {
			t.Errorf("%v spelling %q longer than MaxPunctuatorLen", p, s)
		}
		got, ok := LookupPunctuator(s)
		if !ok || got != p {
			t.Errorf("LookupPunctuator(%q) = %v, %v; want %v", s, got, ok, p)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	if len(keywords) != 32 {
		t.Errorf("C90 has 32 keywords, table has %d", len(keywords))
	}

	tests := []struct {
		name string
		want Keyword
		ok   bool
	}{
		{"while", While, true},
		{"sizeof", Sizeof, true},
		{"volatile", Volatile, true},
		{"inline", 0, false},
		{"While", 0, false},
	}
	for _, tt := range tests {
		got, ok := LookupKeyword(tt.name)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("LookupKeyword(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTokenKeyword(t *testing.T) {
	if kw, ok := NewIdentifier("return", 0, 0).Keyword(); !ok || kw != Return {
		t.Errorf("identifier return: got %v, %v", kw, ok)
	}
	if _, ok := NewStringLiteral(false, "return", 0, 0).Keyword(); ok {
		t.Error("string literal must not be a keyword")
	}
}

func TestTokenSpelling(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{NewHeaderName(false, "stdio.h", 0, 0), "<stdio.h>"},
		{NewHeaderName(true, "local.h", 0, 0), `"local.h"`},
		{NewStringLiteral(true, `a\"b`, 0, 0), `L"a\"b"`},
		{NewCharacterConstant(false, `\n`, 0, 0), `'\n'`},
		{NewSymbol(LeftShiftAssign, 0, 0), "<<="},
		{NewPPNumber("1.5e+3", 0, 0), "1.5e+3"},
	}
	for _, tt := range tests {
		if got := tt.tok.Spelling(); got != tt.want {
			t.Errorf("%v.Spelling() = %q, want %q", tt.tok, got, tt.want)
		}
	}
}

func TestTokenErr(t *testing.T) {
	if err := NewIdentifier("x", 0, 0).Err(); err != nil {
		t.Errorf("identifier Err() = %v, want nil", err)
	}

	err := NewError(ErrUnterminatedString, "unterminated string literal", 2, 4).Err()
	var ppErr *PreprocessingError
	if !errors.As(err, &ppErr) {
		t.Fatalf("Err() = %T, want *PreprocessingError", err)
	}
	if ppErr.Row != 2 || ppErr.Col != 4 || ppErr.Reason != ErrUnterminatedString {
		t.Errorf("got %s at %d:%d, want UnterminatedString at 2:4", ppErr.Reason, ppErr.Row, ppErr.Col)
	}
	if got := err.Error(); got != "3:5: unterminated string literal" {
		t.Errorf("Error() = %q", got)
	}
}

func TestZeroTokenIsInvalid(t *testing.T) {
	var tok Token
	if tok.Kind != Invalid || tok.Kind.String() != "Invalid" {
		t.Errorf("zero token kind = %s, want Invalid", tok.Kind)
	}
	if tok.Err() != nil {
		t.Errorf("zero token Err() = %v, want nil", tok.Err())
	}
}
