// Package basetok re-segments the mapped character stream into base tokens.
//
// The grammar is regular:
//
//	<base-token> ::= <whitespace> | <new-line> | <letters> | <digits> | <symbol> | <stray>
//
// and is matched in that priority order. Preprocessing tokens are not a
// regular language (header names depend on a preceding #include), so they are
// built by a second pass over these runs rather than by one combined scanner.
package basetok

import (
	"fmt"
	"iter"
	"unicode/utf8"

	"acc/internal/preprocessor/charmap"
)

// Kind is the class of a base token.
type Kind int

const (
	Whitespace Kind = iota
	Newline
	Punct
	Letters
	Digits
	Stray
)

func (k Kind) String() string {
	switch k {
	case Whitespace:
		return "Whitespace"
	case Newline:
		return "Newline"
	case Punct:
		return "Punct"
	case Letters:
		return "Letters"
	case Digits:
		return "Digits"
	case Stray:
		return "Stray"
	default:
		return "Kind(?)"
	}
}

// Token is a base token positioned at the start of its run.
//
// Text holds the bytes of Letters, Digits and Whitespace runs and the single
// byte of a Punct token. A line splice yields a Punct token with Sym == Unknown
// and empty Text. A character outside the source alphabet yields a Stray token
// whose Text is its UTF-8 encoding.
type Token struct {
	Kind Kind
	Sym  Symbol
	Text []byte
	Row  uint64
	Col  uint64
}

// Elided reports whether the token stands for a line splice.
func (t Token) Elided() bool {
	return t.Kind == Punct && len(t.Text) == 0
}

// Byte returns the first byte of Text, or 0.
func (t Token) Byte() byte {
	if len(t.Text) == 0 {
		return 0
	}
	return t.Text[0]
}

func (t Token) String() string {
	switch t.Kind {
	case Punct:
		return fmt.Sprintf("%d:%d Symbol(%s)", t.Row, t.Col, t.Sym)
	case Letters, Digits, Stray:
		return fmt.Sprintf("%d:%d %s(%q)", t.Row, t.Col, t.Kind, t.Text)
	default:
		return fmt.Sprintf("%d:%d %s", t.Row, t.Col, t.Kind)
	}
}

// IsLetter reports whether b continues a letter run: an ASCII letter or '_'.
func IsLetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '_'
}

// IsDigit reports whether b continues a digit run.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Tokenizer pulls MappedChars and produces base tokens.
type Tokenizer struct {
	chars *charmap.Mapper
	done  bool
}

// NewTokenizer creates a tokenizer reading from chars.
func NewTokenizer(chars *charmap.Mapper) *Tokenizer {
	return &Tokenizer{chars: chars}
}

// FromSource is shorthand for NewTokenizer(charmap.NewMapper(input)).
func FromSource(input string) *Tokenizer {
	return NewTokenizer(charmap.NewMapper(input))
}

// Next returns the next base token. Once the character stream is exhausted
// every call returns false.
func (t *Tokenizer) Next() (Token, bool) {
	if t.done {
		return Token{}, false
	}

	first, ok := t.chars.Peek()
	if !ok {
		t.done = true
		return Token{}, false
	}
	row, col := first.Pos()

	if text := t.run(func(b byte) bool { return b == ' ' }); text != nil {
		return Token{Kind: Whitespace, Text: text, Row: row, Col: col}, true
	}
	if first.Is('\n') {
		t.chars.Next()
		return Token{Kind: Newline, Text: []byte{'\n'}, Row: row, Col: col}, true
	}
	if text := t.run(IsLetter); text != nil {
		return Token{Kind: Letters, Text: text, Row: row, Col: col}, true
	}
	if text := t.run(IsDigit); text != nil {
		return Token{Kind: Digits, Text: text, Row: row, Col: col}, true
	}

	t.chars.Next()
	if chr, ok := first.Chr(); ok {
		return Token{Kind: Punct, Sym: Classify(chr), Text: []byte{chr}, Row: row, Col: col}, true
	}
	if r, ok := first.Raw(); ok {
		return Token{Kind: Stray, Text: utf8.AppendRune(nil, r), Row: row, Col: col}, true
	}
	return Token{Kind: Punct, Sym: Unknown, Row: row, Col: col}, true
}

// run consumes the maximal run of mapped bytes satisfying match and returns
// them, or nil if the next unit does not match.
func (t *Tokenizer) run(match func(byte) bool) []byte {
	var text []byte
	for {
		m, ok := t.chars.Peek()
		if !ok {
			break
		}
		chr, ok := m.Chr()
		if !ok || !match(chr) {
			break
		}
		text = append(text, chr)
		t.chars.Next()
	}
	return text
}

// All returns the remaining base tokens as an iterator.
func (t *Tokenizer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := t.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}
