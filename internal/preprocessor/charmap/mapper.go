// Package charmap implements translation phases 1 and 2:
//
//  1. mapping source characters to the source character set (trigraphs,
//     line endings, whitespace canonicalization)
//  2. splicing backslash-newline sequences into one logical line
//
// A Mapper is a lazy sequence; nothing is consumed until a caller pulls.
package charmap

import "iter"

// MappedChar is one position of the normalized character stream.
//
// A MappedChar without a value occupies a position but contributes no
// character. It is either a line splice or a character outside the source
// alphabet; the latter keeps the raw rune so later stages can report it.
type MappedChar struct {
	chr   byte
	ok    bool
	stray bool
	raw   rune
	row   uint64
	col   uint64
}

// NewMappedChar creates a MappedChar carrying chr at (row, col).
func NewMappedChar(chr byte, row, col uint64) MappedChar {
	return MappedChar{chr: chr, ok: true, row: row, col: col}
}

// Elided creates a value-less MappedChar at (row, col) for a line splice.
func Elided(row, col uint64) MappedChar {
	return MappedChar{row: row, col: col}
}

// Stray creates a value-less MappedChar for r, which is not in the source
// alphabet.
func Stray(r rune, row, col uint64) MappedChar {
	return MappedChar{stray: true, raw: r, row: row, col: col}
}

// Chr returns the mapped byte, or false if the position was elided.
func (m MappedChar) Chr() (byte, bool) {
	return m.chr, m.ok
}

// Is reports whether the unit carries exactly b.
func (m MappedChar) Is(b byte) bool {
	return m.ok && m.chr == b
}

// Raw returns the dropped rune of a Stray unit. ok is false for mapped
// characters and line splices.
func (m MappedChar) Raw() (r rune, ok bool) {
	return m.raw, m.stray
}

// Pos returns the zero-based (row, col) the character was found at.
func (m MappedChar) Pos() (row, col uint64) {
	return m.row, m.col
}

// Mapper produces MappedChars from raw text. The zero value is an empty mapper.
type Mapper struct {
	source Cursor
	row    uint64
	col    uint64
}

// NewMapper creates a mapper over input.
func NewMapper(input string) *Mapper {
	return &Mapper{source: NewCursor(input)}
}

// Peek returns the next MappedChar without consuming it.
func (m *Mapper) Peek() (MappedChar, bool) {
	snapshot := *m
	return snapshot.Next()
}

// Next consumes and returns the next MappedChar. Once the input is exhausted
// every call returns false.
func (m *Mapper) Next() (MappedChar, bool) {
	if m.source.IsEOF() {
		return MappedChar{}, false
	}

	a, b, c := m.source.First(), m.source.Second(), m.source.Third()

	if chr, ok := Trigraph(a, b, c); ok {
		// ??/ is a backslash, and phase 1 runs before phase 2.
		if chr == '\\' {
			switch {
			case m.source.Nth(3) == '\r' && m.source.Nth(4) == '\n':
				return m.splice(5), true
			case m.source.Nth(3) == '\n':
				return m.splice(4), true
			}
		}
		result := NewMappedChar(chr, m.row, m.col)
		m.col += 3
		m.source.BumpN(3)
		return result, true
	}

	switch {
	case a == '\\' && b == '\r' && c == '\n':
		return m.splice(3), true
	case a == '\\' && b == '\n':
		return m.splice(2), true
	case a == '\r' && b == '\n':
		return m.newline(2), true
	case a == '\n':
		return m.newline(1), true
	}

	var result MappedChar
	switch {
	case IsWhitespace(a):
		result = NewMappedChar(' ', m.row, m.col)
	case InAlphabet(a):
		result = NewMappedChar(byte(a), m.row, m.col)
	default:
		result = Stray(a, m.row, m.col)
	}
	m.col++
	m.source.Bump()
	return result, true
}

func (m *Mapper) splice(width int) MappedChar {
	result := Elided(m.row, m.col)
	m.row++
	m.col = 0
	m.source.BumpN(width)
	return result
}

func (m *Mapper) newline(width int) MappedChar {
	result := NewMappedChar('\n', m.row, m.col)
	m.row++
	m.col = 0
	m.source.BumpN(width)
	return result
}

// All returns the remaining MappedChars as an iterator.
func (m *Mapper) All() iter.Seq[MappedChar] {
	return func(yield func(MappedChar) bool) {
		for {
			chr, ok := m.Next()
			if !ok || !yield(chr) {
				return
			}
		}
	}
}

// Collect drains the mapper into a slice.
func (m *Mapper) Collect() []MappedChar {
	var chars []MappedChar
	for chr := range m.All() {
		chars = append(chars, chr)
	}
	return chars
}
