package charmap

import "unicode/utf8"

// EOFChar is returned by the lookahead methods once the input is exhausted.
// It is not a member of the source alphabet.
const EOFChar = '\x00'

// Cursor is a peekable walker over a character sequence. It is a value type:
// copying a Cursor snapshots its position.
type Cursor struct {
	input string
	pos   int
}

// NewCursor creates a cursor positioned at the start of input.
func NewCursor(input string) Cursor {
	return Cursor{input: input}
}

// Rest returns the unconsumed part of the input.
func (c *Cursor) Rest() string {
	return c.input[c.pos:]
}

// First peeks the next unconsumed character.
func (c *Cursor) First() rune {
	return c.Nth(0)
}

// Second peeks the character after First.
func (c *Cursor) Second() rune {
	return c.Nth(1)
}

// Third peeks the character after Second.
func (c *Cursor) Third() rune {
	return c.Nth(2)
}

// Nth peeks the n-th unconsumed character (0-based), or EOFChar past the end.
func (c *Cursor) Nth(n int) rune {
	i := c.pos
	for ; n > 0; n-- {
		if i >= len(c.input) {
			return EOFChar
		}
		_, size := utf8.DecodeRuneInString(c.input[i:])
		i += size
	}
	if i >= len(c.input) {
		return EOFChar
	}
	r, _ := utf8.DecodeRuneInString(c.input[i:])
	return r
}

// IsEOF reports whether all characters have been consumed.
func (c *Cursor) IsEOF() bool {
	return c.pos >= len(c.input)
}

// Bump consumes one character and returns it. ok is false at end of input.
func (c *Cursor) Bump() (r rune, ok bool) {
	if c.IsEOF() {
		return EOFChar, false
	}
	r, size := utf8.DecodeRuneInString(c.input[c.pos:])
	c.pos += size
	return r, true
}

// BumpN consumes n characters and returns the last one consumed.
func (c *Cursor) BumpN(n int) (r rune, ok bool) {
	for i := 1; i < n; i++ {
		c.Bump()
	}
	return c.Bump()
}
