package charmap

import (
	"fmt"
	"strings"
)

// Plain renders chars as normalized text, dropping elided positions.
func Plain(chars []MappedChar) string {
	var sb strings.Builder
	sb.Grow(len(chars))
	for _, m := range chars {
		if chr, ok := m.Chr(); ok {
			sb.WriteByte(chr)
		}
	}
	return sb.String()
}

// Verbose renders one "<char-or-None> (row, col)" line per MappedChar.
func Verbose(chars []MappedChar) string {
	var sb strings.Builder
	for _, m := range chars {
		row, col := m.Pos()
		if chr, ok := m.Chr(); ok {
			fmt.Fprintf(&sb, "%c (%d, %d)\n", chr, row, col)
		} else {
			fmt.Fprintf(&sb, "None (%d, %d)\n", row, col)
		}
	}
	return sb.String()
}
