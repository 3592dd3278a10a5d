package charmap

// Source character set of translation phase 1:
//
//	5 whitespace characters: space, horizontal tab, vertical tab, form feed, new-line
//	10 digits, 52 letters
//	29 punctuation characters: _ { } [ ] # ( ) < > % : ; . ? * + - / ^ & | ~ ! = , \ " '
//
// The tables below are built once at package initialization and never written again.

const sourcePunctuation = `_{}[]#()<>%:;.?*+-/^&|~!=,\"'`

type trigraph struct {
	a, b, c rune
}

var trigraphs = map[trigraph]byte{
	{'?', '?', '='}:  '#',
	{'?', '?', '('}:  '[',
	{'?', '?', '/'}:  '\\',
	{'?', '?', ')'}:  ']',
	{'?', '?', '\''}: '^',
	{'?', '?', '<'}:  '{',
	{'?', '?', '!'}:  '|',
	{'?', '?', '>'}:  '}',
	{'?', '?', '-'}:  '~',
}

var (
	alphabet   = buildAlphabet()
	whitespace = [256]bool{' ': true, '\t': true, '\v': true, '\f': true, '\n': true}
)

func buildAlphabet() (set [256]bool) {
	for c := '0'; c <= '9'; c++ {
		set[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		set[c] = true
		set[c-'a'+'A'] = true
	}
	for i := 0; i < len(sourcePunctuation); i++ {
		set[sourcePunctuation[i]] = true
	}
	return set
}

// Trigraph returns the replacement for the three-character sequence a b c.
func Trigraph(a, b, c rune) (byte, bool) {
	chr, ok := trigraphs[trigraph{a, b, c}]
	return chr, ok
}

// InAlphabet reports whether r is one of the 91 graphic characters of the
// source alphabet (letters, digits and the 29 punctuation marks).
func InAlphabet(r rune) bool {
	return r >= 0 && r < 256 && alphabet[r]
}

// IsWhitespace reports whether r is one of the 5 whitespace-class inputs.
func IsWhitespace(r rune) bool {
	return r >= 0 && r < 256 && whitespace[r]
}

// IsMapped reports whether b may appear as the value of a non-elided
// MappedChar: an alphabet member, the canonical space or the canonical newline.
func IsMapped(b byte) bool {
	return alphabet[b] || b == ' ' || b == '\n'
}
