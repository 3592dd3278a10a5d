package grammar

import "acc/internal/preprocessor/basetok"

// stream is a lookahead buffer over the base tokenizer. Line splices
// contribute nothing to the token text, so they are filtered out here and the
// runs on either side become adjacent. Stray characters are kept.
type stream struct {
	src *basetok.Tokenizer
	buf []basetok.Token
}

// peek returns the n-th upcoming token without consuming it.
func (s *stream) peek(n int) (basetok.Token, bool) {
	for len(s.buf) <= n {
		tok, ok := s.src.Next()
		if !ok {
			return basetok.Token{}, false
		}
		if tok.Elided() {
			continue
		}
		s.buf = append(s.buf, tok)
	}
	return s.buf[n], true
}

func (s *stream) next() (basetok.Token, bool) {
	tok, ok := s.peek(0)
	if ok {
		s.buf = s.buf[1:]
	}
	return tok, ok
}

func (s *stream) skip(n int) {
	for ; n > 0; n-- {
		s.next()
	}
}

// peekSym reports whether the n-th upcoming token is the symbol sym.
func (s *stream) peekSym(n int, sym basetok.Symbol) bool {
	tok, ok := s.peek(n)
	return ok && tok.Kind == basetok.Punct && tok.Sym == sym
}

// peekKind reports whether the n-th upcoming token has kind k.
func (s *stream) peekKind(n int, k basetok.Kind) bool {
	tok, ok := s.peek(n)
	return ok && tok.Kind == k
}
