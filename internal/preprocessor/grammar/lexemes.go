package grammar

import (
	"fmt"

	"acc/internal/preprocessor/basetok"
	"acc/internal/preprocessor/pptoken"
)

// identifier reads a letter run and any letter or digit runs joined to it.
// A lone "L" directly before a quote is the prefix of a wide literal.
func (p *Parser) identifier(first basetok.Token) pptoken.Token {
	p.in.next()
	text := append([]byte(nil), first.Text...)
	for p.in.peekKind(0, basetok.Letters) || p.in.peekKind(0, basetok.Digits) {
		tok, _ := p.in.next()
		text = append(text, tok.Text...)
	}

	if string(text) == "L" {
		if quote, ok := p.in.peek(0); ok && quote.Kind == basetok.Punct {
			switch quote.Sym {
			case basetok.DoubleQuote, basetok.SingleQuote:
				return p.quoted(quote, true, first.Row, first.Col)
			}
		}
	}
	return pptoken.NewIdentifier(string(text), first.Row, first.Col)
}

// ppNumber reads
//
//	pp-number ::= digit | . digit | pp-number (digit | nondigit | . | e sign | E sign)
func (p *Parser) ppNumber(first basetok.Token) pptoken.Token {
	var text []byte
	for {
		tok, ok := p.in.peek(0)
		if !ok {
			break
		}
		switch {
		case tok.Kind == basetok.Digits, tok.Kind == basetok.Letters:
		case tok.Kind == basetok.Punct && tok.Sym == basetok.Period:
		case tok.Kind == basetok.Punct && (tok.Sym == basetok.Plus || tok.Sym == basetok.Minus) && endsWithExponent(text):
		default:
			return pptoken.NewPPNumber(string(text), first.Row, first.Col)
		}
		text = append(text, tok.Text...)
		p.in.next()
	}
	return pptoken.NewPPNumber(string(text), first.Row, first.Col)
}

func endsWithExponent(text []byte) bool {
	if len(text) == 0 {
		return false
	}
	last := text[len(text)-1]
	return last == 'e' || last == 'E'
}

// quoted reads a character constant or string literal starting at the quote
// token open. The body is kept verbatim; an escaped quote does not terminate.
func (p *Parser) quoted(open basetok.Token, wide bool, row, col uint64) pptoken.Token {
	p.in.next()
	quote := open.Byte()

	var body []byte
	for {
		tok, ok := p.in.peek(0)
		if !ok || tok.Kind == basetok.Newline {
			if quote == '\'' {
				return pptoken.NewError(pptoken.ErrUnterminatedChar, "unterminated character constant", row, col)
			}
			return pptoken.NewError(pptoken.ErrUnterminatedString, "unterminated string literal", row, col)
		}
		p.in.next()

		if tok.Kind == basetok.Punct && tok.Byte() == quote {
			break
		}
		if tok.Kind == basetok.Stray {
			p.dropStray(tok)
			continue
		}
		body = append(body, tok.Text...)
		if tok.Kind == basetok.Punct && tok.Sym == basetok.Backslash && p.in.peekKind(0, basetok.Punct) {
			escaped, _ := p.in.next()
			body = append(body, escaped.Text...)
		}
	}

	if quote == '\'' {
		if len(body) == 0 {
			return pptoken.NewError(pptoken.ErrEmptyChar, "empty character constant", row, col)
		}
		return pptoken.NewCharacterConstant(wide, string(body), row, col)
	}
	return pptoken.NewStringLiteral(wide, string(body), row, col)
}

// headerName reads <h-chars> or "q-chars" up to closer on the same line.
func (p *Parser) headerName(open basetok.Token, closer byte) pptoken.Token {
	p.in.next()

	var path []byte
	for {
		tok, ok := p.in.peek(0)
		if !ok || tok.Kind == basetok.Newline {
			return pptoken.NewError(pptoken.ErrUnterminatedHeaderName, fmt.Sprintf("missing terminating %c character in header name", closer), open.Row, open.Col)
		}
		p.in.next()
		if tok.Kind == basetok.Punct && tok.Byte() == closer {
			break
		}
		if tok.Kind == basetok.Stray {
			p.dropStray(tok)
			continue
		}
		path = append(path, tok.Text...)
	}
	return pptoken.NewHeaderName(closer == '"', string(path), open.Row, open.Col)
}

// punctuator munches the longest punctuator spelled by adjacent symbols.
func (p *Parser) punctuator(first basetok.Token) pptoken.Token {
	var spelling [pptoken.MaxPunctuatorLen]byte
	n := 0
	for n < len(spelling) {
		tok, ok := p.in.peek(n)
		if !ok || tok.Kind != basetok.Punct {
			break
		}
		spelling[n] = tok.Byte()
		n++
	}

	for ; n > 0; n-- {
		if punct, ok := pptoken.LookupPunctuator(string(spelling[:n])); ok {
			p.in.skip(n)
			return pptoken.NewSymbol(punct, first.Row, first.Col)
		}
	}

	p.in.next()
	return stray(first)
}

// comment skips a /* */ comment. C90 has no // comments. The returned token is
// only meaningful when ok is false.
func (p *Parser) comment(open basetok.Token) (tok pptoken.Token, ok bool) {
	p.in.skip(2)
	for {
		tok, more := p.in.next()
		if !more {
			return pptoken.NewError(pptoken.ErrUnterminatedComment, "unterminated comment", open.Row, open.Col), false
		}
		if tok.Kind == basetok.Punct && tok.Sym == basetok.Asterisk && p.in.peekSym(0, basetok.ForwardSlash) {
			p.in.next()
			return pptoken.Token{}, true
		}
	}
}
