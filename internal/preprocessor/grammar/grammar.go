// Package grammar promotes base tokens to preprocessing tokens.
//
// The preprocessing-token grammar is context sensitive: "<stdio.h>" is a
// header name after #include and three tokens anywhere else. The caller
// passes its lookback window into every Next call so the grammar can make
// that decision without re-scanning.
package grammar

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"acc/internal/preprocessor/basetok"
	"acc/internal/preprocessor/pptoken"
)

// Lookback gives read access to recently emitted tokens, most recent first.
type Lookback interface {
	At(i int) (pptoken.Token, bool)
}

// Parser turns base tokens into preprocessing tokens.
type Parser struct {
	in stream

	// errors found inside a literal, reported after it
	deferred []pptoken.Token

	startOfLine  bool
	leadingSpace bool
	done         bool
}

// New creates a parser over base tokens.
func New(src *basetok.Tokenizer) *Parser {
	return &Parser{in: stream{src: src}, startOfLine: true}
}

// Next returns the next preprocessing token. Malformed constructs produce an
// Error token and scanning resumes after them. window may be nil.
func (p *Parser) Next(window Lookback) (pptoken.Token, bool) {
	if len(p.deferred) > 0 {
		tok := p.deferred[0]
		p.deferred = p.deferred[1:]
		return p.emit(tok), true
	}
	if p.done {
		return pptoken.Token{}, false
	}

	for {
		tok, ok := p.in.peek(0)
		if !ok {
			p.done = true
			return pptoken.Token{}, false
		}

		switch {
		case tok.Kind == basetok.Whitespace:
			p.in.next()
			p.leadingSpace = true
		case tok.Kind == basetok.Newline:
			p.in.next()
			p.startOfLine = true
			p.leadingSpace = false
		case tok.Sym == basetok.ForwardSlash && tok.Kind == basetok.Punct && p.in.peekSym(1, basetok.Asterisk):
			if errTok, ok := p.comment(tok); !ok {
				return p.emit(errTok), true
			}
			p.leadingSpace = true
		default:
			return p.emit(p.scan(tok, window)), true
		}
	}
}

func (p *Parser) emit(tok pptoken.Token) pptoken.Token {
	tok.StartOfLine = p.startOfLine
	tok.LeadingSpace = p.leadingSpace
	p.startOfLine = false
	p.leadingSpace = false
	return tok
}

// scan dispatches on the first base token of a preprocessing token.
func (p *Parser) scan(first basetok.Token, window Lookback) pptoken.Token {
	switch first.Kind {
	case basetok.Letters:
		return p.identifier(first)
	case basetok.Digits:
		return p.ppNumber(first)
	case basetok.Stray:
		p.in.next()
		return stray(first)
	}

	switch first.Sym {
	case basetok.Period:
		if p.in.peekKind(1, basetok.Digits) {
			return p.ppNumber(first)
		}
	case basetok.DoubleQuote:
		if !p.startOfLine && inInclude(window) {
			return p.headerName(first, '"')
		}
		return p.quoted(first, false, first.Row, first.Col)
	case basetok.SingleQuote:
		return p.quoted(first, false, first.Row, first.Col)
	case basetok.LessThan:
		if !p.startOfLine && inInclude(window) {
			return p.headerName(first, '>')
		}
	case basetok.Backslash, basetok.Unknown:
		p.in.next()
		return stray(first)
	}
	return p.punctuator(first)
}

// inInclude reports whether the last two tokens were "#" "include" with the
// "#" starting its line. The caller checks that the candidate header name is
// still on that line.
func inInclude(window Lookback) bool {
	if window == nil {
		return false
	}
	directive, ok := window.At(0)
	if !ok || !directive.IsIdent("include") {
		return false
	}
	hash, ok := window.At(1)
	return ok && hash.Is(pptoken.Hash) && hash.StartOfLine
}

func stray(tok basetok.Token) pptoken.Token {
	r, _ := utf8.DecodeRune(tok.Text)
	shown := fmt.Sprintf("'%c'", r)
	if !unicode.IsPrint(r) {
		shown = fmt.Sprintf("%q", r)
	}
	return pptoken.NewError(pptoken.ErrStrayCharacter, "stray "+shown+" in program", tok.Row, tok.Col)
}

// dropStray queues the error for a stray character found inside a literal,
// to be emitted after it.
func (p *Parser) dropStray(tok basetok.Token) {
	p.deferred = append(p.deferred, stray(tok))
}
