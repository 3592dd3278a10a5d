// Package preprocessor is the pull interface over the translation-phase
// pipeline:
//
//	Cursor -> Mapper (phases 1-2) -> base Tokenizer -> grammar -> Preprocessor
//
// Every layer is lazy; nothing is scanned until the caller pulls. A
// Preprocessor serves a single translation unit and is not safe for
// concurrent use.
package preprocessor

import (
	"fmt"
	"iter"

	"acc/internal/preprocessor/basetok"
	"acc/internal/preprocessor/charmap"
	"acc/internal/preprocessor/grammar"
	"acc/internal/preprocessor/pptoken"
)

// Includer supplies the tokens to splice in after a header name, typically by
// running another Preprocessor over the named file. Locating the file is the
// Includer's business.
type Includer interface {
	Include(header pptoken.Token) ([]pptoken.Token, error)
}

// IncluderFunc adapts a function to Includer.
type IncluderFunc func(header pptoken.Token) ([]pptoken.Token, error)

func (f IncluderFunc) Include(header pptoken.Token) ([]pptoken.Token, error) {
	return f(header)
}

// Option configures a Preprocessor.
type Option func(*Preprocessor)

// WithIncluder makes header names pull in the includer's tokens.
func WithIncluder(inc Includer) Option {
	return func(p *Preprocessor) {
		p.includer = inc
	}
}

// Preprocessor produces preprocessing tokens for one translation unit.
type Preprocessor struct {
	grammar  *grammar.Parser
	lookback Window
	replay   ReplayBuffer
	includer Includer
}

// New creates a Preprocessor over the text of a translation unit.
func New(src string, opts ...Option) *Preprocessor {
	return FromTokenizer(basetok.NewTokenizer(charmap.NewMapper(src)), opts...)
}

// FromTokenizer creates a Preprocessor over an existing base tokenizer.
func FromTokenizer(tz *basetok.Tokenizer, opts ...Option) *Preprocessor {
	p := &Preprocessor{grammar: grammar.New(tz)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Next returns the next token: pending replayed tokens first, then fresh
// tokens from the grammar. It returns false once both are exhausted, and on
// every call after that.
func (p *Preprocessor) Next() (pptoken.Token, bool) {
	if tok, ok := p.replay.PopFront(); ok {
		return p.record(tok), true
	}

	tok, ok := p.grammar.Next(&p.lookback)
	if !ok {
		return pptoken.Token{}, false
	}
	if tok.Kind == pptoken.HeaderName && p.includer != nil {
		p.include(tok)
	}
	return p.record(tok), true
}

func (p *Preprocessor) include(header pptoken.Token) {
	tokens, err := p.includer.Include(header)
	if err != nil {
		msg := fmt.Sprintf("cannot include %s: %v", header.Spelling(), err)
		p.replay.PushBack(pptoken.NewError(pptoken.ErrInclude, msg, header.Row, header.Col))
		return
	}
	p.replay.PushBack(tokens...)
}

func (p *Preprocessor) record(tok pptoken.Token) pptoken.Token {
	p.lookback.Push(tok)
	return tok
}

// Splice queues tokens to be emitted before any further source tokens.
func (p *Preprocessor) Splice(tokens ...pptoken.Token) {
	p.replay.PushBack(tokens...)
}

// Pending returns the number of spliced tokens not yet emitted.
func (p *Preprocessor) Pending() int {
	return p.replay.Len()
}

// Lookback returns the most recently emitted tokens, most recent first.
func (p *Preprocessor) Lookback() []pptoken.Token {
	return p.lookback.Tokens()
}

// All yields the remaining tokens. Error tokens are yielded together with
// their *pptoken.PreprocessingError; iteration continues past them.
func (p *Preprocessor) All() iter.Seq2[pptoken.Token, error] {
	return func(yield func(pptoken.Token, error) bool) {
		for {
			tok, ok := p.Next()
			if !ok || !yield(tok, tok.Err()) {
				return
			}
		}
	}
}

// Collect drains the Preprocessor into a slice.
func (p *Preprocessor) Collect() []pptoken.Token {
	var tokens []pptoken.Token
	for tok := range p.All() {
		tokens = append(tokens, tok)
	}
	return tokens
}
