package preprocessor

import "acc/internal/preprocessor/pptoken"

// LookbackSize is the number of recent tokens the grammar may consult.
const LookbackSize = 3

// Window holds the most recently emitted tokens, most recent first. Pushing
// into a full window evicts the oldest entry.
type Window struct {
	tokens [LookbackSize]pptoken.Token
	head   int // slot of the most recent token
	size   int
}

// Push records tok as the most recent token.
func (w *Window) Push(tok pptoken.Token) {
	w.head = (w.head + LookbackSize - 1) % LookbackSize
	w.tokens[w.head] = tok
	if w.size < LookbackSize {
		w.size++
	}
}

// At returns the i-th most recent token; At(0) is the last one emitted.
func (w *Window) At(i int) (pptoken.Token, bool) {
	if i < 0 || i >= w.size {
		return pptoken.Token{}, false
	}
	return w.tokens[(w.head+i)%LookbackSize], true
}

// Len returns the number of tokens held.
func (w *Window) Len() int {
	return w.size
}

// Tokens returns a copy of the window contents, most recent first.
func (w *Window) Tokens() []pptoken.Token {
	out := make([]pptoken.Token, w.size)
	for i := range out {
		out[i], _ = w.At(i)
	}
	return out
}

// ReplayBuffer is a FIFO of tokens waiting to be emitted ahead of the
// tokenizer, e.g. the contents of an included file.
type ReplayBuffer struct {
	tokens []pptoken.Token
}

// PushBack appends tokens in order.
func (b *ReplayBuffer) PushBack(tokens ...pptoken.Token) {
	b.tokens = append(b.tokens, tokens...)
}

// PopFront removes and returns the oldest pending token.
func (b *ReplayBuffer) PopFront() (pptoken.Token, bool) {
	if len(b.tokens) == 0 {
		return pptoken.Token{}, false
	}
	tok := b.tokens[0]
	b.tokens[0] = pptoken.Token{}
	b.tokens = b.tokens[1:]
	if len(b.tokens) == 0 {
		b.tokens = nil
	}
	return tok, true
}

// Len returns the number of pending tokens.
func (b *ReplayBuffer) Len() int {
	return len(b.tokens)
}
