package pptoken

// Punctuator is the union of C90 punctuators and operators.
type Punctuator int

const (
	LeftSquareBracket Punctuator = iota
	RightSquareBracket
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	Period
	RightArrow
	Increment
	Decrement
	Ampersand
	Asterisk
	Plus
	Minus
	Tilde
	Bang
	ForwardSlash
	Percent
	LeftShift
	RightShift
	LessThan
	GreaterThan
	LessThanOrEqual
	GreaterThanOrEqual
	EqualTo
	NotEqualTo
	Hat
	Pipe
	DoubleAnd
	DoublePipe
	QuestionMark
	Colon
	Assign
	AsteriskAssign
	ForwardSlashAssign
	PercentAssign
	PlusAssign
	MinusAssign
	LeftShiftAssign
	RightShiftAssign
	AmpersandAssign
	HatAssign
	PipeAssign
	Comma
	Hash
	DoubleHash
	Semicolon
	Ellipsis
)

var punctuators = [...]struct {
	name     string
	spelling string
}{
	LeftSquareBracket:  {"LeftSquareBracket", "["},
	RightSquareBracket: {"RightSquareBracket", "]"},
	LeftParen:          {"LeftParen", "("},
	RightParen:         {"RightParen", ")"},
	LeftBrace:          {"LeftBrace", "{"},
	RightBrace:         {"RightBrace", "}"},
	Period:             {"Period", "."},
	RightArrow:         {"RightArrow", "->"},
	Increment:          {"Increment", "++"},
	Decrement:          {"Decrement", "--"},
	Ampersand:          {"Ampersand", "&"},
	Asterisk:           {"Asterisk", "*"},
	Plus:               {"Plus", "+"},
	Minus:              {"Minus", "-"},
	Tilde:              {"Tilde", "~"},
	Bang:               {"Bang", "!"},
	ForwardSlash:       {"ForwardSlash", "/"},
	Percent:            {"Percent", "%"},
	LeftShift:          {"LeftShift", "<<"},
	RightShift:         {"RightShift", ">>"},
	LessThan:           {"LessThan", "<"},
	GreaterThan:        {"GreaterThan", ">"},
	LessThanOrEqual:    {"LessThanOrEqual", "<="},
	GreaterThanOrEqual: {"GreaterThanOrEqual", ">="},
	EqualTo:            {"EqualTo", "=="},
	NotEqualTo:         {"NotEqualTo", "!="},
	Hat:                {"Hat", "^"},
	Pipe:               {"Pipe", "|"},
	DoubleAnd:          {"DoubleAnd", "&&"},
	DoublePipe:         {"DoublePipe", "||"},
	QuestionMark:       {"QuestionMark", "?"},
	Colon:              {"Colon", ":"},
	Assign:             {"Assign", "="},
	AsteriskAssign:     {"AsteriskAssign", "*="},
	ForwardSlashAssign: {"ForwardSlashAssign", "/="},
	PercentAssign:      {"PercentAssign", "%="},
	PlusAssign:         {"PlusAssign", "+="},
	MinusAssign:        {"MinusAssign", "-="},
	LeftShiftAssign:    {"LeftShiftAssign", "<<="},
	RightShiftAssign:   {"RightShiftAssign", ">>="},
	AmpersandAssign:    {"AmpersandAssign", "&="},
	HatAssign:          {"HatAssign", "^="},
	PipeAssign:         {"PipeAssign", "|="},
	Comma:              {"Comma", ","},
	Hash:               {"Hash", "#"},
	DoubleHash:         {"DoubleHash", "##"},
	Semicolon:          {"Semicolon", ";"},
	Ellipsis:           {"Ellipsis", "..."},
}

// bySpelling is the reverse of punctuators, built once.
var bySpelling = func() map[string]Punctuator {
	m := make(map[string]Punctuator, len(punctuators))
	for p, info := range punctuators {
		m[info.spelling] = Punctuator(p)
	}
	return m
}()

// MaxPunctuatorLen is the length of the longest punctuator spelling.
const MaxPunctuatorLen = 3

func (p Punctuator) String() string {
	if p >= 0 && int(p) < len(punctuators) {
		return punctuators[p].name
	}
	return "Punctuator(?)"
}

// Spelling returns the source text of p.
func (p Punctuator) Spelling() string {
	if p >= 0 && int(p) < len(punctuators) {
		return punctuators[p].spelling
	}
	return ""
}

// LookupPunctuator returns the punctuator spelled s.
func LookupPunctuator(s string) (Punctuator, bool) {
	p, ok := bySpelling[s]
	return p, ok
}
