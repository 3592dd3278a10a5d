package basetok

// Symbol classifies a single punctuation byte of the source alphabet.
type Symbol int

const (
	Unknown Symbol = iota
	LeftSquareBracket
	RightSquareBracket
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	Period
	Ampersand
	Asterisk
	Plus
	Minus
	Tilde
	Bang
	ForwardSlash
	Percent
	LessThan
	GreaterThan
	Hat
	Pipe
	QuestionMark
	Colon
	Equals
	Comma
	Hash
	Semicolon
	DoubleQuote
	SingleQuote
	Backslash
)

var symbolNames = [...]string{
	Unknown:            "Unknown",
	LeftSquareBracket:  "LeftSquareBracket",
	RightSquareBracket: "RightSquareBracket",
	LeftParen:          "LeftParen",
	RightParen:         "RightParen",
	LeftBrace:          "LeftBrace",
	RightBrace:         "RightBrace",
	Period:             "Period",
	Ampersand:          "Ampersand",
	Asterisk:           "Asterisk",
	Plus:               "Plus",
	Minus:              "Minus",
	Tilde:              "Tilde",
	Bang:               "Bang",
	ForwardSlash:       "ForwardSlash",
	Percent:            "Percent",
	LessThan:           "LessThan",
	GreaterThan:        "GreaterThan",
	Hat:                "Hat",
	Pipe:               "Pipe",
	QuestionMark:       "QuestionMark",
	Colon:              "Colon",
	Equals:             "Equals",
	Comma:              "Comma",
	Hash:               "Hash",
	Semicolon:          "Semicolon",
	DoubleQuote:        "DoubleQuote",
	SingleQuote:        "SingleQuote",
	Backslash:          "Backslash",
}

func (s Symbol) String() string {
	if s >= 0 && int(s) < len(symbolNames) {
		return symbolNames[s]
	}
	return "Symbol(?)"
}

// symbols maps each punctuation byte to exactly one class. Bytes without an
// entry are Unknown. Underscore is absent: it belongs to letter runs.
var symbols = [256]Symbol{
	'[':  LeftSquareBracket,
	']':  RightSquareBracket,
	'(':  LeftParen,
	')':  RightParen,
	'{':  LeftBrace,
	'}':  RightBrace,
	'.':  Period,
	'&':  Ampersand,
	'*':  Asterisk,
	'+':  Plus,
	'-':  Minus,
	'~':  Tilde,
	'!':  Bang,
	'/':  ForwardSlash,
	'%':  Percent,
	'<':  LessThan,
	'>':  GreaterThan,
	'^':  Hat,
	'|':  Pipe,
	'?':  QuestionMark,
	':':  Colon,
	'=':  Equals,
	',':  Comma,
	'#':  Hash,
	';':  Semicolon,
	'"':  DoubleQuote,
	'\'': SingleQuote,
	'\\': Backslash,
}

// Classify returns the symbol class of b, or Unknown.
func Classify(b byte) Symbol {
	return symbols[b]
}
