// Package pptoken defines preprocessing tokens, the unit the preprocessor
// hands to macro expansion and, later, to the parser.
package pptoken

import "fmt"

// Kind tags the variant held by a Token.
type Kind int

const (
	Invalid Kind = iota
	HeaderName
	Identifier
	PPNumber
	CharacterConstant
	StringLiteral
	Symbol
	Error
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case HeaderName:
		return "HeaderName"
	case Identifier:
		return "Identifier"
	case PPNumber:
		return "PPNumber"
	case CharacterConstant:
		return "CharacterConstant"
	case StringLiteral:
		return "StringLiteral"
	case Symbol:
		return "Symbol"
	case Error:
		return "PreprocessingError"
	default:
		return "Kind(?)"
	}
}

// Token is a preprocessing token.
//
// Value is the header path, identifier, number, literal body (without quotes,
// escapes kept verbatim) or error message depending on Kind. Punct is only
// meaningful for Symbol tokens, Wide for literals and LocalScoped for header
// names ("..." rather than <...>).
type Token struct {
	Kind        Kind
	Value       string
	Punct       Punctuator
	Wide        bool
	LocalScoped bool

	// Reason classifies Error tokens.
	Reason ErrorKind

	Row uint64
	Col uint64

	// Layout around the token, needed for directive recognition.
	LeadingSpace bool
	StartOfLine  bool
}

func NewHeaderName(localScoped bool, path string, row, col uint64) Token {
	return Token{Kind: HeaderName, LocalScoped: localScoped, Value: path, Row: row, Col: col}
}

func NewIdentifier(val string, row, col uint64) Token {
	return Token{Kind: Identifier, Value: val, Row: row, Col: col}
}

func NewPPNumber(val string, row, col uint64) Token {
	return Token{Kind: PPNumber, Value: val, Row: row, Col: col}
}

func NewCharacterConstant(wide bool, val string, row, col uint64) Token {
	return Token{Kind: CharacterConstant, Wide: wide, Value: val, Row: row, Col: col}
}

func NewStringLiteral(wide bool, val string, row, col uint64) Token {
	return Token{Kind: StringLiteral, Wide: wide, Value: val, Row: row, Col: col}
}

func NewSymbol(p Punctuator, row, col uint64) Token {
	return Token{Kind: Symbol, Punct: p, Value: p.Spelling(), Row: row, Col: col}
}

// NewError creates an in-band error token. Scanning continues after it.
func NewError(reason ErrorKind, msg string, row, col uint64) Token {
	return Token{Kind: Error, Reason: reason, Value: msg, Row: row, Col: col}
}

// Is reports whether t is the symbol p.
func (t Token) Is(p Punctuator) bool {
	return t.Kind == Symbol && t.Punct == p
}

// IsIdent reports whether t is the identifier name.
func (t Token) IsIdent(name string) bool {
	return t.Kind == Identifier && t.Value == name
}

// Keyword looks the identifier up in the C90 keyword table.
func (t Token) Keyword() (Keyword, bool) {
	if t.Kind != Identifier {
		return 0, false
	}
	return LookupKeyword(t.Value)
}

// Err returns the token as an error if it is an error token, nil otherwise.
func (t Token) Err() error {
	if t.Kind != Error {
		return nil
	}
	return &PreprocessingError{Reason: t.Reason, Message: t.Value, Row: t.Row, Col: t.Col}
}

// Spelling reconstructs the source text of the token.
func (t Token) Spelling() string {
	prefix := ""
	if t.Wide {
		prefix = "L"
	}
	switch t.Kind {
	case HeaderName:
		if t.LocalScoped {
			return `"` + t.Value + `"`
		}
		return "<" + t.Value + ">"
	case CharacterConstant:
		return prefix + "'" + t.Value + "'"
	case StringLiteral:
		return prefix + `"` + t.Value + `"`
	case Symbol:
		return t.Punct.Spelling()
	default:
		return t.Value
	}
}

func (t Token) String() string {
	switch t.Kind {
	case Symbol:
		return fmt.Sprintf("%d:%d Symbol(%s)", t.Row, t.Col, t.Punct)
	case Error:
		return fmt.Sprintf("%d:%d PreprocessingError(%s)", t.Row, t.Col, t.Value)
	default:
		return fmt.Sprintf("%d:%d %s(%s)", t.Row, t.Col, t.Kind, t.Spelling())
	}
}

// PreprocessingError is the error form of an Error token.
type PreprocessingError struct {
	Reason  ErrorKind
	Message string
	Row     uint64
	Col     uint64
}

func (e *PreprocessingError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Row+1, e.Col+1, e.Message)
}
