package pptoken

// ErrorKind says which lexical rule an Error token broke.
type ErrorKind int

const (
	ErrGeneric ErrorKind = iota
	ErrUnterminatedString
	ErrUnterminatedChar
	ErrEmptyChar
	ErrUnterminatedComment
	ErrUnterminatedHeaderName
	ErrStrayCharacter
	ErrInclude
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnterminatedString:
		return "UnterminatedString"
	case ErrUnterminatedChar:
		return "UnterminatedChar"
	case ErrEmptyChar:
		return "EmptyChar"
	case ErrUnterminatedComment:
		return "UnterminatedComment"
	case ErrUnterminatedHeaderName:
		return "UnterminatedHeaderName"
	case ErrStrayCharacter:
		return "StrayCharacter"
	case ErrInclude:
		return "Include"
	default:
		return "Generic"
	}
}
