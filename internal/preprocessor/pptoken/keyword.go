package pptoken

// Keyword is one of the 32 reserved words of C90.
type Keyword int

const (
	Auto Keyword = iota
	Break
	Case
	Char
	Const
	Continue
	Default
	Do
	Double
	Else
	Enum
	Extern
	Float
	For
	Goto
	If
	Int
	Long
	Register
	Return
	Short
	Signed
	Sizeof
	Static
	Struct
	Switch
	Typedef
	Union
	Unsigned
	Void
	Volatile
	While
)

var keywordNames = [...]string{
	Auto:     "auto",
	Break:    "break",
	Case:     "case",
	Char:     "char",
	Const:    "const",
	Continue: "continue",
	Default:  "default",
	Do:       "do",
	Double:   "double",
	Else:     "else",
	Enum:     "enum",
	Extern:   "extern",
	Float:    "float",
	For:      "for",
	Goto:     "goto",
	If:       "if",
	Int:      "int",
	Long:     "long",
	Register: "register",
	Return:   "return",
	Short:    "short",
	Signed:   "signed",
	Sizeof:   "sizeof",
	Static:   "static",
	Struct:   "struct",
	Switch:   "switch",
	Typedef:  "typedef",
	Union:    "union",
	Unsigned: "unsigned",
	Void:     "void",
	Volatile: "volatile",
	While:    "while",
}

var keywords = func() map[string]Keyword {
	m := make(map[string]Keyword, len(keywordNames))
	for kw, name := range keywordNames {
		m[name] = Keyword(kw)
	}
	return m
}()

func (k Keyword) String() string {
	if k >= 0 && int(k) < len(keywordNames) {
		return keywordNames[k]
	}
	return "keyword(?)"
}

// LookupKeyword reports whether name is reserved.
func LookupKeyword(name string) (Keyword, bool) {
	kw, ok := keywords[name]
	return kw, ok
}
