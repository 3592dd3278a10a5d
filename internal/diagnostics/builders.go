package diagnostics

import (
	"fmt"

	"acc/internal/preprocessor/pptoken"
	"acc/internal/source"
)

// Common diagnostic builders for the preprocessor

// UnterminatedString creates a diagnostic for a string literal cut off by a newline
func UnterminatedString(filepath string, loc *source.Location) *Diagnostic {
	return NewError("unterminated string literal").
		WithCode(ErrUnterminatedString).
		WithPrimaryLabel(filepath, loc, "string starts here").
		WithHelp("add a closing quote (\") before the end of the line")
}

// UnterminatedChar creates a diagnostic for an unterminated character constant
func UnterminatedChar(filepath string, loc *source.Location) *Diagnostic {
	return NewError("unterminated character constant").
		WithCode(ErrUnterminatedChar).
		WithPrimaryLabel(filepath, loc, "character constant starts here").
		WithHelp("add a closing quote (') before the end of the line")
}

func EmptyChar(filepath string, loc *source.Location) *Diagnostic {
	return NewError("empty character constant").
		WithCode(ErrEmptyChar).
		WithPrimaryLabel(filepath, loc, "no character between the quotes").
		WithHelp("use '\\0' for a null character")
}

// UnterminatedComment creates a diagnostic for a comment still open at end of file
func UnterminatedComment(filepath string, loc *source.Location) *Diagnostic {
	return NewError("unterminated comment").
		WithCode(ErrUnterminatedComment).
		WithPrimaryLabel(filepath, loc, "comment starts here").
		WithNote("comments do not nest and C90 has no // comments").
		WithHelp("close the comment with */")
}

func UnterminatedHeaderName(filepath string, loc *source.Location, message string) *Diagnostic {
	return NewError(message).
		WithCode(ErrUnterminatedHeaderName).
		WithPrimaryLabel(filepath, loc, "header name starts here")
}

// StrayCharacter creates a diagnostic for a character that begins no token
func StrayCharacter(filepath string, loc *source.Location, message string) *Diagnostic {
	return NewError(message).
		WithCode(ErrStrayCharacter).
		WithPrimaryLabel(filepath, loc, "not valid here").
		WithHelp("remove this character or check if it's a typo")
}

// UnreadableFile creates a diagnostic for an input file that could not be read
func UnreadableFile(filepath string, err error) *Diagnostic {
	d := NewError("cannot read source file").
		WithCode(ErrUnreadableFile).
		WithNote(err.Error())
	d.FilePath = filepath
	return d
}

func IncludeFailed(filepath string, loc *source.Location, message string) *Diagnostic {
	return NewError(message).
		WithCode(ErrInclude).
		WithPrimaryLabel(filepath, loc, "included here")
}

// IgnoredOption warns about a command line option that is accepted but has
// no effect on preprocessing.
func IgnoredOption(flag string) *Diagnostic {
	return NewWarning(fmt.Sprintf("option %s is ignored", flag)).
		WithCode(WarnIgnoredOption).
		WithNote("it is accepted for compatibility with cc command lines")
}

// FromPreprocessingError picks the builder for an error token's reason.
func FromPreprocessingError(filepath string, perr *pptoken.PreprocessingError) *Diagnostic {
	loc := source.NewLocation(perr.Row, perr.Col, 1)

	switch perr.Reason {
	case pptoken.ErrUnterminatedString:
		return UnterminatedString(filepath, loc)
	case pptoken.ErrUnterminatedChar:
		return UnterminatedChar(filepath, loc)
	case pptoken.ErrEmptyChar:
		return EmptyChar(filepath, loc)
	case pptoken.ErrUnterminatedComment:
		return UnterminatedComment(filepath, loc)
	case pptoken.ErrUnterminatedHeaderName:
		return UnterminatedHeaderName(filepath, loc, perr.Message)
	case pptoken.ErrStrayCharacter:
		return StrayCharacter(filepath, loc, perr.Message)
	case pptoken.ErrInclude:
		return IncludeFailed(filepath, loc, perr.Message)
	}
	return NewError(perr.Message).
		WithCode(ErrPreprocessing).
		WithPrimaryLabel(filepath, loc, "")
}
