package diagnostics

import "acc/internal/source"

// Severity decides how a diagnostic affects the run: any Error fails it.
type Severity int

const (
	Error Severity = iota
	Warning
)

var severityNames = [...]string{Error: "error", Warning: "warning"}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

// LabelStyle picks the underline: ^ or ~ for Primary, - for Secondary.
type LabelStyle int

const (
	Primary LabelStyle = iota
	Secondary
)

// Label underlines a span of one source line.
type Label struct {
	Location *source.Location
	Message  string
	Style    LabelStyle
}

type Note struct {
	Message string
}

// Diagnostic is one report about a source file. It is built with NewError or
// NewWarning and the With* methods, which return the receiver so calls chain.
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	FilePath string
	Labels   []Label
	Notes    []Note
	Help     string
}

func NewError(message string) *Diagnostic {
	return &Diagnostic{Severity: Error, Message: message}
}

func NewWarning(message string) *Diagnostic {
	return &Diagnostic{Severity: Warning, Message: message}
}

func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

// WithLabel attaches a label in filepath. The first labelled file becomes
// the diagnostic's FilePath.
func (d *Diagnostic) WithLabel(filepath string, loc *source.Location, message string, style LabelStyle) *Diagnostic {
	if d.FilePath == "" {
		d.FilePath = filepath
	}
	d.Labels = append(d.Labels, Label{Location: loc, Message: message, Style: style})
	return d
}

func (d *Diagnostic) WithPrimaryLabel(filepath string, loc *source.Location, message string) *Diagnostic {
	return d.WithLabel(filepath, loc, message, Primary)
}

func (d *Diagnostic) WithSecondaryLabel(filepath string, loc *source.Location, message string) *Diagnostic {
	return d.WithLabel(filepath, loc, message, Secondary)
}

func (d *Diagnostic) WithNote(message string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Message: message})
	return d
}

// WithHelp sets a suggestion for fixing the problem.
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}
