package diagnostics

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"acc/colors"
)

// DiagnosticBag collects diagnostics during preprocessing. It is shared by
// the workers of a parallel phase.
type DiagnosticBag struct {
	diagnostics []*Diagnostic
	sources     map[string][]string
	mu          sync.Mutex
	errorCount  int
	warnCount   int
}

// NewDiagnosticBag creates an empty bag. Each diagnostic names its own file.
func NewDiagnosticBag() *DiagnosticBag {
	return &DiagnosticBag{
		diagnostics: make([]*Diagnostic, 0),
		sources:     make(map[string][]string),
	}
}

// Add adds a diagnostic to the bag
func (db *DiagnosticBag) Add(diag *Diagnostic) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.diagnostics = append(db.diagnostics, diag)

	switch diag.Severity {
	case Error:
		db.errorCount++
	case Warning:
		db.warnCount++
	}
}

// AddSource registers the lines of an already loaded file for rendering.
func (db *DiagnosticBag) AddSource(filepath string, lines []string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.sources[filepath] = lines
}

// HasErrors returns true if there are any errors
func (db *DiagnosticBag) HasErrors() bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount > 0
}

// ErrorCount returns the number of errors
func (db *DiagnosticBag) ErrorCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount
}

// WarningCount returns the number of warnings
func (db *DiagnosticBag) WarningCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.warnCount
}

// Diagnostics returns a snapshot of all diagnostics
func (db *DiagnosticBag) Diagnostics() []*Diagnostic {
	db.mu.Lock()
	defer db.mu.Unlock()
	return append([]*Diagnostic(nil), db.diagnostics...)
}

// EmitAllToWriter emits all diagnostics to a specific writer
func (db *DiagnosticBag) EmitAllToWriter(w io.Writer) {
	emitter := NewEmitterWithWriter(w)

	db.mu.Lock()
	diagnostics := append([]*Diagnostic(nil), db.diagnostics...)
	for path, lines := range db.sources {
		emitter.SetSourceLines(path, lines)
	}
	errorCount, warnCount := db.errorCount, db.warnCount
	db.mu.Unlock()

	for _, diag := range diagnostics {
		emitter.Emit(diag)
	}
	printSummary(w, errorCount, warnCount)
}

// EmitAllToString emits all diagnostics to a string with ANSI codes when
// color is enabled
func (db *DiagnosticBag) EmitAllToString() string {
	var buf bytes.Buffer
	db.EmitAllToWriter(&buf)
	return buf.String()
}

// EmitAllToHTML emits all diagnostics to an HTML string
func (db *DiagnosticBag) EmitAllToHTML() string {
	return colors.ConvertANSIToHTML(db.EmitAllToString())
}

func printSummary(w io.Writer, errorCount, warnCount int) {
	if errorCount > 0 {
		fmt.Fprintf(w, "\nPreprocessing failed with %d error(s)", errorCount)
		if warnCount > 0 {
			fmt.Fprintf(w, " and %d warning(s)", warnCount)
		}
		fmt.Fprintln(w)
	} else if warnCount > 0 {
		fmt.Fprintf(w, "\nPreprocessing succeeded with %d warning(s)\n", warnCount)
	}
}
