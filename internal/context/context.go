// Package context provides the shared state of a preprocessing run.
//
// All phases are stateless workers that receive a CompilerContext and operate
// on the SourceFile objects registered in it. Diagnostics from every phase go
// to the context's DiagnosticBag instead of being stored per worker.
package context

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"acc/internal/diagnostics"
	"acc/internal/preprocessor/basetok"
	"acc/internal/preprocessor/charmap"
	"acc/internal/preprocessor/pptoken"
)

// CompilationPhase tracks the current phase of a run. All files move through
// phases together.
type CompilationPhase int

const (
	PhaseInitial       CompilationPhase = iota // Not started
	PhaseLoading                               // Reading source files
	PhasePreprocessing                         // Mapping and tokenizing
	PhaseComplete                              // Output rendered
)

func (p CompilationPhase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePreprocessing:
		return "preprocessing"
	case PhaseComplete:
		return "complete"
	default:
		return "initial"
	}
}

// CompilerContext is the central hub for all preprocessing state.
type CompilerContext struct {
	// Diagnostics - centralized error and warning collection
	Diagnostics *diagnostics.DiagnosticBag

	// Files - maps file path -> SourceFile
	Files map[string]*SourceFile

	// FileOrder - tracks order files were added (for deterministic output)
	FileOrder []string

	CurrentPhase CompilationPhase

	Options *CompilerOptions

	mu sync.RWMutex
}

// SourceFile is one translation unit and the output of every stage run on it.
// Mapped and BaseTokens are only filled when the emit mode asks for them.
type SourceFile struct {
	Path    string
	Content string

	Mapped     []charmap.MappedChar
	BaseTokens []basetok.Token
	Tokens     []pptoken.Token
}

// New is the entry point for starting a new preprocessing session.
func New(options *CompilerOptions) *CompilerContext {
	if options == nil {
		options = DefaultOptions()
	}

	return &CompilerContext{
		Diagnostics:  diagnostics.NewDiagnosticBag(),
		Files:        make(map[string]*SourceFile),
		FileOrder:    make([]string, 0),
		CurrentPhase: PhaseInitial,
		Options:      options,
	}
}

// AddFile registers a source file. Registering the same path again replaces
// its content but keeps its original position in FileOrder.
func (ctx *CompilerContext) AddFile(path string, content string) *SourceFile {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	file := &SourceFile{
		Path:    path,
		Content: content,
	}

	if _, exists := ctx.Files[path]; !exists {
		ctx.FileOrder = append(ctx.FileOrder, path)
	}
	ctx.Files[path] = file
	ctx.Diagnostics.AddSource(path, sourceLines(content))

	return file
}

// sourceLines splits content for diagnostic quoting. CRLF files keep no
// trailing carriage return.
func sourceLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// GetFile retrieves a source file by path.
// Returns nil if the file hasn't been registered.
func (ctx *CompilerContext) GetFile(path string) *SourceFile {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	return ctx.Files[path]
}

// GetAllFiles returns all registered files in the order they were added.
func (ctx *CompilerContext) GetAllFiles() []*SourceFile {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()

	files := make([]*SourceFile, 0, len(ctx.FileOrder))
	for _, path := range ctx.FileOrder {
		files = append(files, ctx.Files[path])
	}
	return files
}

// LoadFile reads path from disk and registers it. An unreadable file is
// reported as a diagnostic and returned as an error.
func (ctx *CompilerContext) LoadFile(path string) (*SourceFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		ctx.Diagnostics.Add(diagnostics.UnreadableFile(path, err))
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	file := ctx.AddFile(path, string(content))
	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "  Registered: %s (%d bytes)\n", filepath.Base(path), len(content))
	}
	return file, nil
}

// SetPhase records the phase all files are entering.
func (ctx *CompilerContext) SetPhase(phase CompilationPhase) {
	ctx.mu.Lock()
	ctx.CurrentPhase = phase
	ctx.mu.Unlock()

	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "\n[Phase %d] %s\n", phase, phase)
	}
}

// HasErrors returns true if any errors have been reported.
func (ctx *CompilerContext) HasErrors() bool {
	return ctx.Diagnostics.HasErrors()
}

// EmitDiagnostics writes all collected diagnostics to w.
func (ctx *CompilerContext) EmitDiagnostics(w io.Writer) {
	ctx.Diagnostics.EmitAllToWriter(w)
}
