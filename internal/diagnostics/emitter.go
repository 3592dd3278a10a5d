package diagnostics

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"acc/colors"
)

const (
	STR_MULTIPLIER = "%*d | "
)

// SourceCache caches source file contents for error reporting
type SourceCache struct {
	files map[string][]string
}

func NewSourceCache() *SourceCache {
	return &SourceCache{
		files: make(map[string][]string),
	}
}

// Set registers the lines of a file. Only registered files are quoted.
func (sc *SourceCache) Set(filepath string, lines []string) {
	sc.files[filepath] = lines
}

// GetLine returns a 1-based line of a registered file.
func (sc *SourceCache) GetLine(filepath string, line int) (string, error) {
	lines, ok := sc.files[filepath]
	if !ok {
		return "", fmt.Errorf("no source registered for %s", filepath)
	}
	if line > 0 && line <= len(lines) {
		return lines[line-1], nil
	}
	return "", fmt.Errorf("line %d out of range", line)
}

// Emitter handles the rendering and output of diagnostics
type Emitter struct {
	w     io.Writer
	cache *SourceCache
}

// labelContext groups parameters for printing labels to reduce parameter count
type labelContext struct {
	filepath     string
	line         int
	startCol     int
	endCol       int
	label        Label
	lineNumWidth int
	severity     Severity
}

func NewEmitterWithWriter(w io.Writer) *Emitter {
	return &Emitter{
		w:     w,
		cache: NewSourceCache(),
	}
}

// SetSourceLines pre-populates the source cache for filepath.
func (e *Emitter) SetSourceLines(filepath string, lines []string) {
	e.cache.Set(filepath, lines)
}

// Emit renders a diagnostic
func (e *Emitter) Emit(diag *Diagnostic) {
	filepath := diag.FilePath
	e.printHeader(diag)

	var primary []Label
	var secondary []Label
	for _, label := range diag.Labels {
		if label.Style == Primary {
			primary = append(primary, label)
		} else {
			secondary = append(secondary, label)
		}
	}

	switch {
	case len(primary) == 1 && len(secondary) == 0:
		e.printLabel(filepath, primary[0], diag.Severity)
	case len(primary) == 1:
		e.printRoutedLabels(filepath, primary[0], secondary, diag.Severity)
	case len(primary) > 1:
		colors.BOLD_RED.Fprintln(e.w, "INTERNAL COMPILER ERROR: Multiple primary labels in diagnostic!")
		fallthrough
	default:
		for _, label := range diag.Labels {
			e.printLabel(filepath, label, diag.Severity)
		}
	}

	if len(diag.Labels) == 0 && filepath != "" {
		colors.BLUE.Fprintf(e.w, "  --> %s\n", filepath)
	}

	for _, note := range diag.Notes {
		colors.CYAN.Fprint(e.w, "  = note: ")
		fmt.Fprintln(e.w, note.Message)
	}
	if diag.Help != "" {
		colors.GREEN.Fprint(e.w, "  = help: ")
		fmt.Fprintln(e.w, diag.Help)
	}

	fmt.Fprintln(e.w)
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	var color colors.COLOR
	switch diag.Severity {
	case Error:
		color = colors.BOLD_RED
	case Warning:
		color = colors.BOLD_YELLOW
	}

	color.Fprint(e.w, diag.Severity.String())
	if diag.Code != "" {
		fmt.Fprintf(e.w, "[%s]", diag.Code)
	}
	fmt.Fprint(e.w, ": ")
	color.Fprintln(e.w, diag.Message)
}

func (e *Emitter) gutter(width int) {
	colors.GREY.Fprint(e.w, strings.Repeat(" ", width))
	colors.GREY.Fprintln(e.w, " |")
}

func (e *Emitter) sourceLine(filepath string, width, line int) bool {
	text, err := e.cache.GetLine(filepath, line)
	if err != nil {
		return false
	}
	colors.GREY.Fprintf(e.w, STR_MULTIPLIER, width, line)
	fmt.Fprintln(e.w, text)
	return true
}

// printLabel quotes the label's line. Labels never span lines: a location
// whose end is on a later line is underlined at its start.
func (e *Emitter) printLabel(filepath string, label Label, severity Severity) {
	if label.Location == nil || label.Location.Start == nil {
		return
	}

	start := label.Location.Start
	end := label.Location.End
	if end == nil || end.Line != start.Line {
		end = start
	}

	colors.BLUE.Fprintf(e.w, "  --> %s:%d:%d\n", filepath, start.Line, start.Column)

	ctx := labelContext{
		filepath:     filepath,
		line:         start.Line,
		startCol:     start.Column,
		endCol:       end.Column,
		label:        label,
		lineNumWidth: len(fmt.Sprint(start.Line)),
		severity:     severity,
	}
	e.gutter(ctx.lineNumWidth)
	e.printSingleLineLabel(ctx)
}

func (e *Emitter) printSingleLineLabel(ctx labelContext) {
	// previous line for context, if not blank
	if ctx.line > 1 {
		prev, err := e.cache.GetLine(ctx.filepath, ctx.line-1)
		if err == nil && strings.TrimSpace(prev) != "" {
			colors.GREY.Fprintf(e.w, STR_MULTIPLIER, ctx.lineNumWidth, ctx.line-1)
			colors.GREY.Fprintln(e.w, prev)
		}
	}

	if !e.sourceLine(ctx.filepath, ctx.lineNumWidth, ctx.line) {
		return
	}

	color := colors.BLUE
	if ctx.label.Style == Primary {
		color = e.getSeverityColor(ctx.severity)
	}
	e.underline(ctx.lineNumWidth, ctx.startCol, ctx.endCol, ctx.label, color)
	e.gutter(ctx.lineNumWidth)
}

// underline draws ^ (one column), ~ (a span) or - (secondary) under a source line.
func (e *Emitter) underline(width, startCol, endCol int, label Label, color colors.COLOR) {
	length := max(endCol-startCol, 1)

	char := "-"
	if label.Style == Primary {
		char = "^"
		if length > 1 {
			char = "~"
		}
	}

	colors.GREY.Fprint(e.w, strings.Repeat(" ", width), " | ")
	fmt.Fprint(e.w, strings.Repeat(" ", max(startCol-1, 0)))
	color.Fprint(e.w, strings.Repeat(char, length))
	if label.Message != "" {
		color.Fprintf(e.w, " %s", label.Message)
	}
	fmt.Fprintln(e.w)
}

// printRoutedLabels prints a primary label and its secondaries, each line once,
// in line order.
func (e *Emitter) printRoutedLabels(filepath string, primary Label, secondaries []Label, severity Severity) {
	if primary.Location == nil || primary.Location.Start == nil {
		return
	}

	primaryStart := primary.Location.Start
	colors.BLUE.Fprintf(e.w, "  --> %s:%d:%d\n", filepath, primaryStart.Line, primaryStart.Column)

	byLine := map[int]Label{primaryStart.Line: primary}
	for _, sec := range secondaries {
		if sec.Location == nil || sec.Location.Start == nil {
			continue
		}
		// first label on a line wins; the primary always does
		if _, taken := byLine[sec.Location.Start.Line]; !taken {
			byLine[sec.Location.Start.Line] = sec
		}
	}

	lines := make([]int, 0, len(byLine))
	for line := range byLine {
		lines = append(lines, line)
	}
	slices.Sort(lines)

	width := len(fmt.Sprint(lines[len(lines)-1]))
	e.gutter(width)

	for i, line := range lines {
		if i > 0 && line-lines[i-1] > 1 {
			colors.GREY.Fprint(e.w, strings.Repeat(" ", width))
			colors.GREY.Fprintln(e.w, " ...")
		}
		if !e.sourceLine(filepath, width, line) {
			continue
		}

		label := byLine[line]
		start := label.Location.Start
		end := label.Location.End
		if end == nil || end.Line != start.Line {
			end = start
		}
		color := colors.BLUE
		if label.Style == Primary {
			color = e.getSeverityColor(severity)
		}
		e.underline(width, start.Column, end.Column, label, color)
	}

	e.gutter(width)
}

// getSeverityColor returns the color for a given severity
func (e *Emitter) getSeverityColor(severity Severity) colors.COLOR {
	switch severity {
	case Error:
		return colors.RED
	case Warning:
		return colors.YELLOW
	default:
		return colors.RED
	}
}
