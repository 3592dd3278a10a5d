// Package colors prints ANSI-colored text for terminal diagnostics.
package colors

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// COLOR is an ANSI SGR escape prefix.
type COLOR string

const reset = "\033[0m"

const (
	RED         COLOR = "\033[0;31m"
	GREEN       COLOR = "\033[0;32m"
	YELLOW      COLOR = "\033[0;33m"
	BLUE        COLOR = "\033[0;34m"
	CYAN        COLOR = "\033[0;36m"
	GREY        COLOR = "\033[0;90m"
	BOLD_RED    COLOR = "\033[1;31m"
	BOLD_YELLOW COLOR = "\033[1;33m"
)

// Mode selects when escapes are written.
type Mode int

const (
	Auto Mode = iota
	Always
	Never
)

// ParseMode accepts "auto", "always" or "never".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "auto":
		return Auto, nil
	case "always":
		return Always, nil
	case "never":
		return Never, nil
	}
	return Auto, fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

func (m Mode) String() string {
	switch m {
	case Always:
		return "always"
	case Never:
		return "never"
	default:
		return "auto"
	}
}

var mode atomic.Int32

// SetMode changes the process-wide color mode.
func SetMode(m Mode) {
	mode.Store(int32(m))
}

// Enabled reports whether escapes should be written to w.
func Enabled(w io.Writer) bool {
	switch Mode(mode.Load()) {
	case Always:
		return true
	case Never:
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f.Fd())
}

// Sprint wraps the operands in the color unconditionally.
func (c COLOR) Sprint(a ...any) string {
	return string(c) + fmt.Sprint(a...) + reset
}

func (c COLOR) Fprint(w io.Writer, a ...any) {
	if Enabled(w) {
		fmt.Fprint(w, c.Sprint(a...))
		return
	}
	fmt.Fprint(w, a...)
}

func (c COLOR) Fprintf(w io.Writer, format string, a ...any) {
	c.Fprint(w, fmt.Sprintf(format, a...))
}

func (c COLOR) Fprintln(w io.Writer, a ...any) {
	c.Fprint(w, fmt.Sprint(a...))
	fmt.Fprintln(w)
}
