package context

import (
	"fmt"
	"os"
	"runtime"

	"github.com/xyproto/env/v2"

	"acc/colors"
)

// Emit modes select what the driver prints for each file.
const (
	EmitChars   = "chars"   // phases 1-2 output, elided units dropped
	EmitVerbose = "verbose" // one mapped unit per line with its position
	EmitBase    = "base"    // base tokens
	EmitTokens  = "tokens"  // preprocessing tokens
)

// CompilerOptions holds compiler configuration.
// Passed to the context at creation time and remains immutable.
type CompilerOptions struct {
	Debug        bool     // Enable debug output during preprocessing
	OutputPath   string   // Output file, "" or "-" for stdout
	IncludePaths []string // -I directories, accepted and ignored
	LinkDirs     []string // -L directories, accepted and ignored
	Optimization int      // Optimization level (0-3), accepted and ignored
	Std          string   // Language standard, only c90
	Emit         string   // One of the Emit* modes
	Jobs         int      // Files preprocessed concurrently
	Color        string   // auto, always or never
}

// DefaultOptions returns the defaults overridden by ACC_* environment
// variables. NO_COLOR disables color unless ACC_COLOR says otherwise.
func DefaultOptions() *CompilerOptions {
	color := "auto"
	if env.Has("NO_COLOR") {
		color = "never"
	}

	return &CompilerOptions{
		Debug: env.Bool("ACC_DEBUG"),
		Std:   env.Str("ACC_STD", "c90"),
		Emit:  env.Str("ACC_EMIT", EmitTokens),
		Jobs:  env.Int("ACC_JOBS", runtime.NumCPU()),
		Color: env.Str("ACC_COLOR", color),
	}
}

// Validate rejects option values the preprocessor cannot honor.
func (o *CompilerOptions) Validate() error {
	if o.Std != "c90" && o.Std != "c89" {
		return fmt.Errorf("unsupported standard %q: only c90 is implemented", o.Std)
	}
	switch o.Emit {
	case EmitChars, EmitVerbose, EmitBase, EmitTokens:
	default:
		return fmt.Errorf("unknown emit mode %q (want %s, %s, %s or %s)", o.Emit, EmitChars, EmitVerbose, EmitBase, EmitTokens)
	}
	if o.Optimization < 0 || o.Optimization > 3 {
		return fmt.Errorf("optimization level must be between 0 and 3, got %d", o.Optimization)
	}
	if o.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", o.Jobs)
	}
	if _, err := colors.ParseMode(o.Color); err != nil {
		return err
	}

	for _, dirs := range [][]string{o.IncludePaths, o.LinkDirs} {
		for _, dir := range dirs {
			info, err := os.Stat(dir)
			if err != nil {
				return fmt.Errorf("search directory: %w", err)
			}
			if !info.IsDir() {
				return fmt.Errorf("search directory %s is not a directory", dir)
			}
		}
	}
	return nil
}

// Wants reports whether the emit mode needs the output of the given stage.
func (o *CompilerOptions) Wants(mode string) bool {
	return o.Emit == mode
}

// Ignored lists the flags that were set but do not affect preprocessing.
// Includes are not resolved, and nothing is optimized or linked.
func (o *CompilerOptions) Ignored() []string {
	var flags []string
	if len(o.IncludePaths) > 0 {
		flags = append(flags, "-I")
	}
	if len(o.LinkDirs) > 0 {
		flags = append(flags, "-L")
	}
	if o.Optimization != 0 {
		flags = append(flags, "-O")
	}
	return flags
}
