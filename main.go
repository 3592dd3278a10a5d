//go:build !(js && wasm)

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"acc/colors"
	"acc/internal/cmd"
	"acc/internal/context"
)

// stringList collects a repeatable flag such as -I.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	options := context.DefaultOptions()

	// Parse command-line flags; the environment only supplies defaults
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debug output")
	flag.StringVar(&options.OutputPath, "o", "", "Write output to `file` instead of stdout")
	flag.IntVar(&options.Optimization, "O", 0, "Optimization `level` (0-3); accepted for compatibility and ignored")
	flag.Var((*stringList)(&options.IncludePaths), "I", "Include search `dir` (repeatable); accepted and ignored, #include is not resolved")
	flag.Var((*stringList)(&options.LinkDirs), "L", "Library search `dir` (repeatable); accepted and ignored")
	flag.StringVar(&options.Std, "std", options.Std, "Language `standard`")
	flag.StringVar(&options.Emit, "emit", options.Emit, "Output `mode`: chars, verbose, base or tokens")
	flag.IntVar(&options.Jobs, "j", options.Jobs, "Preprocess up to `n` files in parallel")
	flag.StringVar(&options.Color, "color", options.Color, "Color diagnostics: auto, always or never")
	flag.Usage = usage
	flag.Parse()

	// Validate arguments
	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}
	if err := options.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", progName(), err)
		os.Exit(1)
	}
	mode, _ := colors.ParseMode(options.Color)
	colors.SetMode(mode)

	out, closeOut, err := openOutput(options.OutputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", progName(), err)
		os.Exit(1)
	}

	ctx := context.New(options)
	err = cmd.Compile(flag.Args(), ctx, out)
	if cerr := closeOut(); err == nil && cerr != nil {
		err = cerr
	}

	ctx.EmitDiagnostics(os.Stderr)
	if err != nil {
		if ctx.Options.Debug {
			fmt.Fprintf(os.Stderr, "\nPreprocessing failed: %v\n", err)
		}
		os.Exit(1)
	}

	if ctx.Options.Debug {
		fmt.Fprintln(os.Stderr, "\n✓ Preprocessing successful!")
	}
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func progName() string {
	return filepath.Base(os.Args[0])
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <file.c>...\n", progName())
	flag.PrintDefaults()
}
