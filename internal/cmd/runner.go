package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"acc/internal/context"
	"acc/internal/diagnostics"
	"acc/internal/preprocessor/charmap"
	"acc/internal/source"
)

// ErrPreprocessingFailed is returned by Compile when any error diagnostic was
// recorded. The diagnostics themselves are in the context.
var ErrPreprocessingFailed = errors.New("preprocessing failed with errors")

// RunPreprocessPhase preprocesses all files in parallel, at most
// Options.Jobs at a time
func RunPreprocessPhase(ctx *context.CompilerContext) error {
	ctx.SetPhase(context.PhasePreprocessing)

	files := ctx.GetAllFiles()

	var g errgroup.Group
	g.SetLimit(max(ctx.Options.Jobs, 1))
	for _, file := range files {
		g.Go(func() error {
			ctx.PreprocessFile(file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "  ✓ Processed %d file(s)\n", len(files))
	}
	return nil
}

// Render writes the output selected by Options.Emit for every file, in
// registration order
func Render(ctx *context.CompilerContext, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, file := range ctx.GetAllFiles() {
		renderFile(bw, ctx.Options.Emit, file)
	}
	return bw.Flush()
}

func renderFile(w io.Writer, emit string, file *context.SourceFile) {
	switch emit {
	case context.EmitChars:
		fmt.Fprintf(w, "%s:\n%s\n", file.Path, charmap.Plain(file.Mapped))
	case context.EmitVerbose:
		fmt.Fprintf(w, "%s:\n%s", file.Path, charmap.Verbose(file.Mapped))
	case context.EmitBase:
		fmt.Fprintf(w, "%s:\n", file.Path)
		for _, tok := range file.BaseTokens {
			fmt.Fprintln(w, tok)
		}
	default:
		fmt.Fprintf(w, "%s:\n", file.Path)
		for _, tok := range file.Tokens {
			fmt.Fprintf(w, "%s %s %s", source.FromRowCol(tok.Row, tok.Col), tok.Kind, tok.Spelling())
			if kw, ok := tok.Keyword(); ok {
				fmt.Fprintf(w, " (keyword %s)", kw)
			}
			fmt.Fprintln(w)
		}
	}
}

// Compile loads every path, preprocesses them and renders the result to w.
// Phases operate on the CompilerContext and report through ctx.Diagnostics;
// nothing is rendered when a file cannot be read.
func Compile(paths []string, ctx *context.CompilerContext, w io.Writer) error {
	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "\n[Preprocessing Started] %d input file(s)\n", len(paths))
	}

	for _, flag := range ctx.Options.Ignored() {
		ctx.Diagnostics.Add(diagnostics.IgnoredOption(flag))
	}

	ctx.SetPhase(context.PhaseLoading)
	var loadErr error
	for _, path := range paths {
		if _, err := ctx.LoadFile(path); err != nil {
			loadErr = errors.Join(loadErr, err)
		}
	}
	if loadErr != nil {
		return loadErr
	}

	if err := RunPreprocessPhase(ctx); err != nil {
		return fmt.Errorf("preprocess phase failed: %w", err)
	}

	if err := Render(ctx, w); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	ctx.SetPhase(context.PhaseComplete)

	if ctx.HasErrors() {
		return ErrPreprocessingFailed
	}
	return nil
}
