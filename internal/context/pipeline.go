package context

import (
	"errors"
	"fmt"
	"os"

	"acc/internal/diagnostics"
	"acc/internal/preprocessor"
	"acc/internal/preprocessor/basetok"
	"acc/internal/preprocessor/charmap"
	"acc/internal/preprocessor/pptoken"
)

// PreprocessFile runs translation phases 1-3 over one file. It is the
// preprocessing phase worker: it only touches file and reports to
// ctx.Diagnostics, so distinct files may be processed concurrently.
func (ctx *CompilerContext) PreprocessFile(file *SourceFile) {
	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "  Preprocessing %s (%d bytes)\n", file.Path, len(file.Content))
	}

	if ctx.Options.Wants(EmitChars) || ctx.Options.Wants(EmitVerbose) {
		file.Mapped = charmap.NewMapper(file.Content).Collect()
	}
	if ctx.Options.Wants(EmitBase) {
		file.BaseTokens = file.BaseTokens[:0]
		for tok := range basetok.FromSource(file.Content).All() {
			file.BaseTokens = append(file.BaseTokens, tok)
		}
	}

	file.Tokens = file.Tokens[:0]
	errCount := 0
	for tok, err := range preprocessor.New(file.Content).All() {
		file.Tokens = append(file.Tokens, tok)

		var perr *pptoken.PreprocessingError
		if errors.As(err, &perr) {
			ctx.Diagnostics.Add(diagnostics.FromPreprocessingError(file.Path, perr))
			errCount++
		}
	}

	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "    Generated %d tokens, %d error(s)\n", len(file.Tokens), errCount)
	}
}
