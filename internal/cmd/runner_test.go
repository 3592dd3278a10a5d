package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"acc/internal/context"
)

func createTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	return path
}

func newContext(emit string, jobs int) *context.CompilerContext {
	return context.New(&context.CompilerOptions{Std: "c90", Emit: emit, Jobs: jobs, Color: "never"})
}

func TestCompileRendersEachMode(t *testing.T) {
	dir := t.TempDir()
	path := createTestFile(t, dir, "a.c", "a??=\\\nb")

	tests := []struct {
		emit string
		want string
	}{
		{context.EmitChars, path + ":\na#b\n"},
		{context.EmitVerbose, path + ":\na (0, 0)\n# (0, 1)\nNone (0, 4)\nb (1, 0)\n"},
		{context.EmitBase, path + ":\n0:0 Letters(\"a\")\n0:1 Symbol(Hash)\n0:4 Symbol(Unknown)\n1:0 Letters(\"b\")\n"},
		{context.EmitTokens, path + ":\n1:1 Identifier a\n1:2 Symbol #\n2:1 Identifier b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.emit, func(t *testing.T) {
			var out strings.Builder
			if err := Compile([]string{path}, newContext(tt.emit, 1), &out); err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", out.String(), tt.want)
			}
		})
	}
}

func TestCompileAnnotatesKeywords(t *testing.T) {
	path := createTestFile(t, t.TempDir(), "k.c", "return x;")

	var out strings.Builder
	if err := Compile([]string{path}, newContext(context.EmitTokens, 1), &out); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !strings.Contains(out.String(), "1:1 Identifier return (keyword return)\n1:8 Identifier x\n") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestCompileReportsPreprocessingErrors(t *testing.T) {
	path := createTestFile(t, t.TempDir(), "bad.c", "int c = '';\n")

	ctx := newContext(context.EmitTokens, 1)
	var out strings.Builder
	err := Compile([]string{path}, ctx, &out)
	if !errors.Is(err, ErrPreprocessingFailed) {
		t.Fatalf("Expected ErrPreprocessingFailed, got %v", err)
	}
	if !strings.Contains(out.String(), "PreprocessingError") {
		t.Errorf("Expected the error token in the output:\n%s", out.String())
	}
	if ctx.Diagnostics.ErrorCount() != 1 {
		t.Errorf("Expected 1 diagnostic, got %d", ctx.Diagnostics.ErrorCount())
	}
}

func TestCompileMissingFile(t *testing.T) {
	ctx := newContext(context.EmitTokens, 1)
	var out strings.Builder
	err := Compile([]string{filepath.Join(t.TempDir(), "missing.c")}, ctx, &out)
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if out.Len() != 0 {
		t.Errorf("Expected no output, got %q", out.String())
	}
	if !ctx.HasErrors() {
		t.Error("Expected an F0001 diagnostic")
	}
}

func TestRunPreprocessPhaseParallel(t *testing.T) {
	dir := t.TempDir()
	ctx := newContext(context.EmitTokens, 4)

	var paths []string
	for i := range 16 {
		paths = append(paths, createTestFile(t, dir, fmt.Sprintf("f%02d.c", i), fmt.Sprintf("int v%d = %d;", i, i)))
	}

	var out strings.Builder
	if err := Compile(paths, ctx, &out); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	for i, file := range ctx.GetAllFiles() {
		if file.Path != paths[i] {
			t.Fatalf("file %d is %s, want %s", i, file.Path, paths[i])
		}
		if len(file.Tokens) != 5 || !file.Tokens[1].IsIdent(fmt.Sprintf("v%d", i)) {
			t.Errorf("%s: unexpected tokens %v", file.Path, file.Tokens)
		}
	}

	// output keeps registration order regardless of scheduling
	first := strings.Index(out.String(), paths[0])
	last := strings.Index(out.String(), paths[15])
	if first < 0 || last < first {
		t.Errorf("output out of order")
	}
}

func TestCompileWarnsAboutIgnoredFlags(t *testing.T) {
	path := createTestFile(t, t.TempDir(), "w.c", "int x;")

	ctx := newContext(context.EmitTokens, 1)
	ctx.Options.Optimization = 2
	ctx.Options.LinkDirs = []string{t.TempDir()}

	var out strings.Builder
	if err := Compile([]string{path}, ctx, &out); err != nil {
		t.Fatalf("Expected warnings only, got: %v", err)
	}
	if ctx.Diagnostics.WarningCount() != 2 || ctx.HasErrors() {
		t.Errorf("Expected 2 warnings and no errors, got %v", ctx.Diagnostics.Diagnostics())
	}
}
