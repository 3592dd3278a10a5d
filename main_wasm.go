//go:build js && wasm

package main

import (
	"fmt"
	"strings"
	"syscall/js"

	"acc/colors"
	"acc/internal/cmd"
	"acc/internal/context"
)

// preprocessCode runs the preprocessor over code and returns the rendered
// output and the diagnostics as HTML
func preprocessCode(code, emit string) (string, string, error) {
	jsConsole := js.Global().Get("console")

	// Defer panic recovery
	defer func() {
		if r := recover(); r != nil {
			jsConsole.Call("error", "PANIC in preprocessCode:", r)
		}
	}()

	options := &context.CompilerOptions{Std: "c90", Emit: emit, Jobs: 1, Color: "always"}
	if err := options.Validate(); err != nil {
		return "", "", err
	}
	colors.SetMode(colors.Always)

	ctx := context.New(options)

	// There is no file system in the browser: register the code as a
	// virtual file and run the phases directly.
	file := ctx.AddFile("main.c", code)
	ctx.PreprocessFile(file)

	var out strings.Builder
	if err := cmd.Render(ctx, &out); err != nil {
		return "", "", err
	}

	html := ctx.Diagnostics.EmitAllToHTML()
	if ctx.HasErrors() {
		return out.String(), html, fmt.Errorf("preprocessing failed with errors")
	}
	return out.String(), html, nil
}

// accPreprocessJS is the JavaScript-callable function
func accPreprocessJS(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return map[string]any{
			"success": false,
			"error":   "Expected at least 1 argument (code string)",
		}
	}

	code := args[0].String()
	emit := context.EmitTokens
	if len(args) > 1 {
		emit = args[1].String()
	}

	output, diagnostics, err := preprocessCode(code, emit)
	if err != nil {
		return map[string]any{
			"success":     false,
			"output":      output,
			"diagnostics": diagnostics,
			"error":       err.Error(),
		}
	}

	return map[string]any{
		"success":     true,
		"output":      output,
		"diagnostics": diagnostics,
	}
}

func main() {
	// Prevent the program from exiting
	c := make(chan struct{})

	js.Global().Set("accPreprocess", js.FuncOf(accPreprocessJS))
	js.Global().Set("accWasmVersion", "v0.1.0")

	fmt.Println("acc WASM preprocessor ready")

	<-c
}
