/*
File    : runac/cmd/runac/main.go
Package : main
*/

// Command runac is the batch compiler's entry point: `runac <input>
// <output>`. Grounded on go-mix's main/main.go file-mode path (runFile /
// executeFileWithRecovery) — panic recovery, colorized diagnostics to
// stderr, exit 1 on any error — stripped of the REPL and TCP server modes,
// which have no analogue in a one-shot batch compiler.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/runalang/runac/codegen"
	"github.com/runalang/runac/compiler"
	"github.com/runalang/runac/config"
	"github.com/runalang/runac/diagnostics"
)

var (
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
)

func main() {
	configPath := flag.String("config", "", "path to an optional YAML config (defaults to <input>.yaml)")
	legacyOffsets := flag.Bool("legacy-offsets", false, "enable the heuristic field-offset table for archived-source recompilation")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: runac [-config path] [-legacy-offsets] <input> <output>\n")
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	defer func() {
		if r := recover(); r != nil {
			diagnostics.Fatal(diagnostics.RuntimeError, "%v", r)
		}
	}()

	opts, err := loadOptions(*configPath, inputPath, *legacyOffsets)
	if err != nil {
		diagnostics.Fatal(diagnostics.CodegenError, "reading config: %v", err)
	}

	source, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[CODEGEN ERROR] could not read %q: %v\n", inputPath, err)
		os.Exit(1)
	}

	asm, warnings, err := compiler.New(string(source), opts).Compile()
	// Warnings already carry their own `[CODEGEN WARNING]` prefix (codegen
	// builds them that way so Generate's own error aggregation can join
	// prefixed lines uniformly); printed directly rather than through
	// diagnostics.Warning, which would add a second prefix.
	for _, w := range warnings {
		warningColor.Fprintf(os.Stderr, "%s\n", w)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outputPath, []byte(asm), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "[CODEGEN ERROR] could not write %q: %v\n", outputPath, err)
		os.Exit(1)
	}

	successColor.Fprintf(os.Stdout, "Successfully compiled '%s' to '%s'\n", inputPath, outputPath)
}

// loadOptions tries -config first, then `<input>.yaml` (the input path with
// ".yaml" appended), then falls back to codegen.Defaults(). -legacy-offsets
// always wins over whatever the YAML file says, since it's the one knob
// worth a flag of its own (the Supplemented Features' #4 escape hatch).
func loadOptions(configPath, inputPath string, legacyOffsets bool) (codegen.Options, error) {
	path := configPath
	if path == "" {
		path = inputPath + ".yaml"
	}
	opts, err := config.Load(path)
	if err != nil {
		return opts, err
	}
	if legacyOffsets {
		opts.LegacyOffsets = true
	}
	return opts, nil
}
