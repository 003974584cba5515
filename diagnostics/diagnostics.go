/*
File    : runac/diagnostics/diagnostics.go
Package : diagnostics
*/

// Package diagnostics prints the toolchain's five fixed prefix lines
// (§7/GLOSSARY: `[LEXER ERROR]`, `[PARSER ERROR]`, `[CODEGEN ERROR]`,
// `[CODEGEN WARNING]`, `[RUNTIME ERROR]`) to stderr, colorized the way
// go-mix's main/main.go colorizes its own error/info output.
package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	errorColor   = color.New(color.FgRed)
	warningColor = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
)

// Prefix is one of the five fixed diagnostic prefixes. Test suites grep
// for these verbatim, so they are never reformatted or translated.
type Prefix string

const (
	LexerError    Prefix = "[LEXER ERROR]"
	ParserError   Prefix = "[PARSER ERROR]"
	CodegenError  Prefix = "[CODEGEN ERROR]"
	CodegenWarn   Prefix = "[CODEGEN WARNING]"
	RuntimeError  Prefix = "[RUNTIME ERROR]"
)

// Error writes a prefixed error line to w in red and returns it as an
// error value so callers can propagate it (e.g. to set a nonzero exit
// code) without printing twice.
func Error(w io.Writer, prefix Prefix, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	errorColor.Fprintf(w, "%s %s\n", prefix, msg)
	return fmt.Errorf("%s %s", prefix, msg)
}

// Warning writes a [CODEGEN WARNING] line to w in yellow. Warnings
// never abort compilation (§4.4, the >6-parameter case).
func Warning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	warningColor.Fprintf(w, "%s %s\n", CodegenWarn, msg)
}

// Info writes an informational line (not one of the five fixed prefixes)
// in cyan, mirroring go-mix's cyanColor usage for status/banner text.
func Info(w io.Writer, format string, args ...any) {
	infoColor.Fprintf(w, format+"\n", args...)
}

// Fatal prints a prefixed error to stderr and exits nonzero — used by the
// CLI entry point for a config load failure and for a recovered panic,
// both of which abort the whole run.
func Fatal(prefix Prefix, format string, args ...any) {
	Error(os.Stderr, prefix, format, args...)
	os.Exit(1)
}
