/*
File    : runac/cmd/runac-tokens/main.go
Package : main
*/

// Command runac-tokens is an interactive token/AST dumper: a development
// aid for working on the lexer/parser grammar, not part of the compiler's
// batch contract. Grounded directly on go-mix's repl/repl.go — readline
// for line editing and history, fatih/color for the banner and output —
// retargeted from evaluating expressions to echoing the token stream (and,
// when the buffered input parses as a complete program, a one-line AST
// summary) for whatever has been typed so far.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/runalang/runac/lexer"
	"github.com/runalang/runac/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const (
	banner = `
  runac-tokens — lexer/AST inspector
`
	line   = "----------------------------------------------------------------"
	prompt = "runac-tokens >>> "
)

func main() {
	printBanner(os.Stdout)

	rl, err := readline.New(prompt)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	// buffer accumulates lines so a multi-line construct (a whole Process,
	// a multi-case Type) can be parsed as one program once it looks
	// complete, rather than forcing every dumped line to be self-contained.
	var buffer strings.Builder

	for {
		input, err := rl.Readline()
		if err != nil {
			os.Stdout.WriteString("Good Bye!\n")
			return
		}
		input = strings.TrimRight(input, " \t\r")

		switch strings.TrimSpace(input) {
		case "":
			continue
		case ".exit":
			os.Stdout.WriteString("Good Bye!\n")
			return
		case ".clear":
			buffer.Reset()
			cyanColor.Fprintln(os.Stdout, "buffer cleared")
			continue
		case ".tokens":
			dumpTokens(os.Stdout, buffer.String())
			continue
		}

		rl.SaveHistory(input)
		buffer.WriteString(input)
		buffer.WriteString("\n")

		dumpTokens(os.Stdout, input)
		tryDumpAST(os.Stdout, buffer.String())
	}
}

func printBanner(w *os.File) {
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", banner)
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintln(w, "Type source lines; tokens for each line are echoed immediately.")
	cyanColor.Fprintln(w, "When the buffer so far parses as a complete program, its AST is summarized too.")
	cyanColor.Fprintln(w, ".tokens dumps tokens for the whole buffer, .clear resets it, .exit quits.")
	blueColor.Fprintf(w, "%s\n", line)
}

// dumpTokens lexes src standalone and prints one colorized line per token,
// stopping at EOF (never looping forever on bad input the way NextToken's
// post-EOF contract otherwise would).
func dumpTokens(w *os.File, src string) {
	lex := lexer.NewLexer(src)
	for {
		tok := lex.NextToken()
		if tok.Kind == lexer.EOF {
			return
		}
		if tok.Kind == lexer.ERROR {
			redColor.Fprintf(w, "[LEXER ERROR] %s\n", tok.String())
			return
		}
		yellowColor.Fprintf(w, "%s\n", tok.String())
	}
}

// tryDumpAST parses the accumulated buffer and, if it comes back with no
// parser errors, prints a one-line summary of what it found so far. Parse
// errors are expected mid-construct (e.g. a Process whose End Process
// hasn't been typed yet) and are silently ignored here — .tokens / the
// per-line token dump already surfaces lexical problems.
func tryDumpAST(w *os.File, src string) {
	p := parser.NewParser(src)
	prog := p.ParseProgram()
	if len(p.Errors) > 0 {
		return
	}
	greenColor.Fprintf(w, "AST so far: %d import(s), %d type(s), %d global(s), %d function(s)\n",
		len(prog.Imports), len(prog.Types), len(prog.Globals), len(prog.Functions))
	for _, fn := range prog.Functions {
		fmt.Fprintf(w, "  Process %q: %d param(s) -> %s\n", fn.Name, len(fn.Params), fn.ReturnType)
	}
}
