/*
File    : runac/compiler/compiler.go
Package : compiler
*/

// Package compiler orchestrates the three pipeline stages — parse, resolve
// types, generate — behind one call, the way skx-math-compiler's Compiler
// wraps tokenize/makeinternalform/output behind a single Compile method.
package compiler

import (
	"fmt"
	"strings"

	"github.com/runalang/runac/codegen"
	"github.com/runalang/runac/parser"
	"github.com/runalang/runac/types"
)

// Compiler holds the state of a single source-to-assembly run.
type Compiler struct {
	source string
	opts   codegen.Options

	prog  *parser.Program
	table *types.Table
}

// New creates a Compiler for the given source text, using opts for the
// code generator's non-functional knobs.
func New(source string, opts codegen.Options) *Compiler {
	return &Compiler{source: source, opts: opts}
}

// Compile runs the full pipeline and returns the generated assembly text
// plus any accumulated `[CODEGEN WARNING]` lines. A non-nil error is made of
// lines carrying one of the error prefixes (`[LEXER ERROR]`, `[PARSER
// ERROR]`, `[CODEGEN ERROR]`), joined by "; " when a stage reports more than
// one.
func (c *Compiler) Compile() (string, []string, error) {
	if err := c.parse(); err != nil {
		return "", nil, err
	}
	if err := c.resolveTypes(); err != nil {
		return "", nil, err
	}
	return c.generate()
}

// parse runs the lexer/parser stage. The lexer has no separate entry point
// of its own here — parser.NewParser builds one internally and drives it
// token by token. An ERROR-kind token (unterminated string, stray
// character) is recognized by the parser's own errorf and reported as a
// `[LEXER ERROR]` at the offending position, distinct from a `[PARSER
// ERROR]` produced by a syntactically misplaced but otherwise valid token.
func (c *Compiler) parse() error {
	p := parser.NewParser(c.source)
	prog := p.ParseProgram()
	if len(p.Errors) > 0 {
		return fmt.Errorf("%s", strings.Join(p.Errors, "; "))
	}
	c.prog = prog
	return nil
}

// resolveTypes builds the layout table every struct/variant/array
// FieldAccess, ArrayIndex, and VariantConstructor needs at codegen time.
func (c *Compiler) resolveTypes() error {
	table, err := types.NewTable(c.prog.Types)
	if err != nil {
		return err
	}
	c.table = table
	return nil
}

// generate runs the code generator over the parsed, type-resolved program.
func (c *Compiler) generate() (string, []string, error) {
	return codegen.Generate(c.prog, c.table, c.opts)
}

// Program exposes the parsed AST once Compile (or parse) has run, for
// callers and tests that want the tree without re-parsing.
func (c *Compiler) Program() *parser.Program { return c.prog }
