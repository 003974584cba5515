/*
File    : runac/codegen/generator.go
Package : codegen
*/

// Package codegen lowers a parsed, type-tabled Program directly to
// GNU-assembler (AT&T syntax) text for x86-64 System V, per §4.4. It runs
// in two passes over the program (§5): a string-literal pre-pass that
// populates the pool before any code is emitted, then the single emission
// pass that walks every global and function in source order.
package codegen

import (
	"fmt"
	"strings"

	"github.com/runalang/runac/parser"
	"github.com/runalang/runac/types"
)

// Generate lowers prog (with its resolved type table) into a complete GAS
// text file, in the section order §4.4 specifies. The returned error
// aggregates every `[CODEGEN ERROR]` raised while walking the program;
// callers should still inspect the returned warnings slice for non-fatal
// `[CODEGEN WARNING]` lines even on success.
func Generate(prog *parser.Program, table *types.Table, opts Options) (string, []string, error) {
	g := newGenerator(prog, table, opts)
	g.collectStrings()

	var out strings.Builder

	if opts.EmitImportComments && len(prog.Imports) > 0 {
		out.WriteString("# Imports:\n")
		for _, imp := range prog.Imports {
			fmt.Fprintf(&out, "#   %s as %s\n", imp.FileName, imp.Alias)
		}
	}

	globalsData, globalsBSS := g.genGlobals()

	out.WriteString(g.pool.emit())
	out.WriteString(".section .data\n")
	out.WriteString(globalsData)
	out.WriteString(".section .bss\n")
	out.WriteString(globalsBSS)

	out.WriteString(".text\n")
	out.WriteString(printStringHelper)
	out.WriteString(printIntegerHelper)

	hasMain := false
	for _, fn := range prog.Functions {
		if fn.Name == "main" {
			hasMain = true
		}
		out.WriteString(".globl " + fn.Name + "\n")
		out.WriteString(g.genFunction(fn))
	}
	if !hasMain {
		if len(prog.Functions) == 0 {
			g.errorf("[CODEGEN ERROR] program declares no functions; nothing to synthesize main from")
		} else {
			out.WriteString(".globl main\n")
			out.WriteString(g.genSyntheticMain(prog.Functions[0]))
		}
	}

	out.WriteString(".section .note.GNU-stack,\"\",@progbits\n")

	if len(g.errors) > 0 {
		return "", g.warnings, fmt.Errorf("%s", strings.Join(g.errors, "; "))
	}
	return out.String(), g.warnings, nil
}

// genGlobals renders every GlobalVariable into a .data entry (Init != nil)
// or a .bss entry otherwise, per §4.4 item 3/4. Only a constant initializer
// (an integer, or a string literal interned into the pool) can be placed
// directly in .data — there is no startup code to evaluate a non-constant
// expression before main runs.
func (g *Generator) genGlobals() (data, bss string) {
	var d, b strings.Builder
	for _, gv := range g.prog.Globals {
		if gv.Init == nil {
			fmt.Fprintf(&b, "%s:\n\t.zero 8\n", gv.Name)
			continue
		}
		switch init := gv.Init.(type) {
		case *parser.Integer:
			fmt.Fprintf(&d, "%s:\n\t.quad %d\n", gv.Name, init.Value)
		case *parser.StringLiteral:
			lbl := g.pool.intern(init.Value)
			fmt.Fprintf(&d, "%s:\n\t.quad %s\n", gv.Name, lbl)
		default:
			g.errorf("[CODEGEN ERROR] global %q must be initialized with a constant", gv.Name)
			fmt.Fprintf(&d, "%s:\n\t.quad 0\n", gv.Name)
		}
	}
	return d.String(), b.String()
}

// collectStrings is the string-literal pre-pass (§5, §4.4 "String pool"):
// every literal appearing anywhere in the program is interned before any
// code is emitted, so a literal used by two different functions still gets
// exactly one pool entry regardless of emission order.
func (g *Generator) collectStrings() {
	for _, gv := range g.prog.Globals {
		if gv.Init != nil {
			g.collectStringsExpr(gv.Init)
		}
	}
	for _, fn := range g.prog.Functions {
		for _, s := range fn.Body {
			g.collectStringsStmt(s)
		}
	}
}

func (g *Generator) collectStringsStmt(stmt parser.Statement) {
	switch s := stmt.(type) {
	case *parser.Let:
		g.collectStringsExpr(s.Expr)
	case *parser.Set:
		g.collectStringsExpr(s.Target)
		g.collectStringsExpr(s.Expr)
	case *parser.Return:
		if s.Expr != nil {
			g.collectStringsExpr(s.Expr)
		}
	case *parser.If:
		g.collectStringsExpr(s.Condition)
		for _, st := range s.Then {
			g.collectStringsStmt(st)
		}
		for _, st := range s.Else {
			g.collectStringsStmt(st)
		}
	case *parser.While:
		g.collectStringsExpr(s.Condition)
		for _, st := range s.Body {
			g.collectStringsStmt(st)
		}
	case *parser.Print:
		g.collectStringsExpr(s.Expr)
	case *parser.Match:
		g.collectStringsExpr(s.Expr)
		for _, c := range s.Cases {
			for _, st := range c.Body {
				g.collectStringsStmt(st)
			}
		}
	case *parser.ExpressionStmt:
		g.collectStringsExpr(s.Expr)
	case *parser.Break, *parser.Continue, *parser.InlineAssembly:
		// No nested expressions to walk.
	}
}

func (g *Generator) collectStringsExpr(expr parser.Expression) {
	switch e := expr.(type) {
	case *parser.StringLiteral:
		g.pool.intern(e.Value)
	case *parser.Binary:
		g.collectStringsExpr(e.Left)
		g.collectStringsExpr(e.Right)
	case *parser.Comparison:
		g.collectStringsExpr(e.Left)
		g.collectStringsExpr(e.Right)
	case *parser.FunctionCall:
		for _, a := range e.Args {
			g.collectStringsExpr(a)
		}
	case *parser.BuiltinCall:
		for _, a := range e.Args {
			g.collectStringsExpr(a)
		}
	case *parser.FieldAccess:
		g.collectStringsExpr(e.Object)
	case *parser.ArrayIndex:
		g.collectStringsExpr(e.Array)
		g.collectStringsExpr(e.Index)
	case *parser.VariantConstructor:
		for _, fv := range e.Fields {
			g.collectStringsExpr(fv.Value)
		}
	}
}
