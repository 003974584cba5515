/*
File    : runac/codegen/functions.go
Package : codegen
*/

package codegen

import (
	"fmt"
	"strings"

	"github.com/runalang/runac/parser"
)

// genFunction implements §4.4's Function prologue/body/(fall-off) shape: a
// standard push-rbp/mov-rsp frame, the command-line-args shim for a
// two-parameter main, the fixed pre-allocation, register-parameter
// spilling to stack slots, and the statement list. Functions with no
// explicit Return simply fall off the end (§4.4: "undefined behavior; the
// compiler does not warn").
func (g *Generator) genFunction(fn *parser.Function) string {
	g.fc = newFuncCtx()

	var out strings.Builder
	fmt.Fprintf(&out, "%s:\n", fn.Name)
	out.WriteString("\tpushq %rbp\n\tmovq %rsp, %rbp\n")

	if fn.Name == "main" && len(fn.Params) == 2 {
		out.WriteString("\tpushq %rdi\n\tpushq %rsi\n")
		out.WriteString("\tcall runtime_set_command_line_args@PLT\n")
		out.WriteString("\tpopq %rsi\n\tpopq %rdi\n")
	}

	fmt.Fprintf(&out, "\tsubq $%d, %%rsp\n", g.opts.FrameSize)

	if len(fn.Params) > 6 {
		g.warnf("[CODEGEN WARNING] function %q declares %d parameters; only 6 are register-passable, the rest are read from the stack", fn.Name, len(fn.Params))
	}

	for i, p := range fn.Params {
		isArray := g.table.IsArray(p.TypeName)
		if i < 6 {
			base := g.fc.allocLocal(p.Name, p.TypeName, wordSize)
			g.fc.bindParam(p.Name, p.TypeName, base, isArray)
			fmt.Fprintf(&out, "\tmovq %s, %d(%%rbp)\n", argRegs[i], base)
		} else {
			offset := 16 + (i-6)*wordSize
			g.fc.bindParam(p.Name, p.TypeName, offset, isArray)
		}
	}

	for _, stmt := range fn.Body {
		out.WriteString(g.genStmt(stmt))
	}

	return out.String()
}

// genSyntheticMain builds the `main` §4.4 synthesizes when the program
// declares no function literally named `main`: call the first user
// function and exit the process with its return value.
func (g *Generator) genSyntheticMain(first *parser.Function) string {
	var out strings.Builder
	out.WriteString("main:\n")
	out.WriteString("\tpushq %rbp\n\tmovq %rsp, %rbp\n")
	fmt.Fprintf(&out, "\tsubq $%d, %%rsp\n", g.opts.FrameSize)
	fmt.Fprintf(&out, "\tcall %s\n", first.Name)
	out.WriteString("\tmovq %rax, %rdi\n\tcall exit_with_code@PLT\n")
	return out.String()
}
