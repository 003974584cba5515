/*
File    : runac/codegen/statements.go
Package : codegen
*/

package codegen

import (
	"fmt"
	"strings"

	"github.com/runalang/runac/parser"
)

// genStmt lowers one Statement into its assembly text.
func (g *Generator) genStmt(stmt parser.Statement) string {
	switch s := stmt.(type) {
	case *parser.Let:
		return g.genLet(s)
	case *parser.Set:
		return g.genSet(s)
	case *parser.Return:
		return g.genReturn(s)
	case *parser.If:
		return g.genIf(s)
	case *parser.While:
		return g.genWhile(s)
	case *parser.Break:
		return g.genBreak()
	case *parser.Continue:
		return g.genContinue()
	case *parser.Print:
		return g.genPrint(s)
	case *parser.Match:
		return g.genMatch(s)
	case *parser.ExpressionStmt:
		return g.genExpr(s.Expr)
	case *parser.InlineAssembly:
		return g.genInlineAssembly(s)
	default:
		g.errorf("[CODEGEN ERROR] unhandled statement %T", stmt)
		return ""
	}
}

// genLet implements §4.3's Let/type-inference rules plus the §4.4
// zero-initialization path for `Let v be <TypeName>`.
func (g *Generator) genLet(s *parser.Let) string {
	if tn, ok := s.Expr.(*parser.TypeName); ok {
		size := g.table.SizeOf(tn.Name)
		base := g.fc.allocLocal(s.Name, tn.Name, size)
		var out strings.Builder
		for off := 0; off < size; off += wordSize {
			fmt.Fprintf(&out, "\tmovq $0, %d(%%rbp)\n", base+off)
		}
		return out.String()
	}

	typeName := g.inferLetType(s.Expr)
	isArray := g.table.IsArray(typeName)
	base := g.fc.allocLocal(s.Name, typeName, wordSize)
	if isArray {
		lv := g.fc.locals[s.Name]
		lv.isArray = true
		g.fc.locals[s.Name] = lv
	}

	var out strings.Builder
	out.WriteString(g.genExpr(s.Expr))
	fmt.Fprintf(&out, "\tmovq %%rax, %d(%%rbp)\n", base)
	return out.String()
}

// genSet implements §4.4's Set lowering.
func (g *Generator) genSet(s *parser.Set) string {
	var out strings.Builder
	out.WriteString(g.genExpr(s.Expr))
	out.WriteString("\tpushq %rax\n")
	out.WriteString(g.genLvalue(s.Target))
	out.WriteString("\tpopq %rax\n")
	out.WriteString("\tmovq %rax, (%rbx)\n")
	return out.String()
}

// genReturn implements §4.4's epilogue.
func (g *Generator) genReturn(s *parser.Return) string {
	var out strings.Builder
	if s.Expr != nil {
		out.WriteString(g.genExpr(s.Expr))
	}
	out.WriteString("\tmovq %rbp, %rsp\n\tpopq %rbp\n\tret\n")
	return out.String()
}

// genIf implements §4.4's If lowering: fresh else/end label pair.
func (g *Generator) genIf(s *parser.If) string {
	k := g.nextLabel()
	elseL := fmt.Sprintf(".L%d_else", k)
	endL := fmt.Sprintf(".L%d", k)

	var out strings.Builder
	out.WriteString(g.genExpr(s.Condition))
	fmt.Fprintf(&out, "\ttestq %%rax, %%rax\n\tjz %s\n", elseL)
	for _, st := range s.Then {
		out.WriteString(g.genStmt(st))
	}
	fmt.Fprintf(&out, "\tjmp %s\n%s:\n", endL, elseL)
	for _, st := range s.Else {
		out.WriteString(g.genStmt(st))
	}
	fmt.Fprintf(&out, "%s:\n", endL)
	return out.String()
}

// genWhile implements §4.4's While lowering, pushing a loopLabels frame for
// Break/Continue to resolve against.
func (g *Generator) genWhile(s *parser.While) string {
	k := g.nextLabel()
	loopL := fmt.Sprintf(".L%d_loop", k)
	endL := fmt.Sprintf(".L%d", k)
	g.fc.pushLoop(loopL, endL)
	defer g.fc.popLoop()

	var out strings.Builder
	fmt.Fprintf(&out, "%s:\n", loopL)
	out.WriteString(g.genExpr(s.Condition))
	fmt.Fprintf(&out, "\ttestq %%rax, %%rax\n\tjz %s\n", endL)
	for _, st := range s.Body {
		out.WriteString(g.genStmt(st))
	}
	fmt.Fprintf(&out, "\tjmp %s\n%s:\n", loopL, endL)
	return out.String()
}

func (g *Generator) genBreak() string {
	loop, ok := g.fc.currentLoop()
	if !ok {
		g.errorf("[CODEGEN ERROR] Break outside a loop")
		return ""
	}
	return fmt.Sprintf("\tjmp %s\n", loop.endL)
}

func (g *Generator) genContinue() string {
	loop, ok := g.fc.currentLoop()
	if !ok {
		g.errorf("[CODEGEN ERROR] Continue outside a loop")
		return ""
	}
	return fmt.Sprintf("\tjmp %s\n", loop.loopL)
}

// genPrint implements §4.4's Print dispatch: string-typed expressions
// (literals, string-returning builtins, String-typed variables) go to
// print_string; everything else goes to print_integer.
func (g *Generator) genPrint(s *parser.Print) string {
	var out strings.Builder
	out.WriteString(g.genExpr(s.Expr))
	out.WriteString("\tmovq %rax, %rdi\n")
	if g.isStringTyped(s.Expr) {
		out.WriteString("\tcall print_string\n")
	} else {
		out.WriteString("\tcall print_integer\n")
	}
	return out.String()
}

func (g *Generator) isStringTyped(expr parser.Expression) bool {
	if _, ok := expr.(*parser.StringLiteral); ok {
		return true
	}
	return g.staticTypeOf(expr) == "String"
}

// genMatch implements §4.4's Match lowering: the scrutinee pointer is kept
// on the stack across every case test (popped and re-pushed so each
// comparison starts from a clean %rax), tested by tag, and — on a match —
// its bound fields are copied into fresh stack slots that are added to the
// variable table for the case body and never reclaimed afterward (§4.4:
// "offset never regresses").
func (g *Generator) genMatch(s *parser.Match) string {
	k := g.nextLabel()
	endL := fmt.Sprintf(".match_end_%d", k)

	var out strings.Builder
	out.WriteString(g.genExpr(s.Expr))
	out.WriteString("\tpushq %rax\n")

	for i, c := range s.Cases {
		caseL := fmt.Sprintf(".match_case_%d_%d", k, i)
		nextL := fmt.Sprintf(".match_case_%d_%d", k, i+1)
		if i == len(s.Cases)-1 {
			nextL = endL
		}

		out.WriteString("\tpopq %rax\n\tpushq %rax\n")
		out.WriteString("\tmovq (%rax), %rdx\n")
		tag := g.variantTag(s.Expr, c.VariantName)
		fmt.Fprintf(&out, "\tcmpq $%d, %%rdx\n\tjne %s\n%s:\n", tag, nextL, caseL)

		var bound []string
		for _, bf := range c.BoundFields {
			fieldOffset := g.variantFieldOffset(s.Expr, c.VariantName, bf.Name)
			bindName := bf.Value.(*parser.Variable).Name
			base := g.fc.allocLocal(bindName, "Integer", wordSize)
			out.WriteString("\tpopq %rax\n\tpushq %rax\n")
			fmt.Fprintf(&out, "\tmovq %d(%%rax), %%rcx\n", fieldOffset)
			fmt.Fprintf(&out, "\tmovq %%rcx, %d(%%rbp)\n", base)
			bound = append(bound, bindName)
		}

		for _, st := range c.Body {
			out.WriteString(g.genStmt(st))
		}
		fmt.Fprintf(&out, "\tjmp %s\n", endL)

		for _, name := range bound {
			delete(g.fc.locals, name)
		}
	}

	fmt.Fprintf(&out, "%s:\n\tpopq %%rax\n", endL)
	return out.String()
}

// variantTag and variantFieldOffset resolve a case name to its tag / a
// bound field's offset, trying the scrutinee's static type first and
// falling back to a scan of every variant type (§3.4 invariant: case names
// are unique across the whole program, enforced at types.NewTable).
func (g *Generator) variantTag(scrutinee parser.Expression, caseName string) int {
	typeName := g.staticTypeOf(scrutinee)
	if v, ok := g.table.Variants[typeName]; ok {
		if vc, ok := v.CaseByName(caseName); ok {
			return vc.Tag
		}
	}
	for _, v := range g.table.Variants {
		if vc, ok := v.CaseByName(caseName); ok {
			return vc.Tag
		}
	}
	g.errorf("[CODEGEN ERROR] unknown variant case %q", caseName)
	return -1
}

func (g *Generator) variantFieldOffset(scrutinee parser.Expression, caseName, field string) int {
	typeName := g.staticTypeOf(scrutinee)
	if v, ok := g.table.Variants[typeName]; ok {
		if vc, ok := v.CaseByName(caseName); ok {
			for _, f := range vc.Fields {
				if f.Name == field {
					return f.Offset
				}
			}
		}
	}
	for _, v := range g.table.Variants {
		if vc, ok := v.CaseByName(caseName); ok {
			for _, f := range vc.Fields {
				if f.Name == field {
					return f.Offset
				}
			}
		}
	}
	g.errorf("[CODEGEN ERROR] unknown field %q on variant case %q", field, caseName)
	return 0
}

// genInlineAssembly implements §4.4's Inline Assembly emission: each raw
// instruction line is emitted unchanged except for escape expansion; Notes
// and constraint lists are documentary only and never emitted.
func (g *Generator) genInlineAssembly(s *parser.InlineAssembly) string {
	var out strings.Builder
	for _, line := range s.Lines {
		text := strings.ReplaceAll(line.Instruction, "\\n", "")
		text = strings.ReplaceAll(text, "\\t", "\t")
		text = strings.ReplaceAll(text, "\\\\", "\\")
		fmt.Fprintf(&out, "\t%s\n", text)
	}
	return out.String()
}
