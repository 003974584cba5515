/*
File    : runac/codegen/expressions.go
Package : codegen
*/

package codegen

import (
	"fmt"
	"strings"

	"github.com/runalang/runac/abi"
	"github.com/runalang/runac/parser"
)

// genExpr lowers an Expression, leaving its value in %rax (§4.4 "Expression
// lowering (result always in %rax)").
func (g *Generator) genExpr(expr parser.Expression) string {
	switch e := expr.(type) {
	case *parser.Integer:
		return fmt.Sprintf("\tmovq $%d, %%rax\n", e.Value)

	case *parser.Variable:
		return g.genVariable(e)

	case *parser.StringLiteral:
		lbl := g.pool.intern(e.Value)
		return fmt.Sprintf("\tleaq %s(%%rip), %%rax\n", lbl)

	case *parser.Binary:
		return g.genBinary(e)

	case *parser.Comparison:
		return g.genComparison(e)

	case *parser.FunctionCall:
		return g.genFunctionCall(e)

	case *parser.BuiltinCall:
		return g.genBuiltinCall(e)

	case *parser.FieldAccess:
		return g.genFieldAccess(e)

	case *parser.ArrayIndex:
		return g.genArrayIndex(e)

	case *parser.TypeName:
		// Never emits on its own — only meaningful as the RHS of Let,
		// handled directly by genLet.
		return ""

	case *parser.VariantConstructor:
		return g.genVariantConstructor(e)

	default:
		g.errorf("[CODEGEN ERROR] unhandled expression %T", expr)
		return ""
	}
}

// genVariable implements the four-way Variable lowering in §4.4: local,
// global, array-typed local (decays to its base address), and bare
// function name (implicit function pointer).
func (g *Generator) genVariable(v *parser.Variable) string {
	if lv, ok := g.fc.lookup(v.Name); ok {
		if lv.isArray || g.table.IsArray(lv.typeName) {
			return fmt.Sprintf("\tleaq %d(%%rbp), %%rax\n", lv.offset)
		}
		return fmt.Sprintf("\tmovq %d(%%rbp), %%rax\n", lv.offset)
	}
	if _, ok := g.globals[v.Name]; ok {
		return fmt.Sprintf("\tmovq %s(%%rip), %%rax\n", v.Name)
	}
	if _, ok := g.functions[v.Name]; ok {
		return fmt.Sprintf("\tleaq %s(%%rip), %%rax\n", v.Name)
	}
	g.errorf("[CODEGEN ERROR] undefined name %q", v.Name)
	return "\tmovq $0, %rax\n"
}

var binaryMnemonic = map[parser.BinaryOp]string{
	parser.OpBitAnd: "andq",
	parser.OpBitOr:  "orq",
	parser.OpBitXor: "xorq",
}

// genBinary implements §4.4's Binary lowering: evaluate both sides via the
// stack (never a scratch register) so nested arithmetic never clobbers a
// sibling operand, then combine per operator.
func (g *Generator) genBinary(b *parser.Binary) string {
	var out strings.Builder
	out.WriteString(g.genExpr(b.Left))
	out.WriteString("\tpushq %rax\n")
	out.WriteString(g.genExpr(b.Right))
	out.WriteString("\tpopq %rbx\n") // %rax = right, %rbx = left

	switch b.Op {
	case parser.OpPlus:
		out.WriteString("\taddq %rbx, %rax\n")
	case parser.OpMul:
		out.WriteString("\timulq %rbx, %rax\n")
	case parser.OpBitAnd, parser.OpBitOr, parser.OpBitXor:
		fmt.Fprintf(&out, "\t%s %%rbx, %%rax\n", binaryMnemonic[b.Op])

	case parser.OpMinus:
		out.WriteString("\tsubq %rax, %rbx\n")
		out.WriteString("\tmovq %rbx, %rax\n")

	case parser.OpDiv:
		k := g.nextLabel()
		out.WriteString("\tmovq %rax, %rcx\n") // divisor
		out.WriteString("\tmovq %rbx, %rax\n") // dividend
		fmt.Fprintf(&out, "\ttestq %%rcx, %%rcx\n\tjz .Ldiv_by_zero_%d\n", k)
		out.WriteString("\tcqto\n\tidivq %rcx\n")
		fmt.Fprintf(&out, "\tjmp .Ldiv_done_%d\n.Ldiv_by_zero_%d:\n\tmovq $0, %%rax\n.Ldiv_done_%d:\n", k, k, k)

	case parser.OpMod:
		k := g.nextLabel()
		out.WriteString("\tmovq %rax, %rcx\n")
		out.WriteString("\tmovq %rbx, %rax\n")
		fmt.Fprintf(&out, "\ttestq %%rcx, %%rcx\n\tjz .Lmod_by_zero_%d\n", k)
		out.WriteString("\tcqto\n\tidivq %rcx\n\tmovq %rdx, %rax\n")
		fmt.Fprintf(&out, "\tjmp .Lmod_done_%d\n.Lmod_by_zero_%d:\n\tmovq $0, %%rax\n.Lmod_done_%d:\n", k, k, k)

	case parser.OpShl, parser.OpShr:
		out.WriteString("\tmovq %rax, %rcx\n") // shift count
		out.WriteString("\tmovq %rbx, %rax\n") // value
		if b.Op == parser.OpShl {
			out.WriteString("\tsalq %cl, %rax\n")
		} else {
			out.WriteString("\tsarq %cl, %rax\n")
		}

	default:
		g.errorf("[CODEGEN ERROR] unhandled binary operator %q", b.Op)
	}

	return out.String()
}

var compareSetcc = map[parser.CompareOp]string{
	parser.CmpEq: "sete",
	parser.CmpNe: "setne",
	parser.CmpLt: "setl",
	parser.CmpLe: "setle",
	parser.CmpGt: "setg",
	parser.CmpGe: "setge",
}

// genComparison implements §4.4's Comparison lowering, producing 0 or 1 in
// %rax.
func (g *Generator) genComparison(c *parser.Comparison) string {
	var out strings.Builder
	out.WriteString(g.genExpr(c.Left))
	out.WriteString("\tpushq %rax\n")
	out.WriteString(g.genExpr(c.Right))
	out.WriteString("\tpopq %rbx\n") // %rax = right, %rbx = left
	out.WriteString("\tcmpq %rax, %rbx\n")
	fmt.Fprintf(&out, "\t%s %%al\n", compareSetcc[c.Op])
	out.WriteString("\tmovzbq %al, %rax\n")
	return out.String()
}

// genCallSetup evaluates args left to right, pushing each result
// immediately (§4.4 FunctionCall / §8.1 property 10), then places the
// first six into argument registers. More than six is the §9 Open Question
// 5 overflow case: every value is staged through a scratch slice at the
// bottom of the frame (its last slot is the frame's lowest word, below any
// locals this function allocates) so the overflow values can be pushed
// back onto the stack, in caller-stack order, directly before the call.
func (g *Generator) genCallSetup(args []parser.Expression) string {
	var out strings.Builder
	for _, a := range args {
		out.WriteString(g.genExpr(a))
		out.WriteString("\tpushq %rax\n")
	}

	n := len(args)
	if n <= 6 {
		for i := n - 1; i >= 0; i-- {
			fmt.Fprintf(&out, "\tpopq %s\n", argRegs[i])
		}
		return out.String()
	}

	scratch := -g.opts.FrameSize + wordSize*(n-1)
	for i := n - 1; i >= 0; i-- {
		fmt.Fprintf(&out, "\tpopq %%rax\n\tmovq %%rax, %d(%%rbp)\n", scratch-wordSize*i)
	}
	for i := 0; i < 6; i++ {
		fmt.Fprintf(&out, "\tmovq %d(%%rbp), %s\n", scratch-wordSize*i, argRegs[i])
	}
	for i := n - 1; i >= 6; i-- {
		fmt.Fprintf(&out, "\tpushq %d(%%rbp)\n", scratch-wordSize*i)
	}
	return out.String()
}

// genFunctionCall implements §4.4's FunctionCall lowering: an indirect call
// through a local function-pointer variable, or a plain direct call to a
// user function.
func (g *Generator) genFunctionCall(call *parser.FunctionCall) string {
	if len(call.Args) > 6 {
		g.warnf("[CODEGEN WARNING] call to %q passes %d arguments; only 6 are register-passable", call.Name, len(call.Args))
	}

	var out strings.Builder
	out.WriteString(g.genCallSetup(call.Args))

	if lv, ok := g.fc.lookup(call.Name); ok {
		fmt.Fprintf(&out, "\tmovq %d(%%rbp), %%rax\n\tcall *%%rax\n", lv.offset)
		return out.String()
	}
	if _, ok := g.functions[call.Name]; !ok {
		g.errorf("[CODEGEN ERROR] call to undefined function %q", call.Name)
	}
	fmt.Fprintf(&out, "\tcall %s\n", call.Name)
	return out.String()
}

// genBuiltinCall implements §4.4's BuiltinCall lowering: arity-checked
// against the abi registry, dispatched to the registered C symbol with
// @PLT when the registry says so (every runtime/list builtin, per §4.4).
func (g *Generator) genBuiltinCall(call *parser.BuiltinCall) string {
	b, ok := abi.Lookup(call.Name)
	if !ok {
		g.errorf("[CODEGEN ERROR] call to unregistered builtin %q", call.Name)
		return "\tmovq $0, %rax\n"
	}
	if len(call.Args) != b.Arity {
		g.errorf("[CODEGEN ERROR] %q takes %d argument(s), got %d", call.Name, b.Arity, len(call.Args))
	}

	var out strings.Builder
	out.WriteString(g.genCallSetup(call.Args))
	suffix := ""
	if b.PLT {
		suffix = "@PLT"
	}
	fmt.Fprintf(&out, "\tcall %s%s\n", b.Symbol, suffix)
	return out.String()
}

// genFieldAccess implements §4.4's FieldAccess lowering: compute the
// object's address, then load the resolved field offset off it.
func (g *Generator) genFieldAccess(fa *parser.FieldAccess) string {
	var out strings.Builder
	out.WriteString(g.objectAddress(fa.Object))
	offset, _ := g.fieldOffset(fa.Object, fa.Field)
	fmt.Fprintf(&out, "\tmovq %d(%%rax), %%rax\n", offset)
	return out.String()
}

// genArrayIndex implements §4.4's ArrayIndex lowering. The base address is
// kept in %rbx (consistent with the left-operand convention used elsewhere
// in this lowering) while the index, evaluated second, is free to use %rax.
func (g *Generator) genArrayIndex(ai *parser.ArrayIndex) string {
	var out strings.Builder
	out.WriteString(g.arrayBaseInto(ai.Array, "%rbx"))
	out.WriteString("\tpushq %rbx\n")
	out.WriteString(g.genExpr(ai.Index))
	out.WriteString("\tpopq %rbx\n")
	out.WriteString("\timulq $8, %rax\n")
	out.WriteString("\taddq %rbx, %rax\n")
	out.WriteString("\tmovq (%rax), %rax\n")
	return out.String()
}

// genVariantConstructor implements §4.4's VariantConstructor lowering:
// allocate via the runtime's `allocate` builtin (the spec's prose names
// plain `malloc`; this toolchain has no bare libc call in its builtin
// surface, so `allocate`, the runtime's own heap-allocation entry point
// per §6.3, stands in for it), stamp the tag, then store each field in
// declaration order. The pointer is re-pushed between field stores because
// evaluating a field's value expression may itself call into the stack.
func (g *Generator) genVariantConstructor(vc *parser.VariantConstructor) string {
	variant, ok := g.table.Variants[vc.TypeName]
	if !ok {
		g.errorf("[CODEGEN ERROR] unknown variant type %q", vc.TypeName)
		return "\tmovq $0, %rax\n"
	}
	vcase, ok := variant.CaseByName(vc.VariantName)
	if !ok {
		g.errorf("[CODEGEN ERROR] %q has no case %q", vc.TypeName, vc.VariantName)
		return "\tmovq $0, %rax\n"
	}

	var out strings.Builder
	fmt.Fprintf(&out, "\tmovq $%d, %%rdi\n\tcall allocate@PLT\n", variant.Size)
	out.WriteString("\tpushq %rax\n")
	fmt.Fprintf(&out, "\tmovq $%d, (%%rax)\n", vcase.Tag)

	for _, fv := range vc.Fields {
		offset := 0
		for _, f := range vcase.Fields {
			if f.Name == fv.Name {
				offset = f.Offset
				break
			}
		}
		out.WriteString(g.genExpr(fv.Value))
		out.WriteString("\tmovq %rax, %rcx\n")
		out.WriteString("\tpopq %rax\n")
		fmt.Fprintf(&out, "\tmovq %%rcx, %d(%%rax)\n", offset)
		out.WriteString("\tpushq %rax\n")
	}
	out.WriteString("\tpopq %rax\n")
	return out.String()
}
