/*
File    : runac/codegen/lvalue.go
Package : codegen
*/

package codegen

import (
	"fmt"

	"github.com/runalang/runac/parser"
)

// objectAddress emits code leaving the address of a struct value in %rax,
// for FieldAccess reads and as the base step of FieldAccess lvalues.
//
// A struct-typed local introduced by `Let v be <TypeName>` is stack storage
// in place (§4.3), so its own address is the local's base offset (leaq). A
// struct-typed parameter, or anything else (a nested FieldAccess/ArrayIndex/
// FunctionCall/VariantConstructor result), already yields a pointer value
// when evaluated normally, so a plain genExpr gives the right address.
func (g *Generator) objectAddress(obj parser.Expression) string {
	if v, ok := obj.(*parser.Variable); ok {
		if lv, found := g.fc.lookup(v.Name); found && !lv.isParam {
			if _, isStruct := g.table.Structs[lv.typeName]; isStruct {
				return fmt.Sprintf("\tleaq %d(%%rbp), %%rax\n", lv.offset)
			}
		}
	}
	return g.genExpr(obj)
}

// arrayBaseInto emits code leaving an array's base address in the given
// register: a parameter's stack slot already holds the pointer the caller
// passed (a plain load), while a local array's storage is inline (leaq).
// Anything else is evaluated normally — it must already yield a pointer.
func (g *Generator) arrayBaseInto(arr parser.Expression, reg string) string {
	if v, ok := arr.(*parser.Variable); ok {
		if lv, found := g.fc.lookup(v.Name); found {
			if lv.isParam {
				return fmt.Sprintf("\tmovq %d(%%rbp), %s\n", lv.offset, reg)
			}
			return fmt.Sprintf("\tleaq %d(%%rbp), %s\n", lv.offset, reg)
		}
	}
	code := g.genExpr(arr)
	if reg != "%rax" {
		code += fmt.Sprintf("\tmovq %%rax, %s\n", reg)
	}
	return code
}

// genLvalue emits code leaving the address Set should write through in
// %rbx (§4.4 "Lvalue address generation").
func (g *Generator) genLvalue(target parser.Expression) string {
	switch t := target.(type) {
	case *parser.Variable:
		if lv, ok := g.fc.lookup(t.Name); ok {
			return fmt.Sprintf("\tleaq %d(%%rbp), %%rbx\n", lv.offset)
		}
		return fmt.Sprintf("\tleaq %s(%%rip), %%rbx\n", t.Name)

	case *parser.FieldAccess:
		code := g.objectAddress(t.Object)
		code += "\tmovq %rax, %rbx\n"
		offset, _ := g.fieldOffset(t.Object, t.Field)
		code += fmt.Sprintf("\taddq $%d, %%rbx\n", offset)
		return code

	case *parser.ArrayIndex:
		code := g.arrayBaseInto(t.Array, "%rbx")
		code += "\tpushq %rbx\n"
		code += g.genExpr(t.Index)
		code += "\tpopq %rbx\n"
		code += "\timulq $8, %rax\n"
		code += "\taddq %rax, %rbx\n"
		return code

	default:
		g.errorf("[CODEGEN ERROR] %s is not a valid assignment target", target.Literal())
		return fmt.Sprintf("\t# [CODEGEN ERROR] %s is not a valid assignment target\n", target.Literal())
	}
}

// fieldOffset resolves a FieldAccess's byte offset, consulting the struct
// table first and the legacy heuristic (if enabled) as a fallback.
func (g *Generator) fieldOffset(obj parser.Expression, field string) (int, bool) {
	if objType := g.staticTypeOf(obj); objType != "" {
		if s, ok := g.table.Structs[objType]; ok {
			if _, off, _, ok := structFieldType(s, field); ok {
				return off, true
			}
		}
	}
	if g.opts.LegacyOffsets {
		if off, ok := legacyFieldOffset(field); ok {
			return off, true
		}
	}
	g.errorf("[CODEGEN ERROR] cannot resolve field %q to an offset", field)
	return 0, false
}
