/*
File    : runac/codegen/types_infer.go
Package : codegen
*/

package codegen

import (
	"github.com/runalang/runac/abi"
	"github.com/runalang/runac/parser"
	"github.com/runalang/runac/types"
)

// inferLetType implements §4.3's local type inference table for `Let v be
// <expr>`, extended in two places the bullet list leaves silent but that
// Print's dispatch rule (§4.4) requires to be coherent: a literal string
// infers String (so `Let s be "x"` then `Print s` print_string-dispatches
// correctly), and a bare Variable propagates the referenced variable's
// already-known type instead of collapsing to Integer.
func (g *Generator) inferLetType(expr parser.Expression) string {
	switch e := expr.(type) {
	case *parser.TypeName:
		return e.Name
	case *parser.StringLiteral:
		return "String"
	case *parser.BuiltinCall:
		if b, ok := abi.Lookup(e.Name); ok {
			return string(b.Returns)
		}
		return "Integer"
	case *parser.Variable:
		if lv, ok := g.fc.lookup(e.Name); ok {
			return lv.typeName
		}
		if t := g.staticTypeOf(e); t != "" {
			return t
		}
		return "Integer"
	case *parser.VariantConstructor:
		return e.TypeName
	case *parser.FieldAccess, *parser.ArrayIndex:
		if t := g.staticTypeOf(e); t != "" {
			return t
		}
		return "Integer"
	default:
		return "Integer"
	}
}

// staticTypeOf best-effort resolves the declared type name of an
// expression, used by FieldAccess (to find which struct's field-offset
// table to consult) and by inferLetType. Returns "" when nothing is known,
// which callers treat as "fall back to Integer" or, for FieldAccess
// lowering, "fall back to the legacy heuristic table if enabled".
func (g *Generator) staticTypeOf(expr parser.Expression) string {
	switch e := expr.(type) {
	case *parser.Integer:
		return "Integer"
	case *parser.StringLiteral:
		return "String"
	case *parser.Variable:
		if lv, ok := g.fc.lookup(e.Name); ok {
			return lv.typeName
		}
		if gv, ok := g.globals[e.Name]; ok {
			if gv.Type == "" {
				switch gv.Init.(type) {
				case *parser.Integer, *parser.StringLiteral:
					return g.staticTypeOf(gv.Init)
				}
			}
			return gv.Type
		}
		return ""
	case *parser.VariantConstructor:
		return e.TypeName
	case *parser.FunctionCall:
		if fn, ok := g.functions[e.Name]; ok {
			return fn.ReturnType
		}
		return ""
	case *parser.BuiltinCall:
		if b, ok := abi.Lookup(e.Name); ok {
			return string(b.Returns)
		}
		return ""
	case *parser.FieldAccess:
		objType := g.staticTypeOf(e.Object)
		if s, ok := g.table.Structs[objType]; ok {
			if t, _, _, ok := structFieldType(s, e.Field); ok {
				return t
			}
		}
		return ""
	case *parser.ArrayIndex:
		if arrType := g.staticTypeOf(e.Array); arrType != "" {
			if a, ok := g.table.Arrays[arrType]; ok {
				return a.ElementType
			}
		}
		if v, ok := e.Array.(*parser.Variable); ok {
			if lv, ok := g.fc.lookup(v.Name); ok {
				if a, ok := g.table.Arrays[lv.typeName]; ok {
					return a.ElementType
				}
			}
		}
		return ""
	default:
		return ""
	}
}

// structFieldType looks up a field's declared type name, offset, and size
// on a laid-out struct.
func structFieldType(s *types.Struct, field string) (typeName string, offset, size int, ok bool) {
	for _, f := range s.Fields {
		if f.Name == field {
			return f.Type, f.Offset, f.Size, true
		}
	}
	return "", 0, 0, false
}
