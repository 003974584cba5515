/*
File    : runac/types/table.go
Package : types
*/

// Package types computes the struct/variant/array/function layout that
// the generator needs: field offsets, variant tags, and total sizes, per
// the no-padding rules in §3.4. It is built once from a parsed Program
// and consulted read-only from then on, the way go-mix's objects package
// holds a struct's resolved shape after parsing.
package types

import (
	"fmt"

	"github.com/runalang/runac/parser"
)

// wordSize is the size in bytes of every scalar slot the generator uses:
// integers, pointers, and string handles are all one 64-bit machine word
// (§3.4: "fields are all 8 bytes in practice").
const wordSize = 8

// Struct holds a struct type's laid-out fields and total size.
type Struct struct {
	Name   string
	Fields []parser.StructField // Offset/Size now populated
	Size   int
}

// FieldOffset returns the byte offset and size of a field, or ok=false if
// the struct has no such field.
func (s *Struct) FieldOffset(name string) (offset, size int, ok bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Offset, f.Size, true
		}
	}
	return 0, 0, false
}

// Variant holds a variant type's tagged alternatives and total size.
type Variant struct {
	Name  string
	Cases []parser.VariantCase // Fields' Offset/Size now populated, Tag as declared
	Size  int
}

// CaseByName looks up one alternative by name.
func (v *Variant) CaseByName(name string) (parser.VariantCase, bool) {
	for _, c := range v.Cases {
		if c.Name == name {
			return c, true
		}
	}
	return parser.VariantCase{}, false
}

// Array holds a fixed-size array type.
type Array struct {
	Name        string
	ElementType string
	ElementSize int
	Count       int
	Size        int
}

// Table is the resolved set of every TypeDefinition in a Program, keyed by
// name, plus a reverse index (which type owns which variant case) that
// NewTable uses to reject a case name declared by two variant types.
type Table struct {
	Structs  map[string]*Struct
	Variants map[string]*Variant
	Arrays   map[string]*Array

	// VariantOwner maps a variant case name to its type's name.
	VariantOwner map[string]string
}

// NewTable builds a Table from every TypeDefinition in defs, computing
// offsets and sizes per §3.4's no-padding layout rules. Every field is one
// word (scalar, pointer, or struct-by-reference — the generator never
// embeds one struct inside another by value), so a field that references
// a type declared later in defs needs no lookup, and each definition is
// laid out in a single pass.
func NewTable(defs []*parser.TypeDefinition) (*Table, error) {
	t := &Table{
		Structs:      make(map[string]*Struct),
		Variants:     make(map[string]*Variant),
		Arrays:       make(map[string]*Array),
		VariantOwner: make(map[string]string),
	}

	for _, def := range defs {
		switch def.Kind {
		case parser.KindStruct:
			t.Structs[def.Name] = layoutStruct(def)
		case parser.KindVariant:
			variant := layoutVariant(def)
			t.Variants[def.Name] = variant
			for _, c := range variant.Cases {
				if owner, exists := t.VariantOwner[c.Name]; exists && owner != def.Name {
					return nil, fmt.Errorf("[CODEGEN ERROR] variant case %q declared by both %q and %q", c.Name, owner, def.Name)
				}
				t.VariantOwner[c.Name] = def.Name
			}
		case parser.KindArray:
			t.Arrays[def.Name] = layoutArray(def)
		case parser.KindFunction:
			// Function type definitions carry parameter/return type names
			// only; they have no runtime layout of their own (a function
			// value is always just a code address).
		}
	}

	return t, nil
}

// layoutStruct assigns each field its offset as the cumulative sum of
// preceding field sizes, with no padding (§3.4).
func layoutStruct(def *parser.TypeDefinition) *Struct {
	fields := make([]parser.StructField, len(def.StructFields))
	offset := 0
	for i, f := range def.StructFields {
		f.Offset = offset
		f.Size = wordSize
		fields[i] = f
		offset += f.Size
	}
	return &Struct{Name: def.Name, Fields: fields, Size: offset}
}

// layoutVariant lays out each case as an 8-byte tag at offset 0 followed
// by fields at offsets 8, 16, 24, …. Total size is the max over cases of
// (8 + sum of field sizes), minimum 8 (§3.4).
func layoutVariant(def *parser.TypeDefinition) *Variant {
	cases := make([]parser.VariantCase, len(def.Variants))
	maxSize := wordSize

	for i, c := range def.Variants {
		fields := make([]parser.StructField, len(c.Fields))
		offset := wordSize
		for j, f := range c.Fields {
			f.Offset = offset
			f.Size = wordSize
			fields[j] = f
			offset += f.Size
		}
		cases[i] = parser.VariantCase{Name: c.Name, Tag: c.Tag, Fields: fields}
		if offset > maxSize {
			maxSize = offset
		}
	}

	return &Variant{Name: def.Name, Cases: cases, Size: maxSize}
}

// layoutArray computes total size as element_size * count. Element size
// is always one machine word: the array holds scalars, pointers, or
// struct references, never inline structs.
func layoutArray(def *parser.TypeDefinition) *Array {
	return &Array{
		Name:        def.Name,
		ElementType: def.ArrayElem,
		ElementSize: wordSize,
		Count:       def.ArrayCount,
		Size:        wordSize * def.ArrayCount,
	}
}

// SizeOf returns the size in bytes of a named type, falling back to one
// machine word for Integer/String/Character and any unknown name — every
// scalar the generator handles directly is a single 64-bit slot.
func (t *Table) SizeOf(name string) int {
	if s, ok := t.Structs[name]; ok {
		return s.Size
	}
	if v, ok := t.Variants[name]; ok {
		return v.Size
	}
	if a, ok := t.Arrays[name]; ok {
		return a.Size
	}
	return wordSize
}

// IsArray reports whether name is a declared array type — the generator
// needs this to decide whether a Variable lowers to a load or a decayed
// base-address leaq (§4.4).
func (t *Table) IsArray(name string) bool {
	_, ok := t.Arrays[name]
	return ok
}
