/*
File    : runac/codegen/legacy.go
Package : codegen
*/

package codegen

// legacyFieldOffsets is the bootstrap compiler's own hardcoded field
// heuristic (spec.md §4.4, §9; SPEC_FULL.md Supplemented Feature #4),
// reproduced field for field from the archived v0.0.7.3 codegen_x86.c
// table. It exists to recompile the self-hosted compiler's own sources,
// where pointer-to-struct values are typed as plain Integer and the
// generator has no declared struct to consult for an offset. Consulted
// only when Options.LegacyOffsets is set and the normal struct-lookup path
// in FieldAccess/Set finds nothing.
var legacyFieldOffsets = map[string]int{
	"type":         0,
	"value":        8,
	"line":         16,
	"column":       24,
	"source":       0,
	"position":     8,
	"current_char": 32,
}

func legacyFieldOffset(field string) (int, bool) {
	off, ok := legacyFieldOffsets[field]
	return off, ok
}
