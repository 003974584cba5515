/*
File    : runac/codegen/options.go
Package : codegen
*/

package codegen

// Options carries the generator's non-functional knobs — everything a
// program's meaning doesn't depend on, but its emitted text does. The
// `config` package loads these from an optional YAML file; cmd/runac falls
// back to Defaults() when none is given.
type Options struct {
	// FrameSize is the number of bytes subtracted from %rsp in every
	// function prologue (§4.4's "generous pre-allocation"). Also used as
	// the scratch region for spilling more-than-six call arguments.
	FrameSize int

	// EmitImportComments controls whether a `# Imports:` comment block is
	// written at the top of the output for each Import in the program.
	EmitImportComments bool

	// LegacyOffsets enables the hardcoded field-name-to-offset heuristic
	// (§4.4, §9) for FieldAccess on a value whose struct type cannot be
	// determined statically. Off by default; a greenfield program should
	// never need it, but recompiling the archived self-hosted sources does.
	LegacyOffsets bool
}

// Defaults returns the generator's out-of-the-box configuration, matching
// the behavior spec.md describes when no configuration is supplied.
func Defaults() Options {
	return Options{
		FrameSize:          2048,
		EmitImportComments: true,
		LegacyOffsets:      false,
	}
}
