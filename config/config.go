/*
File    : runac/config/config.go
Package : config
*/

// Package config loads the compiler's one optional configuration surface:
// a YAML file carrying non-functional code generation knobs. Nothing in
// it changes what a program means — only how the generator's text comes
// out (frame size, import comments, the legacy field-offset heuristic).
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/runalang/runac/codegen"
)

// File is the on-disk shape of runac.yaml. Every field is a pointer so a
// missing key in the file leaves the corresponding codegen.Options field
// at its Defaults() value instead of being zeroed.
type File struct {
	FrameSize          *int  `yaml:"frame_size"`
	EmitImportComments *bool `yaml:"emit_import_comments"`
	LegacyOffsets      *bool `yaml:"legacy_offsets"`
}

// Load reads and parses path, applying any set fields on top of
// codegen.Defaults(). A missing file is not an error — the caller gets
// Defaults() back unchanged, since a YAML config is always optional.
func Load(path string) (codegen.Options, error) {
	opts := codegen.Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return opts, err
	}

	if f.FrameSize != nil {
		opts.FrameSize = *f.FrameSize
	}
	if f.EmitImportComments != nil {
		opts.EmitImportComments = *f.EmitImportComments
	}
	if f.LegacyOffsets != nil {
		opts.LegacyOffsets = *f.LegacyOffsets
	}
	return opts, nil
}
