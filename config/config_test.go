/*
File    : runac/config/config_test.go
Package : config
*/

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	opts, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 2048, opts.FrameSize)
	assert.True(t, opts.EmitImportComments)
	assert.False(t, opts.LegacyOffsets)
}

func TestLoadOverridesOnlySetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runac.yaml")
	require.NoError(t, os.WriteFile(path, []byte("frame_size: 4096\nlegacy_offsets: true\n"), 0o644))

	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4096, opts.FrameSize)
	assert.True(t, opts.LegacyOffsets)
	assert.True(t, opts.EmitImportComments) // not set in the file, stays at Defaults()
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runac.yaml")
	require.NoError(t, os.WriteFile(path, []byte("frame_size: [not, an, int]\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
