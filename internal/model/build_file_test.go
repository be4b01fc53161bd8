package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFile_WriteLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.yaml")
	b := fingerprintBuild()

	require.NoError(t, WriteBuildFile(path, b))
	got, err := LoadBuildFile(path)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestLoadBuildFile_DefaultsNameToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unnamed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stats:\n  attack: 1\n"), 0o644))

	got, err := LoadBuildFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, got.Name)
	assert.Equal(t, 1.0, got.Stats[StatAttack])
}

func TestLoadBuildFile_Missing(t *testing.T) {
	_, err := LoadBuildFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
