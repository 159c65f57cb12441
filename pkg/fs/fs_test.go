//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Exists(t *testing.T) {
	fs := NewFS()
	path := filepath.Join(t.TempDir(), "config.yaml")

	exists, err := fs.Exists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(path, []byte("owner: octo\n"), 0o600))

	exists, err = fs.Exists(path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFS_WriteFileAtomic(t *testing.T) {
	fs := NewFS()
	path := filepath.Join(t.TempDir(), "nested", ".gig", "config.yaml")

	require.NoError(t, fs.WriteFileAtomic(path, []byte("first"), 0o600))
	require.NoError(t, fs.WriteFileAtomic(path, []byte("second"), 0o600))

	content, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// No temporary file is left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFS_Remove(t *testing.T) {
	fs := NewFS()
	path := filepath.Join(t.TempDir(), "batch.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o600))

	require.NoError(t, fs.Remove(path))
	require.NoError(t, fs.Remove(path))

	exists, err := fs.Exists(path)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFS_ExpandPath(t *testing.T) {
	fs := NewFS()
	home, err := fs.GetHomeDir()
	require.NoError(t, err)

	tests := []struct {
		path     string
		expected string
	}{
		{"~/.gig/config.yaml", filepath.Join(home, ".gig", "config.yaml")},
		{"~", home},
		{"/etc/gig.yaml", "/etc/gig.yaml"},
		{"relative/batch.json", "relative/batch.json"},
		{"~other/file", "~other/file"},
	}

	for _, tt := range tests {
		expanded, err := fs.ExpandPath(tt.path)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, expanded)
	}
}

func TestFS_FileLock(t *testing.T) {
	fs := NewFS()
	path := filepath.Join(t.TempDir(), "config.yaml")

	unlock, err := fs.FileLock(path)
	require.NoError(t, err)

	exists, err := fs.Exists(path + ".lock")
	require.NoError(t, err)
	assert.True(t, exists)

	unlock()

	exists, err = fs.Exists(path + ".lock")
	require.NoError(t, err)
	assert.False(t, exists)
}
