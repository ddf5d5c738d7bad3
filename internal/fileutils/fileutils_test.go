package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orders.csv")
	assert.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0o644))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "missing.csv")))
	assert.False(t, FileExists(dir))
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.csv")
	assert.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644))

	data, err := ReadFile(path)

	assert.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(data))
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}
