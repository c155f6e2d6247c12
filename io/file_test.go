package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "result.json")

	require.NoError(t, WriteFileAtomically(path, []byte("[1,3,6]")))
	require.NoError(t, WriteFileAtomically(path, []byte("[1,3,6,10]")))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[1,3,6,10]", string(body))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary file left")

	assert.Error(t, WriteFileAtomically(filepath.Join(dir, "missing", "result.json"), []byte("[]")))
}
