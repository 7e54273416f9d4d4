package util

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTree = fstest.MapFS{
	"a.smk":        {Data: []byte("rule a:\n")},
	"nested/b.smk": {Data: []byte("rule b:\n")},
}

func TestCopyTree(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "rules")
	require.NoError(t, CopyTree(testTree, dst))

	data, err := os.ReadFile(filepath.Join(dst, "a.smk"))
	require.NoError(t, err)
	assert.Equal(t, "rule a:\n", string(data))
	data, err = os.ReadFile(filepath.Join(dst, "nested", "b.smk"))
	require.NoError(t, err)
	assert.Equal(t, "rule b:\n", string(data))
}

func TestCopyTreeExistingDestination(t *testing.T) {
	dst := t.TempDir()
	err := CopyTree(testTree, dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestWriteFileFromOverwrites(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "a.smk")
	require.NoError(t, os.WriteFile(dst, []byte("stale"), 0666))
	require.NoError(t, WriteFileFrom(testTree, "a.smk", dst))
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "rule a:\n", string(data))
}
