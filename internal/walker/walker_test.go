package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWalkResolvesLanguageAndSortsBySizeDescending(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "small.go"), "package main\n")
	writeFile(t, filepath.Join(root, "big.go"), "package main\n"+string(make([]byte, 500)))

	entries, _, err := Walk(root, DefaultExtractionOptions())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "big.go", filepath.Base(entries[0].Path))
	assert.Equal(t, "go", entries[0].Language.Name)
}

func TestWalkSkipsExcludedDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "node_modules", "lib.go"), "package lib\n")
	writeFile(t, filepath.Join(root, "main.go"), "package main\n")

	entries, _, err := Walk(root, DefaultExtractionOptions())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "main.go", filepath.Base(entries[0].Path))
}

func TestWalkHonorsGitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".gitignore"), "ignored.go\n")
	writeFile(t, filepath.Join(root, "ignored.go"), "package x\n")
	writeFile(t, filepath.Join(root, "kept.go"), "package x\n")

	entries, _, err := Walk(root, DefaultExtractionOptions())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept.go", filepath.Base(entries[0].Path))
}

func TestWalkReportsOversizedFileAsWarningNotError(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "huge.go"), "package x\n"+string(make([]byte, 100)))

	opts := DefaultExtractionOptions()
	opts.MaxFileSizeBytes = 10

	entries, warnings, err := Walk(root, opts)
	require.NoError(t, err)
	assert.Empty(t, entries)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Reason, "max_file_size_bytes")
}

func TestWalkDropsUnresolvableExtensions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "data.xyz"), "whatever\n")

	entries, _, err := Walk(root, DefaultExtractionOptions())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
