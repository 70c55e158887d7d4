package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverDirectoryWalk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "conf.d"), 0755))
	writeConfig(t, dir, "config.py", "")
	writeConfig(t, filepath.Join(dir, "conf.d"), "extra.py", "")
	writeConfig(t, dir, "notes.txt", "")

	paths, err := Discover([]string{dir})
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "conf.d", "extra.py"), paths[0])
	assert.Equal(t, filepath.Join(dir, "config.py"), paths[1])
}

func TestDiscoverExplicitFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "config.py", "")

	paths, err := Discover([]string{cfg})
	require.NoError(t, err)
	assert.Equal(t, []string{cfg}, paths)
}

func TestDiscoverDeduplicates(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "config.py", "")

	paths, err := Discover([]string{cfg, cfg, dir})
	require.NoError(t, err)
	assert.Equal(t, []string{cfg}, paths)
}

func TestDiscoverIgnoresNonPythonFile(t *testing.T) {
	dir := t.TempDir()
	txt := writeConfig(t, dir, "notes.txt", "")

	_, err := Discover([]string{txt})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestDiscoverNothingFound(t *testing.T) {
	_, err := Discover([]string{filepath.Join(t.TempDir(), "missing.py")})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.NotEmpty(t, notFound.Searched)
}

func TestDiscoverIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "b.py", "")
	writeConfig(t, dir, "a.py", "")
	writeConfig(t, dir, "c.py", "")

	first, err := Discover([]string{dir})
	require.NoError(t, err)
	second, err := Discover([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
