package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLines(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.py")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGetLineContextMiddle(t *testing.T) {
	path := writeLines(t, "one\ntwo\nthree\nfour\nfive\n")

	ctx := GetLineContext(path, 3)

	assert.Empty(t, ctx.ErrMsg)
	assert.Equal(t, []string{"one", "two"}, ctx.Before)
	assert.Equal(t, "three", ctx.Target)
	assert.Equal(t, []string{"four", "five"}, ctx.After)
	assert.Equal(t, 1, ctx.FromTop)
}

func TestGetLineContextEdges(t *testing.T) {
	path := writeLines(t, "one\ntwo\n")

	first := GetLineContext(path, 1)
	assert.Empty(t, first.Before)
	assert.Equal(t, "one", first.Target)
	assert.Equal(t, []string{"two"}, first.After)

	last := GetLineContext(path, 2)
	assert.Equal(t, []string{"one"}, last.Before)
	assert.Equal(t, "two", last.Target)
	assert.Empty(t, last.After)
}

func TestGetLineContextOutOfRange(t *testing.T) {
	path := writeLines(t, "one\n")

	ctx := GetLineContext(path, 9)
	assert.NotEmpty(t, ctx.ErrMsg)
}

func TestGetLineContextMissingFile(t *testing.T) {
	ctx := GetLineContext(filepath.Join(t.TempDir(), "nope.py"), 1)
	assert.NotEmpty(t, ctx.ErrMsg)
}

func TestLocationOrdering(t *testing.T) {
	a3 := Location{File: "/a.py", Line: 3}
	a9 := Location{File: "/a.py", Line: 9}
	b1 := Location{File: "/b.py", Line: 1}

	assert.True(t, a3.Before(a9))
	assert.True(t, a9.Before(b1))
	assert.False(t, b1.Before(a3))
	assert.False(t, a3.Before(a3))

	assert.Equal(t, "/a.py:3", a3.String())
}
