package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromReaderSkipsBlankAndCommentLines(t *testing.T) {
	input := "foo\n\n# a comment\nbar\n   \nbaz\n"
	words, err := FromReader(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar", "baz"}, words)
}

func TestFromReaderTrimsWhitespace(t *testing.T) {
	words, err := FromReader(strings.NewReader("  foo  \n\tbar\t\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar"}, words)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\n"), 0644))

	words, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, words)
}

func TestToExprBuildsAlternation(t *testing.T) {
	e, err := ToExpr([]string{"foo", "bar"})
	require.NoError(t, err)
	assert.NotNil(t, e)
}

func TestToExprRejectsEmptyList(t *testing.T) {
	_, err := ToExpr(nil)
	require.Error(t, err)
}

func TestCacheDerivedWritesAtomically(t *testing.T) {
	dir := t.TempDir()
	cachePath := filepath.Join(dir, "cache.txt")

	require.NoError(t, CacheDerived(cachePath, []string{"alpha", "beta"}))

	words, err := FromFile(cachePath)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, words)
}
