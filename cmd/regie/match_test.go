package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestLibrary(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.yaml")
	yaml := "patterns:\n  greeting:\n    kind: lit\n    value: hello\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	return path
}

func TestRunMatchReturnsErrNoMatchOnFalse(t *testing.T) {
	path := writeTestLibrary(t)

	err := runMatch([]string{path, "greeting", "goodbye"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errNoMatch))
}

func TestRunMatchReturnsNilOnTrue(t *testing.T) {
	path := writeTestLibrary(t)

	err := runMatch([]string{path, "greeting", "hello"})
	assert.NoError(t, err)
}
