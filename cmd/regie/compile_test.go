package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunCompileSucceeds(t *testing.T) {
	path := writeTestLibrary(t)
	require.NoError(t, runCompile([]string{path, "greeting"}))
}

func TestRunCompileVerboseSucceeds(t *testing.T) {
	path := writeTestLibrary(t)
	require.NoError(t, runCompile([]string{"-v", path, "greeting"}))
}

func TestRunCompileRejectsUnknownPattern(t *testing.T) {
	path := writeTestLibrary(t)
	require.Error(t, runCompile([]string{path, "bogus"}))
}
