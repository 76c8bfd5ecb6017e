package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fhur/regie/catalog"
)

func testLibrary() catalog.Library {
	return catalog.Library{
		Patterns: map[string]catalog.Definition{
			"greeting": {
				Kind: "cat",
				Children: []catalog.Definition{
					{Kind: "lit", Value: "hello"},
					{Kind: "lit", Value: "world"},
				},
			},
		},
	}
}

func TestReplLoopMatch(t *testing.T) {
	in := strings.NewReader("match greeting helloworld\nquit\n")
	var out bytes.Buffer

	err := replLoop(in, &out, testLibrary())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "true")
}

func TestReplLoopUnknownCommand(t *testing.T) {
	in := strings.NewReader("bogus\nquit\n")
	var out bytes.Buffer

	err := replLoop(in, &out, testLibrary())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "unrecognized command")
}

func TestReplLoopList(t *testing.T) {
	in := strings.NewReader("list\nquit\n")
	var out bytes.Buffer

	err := replLoop(in, &out, testLibrary())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "greeting")
}
