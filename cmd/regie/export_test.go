package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fhur/regie"
	"github.com/fhur/regie/expr"
)

func TestDotGraphContainsExpectedStructure(t *testing.T) {
	dfa, err := regie.Compile(expr.Lit("ab"))
	require.NoError(t, err)

	dot := dotGraph("ab", dfa)

	assert.True(t, strings.HasPrefix(dot, `digraph "ab" {`))
	assert.Contains(t, dot, "start [shape=point];")
	assert.Contains(t, dot, "doublecircle")
	assert.Contains(t, dot, `label="a"`)
	assert.Contains(t, dot, `label="b"`)
}
