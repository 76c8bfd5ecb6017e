package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fhur/regie/expr"
)

func TestDefinitionBuildLiteral(t *testing.T) {
	def := Definition{Kind: "lit", Value: "hello"}
	e, err := def.Build()
	require.NoError(t, err)
	assert.Equal(t, expr.Lit("hello"), e)
}

func TestDefinitionBuildNestedCat(t *testing.T) {
	def := Definition{
		Kind: "cat",
		Children: []Definition{
			{Kind: "lit", Value: "0"},
			{Kind: "plus", Children: []Definition{{Kind: "lit", Value: "1"}}},
			{Kind: "lit", Value: "0"},
		},
	}
	e, err := def.Build()
	require.NoError(t, err)

	want := expr.Cat(expr.Lit("0"), expr.Plus(expr.Lit("1")), expr.Lit("0"))
	assert.Equal(t, want, e)
}

func TestDefinitionBuildRejectsUnknownKind(t *testing.T) {
	def := Definition{Kind: "bogus"}
	_, err := def.Build()
	require.Error(t, err)
}

func TestDefinitionBuildRejectsEmptyCat(t *testing.T) {
	def := Definition{Kind: "cat"}
	_, err := def.Build()
	require.Error(t, err)
}

func TestDefinitionBuildRejectsStarWithoutChild(t *testing.T) {
	def := Definition{Kind: "star"}
	_, err := def.Build()
	require.Error(t, err)
}

func TestLibraryBuildLooksUpByName(t *testing.T) {
	lib := Library{
		Patterns: map[string]Definition{
			"greeting": {
				Kind: "cat",
				Children: []Definition{
					{Kind: "lit", Value: "hi"},
				},
			},
		},
	}
	e, err := lib.Build("greeting")
	require.NoError(t, err)
	assert.Equal(t, expr.Lit("hi"), e)
}

func TestLibraryBuildRejectsUnknownName(t *testing.T) {
	lib := Library{Patterns: map[string]Definition{}}
	_, err := lib.Build("nope")
	require.Error(t, err)
}

func TestLibraryValidateReportsFirstFailure(t *testing.T) {
	lib := Library{
		Patterns: map[string]Definition{
			"broken": {Kind: "star"},
		},
	}
	err := lib.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestUnmarshalDefaultLibrary(t *testing.T) {
	lib, err := unmarshalLibrary(defaultLibraryYaml)
	require.NoError(t, err)
	require.NoError(t, lib.Validate())

	_, ok := lib.Patterns["greeting"]
	assert.True(t, ok)
}

func TestLoadOrCreateWritesDefaultWhenMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "patterns.yaml")

	lib, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Contains(t, lib.Patterns, "greeting")

	// Loading again now reads the file we just wrote.
	lib2, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, lib, lib2)
}
