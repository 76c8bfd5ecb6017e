package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatDegeneratesWithSingleChild(t *testing.T) {
	lit := Lit("hello")
	assert.Equal(t, lit, Cat(lit))
}

func TestOrDegeneratesWithSingleChild(t *testing.T) {
	lit := Lit("hello")
	assert.Equal(t, lit, Or(lit))
}

func TestCatWithMultipleChildren(t *testing.T) {
	result := Cat(Lit("a"), Lit("b"), Lit("c"))
	op, ok := result.(Op)
	assert.True(t, ok)
	assert.Equal(t, Cat, op.Tag)
	assert.Len(t, op.Children, 3)
}

func TestStarKeepsExtraChildren(t *testing.T) {
	result := Star(Lit("a"), Lit("b"), Lit("c"))
	op, ok := result.(Op)
	assert.True(t, ok)
	assert.Equal(t, Star, op.Tag)
	assert.Len(t, op.Children, 3) // all children are retained on the node...
	// ...but the front end only lowers the first; see compile_test.go.
}

func TestTagString(t *testing.T) {
	testCases := []struct {
		tag      Tag
		expected string
	}{
		{Cat, "cat"},
		{Or, "or"},
		{Star, "star"},
		{Plus, "plus"},
		{Opt, "opt"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.tag.String())
	}
}

func TestIntLiteral(t *testing.T) {
	result := Int(123)
	lit, ok := result.(IntLiteral)
	assert.True(t, ok)
	assert.Equal(t, 123, lit.Value)
}
