package boolexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternIsStable(t *testing.T) {
	registry := NewRegistry()

	first := registry.Intern("a")
	second := registry.Intern("a")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, registry.Len())
}

func TestInternAssignsHandlesInFirstSeenOrder(t *testing.T) {
	registry := NewRegistry()

	assert.Equal(t, 0, registry.Intern("q"))
	assert.Equal(t, 1, registry.Intern("b"))
	assert.Equal(t, 2, registry.Intern("x"))
	assert.Equal(t, 0, registry.Intern("q"))
}

func TestNamesAreSortedAlphabetically(t *testing.T) {
	registry := NewRegistry()
	registry.Intern("c")
	registry.Intern("a")
	registry.Intern("b")

	assert.Equal(t, []string{"a", "b", "c"}, registry.Names())
}

func TestAllKeepsFirstSeenHandles(t *testing.T) {
	registry := NewRegistry()
	registry.Intern("c")
	registry.Intern("a")
	registry.Intern("b")

	assert.Equal(t, []Entry{
		{Name: "a", Handle: 1},
		{Name: "b", Handle: 2},
		{Name: "c", Handle: 0},
	}, registry.All())
}

func TestParsePopulatesRegistry(t *testing.T) {
	_, registry, err := Parse("b & (a | c)")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, registry.Names())
	assert.Equal(t, 3, registry.Len())
}

func TestRepeatedVariableIsInternedOnce(t *testing.T) {
	_, registry, err := Parse("a & a & a")
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, registry.Names())
}
