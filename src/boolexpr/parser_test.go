package boolexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrees(t *testing.T) {
	testCases := map[string]Expression{
		"a": &Literal{Name: "a"},
		"z": &Literal{Name: "z"},
		"T": &Constant{Value: true},
		"F": &Constant{Value: false},

		"~a": &Negation{Operand: &Literal{Name: "a"}},
		"~~a": &Negation{
			Operand: &Negation{Operand: &Literal{Name: "a"}},
		},

		"a&b": &Binary{
			Op:    And,
			Left:  &Literal{Name: "a"},
			Right: &Literal{Name: "b"},
		},
		"a|b": &Binary{
			Op:    Or,
			Left:  &Literal{Name: "a"},
			Right: &Literal{Name: "b"},
		},
		"a->b": &Binary{
			Op:    Implies,
			Left:  &Literal{Name: "a"},
			Right: &Literal{Name: "b"},
		},
		"a<->b": &Binary{
			Op:    Iff,
			Left:  &Literal{Name: "a"},
			Right: &Literal{Name: "b"},
		},

		// parentheses add no node of their own
		"(a)": &Literal{Name: "a"},
		"((a&b))": &Binary{
			Op:    And,
			Left:  &Literal{Name: "a"},
			Right: &Literal{Name: "b"},
		},

		// negation binds the rest of the span, so a binary rule wins
		// when one applies
		"~a&b": &Binary{
			Op:    And,
			Left:  &Negation{Operand: &Literal{Name: "a"}},
			Right: &Literal{Name: "b"},
		},
		"~(a|b)": &Negation{
			Operand: &Binary{
				Op:    Or,
				Left:  &Literal{Name: "a"},
				Right: &Literal{Name: "b"},
			},
		},

		// the paren rule fails on the outer span here and the
		// disjunction rule picks up the pieces
		"(a)|(b)": &Binary{
			Op:    Or,
			Left:  &Literal{Name: "a"},
			Right: &Literal{Name: "b"},
		},

		"a -> (b & ~c)": &Binary{
			Op:   Implies,
			Left: &Literal{Name: "a"},
			Right: &Binary{
				Op:    And,
				Left:  &Literal{Name: "b"},
				Right: &Negation{Operand: &Literal{Name: "c"}},
			},
		},
	}

	for formula, expected := range testCases {
		t.Run(formula, func(t *testing.T) {
			result, _, err := Parse(formula)
			require.NoError(t, err)

			assert.Equal(t, expected, result)
		})
	}
}

// Chained same-precedence operators group left-heavy because the
// rightmost split is tried first. This is load-bearing compatibility:
// the split search order is the only thing deciding these shapes.
func TestChainedOperatorGrouping(t *testing.T) {
	testCases := map[string]Expression{
		"a->b->c": &Binary{
			Op: Implies,
			Left: &Binary{
				Op:    Implies,
				Left:  &Literal{Name: "a"},
				Right: &Literal{Name: "b"},
			},
			Right: &Literal{Name: "c"},
		},
		"a&b&c": &Binary{
			Op: And,
			Left: &Binary{
				Op:    And,
				Left:  &Literal{Name: "a"},
				Right: &Literal{Name: "b"},
			},
			Right: &Literal{Name: "c"},
		},
		"a<->b<->c": &Binary{
			Op: Iff,
			Left: &Binary{
				Op:    Iff,
				Left:  &Literal{Name: "a"},
				Right: &Literal{Name: "b"},
			},
			Right: &Literal{Name: "c"},
		},
	}

	for formula, expected := range testCases {
		t.Run(formula, func(t *testing.T) {
			result, _, err := Parse(formula)
			require.NoError(t, err)

			assert.Equal(t, expected, result)
		})
	}
}

func TestParseFailures(t *testing.T) {
	malformed := []string{
		"",
		"   ",
		"a&",
		"&a",
		"(a",
		"a)",
		"()",
		"a~b",
		"a&&b",
		"ab",
		"A",
		"a<-b",
		"->",
		"a->",
		"(a&b))",
	}

	for _, formula := range malformed {
		t.Run(formula, func(t *testing.T) {
			result, registry, err := Parse(formula)

			assert.Nil(t, result)
			assert.Nil(t, registry)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestParseIsIdempotent(t *testing.T) {
	first, firstRegistry, err := Parse("a -> (b & ~c)")
	require.NoError(t, err)

	second, secondRegistry, err := Parse("a -> (b & ~c)")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstRegistry.Names(), secondRegistry.Names())
	assert.NotSame(t, firstRegistry, secondRegistry, "each parse must get its own registry")
}

func TestLastOccurrenceWithin(t *testing.T) {
	stmt := "a->b->c"

	assert.Equal(t, 4, lastOccurrenceWithin(stmt, "->", 0, len(stmt)))
	assert.Equal(t, 1, lastOccurrenceWithin(stmt, "->", 0, 4))
	assert.Equal(t, -1, lastOccurrenceWithin(stmt, "->", 0, 1))
	assert.Equal(t, -1, lastOccurrenceWithin(stmt, "<->", 0, len(stmt)))
	assert.Equal(t, -1, lastOccurrenceWithin(stmt, "->", 5, 2))
}
