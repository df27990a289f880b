package truthtable

import (
	"fmt"
	"log/slog"

	"github.com/hkarlsen/truthtab/src/boolexpr"
)

// DefaultMaxVariables bounds how many distinct variables a formula may
// use before enumeration is refused. 16 variables is 65536 rows, which
// is already more table than anyone reads; the bound exists because the
// row count doubles per variable, not because the enumerator cares.
const DefaultMaxVariables = 16

// A Row pairs one assignment with the formula's value under it. Values
// holds the variables' truth values in the same order as
// Table.Variables.
type Row struct {
	Values []bool
	Result bool
}

// A Table is the complete truth table of one parsed formula.
type Table struct {
	Formula   string
	Variables []string
	Rows      []Row
}

type options struct {
	evaluator    boolexpr.Evaluator
	maxVariables int
}

type Option func(*options)

// WithEvaluator swaps the backend that decides each row. The default
// walks the tree directly.
func WithEvaluator(evaluator boolexpr.Evaluator) Option {
	return func(o *options) {
		o.evaluator = evaluator
	}
}

// WithMaxVariables overrides the default variable bound.
func WithMaxVariables(n int) Option {
	return func(o *options) {
		o.maxVariables = n
	}
}

// New enumerates every assignment of the expression's variables and
// evaluates the expression under each one. The registry must be the one
// produced by the same parse as expr.
//
// Variables are ordered alphabetically. Row i assigns variable v the
// value of bit n-1-v of i, so the rows count upward when read as a
// binary string: for variables a, b the order is FF, FT, TF, TT. A
// formula with no variables gets exactly one row.
func New(expr boolexpr.Expression, registry *boolexpr.Registry, formula string, opts ...Option) (*Table, error) {
	o := options{
		evaluator:    boolexpr.DirectEvaluator{},
		maxVariables: DefaultMaxVariables,
	}
	for _, opt := range opts {
		opt(&o)
	}

	names := registry.Names()
	n := len(names)
	if n > o.maxVariables {
		return nil, NewTooManyVariablesError(n, o.maxVariables)
	}
	if n > 10 {
		slog.Warn("enumerating a large truth table",
			"variables", n,
			"rows", 1<<n,
		)
	}

	table := &Table{
		Formula:   formula,
		Variables: names,
		Rows:      make([]Row, 0, 1<<n),
	}
	for i := 0; i < 1<<n; i++ {
		model := make(map[string]bool, n)
		values := make([]bool, n)
		for v, name := range names {
			bit := 1 << (n - 1 - v)
			values[v] = i&bit == bit
			model[name] = values[v]
		}

		result, err := o.evaluator.Holds(expr, model)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate row %d: %w", i, err)
		}
		table.Rows = append(table.Rows, Row{Values: values, Result: result})
	}

	return table, nil
}
