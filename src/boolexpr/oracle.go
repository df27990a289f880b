package boolexpr

import (
	"fmt"

	"github.com/crillab/gophersat/bf"
)

// An Evaluator decides whether an expression holds under a total
// assignment of its variables.
type Evaluator interface {
	Holds(expr Expression, model map[string]bool) (bool, error)
}

// DirectEvaluator evaluates the tree recursively. This is the default
// backend.
type DirectEvaluator struct{}

func (DirectEvaluator) Holds(expr Expression, model map[string]bool) (bool, error) {
	return expr.Solve(model)
}

// SolverEvaluator answers through a SAT solver: the expression is
// conjoined with one pinning literal per assigned variable and the
// result is whether that conjunction is satisfiable. With a total
// assignment this can never do more than direct evaluation, but it
// keeps the tool honest against an independent decision procedure.
type SolverEvaluator struct{}

func (SolverEvaluator) Holds(expr Expression, model map[string]bool) (bool, error) {
	if len(model) == 0 {
		// Nothing to pin. The solver cannot be asked about a
		// variable-free CNF, and a constant formula is already fully
		// determined anyway.
		return expr.Solve(model)
	}

	formula, err := toFormula(expr)
	if err != nil {
		return false, fmt.Errorf("failed to translate expression for the solver: %w", err)
	}

	pinned := make([]bf.Formula, 0, len(model)+1)
	pinned = append(pinned, formula)
	for name, value := range model {
		pin := bf.Var(name)
		if !value {
			pin = bf.Not(pin)
		}
		pinned = append(pinned, pin)
	}

	return bf.Solve(bf.And(pinned...)) != nil, nil
}

// toFormula rebuilds the expression in the solver's formula types.
func toFormula(expr Expression) (bf.Formula, error) {
	switch e := expr.(type) {
	case *Literal:
		return bf.Var(e.Name), nil
	case *Constant:
		if e.Value {
			return bf.True, nil
		}
		return bf.False, nil
	case *Negation:
		operand, err := toFormula(e.Operand)
		if err != nil {
			return nil, err
		}
		return bf.Not(operand), nil
	case *Binary:
		left, err := toFormula(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := toFormula(e.Right)
		if err != nil {
			return nil, err
		}
		switch e.Op {
		case And:
			return bf.And(left, right), nil
		case Or:
			return bf.Or(left, right), nil
		case Implies:
			return bf.Implies(left, right), nil
		case Iff:
			return bf.Eq(left, right), nil
		}
		return nil, fmt.Errorf("unknown operator: %v", e.Op)
	}
	return nil, fmt.Errorf("unknown expression type %T", expr)
}
