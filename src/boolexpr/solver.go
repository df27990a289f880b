package boolexpr

import (
	"fmt"
)

func (l *Literal) Solve(model map[string]bool) (bool, error) {
	value, ok := model[l.Name]
	if !ok {
		return false, NewUnknownVariableError(l.Name)
	}
	return value, nil
}

func (c *Constant) Solve(model map[string]bool) (bool, error) {
	return c.Value, nil
}

func (n *Negation) Solve(model map[string]bool) (bool, error) {
	value, err := n.Operand.Solve(model)
	if err != nil {
		return false, fmt.Errorf("failed solving negated sub-expression: %w", err)
	}
	return !value, nil
}

func (b *Binary) Solve(model map[string]bool) (bool, error) {
	left, err := b.Left.Solve(model)
	if err != nil {
		return false, fmt.Errorf("failed solving left expression: %w", err)
	}
	right, err := b.Right.Solve(model)
	if err != nil {
		return false, fmt.Errorf("failed solving right expression: %w", err)
	}

	switch b.Op {
	case And:
		return left && right, nil
	case Or:
		return left || right, nil
	case Implies:
		return !left || right, nil
	case Iff:
		return left == right, nil
	}

	return false, fmt.Errorf("unknown operator: %v", b.Op)
}
