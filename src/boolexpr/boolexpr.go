package boolexpr

import (
	"strings"
	"unicode"
)

// Op identifies a binary connective.
type Op int

const (
	And Op = iota
	Or
	Implies
	Iff
)

// token returns the operator as it appears in formula text.
func (o Op) token() string {
	switch o {
	case And:
		return "&"
	case Or:
		return "|"
	case Implies:
		return "->"
	case Iff:
		return "<->"
	}
	return "?"
}

// An Expression is one node of a parsed formula. The tree is immutable
// once Parse returns it.
type Expression interface {
	// Solve computes the expression's value under the given assignment.
	// Every variable referenced by the expression must be present in
	// the model.
	Solve(model map[string]bool) (bool, error)
	String() string
}

// Literal references one free variable by name.
type Literal struct {
	Name string
}

// Constant is a fixed truth value written as T or F in the formula.
type Constant struct {
	Value bool
}

// Negation inverts its operand.
type Negation struct {
	Operand Expression
}

// Binary joins two sub-expressions with a connective.
type Binary struct {
	Op    Op
	Left  Expression
	Right Expression
}

func (l *Literal) String() string { return l.Name }

func (c *Constant) String() string {
	if c.Value {
		return "T"
	}
	return "F"
}

func (n *Negation) String() string { return "~" + n.Operand.String() }

func (b *Binary) String() string {
	return "(" + b.Left.String() + b.Op.token() + b.Right.String() + ")"
}

// Parse turns a formula in infix notation into an expression tree,
// together with the registry of variables the formula references. Each
// call gets a fresh registry, so independent formulas never share
// variable state.
//
// Example usage:
//
//	expr, registry, err := boolexpr.Parse("a -> (b & ~c)")
//	if err != nil {
//		log.Fatalf("failed to parse formula: %v", err)
//	}
//	result, err := expr.Solve(map[string]bool{"a": true, "b": true, "c": false})
func Parse(formula string) (Expression, *Registry, error) {
	stripped := stripWhitespace(formula)
	p := &parser{stmt: stripped, registry: NewRegistry()}

	expr, ok := p.parse(0, len(stripped)-1)
	if !ok {
		return nil, nil, NewParseError(formula)
	}
	return expr, p.registry, nil
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
