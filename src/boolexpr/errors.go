package boolexpr

import (
	"fmt"
)

// ParseError is returned when a formula does not match the grammar. The
// split search fails as a whole, so there is no single offending
// position to point at.
type ParseError struct {
	Formula string
}

// NewParseError creates a new ParseError for the given formula.
func NewParseError(formula string) error {
	return &ParseError{Formula: formula}
}

func (e ParseError) Error() string {
	return fmt.Sprintf("'%s' is not a valid expression", e.Formula)
}

// UnknownVariableError is returned when an expression references a
// variable the assignment has no value for.
type UnknownVariableError struct {
	VariableName string
}

// NewUnknownVariableError creates a new UnknownVariableError with the given variable name.
func NewUnknownVariableError(variableName string) error {
	return &UnknownVariableError{VariableName: variableName}
}

func (e UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable: %s", e.VariableName)
}
