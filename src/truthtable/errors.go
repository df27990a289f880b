package truthtable

import (
	"fmt"
)

// TooManyVariablesError is returned when a formula uses more distinct
// variables than the configured bound allows.
type TooManyVariablesError struct {
	Count int
	Limit int
}

// NewTooManyVariablesError creates a new TooManyVariablesError.
func NewTooManyVariablesError(count, limit int) error {
	return &TooManyVariablesError{Count: count, Limit: limit}
}

func (e TooManyVariablesError) Error() string {
	return fmt.Sprintf("formula uses %d distinct variables, more than the limit of %d", e.Count, e.Limit)
}
