package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput matches every *InvalidInputError.
	ErrInvalidInput = errors.New("solver: invalid input")

	// ErrResourceLimit matches every *ResourceLimitError.
	ErrResourceLimit = errors.New("solver: resource limit exceeded")
)

// InvalidInputError reports a precondition violation detected before any
// computation starts. Index is -1 when the offending value is the budget.
type InvalidInputError struct {
	Field  string
	Index  int
	Item   string
	Value  float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("solver: invalid %s %v: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("solver: invalid %s %v for item %d (%s): %s", e.Field, e.Value, e.Index, e.Item, e.Reason)
}

// Is lets errors.Is match ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ResourceLimitError reports a request whose working set exceeds a
// configured ceiling.
type ResourceLimitError struct {
	Resource  string
	Requested int64
	Limit     int64
}

func (e *ResourceLimitError) Error() string {
	return fmt.Sprintf("solver: %s %d exceeds limit %d", e.Resource, e.Requested, e.Limit)
}

// Is lets errors.Is match ErrResourceLimit.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

func budgetError(value float64, reason string) error {
	return &InvalidInputError{Field: "budget", Index: -1, Value: value, Reason: reason}
}

func itemError(index int, item Item, field string, value float64, reason string) error {
	return &InvalidInputError{Field: field, Index: index, Item: item.Name, Value: value, Reason: reason}
}
