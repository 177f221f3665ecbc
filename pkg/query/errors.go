package query

import "fmt"

// InvalidArgumentError is returned when a builder function receives a
// malformed argument, such as an empty field name. It is raised at
// construction time, before any database interaction.
type InvalidArgumentError struct {
	Argument string
	Reason   string
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Argument, e.Reason)
}

// NewInvalidArgumentError creates a new InvalidArgumentError.
func NewInvalidArgumentError(argument, reason string) *InvalidArgumentError {
	return &InvalidArgumentError{
		Argument: argument,
		Reason:   reason,
	}
}

// ShapeMismatchError is returned when a native value cannot be represented
// as a document. The value is carried as-is; it is never silently coerced.
type ShapeMismatchError struct {
	Value any
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("value of type %T is not representable as a document", e.Value)
}

// NewShapeMismatchError creates a new ShapeMismatchError.
func NewShapeMismatchError(value any) *ShapeMismatchError {
	return &ShapeMismatchError{Value: value}
}
