package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no document matches the requested identifier.
var ErrNotFound = errors.New("document not found")

// VersionConflictError is returned when a versioned replace detects that the
// stored document carries a different version than the entity being written.
type VersionConflictError struct {
	EntityID string
	Expected int64
	Actual   int64
}

// Error implements the error interface.
func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("version conflict for entity %s: expected version %d, got %d",
		e.EntityID, e.Expected, e.Actual)
}

// NewVersionConflictError creates a new VersionConflictError.
func NewVersionConflictError(entityID string, expected, actual int64) *VersionConflictError {
	return &VersionConflictError{
		EntityID: entityID,
		Expected: expected,
		Actual:   actual,
	}
}
