package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDataFile means the backing file does not exist yet. It is
	// informational: the store starts empty and the file is created on save.
	ErrNoDataFile = errors.New("no existing benefits file")

	// ErrNotFound is returned when updating or deleting an unknown benefit.
	ErrNotFound = errors.New("benefit not found")

	// ErrBlank is wrapped by a ValidationError for an empty required field.
	ErrBlank = errors.New("must not be blank")
)

// LoadError reports a backing file that exists but could not be read or parsed.
type LoadError struct {
	Path string
	Err  error

	// Malformed is set when the file was read but its contents did not decode.
	Malformed bool
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading benefits file %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError reports a failed write. The in-memory state is kept.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("saving benefits file %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// ValidationError reports input rejected before any state change.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }
