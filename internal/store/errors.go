package store

import (
	"errors"
	"fmt"
)

// Kind categorizes store failures.
type Kind string

const (
	// ConnectionError means the database file could not be opened.
	// Callers treat it as fatal.
	ConnectionError Kind = "CONNECTION_ERROR"

	// SchemaError means the students table could not be created.
	SchemaError Kind = "SCHEMA_ERROR"

	// StorageError means a read or write was rejected by the medium.
	StorageError Kind = "STORAGE_ERROR"
)

// Error is returned by every Store operation that fails.
type Error struct {
	Kind Kind
	Op   string // "open", "schema", "create", "list", "count"
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a store *Error of the given kind.
// Uses errors.As to handle wrapped errors.
func IsKind(err error, kind Kind) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}

func connectionError(err error) *Error {
	return &Error{Kind: ConnectionError, Op: "open", Err: err}
}

func schemaError(err error) *Error {
	return &Error{Kind: SchemaError, Op: "schema", Err: err}
}

func storageError(op string, err error) *Error {
	return &Error{Kind: StorageError, Op: op, Err: err}
}
