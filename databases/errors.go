package databases

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no record in the collection has the
// requested id
var ErrNotFound = errors.New("record not found")

// ErrInvalidCredentials is returned when no usuario matches the given
// email and senha pair
var ErrInvalidCredentials = errors.New("invalid credentials")

// StorageError wraps any failure to read, parse or write the document
// file. It is always surfaced to the caller, never swallowed.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
