package ledger

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every validation failure: amounts that are
// not numbers or not positive, and unknown transaction kinds.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrNotANumber  = fmt.Errorf("%w: not a number", ErrInvalidInput)
	ErrNotPositive = fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	ErrUnknownKind = fmt.Errorf("%w: unknown transaction type", ErrInvalidInput)
)

// ReadError reports a storage file that could not be loaded. The store falls
// back to an empty ledger when it is returned.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a failed save. The in-memory ledger is kept as is.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
