package core

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the generation and reporting core. All of them are
// recoverable at the UI boundary.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrQuery            = errors.New("query error")
	ErrUnknownQuery     = errors.New("unknown query")
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrReadOnly is wrapped in a QueryError when the interactive path
	// refuses a statement that could modify the store.
	ErrReadOnly = errors.New("only read-only SELECT statements are allowed")
)

// QueryError carries the failing statement and the engine message.
type QueryError struct {
	SQL string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query error: %v", e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrQuery) hold for every QueryError.
func (e *QueryError) Is(target error) bool {
	return target == ErrQuery
}

// NewQueryError wraps err for the given statement.
func NewQueryError(sql string, err error) *QueryError {
	return &QueryError{SQL: sql, Err: err}
}
