package dataset

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed source rows.
var (
	ErrFieldCount     = errors.New("row does not have the expected field count")
	ErrYearNotInteger = errors.New("movie year is not an integer")
)

// DataError carries the location of a malformed row.
type DataError struct {
	Op    string // operation that failed, e.g. "read record"
	Line  int    // 1-based line number in the input, header included
	Cause error
}

// Error implements the error interface.
func (e *DataError) Error() string {
	return fmt.Sprintf("%s: line %d: %v", e.Op, e.Line, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *DataError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *DataError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}
