package availability

import (
	"errors"
	"fmt"
)

// InvalidInputError reports a malformed date, time or party size. Unlike the
// negative availability outcomes, it is an error the caller should surface as
// a bad request rather than "fully booked".
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func NewInvalidInputError(field, msg string) error {
	return &InvalidInputError{Field: field, Message: msg}
}

// IsInvalidInput reports whether err is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var iie *InvalidInputError
	return errors.As(err, &iie)
}

// RepositoryError wraps a persistence failure so callers can distinguish
// infrastructure trouble from a genuine lack of availability.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error { return e.Err }

func newRepositoryError(op string, err error) error {
	return &RepositoryError{Op: op, Err: err}
}

// IsRepositoryError reports whether err originated in the persistence layer.
func IsRepositoryError(err error) bool {
	var re *RepositoryError
	return errors.As(err, &re)
}
