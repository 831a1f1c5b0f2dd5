package models

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidValue marks a domain invariant violated at construction time.
var ErrInvalidValue = errors.New("invalid value")

// ValueError reports which field broke an invariant. It matches both
// ErrInvalidValue and the underlying cause under errors.Is.
type ValueError struct {
	Field string
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValueError) Unwrap() []error {
	return []error{ErrInvalidValue, e.Err}
}

func invalid(field string, err error) error {
	return &ValueError{Field: field, Err: err}
}
