// Package validation holds the field rules shared by the entity model and
// the schema layer.
package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ErrInvalidEmail is returned when a candidate is not a well-formed address.
var ErrInvalidEmail = errors.New("invalid email format")

// Validator checks a single string value.
type Validator interface {
	Validate(candidate string) error
}

type emailFormat struct {
	v *validator.Validate
}

// NewEmailFormat returns a Validator accepting local-part@domain addresses
// with a single unquoted '@' and a dotted domain.
func NewEmailFormat() Validator {
	return &emailFormat{v: validator.New()}
}

func (e *emailFormat) Validate(candidate string) error {
	if candidate == "" {
		return errors.Wrap(ErrInvalidEmail, "empty address")
	}
	if err := e.v.Var(candidate, "email"); err != nil {
		return errors.Wrapf(ErrInvalidEmail, "%q", candidate)
	}
	return nil
}

var email = NewEmailFormat()

// ValidateEmailFormat runs the shared email rule.
func ValidateEmailFormat(candidate string) error {
	return email.Validate(candidate)
}
