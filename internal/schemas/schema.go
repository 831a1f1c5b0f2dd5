// Package schemas validates inbound payloads and shapes outbound
// representations of the entity model. It has no transport dependency.
package schemas

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"school_transport/internal/password"
	"school_transport/internal/validation"
)

// SchemaField keys errors that do not belong to a single field.
const SchemaField = "_schema"

// ValidationError carries every failing field with its messages.
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+strings.Join(e.Fields[name], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ValidationError) has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("email_format", func(fl validator.FieldLevel) bool {
		return validation.ValidateEmailFormat(fl.Field().String()) == nil
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("bcrypt_max", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= password.MaxBytes
	}); err != nil {
		panic(err)
	}
	return v
}

// load decodes body into dst, ignoring unknown fields, then runs every rule
// on dst. All failures are returned together.
func load(body []byte, dst any) error {
	verr := newValidationError()

	if len(strings.TrimSpace(string(body))) == 0 {
		verr.add(SchemaField, "request body is empty")
		return verr
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		verr.add(SchemaField, "invalid JSON body")
		return verr
	}
	decodeFields(raw, dst, verr)

	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return errors.Wrap(err, "run validator")
		}
		for _, fe := range fieldErrs {
			if verr.has(fe.Field()) {
				continue
			}
			verr.add(fe.Field(), message(fe))
		}
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// decodeFields fills each field of the struct dst points to from its own
// JSON key, so a type error on one field does not hide the others.
func decodeFields(raw map[string]json.RawMessage, dst any, verr *ValidationError) {
	v := reflect.ValueOf(dst).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		value, ok := raw[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, v.Field(i).Addr().Interface()); err != nil {
			verr.add(name, "invalid type, expected "+describeKind(field.Type))
		}
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "email_format":
		return "invalid email format"
	case "bcrypt_max":
		return fmt.Sprintf("must be at most %d bytes", password.MaxBytes)
	default:
		return "is invalid"
	}
}

func describeKind(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "non-negative integer"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return t.Kind().String()
	}
}
