package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidAddress      = errors.New("address must be longer than 3 characters")
	ErrInvalidPostalCode   = errors.New("postal code must be exactly 5 digits")
	ErrInvalidCity         = errors.New("city must be longer than 1 character")
	ErrInvalidCivility     = errors.New("civility must be M or Mme")
	ErrEmptyLastName       = errors.New("last name is required")
	ErrEmptyFirstName      = errors.New("first name is required")
	ErrInvalidPhone        = errors.New("invalid phone number")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrEmptyPackage        = errors.New("package is required")
	ErrEmptyCommercialID   = errors.New("commercial id is required")
	ErrInvalidInstallation = errors.New("invalid installation parameter")
)

// FieldErrors maps a JSON field name to the rule it broke. It is returned by
// the validators of this package when at least one field is invalid.
//
// errors.Is matches every contained sentinel.
type FieldErrors map[string]error

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, field := range e.fields() {
		parts = append(parts, field+": "+e[field].Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e FieldErrors) Unwrap() []error {
	errs := make([]error, 0, len(e))
	for _, field := range e.fields() {
		errs = append(errs, e[field])
	}
	return errs
}

// Messages returns the error text of each field.
func (e FieldErrors) Messages() map[string]string {
	messages := make(map[string]string, len(e))
	for field, err := range e {
		messages[field] = err.Error()
	}
	return messages
}

func (e FieldErrors) fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
