package validators

import (
	"context"

	"github.com/MKhiriev/solar-quote/models"
	"github.com/go-playground/validator/v10"
)

// Address field names, as they appear in JSON.
const (
	FieldAddress    = "address"
	FieldPostalCode = "postalCode"
	FieldCity       = "city"
)

var addressSentinels = map[string]error{
	FieldAddress:    ErrInvalidAddress,
	FieldPostalCode: ErrInvalidPostalCode,
	FieldCity:       ErrInvalidCity,
}

// AddressValidator checks a manually entered address: a street line longer
// than 3 characters, a 5-digit postal code and a city longer than 1
// character. It does no normalization and no lookup.
type AddressValidator struct {
	v *validator.Validate
}

func NewAddressValidator() Validator {
	return &AddressValidator{v: newValidate()}
}

// Validate implements [Validator] for [models.AddressValidationRequest]. It
// returns [FieldErrors] naming every invalid field.
func (a *AddressValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AddressValidationRequest:
		return collect(a.v, value, addressSentinels, fields)
	case *models.AddressValidationRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return collect(a.v, *value, addressSentinels, fields)
	default:
		return ErrUnsupportedType
	}
}
