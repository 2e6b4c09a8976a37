package validators

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
)

const (
	tagPostalCodeFR = "postalcode_fr"
	tagPhoneFR      = "phone_fr"

	phoneRegion = "FR"
)

var postalCodeRegexp = regexp.MustCompile(`^\d{5}$`)

// newValidate returns a validator reporting fields by their JSON name, with
// the French postal code and phone rules registered.
func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation(tagPostalCodeFR, func(fl validator.FieldLevel) bool {
		return postalCodeRegexp.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation(tagPhoneFR, func(fl validator.FieldLevel) bool {
		number, err := phonenumbers.Parse(strings.TrimSpace(fl.Field().String()), phoneRegion)
		if err != nil {
			return false
		}
		return phonenumbers.IsValidNumber(number)
	})

	return v
}

// collect runs v on obj and converts the outcome into [FieldErrors] using
// sentinels to name each broken rule. When fields is not empty only those
// fields are reported; naming a field unknown to sentinels is an error.
func collect(v *validator.Validate, obj any, sentinels map[string]error, fields []string) error {
	for _, f := range fields {
		if _, ok := sentinels[f]; !ok {
			return ErrUnknownField
		}
	}

	err := v.Struct(obj)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fieldErrs := make(FieldErrors, len(validationErrs))
	for _, fe := range validationErrs {
		field := fe.Field()
		if len(fields) > 0 && !contains(fields, field) {
			continue
		}
		if _, seen := fieldErrs[field]; seen {
			continue
		}
		sentinel, ok := sentinels[field]
		if !ok {
			sentinel = ErrUnknownField
		}
		fieldErrs[field] = sentinel
	}

	if len(fieldErrs) == 0 {
		return nil
	}
	return fieldErrs
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
