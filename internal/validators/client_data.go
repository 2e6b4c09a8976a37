package validators

import (
	"context"

	"github.com/MKhiriev/solar-quote/models"
	"github.com/go-playground/validator/v10"
)

// Client data field names, as they appear in JSON.
const (
	FieldCivilite     = "civilite"
	FieldNom          = "nom"
	FieldPrenom       = "prenom"
	FieldAdresse      = "adresse"
	FieldCodePostal   = "codePostal"
	FieldVille        = "ville"
	FieldTelephone    = "telephone"
	FieldEmail        = "email"
	FieldPackage      = "package"
	FieldCommercialID = "commercialId"
	FieldOrientation  = "orientation"
	FieldInclinaison  = "inclinaison"
)

var clientDataSentinels = map[string]error{
	FieldCivilite:     ErrInvalidCivility,
	FieldNom:          ErrEmptyLastName,
	FieldPrenom:       ErrEmptyFirstName,
	FieldAdresse:      ErrInvalidAddress,
	FieldCodePostal:   ErrInvalidPostalCode,
	FieldVille:        ErrInvalidCity,
	FieldTelephone:    ErrInvalidPhone,
	FieldEmail:        ErrInvalidEmail,
	FieldPackage:      ErrEmptyPackage,
	FieldCommercialID: ErrEmptyCommercialID,
	FieldOrientation:  ErrInvalidInstallation,
	FieldInclinaison:  ErrInvalidInstallation,
}

// ClientDataValidator checks a quote request before anything is sent to the
// CRM. The address triple follows the [AddressValidator] rules; phone
// numbers must be valid French numbers.
type ClientDataValidator struct {
	v *validator.Validate
}

func NewClientDataValidator() Validator {
	return &ClientDataValidator{v: newValidate()}
}

// Validate implements [Validator] for [models.ClientData].
func (c *ClientDataValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ClientData:
		return collect(c.v, value, clientDataSentinels, fields)
	case *models.ClientData:
		if value == nil {
			return ErrUnsupportedType
		}
		return collect(c.v, *value, clientDataSentinels, fields)
	default:
		return ErrUnsupportedType
	}
}
