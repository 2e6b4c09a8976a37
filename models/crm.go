// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Civility values accepted in [ClientData.Civilite].
const (
	CivilityMister = "M"
	CivilityMadam  = "Mme"
)

// ClientData is the prospect and installation data collected by the
// simulator and pushed to the CRM as a client followed by a quote.
//
// The validate tags are enforced by validators.ClientDataValidator; the
// address triple follows the same rules as [AddressValidationRequest].
type ClientData struct {
	Civilite      string `json:"civilite" validate:"required,oneof=M Mme"`
	Nom           string `json:"nom" validate:"required"`
	Prenom        string `json:"prenom" validate:"required"`
	Adresse       string `json:"adresse" validate:"min=4"`
	CodePostal    string `json:"codePostal" validate:"postalcode_fr"`
	Ville         string `json:"ville" validate:"min=2"`
	Telephone     string `json:"telephone" validate:"required,phone_fr"`
	Email         string `json:"email" validate:"required,email"`
	Package       string `json:"package" validate:"required"`
	CommercialID  string `json:"commercialId" validate:"required"`
	Orientation   int    `json:"orientation,omitempty" validate:"gte=0"`
	Inclinaison   int    `json:"inclinaison,omitempty" validate:"gte=0"`
	MasqueSolaire bool   `json:"masqueSolaire"`
	RevenuFiscal  string `json:"revenuFiscal,omitempty"`
}

// QuoteResult identifies the records created in the CRM. Optional members
// are nil when the CRM did not return them.
type QuoteResult struct {
	ClientID int64   `json:"clientId"`
	QuoteID  *int64  `json:"quoteId,omitempty"`
	QuoteURL *string `json:"quoteUrl,omitempty"`
	PDFURL   *string `json:"pdfUrl,omitempty"`
	LoginURL string  `json:"loginUrl,omitempty"`
}

// CRMCredentials are posted to the CRM authentication endpoint.
type CRMCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CRMClient is a single client record in the CRM "clients" payload.
type CRMClient struct {
	TypeClient    string `json:"id_type_client"`
	Sexe          string `json:"sexe"`
	Nom           string `json:"nom"`
	Prenom        string `json:"prenom"`
	Adresse       string `json:"adresse"`
	CodePostal    string `json:"cp"`
	Ville         string `json:"ville"`
	Telephone     string `json:"tel_1"`
	Email         string `json:"email"`
	OrigineClient string `json:"origine_client"`
	Package       string `json:"package"`
	CommercialID  string `json:"id_commercial"`
}

// CRMQuote is the payload of the CRM quote ("devis") creation endpoint.
type CRMQuote struct {
	ClientID      int64  `json:"id_client"`
	CommercialID  string `json:"id_commercial"`
	PackageID     string `json:"id_package"`
	OrientationID int    `json:"id_orientation_toit"`
	InclinaisonID int    `json:"id_inclinaison"`
	MasqueSolaire string `json:"masque_solaire"`
	RevenuFiscal  string `json:"revenu_fiscal"`
}

// CRMQuoteData is the "data" member of a quote creation response.
type CRMQuoteData struct {
	DevisID  *int64  `json:"devisId,omitempty"`
	QuoteURL *string `json:"quoteUrl,omitempty"`
	FilePath *string `json:"filePath,omitempty"`
}

// CRMToken is a cached CRM bearer token.
type CRMToken struct {
	Value     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Valid reports whether the token is non-empty and not expired at now.
func (t CRMToken) Valid(now time.Time) bool {
	return t.Value != "" && t.ExpiresAt.After(now)
}

// ConnectionStatus is returned by the CRM status endpoint.
type ConnectionStatus struct {
	Connected bool `json:"connected"`
}

// LoginURLResponse wraps a CRM login/import URL.
type LoginURLResponse struct {
	URL string `json:"url"`
}
