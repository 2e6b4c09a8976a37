package http

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/MKhiriev/solar-quote/internal/app"
	"github.com/MKhiriev/solar-quote/internal/utils"
	"github.com/MKhiriev/solar-quote/internal/validators"
	"github.com/MKhiriev/solar-quote/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// ── GET /api/address/suggestions ──

func TestGetSuggestions(t *testing.T) {
	feature := models.AddressFeature{
		Type: "Feature",
		Properties: models.AddressProperties{
			Label: "12 Rue de la Paix 75002 Paris",
			Type:  models.FeatureTypeHouseNumber,
		},
	}

	tests := []struct {
		name     string
		query    string
		result   models.SuggestionResult
		wantJSON string
	}{
		{
			name:     "features returned",
			query:    "12 rue de la paix",
			result:   models.SuggestionResult{Features: []models.AddressFeature{feature}, Outcome: models.OutcomeOK},
			wantJSON: `12 Rue de la Paix 75002 Paris`,
		},
		{
			name:     "short query gives empty array",
			query:    "ru",
			result:   models.SuggestionResult{Features: []models.AddressFeature{}, Outcome: models.OutcomeQueryTooShort},
			wantJSON: `[]`,
		},
		{
			name:  "failed lookup still 200",
			query: "rue inconnue",
			result: models.SuggestionResult{
				Features: []models.AddressFeature{},
				Outcome:  models.OutcomeTimeout,
				Err:      errors.New("deadline"),
			},
			wantJSON: `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.address.EXPECT().Lookup(gomock.Any(), tt.query).Return(tt.result)

			rr := env.do(http.MethodGet, "/api/address/suggestions?q="+url.QueryEscape(tt.query), nil)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Contains(t, rr.Body.String(), tt.wantJSON)
		})
	}
}

// ── POST /api/address/validate ──

func TestValidateAddress_Valid(t *testing.T) {
	env := newTestEnv(t)
	req := models.AddressValidationRequest{Address: "12 rue de la Paix", PostalCode: "75002", City: "Paris"}
	env.address.EXPECT().CheckAddress(gomock.Any(), req).Return(nil)

	rr := env.do(http.MethodPost, "/api/address/validate", req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"valid":true}`, rr.Body.String())
}

func TestValidateAddress_Invalid(t *testing.T) {
	env := newTestEnv(t)
	req := models.AddressValidationRequest{Address: "12", PostalCode: "7500", City: "P"}
	env.address.EXPECT().CheckAddress(gomock.Any(), req).Return(validators.FieldErrors{
		validators.FieldPostalCode: validators.ErrInvalidPostalCode,
	})

	rr := env.do(http.MethodPost, "/api/address/validate", req)

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeBody[models.AddressValidationResponse](t, rr)
	assert.False(t, resp.Valid)
	assert.Equal(t, validators.ErrInvalidPostalCode.Error(), resp.Errors[validators.FieldPostalCode])
}

func TestValidateAddress_BadJSON(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(http.MethodPost, "/api/address/validate", `{"address":`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decodeBody[utils.ErrorResponse](t, rr)
	assert.Equal(t, app.MsgInvalidJSON, resp.Error)
}

func TestValidateAddress_UnexpectedError(t *testing.T) {
	env := newTestEnv(t)
	env.address.EXPECT().CheckAddress(gomock.Any(), gomock.Any()).Return(validators.ErrUnsupportedType)

	rr := env.do(http.MethodPost, "/api/address/validate", models.AddressValidationRequest{})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// ── GET /api/address/fallback ──

func TestGetFallbackCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		city    string
		coords  models.Coordinates
		matched bool
	}{
		{name: "known city", city: "Lyon", coords: models.Coordinates{Lat: 45.764043, Lon: 4.835659}, matched: true},
		{name: "unknown city", city: "Trifouillis", coords: models.Coordinates{Lat: 46.603354, Lon: 1.888334}, matched: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.address.EXPECT().FallbackCoordinates(tt.city).Return(tt.coords, tt.matched)

			rr := env.do(http.MethodGet, "/api/address/fallback?city="+tt.city, nil)

			assert.Equal(t, http.StatusOK, rr.Code)
			resp := decodeBody[models.FallbackCoordinatesResponse](t, rr)
			assert.Equal(t, tt.coords, resp.Coordinates)
			assert.Equal(t, tt.matched, resp.Matched)
		})
	}
}
