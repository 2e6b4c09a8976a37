package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/solar-quote/internal/adapter"
	"github.com/MKhiriev/solar-quote/internal/app"
	"github.com/MKhiriev/solar-quote/internal/service"
	"github.com/MKhiriev/solar-quote/internal/utils"
	"github.com/MKhiriev/solar-quote/internal/validators"
	"github.com/MKhiriev/solar-quote/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func sampleClientData() models.ClientData {
	return models.ClientData{
		Civilite:     "Mme",
		Nom:          "Durand",
		Prenom:       "Claire",
		Adresse:      "12 rue de la Paix",
		CodePostal:   "75002",
		Ville:        "Paris",
		Telephone:    "0612345678",
		Email:        "claire.durand@example.fr",
		Package:      "6kWc",
		CommercialID: "C-17",
		Orientation:  2,
		Inclinaison:  3,
	}
}

// ── GET /api/crm/status ──

func TestGetCRMStatus(t *testing.T) {
	for _, connected := range []bool{true, false} {
		t.Run(fmt.Sprint(connected), func(t *testing.T) {
			env := newTestEnv(t)
			env.quotes.EXPECT().TestConnection(gomock.Any()).Return(connected)

			rr := env.do(http.MethodGet, "/api/crm/status", nil)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, connected, decodeBody[models.ConnectionStatus](t, rr).Connected)
		})
	}
}

// ── POST /api/quotes ──

func TestCreateQuote_Success(t *testing.T) {
	env := newTestEnv(t)
	quoteID := int64(77)
	quoteURL := "https://crm.example/devis/77"
	data := sampleClientData()

	env.quotes.EXPECT().RegisterClientAndCreateQuote(gomock.Any(), data).Return(models.QuoteResult{
		ClientID: 1234,
		QuoteID:  &quoteID,
		QuoteURL: &quoteURL,
		LoginURL: "https://crm.example/login?redirect=import&clientId=1234&commercialId=C-17&quoteId=77",
	}, nil)

	rr := env.do(http.MethodPost, "/api/quotes", data)

	assert.Equal(t, http.StatusCreated, rr.Code)
	result := decodeBody[models.QuoteResult](t, rr)
	assert.Equal(t, int64(1234), result.ClientID)
	if assert.NotNil(t, result.QuoteID) {
		assert.Equal(t, quoteID, *result.QuoteID)
	}
	assert.Equal(t, &quoteURL, result.QuoteURL)
	assert.Nil(t, result.PDFURL)
	assert.Contains(t, result.LoginURL, "clientId=1234")
}

func TestCreateQuote_BadJSON(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(http.MethodPost, "/api/quotes", `not json`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidJSON, decodeBody[utils.ErrorResponse](t, rr).Error)
}

func TestCreateQuote_ValidationFailed(t *testing.T) {
	env := newTestEnv(t)
	data := sampleClientData()
	data.Email = "pas-un-email"

	fieldErrs := validators.FieldErrors{validators.FieldEmail: validators.ErrInvalidEmail}
	env.quotes.EXPECT().RegisterClientAndCreateQuote(gomock.Any(), data).
		Return(models.QuoteResult{}, fmt.Errorf("%w: %w", service.ErrInvalidClientData, fieldErrs))

	rr := env.do(http.MethodPost, "/api/quotes", data)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decodeBody[validationErrorResponse](t, rr)
	assert.Equal(t, app.MsgInvalidClientData, resp.Error)
	assert.Equal(t, validators.ErrInvalidEmail.Error(), resp.Fields[validators.FieldEmail])
}

func TestCreateQuote_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "authentication failed",
			err:        fmt.Errorf("crm authentication failed: %w", fmt.Errorf("%w: %w", adapter.ErrUpstreamStatus, adapter.ErrUnauthorized)),
			wantStatus: http.StatusBadGateway,
			wantMsg:    app.MsgCRMUnavailable,
		},
		{
			name:       "no token in response",
			err:        service.ErrTokenNotReceived,
			wantStatus: http.StatusBadGateway,
			wantMsg:    app.MsgCRMUnavailable,
		},
		{
			name:       "no client id",
			err:        service.ErrClientIDNotReceived,
			wantStatus: http.StatusBadGateway,
			wantMsg:    app.MsgCRMUnavailable,
		},
		{
			name:       "crm timeout",
			err:        fmt.Errorf("create quote: %w", context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantMsg:    app.MsgUpstreamTimeout,
		},
		{
			name:       "transport error",
			err:        errors.New("dial tcp: connection refused"),
			wantStatus: http.StatusBadGateway,
			wantMsg:    app.MsgCRMUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.quotes.EXPECT().RegisterClientAndCreateQuote(gomock.Any(), gomock.Any()).Return(models.QuoteResult{}, tt.err)

			rr := env.do(http.MethodPost, "/api/quotes", sampleClientData())

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMsg, decodeBody[utils.ErrorResponse](t, rr).Error)
		})
	}
}

// ── GET /api/crm/login-url ──

func TestGetLoginURL(t *testing.T) {
	const url = "https://crm.example/login?redirect=import&clientId=5&commercialId=C-17"

	t.Run("without quote", func(t *testing.T) {
		env := newTestEnv(t)
		env.quotes.EXPECT().LoginURL(int64(5), "C-17", (*int64)(nil)).Return(url)

		rr := env.do(http.MethodGet, "/api/crm/login-url?clientId=5&commercialId=C-17", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, url, decodeBody[models.LoginURLResponse](t, rr).URL)
	})

	t.Run("with quote", func(t *testing.T) {
		env := newTestEnv(t)
		env.quotes.EXPECT().LoginURL(int64(5), "C-17", gomock.Any()).DoAndReturn(
			func(_ int64, _ string, quoteID *int64) string {
				if assert.NotNil(t, quoteID) {
					assert.Equal(t, int64(9), *quoteID)
				}
				return url + "&quoteId=9"
			})

		rr := env.do(http.MethodGet, "/api/crm/login-url?clientId=5&commercialId=C-17&quoteId=9", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, url+"&quoteId=9", decodeBody[models.LoginURLResponse](t, rr).URL)
	})

	t.Run("quote id zero is ignored", func(t *testing.T) {
		env := newTestEnv(t)
		env.quotes.EXPECT().LoginURL(int64(5), "C-17", (*int64)(nil)).Return(url)

		rr := env.do(http.MethodGet, "/api/crm/login-url?clientId=5&commercialId=C-17&quoteId=0", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestGetLoginURL_BadParams(t *testing.T) {
	for _, target := range []string{
		"/api/crm/login-url?commercialId=C-17",
		"/api/crm/login-url?clientId=abc&commercialId=C-17",
		"/api/crm/login-url?clientId=0&commercialId=C-17",
		"/api/crm/login-url?clientId=-3&commercialId=C-17",
		"/api/crm/login-url?clientId=5",
		"/api/crm/login-url?clientId=5&commercialId=C-17&quoteId=x",
	} {
		t.Run(target, func(t *testing.T) {
			env := newTestEnv(t)

			rr := env.do(http.MethodGet, target, nil)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw      string
		required bool
		want     int64
		wantErr  error
	}{
		{raw: "12", required: true, want: 12},
		{raw: "", required: true, wantErr: ErrMissingQueryParam},
		{raw: "", required: false, want: 0},
		{raw: "0", required: true, wantErr: ErrInvalidQueryParam},
		{raw: "0", required: false, want: 0},
		{raw: "-1", required: false, wantErr: ErrInvalidQueryParam},
		{raw: "1.5", required: true, wantErr: ErrInvalidQueryParam},
	}

	for _, tt := range tests {
		got, err := parseID(tt.raw, tt.required)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, tt.raw)
			continue
		}
		assert.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFromError(fmt.Errorf("x: %w", service.ErrInvalidClientData), http.StatusTeapot))
	assert.Equal(t, http.StatusBadGateway, statusFromError(adapter.ErrMalformedResponse, http.StatusTeapot))
	assert.Equal(t, http.StatusGatewayTimeout, statusFromError(context.DeadlineExceeded, http.StatusTeapot))
	assert.Equal(t, http.StatusTeapot, statusFromError(errors.New("other"), http.StatusTeapot))

	assert.Equal(t, app.MsgInternalServerError, messageFromStatus(http.StatusTeapot))
}
