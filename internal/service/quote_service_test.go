package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/solar-quote/internal/adapter"
	"github.com/MKhiriev/solar-quote/internal/config"
	"github.com/MKhiriev/solar-quote/internal/logger"
	"github.com/MKhiriev/solar-quote/internal/mock"
	"github.com/MKhiriev/solar-quote/internal/store"
	"github.com/MKhiriev/solar-quote/internal/validators"
	"github.com/MKhiriev/solar-quote/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

func testCRMConfig() config.CRM {
	return config.CRM{
		BaseURL:  "http://localhost:3001/api",
		LoginURL: "https://abienergie.icoll.fr/login",
		Username: "simulateur",
		Password: "s3cret",
		TokenTTL: 4 * time.Hour,
	}
}

// newTestQuoteSvc builds a quoteService with a mocked CRM, a real in-memory
// token store and a frozen clock.
func newTestQuoteSvc(t *testing.T, ctrl *gomock.Controller) (*quoteService, *mock.MockCRMAdapter, store.TokenStore) {
	t.Helper()
	crm := mock.NewMockCRMAdapter(ctrl)
	tokens := store.NewMemoryTokenStore()

	svc := NewQuoteService(crm, tokens, testCRMConfig(), logger.Nop()).(*quoteService)
	svc.now = func() time.Time { return testNow }

	return svc, crm, tokens
}

func testClientData() models.ClientData {
	return models.ClientData{
		Civilite:     models.CivilityMadam,
		Nom:          "Dupont",
		Prenom:       "Marie",
		Adresse:      "12 rue de la Paix",
		CodePostal:   "75002",
		Ville:        "Paris",
		Telephone:    "0612345678",
		Email:        "marie.dupont@example.com",
		Package:      "PACK-6KWC",
		CommercialID: "17",
		RevenuFiscal: "modeste",
	}
}

func ptr[T any](v T) *T { return &v }

// ── GetToken ─────────────────────────────────────────────────────────────────

func TestQuoteService_GetToken_UsesValidCachedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, tokens := newTestQuoteSvc(t, ctrl)
	ctx := context.Background()

	require.NoError(t, tokens.Save(ctx, models.CRMToken{Value: "cached", ExpiresAt: testNow.Add(time.Minute)}))

	token, err := svc.GetToken(ctx)

	require.NoError(t, err)
	assert.Equal(t, "cached", token)
}

func TestQuoteService_GetToken_AuthenticatesAndCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, crm, tokens := newTestQuoteSvc(t, ctrl)
	ctx := context.Background()

	crm.EXPECT().
		Authenticate(ctx, models.CRMCredentials{Username: "simulateur", Password: "s3cret"}).
		Return("opaque-token", nil).
		Times(1)

	first, err := svc.GetToken(ctx)
	require.NoError(t, err)
	second, err := svc.GetToken(ctx)
	require.NoError(t, err)

	assert.Equal(t, "opaque-token", first)
	assert.Equal(t, first, second)

	stored, err := tokens.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(4*time.Hour), stored.ExpiresAt)
}

func TestQuoteService_GetToken_JWTExpiryCapsTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, crm, tokens := newTestQuoteSvc(t, ctrl)
	ctx := context.Background()

	exp := testNow.Add(30 * time.Minute)
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("crm-signing-key"))
	require.NoError(t, err)

	crm.EXPECT().Authenticate(ctx, gomock.Any()).Return(raw, nil)

	_, err = svc.GetToken(ctx)
	require.NoError(t, err)

	stored, err := tokens.Load(ctx)
	require.NoError(t, err)
	assert.True(t, stored.ExpiresAt.Equal(exp), "expected %s, got %s", exp, stored.ExpiresAt)
}

func TestQuoteService_GetToken_ExpiredTokenIsRenewed(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, crm, tokens := newTestQuoteSvc(t, ctrl)
	ctx := context.Background()

	require.NoError(t, tokens.Save(ctx, models.CRMToken{Value: "stale", ExpiresAt: testNow.Add(-time.Second)}))
	crm.EXPECT().Authenticate(ctx, gomock.Any()).Return("fresh", nil)

	token, err := svc.GetToken(ctx)

	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
}

func TestQuoteService_GetToken_FailureClearsToken(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		err     error
		wantErr error
	}{
		{name: "unauthorized", err: fmt.Errorf("%w: %w", adapter.ErrUpstreamStatus, adapter.ErrUnauthorized), wantErr: adapter.ErrUnauthorized},
		{name: "transport", err: errors.New("dial tcp: connection refused")},
		{name: "no token in answer", wantErr: ErrTokenNotReceived},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, crm, tokens := newTestQuoteSvc(t, ctrl)
			ctx := context.Background()

			require.NoError(t, tokens.Save(ctx, models.CRMToken{Value: "stale", ExpiresAt: testNow.Add(-time.Hour)}))
			crm.EXPECT().Authenticate(ctx, gomock.Any()).Return(tt.token, tt.err)

			token, err := svc.GetToken(ctx)

			require.Error(t, err)
			assert.Empty(t, token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			_, err = tokens.Load(ctx)
			assert.ErrorIs(t, err, store.ErrTokenNotFound)
		})
	}
}

func TestQuoteService_GetToken_StoreErrorsAreTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	crm := mock.NewMockCRMAdapter(ctrl)
	tokens := mock.NewMockTokenStore(ctrl)
	svc := NewQuoteService(crm, tokens, testCRMConfig(), logger.Nop())
	ctx := context.Background()

	storeErr := errors.New("database is locked")
	gomock.InOrder(
		tokens.EXPECT().Load(ctx).Return(models.CRMToken{}, storeErr),
		crm.EXPECT().Authenticate(ctx, gomock.Any()).Return("fresh", nil),
		tokens.EXPECT().Save(ctx, gomock.Any()).Return(storeErr),
	)

	token, err := svc.GetToken(ctx)

	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
}

// ── TestConnection ───────────────────────────────────────────────────────────

func TestQuoteService_TestConnection(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, crm, _ := newTestQuoteSvc(t, ctrl)
		crm.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return("token", nil)

		assert.True(t, svc.TestConnection(context.Background()))
	})

	t.Run("not connected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, crm, _ := newTestQuoteSvc(t, ctrl)
		crm.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return("", adapter.ErrUnauthorized)

		assert.False(t, svc.TestConnection(context.Background()))
	})
}

// ── RegisterClientAndCreateQuote ─────────────────────────────────────────────

func TestQuoteService_RegisterClientAndCreateQuote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, crm, _ := newTestQuoteSvc(t, ctrl)
	ctx := context.Background()
	data := testClientData()

	gomock.InOrder(
		crm.EXPECT().Authenticate(ctx, gomock.Any()).Return("token", nil),
		crm.EXPECT().CreateClient(ctx, "token", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, client models.CRMClient) (int64, error) {
				assert.Equal(t, models.CRMClient{
					TypeClient:    "PARTICULIER",
					Sexe:          "F",
					Nom:           "Dupont",
					Prenom:        "Marie",
					Adresse:       "12 rue de la Paix",
					CodePostal:    "75002",
					Ville:         "Paris",
					Telephone:     "0612345678",
					Email:         "marie.dupont@example.com",
					OrigineClient: "Simulateur",
					Package:       "PACK-6KWC",
					CommercialID:  "17",
				}, client)
				return 4242, nil
			},
		),
		crm.EXPECT().CreateQuote(ctx, "token", models.CRMQuote{
			ClientID:      4242,
			CommercialID:  "17",
			PackageID:     "PACK-6KWC",
			OrientationID: 1,
			InclinaisonID: 1,
			MasqueSolaire: "2",
			RevenuFiscal:  "modeste",
		}).Return(models.CRMQuoteData{
			DevisID:  ptr(int64(99)),
			QuoteURL: ptr("https://crm.example/devis/99"),
			FilePath: ptr("/files/devis-99.pdf"),
		}, nil),
	)

	result, err := svc.RegisterClientAndCreateQuote(ctx, data)

	require.NoError(t, err)
	assert.Equal(t, int64(4242), result.ClientID)
	require.NotNil(t, result.QuoteID)
	assert.Equal(t, int64(99), *result.QuoteID)
	assert.Equal(t, "https://crm.example/devis/99", *result.QuoteURL)
	assert.Equal(t, "/files/devis-99.pdf", *result.PDFURL)
	assert.Equal(t, "https://abienergie.icoll.fr/login?redirect=import&clientId=4242&commercialId=17&quoteId=99", result.LoginURL)
}

func TestQuoteService_RegisterClientAndCreateQuote_InstallationMapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, crm, _ := newTestQuoteSvc(t, ctrl)
	ctx := context.Background()

	data := testClientData()
	data.Civilite = models.CivilityMister
	data.Orientation = 3
	data.Inclinaison = 2
	data.MasqueSolaire = true

	crm.EXPECT().Authenticate(ctx, gomock.Any()).Return("token", nil)
	crm.EXPECT().CreateClient(ctx, "token", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, client models.CRMClient) (int64, error) {
			assert.Equal(t, "M", client.Sexe)
			return 7, nil
		},
	)
	crm.EXPECT().CreateQuote(ctx, "token", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, quote models.CRMQuote) (models.CRMQuoteData, error) {
			assert.Equal(t, 3, quote.OrientationID)
			assert.Equal(t, 2, quote.InclinaisonID)
			assert.Equal(t, "1", quote.MasqueSolaire)
			return models.CRMQuoteData{}, nil
		},
	)

	result, err := svc.RegisterClientAndCreateQuote(ctx, data)

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.ClientID)
	assert.Nil(t, result.QuoteID)
	assert.Nil(t, result.QuoteURL)
	assert.Nil(t, result.PDFURL)
	assert.Equal(t, "https://abienergie.icoll.fr/login?redirect=import&clientId=7&commercialId=17", result.LoginURL)
}

func TestQuoteService_RegisterClientAndCreateQuote_NoClientID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, crm, _ := newTestQuoteSvc(t, ctrl)
	ctx := context.Background()

	crm.EXPECT().Authenticate(ctx, gomock.Any()).Return("token", nil)
	crm.EXPECT().CreateClient(ctx, "token", gomock.Any()).Return(int64(0), nil)

	_, err := svc.RegisterClientAndCreateQuote(ctx, testClientData())

	assert.ErrorIs(t, err, ErrClientIDNotReceived)
}

func TestQuoteService_RegisterClientAndCreateQuote_AuthFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, crm, _ := newTestQuoteSvc(t, ctrl)
	ctx := context.Background()

	crm.EXPECT().Authenticate(ctx, gomock.Any()).Return("", adapter.ErrForbidden)

	_, err := svc.RegisterClientAndCreateQuote(ctx, testClientData())

	assert.ErrorIs(t, err, adapter.ErrForbidden)
}

func TestQuoteService_RegisterClientAndCreateQuote_UnauthorizedClearsToken(t *testing.T) {
	unauthorized := fmt.Errorf("%w: %w", adapter.ErrUpstreamStatus, adapter.ErrUnauthorized)

	tests := []struct {
		name  string
		setup func(crm *mock.MockCRMAdapter)
	}{
		{
			name: "client creation",
			setup: func(crm *mock.MockCRMAdapter) {
				crm.EXPECT().CreateClient(gomock.Any(), "cached", gomock.Any()).Return(int64(0), unauthorized)
			},
		},
		{
			name: "quote creation",
			setup: func(crm *mock.MockCRMAdapter) {
				crm.EXPECT().CreateClient(gomock.Any(), "cached", gomock.Any()).Return(int64(12), nil)
				crm.EXPECT().CreateQuote(gomock.Any(), "cached", gomock.Any()).Return(models.CRMQuoteData{}, unauthorized)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, crm, tokens := newTestQuoteSvc(t, ctrl)
			ctx := context.Background()

			require.NoError(t, tokens.Save(ctx, models.CRMToken{Value: "cached", ExpiresAt: testNow.Add(time.Hour)}))
			tt.setup(crm)

			_, err := svc.RegisterClientAndCreateQuote(ctx, testClientData())

			assert.ErrorIs(t, err, adapter.ErrUnauthorized)
			_, err = tokens.Load(ctx)
			assert.ErrorIs(t, err, store.ErrTokenNotFound)
		})
	}
}

func TestQuoteService_RegisterClientAndCreateQuote_OtherErrorsKeepToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, crm, tokens := newTestQuoteSvc(t, ctrl)
	ctx := context.Background()

	require.NoError(t, tokens.Save(ctx, models.CRMToken{Value: "cached", ExpiresAt: testNow.Add(time.Hour)}))
	crm.EXPECT().CreateClient(ctx, "cached", gomock.Any()).
		Return(int64(0), fmt.Errorf("%w: %w", adapter.ErrUpstreamStatus, adapter.ErrInternalServerError))

	_, err := svc.RegisterClientAndCreateQuote(ctx, testClientData())

	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
	stored, err := tokens.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cached", stored.Value)
}

// ── URLs ─────────────────────────────────────────────────────────────────────

func TestQuoteService_LoginURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestQuoteSvc(t, ctrl)

	tests := []struct {
		name         string
		clientID     int64
		commercialID string
		quoteID      *int64
		want         string
	}{
		{
			name:         "with quote",
			clientID:     1,
			commercialID: "17",
			quoteID:      ptr(int64(5)),
			want:         "https://abienergie.icoll.fr/login?redirect=import&clientId=1&commercialId=17&quoteId=5",
		},
		{
			name:         "without quote",
			clientID:     1,
			commercialID: "17",
			want:         "https://abienergie.icoll.fr/login?redirect=import&clientId=1&commercialId=17",
		},
		{
			name:         "zero quote",
			clientID:     1,
			commercialID: "17",
			quoteID:      ptr(int64(0)),
			want:         "https://abienergie.icoll.fr/login?redirect=import&clientId=1&commercialId=17",
		},
		{
			name:         "escaped commercial",
			clientID:     3,
			commercialID: "a b&c",
			want:         "https://abienergie.icoll.fr/login?redirect=import&clientId=3&commercialId=a+b%26c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.LoginURL(tt.clientID, tt.commercialID, tt.quoteID))
		})
	}
}

func TestQuoteService_LoginURL_ExistingQuery(t *testing.T) {
	cfg := testCRMConfig()
	cfg.LoginURL = "https://crm.example/login?lang=fr"
	svc := NewQuoteService(nil, store.NewMemoryTokenStore(), cfg, logger.Nop())

	assert.Equal(t, "https://crm.example/login?lang=fr&redirect=import&clientId=2&commercialId=9", svc.LoginURL(2, "9", nil))
}

func TestQuoteService_AuthURL(t *testing.T) {
	cfg := testCRMConfig()
	cfg.BaseURL = "http://localhost:3001/api/"
	svc := NewQuoteService(nil, store.NewMemoryTokenStore(), cfg, logger.Nop())

	assert.Equal(t, "http://localhost:3001/api/auth", svc.AuthURL())
}

// ── QuoteValidationService ───────────────────────────────────────────────────

func TestQuoteValidationService_RejectsInvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockQuoteService(ctrl)
	svc := NewQuoteValidationService().Wrap(inner)

	data := testClientData()
	data.CodePostal = "7500"
	data.Telephone = "12"

	_, err := svc.RegisterClientAndCreateQuote(context.Background(), data)

	require.ErrorIs(t, err, ErrInvalidClientData)
	var fieldErrs validators.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.ErrorIs(t, fieldErrs[validators.FieldCodePostal], validators.ErrInvalidPostalCode)
	assert.ErrorIs(t, fieldErrs[validators.FieldTelephone], validators.ErrInvalidPhone)
}

func TestQuoteValidationService_DelegatesValidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockQuoteService(ctrl)
	svc := NewQuoteValidationService().Wrap(inner)
	ctx := context.Background()

	want := models.QuoteResult{ClientID: 1}
	inner.EXPECT().RegisterClientAndCreateQuote(ctx, testClientData()).Return(want, nil)
	inner.EXPECT().AuthURL().Return("http://crm/auth")

	got, err := svc.RegisterClientAndCreateQuote(ctx, testClientData())

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "http://crm/auth", svc.AuthURL())
}
