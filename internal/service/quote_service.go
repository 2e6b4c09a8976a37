// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/solar-quote/internal/adapter"
	"github.com/MKhiriev/solar-quote/internal/config"
	"github.com/MKhiriev/solar-quote/internal/logger"
	"github.com/MKhiriev/solar-quote/internal/store"
	"github.com/MKhiriev/solar-quote/internal/utils"
	"github.com/MKhiriev/solar-quote/models"
)

// Constant members of the CRM client and quote payloads.
const (
	crmClientType   = "PARTICULIER"
	crmClientOrigin = "Simulateur"

	crmSexMale   = "M"
	crmSexFemale = "F"

	crmSolarMaskYes = "1"
	crmSolarMaskNo  = "2"

	defaultOrientationID = 1
	defaultInclinaisonID = 1
)

type quoteService struct {
	crm    adapter.CRMAdapter
	tokens store.TokenStore
	cfg    config.CRM

	// mu serializes token refreshes so concurrent requests authenticate once.
	mu  sync.Mutex
	now func() time.Time

	logger *logger.Logger
}

// NewQuoteService returns a [QuoteService] authenticating with the
// credentials of cfg and keeping the bearer token in tokens.
func NewQuoteService(crm adapter.CRMAdapter, tokens store.TokenStore, cfg config.CRM, logger *logger.Logger) QuoteService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = config.DefaultCRMTokenTTL
	}

	return &quoteService{
		crm:    crm,
		tokens: tokens,
		cfg:    cfg,
		now:    time.Now,
		logger: logger,
	}
}

// GetToken implements [QuoteService]. A fresh token is kept for the
// configured TTL, or until its JWT "exp" claim when that comes first. Any
// authentication failure clears the stored token.
func (q *quoteService) GetToken(ctx context.Context) (string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	log := q.logger.With().Str("func", "quoteService.GetToken").Logger()

	token, err := q.tokens.Load(ctx)
	switch {
	case err == nil && token.Valid(q.now()):
		return token.Value, nil
	case err != nil && !errors.Is(err, store.ErrTokenNotFound):
		log.Warn().Err(err).Msg("failed to load crm token, authenticating")
	}

	value, err := q.crm.Authenticate(ctx, models.CRMCredentials{
		Username: q.cfg.Username,
		Password: q.cfg.Password,
	})
	if err == nil && value == "" {
		err = ErrTokenNotReceived
	}
	if err != nil {
		q.clearToken(ctx)
		return "", fmt.Errorf("crm authentication failed: %w", err)
	}

	now := q.now()
	token = models.CRMToken{
		Value:     value,
		ExpiresAt: utils.TokenExpiry(value, now.Add(q.cfg.TokenTTL)),
	}
	if err = q.tokens.Save(ctx, token); err != nil {
		log.Warn().Err(err).Msg("failed to save crm token")
	}

	log.Debug().Time("expires_at", token.ExpiresAt).Msg("crm token obtained")
	return value, nil
}

func (q *quoteService) TestConnection(ctx context.Context) bool {
	if _, err := q.GetToken(ctx); err != nil {
		q.logger.Error().Err(err).Msg("crm connection test failed")
		return false
	}
	return true
}

// RegisterClientAndCreateQuote implements [QuoteService]. data is expected to
// be valid already; see [NewQuoteValidationService].
func (q *quoteService) RegisterClientAndCreateQuote(ctx context.Context, data models.ClientData) (models.QuoteResult, error) {
	token, err := q.GetToken(ctx)
	if err != nil {
		return models.QuoteResult{}, err
	}

	clientID, err := q.crm.CreateClient(ctx, token, newCRMClient(data))
	if err != nil {
		q.clearTokenOnUnauthorized(ctx, err)
		return models.QuoteResult{}, fmt.Errorf("crm client creation failed: %w", err)
	}
	if clientID == 0 {
		return models.QuoteResult{}, ErrClientIDNotReceived
	}

	quote, err := q.crm.CreateQuote(ctx, token, newCRMQuote(clientID, data))
	if err != nil {
		q.clearTokenOnUnauthorized(ctx, err)
		return models.QuoteResult{}, fmt.Errorf("crm quote creation failed for client %d: %w", clientID, err)
	}

	q.logger.Info().
		Int64("client_id", clientID).
		Str("commercial_id", data.CommercialID).
		Msg("crm client and quote created")

	result := models.QuoteResult{
		ClientID: clientID,
		QuoteID:  quote.DevisID,
		QuoteURL: quote.QuoteURL,
		PDFURL:   quote.FilePath,
	}
	result.LoginURL = q.LoginURL(clientID, data.CommercialID, result.QuoteID)

	return result, nil
}

// LoginURL implements [QuoteService]. quoteID is added only when set and not
// zero.
func (q *quoteService) LoginURL(clientID int64, commercialID string, quoteID *int64) string {
	var b strings.Builder
	b.WriteString(q.cfg.LoginURL)
	if strings.Contains(q.cfg.LoginURL, "?") {
		b.WriteByte('&')
	} else {
		b.WriteByte('?')
	}

	b.WriteString("redirect=import")
	b.WriteString("&clientId=" + strconv.FormatInt(clientID, 10))
	b.WriteString("&commercialId=" + url.QueryEscape(commercialID))
	if quoteID != nil && *quoteID != 0 {
		b.WriteString("&quoteId=" + strconv.FormatInt(*quoteID, 10))
	}

	return b.String()
}

func (q *quoteService) AuthURL() string {
	return strings.TrimRight(q.cfg.BaseURL, "/") + "/auth"
}

func (q *quoteService) clearTokenOnUnauthorized(ctx context.Context, err error) {
	if errors.Is(err, adapter.ErrUnauthorized) {
		q.mu.Lock()
		defer q.mu.Unlock()
		q.clearToken(ctx)
	}
}

func (q *quoteService) clearToken(ctx context.Context) {
	if err := q.tokens.Clear(ctx); err != nil {
		q.logger.Warn().Err(err).Msg("failed to clear crm token")
	}
}

func newCRMClient(data models.ClientData) models.CRMClient {
	sex := crmSexFemale
	if data.Civilite == models.CivilityMister {
		sex = crmSexMale
	}

	return models.CRMClient{
		TypeClient:    crmClientType,
		Sexe:          sex,
		Nom:           data.Nom,
		Prenom:        data.Prenom,
		Adresse:       data.Adresse,
		CodePostal:    data.CodePostal,
		Ville:         data.Ville,
		Telephone:     data.Telephone,
		Email:         data.Email,
		OrigineClient: crmClientOrigin,
		Package:       data.Package,
		CommercialID:  data.CommercialID,
	}
}

func newCRMQuote(clientID int64, data models.ClientData) models.CRMQuote {
	quote := models.CRMQuote{
		ClientID:      clientID,
		CommercialID:  data.CommercialID,
		PackageID:     data.Package,
		OrientationID: data.Orientation,
		InclinaisonID: data.Inclinaison,
		MasqueSolaire: crmSolarMaskNo,
		RevenuFiscal:  data.RevenuFiscal,
	}
	if quote.OrientationID == 0 {
		quote.OrientationID = defaultOrientationID
	}
	if quote.InclinaisonID == 0 {
		quote.InclinaisonID = defaultInclinaisonID
	}
	if data.MasqueSolaire {
		quote.MasqueSolaire = crmSolarMaskYes
	}
	return quote
}
