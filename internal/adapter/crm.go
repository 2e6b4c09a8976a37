package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/MKhiriev/solar-quote/internal/config"
	"github.com/MKhiriev/solar-quote/internal/logger"
	"github.com/MKhiriev/solar-quote/internal/utils"
	"github.com/MKhiriev/solar-quote/models"
	"github.com/go-resty/resty/v2"
)

const (
	crmAuthPath    = "/auth"
	crmClientsPath = "/clients"
	crmQuotesPath  = "/devis"
)

// crmEnvelope is the {"response": {"data": ...}} wrapper of every CRM answer.
type crmEnvelope[T any] struct {
	Response struct {
		Data T `json:"data"`
	} `json:"response"`
}

// crmID accepts identifiers encoded either as JSON numbers or as numeric
// strings. null and "" decode to 0.
type crmID int64

func (id *crmID) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*id = 0
		return nil
	}

	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid crm id %q: %w", b, err)
	}
	*id = crmID(v)
	return nil
}

type crmAuthData struct {
	Token string `json:"token"`
}

type crmClientsRequest struct {
	Clients []models.CRMClient `json:"clients"`
}

type crmClientData struct {
	ID crmID `json:"id"`
}

type crmQuoteData struct {
	DevisID  *crmID  `json:"devisId"`
	QuoteURL *string `json:"quoteUrl"`
	FilePath *string `json:"filePath"`
}

type httpCRMAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPCRMAdapter constructs an HTTP/REST implementation of [CRMAdapter]
// targeting cfg.BaseURL, with cfg.RequestTimeout applied to every call.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPCRMAdapter(cfg config.CRM, logger *logger.Logger) (CRMAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid crm base url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetHeader("Content-Type", "application/json")

	return &httpCRMAdapter{client: client, logger: logger}, nil
}

// Authenticate implements [CRMAdapter]. It POSTs the credentials to
// POST /auth and returns response.data.token.
func (c *httpCRMAdapter) Authenticate(ctx context.Context, credentials models.CRMCredentials) (string, error) {
	resp, err := newRequest(ctx, c.client).
		SetBody(credentials).
		Post(crmAuthPath)
	if err != nil {
		return "", fmt.Errorf("crm auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var envelope crmEnvelope[crmAuthData]
	if err = decodeCRM(resp, &envelope); err != nil {
		return "", err
	}

	return envelope.Response.Data.Token, nil
}

// CreateClient implements [CRMAdapter]. It POSTs {"clients": [client]} to
// POST /clients and returns response.data[0].id.
func (c *httpCRMAdapter) CreateClient(ctx context.Context, token string, client models.CRMClient) (int64, error) {
	resp, err := c.authedRequest(ctx, token).
		SetBody(crmClientsRequest{Clients: []models.CRMClient{client}}).
		Post(crmClientsPath)
	if err != nil {
		return 0, fmt.Errorf("crm create client request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var envelope crmEnvelope[[]crmClientData]
	if err = decodeCRM(resp, &envelope); err != nil {
		return 0, err
	}
	if len(envelope.Response.Data) == 0 {
		return 0, nil
	}

	c.logger.Debug().Int64("client_id", int64(envelope.Response.Data[0].ID)).Msg("crm client created")
	return int64(envelope.Response.Data[0].ID), nil
}

// CreateQuote implements [CRMAdapter]. It POSTs quote to POST /devis and
// returns response.data.
func (c *httpCRMAdapter) CreateQuote(ctx context.Context, token string, quote models.CRMQuote) (models.CRMQuoteData, error) {
	resp, err := c.authedRequest(ctx, token).
		SetBody(quote).
		Post(crmQuotesPath)
	if err != nil {
		return models.CRMQuoteData{}, fmt.Errorf("crm create quote request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CRMQuoteData{}, err
	}

	var envelope crmEnvelope[*crmQuoteData]
	if err = decodeCRM(resp, &envelope); err != nil {
		return models.CRMQuoteData{}, err
	}

	data := envelope.Response.Data
	if data == nil {
		return models.CRMQuoteData{}, nil
	}

	result := models.CRMQuoteData{QuoteURL: data.QuoteURL, FilePath: data.FilePath}
	if data.DevisID != nil {
		id := int64(*data.DevisID)
		result.DevisID = &id
	}
	return result, nil
}

func (c *httpCRMAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	req := newRequest(ctx, c.client)
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// decodeCRM leaves v untouched for an empty 2xx body.
func decodeCRM(resp *resty.Response, v any) error {
	if len(bytes.TrimSpace(resp.Body())) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w: decode crm response: %w", ErrMalformedResponse, err)
	}
	return nil
}
