package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/solar-quote/internal/config"
	"github.com/MKhiriev/solar-quote/internal/logger"
	"github.com/MKhiriev/solar-quote/internal/utils"
	"github.com/MKhiriev/solar-quote/models"
)

const geocoderSearchPath = "/search/"

type httpGeocoderAdapter struct {
	client *utils.HTTPClient

	// limiter is nil when searches are not throttled.
	limiter *rate.Limiter

	logger *logger.Logger
}

// NewHTTPGeocoderAdapter constructs an HTTP/REST implementation of
// [GeocoderAdapter] targeting cfg.BaseURL.
//
// No client-level timeout is configured: the caller's context carries the
// lookup deadline, which spans several attempts.
//
// A positive cfg.RateLimit throttles searches to that many per second.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPGeocoderAdapter(cfg config.Geocoder, logger *logger.Logger) (GeocoderAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid geocoder base url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, 0)
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}

	adapter := &httpGeocoderAdapter{client: client, logger: logger}
	if cfg.RateLimit > 0 {
		adapter.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(1, int(cfg.RateLimit)))
	}

	return adapter, nil
}

// Search implements [GeocoderAdapter]. It issues
// GET /search/?q=<query>&limit=<limit>&autocomplete=1 and decodes the
// envelope. The "features" member is left raw for the caller to check.
func (g *httpGeocoderAdapter) Search(ctx context.Context, query string, limit int) (models.SearchResponse, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return models.SearchResponse{}, ctxErr
			}
			g.logger.Debug().Err(err).Str("query", query).Msg("geocoder rate limit reached")
			return models.SearchResponse{}, fmt.Errorf("%w: %w", ErrRateLimited, context.DeadlineExceeded)
		}
	}

	resp, err := newRequest(ctx, g.client).
		SetQueryParams(map[string]string{
			"q":            query,
			"limit":        strconv.Itoa(limit),
			"autocomplete": "1",
		}).
		Get(geocoderSearchPath)
	if err != nil {
		return models.SearchResponse{}, fmt.Errorf("geocoder search request: %w", err)
	}

	g.logger.Debug().
		Str("query", query).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("geocoder search")

	if err = mapHTTPError(resp); err != nil {
		return models.SearchResponse{}, err
	}

	var result models.SearchResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.SearchResponse{}, fmt.Errorf("%w: decode geocoder response: %w", ErrMalformedResponse, err)
	}

	return result, nil
}
