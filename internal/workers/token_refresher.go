package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/solar-quote/internal/logger"
)

// TokenRefresher keeps the CRM token warm so that quote requests rarely pay
// for an authentication round trip. Failures are logged and retried on the
// next tick.
type TokenRefresher struct {
	tokens   TokenProvider
	interval time.Duration
	logger   *logger.Logger
}

func NewTokenRefresher(tokens TokenProvider, interval time.Duration, logger *logger.Logger) *TokenRefresher {
	return &TokenRefresher{tokens: tokens, interval: interval, logger: logger}
}

func (r *TokenRefresher) Run(ctx context.Context) error {
	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *TokenRefresher) refresh(ctx context.Context) {
	if _, err := r.tokens.GetToken(ctx); err != nil && ctx.Err() == nil {
		r.logger.Warn().Err(err).Msg("crm token refresh failed")
	}
}
