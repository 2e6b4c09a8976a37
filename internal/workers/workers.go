package workers

import (
	"context"

	"github.com/MKhiriev/solar-quote/internal/config"
	"github.com/MKhiriev/solar-quote/internal/logger"
	"github.com/MKhiriev/solar-quote/internal/store"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// NewWorkersFromConfig enables the cache janitor when the suggestion cache
// needs purging and the token refresher when the CRM has credentials. A zero
// interval disables a worker.
func NewWorkersFromConfig(cfg *config.StructuredConfig, cache store.SuggestionCache, tokens TokenProvider, logger *logger.Logger) *Workers {
	ws := NewWorkers(logger)

	if purger, ok := cache.(store.Purger); ok && cfg.Workers.CacheJanitorInterval > 0 {
		ws.workers = append(ws.workers, NewCacheJanitor(purger, cfg.Workers.CacheJanitorInterval, logger))
	}
	if cfg.Workers.TokenRefreshInterval > 0 && cfg.CRM.Username != "" {
		ws.workers = append(ws.workers, NewTokenRefresher(tokens, cfg.Workers.TokenRefreshInterval, logger))
	}

	return ws
}

// Len returns the number of enabled workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and waits for all of them to return. The first
// error cancels the others.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}

	w.logger.Info().Int("workers", len(w.workers)).Msg("background workers started")
	err := g.Wait()
	w.logger.Info().Msg("background workers stopped")
	return err
}
