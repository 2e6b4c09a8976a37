// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/solar-quote/internal/logger"
	"github.com/MKhiriev/solar-quote/internal/store"
)

// CacheJanitor periodically drops expired address suggestions from caches
// that do not expire entries on their own.
type CacheJanitor struct {
	purger   store.Purger
	interval time.Duration
	logger   *logger.Logger
}

func NewCacheJanitor(purger store.Purger, interval time.Duration, logger *logger.Logger) *CacheJanitor {
	return &CacheJanitor{purger: purger, interval: interval, logger: logger}
}

func (j *CacheJanitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			purged, err := j.purger.PurgeExpired(ctx)
			if err != nil {
				j.logger.Err(err).Msg("purging expired suggestions failed")
				continue
			}
			if purged > 0 {
				j.logger.Debug().Int("purged", purged).Msg("expired suggestions purged")
			}
		}
	}
}
