package workers

import (
	"context"
	"time"

	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/metrics"
	"github.com/heartbreaksandvodka/project-plusminus/internal/store"
)

// blacklistPurgeWorker periodically drops blacklist entries of refresh
// tokens that have expired anyway.
type blacklistPurgeWorker struct {
	blacklist store.TokenBlacklist
	interval  time.Duration
	metrics   *metrics.Metrics
	logger    *logger.Logger
	now       func() time.Time
}

func NewBlacklistPurgeWorker(blacklist store.TokenBlacklist, interval time.Duration, m *metrics.Metrics, logger *logger.Logger) Worker {
	return &blacklistPurgeWorker{
		blacklist: blacklist,
		interval:  interval,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// Run purges on every tick until ctx is done. A non-positive interval
// disables the worker.
func (w *blacklistPurgeWorker) Run(ctx context.Context) error {
	if w.interval <= 0 {
		w.logger.Info().Msg("blacklist purge is disabled")
		return nil
	}

	t := time.NewTicker(w.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.purge(ctx)
		}
	}
}

func (w *blacklistPurgeWorker) purge(ctx context.Context) {
	n, err := w.blacklist.PurgeExpired(ctx, w.now().UTC())
	if err != nil {
		w.logger.Err(err).Msg("blacklist purge failed")
		return
	}
	if n > 0 {
		w.metrics.BlacklistPurged.Add(float64(n))
		w.logger.Debug().Int64("purged", n).Msg("expired blacklist entries removed")
	}
}
