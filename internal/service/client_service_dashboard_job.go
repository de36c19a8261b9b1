package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/heartbreaksandvodka/project-plusminus/internal/adapter"
	"github.com/heartbreaksandvodka/project-plusminus/internal/config"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

type clientDashboardJob struct {
	accountService ClientAccountService
	logger         *logger.Logger

	updates chan models.DashboardUpdate
	last    models.Dashboard

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientDashboardJob creates a job that calls GetDashboard on a ticker.
// The job is idle until Start is called.
func NewClientDashboardJob(accountService ClientAccountService, logger *logger.Logger) ClientDashboardJob {
	return &clientDashboardJob{
		accountService: accountService,
		logger:         logger,
		updates:        make(chan models.DashboardUpdate, 1),
	}
}

// Start implements ClientDashboardJob. The first refresh runs right away.
func (j *clientDashboardJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultDashboardInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		if j.refresh(jobCtx) {
			return
		}
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if j.refresh(jobCtx) {
					return
				}
			}
		}
	}()
}

func (j *clientDashboardJob) Updates() <-chan models.DashboardUpdate {
	return j.updates
}

// Stop implements ClientDashboardJob. Safe to call when the job is not
// running.
func (j *clientDashboardJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// refresh publishes one update and reports whether the job must stop.
func (j *clientDashboardJob) refresh(ctx context.Context) bool {
	dashboard, err := j.accountService.GetDashboard(ctx)
	if ctx.Err() != nil {
		return true
	}

	if err == nil {
		j.last = dashboard
	} else {
		j.logger.Warn().Err(err).Msg("dashboard refresh failed")
	}
	j.publish(models.DashboardUpdate{Dashboard: j.last, Err: err, At: time.Now()})

	return errors.Is(err, adapter.ErrSessionTerminated)
}

// publish replaces an undelivered update instead of blocking.
func (j *clientDashboardJob) publish(update models.DashboardUpdate) {
	for {
		select {
		case j.updates <- update:
			return
		default:
		}
		select {
		case <-j.updates:
		default:
		}
	}
}
