package workers

import (
	"context"
	"errors"
	"io"

	"github.com/heartbreaksandvodka/project-plusminus/internal/config"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/metrics"
	"github.com/heartbreaksandvodka/project-plusminus/internal/store"
	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
	closers []io.Closer
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// NewServerWorkers sets up the server jobs and returns them together with
// the dispatcher the password service hands reset mails to. With Redis
// configured mails go through the asynq queue, otherwise they are sent in
// place.
func NewServerWorkers(cfg *config.ServerConfig, blacklist store.TokenBlacklist, m *metrics.Metrics, log *logger.Logger) (*Workers, MailDispatcher) {
	sender := NewLogMailSender(log.WithComponent("mail_sender"))
	w := NewWorkers(NewBlacklistPurgeWorker(blacklist, cfg.Workers.BlacklistPurgeInterval, m, log.WithComponent("blacklist_purge")))

	if !cfg.RedisEnabled() {
		log.Info().Msg("redis is not configured, password reset mails are sent without a queue")
		return w, NewDirectMailDispatcher(sender, m)
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Storage.Redis.Address,
		Password: cfg.Storage.Redis.Password,
		DB:       cfg.Storage.Redis.DB,
	}
	client := asynq.NewClient(redisOpt)
	mailLog := log.WithComponent("mail_worker")

	w.workers = append(w.workers, NewMailWorker(redisOpt, cfg.Workers, NewPasswordResetHandler(sender, m, mailLog), mailLog))
	w.closers = append(w.closers, client)

	return w, NewAsynqMailDispatcher(client, cfg.Workers.MailQueue, m, mailLog)
}

// Run starts every worker and waits for all of them. The first failing
// worker cancels the others.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}
	return g.Wait()
}

// Close releases the queue client.
func (w *Workers) Close() error {
	var errs []error
	for _, c := range w.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
