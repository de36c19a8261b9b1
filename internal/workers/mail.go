package workers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/heartbreaksandvodka/project-plusminus/internal/config"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/metrics"
	"github.com/heartbreaksandvodka/project-plusminus/models"
	"github.com/hibiken/asynq"
)

// TaskPasswordResetMail is the asynq task type of a password reset mail.
const TaskPasswordResetMail = "email:password_reset"

const mailMaxRetry = 3

// NewPasswordResetTask encodes mail as a queue task.
func NewPasswordResetTask(mail models.PasswordResetMail) (*asynq.Task, error) {
	payload, err := json.Marshal(mail)
	if err != nil {
		return nil, fmt.Errorf("failed to encode mail payload: %w", err)
	}
	return asynq.NewTask(TaskPasswordResetMail, payload), nil
}

type asynqMailDispatcher struct {
	client  TaskEnqueuer
	queue   string
	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewAsynqMailDispatcher(client TaskEnqueuer, queue string, m *metrics.Metrics, logger *logger.Logger) MailDispatcher {
	if queue == "" {
		queue = config.DefaultMailQueue
	}
	return &asynqMailDispatcher{client: client, queue: queue, metrics: m, logger: logger}
}

func (d *asynqMailDispatcher) DispatchPasswordReset(ctx context.Context, mail models.PasswordResetMail) error {
	task, err := NewPasswordResetTask(mail)
	if err != nil {
		return err
	}

	info, err := d.client.EnqueueContext(ctx, task, asynq.Queue(d.queue), asynq.MaxRetry(mailMaxRetry))
	if err != nil {
		d.metrics.MailTasks.WithLabelValues(metrics.MailFailed).Inc()
		return fmt.Errorf("could not enqueue task %s: %w", TaskPasswordResetMail, err)
	}

	d.metrics.MailTasks.WithLabelValues(metrics.MailEnqueued).Inc()
	d.logger.Info().
		Str("id", info.ID).
		Str("type", info.Type).
		Str("queue", info.Queue).
		Msg("enqueued task")
	return nil
}

// directMailDispatcher sends the mail in the request goroutine.
type directMailDispatcher struct {
	sender  MailSender
	metrics *metrics.Metrics
}

func NewDirectMailDispatcher(sender MailSender, m *metrics.Metrics) MailDispatcher {
	return &directMailDispatcher{sender: sender, metrics: m}
}

func (d *directMailDispatcher) DispatchPasswordReset(ctx context.Context, mail models.PasswordResetMail) error {
	if err := d.sender.SendPasswordReset(ctx, mail); err != nil {
		d.metrics.MailTasks.WithLabelValues(metrics.MailFailed).Inc()
		return err
	}
	d.metrics.MailTasks.WithLabelValues(metrics.MailDelivered).Inc()
	return nil
}

// NewPasswordResetHandler processes TaskPasswordResetMail tasks. A payload
// that cannot be decoded is not retried.
func NewPasswordResetHandler(sender MailSender, m *metrics.Metrics, log *logger.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var mail models.PasswordResetMail
		if err := json.Unmarshal(t.Payload(), &mail); err != nil {
			log.Err(err).Str("type", t.Type()).Msg("malformed mail payload")
			m.MailTasks.WithLabelValues(metrics.MailFailed).Inc()
			return fmt.Errorf("json.Unmarshal failed: %w", asynq.SkipRetry)
		}

		if err := sender.SendPasswordReset(ctx, mail); err != nil {
			m.MailTasks.WithLabelValues(metrics.MailFailed).Inc()
			return fmt.Errorf("password reset mail to user %d: %w", mail.UserID, err)
		}

		m.MailTasks.WithLabelValues(metrics.MailDelivered).Inc()
		return nil
	}
}

// mailWorker runs the asynq server consuming the mail queue.
type mailWorker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	logger *logger.Logger
}

func NewMailWorker(redisOpt asynq.RedisConnOpt, cfg config.Workers, handler asynq.Handler, log *logger.Logger) Worker {
	queue := cfg.MailQueue
	if queue == "" {
		queue = config.DefaultMailQueue
	}
	concurrency := cfg.MailConcurrency
	if concurrency <= 0 {
		concurrency = config.DefaultMailConcurrency
	}

	mux := asynq.NewServeMux()
	mux.Handle(TaskPasswordResetMail, handler)

	return &mailWorker{
		server: asynq.NewServer(redisOpt, asynq.Config{
			Concurrency: concurrency,
			Queues:      map[string]int{queue: 1},
			Logger:      asynqLogger{log},
		}),
		mux:    mux,
		logger: log,
	}
}

func (w *mailWorker) Run(ctx context.Context) error {
	if err := w.server.Start(w.mux); err != nil {
		return fmt.Errorf("failed to start mail worker: %w", err)
	}
	w.logger.Info().Msg("mail worker started")

	<-ctx.Done()
	w.server.Shutdown()
	w.logger.Info().Msg("mail worker stopped")
	return nil
}

// asynqLogger routes asynq's own log lines into zerolog.
type asynqLogger struct {
	log *logger.Logger
}

func (l asynqLogger) Debug(args ...any) { l.log.Debug().Msg(fmt.Sprint(args...)) }
func (l asynqLogger) Info(args ...any)  { l.log.Info().Msg(fmt.Sprint(args...)) }
func (l asynqLogger) Warn(args ...any)  { l.log.Warn().Msg(fmt.Sprint(args...)) }
func (l asynqLogger) Error(args ...any) { l.log.Error().Msg(fmt.Sprint(args...)) }
func (l asynqLogger) Fatal(args ...any) { l.log.Fatal().Msg(fmt.Sprint(args...)) }
