// Package workers runs the server's background jobs: delivery of password
// reset mails through an asynq queue and the periodic purge of expired
// entries from the refresh token blacklist.
package workers

import (
	"context"

	"github.com/heartbreaksandvodka/project-plusminus/models"
	"github.com/hibiken/asynq"
)

// Worker is a background job. Run blocks until ctx is cancelled or the job
// fails to start.
type Worker interface {
	Run(ctx context.Context) error
}

// MailDispatcher hands a password reset mail over for delivery.
type MailDispatcher interface {
	DispatchPasswordReset(ctx context.Context, mail models.PasswordResetMail) error
}

// MailSender delivers a password reset mail to the user.
type MailSender interface {
	SendPasswordReset(ctx context.Context, mail models.PasswordResetMail) error
}

// TaskEnqueuer is the part of *asynq.Client the dispatcher needs.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}
