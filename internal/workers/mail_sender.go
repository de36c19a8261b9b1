package workers

import (
	"context"

	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// logMailSender writes the mail to the log instead of sending it. There
// is no SMTP integration; the reset link is also returned by the API.
type logMailSender struct {
	logger *logger.Logger
}

func NewLogMailSender(logger *logger.Logger) MailSender {
	return &logMailSender{logger: logger}
}

func (s *logMailSender) SendPasswordReset(_ context.Context, mail models.PasswordResetMail) error {
	s.logger.Info().
		Int64("user_id", mail.UserID).
		Str("to", mail.Email).
		Str("reset_link", mail.ResetLink).
		Time("expires_at", mail.ExpiresAt).
		Msg("password reset mail delivered")
	return nil
}
