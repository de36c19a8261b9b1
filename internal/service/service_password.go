package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/heartbreaksandvodka/project-plusminus/internal/app"
	"github.com/heartbreaksandvodka/project-plusminus/internal/config"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/store"
	"github.com/heartbreaksandvodka/project-plusminus/internal/utils"
	"github.com/heartbreaksandvodka/project-plusminus/internal/validators"
	"github.com/heartbreaksandvodka/project-plusminus/models"
	"golang.org/x/crypto/bcrypt"
)

// passwordService changes and resets passwords.
//
// Reset tokens are random UUIDs. Only their HMAC digest (keyed with the
// token sign key) is stored, so the raw token exists in the response and in
// the mail only.
type passwordService struct {
	userRepository  store.UserRepository
	resetRepository store.ResetTokenRepository
	mail            MailDispatcher

	hashKey            string
	resetTokenDuration time.Duration
	resetLinkBase      string
	passwordCost       int

	newToken func() string
	now      func() time.Time

	logger *logger.Logger
}

func NewPasswordService(
	userRepository store.UserRepository,
	resetRepository store.ResetTokenRepository,
	mail MailDispatcher,
	cfg config.App,
	logger *logger.Logger,
) PasswordService {
	return &passwordService{
		userRepository:     userRepository,
		resetRepository:    resetRepository,
		mail:               mail,
		hashKey:            cfg.TokenSignKey,
		resetTokenDuration: cfg.ResetTokenDuration,
		resetLinkBase:      cfg.ResetLinkBase,
		passwordCost:       bcrypt.DefaultCost,
		newToken:           utils.NewResetToken,
		now:                time.Now,
		logger:             logger,
	}
}

func (p *passwordService) ChangePassword(ctx context.Context, userID int64, change models.PasswordChange) error {
	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user lookup failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(change.CurrentPassword)); err != nil {
		return fmt.Errorf("%w: %w", ErrCurrentPasswordIncorrect,
			validators.NewFieldError("current_password", app.MsgCurrentPasswordIncorrect))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(change.NewPassword), p.passwordCost)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = p.userRepository.UpdatePassword(ctx, userID, string(hash)); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}
	return nil
}

// ForgotPassword invalidates earlier reset tokens of the user, creates a new
// one and hands the reset mail to the dispatcher. A failed dispatch is
// logged only: the link is returned to the caller either way.
func (p *passwordService) ForgotPassword(ctx context.Context, request models.PasswordResetRequest) (models.PasswordResetResponse, error) {
	log := logger.FromContext(ctx)

	user, err := p.userRepository.FindUserByEmail(ctx, request.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.PasswordResetResponse{}, fmt.Errorf("%w: %w", ErrNoUserWithEmail,
			validators.NewFieldError("email", app.MsgNoUserWithEmail))
	}
	if err != nil {
		return models.PasswordResetResponse{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if err = p.resetRepository.InvalidateUserTokens(ctx, user.ID); err != nil {
		return models.PasswordResetResponse{}, fmt.Errorf("failed to invalidate reset tokens: %w", err)
	}

	raw := p.newToken()
	now := p.now()
	token, err := p.resetRepository.CreateResetToken(ctx, models.ResetToken{
		UserID:    user.ID,
		Token:     utils.TokenDigest(raw, p.hashKey),
		CreatedAt: now,
		ExpiresAt: now.Add(p.resetTokenDuration),
	})
	if err != nil {
		return models.PasswordResetResponse{}, fmt.Errorf("failed to create reset token: %w", err)
	}

	link := p.resetLink(raw)
	err = p.mail.DispatchPasswordReset(ctx, models.PasswordResetMail{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		ResetLink: link,
		ExpiresAt: token.ExpiresAt,
	})
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("password reset mail dispatch failed")
	}

	return models.PasswordResetResponse{
		Message:   app.MsgPasswordResetEmailSent,
		ResetLink: link,
		Token:     raw,
	}, nil
}

func (p *passwordService) ResetPassword(ctx context.Context, reset models.PasswordReset) error {
	token, err := p.resetRepository.FindResetToken(ctx, utils.TokenDigest(reset.Token, p.hashKey))
	if errors.Is(err, store.ErrResetTokenNotFound) {
		return fmt.Errorf("%w: %w", ErrInvalidResetToken, validators.NewFieldError("token", app.MsgInvalidToken))
	}
	if err != nil {
		return fmt.Errorf("reset token lookup failed: %w", err)
	}

	if !token.IsValid(p.now()) {
		return fmt.Errorf("%w: %w", ErrInvalidResetToken, validators.NewFieldError("token", app.MsgInvalidOrExpiredToken))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reset.NewPassword), p.passwordCost)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	err = p.resetRepository.ConsumeResetToken(ctx, token, string(hash))
	if errors.Is(err, store.ErrResetTokenUsed) {
		return fmt.Errorf("%w: %w", ErrInvalidResetToken, validators.NewFieldError("token", app.MsgInvalidOrExpiredToken))
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", token.UserID).Msg("password reset failed")
		return fmt.Errorf("password reset failed: %w", err)
	}
	return nil
}

func (p *passwordService) resetLink(token string) string {
	return p.resetLinkBase + "?token=" + url.QueryEscape(token)
}
