package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartbreaksandvodka/project-plusminus/internal/adapter"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/store"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

type clientAuthService struct {
	storage store.SessionStorage
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(storage store.SessionStorage, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{storage: storage, adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Login(ctx context.Context, credentials models.LoginCredentials) (models.AuthResponse, error) {
	resp, err := a.adapter.Login(ctx, credentials)
	if err != nil {
		return models.AuthResponse{}, mapAdapterError(err)
	}

	if err = a.storage.SaveSession(ctx, resp.Tokens, resp.User); err != nil {
		return models.AuthResponse{}, fmt.Errorf("failed to persist session: %w", err)
	}

	a.logger.Info().Int64("user_id", resp.User.ID).Msg("logged in")
	return resp, nil
}

func (a *clientAuthService) Register(ctx context.Context, credentials models.RegisterCredentials) (models.AuthResponse, error) {
	resp, err := a.adapter.Register(ctx, credentials)
	if err != nil {
		return models.AuthResponse{}, mapAdapterError(err)
	}

	if err = a.storage.SaveSession(ctx, resp.Tokens, resp.User); err != nil {
		return models.AuthResponse{}, fmt.Errorf("failed to persist session: %w", err)
	}

	a.logger.Info().Int64("user_id", resp.User.ID).Msg("registered")
	return resp, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	tokens, err := a.storage.LoadTokens(ctx)
	switch {
	case err == nil && tokens.Refresh != "":
		if err = a.adapter.Logout(ctx, tokens.Refresh); err != nil {
			a.logger.Warn().Err(err).Msg("server logout failed, clearing local session anyway")
		}
	case err != nil && !errors.Is(err, store.ErrSessionNotFound):
		a.logger.Warn().Err(err).Msg("failed to read tokens on logout")
	}

	if err = a.storage.Clear(context.WithoutCancel(ctx)); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.storage.Snapshot(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to read session: %w", err)
	}
	if !session.IsAuthenticated() {
		return models.Session{}, ErrNotLoggedIn
	}

	user, err := a.adapter.GetProfile(ctx)
	switch {
	case err == nil:
		if err = a.storage.SaveUser(ctx, user); err != nil {
			a.logger.Warn().Err(err).Msg("failed to cache profile")
		}
		session.User = &user
		return session, nil

	case errors.Is(err, adapter.ErrNetwork):
		return session, err

	case errors.Is(err, adapter.ErrSessionTerminated):
		return models.Session{}, fmt.Errorf("%w: %w", ErrNotLoggedIn, err)
	}

	a.logger.Info().Err(err).Msg("stored session rejected, clearing")
	if clearErr := a.storage.Clear(ctx); clearErr != nil {
		a.logger.Err(clearErr).Msg("failed to clear rejected session")
	}
	return models.Session{}, fmt.Errorf("%w: %w", ErrNotLoggedIn, err)
}

func (a *clientAuthService) Session(ctx context.Context) (models.Session, error) {
	return a.storage.Snapshot(ctx)
}

func (a *clientAuthService) GetProfile(ctx context.Context) (models.User, error) {
	return a.cacheUser(ctx)(a.adapter.GetProfile(ctx))
}

func (a *clientAuthService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	return a.cacheUser(ctx)(a.adapter.UpdateProfile(ctx, update))
}

func (a *clientAuthService) UploadProfilePicture(ctx context.Context, picture models.ProfilePicture) (models.User, error) {
	return a.cacheUser(ctx)(a.adapter.UploadProfilePicture(ctx, picture))
}

func (a *clientAuthService) ChangePassword(ctx context.Context, change models.PasswordChange) (models.MessageResponse, error) {
	resp, err := a.adapter.ChangePassword(ctx, change)
	return resp, mapAdapterError(err)
}

func (a *clientAuthService) ForgotPassword(ctx context.Context, email string) (models.PasswordResetResponse, error) {
	resp, err := a.adapter.ForgotPassword(ctx, email)
	return resp, mapAdapterError(err)
}

func (a *clientAuthService) ResetPassword(ctx context.Context, reset models.PasswordReset) (models.MessageResponse, error) {
	resp, err := a.adapter.ResetPassword(ctx, reset)
	return resp, mapAdapterError(err)
}

// cacheUser stores a successfully fetched profile as the session user. A
// failed cache write is logged only; the fetched profile is still returned.
func (a *clientAuthService) cacheUser(ctx context.Context) func(models.User, error) (models.User, error) {
	return func(user models.User, err error) (models.User, error) {
		if err != nil {
			return models.User{}, mapAdapterError(err)
		}
		if err = a.storage.SaveUser(ctx, user); err != nil {
			a.logger.Warn().Err(err).Msg("failed to cache profile")
		}
		return user, nil
	}
}
