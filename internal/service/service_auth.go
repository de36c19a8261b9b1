package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
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

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification and the JWT token pair
// lifecycle. Passwords are stored as bcrypt hashes; refresh tokens are
// revoked through the token blacklist on logout.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// blacklist keeps the ids of revoked refresh tokens.
	blacklist store.TokenBlacklist

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration

	// passwordCost is the bcrypt cost used for new hashes.
	passwordCost int

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repositories and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, blacklist store.TokenBlacklist, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       userRepository,
		blacklist:            blacklist,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		passwordCost:         bcrypt.DefaultCost,
		now:                  time.Now,
		logger:               logger,
	}
}

// Register creates a new account and signs it in.
//
// Returns the created user with a fresh token pair or:
//   - ErrUserExists if the email is taken.
//   - a *validators.ValidationError on the username field if the username
//     is taken.
//   - a wrapped storage error if the repository call fails.
func (a *authService) Register(ctx context.Context, credentials models.RegisterCredentials) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), a.passwordCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AuthResponse{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        strings.ToLower(strings.TrimSpace(credentials.Email)),
		Username:     credentials.Username,
		FirstName:    credentials.FirstName,
		LastName:     credentials.LastName,
		PasswordHash: string(hash),
		IsActive:     true,
	})
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrUserExists, err)
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return models.AuthResponse{}, fmt.Errorf("%w: %w", err, validators.NewFieldError("username", app.MsgUsernameTaken))
	case err != nil:
		log.Err(err).Str("email", credentials.Email).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	tokens, err := a.issueTokenPair(user.ID)
	if err != nil {
		return models.AuthResponse{}, err
	}

	log.Info().Int64("user_id", user.ID).Msg("user registered")
	return models.AuthResponse{Message: app.MsgUserCreated, User: user, Tokens: tokens}, nil
}

// Login authenticates an existing user by email and password.
//
// The checks run in this order and stop at the first failure:
// ErrMissingFields, ErrUserNotFound, ErrIncorrectPassword, ErrInactiveUser.
func (a *authService) Login(ctx context.Context, credentials models.LoginCredentials) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(credentials.Email) == "" || credentials.Password == "" {
		return models.AuthResponse{}, ErrMissingFields
	}

	user, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.AuthResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Info().Int64("user_id", user.ID).Msg("wrong password")
		return models.AuthResponse{}, ErrIncorrectPassword
	}

	if !user.IsActive {
		return models.AuthResponse{}, ErrInactiveUser
	}

	tokens, err := a.issueTokenPair(user.ID)
	if err != nil {
		return models.AuthResponse{}, err
	}

	now := a.now()
	if err = a.userRepository.RecordLogin(ctx, user.ID, now); err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("failed to record login")
	} else {
		user.LastLogin = &now
		user.LoginCount++
	}

	return models.AuthResponse{Message: app.MsgLoginSuccessful, User: user, Tokens: tokens}, nil
}

// Logout revokes the refresh token. An empty token is accepted and does
// nothing, the same way the client treats a missing refresh token.
func (a *authService) Logout(ctx context.Context, userID int64, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	token, err := a.parse(refreshToken, models.RefreshTokenType)
	if err != nil {
		return err
	}
	if token.UserID != userID {
		return ErrTokenIsExpiredOrInvalid
	}

	if err = a.blacklist.Revoke(ctx, token); err != nil {
		logger.FromContext(ctx).Err(err).Str("jti", token.ID).Msg("failed to revoke refresh token")
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// Refresh returns a new access token for a valid, non-revoked refresh
// token.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.RefreshResponse, error) {
	token, err := a.parse(refreshToken, models.RefreshTokenType)
	if err != nil {
		return models.RefreshResponse{}, err
	}

	revoked, err := a.blacklist.IsRevoked(ctx, token.ID)
	if err != nil {
		return models.RefreshResponse{}, fmt.Errorf("blacklist lookup failed: %w", err)
	}
	if revoked {
		return models.RefreshResponse{}, ErrTokenRevoked
	}

	access, err := a.issue(token.UserID, models.AccessTokenType, a.accessTokenDuration)
	if err != nil {
		return models.RefreshResponse{}, err
	}

	return models.RefreshResponse{Access: access.String()}, nil
}

// ParseAccessToken validates and parses a raw access token. Any failure is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	return a.parse(tokenString, models.AccessTokenType)
}

func (a *authService) parse(tokenString string, tokenType models.TokenType) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, tokenType)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %v", ErrTokenIsExpiredOrInvalid, err)
	}
	return token, nil
}

func (a *authService) issueTokenPair(userID int64) (models.TokenPair, error) {
	refresh, err := a.issue(userID, models.RefreshTokenType, a.refreshTokenDuration)
	if err != nil {
		return models.TokenPair{}, err
	}
	access, err := a.issue(userID, models.AccessTokenType, a.accessTokenDuration)
	if err != nil {
		return models.TokenPair{}, err
	}
	return models.TokenPair{Access: access.String(), Refresh: refresh.String()}, nil
}

func (a *authService) issue(userID int64, tokenType models.TokenType, duration time.Duration) (models.Token, error) {
	token, err := utils.GenerateJWTToken(utils.TokenParams{
		Issuer:   a.tokenIssuer,
		UserID:   userID,
		Type:     tokenType,
		Duration: duration,
		SignKey:  a.tokenSignKey,
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}
