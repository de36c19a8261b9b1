package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/heartbreaksandvodka/project-plusminus/internal/config"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/mock"
	"github.com/heartbreaksandvodka/project-plusminus/internal/store"
	"github.com/heartbreaksandvodka/project-plusminus/internal/validators"
	"github.com/heartbreaksandvodka/project-plusminus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAppConfig = config.App{
	TokenSignKey:         "secret",
	TokenIssuer:          "plusminus-test",
	AccessTokenDuration:  time.Minute,
	RefreshTokenDuration: time.Hour,
	ResetTokenDuration:   time.Hour,
	ResetLinkBase:        "http://front/reset-password",
}

// newTestAuthSvc builds an authService with a mocked user repository and a
// real in-memory blacklist.
func newTestAuthSvc(t *testing.T) (*authService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(users, store.NewMemoryBlacklist(), testAppConfig, logger.Nop()).(*authService)
	svc.passwordCost = bcrypt.MinCost
	return svc, users
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func registerCredentials() models.RegisterCredentials {
	return models.RegisterCredentials{
		Email:           "Ada@Example.com",
		Username:        "ada",
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Password:        "password123",
		PasswordConfirm: "password123",
	}
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	svc, users := newTestAuthSvc(t)
	ctx := context.Background()

	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "ada@example.com", u.Email)
			assert.True(t, u.IsActive)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")))
			u.ID = 7
			return u, nil
		})

	resp, err := svc.Register(ctx, registerCredentials())
	require.NoError(t, err)
	assert.Equal(t, "User created successfully", resp.Message)
	assert.Equal(t, int64(7), resp.User.ID)

	access, err := svc.ParseAccessToken(ctx, resp.Tokens.Access)
	require.NoError(t, err)
	assert.Equal(t, int64(7), access.UserID)

	_, err = svc.ParseAccessToken(ctx, resp.Tokens.Refresh)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid, "refresh token must not pass as access token")
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	svc, users := newTestAuthSvc(t)
	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(context.Background(), registerCredentials())
	assert.ErrorIs(t, err, ErrUserExists)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	svc, users := newTestAuthSvc(t)
	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.Register(context.Background(), registerCredentials())

	var verr *validators.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "username")
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	active := models.User{ID: 3, Email: "ada@example.com", IsActive: true}
	active.PasswordHash = hashed(t, "password123")
	inactive := active
	inactive.IsActive = false

	tests := []struct {
		name    string
		creds   models.LoginCredentials
		setup   func(users *mock.MockUserRepository)
		wantErr error
	}{
		{
			name:    "missing password",
			creds:   models.LoginCredentials{Email: "ada@example.com"},
			setup:   func(*mock.MockUserRepository) {},
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing email",
			creds:   models.LoginCredentials{Email: "  ", Password: "x"},
			setup:   func(*mock.MockUserRepository) {},
			wantErr: ErrMissingFields,
		},
		{
			name:  "unknown email",
			creds: models.LoginCredentials{Email: "nobody@example.com", Password: "x"},
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().FindUserByEmail(gomock.Any(), "nobody@example.com").Return(models.User{}, store.ErrNoUserWasFound)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name:  "wrong password",
			creds: models.LoginCredentials{Email: "ada@example.com", Password: "wrong"},
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(active, nil)
			},
			wantErr: ErrIncorrectPassword,
		},
		{
			name:  "wrong password on inactive account reports the password",
			creds: models.LoginCredentials{Email: "ada@example.com", Password: "wrong"},
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantErr: ErrIncorrectPassword,
		},
		{
			name:  "inactive",
			creds: models.LoginCredentials{Email: "ada@example.com", Password: "password123"},
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantErr: ErrInactiveUser,
		},
		{
			name:  "storage failure",
			creds: models.LoginCredentials{Email: "ada@example.com", Password: "password123"},
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrDatabaseUnavailable)
			},
			wantErr: store.ErrDatabaseUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users := newTestAuthSvc(t)
			tt.setup(users)

			_, err := svc.Login(context.Background(), tt.creds)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, users := newTestAuthSvc(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return now }

	user := models.User{ID: 3, Email: "ada@example.com", IsActive: true, PasswordHash: hashed(t, "password123"), LoginCount: 4}
	gomock.InOrder(
		users.EXPECT().FindUserByEmail(gomock.Any(), "ada@example.com").Return(user, nil),
		users.EXPECT().RecordLogin(gomock.Any(), int64(3), now).Return(nil),
	)

	resp, err := svc.Login(context.Background(), models.LoginCredentials{Email: "ada@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "Login successful", resp.Message)
	require.NotNil(t, resp.User.LastLogin)
	assert.Equal(t, now, *resp.User.LastLogin)
	assert.Equal(t, int64(5), resp.User.LoginCount)
	assert.NotEmpty(t, resp.Tokens.Access)
	assert.NotEmpty(t, resp.Tokens.Refresh)
}

func TestAuthService_Login_RecordLoginFailureIsNotFatal(t *testing.T) {
	svc, users := newTestAuthSvc(t)

	user := models.User{ID: 3, IsActive: true, PasswordHash: hashed(t, "password123")}
	users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
	users.EXPECT().RecordLogin(gomock.Any(), int64(3), gomock.Any()).Return(store.ErrExecutingQuery)

	resp, err := svc.Login(context.Background(), models.LoginCredentials{Email: "a@b.c", Password: "password123"})
	require.NoError(t, err)
	assert.Nil(t, resp.User.LastLogin)
}

// ── Refresh / Logout ─────────────────────────────────────────────────────────

func TestAuthService_Refresh(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	ctx := context.Background()

	pair, err := svc.issueTokenPair(11)
	require.NoError(t, err)

	resp, err := svc.Refresh(ctx, pair.Refresh)
	require.NoError(t, err)
	assert.Empty(t, resp.Refresh, "refresh token is not rotated")

	access, err := svc.ParseAccessToken(ctx, resp.Access)
	require.NoError(t, err)
	assert.Equal(t, int64(11), access.UserID)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	pair, err := svc.issueTokenPair(11)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), pair.Access)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_Refresh_RejectsOtherIssuer(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	other := *svc
	other.tokenIssuer = "someone-else"

	pair, err := other.issueTokenPair(11)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), pair.Refresh)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_LogoutRevokesRefreshToken(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	ctx := context.Background()

	pair, err := svc.issueTokenPair(11)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, 11, pair.Refresh))

	_, err = svc.Refresh(ctx, pair.Refresh)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestAuthService_Logout_ForeignToken(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	pair, err := svc.issueTokenPair(11)
	require.NoError(t, err)

	err = svc.Logout(context.Background(), 12, pair.Refresh)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	_, err = svc.Refresh(context.Background(), pair.Refresh)
	assert.NoError(t, err, "a rejected logout must not revoke the token")
}

func TestAuthService_Logout_EmptyToken(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	assert.NoError(t, svc.Logout(context.Background(), 1, ""))
}

func TestAuthService_Logout_BlacklistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	blacklist := mock.NewMockTokenBlacklist(ctrl)
	svc := NewAuthService(mock.NewMockUserRepository(ctrl), blacklist, testAppConfig, logger.Nop()).(*authService)

	pair, err := svc.issueTokenPair(1)
	require.NoError(t, err)

	blacklist.EXPECT().Revoke(gomock.Any(), gomock.Any()).Return(store.ErrBlacklistUnavailable)

	err = svc.Logout(context.Background(), 1, pair.Refresh)
	assert.ErrorIs(t, err, store.ErrBlacklistUnavailable)
}

func TestAuthService_ParseAccessToken_Garbage(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	_, err := svc.ParseAccessToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
