package service

import (
	"context"

	"github.com/heartbreaksandvodka/project-plusminus/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService issues and checks the token pair.
type AuthService interface {
	Register(ctx context.Context, credentials models.RegisterCredentials) (models.AuthResponse, error)
	Login(ctx context.Context, credentials models.LoginCredentials) (models.AuthResponse, error)
	// Logout revokes refreshToken. The token must belong to userID.
	Logout(ctx context.Context, userID int64, refreshToken string) error
	// Refresh exchanges a refresh token for a new access token. The refresh
	// token itself is not rotated.
	Refresh(ctx context.Context, refreshToken string) (models.RefreshResponse, error)
	ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID int64) (models.User, error)
	// UpdateProfile applies update and, when picture is non-nil, uploads it
	// as the new profile picture.
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate, picture *models.ProfilePicture) (models.User, error)
}

type PasswordService interface {
	ChangePassword(ctx context.Context, userID int64, change models.PasswordChange) error
	ForgotPassword(ctx context.Context, request models.PasswordResetRequest) (models.PasswordResetResponse, error)
	ResetPassword(ctx context.Context, reset models.PasswordReset) error
}

type DashboardService interface {
	GetDashboard(ctx context.Context, userID int64) (models.Dashboard, error)
}

type SubscriptionService interface {
	GetSubscriptions(ctx context.Context, userID int64) (models.SubscriptionsResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// MT5Service manages the MetaTrader 5 account of a user and the expert
// advisors running on it.
type MT5Service interface {
	// GetAccount returns the stored account whatever its connection state.
	GetAccount(ctx context.Context, userID int64) (models.MT5Account, error)
	// SaveAccount creates or updates the account. When a password is given
	// it is stored sealed and the terminal login is checked right away.
	SaveAccount(ctx context.Context, userID int64, credentials models.MT5Credentials) (models.MT5AccountResponse, error)
	// TestConnection tries the credentials without storing anything. A
	// refused login is reported in the result, not as an error.
	TestConnection(ctx context.Context, credentials models.MT5Credentials) (models.ConnectionResult, error)
	RefreshStatus(ctx context.Context, userID int64) (models.MT5AccountResponse, error)
	DeleteAccount(ctx context.Context, userID int64) error

	ListExecutions(ctx context.Context, userID int64) ([]models.AlgorithmExecution, error)
	StartAlgorithm(ctx context.Context, userID int64, request models.StartAlgorithmRequest) (models.StartAlgorithmResponse, error)
	StopAlgorithm(ctx context.Context, userID, executionID int64) (models.ExecutionResponse, error)
	PauseAlgorithm(ctx context.Context, userID, executionID int64) (models.ExecutionResponse, error)
	ResumeAlgorithm(ctx context.Context, userID, executionID int64) (models.ExecutionResponse, error)

	AccountStatistics(ctx context.Context, userID int64) (models.AccountStatistics, error)
	// ManualStatistics summarizes the deals placed by hand during the last
	// year, as reported by the terminal.
	ManualStatistics(ctx context.Context, userID int64) (models.ManualStatistics, error)
}

// MailDispatcher hands password reset mails over for delivery.
type MailDispatcher interface {
	DispatchPasswordReset(ctx context.Context, mail models.PasswordResetMail) error
}
