package service

import (
	"context"
	"time"

	"github.com/heartbreaksandvodka/project-plusminus/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for the account and its
// session. Adapter errors are returned with their kind intact, so callers
// can branch on adapter.ErrValidation, adapter.ErrSessionTerminated and the
// rest with errors.Is.
type ClientAuthService interface {
	// Login authenticates against the server and persists the returned
	// user and token pair as the local session.
	Login(ctx context.Context, credentials models.LoginCredentials) (models.AuthResponse, error)

	// Register creates the account and persists the session like Login.
	Register(ctx context.Context, credentials models.RegisterCredentials) (models.AuthResponse, error)

	// Logout asks the server to revoke the refresh token and clears the
	// local session whether or not the server call succeeded.
	Logout(ctx context.Context) error

	// RestoreSession loads the stored session and verifies it by fetching
	// the profile. A session that cannot be verified is cleared and
	// ErrNotLoggedIn is returned; a network failure keeps the session.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Session returns the stored session without contacting the server.
	Session(ctx context.Context) (models.Session, error)

	// GetProfile fetches the profile and refreshes the cached copy.
	GetProfile(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)
	UploadProfilePicture(ctx context.Context, picture models.ProfilePicture) (models.User, error)

	ChangePassword(ctx context.Context, change models.PasswordChange) (models.MessageResponse, error)
	// ForgotPassword returns the reset token and link the server hands back.
	ForgotPassword(ctx context.Context, email string) (models.PasswordResetResponse, error)
	ResetPassword(ctx context.Context, reset models.PasswordReset) (models.MessageResponse, error)
}

// ClientAccountService reads the account pages.
type ClientAccountService interface {
	GetDashboard(ctx context.Context) (models.Dashboard, error)
	GetSubscriptions(ctx context.Context) (models.SubscriptionsResponse, error)
	// ServerVersion does not need a session.
	ServerVersion(ctx context.Context) (string, error)
}

// ClientMT5Service drives the MetaTrader 5 account and its expert
// advisors.
type ClientMT5Service interface {
	// Overview loads the account with its runs and their statistics. While
	// no account is linked it returns an empty overview and no error.
	Overview(ctx context.Context) (models.MT5Overview, error)

	SaveAccount(ctx context.Context, credentials models.MT5Credentials) (models.MT5AccountResponse, error)
	TestConnection(ctx context.Context, credentials models.MT5Credentials) (models.ConnectionResult, error)
	RefreshStatus(ctx context.Context) (models.MT5AccountResponse, error)
	DeleteAccount(ctx context.Context) (models.MessageResponse, error)

	StartAlgorithm(ctx context.Context, request models.StartAlgorithmRequest) (models.StartAlgorithmResponse, error)
	StopAlgorithm(ctx context.Context, executionID int64) (models.ExecutionResponse, error)
	PauseAlgorithm(ctx context.Context, executionID int64) (models.ExecutionResponse, error)
	ResumeAlgorithm(ctx context.Context, executionID int64) (models.ExecutionResponse, error)

	ManualStatistics(ctx context.Context) (models.ManualStatistics, error)
}

// ClientDashboardJob defines the contract for a background worker that
// periodically refreshes the dashboard of the signed-in user.
type ClientDashboardJob interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 30 seconds if interval is zero or negative. Any
	// previously running job is stopped before the new one begins. The job
	// stops by itself once the session is terminated.
	Start(ctx context.Context, interval time.Duration)

	// Updates delivers refresh results. Only the latest undelivered result
	// is kept.
	Updates() <-chan models.DashboardUpdate

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
