package store

import (
	"context"
	"time"

	"github.com/heartbreaksandvodka/project-plusminus/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a failed database operation may
// succeed if retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists accounts in the "users" table.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// UpdateProfile applies the non-nil fields of update. A non-nil picture
	// replaces the stored picture URL.
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate, picture *string) (models.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	RecordLogin(ctx context.Context, userID int64, at time.Time) error
}

// ResetTokenRepository persists one-time password reset tokens. Tokens are
// looked up by their digest; the raw token is never stored.
type ResetTokenRepository interface {
	CreateResetToken(ctx context.Context, token models.ResetToken) (models.ResetToken, error)
	// InvalidateUserTokens marks all unused tokens of the user as used.
	InvalidateUserTokens(ctx context.Context, userID int64) error
	FindResetToken(ctx context.Context, digest string) (models.ResetToken, error)
	// ConsumeResetToken marks the token used and stores the new password
	// hash in one transaction.
	ConsumeResetToken(ctx context.Context, token models.ResetToken, passwordHash string) error
}

// PlanRepository reads subscription plans.
type PlanRepository interface {
	ListActivePlans(ctx context.Context) ([]models.SubscriptionPlan, error)
}

// MT5Repository persists the MetaTrader 5 account of each user and the
// algorithm runs on it.
type MT5Repository interface {
	FindAccount(ctx context.Context, userID int64) (models.MT5Account, error)
	// SaveAccount inserts the user's account or updates the existing one.
	// An empty SealedPassword keeps the stored password.
	SaveAccount(ctx context.Context, account models.MT5Account) (models.MT5Account, error)
	// UpdateConnection records the connection status. A non-nil terminal
	// also stores its balances and stamps last_connected with at.
	UpdateConnection(ctx context.Context, accountID int64, status models.ConnectionStatus, terminal *models.TerminalAccount, at time.Time) (models.MT5Account, error)
	// DeleteAccount removes the account together with its runs.
	DeleteAccount(ctx context.Context, userID int64) error

	CreateExecution(ctx context.Context, execution models.AlgorithmExecution) (models.AlgorithmExecution, error)
	FindExecution(ctx context.Context, accountID, executionID int64) (models.AlgorithmExecution, error)
	// ListExecutions returns the runs of the account, newest first.
	ListExecutions(ctx context.Context, accountID int64) ([]models.AlgorithmExecution, error)
	// TransitionExecution moves a run to status only while it is in one of
	// from. Stopped runs get stopped_at set to at.
	TransitionExecution(ctx context.Context, executionID int64, from []models.ExecutionStatus, to models.ExecutionStatus, at time.Time) (models.AlgorithmExecution, error)
}

// TokenBlacklist keeps revoked refresh tokens until they expire.
type TokenBlacklist interface {
	Revoke(ctx context.Context, token models.Token) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	// PurgeExpired drops entries whose token has expired before now and
	// returns how many were removed.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// PictureStorage stores profile pictures and returns their public URL.
type PictureStorage interface {
	UploadProfilePicture(ctx context.Context, userID int64, picture models.ProfilePicture) (string, error)
}
