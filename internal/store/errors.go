package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registering an email that is
	// already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUsernameAlreadyExists is returned when a username is already taken,
	// on register or on profile update.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrResetTokenNotFound is returned when no reset token has the digest.
	ErrResetTokenNotFound = errors.New("reset token was not found")

	// ErrResetTokenUsed is returned when consuming a token that another
	// request consumed first.
	ErrResetTokenUsed = errors.New("reset token was already used")

	// ErrSessionNotFound is returned by [SessionStorage] loads when nothing
	// is stored for the scope.
	ErrSessionNotFound = errors.New("local session not found")

	// ErrMT5AccountNotFound is returned when the user has no MT5 account.
	ErrMT5AccountNotFound = errors.New("mt5 account was not found")

	// ErrExecutionNotFound is returned when no run of the account has the id.
	ErrExecutionNotFound = errors.New("algorithm execution was not found")

	// ErrExecutionStateChanged is returned when a run left the expected
	// status before the transition was applied.
	ErrExecutionStateChanged = errors.New("algorithm execution state changed")

	// ErrPictureStorageDisabled is returned when no object storage is set up.
	ErrPictureStorageDisabled = errors.New("picture storage is not configured")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails with a non-retryable error.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrDatabaseUnavailable is returned when a statement fails with an error
	// classified as [Retryable] (lost connection, deadlock, ...).
	ErrDatabaseUnavailable = errors.New("database is temporarily unavailable")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingValue and ErrDecodingValue wrap JSON failures of values
	// kept in the session store.
	ErrEncodingValue = errors.New("failed to encode stored value")
	ErrDecodingValue = errors.New("failed to decode stored value")

	// ErrBlacklistUnavailable is returned when the token blacklist backend
	// cannot be reached.
	ErrBlacklistUnavailable = errors.New("token blacklist is unavailable")

	// ErrUploadingObject is returned when object storage rejects an upload.
	ErrUploadingObject = errors.New("failed to upload object")
)
