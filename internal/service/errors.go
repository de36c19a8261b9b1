package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// Login failures, in the order they are checked.
	ErrMissingFields     = errors.New("email and password are required")
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrInactiveUser      = errors.New("user is inactive")

	ErrUserExists = errors.New("user already exists")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenRevoked            = errors.New("token is revoked")

	ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")
	ErrNoUserWithEmail          = errors.New("no user with email")
	ErrInvalidResetToken        = errors.New("invalid reset token")

	ErrUnsupportedPictureType = errors.New("unsupported picture type")
	ErrPictureTooLarge        = errors.New("picture is too large")
	ErrPictureUploadDisabled  = errors.New("picture upload is disabled")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrMT5NotConnected          = errors.New("mt5 account is not connected")
	ErrAlgorithmNotRunning      = errors.New("algorithm is not running")
	ErrAlgorithmNotPaused       = errors.New("algorithm is not paused")
	ErrAlgorithmNotActive       = errors.New("algorithm is not active")
	ErrStoredPasswordUnreadable = errors.New("stored mt5 password cannot be opened")

	// ErrTerminalUnavailable wraps bridge failures the user cannot fix.
	ErrTerminalUnavailable = errors.New("mt5 terminal is unavailable")
	// ErrTerminalRejected wraps a refusal by the terminal.
	ErrTerminalRejected = errors.New("mt5 terminal rejected the request")
)

// Client-side errors. They wrap the adapter error, so the error kind of the
// failed call is still matched by errors.Is.
var (
	ErrNotLoggedIn = errors.New("not logged in")

	ErrMT5NotConfigured = errors.New("mt5 account is not set up")
	// ErrExecutionState means the run is not in a state the action applies to.
	ErrExecutionState = errors.New("invalid algorithm execution state")
)
