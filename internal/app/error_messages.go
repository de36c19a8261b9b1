// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// server handlers, middleware and the terminal client.
//
// Msg* constants are human-readable strings written into response bodies.
// ErrorType* constants are the machine-readable "error_type" values the
// client branches on. Keeping both in one place keeps the wording of the API
// consistent between the two binaries.
package app

// Machine-readable error kinds carried in the "error_type" field.
const (
	ErrorTypeMissingFields     = "missing_fields"
	ErrorTypeUserNotFound      = "user_not_found"
	ErrorTypeIncorrectPassword = "incorrect_password"
	ErrorTypeInactiveUser      = "inactive_user"
	ErrorTypeUserExists        = "user_exists"
	ErrorTypeTokenInvalid      = "token_not_valid"
	ErrorTypeNotAuthenticated  = "not_authenticated"
	ErrorTypeInvalidData       = "invalid_data"
	ErrorTypeNotFound          = "not_found"
	ErrorTypeInternal          = "internal_error"
	ErrorTypeUnavailable       = "service_unavailable"
	ErrorTypeTooLarge          = "payload_too_large"
	ErrorTypeMT5NotConfigured  = "mt5_account_required"
	ErrorTypeMT5NotConnected   = "mt5_not_connected"
	ErrorTypeExecutionState    = "invalid_execution_state"
	ErrorTypeTerminalFailure   = "terminal_error"
)

// Redirect hints attached to some errors.
const (
	RedirectLogin    = "login"
	RedirectRegister = "register"
)

// Success messages.
const (
	MsgUserCreated            = "User created successfully"
	MsgLoginSuccessful        = "Login successful"
	MsgLogoutSuccessful       = "Logout successful"
	MsgProfileUpdated         = "Profile updated successfully"
	MsgPasswordChanged        = "Password changed successfully"
	MsgPasswordResetEmailSent = "Password reset email sent successfully"
	MsgPasswordReset          = "Password reset successfully"
	MsgSubscriptions          = "Subscriptions"
	MsgWelcomeBackFormat      = "Welcome back, %s!"
)

// Failure messages.
const (
	// MsgUserExists is returned on register when the email is taken.
	MsgUserExists = "An account with this email already exists. Please login instead."

	// MsgMissingFields is returned on login when email or password is blank.
	MsgMissingFields = "Email and password are required."

	// MsgIncorrectPassword is returned on login when the password does not
	// match the stored hash.
	MsgIncorrectPassword = "Incorrect password. Please try again."

	// MsgInactiveUser is returned on login for deactivated accounts.
	MsgInactiveUser = "Your account has been deactivated. Please contact support."

	// MsgUserNotFound is returned on login when no account has the email.
	MsgUserNotFound = "No account found with this email. Please register first."

	MsgInvalidToken            = "Invalid token"
	MsgInvalidOrExpiredToken   = "Invalid or expired token"
	MsgTokenIsExpiredOrInvalid = "Given token not valid for any token type"
	MsgNotAuthenticated        = "Authentication credentials were not provided."

	MsgPasswordsDidNotMatch     = "Password fields didn't match."
	MsgNewPasswordsDidNotMatch  = "New passwords don't match"
	MsgCurrentPasswordIncorrect = "Current password is incorrect"
	MsgNoUserWithEmail          = "No user found with this email address"
	MsgUsernameTaken            = "A user with that username already exists."

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	MsgUnsupportedPictureType = "Unsupported image type. Use JPEG, PNG or WebP."
	MsgPictureTooLarge        = "Image is too large."
	MsgPictureUploadDisabled  = "Profile picture upload is not available."
	MsgNotFound               = "Not found."
	MsgFieldRequired          = "This field is required."
	MsgDigitsOnly             = "Ensure this field contains digits only."

	// MsgServiceUnavailable is returned when a backing store is down.
	MsgServiceUnavailable = "Service temporarily unavailable. Please try again later."
	// MsgRequestTooLarge is returned when the body exceeds the upload limit.
	MsgRequestTooLarge = "Request body is too large."
)

// MetaTrader 5 messages.
const (
	MsgMT5AccountSaved        = "MT5 account saved successfully"
	MsgMT5AccountDeleted      = "MT5 account deleted successfully"
	MsgMT5AccountNotFound     = "No MT5 account found"
	MsgMT5SetUpFirst          = "Please set up your MT5 account first."
	MsgMT5NotConnected        = "MT5 account not connected"
	MsgMT5StatusRefreshed     = "Account status refreshed"
	MsgConnectionTestOK       = "Connection test successful"
	MsgConnectionTestFailed   = "Connection test failed"
	MsgTerminalUnavailable    = "MetaTrader 5 terminal is not available"
	MsgAlgorithmNameRequired  = "Algorithm name is required"
	MsgAlgorithmStartedFormat = "Algorithm %s started successfully"
	MsgAlgorithmStopped       = "Algorithm stopped successfully"
	MsgAlgorithmPaused        = "Algorithm paused successfully."
	MsgAlgorithmResumed       = "Algorithm resumed successfully."
	MsgAlgorithmNotRunning    = "Algorithm is not running and cannot be paused."
	MsgAlgorithmNotPaused     = "Algorithm is not paused and cannot be resumed."
	MsgAlgorithmNotActive     = "Algorithm is not active and cannot be stopped."
	MsgExecutionNotFound      = "Algorithm execution not found"
	MsgAccountConnected       = "Account connected successfully"

	// MsgStoredPasswordUnreadable is returned when the sealed terminal
	// password no longer opens, for example after a key change.
	MsgStoredPasswordUnreadable = "Stored MT5 password cannot be read. Save the account with its password again."
)

// Dashboard placeholder content.
const (
	MsgNotificationWelcome         = "Welcome to your dashboard!"
	MsgNotificationCompleteProfile = "Please complete your profile for better experience."
)

// NonFieldErrorsKey is the field name of validation errors that do not
// belong to a single field.
const NonFieldErrorsKey = "non_field_errors"
