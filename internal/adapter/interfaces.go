// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's transport to the PlusMinus API.
//
// [SessionClient] owns authentication: it attaches the stored access token
// to every request, renews it once on a 401 and tears the session down when
// the renewal fails. [ServerAdapter] exposes the API endpoints as typed calls
// on top of it.
//
// Errors are normalised into a small taxonomy (errors.go) so callers can
// branch with [errors.Is]: [ErrNetwork], [ErrAuthExpired], [ErrAuthRejected],
// [ErrValidation] and [ErrServer], plus [ErrSessionTerminated] when the user
// has to log in again.
package adapter

import (
	"context"

	"github.com/heartbreaksandvodka/project-plusminus/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines the API calls the client services make. Calls that
// need a session go through the session client and may return
// [ErrSessionTerminated].
type ServerAdapter interface {
	// Register and Login are anonymous; they do not touch the stored
	// session, the caller persists the returned tokens.
	Register(ctx context.Context, credentials models.RegisterCredentials) (models.AuthResponse, error)
	Login(ctx context.Context, credentials models.LoginCredentials) (models.AuthResponse, error)

	// Logout asks the server to revoke refreshToken.
	Logout(ctx context.Context, refreshToken string) error

	GetProfile(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)
	// UploadProfilePicture sends the picture as multipart form data.
	UploadProfilePicture(ctx context.Context, picture models.ProfilePicture) (models.User, error)

	ChangePassword(ctx context.Context, change models.PasswordChange) (models.MessageResponse, error)
	ForgotPassword(ctx context.Context, email string) (models.PasswordResetResponse, error)
	ResetPassword(ctx context.Context, reset models.PasswordReset) (models.MessageResponse, error)

	GetDashboard(ctx context.Context) (models.Dashboard, error)
	GetSubscriptions(ctx context.Context) (models.SubscriptionsResponse, error)

	// ServerVersion returns the version string the server reports.
	ServerVersion(ctx context.Context) (string, error)

	// GetMT5Account returns [ErrNotFound] while no account is linked.
	GetMT5Account(ctx context.Context) (models.MT5Account, error)
	SaveMT5Account(ctx context.Context, credentials models.MT5Credentials) (models.MT5AccountResponse, error)
	// TestMT5Connection reports a refused login in the result, not as an
	// error.
	TestMT5Connection(ctx context.Context, credentials models.MT5Credentials) (models.ConnectionResult, error)
	RefreshMT5Status(ctx context.Context) (models.MT5AccountResponse, error)
	DeleteMT5Account(ctx context.Context) (models.MessageResponse, error)

	ListAlgorithmExecutions(ctx context.Context) ([]models.AlgorithmExecution, error)
	StartAlgorithm(ctx context.Context, request models.StartAlgorithmRequest) (models.StartAlgorithmResponse, error)
	StopAlgorithm(ctx context.Context, executionID int64) (models.ExecutionResponse, error)
	PauseAlgorithm(ctx context.Context, executionID int64) (models.ExecutionResponse, error)
	ResumeAlgorithm(ctx context.Context, executionID int64) (models.ExecutionResponse, error)

	GetAccountStatistics(ctx context.Context) (models.AccountStatistics, error)
	GetManualStatistics(ctx context.Context) (models.ManualStatistics, error)
}
