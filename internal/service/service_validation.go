package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/heartbreaksandvodka/project-plusminus/internal/app"
	"github.com/heartbreaksandvodka/project-plusminus/internal/validators"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// AuthValidationService validates registration requests before they reach
// the wrapped AuthService. Login keeps its own missing_fields check.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{validator: validators.NewRequestValidator()}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

func (v *AuthValidationService) Register(ctx context.Context, credentials models.RegisterCredentials) (models.AuthResponse, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.AuthResponse{}, fmt.Errorf("error during registration validation: %w", err)
	}
	return v.inner.Register(ctx, credentials)
}

func (v *AuthValidationService) Login(ctx context.Context, credentials models.LoginCredentials) (models.AuthResponse, error) {
	return v.inner.Login(ctx, credentials)
}

func (v *AuthValidationService) Logout(ctx context.Context, userID int64, refreshToken string) error {
	return v.inner.Logout(ctx, userID, refreshToken)
}

func (v *AuthValidationService) Refresh(ctx context.Context, refreshToken string) (models.RefreshResponse, error) {
	if err := v.validator.Validate(ctx, models.RefreshRequest{Refresh: refreshToken}); err != nil {
		return models.RefreshResponse{}, fmt.Errorf("error during refresh validation: %w", err)
	}
	return v.inner.Refresh(ctx, refreshToken)
}

func (v *AuthValidationService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseAccessToken(ctx, tokenString)
}

type PasswordValidationService struct {
	inner     PasswordService
	validator validators.Validator
}

func NewPasswordValidationService() PasswordServiceWrapper {
	return &PasswordValidationService{validator: validators.NewRequestValidator()}
}

func (v *PasswordValidationService) Wrap(inner PasswordService) PasswordService {
	v.inner = inner
	return v
}

func (v *PasswordValidationService) ChangePassword(ctx context.Context, userID int64, change models.PasswordChange) error {
	if err := v.validator.Validate(ctx, change); err != nil {
		return fmt.Errorf("error during password change validation: %w", err)
	}
	return v.inner.ChangePassword(ctx, userID, change)
}

func (v *PasswordValidationService) ForgotPassword(ctx context.Context, request models.PasswordResetRequest) (models.PasswordResetResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.PasswordResetResponse{}, fmt.Errorf("error during password reset request validation: %w", err)
	}
	return v.inner.ForgotPassword(ctx, request)
}

func (v *PasswordValidationService) ResetPassword(ctx context.Context, reset models.PasswordReset) error {
	if err := v.validator.Validate(ctx, reset); err != nil {
		return fmt.Errorf("error during password reset validation: %w", err)
	}
	return v.inner.ResetPassword(ctx, reset)
}

type ProfileValidationService struct {
	inner     ProfileService
	validator validators.Validator
}

func NewProfileValidationService() ProfileServiceWrapper {
	return &ProfileValidationService{validator: validators.NewRequestValidator()}
}

func (v *ProfileValidationService) Wrap(inner ProfileService) ProfileService {
	v.inner = inner
	return v
}

func (v *ProfileValidationService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	return v.inner.GetProfile(ctx, userID)
}

func (v *ProfileValidationService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate, picture *models.ProfilePicture) (models.User, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.User{}, fmt.Errorf("error during profile validation: %w", err)
	}
	return v.inner.UpdateProfile(ctx, userID, update, picture)
}

// MT5ValidationService normalizes and checks MT5 requests before they reach
// the terminal.
type MT5ValidationService struct {
	inner     MT5Service
	validator validators.Validator
}

func NewMT5ValidationService() MT5ServiceWrapper {
	return &MT5ValidationService{validator: validators.NewRequestValidator()}
}

func (v *MT5ValidationService) Wrap(inner MT5Service) MT5Service {
	v.inner = inner
	return v
}

func (v *MT5ValidationService) GetAccount(ctx context.Context, userID int64) (models.MT5Account, error) {
	return v.inner.GetAccount(ctx, userID)
}

func (v *MT5ValidationService) SaveAccount(ctx context.Context, userID int64, credentials models.MT5Credentials) (models.MT5AccountResponse, error) {
	credentials = credentials.Normalize()
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.MT5AccountResponse{}, fmt.Errorf("error during mt5 account validation: %w", err)
	}
	return v.inner.SaveAccount(ctx, userID, credentials)
}

// TestConnection needs the password, which is optional on save.
func (v *MT5ValidationService) TestConnection(ctx context.Context, credentials models.MT5Credentials) (models.ConnectionResult, error) {
	credentials = credentials.Normalize()

	err := v.validator.Validate(ctx, credentials)
	var verr *validators.ValidationError
	if err != nil && !errors.As(err, &verr) {
		return models.ConnectionResult{}, fmt.Errorf("error during connection test validation: %w", err)
	}
	if credentials.Password == "" {
		if verr == nil {
			verr = &validators.ValidationError{}
		}
		verr.Add("password", app.MsgFieldRequired)
	}
	if verr != nil {
		return models.ConnectionResult{}, fmt.Errorf("error during connection test validation: %w", verr)
	}
	return v.inner.TestConnection(ctx, credentials)
}

func (v *MT5ValidationService) RefreshStatus(ctx context.Context, userID int64) (models.MT5AccountResponse, error) {
	return v.inner.RefreshStatus(ctx, userID)
}

func (v *MT5ValidationService) DeleteAccount(ctx context.Context, userID int64) error {
	return v.inner.DeleteAccount(ctx, userID)
}

func (v *MT5ValidationService) ListExecutions(ctx context.Context, userID int64) ([]models.AlgorithmExecution, error) {
	return v.inner.ListExecutions(ctx, userID)
}

func (v *MT5ValidationService) StartAlgorithm(ctx context.Context, userID int64, request models.StartAlgorithmRequest) (models.StartAlgorithmResponse, error) {
	request.AlgorithmName = strings.TrimSpace(request.AlgorithmName)
	request.Symbol = strings.TrimSpace(request.Symbol)
	if request.AlgorithmName == "" {
		return models.StartAlgorithmResponse{}, fmt.Errorf("error during algorithm start validation: %w",
			validators.NewFieldError("algorithm_name", app.MsgAlgorithmNameRequired))
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.StartAlgorithmResponse{}, fmt.Errorf("error during algorithm start validation: %w", err)
	}
	return v.inner.StartAlgorithm(ctx, userID, request)
}

func (v *MT5ValidationService) StopAlgorithm(ctx context.Context, userID, executionID int64) (models.ExecutionResponse, error) {
	return v.inner.StopAlgorithm(ctx, userID, executionID)
}

func (v *MT5ValidationService) PauseAlgorithm(ctx context.Context, userID, executionID int64) (models.ExecutionResponse, error) {
	return v.inner.PauseAlgorithm(ctx, userID, executionID)
}

func (v *MT5ValidationService) ResumeAlgorithm(ctx context.Context, userID, executionID int64) (models.ExecutionResponse, error) {
	return v.inner.ResumeAlgorithm(ctx, userID, executionID)
}

func (v *MT5ValidationService) AccountStatistics(ctx context.Context, userID int64) (models.AccountStatistics, error) {
	return v.inner.AccountStatistics(ctx, userID)
}

func (v *MT5ValidationService) ManualStatistics(ctx context.Context, userID int64) (models.ManualStatistics, error) {
	return v.inner.ManualStatistics(ctx, userID)
}
