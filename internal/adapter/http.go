package adapter

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// API paths relative to the base URL.
const (
	registerPath       = "/register/"
	loginPath          = "/login/"
	logoutPath         = "/logout/"
	profilePath        = "/profile/"
	updateProfilePath  = "/update-profile/"
	changePasswordPath = "/change-password/"
	forgotPasswordPath = "/forgot-password/"
	resetPasswordPath  = "/reset-password/"
	dashboardPath      = "/dashboard/"
	subscriptionsPath  = "/subscriptions/"
	versionPath        = "/version/"
)

// ProfilePictureField is the multipart field of the picture upload.
const ProfilePictureField = "profile_picture"

type httpServerAdapter struct {
	session *SessionClient
	logger  *logger.Logger
}

// NewHTTPServerAdapter returns the REST implementation of [ServerAdapter].
func NewHTTPServerAdapter(session *SessionClient, logger *logger.Logger) ServerAdapter {
	return &httpServerAdapter{session: session, logger: logger}
}

func (h *httpServerAdapter) Register(ctx context.Context, credentials models.RegisterCredentials) (models.AuthResponse, error) {
	var out models.AuthResponse
	_, err := h.session.Do(ctx, Request{
		Method:    http.MethodPost,
		Path:      registerPath,
		Body:      credentials,
		Result:    &out,
		Anonymous: true,
	})
	return out, err
}

func (h *httpServerAdapter) Login(ctx context.Context, credentials models.LoginCredentials) (models.AuthResponse, error) {
	var out models.AuthResponse
	_, err := h.session.Do(ctx, Request{
		Method:    http.MethodPost,
		Path:      loginPath,
		Body:      credentials,
		Result:    &out,
		Anonymous: true,
	})
	return out, err
}

func (h *httpServerAdapter) Logout(ctx context.Context, refreshToken string) error {
	_, err := h.session.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   logoutPath,
		Body:   models.RefreshRequest{Refresh: refreshToken},
	})
	return err
}

func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.User, error) {
	var user models.User
	_, err := h.session.Do(ctx, Request{Method: http.MethodGet, Path: profilePath, Result: &user})
	return user, err
}

func (h *httpServerAdapter) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	var out models.ProfileResponse
	_, err := h.session.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   updateProfilePath,
		Body:   update,
		Result: &out,
	})
	return out.User, err
}

func (h *httpServerAdapter) UploadProfilePicture(ctx context.Context, picture models.ProfilePicture) (models.User, error) {
	var out models.ProfileResponse
	_, err := h.session.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   updateProfilePath,
		Multipart: &Multipart{Files: []MultipartFile{{
			Field:       ProfilePictureField,
			Filename:    picture.Filename,
			ContentType: picture.ContentType,
			Data:        picture.Data,
		}}},
		Result: &out,
	})
	return out.User, err
}

func (h *httpServerAdapter) ChangePassword(ctx context.Context, change models.PasswordChange) (models.MessageResponse, error) {
	var out models.MessageResponse
	_, err := h.session.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   changePasswordPath,
		Body:   change,
		Result: &out,
	})
	return out, err
}

func (h *httpServerAdapter) ForgotPassword(ctx context.Context, email string) (models.PasswordResetResponse, error) {
	var out models.PasswordResetResponse
	_, err := h.session.Do(ctx, Request{
		Method:    http.MethodPost,
		Path:      forgotPasswordPath,
		Body:      models.PasswordResetRequest{Email: email},
		Result:    &out,
		Anonymous: true,
	})
	return out, err
}

func (h *httpServerAdapter) ResetPassword(ctx context.Context, reset models.PasswordReset) (models.MessageResponse, error) {
	var out models.MessageResponse
	_, err := h.session.Do(ctx, Request{
		Method:    http.MethodPost,
		Path:      resetPasswordPath,
		Body:      reset,
		Result:    &out,
		Anonymous: true,
	})
	return out, err
}

func (h *httpServerAdapter) GetDashboard(ctx context.Context) (models.Dashboard, error) {
	var out models.Dashboard
	_, err := h.session.Do(ctx, Request{Method: http.MethodGet, Path: dashboardPath, Result: &out})
	return out, err
}

func (h *httpServerAdapter) GetSubscriptions(ctx context.Context) (models.SubscriptionsResponse, error) {
	var out models.SubscriptionsResponse
	_, err := h.session.Do(ctx, Request{Method: http.MethodGet, Path: subscriptionsPath, Result: &out})
	return out, err
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.session.Do(ctx, Request{Method: http.MethodGet, Path: versionPath, Anonymous: true})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp.Body())), nil
}
