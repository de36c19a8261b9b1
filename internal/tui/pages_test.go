package tui

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/heartbreaksandvodka/project-plusminus/internal/adapter"
	"github.com/heartbreaksandvodka/project-plusminus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoginModel_RequiresCredentials(t *testing.T) {
	m := NewLoginModel(testCtx, nil)
	m.form.set(0, "jane@example.com")

	_, cmd := m.Update(keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, "Email and password are required.", m.errMsg)
	assert.False(t, m.submitting)
}

func TestLoginModel_Submit(t *testing.T) {
	creds := models.LoginCredentials{Email: "jane@example.com", Password: "secret123"}

	t.Run("success", func(t *testing.T) {
		s := newTestServices(t)
		s.auth.EXPECT().Login(gomock.Any(), creds).Return(models.AuthResponse{User: testUser()}, nil)

		m := NewLoginModel(testCtx, s.auth)
		m.form.set(0, "  jane@example.com ")
		m.form.set(1, "secret123")

		_, cmd := m.Update(keyEnter)
		require.NotNil(t, cmd)
		assert.True(t, m.submitting)
		assert.Equal(t, authDoneMsg{user: testUser()}, cmd())
	})

	t.Run("server message is shown", func(t *testing.T) {
		s := newTestServices(t)
		apiErr := &adapter.APIError{Status: http.StatusBadRequest, Kind: adapter.ErrValidation, Message: "Invalid credentials"}
		s.auth.EXPECT().Login(gomock.Any(), creds).Return(models.AuthResponse{}, apiErr)

		m := NewLoginModel(testCtx, s.auth)
		m.form.set(0, creds.Email)
		m.form.set(1, creds.Password)

		_, cmd := m.Update(keyEnter)
		_, _ = m.Update(cmd())

		assert.False(t, m.submitting)
		assert.Equal(t, "Invalid credentials", m.errMsg)
		assert.Contains(t, m.View(), "Invalid credentials")
	})

	t.Run("fallback without a server message", func(t *testing.T) {
		m := NewLoginModel(testCtx, nil)
		_, _ = m.Update(authFailedMsg{err: errors.New("boom")})
		assert.Equal(t, msgLoginFailed, m.errMsg)
	})
}

func TestLoginModel_ShowsNotice(t *testing.T) {
	m := NewLoginModel(testCtx, nil)
	_, _ = m.Update(Notice{Text: adapter.MsgSessionExpired})
	assert.Contains(t, m.View(), adapter.MsgSessionExpired)
}

func TestForgotModel_Result(t *testing.T) {
	s := newTestServices(t)
	resp := models.PasswordResetResponse{Message: "Password reset link sent", Token: "tok-123", ResetLink: "http://localhost/reset/tok-123"}
	s.auth.EXPECT().ForgotPassword(gomock.Any(), "jane@example.com").Return(resp, nil)

	m := NewForgotModel(testCtx, s.auth)
	m.form.set(0, "jane@example.com")
	_, cmd := m.Update(keyEnter)
	_, _ = m.Update(cmd())
	require.NotNil(t, m.result)
	assert.Contains(t, m.View(), "tok-123")

	t.Run("copy token", func(t *testing.T) {
		var copied string
		orig := clipboardWrite
		clipboardWrite = func(text string) error { copied = text; return nil }
		t.Cleanup(func() { clipboardWrite = orig })

		_, cmd := m.Update(keyRune('c'))
		require.NotNil(t, cmd)
		_, clear := m.Update(cmd())

		assert.Equal(t, "tok-123", copied)
		assert.Equal(t, "Token copied to clipboard", m.status)
		assert.NotNil(t, clear)

		_, _ = m.Update(clearStatusMsg{})
		assert.Empty(t, m.status)
	})

	t.Run("clipboard unavailable", func(t *testing.T) {
		_, _ = m.Update(copiedMsg{err: errors.New("no xclip")})
		assert.Contains(t, m.errMsg, "no xclip")
	})

	t.Run("continue to reset", func(t *testing.T) {
		_, cmd := m.Update(keyRune('r'))
		require.NotNil(t, cmd)
		assert.Equal(t, NavigateTo{Page: pageReset, Payload: resetTokenMsg{token: "tok-123"}}, cmd())
		assert.Nil(t, m.result)
	})
}

func TestResetModel_Done(t *testing.T) {
	reset := models.PasswordReset{Token: "tok-123", NewPassword: "newsecret1", NewPasswordConfirm: "newsecret1"}

	s := newTestServices(t)
	s.auth.EXPECT().ResetPassword(gomock.Any(), reset).Return(models.MessageResponse{Message: "Password reset successful"}, nil)

	m := NewResetModel(testCtx, s.auth)
	_, _ = m.Update(resetTokenMsg{token: "tok-123"})
	m.form.set(resetPassword, "newsecret1")
	m.form.set(resetPasswordConfirm, "newsecret1")

	_, cmd := m.Update(keyEnter)
	_, cmd = m.Update(cmd())
	require.NotNil(t, cmd)

	assert.Equal(t, NavigateTo{Page: pageLogin, Payload: Notice{Text: "Password reset successful"}}, cmd())
	assert.Empty(t, m.form.value(resetToken))
}

func TestHomeModel(t *testing.T) {
	t.Run("loads the dashboard", func(t *testing.T) {
		s := newTestServices(t)
		s.account.EXPECT().GetDashboard(gomock.Any()).Return(models.Dashboard{Message: "Welcome back, Jane!"}, nil)

		m := NewHomeModel(testCtx, s.account, s.auth)
		cmd := m.Init()
		assert.True(t, m.loading)

		_, _ = m.Update(cmd())
		assert.False(t, m.loading)
		assert.Contains(t, m.View(), "Welcome back, Jane!")
	})

	t.Run("keeps the last dashboard on failure", func(t *testing.T) {
		m := NewHomeModel(testCtx, nil, nil)
		_, _ = m.Update(dashboardLoadedMsg{dashboard: models.Dashboard{Message: "Welcome back, Jane!"}})
		_, _ = m.Update(dashboardLoadedMsg{err: fmt.Errorf("get: %w", adapter.ErrNetwork)})

		require.NotNil(t, m.dashboard)
		assert.Equal(t, adapter.MsgNetworkUnreachable, m.errMsg)
		assert.Contains(t, m.View(), "Welcome back, Jane!")
	})

	t.Run("session terminated", func(t *testing.T) {
		s := newTestServices(t)
		s.account.EXPECT().GetDashboard(gomock.Any()).Return(models.Dashboard{}, adapter.ErrSessionTerminated)

		m := NewHomeModel(testCtx, s.account, s.auth)
		_, cmd := m.Update(m.Init()())
		require.NotNil(t, cmd)
		assert.Equal(t, sessionExpiredMsg{}, cmd())
	})

	t.Run("logout ends the program even on failure", func(t *testing.T) {
		s := newTestServices(t)
		s.auth.EXPECT().Logout(gomock.Any()).Return(adapter.ErrNetwork)

		m := NewHomeModel(testCtx, s.account, s.auth)
		_, cmd := m.Update(keyRune('l'))
		require.NotNil(t, cmd)
		assert.Equal(t, loggedOutMsg{}, cmd())
	})

	t.Run("navigation keys", func(t *testing.T) {
		m := NewHomeModel(testCtx, nil, nil)
		for r, page := range map[rune]string{'s': pageSubscriptions, 'p': pageProfile, 'c': pageChangePassword, 'm': pageMT5} {
			_, cmd := m.Update(keyRune(r))
			require.NotNil(t, cmd)
			assert.Equal(t, NavigateTo{Page: page}, cmd())
		}
	})
}

func TestEditProfileModel_SendsOnlyChangedFields(t *testing.T) {
	s := newTestServices(t)
	bio := "new bio"
	s.auth.EXPECT().
		UpdateProfile(gomock.Any(), models.ProfileUpdate{Bio: &bio}).
		Return(testUser(), nil)

	m := NewEditProfileModel(testCtx, s.auth)
	_, _ = m.Update(profileLoadedMsg{user: testUser()})
	assert.Equal(t, "jane", m.form.value(editUsername))

	m.form.set(editBio, "new bio")
	_, cmd := m.Update(keyEnter)
	require.NotNil(t, cmd)

	_, cmd = m.Update(cmd())
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageProfile, Payload: Notice{Text: "Profile updated successfully"}}, cmd())
}

func TestEditProfileModel_NothingToUpdate(t *testing.T) {
	m := NewEditProfileModel(testCtx, nil)
	_, _ = m.Update(profileLoadedMsg{user: testUser()})

	_, cmd := m.Update(keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, "Nothing to update.", m.errMsg)
}

func TestEditProfileModel_UploadsPicture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "me.png")
	data := []byte("\x89PNG\r\n\x1a\n0000")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	s := newTestServices(t)
	s.auth.EXPECT().
		UploadProfilePicture(gomock.Any(), models.ProfilePicture{Filename: "me.png", ContentType: "image/png", Data: data}).
		Return(testUser(), nil)

	m := NewEditProfileModel(testCtx, s.auth)
	_, _ = m.Update(profileLoadedMsg{user: testUser()})
	m.form.set(editPicture, path)

	_, cmd := m.Update(keyEnter)
	assert.Equal(t, profileSavedMsg{user: testUser()}, cmd())
}

func TestEditProfileModel_Errors(t *testing.T) {
	t.Run("server field errors", func(t *testing.T) {
		m := NewEditProfileModel(testCtx, nil)
		apiErr := &adapter.APIError{
			Status: http.StatusBadRequest,
			Kind:   adapter.ErrValidation,
			Fields: map[string][]string{"username": {"A user with that username already exists."}},
		}
		_, _ = m.Update(profileSavedMsg{err: apiErr})
		assert.Equal(t, "A user with that username already exists.", m.errMsg)
	})

	t.Run("session terminated", func(t *testing.T) {
		m := NewEditProfileModel(testCtx, nil)
		_, cmd := m.Update(profileSavedMsg{err: adapter.ErrSessionTerminated})
		require.NotNil(t, cmd)
		assert.Equal(t, sessionExpiredMsg{}, cmd())
	})

	t.Run("missing picture file", func(t *testing.T) {
		_, err := readPicture(filepath.Join(t.TempDir(), "absent.png"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestProfileModel(t *testing.T) {
	s := newTestServices(t)
	s.auth.EXPECT().GetProfile(gomock.Any()).Return(testUser(), nil)

	m := NewProfileModel(testCtx, s.auth)
	_, _ = m.Update(m.Init()())
	assert.Contains(t, m.View(), "jane@example.com")

	_, cmd := m.Update(keyRune('e'))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageEditProfile, Payload: profileLoadedMsg{user: testUser()}}, cmd())
}

func TestChangePasswordModel(t *testing.T) {
	change := models.PasswordChange{CurrentPassword: "secret123", NewPassword: "newsecret1", NewPasswordConfirm: "newsecret1"}

	t.Run("success returns home with the message", func(t *testing.T) {
		s := newTestServices(t)
		s.auth.EXPECT().ChangePassword(gomock.Any(), change).Return(models.MessageResponse{Message: "Password changed successfully"}, nil)

		m := NewChangePasswordModel(testCtx, s.auth)
		m.form.set(changeCurrent, change.CurrentPassword)
		m.form.set(changeNew, change.NewPassword)
		m.form.set(changeConfirm, change.NewPasswordConfirm)

		_, cmd := m.Update(keyEnter)
		_, cmd = m.Update(cmd())
		require.NotNil(t, cmd)
		assert.Equal(t, NavigateTo{Page: pageHome, Payload: Notice{Text: "Password changed successfully"}}, cmd())
	})

	t.Run("wrong current password", func(t *testing.T) {
		m := NewChangePasswordModel(testCtx, nil)
		apiErr := &adapter.APIError{
			Status: http.StatusBadRequest,
			Kind:   adapter.ErrValidation,
			Fields: map[string][]string{"current_password": {"Current password is incorrect."}},
		}
		_, _ = m.Update(passwordChangedMsg{err: apiErr})
		assert.Equal(t, "Current password is incorrect.", m.errMsg)
	})

	t.Run("required fields", func(t *testing.T) {
		m := NewChangePasswordModel(testCtx, nil)
		_, cmd := m.Update(keyEnter)
		assert.Nil(t, cmd)
		assert.NotEmpty(t, m.errMsg)
	})
}
