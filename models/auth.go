package models

import "time"

// LoginCredentials is the body of POST /login/.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterCredentials is the body of POST /register/.
type RegisterCredentials struct {
	Email           string `json:"email" validate:"required,email,max=254"`
	Username        string `json:"username" validate:"required,min=3,max=150"`
	FirstName       string `json:"first_name" validate:"required,max=150"`
	LastName        string `json:"last_name" validate:"required,max=150"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Message string    `json:"message"`
	User    User      `json:"user"`
	Tokens  TokenPair `json:"tokens"`
}

// MessageResponse is the generic `{message}` success body.
type MessageResponse struct {
	Message string `json:"message"`
}

// PasswordChange is the body of POST /change-password/.
type PasswordChange struct {
	CurrentPassword    string `json:"current_password" validate:"required"`
	NewPassword        string `json:"new_password" validate:"required,min=8"`
	NewPasswordConfirm string `json:"new_password_confirm" validate:"required"`
}

// PasswordResetRequest is the body of POST /forgot-password/.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetResponse is returned by POST /forgot-password/. The link
// and token are handed back directly so a deployment without mail delivery
// can still complete the flow.
type PasswordResetResponse struct {
	Message   string `json:"message"`
	ResetLink string `json:"reset_link,omitempty"`
	Token     string `json:"token,omitempty"`
}

// PasswordReset is the body of POST /reset-password/.
type PasswordReset struct {
	Token              string `json:"token" validate:"required"`
	NewPassword        string `json:"new_password" validate:"required,min=8"`
	NewPasswordConfirm string `json:"new_password_confirm" validate:"required"`
}

// ResetToken is a one-time password reset token.
type ResetToken struct {
	ID        int64
	UserID    int64
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
	Used      bool
}

// IsValid reports whether the token is unused and not yet expired at now.
func (t ResetToken) IsValid(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}

// PasswordResetMail is the payload handed to the mail dispatcher.
type PasswordResetMail struct {
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	ResetLink string    `json:"reset_link"`
	ExpiresAt time.Time `json:"expires_at"`
}
