package models

import (
	"strings"
	"time"
)

// User is the account profile shared by the backend and the client.
//
// The first six fields are the public identity of an account and are what
// the client persists next to its token pair. The remaining profile fields
// are optional and may be edited through the update-profile endpoint.
type User struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// Email is unique and is the login identifier.
	Email string `json:"email"`

	// Username is unique and shown in the UI.
	Username string `json:"username"`

	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	DateJoined time.Time `json:"date_joined"`

	// ProfilePicture is the public URL of the uploaded picture, if any.
	ProfilePicture string `json:"profile_picture,omitempty"`
	Bio            string `json:"bio,omitempty"`
	// DateOfBirth is an ISO date (YYYY-MM-DD).
	DateOfBirth string `json:"date_of_birth,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`

	LastLogin  *time.Time `json:"last_login,omitempty"`
	LoginCount int64      `json:"-"`

	// IsActive is false for deactivated accounts; they cannot log in.
	IsActive bool `json:"-"`

	// PasswordHash is the bcrypt hash. It never leaves the server.
	PasswordHash string `json:"-"`
}

// FullName joins first and last name, falling back to the username.
func (u User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}
