package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenPair is the credential pair held by an authenticated client.
//
// Access authorizes individual requests and is short-lived. Refresh is
// exchanged for a new Access when the server rejects the current one.
// A renewal only ever replaces Access; Refresh changes on login, register
// and logout.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// IsZero reports whether the pair carries no credentials at all.
func (p TokenPair) IsZero() bool {
	return p.Access == "" && p.Refresh == ""
}

// RefreshRequest is the body of POST /token/refresh/ and POST /logout/.
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// RefreshResponse is returned by POST /token/refresh/.
// Refresh is only present when the server rotates refresh tokens; the
// client keeps its stored refresh token either way.
type RefreshResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// TokenType distinguishes access tokens from refresh tokens inside the
// signed claims so one can never be used in place of the other.
type TokenType string

const (
	AccessTokenType  TokenType = "access"
	RefreshTokenType TokenType = "refresh"
)

// Token is the server-side view of a signed JWT.
//
// It embeds [jwt.RegisteredClaims] so it can be passed straight to
// jwt.NewWithClaims and jwt.ParseWithClaims. SignedString and UserID are
// filled after signing or parsing and never serialized into the claims.
type Token struct {
	jwt.RegisteredClaims

	// Type is the "typ" claim: access or refresh.
	Type TokenType `json:"typ"`

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the parsed "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// RemainingTTL returns how long the token stays valid after now, or zero
// when it has already expired or carries no expiry.
func (t *Token) RemainingTTL(now time.Time) time.Duration {
	if t.ExpiresAt == nil {
		return 0
	}
	ttl := t.ExpiresAt.Sub(now)
	if ttl < 0 {
		return 0
	}
	return ttl
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
