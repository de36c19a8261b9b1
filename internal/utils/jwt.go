package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

var (
	// ErrInvalidTokenParams is returned by GenerateJWTToken for empty
	// issuer, key, type or a non-positive duration.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")
	// ErrWrongTokenType is returned when an access token is presented where
	// a refresh token is expected, or the other way round.
	ErrWrongTokenType = errors.New("wrong token type")
	// ErrEmptySubject is returned for tokens without a "sub" claim.
	ErrEmptySubject = errors.New("empty subject error")
)

// TokenParams describes a token to be issued.
type TokenParams struct {
	Issuer   string
	UserID   int64
	Type     models.TokenType
	Duration time.Duration
	SignKey  string
	// ID is the "jti" claim. A new UUID is used when empty.
	ID string
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - ID        (jti): unique token id, used to revoke refresh tokens
//   - Type      (typ): access or refresh
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus Duration
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(utils.TokenParams{
//	    Issuer: "plusminus", UserID: 42, Type: models.AccessTokenType,
//	    Duration: 5 * time.Minute, SignKey: "secret",
//	})
func GenerateJWTToken(params TokenParams) (models.Token, error) {
	if params.Issuer == "" || params.Duration <= 0 || params.SignKey == "" || params.Type == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	id := params.ID
	if id == "" {
		id = NewID()
	}

	now := time.Now()
	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    params.Issuer,
			Subject:   strconv.FormatInt(params.UserID, 10),
			ID:        id,
			ExpiresAt: jwt.NewNumericDate(now.Add(params.Duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Type: params.Type,
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	claims.SignedString = tokenString
	claims.UserID = params.UserID
	return *claims, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - HS256 signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Type (typ) claim check against expectedType
//   - Subject (sub) claim presence and conversion to int64 UserID
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(raw, "secret", "plusminus", models.RefreshTokenType)
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, expectedType models.TokenType) (models.Token, error) {
	claims := &models.Token{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Type != expectedType {
		return models.Token{}, fmt.Errorf("%w: got %q, want %q", ErrWrongTokenType, claims.Type, expectedType)
	}

	if claims.Subject == "" {
		return models.Token{}, ErrEmptySubject
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.Token{}, err
	}

	claims.UserID = userID
	claims.SignedString = tokenString
	return *claims, nil
}

// ParseTokenExpiry reads the "exp" claim without verifying the signature.
// The client uses it to report how long its session stays valid.
func ParseTokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errors.New("token has no expiry")
	}
	return exp.Time, nil
}
