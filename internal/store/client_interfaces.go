package store

import (
	"context"

	"github.com/heartbreaksandvodka/project-plusminus/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Session store keys.
const (
	SessionKeyTokens = "tokens"
	SessionKeyUser   = "user"
)

// SessionStorage is the client's single source of truth for the
// authentication state: the token pair and the cached user profile.
type SessionStorage interface {
	// LoadTokens returns [ErrSessionNotFound] when no pair is stored.
	LoadTokens(ctx context.Context) (models.TokenPair, error)
	SaveTokens(ctx context.Context, tokens models.TokenPair) error
	// LoadUser returns [ErrSessionNotFound] when no profile is stored.
	LoadUser(ctx context.Context) (models.User, error)
	SaveUser(ctx context.Context, user models.User) error
	// SaveSession stores the pair and the profile together.
	SaveSession(ctx context.Context, tokens models.TokenPair, user models.User) error
	// Clear removes the pair and the profile.
	Clear(ctx context.Context) error
	// Snapshot returns whatever is stored; missing parts stay nil.
	Snapshot(ctx context.Context) (models.Session, error)
}
