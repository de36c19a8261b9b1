package store

import (
	"context"
	"sync"
	"time"

	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// memoryBlacklist is a process-local [TokenBlacklist] for tests and single
// instance deployments.
type memoryBlacklist struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

func NewMemoryBlacklist() TokenBlacklist {
	return &memoryBlacklist{revoked: make(map[string]time.Time)}
}

func (b *memoryBlacklist) Revoke(_ context.Context, token models.Token) error {
	var expiresAt time.Time
	if token.ExpiresAt != nil {
		expiresAt = token.ExpiresAt.Time
	}

	b.mu.Lock()
	b.revoked[token.ID] = expiresAt
	b.mu.Unlock()
	return nil
}

func (b *memoryBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	b.mu.RLock()
	_, ok := b.revoked[jti]
	b.mu.RUnlock()
	return ok, nil
}

func (b *memoryBlacklist) PurgeExpired(_ context.Context, now time.Time) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var purged int64
	for jti, exp := range b.revoked {
		if exp.Before(now) {
			delete(b.revoked, jti)
			purged++
		}
	}
	return purged, nil
}
