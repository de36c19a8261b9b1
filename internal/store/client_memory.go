package store

import (
	"context"
	"sync"

	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// memorySessionStorage keeps the session for the life of the process.
type memorySessionStorage struct {
	mu     sync.RWMutex
	tokens *models.TokenPair
	user   *models.User
}

func NewMemorySessionStorage() SessionStorage {
	return &memorySessionStorage{}
}

func (s *memorySessionStorage) LoadTokens(context.Context) (models.TokenPair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tokens == nil {
		return models.TokenPair{}, ErrSessionNotFound
	}
	return *s.tokens, nil
}

func (s *memorySessionStorage) SaveTokens(_ context.Context, tokens models.TokenPair) error {
	s.mu.Lock()
	s.tokens = &tokens
	s.mu.Unlock()
	return nil
}

func (s *memorySessionStorage) LoadUser(context.Context) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, ErrSessionNotFound
	}
	return *s.user, nil
}

func (s *memorySessionStorage) SaveUser(_ context.Context, user models.User) error {
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return nil
}

func (s *memorySessionStorage) SaveSession(_ context.Context, tokens models.TokenPair, user models.User) error {
	s.mu.Lock()
	s.tokens, s.user = &tokens, &user
	s.mu.Unlock()
	return nil
}

func (s *memorySessionStorage) Clear(context.Context) error {
	s.mu.Lock()
	s.tokens, s.user = nil, nil
	s.mu.Unlock()
	return nil
}

func (s *memorySessionStorage) Snapshot(ctx context.Context) (models.Session, error) {
	return snapshot(ctx, s)
}
