package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// sqliteSessionStorage keeps the session as JSON strings in "session_kv",
// one row per key and scope.
type sqliteSessionStorage struct {
	*DB
	scope  string
	logger *logger.Logger
	now    func() time.Time
}

func NewSQLiteSessionStorage(db *DB, scope string, logger *logger.Logger) SessionStorage {
	return &sqliteSessionStorage{
		DB:     db,
		scope:  scope,
		logger: logger,
		now:    time.Now,
	}
}

func (s *sqliteSessionStorage) LoadTokens(ctx context.Context) (models.TokenPair, error) {
	var tokens models.TokenPair
	if err := s.load(ctx, SessionKeyTokens, &tokens); err != nil {
		return models.TokenPair{}, err
	}
	if tokens.IsZero() {
		return models.TokenPair{}, ErrSessionNotFound
	}
	return tokens, nil
}

func (s *sqliteSessionStorage) SaveTokens(ctx context.Context, tokens models.TokenPair) error {
	return s.save(ctx, s.DB, SessionKeyTokens, tokens)
}

func (s *sqliteSessionStorage) LoadUser(ctx context.Context) (models.User, error) {
	var user models.User
	if err := s.load(ctx, SessionKeyUser, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *sqliteSessionStorage) SaveUser(ctx context.Context, user models.User) error {
	return s.save(ctx, s.DB, SessionKeyUser, user)
}

func (s *sqliteSessionStorage) SaveSession(ctx context.Context, tokens models.TokenPair, user models.User) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = s.save(ctx, tx, SessionKeyTokens, tokens); err != nil {
		return err
	}
	if err = s.save(ctx, tx, SessionKeyUser, user); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (s *sqliteSessionStorage) Clear(ctx context.Context) error {
	query, args, err := buildClearSessionQuery(ctx, s.scope)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqliteSessionStorage.Clear").Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (s *sqliteSessionStorage) Snapshot(ctx context.Context) (models.Session, error) {
	return snapshot(ctx, s)
}

func (s *sqliteSessionStorage) load(ctx context.Context, key string, dest any) error {
	query, args, err := buildLoadSessionValueQuery(ctx, s.scope, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSessionNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteSessionStorage.load").Str("key", key).Msg("failed to load session value")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = json.Unmarshal([]byte(value), dest); err != nil {
		return fmt.Errorf("%w %q: %w", ErrDecodingValue, key, err)
	}
	return nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *sqliteSessionStorage) save(ctx context.Context, ex execer, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrEncodingValue, key, err)
	}

	query, args, err := buildSaveSessionValueQuery(ctx, s.scope, key, string(payload), s.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = ex.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqliteSessionStorage.save").Str("key", key).Msg("failed to save session value")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// snapshot assembles a session from the stored parts.
func snapshot(ctx context.Context, s SessionStorage) (models.Session, error) {
	var session models.Session

	tokens, err := s.LoadTokens(ctx)
	switch {
	case err == nil:
		session.Tokens = &tokens
	case !errors.Is(err, ErrSessionNotFound):
		return models.Session{}, err
	}

	user, err := s.LoadUser(ctx)
	switch {
	case err == nil:
		session.User = &user
	case !errors.Is(err, ErrSessionNotFound):
		return models.Session{}, err
	}

	return session, nil
}
