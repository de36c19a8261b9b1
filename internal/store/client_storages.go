package store

import (
	"context"
	"fmt"

	"github.com/heartbreaksandvodka/project-plusminus/internal/config"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
)

// ClientStorages groups the client-side stores.
type ClientStorages struct {
	// SessionStorage holds the token pair and the cached profile.
	SessionStorage SessionStorage

	db *DB
}

// NewClientStorages opens the SQLite session store at cfg.DSN, migrates it
// and scopes it to cfg.Scope. With cfg.Ephemeral set the session lives in
// memory and no file is touched.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	if cfg.Ephemeral {
		logger.Info().Msg("using in-memory session storage")
		return &ClientStorages{SessionStorage: NewMemorySessionStorage()}, nil
	}

	logger.Info().Str("dsn", cfg.DSN).Msg("creating session storage...")

	db, err := NewConnectSQLite(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionStorage: NewSQLiteSessionStorage(db, cfg.Scope, logger),
		db:             db,
	}, nil
}

// Close releases the database, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
