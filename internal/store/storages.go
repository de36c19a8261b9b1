package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartbreaksandvodka/project-plusminus/internal/config"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages groups the server-side repositories.
type Storages struct {
	UserRepository       UserRepository
	ResetTokenRepository ResetTokenRepository
	PlanRepository       PlanRepository
	MT5Repository        MT5Repository
	TokenBlacklist       TokenBlacklist
	PictureStorage       PictureStorage

	db    *DB
	redis *redis.Client
}

// NewStorages connects to PostgreSQL and migrates it, then sets up the
// optional backends: Redis when an address is configured and object storage
// when an S3 endpoint is configured.
func NewStorages(ctx context.Context, cfg *config.ServerConfig, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.Storage.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	s := &Storages{
		UserRepository:       NewUserRepository(db, logger),
		ResetTokenRepository: NewResetTokenRepository(db, logger),
		PlanRepository:       NewPlanRepository(db, logger),
		MT5Repository:        NewMT5Repository(db, logger),
		PictureStorage:       disabledPictureStorage{},
		db:                   db,
	}

	if cfg.RedisEnabled() {
		if s.redis, err = NewRedisClient(ctx, cfg.Storage.Redis, logger); err != nil {
			s.Close()
			return nil, err
		}
	}

	switch cfg.Storage.BlacklistBackend {
	case config.BlacklistRedis:
		s.TokenBlacklist = NewRedisBlacklist(s.redis, logger)
	case config.BlacklistMemory:
		s.TokenBlacklist = NewMemoryBlacklist()
	default:
		s.TokenBlacklist = NewPostgresBlacklist(db, logger)
	}

	if cfg.S3Enabled() {
		if s.PictureStorage, err = NewS3PictureStorage(ctx, cfg.Storage.S3, logger); err != nil {
			s.Close()
			return nil, fmt.Errorf("object storage error: %w", err)
		}
	}

	return s, nil
}

// Close releases the database and Redis connections.
func (s *Storages) Close() error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
