package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/heartbreaksandvodka/project-plusminus/internal/config"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/models"
	"github.com/redis/go-redis/v9"
)

const blacklistKeyPrefix = "plusminus:blacklist:"

// NewRedisClient connects to Redis and pings it.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}

// redisBlacklist stores one key per revoked jti. Keys expire together with
// the token, so PurgeExpired has nothing to do.
type redisBlacklist struct {
	rdb    redis.UniversalClient
	logger *logger.Logger
}

func NewRedisBlacklist(rdb redis.UniversalClient, logger *logger.Logger) TokenBlacklist {
	return &redisBlacklist{
		rdb:    rdb,
		logger: logger,
	}
}

func (b *redisBlacklist) key(jti string) string { return blacklistKeyPrefix + jti }

func (b *redisBlacklist) Revoke(ctx context.Context, token models.Token) error {
	ttl := token.RemainingTTL(time.Now())
	if ttl == 0 {
		// already expired: nothing can present it again
		return nil
	}

	err := b.rdb.Set(ctx, b.key(token.ID), strconv.FormatInt(token.UserID, 10), ttl).Err()
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "redisBlacklist.Revoke").
			Int64("user_id", token.UserID).
			Msg("failed to revoke token")
		return fmt.Errorf("%w: %w", ErrBlacklistUnavailable, err)
	}

	return nil
}

func (b *redisBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := b.rdb.Exists(ctx, b.key(jti)).Result()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "redisBlacklist.IsRevoked").Msg("failed to check token")
		return false, fmt.Errorf("%w: %w", ErrBlacklistUnavailable, err)
	}

	return n > 0, nil
}

func (b *redisBlacklist) PurgeExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}
