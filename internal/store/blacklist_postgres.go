package store

import (
	"context"
	"fmt"
	"time"

	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// postgresBlacklist keeps revoked refresh tokens in "token_blacklist".
type postgresBlacklist struct {
	*DB
	logger *logger.Logger
}

func NewPostgresBlacklist(db *DB, logger *logger.Logger) TokenBlacklist {
	return &postgresBlacklist{
		DB:     db,
		logger: logger,
	}
}

func (b *postgresBlacklist) Revoke(ctx context.Context, token models.Token) error {
	query, args, err := buildRevokeTokenQuery(ctx, token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = b.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "postgresBlacklist.Revoke").
			Int64("user_id", token.UserID).
			Msg("failed to revoke token")
		return b.wrapQueryError(err)
	}

	return nil
}

func (b *postgresBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	query, args, err := buildIsRevokedQuery(ctx, jti)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = b.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "postgresBlacklist.IsRevoked").Msg("failed to check token")
		return false, b.wrapQueryError(err)
	}

	return count > 0, nil
}

func (b *postgresBlacklist) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := buildPurgeExpiredTokensQuery(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := b.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, b.wrapQueryError(err)
	}

	return res.RowsAffected()
}
