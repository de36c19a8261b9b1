package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// resetTokenRepository is the PostgreSQL-backed [ResetTokenRepository].
type resetTokenRepository struct {
	*DB
	logger *logger.Logger
}

func NewResetTokenRepository(db *DB, logger *logger.Logger) ResetTokenRepository {
	return &resetTokenRepository{
		DB:     db,
		logger: logger,
	}
}

func scanResetToken(row rowScanner) (models.ResetToken, error) {
	var t models.ResetToken
	err := row.Scan(&t.ID, &t.UserID, &t.Token, &t.CreatedAt, &t.ExpiresAt, &t.Used)
	return t, err
}

// CreateResetToken stores token; token.Token must already be the digest.
func (r *resetTokenRepository) CreateResetToken(ctx context.Context, token models.ResetToken) (models.ResetToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateResetTokenQuery(ctx, token)
	if err != nil {
		return models.ResetToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanResetToken(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "resetTokenRepository.CreateResetToken").
			Int64("user_id", token.UserID).
			Msg("failed to save reset token")
		return models.ResetToken{}, r.wrapQueryError(err)
	}

	return created, nil
}

func (r *resetTokenRepository) InvalidateUserTokens(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInvalidateResetTokensQuery(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "resetTokenRepository.InvalidateUserTokens").
			Int64("user_id", userID).
			Msg("failed to invalidate reset tokens")
		return r.wrapQueryError(err)
	}

	return nil
}

func (r *resetTokenRepository) FindResetToken(ctx context.Context, digest string) (models.ResetToken, error) {
	query, args, err := buildFindResetTokenQuery(ctx, digest)
	if err != nil {
		return models.ResetToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	token, err := scanResetToken(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ResetToken{}, ErrResetTokenNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "resetTokenRepository.FindResetToken").
			Msg("failed to find reset token")
		return models.ResetToken{}, r.wrapQueryError(err)
	}

	return token, nil
}

// ConsumeResetToken marks the token used and updates the owner's password
// inside a single transaction. The transaction is rolled back automatically
// (via defer) if any statement fails.
func (r *resetTokenRepository) ConsumeResetToken(ctx context.Context, token models.ResetToken, passwordHash string) error {
	log := logger.FromContext(ctx)

	markQuery, markArgs, err := buildMarkResetTokenUsedQuery(ctx, token.ID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	passwordQuery, passwordArgs, err := buildUpdatePasswordQuery(ctx, token.UserID, passwordHash)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "resetTokenRepository.ConsumeResetToken").
			Int64("user_id", token.UserID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, markQuery, markArgs...)
	if err != nil {
		return r.wrapQueryError(err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrResetTokenUsed
	}

	res, err = tx.ExecContext(ctx, passwordQuery, passwordArgs...)
	if err != nil {
		return r.wrapQueryError(err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNoUserWasFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "resetTokenRepository.ConsumeResetToken").
			Int64("user_id", token.UserID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
