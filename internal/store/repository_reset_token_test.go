package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResetTokenRepo(t *testing.T) (*resetTokenRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &resetTokenRepository{DB: db, logger: logger.Nop()}, mock
}

func TestCreateResetToken(t *testing.T) {
	repo, mock := newTestResetTokenRepo(t)
	now := time.Now().UTC()
	token := models.ResetToken{UserID: 1, Token: "digest", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}

	mock.ExpectQuery("INSERT INTO password_reset_tokens").
		WithArgs(int64(1), "digest", now, now.Add(time.Hour), false).
		WillReturnRows(sqlmock.NewRows(resetTokenColumns).
			AddRow(10, 1, "digest", now, now.Add(time.Hour), false))

	created, err := repo.CreateResetToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	assert.True(t, created.IsValid(now))
}

func TestFindResetToken_NotFound(t *testing.T) {
	repo, mock := newTestResetTokenRepo(t)

	mock.ExpectQuery("SELECT .* FROM password_reset_tokens").
		WithArgs("digest").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindResetToken(context.Background(), "digest")
	assert.ErrorIs(t, err, ErrResetTokenNotFound)
}

func TestInvalidateUserTokens(t *testing.T) {
	repo, mock := newTestResetTokenRepo(t)

	mock.ExpectExec("UPDATE password_reset_tokens SET used").
		WillReturnResult(sqlmock.NewResult(0, 2))

	assert.NoError(t, repo.InvalidateUserTokens(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsumeResetToken(t *testing.T) {
	token := models.ResetToken{ID: 10, UserID: 1}

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestResetTokenRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE password_reset_tokens SET used").
			WithArgs(true, int64(10), false).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE users SET password_hash").
			WithArgs("new-hash", int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.ConsumeResetToken(context.Background(), token, "new-hash"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already used", func(t *testing.T) {
		repo, mock := newTestResetTokenRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE password_reset_tokens SET used").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.ConsumeResetToken(context.Background(), token, "new-hash")
		assert.ErrorIs(t, err, ErrResetTokenUsed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin fails", func(t *testing.T) {
		repo, mock := newTestResetTokenRepo(t)

		mock.ExpectBegin().WillReturnError(errors.New("boom"))

		err := repo.ConsumeResetToken(context.Background(), token, "new-hash")
		assert.ErrorIs(t, err, ErrBeginningTransaction)
	})

	t.Run("commit fails", func(t *testing.T) {
		repo, mock := newTestResetTokenRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE password_reset_tokens").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit().WillReturnError(errors.New("boom"))

		err := repo.ConsumeResetToken(context.Background(), token, "new-hash")
		assert.ErrorIs(t, err, ErrCommitingTransaction)
	})
}
