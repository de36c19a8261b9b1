// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/golang-jwt/jwt/v5"
	"github.com/heartbreaksandvodka/project-plusminus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildCreateUserQuery(t *testing.T) {
	user := models.User{
		Email:        "ada@example.com",
		Username:     "ada",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		PasswordHash: "hash",
		IsActive:     true,
	}

	query, args, err := buildCreateUserQuery(context.Background(), user)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO users"))
	assert.Contains(t, query, "RETURNING id, email, username")
	assert.Contains(t, query, "$6")
	assert.Equal(t, []any{"ada@example.com", "ada", "Ada", "Lovelace", "hash", true}, args)
}

func Test_buildFindUserQuery(t *testing.T) {
	query, args, err := buildFindUserQuery(context.Background(), sq.Eq{"lower(email)": "ada@example.com"})
	require.NoError(t, err)

	assert.Contains(t, query, "FROM users WHERE lower(email) = $1")
	assert.Contains(t, query, "LIMIT 1")
	assert.Equal(t, []any{"ada@example.com"}, args)
}

func Test_buildUpdateProfileQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing to update", func(t *testing.T) {
		query, args, err := buildUpdateProfileQuery(ctx, 1, models.ProfileUpdate{}, nil)
		require.NoError(t, err)
		assert.Empty(t, query)
		assert.Empty(t, args)
	})

	t.Run("fields and picture", func(t *testing.T) {
		bio := "hello"
		picture := "http://cdn/pic.png"

		query, args, err := buildUpdateProfileQuery(ctx, 7, models.ProfileUpdate{Bio: &bio}, &picture)
		require.NoError(t, err)

		// SetMap sorts columns
		assert.Contains(t, query, "UPDATE users SET bio = $1, profile_picture = $2 WHERE id = $3")
		assert.Contains(t, query, "RETURNING")
		assert.Equal(t, []any{"hello", "http://cdn/pic.png", int64(7)}, args)
	})
}

func Test_buildRecordLoginQuery(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	query, args, err := buildRecordLoginQuery(context.Background(), 3, at)
	require.NoError(t, err)

	assert.Contains(t, query, "last_login = $1")
	assert.Contains(t, query, "login_count = login_count + 1")
	assert.Equal(t, []any{at, int64(3)}, args)
}

func Test_buildMarkResetTokenUsedQuery_OnlyUnused(t *testing.T) {
	query, args, err := buildMarkResetTokenUsedQuery(context.Background(), 5)
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE password_reset_tokens SET used = $1")
	assert.Contains(t, query, "id = $2")
	assert.Contains(t, query, "used = $3")
	assert.Equal(t, []any{true, int64(5), false}, args)
}

func Test_buildListPlansQuery(t *testing.T) {
	query, args, err := buildListPlansQuery(context.Background())
	require.NoError(t, err)

	assert.Contains(t, query, "FROM subscription_plans WHERE is_active = $1 ORDER BY price")
	assert.Equal(t, []any{true}, args)
}

func Test_buildRevokeTokenQuery(t *testing.T) {
	exp := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	token := models.Token{
		RegisteredClaims: jwt.RegisteredClaims{ID: "jti-1", ExpiresAt: jwt.NewNumericDate(exp)},
		UserID:           9,
	}

	query, args, err := buildRevokeTokenQuery(context.Background(), token)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO token_blacklist (jti,user_id,expires_at)")
	assert.Contains(t, query, "ON CONFLICT (jti) DO NOTHING")
	assert.Equal(t, []any{"jti-1", int64(9), exp}, args)
}

func Test_buildPurgeExpiredTokensQuery(t *testing.T) {
	now := time.Now()

	query, args, err := buildPurgeExpiredTokensQuery(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM token_blacklist WHERE expires_at < $1", query)
	assert.Equal(t, []any{now}, args)
}

func Test_buildSaveSessionValueQuery_Upserts(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildSaveSessionValueQuery(context.Background(), "default", SessionKeyTokens, `{"access":"a"}`, at)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO session_kv (scope,key,value,updated_at) VALUES (?,?,?,?)")
	assert.Contains(t, query, "ON CONFLICT (scope, key) DO UPDATE")
	assert.Equal(t, []any{"default", "tokens", `{"access":"a"}`, at}, args)
}

func Test_buildClearSessionQuery(t *testing.T) {
	query, args, err := buildClearSessionQuery(context.Background(), "work")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "DELETE FROM session_kv WHERE"))
	assert.Contains(t, query, "key IN (?,?)")
	assert.Contains(t, query, "scope = ?")
	assert.Equal(t, []any{"tokens", "user", "work"}, args)
}

func Test_buildSaveMT5AccountQuery(t *testing.T) {
	query, args, err := buildSaveMT5AccountQuery(context.Background(), models.MT5Account{
		UserID:           7,
		AccountNumber:    "50012345",
		BrokerName:       "Exness",
		Server:           "Exness-MT5Trial",
		AccountType:      models.MT5Demo,
		SealedPassword:   "sealed",
		ConnectionStatus: models.ConnectionPending,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO mt5_accounts"))
	assert.Contains(t, query, "ON CONFLICT (user_id) DO UPDATE SET")
	assert.Contains(t, query, "COALESCE(NULLIF(EXCLUDED.sealed_password, ''), mt5_accounts.sealed_password)")
	assert.Contains(t, query, "RETURNING id, user_id, account_number")
	assert.Equal(t, []any{int64(7), "50012345", "Exness", "Exness-MT5Trial", models.MT5Demo, "sealed", models.ConnectionPending}, args)
}

func Test_buildUpdateConnectionQuery(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("failure keeps balances", func(t *testing.T) {
		query, args, err := buildUpdateConnectionQuery(ctx, 3, models.ConnectionError, nil, at)
		require.NoError(t, err)

		assert.Equal(t, "UPDATE mt5_accounts SET connection_status = $1, updated_at = $2 WHERE id = $3 "+returning(mt5AccountColumns), query)
		assert.Equal(t, []any{models.ConnectionError, at, int64(3)}, args)
	})

	t.Run("success stores terminal figures", func(t *testing.T) {
		terminal := &models.TerminalAccount{Balance: 1000, Equity: 1010.5, Margin: 20, Currency: "EUR"}
		query, args, err := buildUpdateConnectionQuery(ctx, 3, models.ConnectionConnected, terminal, at)
		require.NoError(t, err)

		assert.Contains(t, query, "last_connected = $3, balance = $4, equity = $5, margin = $6, currency = $7 WHERE id = $8")
		assert.Equal(t, []any{models.ConnectionConnected, at, at, 1000.0, 1010.5, 20.0, "EUR", int64(3)}, args)
	})
}

func Test_buildListExecutionsQuery(t *testing.T) {
	query, args, err := buildListExecutionsQuery(context.Background(), 3)
	require.NoError(t, err)

	assert.Contains(t, query, "FROM algorithm_executions WHERE mt5_account_id = $1 ORDER BY started_at DESC, id DESC")
	assert.Equal(t, []any{int64(3)}, args)
}

func Test_buildTransitionExecutionQuery(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("pause", func(t *testing.T) {
		query, args, err := buildTransitionExecutionQuery(ctx, 9, []models.ExecutionStatus{models.ExecutionRunning}, models.ExecutionPaused, at)
		require.NoError(t, err)

		assert.Contains(t, query, "SET status = $1, last_heartbeat = $2 WHERE id = $3 AND status IN ($4)")
		assert.NotContains(t, query, "stopped_at =")
		assert.Equal(t, []any{models.ExecutionPaused, at, int64(9), "running"}, args)
	})

	t.Run("stop stamps stopped_at", func(t *testing.T) {
		query, args, err := buildTransitionExecutionQuery(ctx, 9, []models.ExecutionStatus{models.ExecutionRunning, models.ExecutionPaused}, models.ExecutionStopped, at)
		require.NoError(t, err)

		assert.Contains(t, query, "stopped_at = $3 WHERE id = $4 AND status IN ($5,$6)")
		assert.Equal(t, []any{models.ExecutionStopped, at, at, int64(9), "running", "paused"}, args)
	})
}
