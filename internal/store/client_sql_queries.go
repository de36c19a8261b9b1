// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// sqlite builds SQLite statements with ? placeholders.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

const sessionTable = "session_kv"

func buildLoadSessionValueQuery(_ context.Context, scope, key string) (string, []any, error) {
	return sqlite.Select("value").
		From(sessionTable).
		Where(sq.Eq{"scope": scope, "key": key}).
		ToSql()
}

func buildSaveSessionValueQuery(_ context.Context, scope, key, value string, at time.Time) (string, []any, error) {
	return sqlite.Insert(sessionTable).
		Columns("scope", "key", "value", "updated_at").
		Values(scope, key, value, at.UTC()).
		Suffix("ON CONFLICT (scope, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildClearSessionQuery(_ context.Context, scope string) (string, []any, error) {
	return sqlite.Delete(sessionTable).
		Where(sq.Eq{"scope": scope, "key": []string{SessionKeyTokens, SessionKeyUser}}).
		ToSql()
}
