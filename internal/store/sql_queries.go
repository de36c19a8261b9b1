package store

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	usersTable       = "users"
	resetTokensTable = "password_reset_tokens"
	plansTable       = "subscription_plans"
	blacklistTable   = "token_blacklist"
	mt5AccountsTable = "mt5_accounts"
	executionsTable  = "algorithm_executions"
)

var userColumns = []string{
	"id", "email", "username", "first_name", "last_name", "password_hash",
	"profile_picture", "bio", "date_of_birth", "phone_number", "is_active",
	"date_joined", "last_login", "login_count",
}

var resetTokenColumns = []string{"id", "user_id", "token_hash", "created_at", "expires_at", "used"}

var planColumns = []string{
	"id::text", "name", "plan_type", "description", "price::text", "currency",
	"duration_days", "max_algorithms", "max_mt5_accounts", "features", "is_active",
}

var mt5AccountColumns = []string{
	"id", "user_id", "account_number", "broker_name", "server", "account_type",
	"sealed_password", "connection_status", "last_connected", "balance::float8",
	"equity::float8", "margin::float8", "currency", "is_active", "created_at", "updated_at",
}

var executionColumns = []string{
	"id", "mt5_account_id", "algorithm_name", "symbol", "status", "terminal_handle",
	"started_at", "stopped_at", "profit_loss::float8", "trades_count", "error_message",
	"last_heartbeat",
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildCreateUserQuery(_ context.Context, user models.User) (string, []any, error) {
	return psql.Insert(usersTable).
		Columns("email", "username", "first_name", "last_name", "password_hash", "is_active").
		Values(user.Email, user.Username, user.FirstName, user.LastName, user.PasswordHash, user.IsActive).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildFindUserQuery(_ context.Context, where sq.Eq) (string, []any, error) {
	return psql.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

// buildUpdateProfileQuery returns an empty query when there is nothing to
// update.
func buildUpdateProfileQuery(_ context.Context, userID int64, update models.ProfileUpdate, picture *string) (string, []any, error) {
	set := make(map[string]any, 7)
	for column, value := range update.Fields() {
		set[column] = value
	}
	if picture != nil {
		set["profile_picture"] = *picture
	}
	if len(set) == 0 {
		return "", nil, nil
	}

	return psql.Update(usersTable).
		SetMap(set).
		Where(sq.Eq{"id": userID}).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildUpdatePasswordQuery(_ context.Context, userID int64, passwordHash string) (string, []any, error) {
	return psql.Update(usersTable).
		Set("password_hash", passwordHash).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildRecordLoginQuery(_ context.Context, userID int64, at time.Time) (string, []any, error) {
	return psql.Update(usersTable).
		Set("last_login", at).
		Set("login_count", sq.Expr("login_count + 1")).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildCreateResetTokenQuery(_ context.Context, token models.ResetToken) (string, []any, error) {
	return psql.Insert(resetTokensTable).
		Columns("user_id", "token_hash", "created_at", "expires_at", "used").
		Values(token.UserID, token.Token, token.CreatedAt, token.ExpiresAt, false).
		Suffix(returning(resetTokenColumns)).
		ToSql()
}

func buildInvalidateResetTokensQuery(_ context.Context, userID int64) (string, []any, error) {
	return psql.Update(resetTokensTable).
		Set("used", true).
		Where(sq.Eq{"user_id": userID, "used": false}).
		ToSql()
}

func buildFindResetTokenQuery(_ context.Context, digest string) (string, []any, error) {
	return psql.Select(resetTokenColumns...).
		From(resetTokensTable).
		Where(sq.Eq{"token_hash": digest}).
		Limit(1).
		ToSql()
}

// buildMarkResetTokenUsedQuery only matches an unused token so two
// concurrent resets cannot both succeed.
func buildMarkResetTokenUsedQuery(_ context.Context, tokenID int64) (string, []any, error) {
	return psql.Update(resetTokensTable).
		Set("used", true).
		Where(sq.Eq{"id": tokenID, "used": false}).
		ToSql()
}

func buildListPlansQuery(_ context.Context) (string, []any, error) {
	return psql.Select(planColumns...).
		From(plansTable).
		Where(sq.Eq{"is_active": true}).
		OrderBy("price").
		ToSql()
}

func buildRevokeTokenQuery(_ context.Context, token models.Token) (string, []any, error) {
	var expiresAt time.Time
	if token.ExpiresAt != nil {
		expiresAt = token.ExpiresAt.Time
	}

	return psql.Insert(blacklistTable).
		Columns("jti", "user_id", "expires_at").
		Values(token.ID, token.UserID, expiresAt).
		Suffix("ON CONFLICT (jti) DO NOTHING").
		ToSql()
}

func buildIsRevokedQuery(_ context.Context, jti string) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From(blacklistTable).
		Where(sq.Eq{"jti": jti}).
		ToSql()
}

func buildPurgeExpiredTokensQuery(_ context.Context, now time.Time) (string, []any, error) {
	return psql.Delete(blacklistTable).
		Where(sq.Lt{"expires_at": now}).
		ToSql()
}

func buildFindMT5AccountQuery(_ context.Context, userID int64) (string, []any, error) {
	return psql.Select(mt5AccountColumns...).
		From(mt5AccountsTable).
		Where(sq.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
}

// buildSaveMT5AccountQuery upserts on user_id. An empty sealed password
// keeps the stored one.
func buildSaveMT5AccountQuery(_ context.Context, account models.MT5Account) (string, []any, error) {
	return psql.Insert(mt5AccountsTable).
		Columns("user_id", "account_number", "broker_name", "server", "account_type", "sealed_password", "connection_status").
		Values(account.UserID, account.AccountNumber, account.BrokerName, account.Server, account.AccountType, account.SealedPassword, account.ConnectionStatus).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET " +
			"account_number = EXCLUDED.account_number, " +
			"broker_name = EXCLUDED.broker_name, " +
			"server = EXCLUDED.server, " +
			"account_type = EXCLUDED.account_type, " +
			"sealed_password = COALESCE(NULLIF(EXCLUDED.sealed_password, ''), " + mt5AccountsTable + ".sealed_password), " +
			"connection_status = EXCLUDED.connection_status, " +
			"updated_at = NOW() " +
			returning(mt5AccountColumns)).
		ToSql()
}

func buildUpdateConnectionQuery(_ context.Context, accountID int64, status models.ConnectionStatus, terminal *models.TerminalAccount, at time.Time) (string, []any, error) {
	q := psql.Update(mt5AccountsTable).
		Set("connection_status", status).
		Set("updated_at", at)
	if terminal != nil {
		q = q.Set("last_connected", at).
			Set("balance", terminal.Balance).
			Set("equity", terminal.Equity).
			Set("margin", terminal.Margin)
		if terminal.Currency != "" {
			q = q.Set("currency", terminal.Currency)
		}
	}

	return q.Where(sq.Eq{"id": accountID}).
		Suffix(returning(mt5AccountColumns)).
		ToSql()
}

func buildDeleteMT5AccountQuery(_ context.Context, userID int64) (string, []any, error) {
	return psql.Delete(mt5AccountsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildCreateExecutionQuery(_ context.Context, execution models.AlgorithmExecution) (string, []any, error) {
	return psql.Insert(executionsTable).
		Columns("mt5_account_id", "algorithm_name", "symbol", "status", "terminal_handle", "started_at", "last_heartbeat").
		Values(execution.AccountID, execution.AlgorithmName, execution.Symbol, execution.Status, execution.TerminalHandle, execution.StartedAt, execution.StartedAt).
		Suffix(returning(executionColumns)).
		ToSql()
}

func buildFindExecutionQuery(_ context.Context, accountID, executionID int64) (string, []any, error) {
	return psql.Select(executionColumns...).
		From(executionsTable).
		Where(sq.Eq{"id": executionID, "mt5_account_id": accountID}).
		Limit(1).
		ToSql()
}

func buildListExecutionsQuery(_ context.Context, accountID int64) (string, []any, error) {
	return psql.Select(executionColumns...).
		From(executionsTable).
		Where(sq.Eq{"mt5_account_id": accountID}).
		OrderBy("started_at DESC", "id DESC").
		ToSql()
}

// buildTransitionExecutionQuery only matches a run still in one of from,
// so two concurrent transitions cannot both apply.
func buildTransitionExecutionQuery(_ context.Context, executionID int64, from []models.ExecutionStatus, to models.ExecutionStatus, at time.Time) (string, []any, error) {
	statuses := make([]string, len(from))
	for i, s := range from {
		statuses[i] = string(s)
	}

	q := psql.Update(executionsTable).
		Set("status", to).
		Set("last_heartbeat", at)
	if to == models.ExecutionStopped {
		q = q.Set("stopped_at", at)
	}

	return q.Where(sq.Eq{"id": executionID, "status": statuses}).
		Suffix(returning(executionColumns)).
		ToSql()
}
