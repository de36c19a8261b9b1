package store

import (
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed statement may succeed when
// it is sent again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non-retryable"
}

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx
// driver. Repositories report [Retryable] failures as
// [ErrDatabaseUnavailable], which the API answers with 503.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify looks at the SQLSTATE of server errors. Errors that never got
// an answer from the server (refused connection, a pooled connection gone
// bad, a statement pgx knows was not sent) are retryable as well.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || errors.Is(err, driver.ErrBadConn) || pgconn.SafeToRetry(err) {
		return Retryable
	}

	return NonRetryable
}

// ClassifyPgError treats whole SQLSTATE classes as transient: 08 connection
// exception, 40 transaction rollback (serialization failure, deadlock),
// 53 insufficient resources and 57 operator intervention. A cancelled query
// and a full disk are excluded since sending the statement again does not
// help. Everything else, constraint violations included, is
// [NonRetryable].
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	switch code {
	case pgerrcode.QueryCanceled, pgerrcode.DiskFull:
		return NonRetryable
	}

	if pgerrcode.IsConnectionException(code) ||
		pgerrcode.IsTransactionRollback(code) ||
		pgerrcode.IsInsufficientResources(code) ||
		pgerrcode.IsOperatorIntervention(code) {
		return Retryable
	}

	return NonRetryable
}
