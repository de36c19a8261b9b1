package store

import (
	"database/sql"
	"fmt"

	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/migrations"
)

// DB wraps *sql.DB with the dialect it was opened with, the error
// classifier of that dialect and the logger of the owning component.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema matching the connection's dialect.
func (db *DB) Migrate() error {
	switch db.dialect {
	case migrations.DialectSQLite:
		return migrations.MigrateClient(db.DB)
	default:
		return migrations.Migrate(db.DB)
	}
}

// wrapQueryError tags a failed query as retryable ([ErrDatabaseUnavailable])
// or not ([ErrExecutingQuery]) using the dialect's classifier.
func (db *DB) wrapQueryError(err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
