// Package migrations embeds the SQL schema of both binaries and applies it
// with goose. Server migrations target PostgreSQL through the pgx driver,
// client migrations target the local SQLite session store.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed server/*.sql client/*.sql
var embedMigrations embed.FS

const (
	serverDir = "server"
	clientDir = "client"

	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

var errNilDB = errors.New("db is nil")

// goose keeps base FS and dialect in package globals.
var gooseMu sync.Mutex

// Migrate applies the server schema to a PostgreSQL database.
func Migrate(db *sql.DB) error {
	return migrate(db, DialectPostgres, serverDir)
}

// MigrateClient applies the session store schema to a SQLite database.
func MigrateClient(db *sql.DB) error {
	return migrate(db, DialectSQLite, clientDir)
}

func migrate(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return errNilDB
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
