package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations embedded in this package.
// The driver name selects both the goose dialect and the migration set:
// "pgx" for PostgreSQL and "sqlite3" for the local file-backed database.
// The two sets define identical schemas, they differ only in DDL the
// dialects cannot share (auto-increment keys, timestamp defaults).
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("migration error: db is nil")
	}

	dir := "postgres"
	if driver == "sqlite3" {
		dir = "sqlite"
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect %q for db: %w", driver, err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
