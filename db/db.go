// Package db ships the SQL migrations with the binary.
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var Migrations embed.FS

const (
	MigrationsDir   = "migrations"
	MigrationsTable = "schema_migrations"
)

// Migrate applies every pending migration, or rolls back the latest one when
// rollback is set. dialect is a goose dialect name such as "sqlite3" or "postgres".
func Migrate(ctx context.Context, conn *sql.DB, dialect string, rollback bool) error {
	goose.SetBaseFS(Migrations)
	goose.SetTableName(MigrationsTable)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("goose dialect %s: %w", dialect, err)
	}

	command := "up"
	if rollback {
		command = "down"
	}
	if err := goose.RunContext(ctx, command, conn, MigrationsDir); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

// Dialect maps a configured database driver onto its goose dialect.
func Dialect(driver string) string {
	if driver == "postgres" {
		return "postgres"
	}
	return "sqlite3"
}
