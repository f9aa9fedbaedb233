package database

import (
	"context"
	"fmt"
	"log/slog"
)

// migrationsSQL contains all database migrations, applied in order by
// version number. Forward-only: each migration must be safe to run on a
// fresh database.
var migrationsSQL = map[int]string{
	1: migrationV1HolidayNames,
}

// migrationV1HolidayNames creates the translation table.
//
// One row per (key, locale): the stable rule key as produced by the
// engine ("canberraDay", "goodFriday") and the display name for one
// locale tag. The engine never reads this table; the API layer consults
// it and falls back to the rule's embedded names when a row is missing.
const migrationV1HolidayNames = `
CREATE TABLE IF NOT EXISTS holiday_names (
    id INTEGER PRIMARY KEY AUTOINCREMENT,

    -- Stable holiday key, e.g. "reconciliationDay"
    key TEXT NOT NULL,

    -- Locale tag, e.g. "en", "de"
    locale TEXT NOT NULL,

    -- Localized display name
    name TEXT NOT NULL,

    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now')),

    UNIQUE (key, locale)
);

CREATE INDEX IF NOT EXISTS idx_holiday_names_key
    ON holiday_names(key, locale);
`

// Migrate runs all pending database migrations and returns the number
// applied. Applied versions are tracked in schema_migrations.
func (db *DB) Migrate(ctx context.Context) (int, error) {
	db.logger.Info("running database migrations")

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	_, err = tx.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TEXT NOT NULL DEFAULT (datetime('now'))
		)
	`)
	if err != nil {
		return 0, fmt.Errorf("create schema_migrations table: %w", err)
	}

	applied := make(map[int]bool)
	rows, err := tx.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return 0, fmt.Errorf("query applied migrations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return 0, fmt.Errorf("scan migration version: %w", err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate migration versions: %w", err)
	}

	count := 0
	for version := 1; version <= len(migrationsSQL); version++ {
		if applied[version] {
			continue
		}

		db.logger.Info("applying migration", slog.Int("version", version))

		content, ok := migrationsSQL[version]
		if !ok {
			return count, fmt.Errorf("migration %d not found", version)
		}

		if _, err := tx.ExecContext(ctx, content); err != nil {
			return count, fmt.Errorf("execute migration %d: %w", version, err)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO schema_migrations (version) VALUES (?)",
			version,
		)
		if err != nil {
			return count, fmt.Errorf("record migration %d: %w", version, err)
		}

		count++
	}

	if err := tx.Commit(); err != nil {
		return count, fmt.Errorf("commit migrations: %w", err)
	}

	db.logger.Info("migrations complete",
		slog.Int("applied", count),
		slog.Int("total", len(migrationsSQL)),
	)

	return count, nil
}
