package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// HolidayName is one stored translation row.
type HolidayName struct {
	ID     int64  `json:"id"`
	Key    string `json:"key"`
	Locale string `json:"locale"`
	Name   string `json:"name"`
}

// GetName retrieves the display name for a holiday key in a locale.
// Returns ErrNotFound if no translation is stored.
func (db *DB) GetName(ctx context.Context, key, locale string) (string, error) {
	var name string
	err := db.QueryRowContext(ctx,
		"SELECT name FROM holiday_names WHERE key = ? AND locale = ?",
		key, locale,
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s/%s", ErrNotFound, key, locale)
	}
	if err != nil {
		return "", fmt.Errorf("get name %s/%s: %w", key, locale, err)
	}
	return name, nil
}

// UpsertName stores or replaces one translation row.
func (db *DB) UpsertName(ctx context.Context, key, locale, name string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO holiday_names (key, locale, name)
		VALUES (?, ?, ?)
		ON CONFLICT (key, locale) DO UPDATE SET
			name = excluded.name,
			updated_at = datetime('now')
	`, key, locale, name)
	if err != nil {
		return fmt.Errorf("upsert name %s/%s: %w", key, locale, err)
	}
	return nil
}

// ListNames returns all translation rows for a locale, ordered by key.
func (db *DB) ListNames(ctx context.Context, locale string) ([]HolidayName, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT id, key, locale, name FROM holiday_names WHERE locale = ? ORDER BY key",
		locale,
	)
	if err != nil {
		return nil, fmt.Errorf("list names for %s: %w", locale, err)
	}
	defer rows.Close()

	var names []HolidayName
	for rows.Next() {
		var n HolidayName
		if err := rows.Scan(&n.ID, &n.Key, &n.Locale, &n.Name); err != nil {
			return nil, fmt.Errorf("scan name row: %w", err)
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate name rows: %w", err)
	}
	return names, nil
}

// Name implements the lookup the API layer uses: a missing translation
// is not an error there, so this flattens ErrNotFound into ok=false.
func (db *DB) Name(ctx context.Context, key, locale string) (string, bool) {
	name, err := db.GetName(ctx, key, locale)
	if err != nil {
		return "", false
	}
	return name, true
}
