// Command seed loads the holiday name translation table into the sqlite
// store: the English names embedded in the rule catalog plus the
// additional locale tables below.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/holidaykit/holiday-api/internal/database"
	"github.com/holidaykit/holiday-api/internal/holiday"
)

// extraNames holds translations beyond the catalog's embedded English
// names, keyed by locale.
var extraNames = map[string]map[string]string{
	"de": {
		"newYearsDay":    "Neujahr",
		"goodFriday":     "Karfreitag",
		"easterSaturday": "Karsamstag",
		"easterSunday":   "Ostersonntag",
		"easterMonday":   "Ostermontag",
		"christmasDay":   "1. Weihnachtstag",
		"boxingDay":      "2. Weihnachtstag",
		"labourDay":      "Tag der Arbeit",
	},
}

func main() {
	dbPath := flag.String("db", "./data/holidays.db", "Path to the SQLite database")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := database.Open(database.DefaultConfig(*dbPath), log)
	if err != nil {
		log.Error("open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	if _, err := db.Migrate(ctx); err != nil {
		log.Error("migrate", slog.Any("error", err))
		os.Exit(1)
	}

	count := 0
	err = db.WithTx(ctx, func(tx *sql.Tx) error {
		upsert := func(key, locale, name string) error {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO holiday_names (key, locale, name)
				VALUES (?, ?, ?)
				ON CONFLICT (key, locale) DO UPDATE SET
					name = excluded.name,
					updated_at = datetime('now')
			`, key, locale, name)
			if err != nil {
				return fmt.Errorf("upsert %s/%s: %w", key, locale, err)
			}
			count++
			return nil
		}

		registry := holiday.DefaultRegistry()
		for _, code := range registry.Codes() {
			p, ok := registry.Lookup(code)
			if !ok {
				continue
			}
			for _, rule := range p.Rules {
				for locale, name := range rule.Names {
					if err := upsert(rule.Key, locale, name); err != nil {
						return err
					}
				}
			}
		}

		for locale, names := range extraNames {
			for key, name := range names {
				if err := upsert(key, locale, name); err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		log.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("seed complete", slog.Int("names", count))
}
