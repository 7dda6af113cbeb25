package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the Postgres schema: the place catalog and the geocode cache.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPlacesQuery := `
	CREATE TABLE IF NOT EXISTS places (
		city TEXT NOT NULL,
		name TEXT NOT NULL,
		best_time TEXT NOT NULL,
		PRIMARY KEY (city, name)
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		address TEXT PRIMARY KEY,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		display_address TEXT NOT NULL
	);
	`

	statements := []string{
		createPlacesQuery,
		createGeocodeCacheQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type PlaceSeed struct {
	City     string `json:"city"`
	Name     string `json:"name"`
	BestTime string `json:"best_time"`
}

// Populate the place catalog from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed places: read %q: %w", jsonPath, err)
	}

	var data []PlaceSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed places: parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed places: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
	INSERT INTO places (city, name, best_time)
	VALUES ($1, $2, $3)
	ON CONFLICT (city, name) DO UPDATE
	SET best_time = EXCLUDED.best_time;
	`)
	if err != nil {
		return fmt.Errorf("seed places: prepare: %w", err)
	}
	defer stmt.Close()

	for _, p := range data {
		if strings.TrimSpace(p.City) == "" || strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("seed places: entry with empty city or name")
		}
		if _, err := stmt.Exec(p.City, p.Name, p.BestTime); err != nil {
			return fmt.Errorf("seed places: insert %q/%q: %w", p.City, p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed places: commit tx: %w", err)
	}

	return nil
}
