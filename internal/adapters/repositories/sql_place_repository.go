package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trip-planner-service/internal/ports"
)

// Postgres-backed implementation of the PlaceRepository port.
type SQLPlaceRepository struct{ DB *sql.DB }

func NewSQLPlaceRepository(db *sql.DB) *SQLPlaceRepository {
	return &SQLPlaceRepository{DB: db}
}

// Return all catalog entries stored in the database.
func (s *SQLPlaceRepository) ListPlaces(ctx context.Context) ([]ports.PlaceRecord, error) {
	if s.DB == nil {
		return nil, errors.New("sql place repository: DB is nil")
	}

	query := `
	SELECT
		city,
		name,
		best_time
	FROM places
	ORDER BY city, name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list places: query places table: %w", err)
	}
	defer rows.Close()

	places := make([]ports.PlaceRecord, 0, 16)
	for rows.Next() {
		var rec ports.PlaceRecord
		if err := rows.Scan(&rec.City, &rec.Name, &rec.BestTime); err != nil {
			return nil, fmt.Errorf("list places: scan row: %w", err)
		}
		places = append(places, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list places: row iteration: %w", err)
	}

	return places, nil
}
