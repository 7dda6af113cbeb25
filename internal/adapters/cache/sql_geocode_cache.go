package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
)

// SQLGeocodeCache is a Postgres-backed cache mapping free-text addresses to
// resolved locations, so repeated planning sessions do not hammer the free
// geocoding services. Address keys are expected to be normalized by the
// caller.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

// Fetch a cached resolution for the given address.
func (s *SQLGeocodeCache) Get(
	ctx context.Context,
	address string,
) (_ domain.ResolvedLocation, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return domain.ResolvedLocation{}, false, errors.New("geocode cache: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return domain.ResolvedLocation{}, false, nil
	}

	q := `
	SELECT lat, lon, display_address
	FROM geocode_cache
	WHERE address = $1;
	`

	var lat, lon float64
	var display string
	row := s.DB.QueryRowContext(ctx, q, address)
	if err := row.Scan(&lat, &lon, &display); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ResolvedLocation{}, false, nil
		}
		return domain.ResolvedLocation{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return domain.ResolvedLocation{
		Coordinates:    domain.Coordinates{Lat: lat, Lon: lon},
		DisplayAddress: display,
	}, true, nil
}

// Store an address -> location mapping in the cache.
func (s *SQLGeocodeCache) Put(
	ctx context.Context,
	address string,
	loc domain.ResolvedLocation,
) (err error) {
	defer obs.Time(ctx, "geocode.cache.Put")(&err)

	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return errors.New("insert geocode cache: empty address key")
	}

	q := `
	INSERT INTO geocode_cache (address, lat, lon, display_address)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (address) DO UPDATE
	SET lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		display_address = EXCLUDED.display_address;
	`

	if _, err := s.DB.ExecContext(ctx, q, address, loc.Coordinates.Lat, loc.Coordinates.Lon, loc.DisplayAddress); err != nil {
		return fmt.Errorf("insert geocode cache addr=%q: %w", address, err)
	}

	return nil
}
