package registry

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zapponejosh/vrata-api/internal/vrata"
)

// Put inserts or replaces the named location.
func (db *DB) Put(ctx context.Context, loc vrata.Location) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO locations (name, latitude, longitude, timezone, latitude_adjusted, updated_at)
		VALUES (?, ?, ?, ?, ?, datetime('now'))
		ON CONFLICT(name) DO UPDATE SET
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			timezone = excluded.timezone,
			latitude_adjusted = excluded.latitude_adjusted,
			updated_at = datetime('now')
	`, loc.Name, loc.Latitude, loc.Longitude, loc.TimeZone, boolToInt(loc.LatitudeAdjusted))
	if err != nil {
		return fmt.Errorf("put location %q: %w", loc.Name, err)
	}
	return nil
}

// Get looks up a location by name.
func (db *DB) Get(ctx context.Context, name string) (vrata.Location, error) {
	var loc vrata.Location
	var adjusted int
	row := db.QueryRowContext(ctx, `
		SELECT name, latitude, longitude, timezone, latitude_adjusted
		FROM locations WHERE name = ?
	`, name)
	err := row.Scan(&loc.Name, &loc.Latitude, &loc.Longitude, &loc.TimeZone, &adjusted)
	if err == sql.ErrNoRows {
		return vrata.Location{}, ErrNotFound
	}
	if err != nil {
		return vrata.Location{}, fmt.Errorf("get location %q: %w", name, err)
	}
	loc.LatitudeAdjusted = adjusted != 0
	return loc, nil
}

// List returns every registered location, ordered by name.
func (db *DB) List(ctx context.Context) ([]vrata.Location, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT name, latitude, longitude, timezone, latitude_adjusted
		FROM locations ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var out []vrata.Location
	for rows.Next() {
		var loc vrata.Location
		var adjusted int
		if err := rows.Scan(&loc.Name, &loc.Latitude, &loc.Longitude, &loc.TimeZone, &adjusted); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		loc.LatitudeAdjusted = adjusted != 0
		out = append(out, loc)
	}
	return out, rows.Err()
}

// Delete removes a location by name. It is not an error to delete a
// location that doesn't exist.
func (db *DB) Delete(ctx context.Context, name string) error {
	_, err := db.ExecContext(ctx, "DELETE FROM locations WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete location %q: %w", name, err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
