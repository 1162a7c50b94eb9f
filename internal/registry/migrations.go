package registry

// migrationsSQL contains all registry migrations, applied in order by
// version number. Each is idempotent.
var migrationsSQL = map[int]string{
	1: migrationV1Locations,
}

// migrationV1Locations creates the locations table: one row per named
// point, plus whether its stored latitude has already been pulled down
// from a polar value by the latitude-fallback wrapper.
const migrationV1Locations = `
CREATE TABLE IF NOT EXISTS locations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,

    name TEXT NOT NULL UNIQUE,
    latitude REAL NOT NULL CHECK (latitude BETWEEN -90 AND 90),
    longitude REAL NOT NULL CHECK (longitude BETWEEN -180 AND 180),
    timezone TEXT NOT NULL,
    latitude_adjusted INTEGER NOT NULL DEFAULT 0,

    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_locations_name ON locations(name);
`
