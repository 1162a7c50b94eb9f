package registry

import (
	"context"

	"github.com/zapponejosh/vrata-api/internal/ephemeris"
	"github.com/zapponejosh/vrata-api/internal/vrata"
)

// Lookup resolves a location by name, translating a missing entry into
// the same typed CalcError the ephemeris adapter uses for astronomical
// failures, so resolver callers only need to branch on one error family.
func (db *DB) Lookup(ctx context.Context, name string) (vrata.Location, error) {
	loc, err := db.Get(ctx, name)
	if IsNotFound(err) {
		return vrata.Location{}, ephemeris.CantFindLocation(name)
	}
	return loc, err
}
