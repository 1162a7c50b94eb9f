// Package batch runs the vrata resolver over many locations for one
// calendar date, memoising results so repeated requests for the same
// (date, flags, location) triple don't repeat the ephemeris search.
package batch

import (
	"context"
	"sync"
	"time"

	"github.com/zapponejosh/vrata-api/internal/ephemeris"
	"github.com/zapponejosh/vrata-api/internal/juldays"
	"github.com/zapponejosh/vrata-api/internal/vrata"
)

// Result is one location's outcome within a batch.
type Result struct {
	Location vrata.Location
	Vrata    *vrata.Vrata
	Err      error
}

type cacheKey struct {
	date     juldays.CivilDate
	flags    ephemeris.CalcFlags
	location string
}

// Driver runs FindNextVrata (via the latitude-fallback wrapper)
// concurrently across a batch of locations, with a content-addressed
// cache so a second request for the same date, flags, and location
// returns instantly.
type Driver struct {
	ephem ephemeris.Ephemeris

	mu    sync.Mutex
	cache map[cacheKey]Result
}

// NewDriver constructs a Driver over the given ephemeris back-end.
func NewDriver(ephem ephemeris.Ephemeris) *Driver {
	return &Driver{ephem: ephem, cache: make(map[cacheKey]Result)}
}

// ResolveAll resolves the next vrata on or after date, for every
// location, in parallel. If the resulting dates span more than one
// calendar day across the batch — a sign that date landed on the wrong
// side of an ekādaśī boundary for some locations but not others — the
// whole batch is re-resolved from date-1, exactly once. ctx
// cancellation is cooperative: in-flight resolutions are not
// interrupted, but ResolveAll stops waiting and returns partial
// results once ctx is done.
func (d *Driver) ResolveAll(ctx context.Context, date juldays.CivilDate, locations []vrata.Location, flags ephemeris.CalcFlags) []Result {
	results := d.resolveBatch(ctx, date, locations, flags)
	if ctx.Err() == nil && !allFromSameEkadashi(results) {
		results = d.resolveBatch(ctx, date.AddDays(-1), locations, flags)
	}
	return results
}

func (d *Driver) resolveBatch(ctx context.Context, date juldays.CivilDate, locations []vrata.Location, flags ephemeris.CalcFlags) []Result {
	results := make([]Result, len(locations))
	done := make(chan struct{})

	var wg sync.WaitGroup
	for i, loc := range locations {
		wg.Add(1)
		go func(i int, loc vrata.Location) {
			defer wg.Done()
			results[i] = d.resolveOne(date, loc, flags)
		}(i, loc)
	}
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
	return results
}

// allFromSameEkadashi reports whether every successfully resolved
// location's date falls within a one-day span, the batch-wide signal
// that they all observed the same ekādaśī.
func allFromSameEkadashi(results []Result) bool {
	var min, max juldays.CivilDate
	have := false
	for _, r := range results {
		if r.Err != nil || r.Vrata == nil {
			continue
		}
		if !have {
			min, max = r.Vrata.Date, r.Vrata.Date
			have = true
			continue
		}
		if r.Vrata.Date.Before(min) {
			min = r.Vrata.Date
		}
		if max.Before(r.Vrata.Date) {
			max = r.Vrata.Date
		}
	}
	if !have {
		return true
	}
	return daysBetween(min, max) <= 1
}

func (d *Driver) resolveOne(date juldays.CivilDate, loc vrata.Location, flags ephemeris.CalcFlags) Result {
	key := cacheKey{date: date, flags: flags, location: loc.Name}

	d.mu.Lock()
	if cached, ok := d.cache[key]; ok {
		d.mu.Unlock()
		return cached
	}
	d.mu.Unlock()

	v, err := vrata.ResolveWithLatitudeFallback(d.ephem, date, loc, flags)
	result := Result{Location: loc, Vrata: v, Err: err}

	d.mu.Lock()
	d.cache[key] = result
	d.mu.Unlock()

	return result
}

func daysBetween(a, b juldays.CivilDate) int {
	at := time.Date(a.Year, a.Month, a.Day, 0, 0, 0, 0, time.UTC)
	bt := time.Date(b.Year, b.Month, b.Day, 0, 0, 0, 0, time.UTC)
	diff := bt.Sub(at)
	days := int(diff / (24 * time.Hour))
	if days < 0 {
		days = -days
	}
	return days
}
