package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/vrata-api/internal/batch"
	"github.com/zapponejosh/vrata-api/internal/config"
	"github.com/zapponejosh/vrata-api/internal/ephemeris"
	"github.com/zapponejosh/vrata-api/internal/juldays"
	"github.com/zapponejosh/vrata-api/internal/registry"
	"github.com/zapponejosh/vrata-api/internal/vrata"
)

// Handlers holds the dependencies the HTTP handlers need.
type Handlers struct {
	registry *registry.DB
	batch    *batch.Driver
	ephem    ephemeris.Ephemeris
	cfg      *config.Config
}

// NewHandlers constructs a Handlers bound to a registry, ephemeris
// back-end, and config.
func NewHandlers(reg *registry.DB, ephem ephemeris.Ephemeris, cfg *config.Config) *Handlers {
	return &Handlers{
		registry: reg,
		batch:    batch.NewDriver(ephem),
		ephem:    ephem,
		cfg:      cfg,
	}
}

// HealthCheck handles GET /health.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.Health(r.Context()); err != nil {
		WriteError(w, http.StatusServiceUnavailable, "registry unavailable", "UNHEALTHY")
		return
	}
	WriteSuccess(w, map[string]string{"status": "ok"})
}

// parseFlags reads the flags query parameter. Recognized values are
// "disc_edge" and "disc_center"; absent either, it falls back to
// cfg.DefaultDiscEdge.
func (h *Handlers) parseFlags(r *http.Request) ephemeris.CalcFlags {
	switch r.URL.Query().Get("flags") {
	case "disc_edge":
		return ephemeris.SunriseByDiscEdge
	case "disc_center":
		return ephemeris.SunriseByDiscCenter
	}
	if h.cfg.DefaultDiscEdge {
		return ephemeris.SunriseByDiscEdge
	}
	return ephemeris.SunriseByDiscCenter
}

// GetNextVrata handles GET /api/v1/vrata/next?location=...&after=YYYY-MM-DD&flags=....
func (h *Handlers) GetNextVrata(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("location")
	if name == "" {
		WriteBadRequest(w, "location query parameter is required")
		return
	}

	loc, err := h.registry.Lookup(r.Context(), name)
	if err != nil {
		WriteNotFound(w, err.Error())
		return
	}

	after := juldays.CivilDateOf(juldays.FromTime(time.Now()), mustZone(loc))
	if s := r.URL.Query().Get("after"); s != "" {
		parsed, err := juldays.ParseCivilDate(s)
		if err != nil {
			WriteBadRequest(w, "after must be YYYY-MM-DD")
			return
		}
		after = parsed
	}

	v, err := vrata.ResolveWithLatitudeFallback(h.ephem, after, loc, h.parseFlags(r))
	if err != nil {
		WriteInternalError(w, err.Error())
		return
	}

	WriteSuccess(w, renderVrata(v))
}

// GetBatchVrata handles GET /api/v1/vrata/batch?date=YYYY-MM-DD&flags=....
func (h *Handlers) GetBatchVrata(w http.ResponseWriter, r *http.Request) {
	s := r.URL.Query().Get("date")
	if s == "" {
		WriteBadRequest(w, "date query parameter is required")
		return
	}
	date, err := juldays.ParseCivilDate(s)
	if err != nil {
		WriteBadRequest(w, "date must be YYYY-MM-DD")
		return
	}

	locs, err := h.registry.List(r.Context())
	if err != nil {
		WriteInternalError(w, err.Error())
		return
	}

	results := h.batch.ResolveAll(r.Context(), date, locs, h.parseFlags(r))
	out := make([]map[string]any, 0, len(results))
	for _, res := range results {
		entry := map[string]any{"location": res.Location.Name}
		if res.Err != nil {
			entry["error"] = res.Err.Error()
		} else {
			entry["vrata"] = renderVrata(res.Vrata)
		}
		out = append(out, entry)
	}
	WriteSuccess(w, out)
}

// ListLocations handles GET /api/v1/locations.
func (h *Handlers) ListLocations(w http.ResponseWriter, r *http.Request) {
	locs, err := h.registry.List(r.Context())
	if err != nil {
		WriteInternalError(w, err.Error())
		return
	}
	WriteSuccess(w, locs)
}

// GetLocation handles GET /api/v1/locations/{name}.
func (h *Handlers) GetLocation(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	loc, err := h.registry.Lookup(r.Context(), name)
	if err != nil {
		WriteNotFound(w, err.Error())
		return
	}
	WriteSuccess(w, loc)
}

type putLocationRequest struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	TimeZone  string  `json:"timezone"`
}

// PutLocation handles POST /api/v1/locations. Requires an API key.
func (h *Handlers) PutLocation(w http.ResponseWriter, r *http.Request) {
	var req putLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "invalid JSON body")
		return
	}
	if req.Name == "" || req.TimeZone == "" {
		WriteBadRequest(w, "name and timezone are required")
		return
	}

	loc := vrata.Location{
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		TimeZone:  req.TimeZone,
	}
	if _, err := loc.Zone(); err != nil {
		WriteBadRequest(w, "unknown timezone: "+req.TimeZone)
		return
	}

	if err := h.registry.Put(r.Context(), loc); err != nil {
		WriteInternalError(w, err.Error())
		return
	}
	WriteSuccess(w, loc)
}

// DeleteLocation handles DELETE /api/v1/locations/{name}. Requires an
// API key.
func (h *Handlers) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.registry.Delete(r.Context(), name); err != nil {
		WriteInternalError(w, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func mustZone(loc vrata.Location) *time.Location {
	z, err := loc.Zone()
	if err != nil {
		return time.UTC
	}
	return z
}
