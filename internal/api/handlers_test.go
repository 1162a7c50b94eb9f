package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/zapponejosh/vrata-api/internal/config"
	"github.com/zapponejosh/vrata-api/internal/ephemeris"
	"github.com/zapponejosh/vrata-api/internal/registry"
)

// testEnv sets up a complete test environment: an in-memory registry, a
// development config, and handlers wired to both.
type testEnv struct {
	reg      *registry.DB
	cfg      *config.Config
	handlers *Handlers
	router   http.Handler
	cleanup  func()
}

func setupTest(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	reg, err := registry.Open(registry.DefaultConfig(":memory:"), logger)
	if err != nil {
		t.Fatalf("open test registry: %v", err)
	}
	if _, err := reg.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test registry: %v", err)
	}

	cfg := &config.Config{
		Port:              8080,
		Env:               config.EnvDevelopment,
		LocationDBPath:    ":memory:",
		APIKey:            "test-api-key",
		LogLevel:          "error",
		LogFormat:         "text",
		EphemerisProvider: "meeus",
	}

	handlers := NewHandlers(reg, ephemeris.NewMeeus(), cfg)
	router := SetupRoutes(handlers, cfg, logger)

	return &testEnv{
		reg:      reg,
		cfg:      cfg,
		handlers: handlers,
		router:   router,
		cleanup:  func() { reg.Close() },
	}
}

func makeRequest(method, path string, body interface{}, apiKey string) *http.Request {
	var bodyReader io.Reader
	if body != nil {
		jsonData, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(jsonData)
	}
	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	return req
}

func parseResponse(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v, body: %s", err, rr.Body.String())
	}
}

func TestHealthCheck(t *testing.T) {
	env := setupTest(t)
	defer env.cleanup()

	req := makeRequest("GET", "/health", nil, "")
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestPutLocation_RequiresAPIKey(t *testing.T) {
	env := setupTest(t)
	defer env.cleanup()

	body := map[string]any{
		"name": "Udupi", "latitude": 13.34, "longitude": 74.75, "timezone": "Asia/Kolkata",
	}

	req := makeRequest("POST", "/api/v1/locations", body, "")
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestPutAndGetLocation(t *testing.T) {
	env := setupTest(t)
	defer env.cleanup()

	body := map[string]any{
		"name": "Udupi", "latitude": 13.34, "longitude": 74.75, "timezone": "Asia/Kolkata",
	}

	req := makeRequest("POST", "/api/v1/locations", body, env.cfg.APIKey)
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("PutLocation status = %d, body: %s", rr.Code, rr.Body.String())
	}

	req = makeRequest("GET", "/api/v1/locations/Udupi", nil, "")
	rr = httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("GetLocation status = %d, body: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Name      string  `json:"Name"`
			Latitude  float64 `json:"Latitude"`
			Longitude float64 `json:"Longitude"`
		} `json:"data"`
	}
	parseResponse(t, rr, &resp)
	if !resp.Success {
		t.Error("Success = false, want true")
	}
	if resp.Data.Name != "Udupi" {
		t.Errorf("Name = %q, want %q", resp.Data.Name, "Udupi")
	}
}

func TestGetLocation_Unknown(t *testing.T) {
	env := setupTest(t)
	defer env.cleanup()

	req := makeRequest("GET", "/api/v1/locations/Nowhere", nil, "")
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestGetNextVrata_MissingLocationParam(t *testing.T) {
	env := setupTest(t)
	defer env.cleanup()

	req := makeRequest("GET", "/api/v1/vrata/next", nil, "")
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestGetNextVrata_UnknownLocation(t *testing.T) {
	env := setupTest(t)
	defer env.cleanup()

	req := makeRequest("GET", "/api/v1/vrata/next?location=Nowhere", nil, "")
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestDeleteLocation_RequiresAPIKey(t *testing.T) {
	env := setupTest(t)
	defer env.cleanup()

	req := makeRequest("DELETE", "/api/v1/locations/Udupi", nil, "")
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestListLocations_Empty(t *testing.T) {
	env := setupTest(t)
	defer env.cleanup()

	req := makeRequest("GET", "/api/v1/locations", nil, "")
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp struct {
		Success bool  `json:"success"`
		Data    []any `json:"data"`
	}
	parseResponse(t, rr, &resp)
	if len(resp.Data) != 0 {
		t.Errorf("Data length = %d, want 0", len(resp.Data))
	}
}
