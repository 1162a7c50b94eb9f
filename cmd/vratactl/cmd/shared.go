package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/zapponejosh/vrata-api/internal/ephemeris"
	"github.com/zapponejosh/vrata-api/internal/registry"
)

func openRegistry() (*registry.DB, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	reg, err := registry.Open(registry.DefaultConfig(locationDBPath), logger)
	if err != nil {
		return nil, err
	}
	if _, err := reg.Migrate(context.Background()); err != nil {
		reg.Close()
		return nil, err
	}
	return reg, nil
}

func defaultEphemeris() ephemeris.Ephemeris {
	return ephemeris.NewMeeus()
}

func parseFlags(discEdge bool) ephemeris.CalcFlags {
	if discEdge {
		return ephemeris.SunriseByDiscEdge
	}
	return ephemeris.SunriseByDiscCenter
}
