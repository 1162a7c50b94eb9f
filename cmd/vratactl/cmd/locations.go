package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/vrata-api/internal/vrata"
)

// LocationsCmd groups the location-registry management subcommands.
var LocationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "manage the location registry",
}

var locationsAddCmd = &cobra.Command{
	Use:   "add <name> <latitude> <longitude> <timezone>",
	Short: "add or replace a registered location",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		lat, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid latitude %q: %w", args[1], err)
		}
		lon, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid longitude %q: %w", args[2], err)
		}
		loc := vrata.Location{Name: args[0], Latitude: lat, Longitude: lon, TimeZone: args[3]}
		if _, err := loc.Zone(); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", args[3], err)
		}

		reg, err := openRegistry()
		if err != nil {
			return err
		}
		defer reg.Close()

		if err := reg.Put(context.Background(), loc); err != nil {
			return err
		}
		fmt.Printf("added %s (%.4f, %.4f, %s)\n", loc.Name, loc.Latitude, loc.Longitude, loc.TimeZone)
		return nil
	},
}

var locationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "list registered locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}
		defer reg.Close()

		locs, err := reg.List(context.Background())
		if err != nil {
			return err
		}
		if len(locs) == 0 {
			fmt.Println("no locations registered")
			return nil
		}
		for _, loc := range locs {
			fmt.Printf("%-30s %8.4f %9.4f  %s\n", loc.Name, loc.Latitude, loc.Longitude, loc.TimeZone)
		}
		return nil
	},
}

var locationsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "remove a registered location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}
		defer reg.Close()

		if err := reg.Delete(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("removed %s\n", args[0])
		return nil
	},
}

func init() {
	LocationsCmd.AddCommand(locationsAddCmd)
	LocationsCmd.AddCommand(locationsListCmd)
	LocationsCmd.AddCommand(locationsRemoveCmd)
}
