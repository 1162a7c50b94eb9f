package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/vrata-api/internal/juldays"
	"github.com/zapponejosh/vrata-api/internal/vrata"
)

var (
	nextAfter    string
	nextDiscEdge bool
)

// NextCmd resolves the next vrata for a single registered location.
var NextCmd = &cobra.Command{
	Use:   "next <location>",
	Short: "resolve the next vrata for a registered location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}
		defer reg.Close()

		loc, err := reg.Lookup(context.Background(), args[0])
		if err != nil {
			return err
		}

		after, err := resolveAfter(nextAfter, loc)
		if err != nil {
			return err
		}

		v, err := vrata.ResolveWithLatitudeFallback(defaultEphemeris(), after, loc, parseFlags(nextDiscEdge))
		if err != nil {
			return err
		}

		printVrata(v)
		return nil
	},
}

func init() {
	NextCmd.Flags().StringVar(&nextAfter, "after", "", "earliest date to resolve from (YYYY-MM-DD, default today)")
	NextCmd.Flags().BoolVar(&nextDiscEdge, "disc-edge", false, "use disc-edge sunrise/sunset instead of disc-center")
}

func resolveAfter(s string, loc vrata.Location) (juldays.CivilDate, error) {
	if s == "" {
		zone, err := loc.Zone()
		if err != nil {
			return juldays.CivilDate{}, err
		}
		return juldays.CivilDateOf(juldays.FromTime(time.Now()), zone), nil
	}
	return juldays.ParseCivilDate(s)
}

func printVrata(v *vrata.Vrata) {
	loc, _ := v.Location.Zone()
	fmt.Printf("%s: %s (%s)\n", v.Location.Name, v.Date, v.Type)
	fmt.Printf("  sunrise1: %s\n", juldays.InLocation(v.Sunrise1, loc).Format(time.RFC3339))
	fmt.Printf("  sunrise2: %s\n", juldays.InLocation(v.Sunrise2, loc).Format(time.RFC3339))
	if v.Sunrise3 != nil {
		fmt.Printf("  sunrise3: %s\n", juldays.InLocation(*v.Sunrise3, loc).Format(time.RFC3339))
	}
	if v.Paran.Start != nil {
		fmt.Printf("  paran start: %s\n", juldays.InLocation(*v.Paran.Start, loc).Format(time.RFC3339))
	}
	if v.Paran.End != nil {
		fmt.Printf("  paran end:   %s\n", juldays.InLocation(*v.Paran.End, loc).Format(time.RFC3339))
	}
}
