package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/vrata-api/internal/batch"
	"github.com/zapponejosh/vrata-api/internal/juldays"
)

var batchDiscEdge bool

// BatchCmd resolves the next vrata for every registered location on a
// given date.
var BatchCmd = &cobra.Command{
	Use:   "batch <date>",
	Short: "resolve the next vrata for every registered location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := juldays.ParseCivilDate(args[0])
		if err != nil {
			return err
		}

		reg, err := openRegistry()
		if err != nil {
			return err
		}
		defer reg.Close()

		locations, err := reg.List(context.Background())
		if err != nil {
			return err
		}
		if len(locations) == 0 {
			fmt.Println("no locations registered")
			return nil
		}

		driver := batch.NewDriver(defaultEphemeris())
		results := driver.ResolveAll(context.Background(), date, locations, parseFlags(batchDiscEdge))

		for _, r := range results {
			if r.Err != nil {
				fmt.Printf("%s: error: %v\n", r.Location.Name, r.Err)
				continue
			}
			printVrata(r.Vrata)
		}
		return nil
	},
}

func init() {
	BatchCmd.Flags().BoolVar(&batchDiscEdge, "disc-edge", false, "use disc-edge sunrise/sunset instead of disc-center")
}
