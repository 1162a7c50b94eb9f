// Package cmd implements vratactl's subcommands.
package cmd

import (
	"github.com/spf13/cobra"
)

// Root is vratactl's top-level command.
var Root = &cobra.Command{
	Use:          "vratactl",
	Short:        "resolve and manage ekādaśī vrata dates",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var locationDBPath string

func init() {
	Root.PersistentFlags().StringVar(&locationDBPath, "location-db", "./data/locations.db", "path to the location registry database")

	Root.AddCommand(NextCmd)
	Root.AddCommand(BatchCmd)
	Root.AddCommand(LocationsCmd)
}
