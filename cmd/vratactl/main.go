// Command vratactl is the operator CLI for the vrata API: resolving a
// single location's next fast, running a batch across the whole
// registry, and managing the location registry itself.
package main

import (
	"fmt"
	"os"

	"github.com/zapponejosh/vrata-api/cmd/vratactl/cmd"
)

func main() {
	if err := cmd.Root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
