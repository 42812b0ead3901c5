// Command estimate prices a Social Dots project from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "estimate",
		Short: "Social Dots project pricing estimator",
		Long: `Estimate prices a project from the published service catalog.

The total is base price × complexity × timeline × team × service multiplier,
rounded to the nearest dollar.`,
		SilenceUsage: true,
	}

	root.AddCommand(newQuoteCmd(), newServicesCmd())
	return root
}
