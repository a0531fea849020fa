// Command aquahub runs the AquaHub registration API and its maintenance
// tasks.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "aquahub",
		Short:         "AquaHub water-tanker marketplace registration service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCommand())
	root.AddCommand(newMigrateCommand())
	root.AddCommand(newEmailPreviewCommand())

	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
