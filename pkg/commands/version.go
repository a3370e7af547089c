package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Populated by the build via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func addVersion(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Printf("sal %s (%s, built %s)\n", version, commit, date)
		},
	}

	topLevel.AddCommand(cmd)
}
