package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/sal/pkg/app"
	teaui "tableflip.dev/sal/pkg/runner/tea"
	"tableflip.dev/sal/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "ui",
		Aliases: []string{"tui"},
		Short:   "Open the interactive list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			svc, err := app.New(p)
			if err != nil {
				return err
			}

			return teaui.Run(svc)
		},
	}

	topLevel.AddCommand(cmd)
}
