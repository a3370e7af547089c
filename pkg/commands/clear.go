package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/sal/pkg/app"
	"tableflip.dev/sal/pkg/runner/clear"
	"tableflip.dev/sal/pkg/store"
)

func addClear(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Drop every picked-up item",
		Example: `
sal clear
`,
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

			s := clear.Clear{
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
