package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/sal/pkg/app"
	"tableflip.dev/sal/pkg/runner/name"
	"tableflip.dev/sal/pkg/store"
)

func addName(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "name [new name]",
		Short: "Show or set the list's name",
		Example: `
sal name
sal name Weekend BBQ
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			svc, err := app.New(p)
			if err != nil {
				return err
			}

			s := name.Name{
				ListName: strings.Join(args, " "),
				Show:     len(args) == 0,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
