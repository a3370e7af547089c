package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/sal/pkg/app"
	"tableflip.dev/sal/pkg/commands/options"
	"tableflip.dev/sal/pkg/runner/check"
	"tableflip.dev/sal/pkg/store"
)

func addCheck(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "check",
		Aliases: []string{"toggle", "done"},
		Short:   "Toggle an item between to-buy and picked up",
		Example: `
sal check <item id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an item id")
			}
			io.ID = strings.Join(args, " ")

			return nil
		},

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

			s := check.Check{
				ID:      io.ID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
