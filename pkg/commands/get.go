package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/sal/pkg/app"
	"tableflip.dev/sal/pkg/commands/options"
	"tableflip.dev/sal/pkg/runner/get"
	"tableflip.dev/sal/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"list", "ls"},
		Short:   "Show the list, grouped by category",
		Example: `
sal get
sal get --filter active
sal get --category Dairy --show-id
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

			s := get.Get{
				ShowID:   io.ShowID,
				Filter:   fo.Render(),
				Category: co.Category,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCategoryArgs(cmd, co)
	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
