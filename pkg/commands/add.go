package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/sal/pkg/app"
	"tableflip.dev/sal/pkg/commands/options"
	"tableflip.dev/sal/pkg/runner/add"
	"tableflip.dev/sal/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}
	co := &options.CategoryOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to the list",
		Example: `
sal add milk
sal add milk -q 2 -c Dairy -n "the 3% one"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires an item name")
			}
			ao.Name = strings.Join(args, " ")

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

			s := add.Add{
				Name:     ao.Name,
				Quantity: ao.Quantity,
				Category: co.Category,
				Note:     ao.Note,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddAddArgs(cmd, ao)
	options.AddCategoryArgs(cmd, co)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
