package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/sal/pkg/app"
	"tableflip.dev/sal/pkg/runner/suggest"
	"tableflip.dev/sal/pkg/store"
)

func addSuggest(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "suggest [query]",
		Short: "Suggest item names from the starter set and your history",
		Example: `
sal suggest
sal suggest mil
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

			s := suggest.Suggest{
				Query:   strings.Join(args, " "),
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
