package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/sal/pkg/app"
	"tableflip.dev/sal/pkg/runner/theme"
	"tableflip.dev/sal/pkg/store"
)

func addTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "theme [dark|light|toggle]",
		Short:     "Show or set the presentation mode",
		ValidArgs: []string{"dark", "light", "toggle"},
		Example: `
sal theme
sal theme dark
sal theme toggle
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("expected at most one of dark, light, toggle")
			}
			if len(args) == 1 {
				switch args[0] {
				case "dark", "light", "toggle":
				default:
					return fmt.Errorf("unknown mode %q", args[0])
				}
			}
			return nil
		},
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

			s := theme.Theme{
				Show:    len(args) == 0,
				Service: svc,
			}
			if len(args) == 1 {
				s.Toggle = args[0] == "toggle"
				s.Dark = args[0] == "dark"
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
