package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/sal/pkg/app"
	"tableflip.dev/sal/pkg/runner/export"
	"tableflip.dev/sal/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	var out string
	var stdout bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the list as a JSON document",
		Example: `
sal export
sal export -o ~/backups
sal export --stdout
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

			s := export.Export{
				Output:  out,
				Stdout:  stdout,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "",
		"File or directory to write to; default derives from the list name.")
	cmd.Flags().BoolVar(&stdout, "stdout", false,
		"Write the document to stdout instead of a file.")
	topLevel.AddCommand(cmd)
}
