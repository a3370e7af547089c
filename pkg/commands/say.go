package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/sal/pkg/app"
	"tableflip.dev/sal/pkg/commands/options"
	"tableflip.dev/sal/pkg/runner/say"
	"tableflip.dev/sal/pkg/store"
)

func addSay(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	var language string

	cmd := &cobra.Command{
		Use:   "say",
		Short: "Add an item by voice",
		Long: `Add an item by voice. Runs the transcription command configured as
speech.command in .sal, listens for one utterance, and parses a leading
or trailing quantity ("2 milk", "milk 2").`,
		Example: `
sal say
sal say --language en-US
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

			s := say.Say{
				Language: language,
				Category: co.Category,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&language, "language", "",
		"Language tag for transcription; defaults to speech.language.")
	options.AddCategoryArgs(cmd, co)
	topLevel.AddCommand(cmd)
}
