package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/sal/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "sal",
		Short: "A grocery list on the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addCheck(topLevel)
	addRemove(topLevel)
	addClear(topLevel)
	addName(topLevel)
	addTheme(topLevel)
	addSuggest(topLevel)
	addSay(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addUI(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
}
