package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/sal/pkg/render"
)

// FilterOptions selects the view filter for display commands.
type FilterOptions struct {
	Filter string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Filter, "filter", "f", string(render.FilterAll),
		"View filter: all, active, or completed.")

	_ = cmd.RegisterFlagCompletionFunc("filter", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{
			string(render.FilterAll),
			string(render.FilterActive),
			string(render.FilterCompleted),
		}, cobra.ShellCompDirectiveNoFileComp
	})
}

// Render returns the parsed filter, defaulting to all.
func (o *FilterOptions) Render() render.Filter {
	return render.ParseFilter(o.Filter)
}
