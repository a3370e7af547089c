// Package options defines shared flag helpers for CLI commands.
package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/sal/pkg/category"
)

// CategoryOptions captures category selection flags for commands.
type CategoryOptions struct {
	Category string
}

// AddCategoryArgs wires the category flag on the provided command.
func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Specify the category bucket.")

	_ = cmd.RegisterFlagCompletionFunc("category", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return CategoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// CategoryCompletions returns canonical categories matching the prefix.
func CategoryCompletions(toComplete string) []string {
	out := make([]string, 0, len(category.Canonical))
	for _, c := range category.Canonical {
		if toComplete == "" || strings.HasPrefix(strings.ToLower(c), strings.ToLower(toComplete)) {
			out = append(out, c)
		}
	}
	return out
}
