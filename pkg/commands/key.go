package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/sal/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Show the glyph and category legend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := key.Key{}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
