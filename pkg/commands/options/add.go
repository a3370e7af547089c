package options

import "github.com/spf13/cobra"

// AddOptions
type AddOptions struct {
	Name     string
	Quantity int
	Note     string
}

func AddAddArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().IntVarP(&o.Quantity, "quantity", "q", 1,
		"How many to buy.")
	cmd.Flags().StringVarP(&o.Note, "note", "n", "",
		"Free-text note on the item.")
}
