// Package get provides the runner logic for showing the list.
package get

import (
	"context"
	"errors"

	"tableflip.dev/sal/pkg/app"
	"tableflip.dev/sal/pkg/printers"
	"tableflip.dev/sal/pkg/render"
)

type Get struct {
	ShowID   bool
	Filter   render.Filter
	Category string

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	state := n.Service.Snapshot()

	pp.NewLine()
	pp.TitleWithCount(state.ListName, render.Count(state.Items, n.Filter))

	groups := render.Groups(state.Items, n.Filter)
	if n.Category != "" {
		kept := groups[:0]
		for _, g := range groups {
			if g.Category == n.Category {
				kept = append(kept, g)
			}
		}
		groups = kept
	}
	pp.Groups(groups)
	return nil
}
