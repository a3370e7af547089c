// Package add provides the runner logic for putting an item on the list.
package add

import (
	"context"
	"errors"

	"tableflip.dev/sal/pkg/app"
	"tableflip.dev/sal/pkg/printers"
	"tableflip.dev/sal/pkg/render"
)

type Add struct {
	Name     string
	Quantity int
	Category string
	Note     string

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	it, err := n.Service.Add(n.Name, n.Quantity, n.Category, n.Note)
	if err != nil {
		return err
	}
	if it == nil {
		// Blank names fall through silently; not an error.
		return nil
	}

	pp := printers.PrettyPrint{}
	state := n.Service.Snapshot()
	pp.NewLine()
	pp.TitleWithCount(state.ListName, len(state.Items))
	for _, g := range render.Groups(state.Items, render.FilterAll) {
		if g.Category == it.Bucket() {
			pp.Group(g)
		}
	}
	return nil
}
