// Package remove provides the runner logic for deleting an item.
package remove

import (
	"context"
	"errors"

	"tableflip.dev/sal/pkg/app"
	"tableflip.dev/sal/pkg/printers"
	"tableflip.dev/sal/pkg/render"
)

type Remove struct {
	ID string

	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}

	it, err := n.Service.Remove(n.ID)
	if err != nil {
		return err
	}
	if it == nil {
		return nil
	}

	pp := printers.PrettyPrint{ShowID: true}
	state := n.Service.Snapshot()
	pp.NewLine()
	pp.TitleWithCount(state.ListName, len(state.Items))
	pp.Groups(render.Groups(state.Items, render.FilterAll))
	return nil
}
