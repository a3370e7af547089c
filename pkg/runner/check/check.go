// Package check provides the runner logic for toggling an item's done flag.
package check

import (
	"context"
	"errors"

	"tableflip.dev/sal/pkg/app"
	"tableflip.dev/sal/pkg/printers"
	"tableflip.dev/sal/pkg/render"
)

type Check struct {
	ID string

	Service *app.Service
}

func (n *Check) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not check, no service")
	}

	it, err := n.Service.Toggle(n.ID)
	if err != nil {
		return err
	}

	if it == nil {
		// Unknown id is a no-op.
		return nil
	}

	pp := printers.PrettyPrint{ShowID: true}
	state := n.Service.Snapshot()
	pp.NewLine()
	for _, g := range render.Groups(state.Items, render.FilterAll) {
		if g.Category == it.Bucket() {
			pp.Group(g)
		}
	}
	return nil
}
