// Package clear provides the runner logic for dropping finished items.
package clear

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/sal/pkg/app"
	"tableflip.dev/sal/pkg/printers"
	"tableflip.dev/sal/pkg/render"
)

type Clear struct {
	Service *app.Service
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not clear, no service")
	}

	removed, err := n.Service.ClearCompleted()
	if err != nil {
		return err
	}

	c := color.New(color.Faint)
	switch removed {
	case 1:
		_, _ = fmt.Fprintln(color.Output, c.Sprint("cleared 1 item"))
	default:
		_, _ = fmt.Fprintln(color.Output, c.Sprintf("cleared %d items", removed))
	}

	pp := printers.PrettyPrint{}
	state := n.Service.Snapshot()
	pp.NewLine()
	pp.TitleWithCount(state.ListName, len(state.Items))
	pp.Groups(render.Groups(state.Items, render.FilterAll))
	return nil
}
