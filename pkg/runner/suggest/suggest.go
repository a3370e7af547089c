// Package suggest provides the runner logic for name suggestions.
package suggest

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/sal/pkg/app"
	"tableflip.dev/sal/pkg/printers"
	suggestions "tableflip.dev/sal/pkg/suggest"
)

type Suggest struct {
	Query string

	Service *app.Service
}

func (n *Suggest) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not suggest, no service")
	}

	state := n.Service.Snapshot()
	names := suggestions.Suggest(n.Query, state.Items)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.TitleWithCount("Suggestions", len(names))
	if len(names) == 0 {
		pp.EmptyState()
		return nil
	}
	for _, name := range names {
		_, _ = fmt.Fprintln(color.Output, "  "+name)
	}
	return nil
}
