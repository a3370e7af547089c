// Package load provides the runner logic for importing a list document.
// A document that fails to parse, or whose items field is not an array,
// is reported to the user and leaves existing state untouched.
package load

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/sal/pkg/app"
	"tableflip.dev/sal/pkg/exchange"
	"tableflip.dev/sal/pkg/printers"
	"tableflip.dev/sal/pkg/render"
)

type Load struct {
	Path string

	Service *app.Service
}

func (n *Load) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not import, no service")
	}

	data, err := os.ReadFile(n.Path)
	if err != nil {
		return fmt.Errorf("import: read %s: %w", n.Path, err)
	}

	doc, err := exchange.Import(data)
	switch {
	case errors.Is(err, exchange.ErrInvalidFile):
		_, _ = fmt.Fprintln(color.Output, "that file is not a list export, nothing imported")
		return nil
	case errors.Is(err, exchange.ErrBadDocument):
		_, _ = fmt.Fprintln(color.Output, "could not read that file, nothing imported")
		return nil
	case err != nil:
		return err
	}

	if err := n.Service.ReplaceAll(doc.Items, doc.ListName, doc.ListID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	state := n.Service.Snapshot()
	pp.NewLine()
	pp.TitleWithCount(state.ListName, len(state.Items))
	pp.Groups(render.Groups(state.Items, render.FilterAll))
	return nil
}
