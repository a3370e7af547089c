// Package theme provides the runner logic for the presentation-mode flag.
package theme

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/sal/pkg/app"
)

type Theme struct {
	Dark   bool
	Toggle bool
	Show   bool

	Service *app.Service
}

func (n *Theme) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set theme, no service")
	}

	dark := n.Dark
	switch {
	case n.Show:
		dark = n.Service.ThemeDark()
	case n.Toggle:
		dark = !n.Service.ThemeDark()
		fallthrough
	default:
		if err := n.Service.SetTheme(dark); err != nil {
			return err
		}
	}

	label := "light"
	if dark {
		label = "dark"
	}
	_, _ = fmt.Fprintf(color.Output, "theme: %s\n", label)
	return nil
}
