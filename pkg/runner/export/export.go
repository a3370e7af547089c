// Package export provides the runner logic for writing the list document.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"tableflip.dev/sal/pkg/app"
	"tableflip.dev/sal/pkg/exchange"
)

type Export struct {
	// Output is a directory or file path; empty means the working
	// directory with the derived filename.
	Output string
	Stdout bool

	Service *app.Service
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}

	state := n.Service.Snapshot()
	data, err := exchange.Export(state.ListName, state.ListID, state.Items)
	if err != nil {
		return err
	}

	if n.Stdout {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}

	path := n.Output
	switch {
	case path == "":
		path = exchange.Filename(state.ListName)
	default:
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			path = filepath.Join(path, exchange.Filename(state.ListName))
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	_, _ = fmt.Fprintf(color.Output, "exported %d items to %s\n", len(state.Items), path)
	return nil
}
