// Package name provides the runner logic for renaming the list.
package name

import (
	"context"
	"errors"

	"tableflip.dev/sal/pkg/app"
	"tableflip.dev/sal/pkg/printers"
)

type Name struct {
	ListName string
	Show     bool

	Service *app.Service
}

func (n *Name) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not rename, no service")
	}

	pp := printers.PrettyPrint{}
	if n.Show {
		pp.Title(n.Service.ListName())
		return nil
	}

	if err := n.Service.SetListName(n.ListName); err != nil {
		return err
	}
	pp.Title(n.Service.ListName())
	return nil
}
