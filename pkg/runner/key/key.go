// Package key prints the legend of glyphs and category buckets.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/sal/pkg/category"
	"tableflip.dev/sal/pkg/glyph"
)

type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	k.Glyphs(ctx, glyph.DefaultGlyphs())
	k.Categories(ctx)
	return nil
}

func (k *Key) Glyphs(ctx context.Context, glyfs []glyph.Glyph) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Key"), glyph.Bold("Symbol"), glyph.Bold("Meaning"))
	for _, v := range glyfs {
		tbl.AddRow(v.Key, v.Symbol, v.Meaning)
	}

	_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("\nGlyphs")))
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func (k *Key) Categories(ctx context.Context) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Category"))
	for _, c := range category.Canonical {
		tbl.AddRow(c)
	}

	_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("\nCategories")))
	_, _ = fmt.Fprintln(color.Output, tbl)
}
