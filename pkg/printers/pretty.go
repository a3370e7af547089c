package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/sal/pkg/glyph"
	"tableflip.dev/sal/pkg/item"
	"tableflip.dev/sal/pkg/render"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

// Groups renders the full grouped projection, or the empty state when
// nothing survived the filter.
func (pp *PrettyPrint) Groups(groups []render.Group) {
	if len(groups) == 0 {
		pp.EmptyState()
		return
	}
	for _, g := range groups {
		pp.Group(g)
	}
}

// Group renders one category header and its items.
func (pp *PrettyPrint) Group(g render.Group) {
	h := color.New(color.Bold)
	if pp.ShowID {
		_, _ = h.Print(spacing)
	}
	_, _ = h.Println(g.Category)
	pp.Items(g.Items...)
}

func (pp *PrettyPrint) Items(items ...*item.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	note := color.New(color.Faint, color.Italic)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, e := range items {
		if pp.ShowID {
			id := e.ID
			if len(id) > len(spacing)-2 {
				id = id[:len(spacing)-2]
			}
			_, _ = y.Print(id)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(id)))
		}
		line := t
		if e.Done {
			line = done
		}
		_, _ = line.Printf("%s %d× %s", glyph.Checkbox(e.Done), e.Qty(), e.Name)
		if e.Note != "" {
			_, _ = note.Printf("  %s %s", glyph.NoteMark, e.Note)
		}
		fmt.Println("")
	}
	_, _ = t.Println("")
}

// EmptyState marks a view with nothing to show.
func (pp *PrettyPrint) EmptyState() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Println("nothing here, add something with `sal add`")
}
