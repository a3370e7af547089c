package teaui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/sal/pkg/app"
	"tableflip.dev/sal/pkg/glyph"
	"tableflip.dev/sal/pkg/item"
	"tableflip.dev/sal/pkg/render"
	"tableflip.dev/sal/pkg/runner/tea/internal/theme"
	"tableflip.dev/sal/pkg/speech"
	"tableflip.dev/sal/pkg/store"
	"tableflip.dev/sal/pkg/suggest"
)

// headerItem is a category row; operations on it are no-ops.
type headerItem struct{ name string }

func (h headerItem) Title() string       { return h.name }
func (h headerItem) Description() string { return "" }
func (h headerItem) FilterValue() string { return h.name }

// rowItem adapts an item to bubbles/list.Item.
type rowItem struct{ it *item.Item }

func (r rowItem) Title() string       { return r.it.Name }
func (r rowItem) Description() string { return r.it.Note }
func (r rowItem) FilterValue() string { return r.it.Name }

type storeChangedMsg struct{}
type watchClosedMsg struct{}

// Model contains UI state.
type Model struct {
	svc    *app.Service
	ctx    context.Context
	filter render.Filter

	list  list.Model
	input textinput.Model

	adding bool
	status string

	th theme.Theme

	watch <-chan store.Event

	termWidth  int
	termHeight int
}

// New creates a UI model backed by the Service.
func New(svc *app.Service) Model {
	th := theme.ForMode(svc != nil && svc.ThemeDark())

	l := list.New([]list.Item{}, itemDelegate{th: &th}, 80, 20)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowTitle(false)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "item name, or \"2 milk\""
	ti.CharLimit = 200

	m := Model{
		svc:    svc,
		ctx:    context.Background(),
		filter: render.FilterAll,
		list:   l,
		input:  ti,
		th:     th,
		status: "space toggle • a add • d delete • c clear done • f filter • t theme • q quit",
	}
	m.reloadRows()

	// Subscribe to store changes here, while the model is still
	// addressable; Init and Update operate on copies and could not keep
	// the channel.
	if svc != nil && svc.Persistence != nil {
		if ch, err := svc.Persistence.Watch(m.ctx); err != nil {
			m.status = fmt.Sprintf("watch unavailable: %v", err)
		} else {
			m.watch = ch
		}
	}
	return m
}

// itemDelegate exists so the list can size and track rows; the actual
// drawing happens in viewRows, which rebuilds everything per frame.
type itemDelegate struct{ th *theme.Theme }

func (d itemDelegate) Height() int                                     { return 1 }
func (d itemDelegate) Spacing() int                                    { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd       { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, i int, li list.Item) {}

// Init starts waiting on the store watch opened in New.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m *Model) waitForChange() tea.Cmd {
	ch := m.watch
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return watchClosedMsg{}
		}
		return storeChangedMsg{}
	}
}

// reloadRows rebuilds the visible rows from a fresh state snapshot. The
// whole surface is discarded and rebuilt each time; rendering carries no
// memory between calls.
func (m *Model) reloadRows() {
	if m.svc == nil {
		return
	}
	state := m.svc.Snapshot()
	groups := render.Groups(state.Items, m.filter)

	rows := make([]list.Item, 0, len(state.Items)+len(groups))
	for _, g := range groups {
		rows = append(rows, headerItem{name: g.Category})
		for _, it := range g.Items {
			rows = append(rows, rowItem{it: it})
		}
	}
	m.list.SetItems(rows)
}

func (m *Model) selectedItem() *item.Item {
	if r, ok := m.list.SelectedItem().(rowItem); ok {
		return r.it
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
		return m, nil
	case storeChangedMsg:
		m.svc.Reload()
		m.th = theme.ForMode(m.svc.ThemeDark())
		m.reloadRows()
		return m, m.waitForChange()
	case watchClosedMsg:
		m.watch = nil
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			if it := m.selectedItem(); it != nil {
				if _, err := m.svc.Toggle(it.ID); err != nil {
					m.status = err.Error()
				}
				m.reloadRows()
			}
			return m, nil
		case "d":
			if it := m.selectedItem(); it != nil {
				if _, err := m.svc.Remove(it.ID); err != nil {
					m.status = err.Error()
				}
				m.reloadRows()
			}
			return m, nil
		case "c":
			n, err := m.svc.ClearCompleted()
			if err != nil {
				m.status = err.Error()
			} else {
				m.status = fmt.Sprintf("cleared %d", n)
			}
			m.reloadRows()
			return m, nil
		case "f":
			m.filter = nextFilter(m.filter)
			m.reloadRows()
			return m, nil
		case "t":
			if err := m.svc.SetTheme(!m.svc.ThemeDark()); err != nil {
				m.status = err.Error()
			}
			m.th = theme.ForMode(m.svc.ThemeDark())
			return m, nil
		case "a":
			m.adding = true
			m.input.SetValue("")
			m.input.Focus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			qty, name := speech.Parse(m.input.Value(), 1)
			if _, err := m.svc.Add(name, qty, "", ""); err != nil {
				m.status = err.Error()
			}
			m.adding = false
			m.input.Blur()
			m.input.SetValue("")
			m.reloadRows()
			return m, nil
		case "esc":
			m.adding = false
			m.input.Blur()
			m.input.SetValue("")
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) applySizes() {
	w, h := m.termWidth, m.termHeight
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	listHeight := h - 5
	if m.adding {
		listHeight = h - 8
	}
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(w-2, listHeight)
}

func (m Model) View() string {
	m.applySizes()

	state := m.svc.Snapshot()
	var b strings.Builder

	active := render.Count(state.Items, render.FilterActive)
	done := render.Count(state.Items, render.FilterCompleted)
	b.WriteString(m.th.Title.Render(state.ListName))
	b.WriteString(m.th.Counts.Render(fmt.Sprintf("   %d to buy · %d done · view: %s", active, done, m.filter)))
	b.WriteString("\n\n")

	b.WriteString(m.viewRows())

	if m.adding {
		hint := ""
		if names := suggest.Suggest(m.input.Value(), state.Items); len(names) > 0 {
			max := 5
			if len(names) < max {
				max = len(names)
			}
			hint = "\n" + m.th.Note.Render(strings.Join(names[:max], " · "))
		}
		b.WriteString("\n")
		b.WriteString(m.th.Input.Render("Add item\n" + m.input.View() + hint))
	}

	b.WriteString("\n")
	b.WriteString(m.th.Help.Render(m.status))

	frame := lipgloss.NewStyle().Padding(0, 1)
	return frame.Render(b.String())
}

// viewRows renders the grouped rows directly; the bubbles list tracks the
// cursor while this draws the content single-line per row.
func (m Model) viewRows() string {
	rows := m.list.Items()
	if len(rows) == 0 {
		return m.th.Note.Render("nothing here, press a to add an item") + "\n"
	}

	start, end := m.visibleRange(len(rows))
	var b strings.Builder
	for i := start; i < end; i++ {
		prefix := "  "
		if i == m.list.Index() {
			prefix = m.th.Selected.Render("> ")
		}
		switch r := rows[i].(type) {
		case headerItem:
			b.WriteString(prefix + m.th.Header.Render(r.name) + "\n")
		case rowItem:
			line := fmt.Sprintf("%s %d× %s", glyph.Checkbox(r.it.Done), r.it.Qty(), r.it.Name)
			style := m.th.Item
			if r.it.Done {
				style = m.th.Done
			}
			b.WriteString(prefix + style.Render(line))
			if r.it.Note != "" {
				b.WriteString("  " + m.th.Note.Render(glyph.NoteMark+" "+r.it.Note))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// visibleRange keeps the cursor on screen for long lists.
func (m Model) visibleRange(total int) (int, int) {
	h := m.termHeight - 6
	if m.adding {
		h -= 3
	}
	if h < 3 {
		h = 3
	}
	if total <= h {
		return 0, total
	}
	start := m.list.Index() - h/2
	if start < 0 {
		start = 0
	}
	end := start + h
	if end > total {
		end = total
		start = end - h
	}
	return start, end
}

func nextFilter(f render.Filter) render.Filter {
	switch f {
	case render.FilterAll:
		return render.FilterActive
	case render.FilterActive:
		return render.FilterCompleted
	default:
		return render.FilterAll
	}
}
