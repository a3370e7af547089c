package app

import (
	"errors"
	"strings"

	"tableflip.dev/sal/pkg/item"
	"tableflip.dev/sal/pkg/store"
	"tableflip.dev/sal/pkg/uid"
)

// Service owns the in-memory list state and is its only writer. Every
// mutation persists through the store before returning, so the persisted
// state stays the single source of truth across restarts. UIs and CLIs
// share this so they agree on semantics.
type Service struct {
	Persistence store.Persistence

	state store.State
}

// New loads state and returns a ready Service.
func New(p store.Persistence) (*Service, error) {
	if p == nil {
		return nil, errors.New("app: no persistence configured")
	}
	s := &Service{Persistence: p}
	s.state = p.Load()
	return s, nil
}

// Reload re-reads state from persistence, discarding the in-memory copy.
func (s *Service) Reload() {
	s.state = s.Persistence.Load()
}

// Snapshot returns a read-only view of the current state. The item slice
// is copied; readers must not mutate the items themselves.
func (s *Service) Snapshot() store.State {
	out := s.state
	out.Items = make([]*item.Item, len(s.state.Items))
	copy(out.Items, s.state.Items)
	return out
}

func (s *Service) ListName() string { return s.state.ListName }
func (s *Service) ListID() string   { return s.state.ListID }
func (s *Service) ThemeDark() bool  { return s.state.ThemeDark }

// Add puts a named item on the list. A name that trims to empty is a
// silent no-op. A non-positive quantity becomes 1. When an unfinished
// item already carries the exact same name its quantity is incremented
// instead of creating a duplicate; finished items never merge, so a new
// entry appears alongside them.
func (s *Service) Add(name string, quantity int, cat, note string) (*item.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	if quantity < 1 {
		quantity = 1
	}

	for _, it := range s.state.Items {
		if !it.Done && it.Name == name {
			it.Quantity = it.Qty() + quantity
			return it, s.Persistence.SaveItems(s.state.Items)
		}
	}

	it := item.New(uid.New(), name, quantity, cat, note, s.state.ListID)
	s.state.Items = append([]*item.Item{it}, s.state.Items...)
	return it, s.Persistence.SaveItems(s.state.Items)
}

// Toggle flips the done flag for the item with the given id. Unknown ids
// are a no-op.
func (s *Service) Toggle(id string) (*item.Item, error) {
	for _, it := range s.state.Items {
		if it.ID == id {
			it.Toggle()
			return it, s.Persistence.SaveItems(s.state.Items)
		}
	}
	return nil, nil
}

// Remove deletes the item with the given id. Unknown ids are a no-op.
func (s *Service) Remove(id string) (*item.Item, error) {
	for i, it := range s.state.Items {
		if it.ID == id {
			s.state.Items = append(s.state.Items[:i], s.state.Items[i+1:]...)
			return it, s.Persistence.SaveItems(s.state.Items)
		}
	}
	return nil, nil
}

// ClearCompleted drops every finished item and reports how many went.
func (s *Service) ClearCompleted() (int, error) {
	kept := s.state.Items[:0:0]
	removed := 0
	for _, it := range s.state.Items {
		if it.Done {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	if removed == 0 {
		return 0, nil
	}
	s.state.Items = kept
	return removed, s.Persistence.SaveItems(s.state.Items)
}

// ReplaceAll swaps in a whole new item sequence, assigning fresh ids to
// items that lack one. Imported items are not otherwise validated or
// normalized. Name and list id are adopted only when non-empty.
func (s *Service) ReplaceAll(items []*item.Item, name, listID string) error {
	next := make([]*item.Item, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		if it.ID == "" {
			it.ID = uid.New()
		}
		next = append(next, it)
	}
	if listID != "" {
		s.state.ListID = listID
		if err := s.Persistence.SaveID(listID); err != nil {
			return err
		}
	}
	if name != "" {
		s.state.ListName = name
		if err := s.Persistence.SaveName(name); err != nil {
			return err
		}
	}
	s.state.Items = next
	return s.Persistence.SaveItems(s.state.Items)
}

// SetListName renames the list; an empty name falls back to the default.
func (s *Service) SetListName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		name = store.DefaultListName
	}
	s.state.ListName = name
	return s.Persistence.SaveName(name)
}

// SetTheme flips the presentation mode flag.
func (s *Service) SetTheme(dark bool) error {
	s.state.ThemeDark = dark
	return s.Persistence.SaveTheme(dark)
}
