package app

import (
	"context"
	"testing"

	"tableflip.dev/sal/pkg/exchange"
	"tableflip.dev/sal/pkg/item"
	"tableflip.dev/sal/pkg/store"
)

// memStore is an in-memory Persistence for tests.
type memStore struct {
	state store.State
	saves int
}

func newMemStore() *memStore {
	return &memStore{state: store.State{
		Items:    []*item.Item{},
		ListName: store.DefaultListName,
		ListID:   "list-1",
	}}
}

func (m *memStore) Load() store.State { return m.state }

func (m *memStore) SaveItems(items []*item.Item) error {
	m.state.Items = items
	m.saves++
	return nil
}

func (m *memStore) SaveTheme(dark bool) error {
	m.state.ThemeDark = dark
	return nil
}

func (m *memStore) SaveName(name string) error {
	m.state.ListName = name
	return nil
}

func (m *memStore) SaveID(id string) error {
	m.state.ListID = id
	return nil
}

func (m *memStore) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func newTestService(t *testing.T) (*Service, *memStore) {
	t.Helper()
	p := newMemStore()
	svc, err := New(p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return svc, p
}

func assertUniqueIDs(t *testing.T, svc *Service) {
	t.Helper()
	seen := map[string]bool{}
	for _, it := range svc.Snapshot().Items {
		if seen[it.ID] {
			t.Fatalf("duplicate id %q", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestAddBlankNameIsNoOp(t *testing.T) {
	svc, p := newTestService(t)

	for _, name := range []string{"", "   ", "\t\n"} {
		it, err := svc.Add(name, 1, "", "")
		if err != nil {
			t.Fatalf("Add(%q): %v", name, err)
		}
		if it != nil {
			t.Fatalf("Add(%q) created an item", name)
		}
	}
	if len(svc.Snapshot().Items) != 0 {
		t.Fatalf("expected empty list, got %d items", len(svc.Snapshot().Items))
	}
	if p.saves != 0 {
		t.Fatalf("blank add should not persist, saved %d times", p.saves)
	}
}

func TestAddUnshiftsNewItems(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Add("Bread", 1, "Bakery", ""); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := svc.Add("Milk", 1, "Dairy", ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	items := svc.Snapshot().Items
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "Milk" {
		t.Fatalf("expected newest first, got %q", items[0].Name)
	}
	assertUniqueIDs(t, svc)
}

func TestAddMergesIntoUnfinishedMatch(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Add("Milk", 2, "Dairy", ""); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := svc.Add("Milk", 1, "Dairy", ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	items := svc.Snapshot().Items
	if len(items) != 1 {
		t.Fatalf("expected a single merged item, got %d", len(items))
	}
	if items[0].Name != "Milk" || items[0].Quantity != 3 {
		t.Fatalf("expected Milk x3, got %s x%d", items[0].Name, items[0].Quantity)
	}
}

func TestAddDoesNotMergeIntoCompletedMatch(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.Add("Bread", 1, "Bakery", "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := svc.Toggle(first.ID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if _, err := svc.Add("Bread", 1, "Bakery", ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	items := svc.Snapshot().Items
	if len(items) != 2 {
		t.Fatalf("expected two Bread entries, got %d", len(items))
	}
	var done, active *item.Item
	for _, it := range items {
		if it.Done {
			done = it
		} else {
			active = it
		}
	}
	if done == nil || active == nil {
		t.Fatalf("expected one done and one active entry")
	}
	if done.Quantity != 1 || active.Quantity != 1 {
		t.Fatalf("expected both quantity 1, got done=%d active=%d", done.Quantity, active.Quantity)
	}
	assertUniqueIDs(t, svc)
}

func TestAddCoercesQuantity(t *testing.T) {
	svc, _ := newTestService(t)

	it, err := svc.Add("Eggs", -4, "", "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if it.Quantity != 1 {
		t.Fatalf("expected quantity coerced to 1, got %d", it.Quantity)
	}
}

func TestToggleUnknownIDIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Add("Milk", 1, "", ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	it, err := svc.Toggle("nope")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if it != nil {
		t.Fatalf("expected nil for unknown id")
	}
	if svc.Snapshot().Items[0].Done {
		t.Fatalf("unknown toggle mutated state")
	}
}

func TestRemove(t *testing.T) {
	svc, _ := newTestService(t)
	it, _ := svc.Add("Milk", 1, "", "")
	if _, err := svc.Add("Bread", 1, "", ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	removed, err := svc.Remove(it.ID)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removed == nil || removed.ID != it.ID {
		t.Fatalf("expected removed item %q back", it.ID)
	}
	items := svc.Snapshot().Items
	if len(items) != 1 || items[0].Name != "Bread" {
		t.Fatalf("unexpected items after remove: %#v", items)
	}

	if removed, _ := svc.Remove("nope"); removed != nil {
		t.Fatalf("unknown remove should be a no-op")
	}
}

func TestClearCompletedIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	a, _ := svc.Add("Milk", 1, "", "")
	svc.Add("Bread", 1, "", "")
	c, _ := svc.Add("Eggs", 1, "", "")
	svc.Toggle(a.ID)
	svc.Toggle(c.ID)

	n, err := svc.ClearCompleted()
	if err != nil {
		t.Fatalf("ClearCompleted: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 cleared, got %d", n)
	}
	after := svc.Snapshot().Items

	n, err = svc.ClearCompleted()
	if err != nil {
		t.Fatalf("ClearCompleted: %v", err)
	}
	if n != 0 {
		t.Fatalf("second clear removed %d items", n)
	}
	again := svc.Snapshot().Items
	if len(after) != len(again) || len(after) != 1 || after[0].Name != "Bread" {
		t.Fatalf("clear is not idempotent: %#v vs %#v", after, again)
	}
}

func TestReplaceAllAssignsMissingIDs(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Add("Old", 1, "", "")

	incoming := []*item.Item{
		{Name: "Milk", Quantity: 2, Category: "Dairy"},
		{ID: "keep-me", Name: "Bread", Quantity: 1},
	}
	if err := svc.ReplaceAll(incoming, "Imported", "list-9"); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	state := svc.Snapshot()
	if state.ListName != "Imported" || state.ListID != "list-9" {
		t.Fatalf("list metadata not adopted: %q %q", state.ListName, state.ListID)
	}
	if len(state.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(state.Items))
	}
	if state.Items[0].ID == "" {
		t.Fatalf("expected a fresh id for id-less item")
	}
	if state.Items[1].ID != "keep-me" {
		t.Fatalf("existing id should survive, got %q", state.Items[1].ID)
	}
	assertUniqueIDs(t, svc)
}

func TestExportImportRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Add("Milk", 2, "Dairy", "the 3% one")
	svc.Add("Bread", 1, "Bakery", "")
	it, _ := svc.Add("Eggs", 1, "Dairy", "")
	svc.Toggle(it.ID)

	state := svc.Snapshot()
	data, err := exchange.Export(state.ListName, state.ListID, state.Items)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	doc, err := exchange.Import(data)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if err := svc.ReplaceAll(doc.Items, doc.ListName, doc.ListID); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	after := svc.Snapshot()
	if after.ListName != state.ListName || after.ListID != state.ListID {
		t.Fatalf("list metadata changed across round trip")
	}
	if len(after.Items) != len(state.Items) {
		t.Fatalf("item count changed: %d vs %d", len(after.Items), len(state.Items))
	}
	for i := range state.Items {
		want, got := state.Items[i], after.Items[i]
		if want.ID != got.ID || want.Name != got.Name || want.Quantity != got.Quantity ||
			want.Category != got.Category || want.Note != got.Note || want.Done != got.Done {
			t.Fatalf("item %d changed across round trip: %#v vs %#v", i, want, got)
		}
	}
}

func TestSetListNameDefaultsWhenEmpty(t *testing.T) {
	svc, _ := newTestService(t)
	if err := svc.SetListName("  "); err != nil {
		t.Fatalf("SetListName: %v", err)
	}
	if svc.ListName() != store.DefaultListName {
		t.Fatalf("expected default name, got %q", svc.ListName())
	}

	if err := svc.SetListName("Weekend BBQ"); err != nil {
		t.Fatalf("SetListName: %v", err)
	}
	if svc.ListName() != "Weekend BBQ" {
		t.Fatalf("expected rename, got %q", svc.ListName())
	}
}

func TestSetThemePersists(t *testing.T) {
	svc, p := newTestService(t)
	if err := svc.SetTheme(true); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	if !svc.ThemeDark() || !p.state.ThemeDark {
		t.Fatalf("theme flag not persisted")
	}
}

func TestUniqueIDsAcrossOperationSequence(t *testing.T) {
	svc, _ := newTestService(t)

	a, _ := svc.Add("Milk", 1, "Dairy", "")
	svc.Add("Bread", 1, "Bakery", "")
	svc.Toggle(a.ID)
	assertUniqueIDs(t, svc)
	svc.Add("Milk", 1, "Dairy", "") // completed Milk exists; new entry
	assertUniqueIDs(t, svc)
	svc.Remove(a.ID)
	assertUniqueIDs(t, svc)
	svc.Add("Eggs", 2, "Dairy", "")
	svc.ClearCompleted()
	assertUniqueIDs(t, svc)
}
