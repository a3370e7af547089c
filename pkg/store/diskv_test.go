package store

import (
	"os"
	"path/filepath"
	"testing"

	"tableflip.dev/sal/pkg/item"
)

func testPersistence(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(&fileConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func TestLoadDefaultsOnEmptyStore(t *testing.T) {
	p := testPersistence(t)

	s := p.Load()
	if len(s.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(s.Items))
	}
	if s.ThemeDark {
		t.Fatal("theme must default to light")
	}
	if s.ListName != DefaultListName {
		t.Fatalf("want %q, got %q", DefaultListName, s.ListName)
	}
	if s.ListID == "" {
		t.Fatal("a list id must be generated on first load")
	}
}

func TestLoadGeneratesAndPersistsListID(t *testing.T) {
	p := testPersistence(t)

	first := p.Load().ListID
	second := p.Load().ListID
	if first == "" || first != second {
		t.Fatalf("list id must be stable across loads: %q vs %q", first, second)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p := testPersistence(t)

	items := []*item.Item{
		item.New("a", "Milk", 2, "Dairy", "", ""),
		item.New("b", "Bread", 1, "Bakery", "sliced", ""),
	}
	if err := p.SaveItems(items); err != nil {
		t.Fatalf("save items: %v", err)
	}
	if err := p.SaveTheme(true); err != nil {
		t.Fatalf("save theme: %v", err)
	}
	if err := p.SaveName("Weekend Run"); err != nil {
		t.Fatalf("save name: %v", err)
	}

	s := p.Load()
	if len(s.Items) != 2 || s.Items[0].Name != "Milk" || s.Items[1].Note != "sliced" {
		t.Fatalf("items did not survive the round trip: %+v", s.Items)
	}
	if !s.ThemeDark {
		t.Fatal("theme did not survive the round trip")
	}
	if s.ListName != "Weekend Run" {
		t.Fatalf("list name did not survive: %q", s.ListName)
	}
}

func TestSaveNameBlankBecomesDefault(t *testing.T) {
	p := testPersistence(t)

	if err := p.SaveName("   "); err != nil {
		t.Fatalf("save name: %v", err)
	}
	if s := p.Load(); s.ListName != DefaultListName {
		t.Fatalf("want %q, got %q", DefaultListName, s.ListName)
	}
}

func corrupt(t *testing.T, base, slot string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(base, slot), []byte("{{{ not json"), 0o644); err != nil {
		t.Fatalf("corrupt %s: %v", slot, err)
	}
}

func TestCorruptSlotDoesNotTouchOthers(t *testing.T) {
	base := t.TempDir()
	p, err := Load(&fileConfig{Path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if err := p.SaveItems([]*item.Item{item.New("a", "Milk", 1, "", "", "")}); err != nil {
		t.Fatalf("save items: %v", err)
	}
	if err := p.SaveName("Weekend Run"); err != nil {
		t.Fatalf("save name: %v", err)
	}
	corrupt(t, base, slotTheme)

	s := p.Load()
	if s.ThemeDark {
		t.Fatal("corrupt theme slot must fall back to light")
	}
	if len(s.Items) != 1 || s.Items[0].Name != "Milk" {
		t.Fatalf("items slot must be unaffected: %+v", s.Items)
	}
	if s.ListName != "Weekend Run" {
		t.Fatalf("name slot must be unaffected: %q", s.ListName)
	}
}

func TestCorruptItemsSlotStartsEmpty(t *testing.T) {
	base := t.TempDir()
	p, err := Load(&fileConfig{Path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if err := p.SaveTheme(true); err != nil {
		t.Fatalf("save theme: %v", err)
	}
	corrupt(t, base, slotItems)

	s := p.Load()
	if len(s.Items) != 0 {
		t.Fatalf("corrupt items slot must start empty, got %+v", s.Items)
	}
	if !s.ThemeDark {
		t.Fatal("theme slot must be unaffected")
	}
}

func TestSaveItemsNilMeansEmpty(t *testing.T) {
	p := testPersistence(t)

	if err := p.SaveItems([]*item.Item{item.New("a", "Milk", 1, "", "", "")}); err != nil {
		t.Fatalf("save items: %v", err)
	}
	if err := p.SaveItems(nil); err != nil {
		t.Fatalf("save nil items: %v", err)
	}
	if s := p.Load(); len(s.Items) != 0 {
		t.Fatalf("expected empty list, got %+v", s.Items)
	}
}

func TestSlotForPath(t *testing.T) {
	base := "/tmp/sal-db"
	cases := map[string]string{
		filepath.Join(base, slotItems):      slotItems,
		filepath.Join(base, slotTheme):      slotTheme,
		filepath.Join(base, slotName):       slotName,
		filepath.Join(base, slotID):         slotID,
		filepath.Join(base, "unrelated"):    "",
		filepath.Join(base, "sub", "items"): "",
		base:                                "",
	}
	for path, want := range cases {
		if got := slotForPath(base, path); got != want {
			t.Fatalf("slotForPath(%q): want %q, got %q", path, want, got)
		}
	}
}
