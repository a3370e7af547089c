package exchange

import (
	"errors"
	"testing"

	"tableflip.dev/sal/pkg/item"
)

func TestExportImportRoundTrip(t *testing.T) {
	items := []*item.Item{
		item.New("a", "Milk", 2, "Dairy", "", "list-1"),
		item.New("b", "Bread", 1, "Bakery", "sliced", "list-1"),
	}
	items[1].Done = true

	data, err := Export("Home Shopping", "list-1", items)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	doc, err := Import(data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if doc.Version != Version {
		t.Fatalf("version: want %d, got %d", Version, doc.Version)
	}
	if doc.ListName != "Home Shopping" || doc.ListID != "list-1" {
		t.Fatalf("list identity lost: %q %q", doc.ListName, doc.ListID)
	}
	if len(doc.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(doc.Items))
	}
	if doc.Items[0].Name != "Milk" || doc.Items[0].Quantity != 2 {
		t.Fatalf("first item mangled: %+v", doc.Items[0])
	}
	if !doc.Items[1].Done || doc.Items[1].Note != "sliced" {
		t.Fatalf("second item mangled: %+v", doc.Items[1])
	}
}

func TestExportNilItemsIsEmptyArray(t *testing.T) {
	data, err := Export("x", "y", nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	doc, err := Import(data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(doc.Items) != 0 {
		t.Fatalf("expected empty items, got %v", doc.Items)
	}
}

func TestImportRejectsNonJSON(t *testing.T) {
	_, err := Import([]byte("this is not json"))
	if !errors.Is(err, ErrBadDocument) {
		t.Fatalf("want ErrBadDocument, got %v", err)
	}
}

func TestImportRejectsItemsNotAnArray(t *testing.T) {
	cases := []string{
		`{"version":1,"listName":"x","items":"not-an-array"}`,
		`{"version":1,"listName":"x","items":42}`,
		`{"version":1,"listName":"x","items":null}`,
		`{"version":1,"listName":"x"}`,
	}
	for _, c := range cases {
		if _, err := Import([]byte(c)); !errors.Is(err, ErrInvalidFile) {
			t.Fatalf("%s: want ErrInvalidFile, got %v", c, err)
		}
	}
}

func TestImportAcceptsEmptyArray(t *testing.T) {
	doc, err := Import([]byte(`{"version":1,"listName":"x","listId":"y","items":[]}`))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(doc.Items) != 0 {
		t.Fatalf("expected no items, got %v", doc.Items)
	}
}

func TestFilename(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Home Shopping", "Home_Shopping.json"},
		{"  spaced   out  ", "spaced_out.json"},
		{"", "list.json"},
		{"   ", "list.json"},
		{"one", "one.json"},
	}
	for _, c := range cases {
		if got := Filename(c.name); got != c.want {
			t.Fatalf("Filename(%q): want %q, got %q", c.name, got, c.want)
		}
	}
}
