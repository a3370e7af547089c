package category

import "testing"

func TestNormalize(t *testing.T) {
	if got := Normalize(""); got != Fallback {
		t.Fatalf("empty category: want %q, got %q", Fallback, got)
	}
	if got := Normalize("  \t "); got != Fallback {
		t.Fatalf("blank category: want %q, got %q", Fallback, got)
	}
	if got := Normalize("Dairy"); got != "Dairy" {
		t.Fatalf("canonical category mangled: %q", got)
	}
	if got := Normalize("My Weird Aisle"); got != "My Weird Aisle" {
		t.Fatalf("unknown categories must pass through, got %q", got)
	}
}

func TestRankFollowsCanonicalOrder(t *testing.T) {
	for i, name := range Canonical {
		if got := Rank(name); got != i {
			t.Fatalf("Rank(%q): want %d, got %d", name, i, got)
		}
	}
	if got := Rank("Chemicals"); got != len(Canonical) {
		t.Fatalf("unknown category must rank last, got %d", got)
	}
}

func TestFallbackIsCanonical(t *testing.T) {
	if Rank(Fallback) == len(Canonical) {
		t.Fatalf("%q must appear in the canonical order", Fallback)
	}
}
