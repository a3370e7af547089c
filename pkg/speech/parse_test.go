package speech

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		transcript string
		fallback   int
		wantQty    int
		wantName   string
	}{
		{"2 milk", 1, 2, "milk"},
		{"milk 2", 1, 2, "milk"},
		{"12 brown eggs", 1, 12, "brown eggs"},
		{"brown eggs 12", 1, 12, "brown eggs"},
		{"milk", 1, 1, "milk"},
		{"milk", 5, 5, "milk"},
		{"  milk  ", 3, 3, "milk"},
		{"1234 apples", 1, 1, "1234 apples"},
		{"apples 1234", 1, 1, "apples 1234"},
		{"0 milk", 2, 2, "0 milk"},
		{"", 0, 1, ""},
		{"2", 1, 1, "2"},
	}
	for _, c := range cases {
		qty, name := Parse(c.transcript, c.fallback)
		if qty != c.wantQty || name != c.wantName {
			t.Fatalf("Parse(%q, %d): want (%d, %q), got (%d, %q)",
				c.transcript, c.fallback, c.wantQty, c.wantName, qty, name)
		}
	}
}

func TestParseCoercesFallback(t *testing.T) {
	if qty, _ := Parse("milk", -4); qty != 1 {
		t.Fatalf("negative fallback should coerce to 1, got %d", qty)
	}
}
