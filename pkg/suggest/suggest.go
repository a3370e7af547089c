// Package suggest offers candidate item names for quick entry, derived
// from a fixed starter vocabulary plus the names already on the list.
package suggest

import (
	"strings"

	"tableflip.dev/sal/pkg/item"
)

// Max caps how many suggestions a query returns.
const Max = 12

// Suggest returns up to Max distinct names matching the query. The pool is
// the starter vocabulary in its fixed order followed by distinct item
// names in list order, deduplicated first-seen. An empty query returns the
// head of the pool; otherwise matching is plain substring, case and
// diacritics included. Pure function, no side effects.
func Suggest(query string, items []*item.Item) []string {
	pool := make([]string, 0, len(Vocabulary)+len(items))
	seen := make(map[string]struct{}, len(Vocabulary)+len(items))

	take := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		pool = append(pool, name)
	}

	for _, name := range Vocabulary {
		take(name)
	}
	for _, it := range items {
		if it != nil && it.Name != "" {
			take(it.Name)
		}
	}

	out := make([]string, 0, Max)
	for _, name := range pool {
		if query != "" && !strings.Contains(name, query) {
			continue
		}
		out = append(out, name)
		if len(out) == Max {
			break
		}
	}
	return out
}
