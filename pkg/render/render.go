// Package render projects list state and a view filter into the grouped,
// ordered structure the display surfaces consume. It holds no state of
// its own; every call rebuilds the projection from the snapshot it is
// handed.
package render

import (
	"tableflip.dev/sal/pkg/category"
	"tableflip.dev/sal/pkg/item"
)

// Filter selects which items a view shows. It is applied at render time
// and never persisted.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// ParseFilter maps user input to a Filter, defaulting to all.
func ParseFilter(s string) Filter {
	switch Filter(s) {
	case FilterActive:
		return FilterActive
	case FilterCompleted:
		return FilterCompleted
	}
	return FilterAll
}

// Group is one category bucket with its items in list order.
type Group struct {
	Category string
	Items    []*item.Item
}

// Groups filters items and buckets them by category. Canonical categories
// come first in their fixed order (only the ones present), then any other
// categories in first-encountered order. Items keep the list's own order
// within each group. An empty result returns an empty slice.
func Groups(items []*item.Item, f Filter) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)

	for _, it := range items {
		if it == nil {
			continue
		}
		switch f {
		case FilterActive:
			if it.Done {
				continue
			}
		case FilterCompleted:
			if !it.Done {
				continue
			}
		}
		bucket := it.Bucket()
		gi, ok := index[bucket]
		if !ok {
			gi = len(groups)
			index[bucket] = gi
			groups = append(groups, Group{Category: bucket})
		}
		groups[gi].Items = append(groups[gi].Items, it)
	}

	ordered := make([]Group, 0, len(groups))
	for _, name := range category.Canonical {
		if gi, ok := index[name]; ok {
			ordered = append(ordered, groups[gi])
		}
	}
	for _, g := range groups {
		if category.Rank(g.Category) == len(category.Canonical) {
			ordered = append(ordered, g)
		}
	}
	return ordered
}

// Count returns how many items survive the filter.
func Count(items []*item.Item, f Filter) int {
	n := 0
	for _, g := range Groups(items, f) {
		n += len(g.Items)
	}
	return n
}
