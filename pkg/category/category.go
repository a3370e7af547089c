// Package category defines the fixed category buckets items group under.
package category

import "strings"

// Fallback is the bucket for items without a recognized category.
const Fallback = "Other"

// Canonical is the display order for the built-in categories. Categories
// outside this set still render, after these, in first-encountered order.
var Canonical = []string{
	"Produce",
	"Dairy",
	"Bakery",
	"Meat & Fish",
	"Frozen",
	"Pantry",
	"Snacks",
	"Drinks",
	"Household",
	Fallback,
}

// Normalize maps an empty or whitespace-only category to the fallback
// bucket. Anything else passes through untouched, including arbitrary
// user- or import-provided values.
func Normalize(c string) string {
	if strings.TrimSpace(c) == "" {
		return Fallback
	}
	return c
}

// Rank returns the position of c in the canonical order, or len(Canonical)
// when c is not canonical.
func Rank(c string) int {
	for i, name := range Canonical {
		if name == c {
			return i
		}
	}
	return len(Canonical)
}
