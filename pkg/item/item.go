package item

import (
	"time"

	"tableflip.dev/sal/pkg/category"
)

// New creates an item with its creation time set. The caller supplies the
// identifier so id strategy stays out of the model.
func New(id, name string, quantity int, cat, note, listID string) *Item {
	if quantity < 1 {
		quantity = 1
	}
	return &Item{
		ID:       id,
		Name:     name,
		Quantity: quantity,
		Category: cat,
		Note:     note,
		ListID:   listID,
		Created:  Timestamp{Time: time.Now()},
	}
}

// Item is a single grocery entry.
type Item struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`
	Category string    `json:"category,omitempty"`
	Note     string    `json:"note,omitempty"`
	Done     bool      `json:"done"`
	Created  Timestamp `json:"createdAt,omitempty"`
	ListID   string    `json:"listId,omitempty"`
}

// Qty returns the quantity coerced to at least 1. Stored values are never
// rewritten; malformed quantities are only repaired at the point of use.
func (i *Item) Qty() int {
	if i.Quantity < 1 {
		return 1
	}
	return i.Quantity
}

// Bucket returns the category the item renders under, never empty.
func (i *Item) Bucket() string {
	return category.Normalize(i.Category)
}

func (i *Item) Toggle() {
	i.Done = !i.Done
}
