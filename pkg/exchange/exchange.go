// Package exchange moves whole lists in and out of the app as JSON
// documents.
package exchange

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/sal/pkg/item"
)

// Version identifies the document schema.
const Version = 1

var (
	// ErrBadDocument means the payload is not valid JSON at all.
	ErrBadDocument = errors.New("exchange: file could not be read as a list document")

	// ErrInvalidFile means the document parsed but its items field is not
	// an array.
	ErrInvalidFile = errors.New("exchange: not a valid list file")
)

// Document is the exported list schema.
type Document struct {
	Version  int          `json:"version"`
	ListName string       `json:"listName"`
	ListID   string       `json:"listId"`
	Items    []*item.Item `json:"items"`
}

// Export serializes the list as an indented document.
func Export(listName, listID string, items []*item.Item) ([]byte, error) {
	if items == nil {
		items = []*item.Item{}
	}
	doc := Document{
		Version:  Version,
		ListName: listName,
		ListID:   listID,
		Items:    items,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("exchange: marshal document: %w", err)
	}
	return data, nil
}

// Filename derives the download name from the list name: whitespace runs
// become underscores, an empty name becomes "list".
func Filename(listName string) string {
	name := strings.Join(strings.Fields(listName), "_")
	if name == "" {
		name = "list"
	}
	return name + ".json"
}

// Import parses an uploaded document. Unparseable payloads return
// ErrBadDocument; a document whose items field is not an array returns
// ErrInvalidFile. Either way nothing is returned for the caller to apply,
// so prior state stays intact. Items are not validated or normalized
// beyond what the caller's ReplaceAll does (fresh ids for id-less items).
func Import(data []byte) (Document, error) {
	var raw struct {
		Version  int             `json:"version"`
		ListName string          `json:"listName"`
		ListID   string          `json:"listId"`
		Items    json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, ErrBadDocument
	}

	var items []*item.Item
	if len(raw.Items) == 0 {
		return Document{}, ErrInvalidFile
	}
	if err := json.Unmarshal(raw.Items, &items); err != nil || items == nil {
		return Document{}, ErrInvalidFile
	}

	return Document{
		Version:  raw.Version,
		ListName: raw.ListName,
		ListID:   raw.ListID,
		Items:    items,
	}, nil
}
