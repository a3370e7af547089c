package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/sal/pkg/item"
	"tableflip.dev/sal/pkg/uid"
)

// Slot names inside the diskv base path. Each slot is independent: a
// malformed slot falls back to its default without touching the others.
const (
	slotItems = "items"
	slotTheme = "theme"
	slotName  = "name"
	slotID    = "id"
)

// DefaultListName labels a list the user has not named yet.
const DefaultListName = "Home Shopping"

// State is everything the list needs across restarts.
type State struct {
	Items     []*item.Item
	ThemeDark bool
	ListName  string
	ListID    string
}

// Persistence defines the persistence contract for list state.
type Persistence interface {
	Load() State
	SaveItems(items []*item.Item) error
	SaveTheme(dark bool) error
	SaveName(name string) error
	SaveID(id string) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Load never fails. Every slot is read independently and reverts to its
// default on any read or parse error, so partial corruption cannot
// invalidate unrelated slots. Malformed entries inside a parseable items
// slot pass through as-is; consumers repair quantity and category at the
// point of use.
func (p *persistence) Load() State {
	s := State{
		Items:    []*item.Item{},
		ListName: DefaultListName,
	}

	if b, err := p.d.Read(slotItems); err == nil {
		var items []*item.Item
		if err := json.Unmarshal(b, &items); err != nil {
			fmt.Fprintf(os.Stderr, "store: %s slot unreadable, starting empty: %v\n", slotItems, err)
		} else if items != nil {
			s.Items = items
		}
	}

	if b, err := p.d.Read(slotTheme); err == nil {
		var dark bool
		if err := json.Unmarshal(b, &dark); err != nil {
			fmt.Fprintf(os.Stderr, "store: %s slot unreadable, defaulting: %v\n", slotTheme, err)
		} else {
			s.ThemeDark = dark
		}
	}

	if b, err := p.d.Read(slotName); err == nil {
		if name := strings.TrimSpace(string(b)); name != "" {
			s.ListName = name
		}
	}

	if b, err := p.d.Read(slotID); err == nil {
		s.ListID = strings.TrimSpace(string(b))
	}
	if s.ListID == "" {
		s.ListID = uid.New()
		if err := p.SaveID(s.ListID); err != nil {
			fmt.Fprintf(os.Stderr, "store: persist list id: %v\n", err)
		}
	}

	return s
}

func (p *persistence) SaveItems(items []*item.Item) error {
	if items == nil {
		items = []*item.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("store: marshal items: %w", err)
	}
	return p.write(slotItems, data)
}

func (p *persistence) SaveTheme(dark bool) error {
	data, err := json.Marshal(dark)
	if err != nil {
		return fmt.Errorf("store: marshal theme: %w", err)
	}
	return p.write(slotTheme, data)
}

func (p *persistence) SaveName(name string) error {
	if strings.TrimSpace(name) == "" {
		name = DefaultListName
	}
	return p.write(slotName, []byte(name))
}

func (p *persistence) SaveID(id string) error {
	return p.write(slotID, []byte(id))
}

func (p *persistence) write(slot string, data []byte) error {
	if err := p.d.Write(slot, data); err != nil {
		return fmt.Errorf("store: write %s: %w", slot, err)
	}
	return nil
}
