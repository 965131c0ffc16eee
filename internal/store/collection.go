package store

import (
	"encoding/json"
	"fmt"

	"github.com/zulandar/messagecraft/internal/models"
)

// Record is anything a Collection can hold.
type Record interface {
	RecordID() string
}

// Order controls where Add places new records.
type Order int

const (
	// Prepend puts new records first (most-recent-first display).
	Prepend Order = iota
	// Append puts new records last.
	Append
)

// Collection provides typed access to one stored collection. Add and
// Delete are read-modify-write of the whole blob with no locking:
// last writer wins.
type Collection[T Record] struct {
	kv    KV
	key   string
	order Order
}

// NewCollection wraps a KV key as a typed collection.
func NewCollection[T Record](kv KV, key string, order Order) *Collection[T] {
	return &Collection[T]{kv: kv, key: key, order: order}
}

// Messages returns the message collection (prepend order).
func Messages(kv KV) *Collection[models.Message] {
	return NewCollection[models.Message](kv, KeyMessages, Prepend)
}

// Templates returns the template collection (prepend order).
func Templates(kv KV) *Collection[models.MessageTemplate] {
	return NewCollection[models.MessageTemplate](kv, KeyTemplates, Prepend)
}

// Categories returns the category collection (append order).
func Categories(kv KV) *Collection[models.MessageCategory] {
	return NewCollection[models.MessageCategory](kv, KeyCategories, Append)
}

// Get returns the stored records. An absent key yields an empty slice.
// Malformed stored JSON is surfaced as an error, never discarded.
func (c *Collection[T]) Get() ([]T, error) {
	raw, ok, err := c.kv.Get(c.key)
	if err != nil {
		return nil, fmt.Errorf("store: get %s: %w", c.key, err)
	}
	if !ok {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", c.key, err)
	}
	return items, nil
}

// Set replaces the entire stored collection.
func (c *Collection[T]) Set(items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", c.key, err)
	}
	if err := c.kv.Set(c.key, string(data)); err != nil {
		return fmt.Errorf("store: set %s: %w", c.key, err)
	}
	return nil
}

// Add inserts item according to the collection's order.
func (c *Collection[T]) Add(item T) error {
	items, err := c.Get()
	if err != nil {
		return err
	}
	if c.order == Prepend {
		items = append([]T{item}, items...)
	} else {
		items = append(items, item)
	}
	return c.Set(items)
}

// Delete removes the record with the given id. Unknown ids are a no-op.
func (c *Collection[T]) Delete(id string) error {
	items, err := c.Get()
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if it.RecordID() != id {
			kept = append(kept, it)
		}
	}
	return c.Set(kept)
}

// Clear removes the collection entirely.
func (c *Collection[T]) Clear() error {
	if err := c.kv.Delete(c.key); err != nil {
		return fmt.Errorf("store: clear %s: %w", c.key, err)
	}
	return nil
}
