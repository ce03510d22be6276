// Package collection stores each entity collection as one JSON array under a
// single key of a key-value store. Every write rewrites the whole array.
package collection

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection names. The storage key is the configured prefix plus the name.
const (
	Reports       = "reports"
	Dashboards    = "dashboards"
	Datasets      = "datasets"
	Workspaces    = "workspaces"
	Notifications = "notifications"
)

// Key builds the storage key for a collection name.
func Key(prefix, name string) string {
	return prefix + name
}

// Store is the key-value backend. Absent keys report found == false.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// TxManager runs a read-modify-write sequence atomically.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Record is an element of a collection.
type Record interface {
	RecordID() string
}

// Collection is a repository over one JSON array.
type Collection[T Record] struct {
	store Store
	tx    TxManager
	key   string
}

// New creates a Collection stored under key.
func New[T Record](store Store, tx TxManager, key string) *Collection[T] {
	return &Collection[T]{store: store, tx: tx, key: key}
}

// Key returns the storage key of the collection.
func (c *Collection[T]) Key() string { return c.key }

// ListAll returns the collection in stored order.
// A key that was never written is an empty collection.
func (c *Collection[T]) ListAll(ctx context.Context) ([]T, error) {
	return c.load(ctx)
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, bool, error) {
	var zero T

	items, err := c.load(ctx)
	if err != nil {
		return zero, false, err
	}

	if i := indexOf(items, id); i >= 0 {
		return items[i], true, nil
	}
	return zero, false, nil
}

// Count returns the number of records matching pred. A nil pred counts all.
func (c *Collection[T]) Count(ctx context.Context, pred func(T) bool) (int, error) {
	items, err := c.load(ctx)
	if err != nil {
		return 0, err
	}

	if pred == nil {
		return len(items), nil
	}

	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n, nil
}

// Insert appends rec to the collection.
func (c *Collection[T]) Insert(ctx context.Context, rec T) error {
	return c.modify(ctx, func(items []T) ([]T, bool, error) {
		return append(items, rec), true, nil
	})
}

// InsertFirst puts rec at the head of the collection.
func (c *Collection[T]) InsertFirst(ctx context.Context, rec T) error {
	return c.modify(ctx, func(items []T) ([]T, bool, error) {
		out := make([]T, 0, len(items)+1)
		out = append(out, rec)
		return append(out, items...), true, nil
	})
}

// InsertIfEmpty writes recs only when the collection holds no records.
// It returns how many records were written.
func (c *Collection[T]) InsertIfEmpty(ctx context.Context, recs []T) (int, error) {
	inserted := 0
	err := c.modify(ctx, func(items []T) ([]T, bool, error) {
		if len(items) > 0 || len(recs) == 0 {
			return items, false, nil
		}
		inserted = len(recs)
		return append(items, recs...), true, nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// UpdateByID applies mutate to the record with the given id and persists the
// collection. When the id is absent nothing is written and found is false.
// An error from mutate aborts the update.
func (c *Collection[T]) UpdateByID(ctx context.Context, id string, mutate func(*T) error) (T, bool, error) {
	var (
		updated T
		found   bool
	)

	err := c.modify(ctx, func(items []T) ([]T, bool, error) {
		i := indexOf(items, id)
		if i < 0 {
			return items, false, nil
		}
		if err := mutate(&items[i]); err != nil {
			return nil, false, err
		}
		updated, found = items[i], true
		return items, true, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return updated, found, nil
}

// UpdateWhere applies mutate to every record. mutate reports whether it
// changed the record; the collection is written only if something changed.
func (c *Collection[T]) UpdateWhere(ctx context.Context, mutate func(*T) bool) (int, error) {
	changed := 0
	err := c.modify(ctx, func(items []T) ([]T, bool, error) {
		for i := range items {
			if mutate(&items[i]) {
				changed++
			}
		}
		return items, changed > 0, nil
	})
	if err != nil {
		return 0, err
	}
	return changed, nil
}

// DeleteByID removes the record with the given id and reports whether one
// was removed.
func (c *Collection[T]) DeleteByID(ctx context.Context, id string) (bool, error) {
	n, err := c.DeleteWhere(ctx, func(item T) bool { return item.RecordID() == id })
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteWhere removes every record matching pred and returns how many were removed.
func (c *Collection[T]) DeleteWhere(ctx context.Context, pred func(T) bool) (int, error) {
	removed := 0
	err := c.modify(ctx, func(items []T) ([]T, bool, error) {
		kept := items[:0]
		for _, item := range items {
			if pred(item) {
				removed++
				continue
			}
			kept = append(kept, item)
		}
		return kept, removed > 0, nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// modify loads the collection, applies fn and writes the result back when fn
// reports a change. The whole sequence runs inside one transaction.
func (c *Collection[T]) modify(ctx context.Context, fn func([]T) ([]T, bool, error)) error {
	return c.tx.RunInTx(ctx, func(ctx context.Context) error {
		items, err := c.load(ctx)
		if err != nil {
			return err
		}

		out, changed, err := fn(items)
		if err != nil || !changed {
			return err
		}

		return c.save(ctx, out)
	})
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	raw, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}

	items := []T{}
	if !found || len(raw) == 0 {
		return items, nil
	}

	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}

	if err := c.store.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}

func indexOf[T Record](items []T, id string) int {
	for i, item := range items {
		if item.RecordID() == id {
			return i
		}
	}
	return -1
}
