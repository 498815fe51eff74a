package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"joinerypro/internal/usecase/interfaces"
)

// collection is one ordered entity list persisted as a JSON array under key.
// Mutations build the next slice, flush it, and only then swap it in, so a
// failed save leaves memory untouched.
type collection[T any] struct {
	key   string
	items []T
	id    func(T) string
	clone func(T) T
}

func newCollection[T any](key string, id func(T) string, clone func(T) T) *collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &collection[T]{key: key, id: id, clone: clone}
}

func (c *collection[T]) load(ctx context.Context, kv interfaces.IKeyValueStore) error {
	raw, err := kv.Load(ctx, c.key)
	if err != nil {
		return fmt.Errorf("load %s: %w", c.key, err)
	}
	if len(raw) == 0 {
		c.items = nil
		return nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("decode %s: %w", c.key, err)
	}
	c.items = items
	return nil
}

func (c *collection[T]) list() []T {
	out := make([]T, len(c.items))
	for i, it := range c.items {
		out[i] = c.clone(it)
	}
	return out
}

// reset swaps in copies of items without flushing.
func (c *collection[T]) reset(items []T) {
	c.items = make([]T, len(items))
	for i, it := range items {
		c.items[i] = c.clone(it)
	}
}

func (c *collection[T]) find(id string) (T, bool) {
	for _, it := range c.items {
		if c.id(it) == id {
			return c.clone(it), true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) add(ctx context.Context, kv interfaces.IKeyValueStore, item T) error {
	next := append(c.list(), c.clone(item))
	if err := c.flush(ctx, kv, next); err != nil {
		return err
	}
	c.items = next
	return nil
}

// replace swaps the entry with the same id. It reports false when no entry matched.
func (c *collection[T]) replace(ctx context.Context, kv interfaces.IKeyValueStore, item T) (bool, error) {
	idx := -1
	for i, it := range c.items {
		if c.id(it) == c.id(item) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}
	next := c.list()
	next[idx] = c.clone(item)
	if err := c.flush(ctx, kv, next); err != nil {
		return false, err
	}
	c.items = next
	return true, nil
}

// remove drops the entry with id. It reports false when no entry matched.
func (c *collection[T]) remove(ctx context.Context, kv interfaces.IKeyValueStore, id string) (bool, error) {
	next := make([]T, 0, len(c.items))
	for _, it := range c.items {
		if c.id(it) != id {
			next = append(next, it)
		}
	}
	if len(next) == len(c.items) {
		return false, nil
	}
	if err := c.flush(ctx, kv, next); err != nil {
		return false, err
	}
	c.items = next
	return true, nil
}

func (c *collection[T]) flush(ctx context.Context, kv interfaces.IKeyValueStore, items []T) error {
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := kv.Save(ctx, c.key, b); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}
