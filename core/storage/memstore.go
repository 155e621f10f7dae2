// Package storage provides the in-memory entity store the module
// repositories build on. Records live for the process lifetime; a durable
// replacement would sit behind the same repository interfaces.
package storage

import (
	"errors"
	"sync"
)

var (
	// ErrNotFound is returned when no record exists for the given id.
	ErrNotFound = errors.New("storage: record not found")
	// ErrConditionFailed is returned by UpdateIf when the record exists but
	// the predicate rejected the update.
	ErrConditionFailed = errors.New("storage: update condition failed")
)

// Collection is a mutex-guarded table of one entity type. Identifiers are
// assigned on insert, start at 1, increase strictly, and are never reused.
type Collection[T any] struct {
	mu     sync.RWMutex
	items  map[int64]T
	nextID int64
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{
		items:  make(map[int64]T),
		nextID: 1,
	}
}

// Insert assigns the next identifier, passes it to build, and stores the
// result. build must return the record with the id set on it.
func (c *Collection[T]) Insert(build func(id int64) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++

	item := build(id)
	c.items[id] = item
	return item
}

// Get returns the record for id, or ErrNotFound.
func (c *Collection[T]) Get(id int64) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return item, nil
}

// List returns every record matching filter, in unspecified order. A nil
// filter matches everything. Callers sort as needed.
func (c *Collection[T]) List(filter func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if filter == nil || filter(item) {
			out = append(out, item)
		}
	}
	return out
}

// Update replaces the record for id with apply(record).
func (c *Collection[T]) Update(id int64, apply func(T) T) (T, error) {
	return c.UpdateIf(id, nil, apply)
}

// UpdateIf applies an update only while pred holds, as one atomic step.
// The reserve-spot path uses this as its decrement-if-positive primitive:
// there is no window between the capacity check and the write.
func (c *Collection[T]) UpdateIf(id int64, pred func(T) bool, apply func(T) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	if pred != nil && !pred(item) {
		var zero T
		return zero, ErrConditionFailed
	}

	updated := apply(item)
	c.items[id] = updated
	return updated, nil
}

// Len reports the number of stored records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
