// Package registry implements the interned id->entity tables of spec.md
// §4.1: every entity is registered exactly once under its integer id, and
// registering the same id twice with differing field values is a fatal
// DuplicateIdConflict rather than a silent overwrite.
package registry

import (
	"reflect"
	"sync"

	"github.com/shiftcore/assign/internal/entity"
)

// EntityTable is a generic, concurrency-safe id->entity store. It is
// intentionally append-mostly: Register is the only mutator, and repeated
// registration of an identical value is a no-op rather than an error, so
// callers can re-intern the same fixture data across a test without
// tripping the conflict check.
type EntityTable[T any] struct {
	mu       sync.RWMutex
	typeName string
	idFunc   func(T) int
	items    map[int]T
	order    []int
}

// NewEntityTable builds an empty table for T, keyed by idFunc. typeName is
// used only in error messages.
func NewEntityTable[T any](typeName string, idFunc func(T) int) *EntityTable[T] {
	return &EntityTable[T]{
		typeName: typeName,
		idFunc:   idFunc,
		items:    make(map[int]T),
	}
}

// Register interns item under its id. Registering the same id twice with a
// deeply-equal value is a no-op; registering it with a different value
// returns *entity.DuplicateIdConflict.
func (t *EntityTable[T]) Register(item T) error {
	id := t.idFunc(item)

	t.mu.Lock()
	defer t.mu.Unlock()

	existing, ok := t.items[id]
	if !ok {
		t.items[id] = item
		t.order = append(t.order, id)
		return nil
	}
	if reflect.DeepEqual(existing, item) {
		return nil
	}
	return &entity.DuplicateIdConflict{
		EntityType: t.typeName,
		ID:         id,
		Field:      "*",
		Existing:   existing,
		Incoming:   item,
	}
}

// Lookup returns the entity registered under id, if any.
func (t *EntityTable[T]) Lookup(id int) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.items[id]
	return v, ok
}

// MustLookup is Lookup with a context string describing where the
// reference was found, for *entity.InvalidReference.
func (t *EntityTable[T]) MustLookup(id int, context string) (T, error) {
	v, ok := t.Lookup(id)
	if !ok {
		return v, &entity.InvalidReference{EntityType: t.typeName, ID: id, Context: context}
	}
	return v, nil
}

// All returns every registered entity in registration order.
func (t *EntityTable[T]) All() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.items[id])
	}
	return out
}

// Len reports how many entities are registered.
func (t *EntityTable[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}
