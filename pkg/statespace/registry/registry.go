package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrDuplicate indicates a key was registered twice.
var ErrDuplicate = errors.New("duplicate registration")

// ErrNotFound indicates a lookup for a key that was never registered.
var ErrNotFound = errors.New("not registered")

// Registry is a thread-safe table of values indexed by an ordered key.
type Registry[K cmp.Ordered, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// New creates a new empty registry.
func New[K cmp.Ordered, V any]() *Registry[K, V] {
	return &Registry[K, V]{
		entries: make(map[K]V),
	}
}

// Register adds a value. It fails with ErrDuplicate if key is already present.
func (r *Registry[K, V]) Register(key K, value V) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[key]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicate, key)
	}
	r.entries[key] = value
	return nil
}

// MustRegister is Register that panics on duplicates.
// Intended for package-level tables built at init time.
func (r *Registry[K, V]) MustRegister(key K, value V) {
	if err := r.Register(key, value); err != nil {
		panic("registry: " + err.Error())
	}
}

// Get returns the value for a key and whether it exists.
func (r *Registry[K, V]) Get(key K) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[key]
	return v, ok
}

// Lookup returns the value for a key, or an error wrapping ErrNotFound that
// lists the registered keys.
func (r *Registry[K, V]) Lookup(key K) (V, error) {
	if v, ok := r.Get(key); ok {
		return v, nil
	}
	var zero V
	return zero, fmt.Errorf("%w: %v (known: %v)", ErrNotFound, key, r.Keys())
}

// Has returns true if the key exists in the registry.
func (r *Registry[K, V]) Has(key K) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key]
	return ok
}

// Keys returns all keys in ascending order.
func (r *Registry[K, V]) Keys() []K {
	r.mu.RLock()
	keys := make([]K, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	r.mu.RUnlock()
	slices.Sort(keys)
	return keys
}

// Len returns the number of entries in the registry.
func (r *Registry[K, V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Range calls fn for each entry in key order until fn returns false.
// It iterates over a snapshot taken before the first call.
func (r *Registry[K, V]) Range(fn func(key K, value V) bool) {
	r.mu.RLock()
	snapshot := make(map[K]V, len(r.entries))
	for k, v := range r.entries {
		snapshot[k] = v
	}
	r.mu.RUnlock()

	keys := make([]K, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if !fn(k, snapshot[k]) {
			return
		}
	}
}
