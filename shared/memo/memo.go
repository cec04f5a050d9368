// Package memo provides a small, bounded, concurrency-safe memo table.
//
// A Table keeps two generations of entries. Writes land in the active
// generation; once it holds maxSize entries the next write retires it and
// starts a fresh one, dropping the generation retired before. Lookups consult
// both, so the table remembers between maxSize and 2*maxSize of the most
// recently stored entries while older ones age out in bulk. Eviction is
// wholesale rather than per-entry, which keeps the bookkeeping at two map
// headers and no clocks.
package memo

import "sync"

type Table[K comparable, V any] struct {
	mu      sync.RWMutex
	active  map[K]V
	retired map[K]V
	maxSize uint32
}

// NewTable returns an empty Table bounded by maxSize entries per generation.
func NewTable[K comparable, V any](maxSize uint32) *Table[K, V] {
	if maxSize == 0 {
		panic("memo: maxSize should be greater than 0")
	}
	return &Table[K, V]{
		active:  make(map[K]V, maxSize),
		retired: map[K]V{},
		maxSize: maxSize,
	}
}

// Load returns the value stored under key, if either generation holds one.
func (t *Table[K, V]) Load(key K) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if v, ok := t.active[key]; ok {
		return v, true
	}
	if v, ok := t.retired[key]; ok {
		return v, true
	}
	var zero V
	return zero, false
}

// Store records value under key, rotating generations when the active one
// is full.
func (t *Table[K, V]) Store(key K, value V) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if uint32(len(t.active)) >= t.maxSize {
		t.retired = t.active
		t.active = make(map[K]V, t.maxSize)
	}
	t.active[key] = value
}
