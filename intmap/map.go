package intmap

import (
	"sync/atomic"
)

// Map is an opaque handle to an integer keyed map. Only construction, bulk
// lookup and teardown are part of its contract; the remaining accessors
// exist for inspection and tests.
type Map struct {
	kind    Kind
	backend atomic.Pointer[backend]
}

// backend wraps a store so it can be swapped atomically; nil means destroyed.
type backend struct {
	store
}

// Create builds a map holding one entry per distinct key. Each key maps to
// the index of its last occurrence in keys. keys is not retained.
func Create(keys []int, opts ...Option) *Map {
	o := newOptions(opts)
	s := factories[o.kind](len(keys), o)
	for i, key := range keys {
		s.set(key, i)
	}
	ret := &Map{kind: o.kind}
	ret.backend.Store(&backend{store: s})
	return ret
}

// Destroy releases the storage. Subsequent calls are no-ops and a destroyed
// map behaves as an empty one. The store is detached, never mutated, so a
// concurrent Probe completes on the entries it started with.
func (m *Map) Destroy() {
	m.backend.Swap(nil)
}

// Live reports whether Destroy has not been called yet.
func (m *Map) Live() bool {
	return m.backend.Load() != nil
}

// Kind returns the storage backend.
func (m *Map) Kind() Kind { return m.kind }

// Lookup probes every key and discards the outcome.
func (m *Map) Lookup(keys []int) {
	m.Probe(keys)
}

// Probe looks up every key and returns how many were present.
func (m *Map) Probe(keys []int) int {
	s := m.live()
	if s == nil {
		return 0
	}
	hits, acc := 0, 0
	for _, key := range keys {
		if value, ok := s.get(key); ok {
			hits++
			acc += value
		}
	}
	drain(hits, acc)
	return hits
}

// Get returns the value stored for key.
func (m *Map) Get(key int) (int, bool) {
	s := m.live()
	if s == nil {
		return 0, false
	}
	return s.get(key)
}

// Contains reports whether key is present.
func (m *Map) Contains(key int) bool {
	_, ok := m.Get(key)
	return ok
}

// Len returns the number of distinct keys.
func (m *Map) Len() int {
	s := m.live()
	if s == nil {
		return 0
	}
	return s.len()
}

// Range calls fn for every entry until fn returns false. Entries come in key
// order for ordered backends only.
func (m *Map) Range(fn func(key, value int) bool) {
	if s := m.live(); s != nil {
		s.each(fn)
	}
}

// Ordered reports whether Range visits keys in ascending order.
func (m *Map) Ordered() bool {
	s := m.live()
	return s != nil && s.ordered()
}

func (m *Map) live() store {
	if b := m.backend.Load(); b != nil {
		return b.store
	}
	return nil
}
