package syncmap

import "sync"

// Map is a thread-safe generic map structure
type Map[K comparable, V any] struct {
	mux sync.RWMutex
	m   map[K]V
}

// New creates a new instance of Map with room for size entries
func New[K comparable, V any](size int) *Map[K, V] {
	if size < 0 {
		size = 0
	}
	return &Map[K, V]{
		m: make(map[K]V, size),
	}
}

// Get retrieves an item by key
func (r *Map[K, V]) Get(key K) (V, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	v, ok := r.m[key]
	return v, ok
}

// Set adds or updates an item by key
func (r *Map[K, V]) Set(key K, value V) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.m[key] = value
}

// Delete removes an item by key, it reports whether the key was present
func (r *Map[K, V]) Delete(key K) bool {
	r.mux.Lock()
	defer r.mux.Unlock()
	_, ok := r.m[key]
	if ok {
		delete(r.m, key)
	}
	return ok
}

// Take removes and returns an item by key
func (r *Map[K, V]) Take(key K) (V, bool) {
	r.mux.Lock()
	defer r.mux.Unlock()
	v, ok := r.m[key]
	if ok {
		delete(r.m, key)
	}
	return v, ok
}

// Len returns number of items
func (r *Map[K, V]) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.m)
}

// Keys returns a slice of all keys
func (r *Map[K, V]) Keys() []K {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]K, 0, len(r.m))
	for k := range r.m {
		ret = append(ret, k)
	}
	return ret
}

// List returns a slice of all items
func (r *Map[K, V]) List() []V {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]V, 0, len(r.m))
	for _, v := range r.m {
		ret = append(ret, v)
	}
	return ret
}

// Range calls fn for every item until fn returns false. fn must not modify the map.
func (r *Map[K, V]) Range(fn func(key K, value V) bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	for k, v := range r.m {
		if !fn(k, v) {
			return
		}
	}
}

// Clear removes all items
func (r *Map[K, V]) Clear() {
	r.mux.Lock()
	defer r.mux.Unlock()
	clear(r.m)
}
