package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/viant/intmap/internal/syncmap"
	"github.com/viant/intmap/intmap"
)

// ErrUnknownHandle is returned for handles that were never issued or were already destroyed.
var ErrUnknownHandle = errors.New("unknown map handle")

// Handle identifies a live map, zero is never issued.
type Handle uint64

// Registry is a concurrency-safe set of live maps.
type Registry struct {
	seq     atomic.Uint64
	maps    *syncmap.Map[Handle, *intmap.Map]
	options []intmap.Option
}

// New creates a registry, options apply to every map it creates.
func New(options ...intmap.Option) *Registry {
	return &Registry{
		maps:    syncmap.New[Handle, *intmap.Map](0),
		options: options,
	}
}

// Create builds a map from keys and returns its handle. Per call options
// take precedence over registry options.
func (r *Registry) Create(keys []int, options ...intmap.Option) Handle {
	opts := append(append([]intmap.Option{}, r.options...), options...)
	m := intmap.Create(keys, opts...)
	handle := Handle(r.seq.Add(1))
	r.maps.Set(handle, m)
	return handle
}

// Map returns the live map behind handle.
func (r *Registry) Map(handle Handle) (*intmap.Map, error) {
	m, ok := r.maps.Get(handle)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHandle, handle)
	}
	return m, nil
}

// Lookup probes keys against the map behind handle discarding the outcome.
func (r *Registry) Lookup(handle Handle, keys []int) error {
	m, err := r.Map(handle)
	if err != nil {
		return err
	}
	m.Lookup(keys)
	return nil
}

// Probe returns how many keys are present in the map behind handle.
func (r *Registry) Probe(handle Handle, keys []int) (int, error) {
	m, err := r.Map(handle)
	if err != nil {
		return 0, err
	}
	return m.Probe(keys), nil
}

// Destroy releases the map behind handle; the handle becomes invalid.
func (r *Registry) Destroy(handle Handle) error {
	m, ok := r.maps.Take(handle)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownHandle, handle)
	}
	m.Destroy()
	return nil
}

// DestroyAll releases every live map and returns how many were released.
func (r *Registry) DestroyAll() int {
	count := 0
	for _, handle := range r.maps.Keys() {
		if r.Destroy(handle) == nil {
			count++
		}
	}
	return count
}

// Len returns the number of live maps.
func (r *Registry) Len() int {
	return r.maps.Len()
}

// Handles returns live handles in issue order.
func (r *Registry) Handles() []Handle {
	ret := r.maps.Keys()
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}
