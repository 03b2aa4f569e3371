package mapaction

import "github.com/viant/intmap/intmap"

// CreateInput builds a map from keys.
type CreateInput struct {
	Keys    []int  `json:"keys" description:"keys to insert, each maps to the index of its last occurrence"`
	Backend string `json:"backend,omitempty" description:"storage backend: btree, hash, sync or lockfree"`
}

// CreateOutput describes a newly created map.
type CreateOutput struct {
	Handle uint64      `json:"handle"`
	Kind   intmap.Kind `json:"kind"`
	Len    int         `json:"len"`
}

// KeysInput addresses keys within one map.
type KeysInput struct {
	Handle uint64 `json:"handle"`
	Keys   []int  `json:"keys"`
}

// LookupOutput reports how many lookups were performed.
type LookupOutput struct {
	Count int `json:"count"`
}

// ProbeOutput reports lookup outcomes.
type ProbeOutput struct {
	Hits   int `json:"hits"`
	Misses int `json:"misses"`
}

// GetInput addresses a single key.
type GetInput struct {
	Handle uint64 `json:"handle"`
	Key    int    `json:"key"`
}

// GetOutput returns the value stored for a key.
type GetOutput struct {
	Found bool `json:"found"`
	Value int  `json:"value"`
}

// HandleInput addresses a map.
type HandleInput struct {
	Handle uint64 `json:"handle"`
}

// DestroyOutput confirms teardown.
type DestroyOutput struct {
	Destroyed bool `json:"destroyed"`
}

// ListInput takes no arguments.
type ListInput struct{}

// MapInfo describes one live map.
type MapInfo struct {
	Handle uint64        `json:"handle"`
	Stats  *intmap.Stats `json:"stats"`
}

// ListOutput lists live maps.
type ListOutput struct {
	Maps []*MapInfo `json:"maps"`
}
