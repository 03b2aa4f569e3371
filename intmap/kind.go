package intmap

import (
	"fmt"
	"strings"

	"github.com/alphadose/haxmap"
	"github.com/viant/intmap/internal/syncmap"
	"github.com/viant/intmap/intmap/btree"
)

// Kind identifies a storage backend.
type Kind string

const (
	// KindBTree is an ordered B-tree, the default.
	KindBTree Kind = "btree"
	// KindHash is the builtin Go hash map.
	KindHash Kind = "hash"
	// KindSync is a RWMutex guarded hash map that tolerates concurrent probes.
	KindSync Kind = "sync"
	// KindLockFree is a lock-free hash map (haxmap), safe for concurrent probes.
	KindLockFree Kind = "lockfree"
)

// store is the storage contract shared by all backends.
type store interface {
	set(key, value int)
	get(key int) (int, bool)
	len() int
	each(fn func(key, value int) bool)
	ordered() bool
}

// factories lists every backend keyed by kind.
var factories = map[Kind]func(size int, o *options) store{
	KindBTree: func(_ int, o *options) store {
		return &treeStore{tree: btree.New(o.leafCapacity, o.internalCapacity)}
	},
	KindHash: func(size int, _ *options) store {
		return &hashStore{m: make(map[int]int, size)}
	},
	KindSync: func(size int, _ *options) store {
		return &syncStore{m: syncmap.New[int, int](size)}
	},
	KindLockFree: func(size int, _ *options) store {
		return newLockFreeStore(size)
	},
}

// Kinds returns all supported backends.
func Kinds() []Kind {
	return []Kind{KindBTree, KindHash, KindSync, KindLockFree}
}

// ParseKind converts a backend name, empty selects KindBTree.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return KindBTree, nil
	}
	kind := Kind(name)
	if _, ok := factories[kind]; !ok {
		return "", fmt.Errorf("unsupported backend %q, expected one of %v", name, Kinds())
	}
	return kind, nil
}

func (k Kind) String() string { return string(k) }

type treeStore struct {
	tree *btree.Tree
}

func (s *treeStore) set(key, value int)                { s.tree.Set(key, value) }
func (s *treeStore) get(key int) (int, bool)           { return s.tree.Get(key) }
func (s *treeStore) len() int                          { return s.tree.Len() }
func (s *treeStore) each(fn func(key, value int) bool) { s.tree.Ascend(fn) }
func (s *treeStore) ordered() bool                     { return true }

type hashStore struct {
	m map[int]int
}

func (s *hashStore) set(key, value int) { s.m[key] = value }
func (s *hashStore) get(key int) (int, bool) {
	v, ok := s.m[key]
	return v, ok
}
func (s *hashStore) len() int { return len(s.m) }
func (s *hashStore) each(fn func(key, value int) bool) {
	for k, v := range s.m {
		if !fn(k, v) {
			return
		}
	}
}
func (s *hashStore) ordered() bool { return false }

type syncStore struct {
	m *syncmap.Map[int, int]
}

func (s *syncStore) set(key, value int)                { s.m.Set(key, value) }
func (s *syncStore) get(key int) (int, bool)           { return s.m.Get(key) }
func (s *syncStore) len() int                          { return s.m.Len() }
func (s *syncStore) each(fn func(key, value int) bool) { s.m.Range(fn) }
func (s *syncStore) ordered() bool                     { return false }

type lockFreeStore struct {
	m *haxmap.Map[int, int]
}

func newLockFreeStore(size int) *lockFreeStore {
	if size > 0 {
		return &lockFreeStore{m: haxmap.New[int, int](uintptr(size))}
	}
	return &lockFreeStore{m: haxmap.New[int, int]()}
}

func (s *lockFreeStore) set(key, value int)      { s.m.Set(key, value) }
func (s *lockFreeStore) get(key int) (int, bool) { return s.m.Get(key) }
func (s *lockFreeStore) len() int                { return int(s.m.Len()) }
func (s *lockFreeStore) each(fn func(key, value int) bool) {
	s.m.ForEach(fn)
}
func (s *lockFreeStore) ordered() bool { return false }
