package intmap

import "github.com/viant/intmap/intmap/btree"

type options struct {
	kind             Kind
	leafCapacity     int
	internalCapacity int
}

// Option customises map construction.
type Option func(*options)

// WithKind selects the storage backend. Unknown kinds fall back to KindBTree.
func WithKind(kind Kind) Option {
	return func(o *options) {
		o.kind = kind
	}
}

// WithCapacity sets the B-tree leaf and internal node capacities. Values
// below btree.MinCapacity keep the defaults.
func WithCapacity(leaf, internal int) Option {
	return func(o *options) {
		if leaf >= btree.MinCapacity {
			o.leafCapacity = leaf
		}
		if internal >= btree.MinCapacity {
			o.internalCapacity = internal
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		kind:             KindBTree,
		leafCapacity:     btree.DefaultLeafCapacity,
		internalCapacity: btree.DefaultInternalCapacity,
	}
	for _, opt := range opts {
		opt(o)
	}
	if _, ok := factories[o.kind]; !ok {
		o.kind = KindBTree
	}
	return o
}
