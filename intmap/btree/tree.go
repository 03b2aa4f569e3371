package btree

import (
	"fmt"
	"slices"
)

const (
	// DefaultLeafCapacity is the number of elements a leaf node holds before it splits.
	DefaultLeafCapacity = 470
	// DefaultInternalCapacity is the number of elements an internal node holds before it splits.
	DefaultInternalCapacity = 16
	// MinCapacity is the smallest node capacity accepted by New.
	MinCapacity = 2
)

// Tree is an ordered int -> int map.
type Tree struct {
	root             *node
	leafCapacity     int
	internalCapacity int
	count            int
}

type node struct {
	keys     []int
	values   []int
	children []*node
}

// splinter is the upper half of a node that overflowed, together with the
// median element that moves up into the parent.
type splinter struct {
	key   int
	value int
	right *node
}

// New creates an empty tree. It panics when a capacity is below MinCapacity.
func New(leafCapacity, internalCapacity int) *Tree {
	if leafCapacity < MinCapacity || internalCapacity < MinCapacity {
		panic(fmt.Sprintf("btree: capacities must be at least %d, got leaf=%d internal=%d", MinCapacity, leafCapacity, internalCapacity))
	}
	return &Tree{leafCapacity: leafCapacity, internalCapacity: internalCapacity}
}

// NewDefault creates an empty tree with default capacities.
func NewDefault() *Tree {
	return New(DefaultLeafCapacity, DefaultInternalCapacity)
}

// Len returns the number of elements.
func (t *Tree) Len() int { return t.count }

// Height returns the number of levels, 0 for an empty tree.
func (t *Tree) Height() int {
	height := 0
	for n := t.root; n != nil; height++ {
		if n.leaf() {
			return height + 1
		}
		n = n.children[0]
	}
	return height
}

// Get returns the value stored for key.
func (t *Tree) Get(key int) (int, bool) {
	n := t.root
	for n != nil {
		slot, found := slices.BinarySearch(n.keys, key)
		if found {
			return n.values[slot], true
		}
		if n.leaf() {
			return 0, false
		}
		n = n.children[slot]
	}
	return 0, false
}

// Contains reports whether key is present.
func (t *Tree) Contains(key int) bool {
	_, ok := t.Get(key)
	return ok
}

// Set inserts key or replaces its value. It reports whether an existing
// element was replaced.
func (t *Tree) Set(key, value int) bool {
	if t.root == nil {
		t.root = t.newNode(true)
	}
	sp, replaced := t.insert(t.root, key, value)
	if sp != nil {
		root := t.newNode(false)
		root.keys = append(root.keys, sp.key)
		root.values = append(root.values, sp.value)
		root.children = append(root.children, t.root, sp.right)
		t.root = root
	}
	if !replaced {
		t.count++
	}
	return replaced
}

func (t *Tree) insert(n *node, key, value int) (*splinter, bool) {
	slot, found := slices.BinarySearch(n.keys, key)
	if found {
		n.values[slot] = value
		return nil, true
	}
	if n.leaf() {
		n.insertAt(slot, key, value, nil)
	} else {
		sp, replaced := t.insert(n.children[slot], key, value)
		if sp == nil {
			return nil, replaced
		}
		n.insertAt(slot, sp.key, sp.value, sp.right)
	}
	if len(n.keys) <= t.capacity(n) {
		return nil, false
	}
	return t.split(n), false
}

// split moves the upper half of an overflowing node into a new sibling.
func (t *Tree) split(n *node) *splinter {
	mid := len(n.keys) / 2
	right := t.newNode(n.leaf())
	right.keys = append(right.keys, n.keys[mid+1:]...)
	right.values = append(right.values, n.values[mid+1:]...)
	sp := &splinter{key: n.keys[mid], value: n.values[mid], right: right}
	n.keys = n.keys[:mid]
	n.values = n.values[:mid]
	if !n.leaf() {
		right.children = append(right.children, n.children[mid+1:]...)
		clear(n.children[mid+1:])
		n.children = n.children[:mid+1]
	}
	return sp
}

func (t *Tree) capacity(n *node) int {
	if n.leaf() {
		return t.leafCapacity
	}
	return t.internalCapacity
}

func (t *Tree) newNode(leaf bool) *node {
	if leaf {
		return &node{
			keys:   make([]int, 0, t.leafCapacity+1),
			values: make([]int, 0, t.leafCapacity+1),
		}
	}
	return &node{
		keys:     make([]int, 0, t.internalCapacity+1),
		values:   make([]int, 0, t.internalCapacity+1),
		children: make([]*node, 0, t.internalCapacity+2),
	}
}

func (n *node) leaf() bool { return n.children == nil }

func (n *node) insertAt(slot, key, value int, right *node) {
	n.keys = slices.Insert(n.keys, slot, key)
	n.values = slices.Insert(n.values, slot, value)
	if right != nil {
		n.children = slices.Insert(n.children, slot+1, right)
	}
}

// Min returns the smallest element.
func (t *Tree) Min() (key, value int, ok bool) {
	n := t.root
	if n == nil || t.count == 0 {
		return 0, 0, false
	}
	for !n.leaf() {
		n = n.children[0]
	}
	return n.keys[0], n.values[0], true
}

// Max returns the largest element.
func (t *Tree) Max() (key, value int, ok bool) {
	n := t.root
	if n == nil || t.count == 0 {
		return 0, 0, false
	}
	for !n.leaf() {
		n = n.children[len(n.children)-1]
	}
	last := len(n.keys) - 1
	return n.keys[last], n.values[last], true
}

// Ascend calls fn for every element in key order until fn returns false.
func (t *Tree) Ascend(fn func(key, value int) bool) {
	if t.root != nil {
		t.root.ascend(fn)
	}
}

func (n *node) ascend(fn func(key, value int) bool) bool {
	for i := range n.keys {
		if !n.leaf() && !n.children[i].ascend(fn) {
			return false
		}
		if !fn(n.keys[i], n.values[i]) {
			return false
		}
	}
	if !n.leaf() {
		return n.children[len(n.children)-1].ascend(fn)
	}
	return true
}
