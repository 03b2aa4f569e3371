package btree

import "fmt"

// CheckInvariants validates ordering, node fill, uniform leaf depth and the
// element count.
func (t *Tree) CheckInvariants() error {
	if t.root == nil {
		if t.count != 0 {
			return fmt.Errorf("empty tree reports %d elements", t.count)
		}
		return nil
	}
	c := &checker{tree: t, leafDepth: -1}
	if err := c.check(t.root, 0, bound{}, bound{}); err != nil {
		return err
	}
	if c.count != t.count {
		return fmt.Errorf("counted %d elements, tree reports %d", c.count, t.count)
	}
	return nil
}

type bound struct {
	key int
	set bool
}

type checker struct {
	tree      *Tree
	leafDepth int
	count     int
}

func (c *checker) check(n *node, depth int, lo, hi bound) error {
	capacity := c.tree.capacity(n)
	if len(n.keys) != len(n.values) {
		return fmt.Errorf("depth %d: %d keys but %d values", depth, len(n.keys), len(n.values))
	}
	if len(n.keys) > capacity {
		return fmt.Errorf("depth %d: %d elements exceed capacity %d", depth, len(n.keys), capacity)
	}
	if depth > 0 && len(n.keys) < capacity/2 {
		return fmt.Errorf("depth %d: %d elements under minimum %d", depth, len(n.keys), capacity/2)
	}
	for i, key := range n.keys {
		if i > 0 && n.keys[i-1] >= key {
			return fmt.Errorf("depth %d: keys out of order at slot %d", depth, i)
		}
		if (lo.set && key <= lo.key) || (hi.set && key >= hi.key) {
			return fmt.Errorf("depth %d: key %d outside of parent bounds", depth, key)
		}
	}
	c.count += len(n.keys)
	if n.leaf() {
		if c.leafDepth == -1 {
			c.leafDepth = depth
		} else if c.leafDepth != depth {
			return fmt.Errorf("leaf at depth %d, expected %d", depth, c.leafDepth)
		}
		return nil
	}
	if len(n.children) != len(n.keys)+1 {
		return fmt.Errorf("depth %d: %d children for %d keys", depth, len(n.children), len(n.keys))
	}
	for i, child := range n.children {
		childLo, childHi := lo, hi
		if i > 0 {
			childLo = bound{key: n.keys[i-1], set: true}
		}
		if i < len(n.keys) {
			childHi = bound{key: n.keys[i], set: true}
		}
		if err := c.check(child, depth+1, childLo, childHi); err != nil {
			return err
		}
	}
	return nil
}
