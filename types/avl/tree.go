package avl

import (
	"sync"
)

// Tree is a binary search tree (BST) for ordered keys, implemented as an
// AVL tree (Adelson-Velsky and Landis tree), a type of self-balancing BST.
// This guarantees O(log n) operations on insertion, searching, and deletion.
//
// The book (orderbook/book.go) instantiates exactly one shape of this type:
// Tree[Price, *priceLevel], once per side, each with its own comparator —
// the ask side compares ascending, the bid side with a negated comparator
// so the same ascending tree implementation yields descending iteration for
// free (see NewTreePooled's call sites in book.go).
type Tree[K, V any] struct {
	compare   func(a, b K) int
	pool      *sync.Pool
	root      *Node[K, V]
	mostLeft  *Node[K, V]
	mostRight *Node[K, V]
	size      int
}

////////////////////////////////////////////////////////////////

// NewTree creates a new AVL tree using a comparator function that is
// expected to return 0 if a == b, -1 if a < b, and +1 if a > b.
func NewTree[K, V any](compare func(a, b K) int) Tree[K, V] {
	return Tree[K, V]{
		compare: compare,
	}
}

// NewTreePooled creates a new AVL tree using a comparator function that is
// expected to return 0 if a == b, -1 if a < b, and +1 if a > b.
// Pooled tree uses given pool for nodes creating/releasing — the book's own
// Allocator.priceLevelNodes pool backs both side trees this way so a level
// churning in and out of the book does not allocate a tree node every time.
func NewTreePooled[K, V any](compare func(a, b K) int, pool *sync.Pool) Tree[K, V] {
	return Tree[K, V]{
		compare: compare,
		pool:    pool,
	}
}

////////////////////////////////////////////////////////////////

// Size returns the amount of nodes in the tree.
func (t *Tree[K, V]) Size() int {
	return t.size
}

// Find finds the node with given key in the tree by iterating the binary search tree.
func (t *Tree[K, V]) Find(key K) *Node[K, V] {
	if t.root == nil {
		return nil
	}
	return t.root.find(key, t.compare)
}

// Add inserts a node with given key and value to the tree.
// Duplicate keys are not allowed so error will be returned on duplicate.
func (t *Tree[K, V]) Add(key K, value V) (node *Node[K, V], err error) {
	// Create tree node
	if t.pool != nil {
		node = t.pool.Get().(*Node[K, V])
		node.key = key
		node.value = value
	} else {
		node = &Node[K, V]{
			key:   key,
			value: value,
		}
	}
	// Add the node to the tree
	if t.root == nil {
		t.root = node
	} else {
		newRoot, err := t.root.add(node, t.compare)
		if err != nil {
			return nil, err
		}
		t.root = newRoot
	}
	t.size++
	// Update most left/right nodes
	if t.mostLeft == nil || t.compare(node.key, t.mostLeft.key) < 0 {
		t.mostLeft = node
	}
	if t.mostRight == nil || t.compare(node.key, t.mostRight.key) > 0 {
		t.mostRight = node
	}
	return
}

// Remove removes the node with given key from the tree — used by book.go
// when a price level's FIFO queue empties (removeOrder deletes the level
// from whichever side tree it belongs to).
func (t *Tree[K, V]) Remove(key K) (value V, err error) {
	if t.root == nil {
		err = ErrorTreeNodeNotFound
		return
	}
	var node, newRoot *Node[K, V]
	node, newRoot, err = t.root.remove(key, t.compare)
	if err != nil {
		return
	}
	t.root = newRoot
	value = node.value
	// Release tree node if pool is used
	if t.pool != nil {
		*node = Node[K, V]{}
		t.pool.Put(node)
	}
	t.size--
	// Update most left/right nodes
	if t.mostLeft == node {
		// Recompute from the root; the removed node has already been released.
		if t.root != nil {
			t.mostLeft = t.root.MostLeft()
		} else {
			t.mostLeft = nil
		}
	}
	if t.mostRight == node {
		// Recompute from the root; the removed node has already been released.
		if t.root != nil {
			t.mostRight = t.root.MostRight()
		} else {
			t.mostRight = nil
		}
	}
	return
}

// MostLeft returns the tree's best-priced node under its comparator —
// bestNode (book.go) calls this to find the top of book on either side.
func (t *Tree[K, V]) MostLeft() *Node[K, V] {
	return t.mostLeft
}

// MostRight returns the tree's worst-priced node under its comparator —
// admitMarket (admission.go) sweeps to this node's price when converting a
// Market order into a limit order at admission.
func (t *Tree[K, V]) MostRight() *Node[K, V] {
	return t.mostRight
}

// IterateInOrder visits every value in price order (ascending under the
// tree's own comparator) — snapshotSide (book.go) uses this to build the
// public LevelInfo sequence for a side's depth.
func (t *Tree[K, V]) IterateInOrder(f func(value V) bool) {
	if t.root == nil {
		return
	}
	t.root.iterateInOrder(func(v *Node[K, V]) bool {
		return f(v.value)
	})
}
