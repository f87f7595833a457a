package bptree

import "cmp"

// defaultOrder is the maximum number of keys held by a node absent an
// explicit WithOrder option. It sits in the middle of the 8–64 range
// that keeps node splits and scans both cheap for this tree's typical
// fanout.
const defaultOrder = 32

// minOrder is the smallest fanout this package accepts; below it, split
// and merge bookkeeping degenerates (a node could not hold its own
// median after a split).
const minOrder = 4

// node is either an inner node (children populated, values empty) or a
// leaf node (values populated, children empty). Leaves are threaded into
// a doubly linked list via prev/next so that IterEqual can walk backward
// and IterFrom can walk forward without re-descending the tree.
//
// parent and parentPos form a back-index: on overflow, a node ascends
// directly to its parent via parent instead of re-searching from the
// root, and parentPos tells it which child pointer slot it occupies so
// the parent can splice in the new sibling.
type node[K cmp.Ordered, V any] struct {
	leaf bool
	keys []K

	parent    *node[K, V]
	parentPos int

	children []*node[K, V] // len(children) == len(keys)+1, inner nodes only
	values   []V           // len(values) == len(keys), leaves only
	prev     *node[K, V]
	next     *node[K, V]
}

// Tree is the indexed sequence: a generic, ordered multi-map from K to V.
// The zero value is not usable; construct with New.
type Tree[K cmp.Ordered, V any] struct {
	root  *node[K, V]
	order int // maximum keys per node
}

// Option configures a Tree at construction time.
type Option func(cfg *config)

type config struct {
	order int
}

// WithOrder sets the maximum number of keys per node (the tree's
// fanout is order+1 child pointers per inner node). Values below
// minOrder are clamped up to it; the zero value leaves the default.
func WithOrder(order int) Option {
	return func(cfg *config) {
		if order == 0 {
			return
		}
		if order < minOrder {
			order = minOrder
		}
		cfg.order = order
	}
}

// New constructs an empty Tree, applying opts left to right — later
// options override earlier ones, exactly like the rest of this module's
// functional-option constructors.
//
// Complexity: O(1) plus O(len(opts)).
func New[K cmp.Ordered, V any](opts ...Option) *Tree[K, V] {
	cfg := config{order: defaultOrder}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Tree[K, V]{
		root:  &node[K, V]{leaf: true},
		order: cfg.order,
	}
}
