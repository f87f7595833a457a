package adjlist

import (
	"cmp"

	"github.com/katalvlaran/deltani/bptree"
)

// AdjacentEdge records that child is a direct child of parent. The
// adjacency map stores one of these per (parent, child) pair, keyed by
// parent, so bptree.Tree.IterEqual(parent) yields exactly parent's
// children.
type AdjacentEdge[K cmp.Ordered] struct {
	Parent K
	Child  K
}

// List is the non-versioned, adjacency-list hierarchy baseline.
// bptree.Tree supports no deletion (its contract is insert/search/
// iterate only), so Remove cannot erase an edge record outright;
// instead List tracks a removed-key tombstone set and filters removed
// keys out of every read. A stale parent edge left behind by Remove is
// disambiguated from a live one by parentOf: children() only counts an
// (parent, child) edge as current when parentOf[child] still names
// that parent, so a key reinserted under a new parent stops showing up
// under its old one even though the old edge record itself is never
// erased from the tree.
type List[K cmp.Ordered, V any] struct {
	values   *bptree.Tree[K, V]
	edges    *bptree.Tree[K, AdjacentEdge[K]]
	removed  map[K]bool
	parentOf map[K]K
}

// New returns an empty List.
func New[K cmp.Ordered, V any]() *List[K, V] {
	return &List[K, V]{
		values:   bptree.New[K, V](),
		edges:    bptree.New[K, AdjacentEdge[K]](),
		removed:  make(map[K]bool),
		parentOf: make(map[K]K),
	}
}

// NewFromSeed builds a List from a pre-populated value map and seed
// adjacency edges, the construction shape loader.ReadAdjacency
// produces.
func NewFromSeed[K cmp.Ordered, V any](values *bptree.Tree[K, V], edges []AdjacentEdge[K]) *List[K, V] {
	l := New[K, V]()
	l.values = values
	for _, e := range edges {
		l.edges.Insert(e.Parent, e)
		l.parentOf[e.Child] = e.Parent
	}

	return l
}
