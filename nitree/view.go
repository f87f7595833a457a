package nitree

import (
	"cmp"

	"github.com/katalvlaran/deltani/bptree"
)

// View is the plain (non-versioned) Nested Intervals hierarchy: a
// read-only tree view over a fixed edge set, with no edit/commit
// semantics of its own. It is not a Hierarchy implementation — it has
// no Insert/Remove/Commit to offer — but it satisfies the read half any
// caller holding a hierarchy.Hierarchy would also want: Exists,
// NumChildren, Children, IsAncestor, Search.
//
// View assumes K's zero value is less than or equal to every key it
// will ever store, true of the unsigned integer identifiers this
// hierarchy is keyed by in practice; this lets View.edges and
// View.sorted be walked in full via bptree.Tree.IterFrom(zero).
type View[K cmp.Ordered, V any] struct {
	values *bptree.Tree[K, V]
	edges  *bptree.Tree[K, NIEdge[K]]
	sorted *bptree.Tree[uint64, NIEdge[K]]
}

// NewView builds a View from a value map and a set of seed NI edges,
// populating the secondary by-Lower index the children walk needs.
//
// Complexity: O(E log E).
func NewView[K cmp.Ordered, V any](values *bptree.Tree[K, V], edges []NIEdge[K]) *View[K, V] {
	byKey := bptree.New[K, NIEdge[K]]()
	byLower := bptree.New[uint64, NIEdge[K]]()
	for _, e := range edges {
		byKey.Insert(e.Key, e)
		byLower.Insert(e.Lower, e)
	}

	return &View[K, V]{values: values, edges: byKey, sorted: byLower}
}

// lookup adapts View's own edge map to the EdgeLookup signature.
func (v *View[K, V]) lookup(key K) (NIEdge[K], bool) {
	return v.edges.SearchOne(key)
}

// sortedFrom returns a SortedEdges walk starting at or before lower.
func (v *View[K, V]) sortedFrom(lower uint64) SortedEdges[K] {
	return &rangeAdapter[K]{it: v.sorted.IterFrom(lower)}
}

// rangeAdapter adapts bptree's RangeIter to nitree.SortedEdges.
type rangeAdapter[K cmp.Ordered] struct {
	it bptree.RangeIter[uint64, NIEdge[K]]
}

func (a *rangeAdapter[K]) Next() bool       { return a.it.Next() }
func (a *rangeAdapter[K]) Edge() NIEdge[K] { return a.it.Value() }

// Exists reports whether key has ever been introduced. The plain NI
// variant carries no liveness concept beyond "present in the value
// map" — it has no version history to consult.
func (v *View[K, V]) Exists(key K) bool {
	_, ok := v.values.SearchOne(key)

	return ok
}

// Search returns the value associated with key, or ErrKeyNotFound.
func (v *View[K, V]) Search(key K) (V, error) {
	val, ok := v.values.SearchOne(key)
	if !ok {
		var zero V
		return zero, ErrKeyNotFound
	}

	return val, nil
}

// IsAncestor reports whether parent strictly contains child.
func (v *View[K, V]) IsAncestor(parent, child K) (bool, error) {
	return IsAncestor(v.lookup, parent, child)
}

// NumChildren returns the number of direct children of key.
func (v *View[K, V]) NumChildren(key K) (uint64, error) {
	edge, ok := v.lookup(key)
	if !ok {
		return 0, ErrKeyNotFound
	}

	return DescendantCount(edge, v.sortedFrom(edge.Lower)), nil
}

// Children returns the direct children of key in ascending Lower order.
func (v *View[K, V]) Children(key K) ([]K, error) {
	edge, ok := v.lookup(key)
	if !ok {
		return nil, ErrKeyNotFound
	}

	var out []K
	WalkChildren(edge, v.sortedFrom(edge.Lower), func(e NIEdge[K]) { out = append(out, e.Key) })

	return out, nil
}
