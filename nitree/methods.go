package nitree

import "cmp"

// IsAncestorEdges reports whether p is a strict ancestor of c, given
// their two already-resolved edges. Self is never an ancestor of
// itself. This is the single comparison every ancestry query in this
// module funnels through, at any version.
func IsAncestorEdges[K cmp.Ordered](p, c NIEdge[K]) bool {
	return p.Lower < c.Lower && p.Upper > c.Upper
}

// IsAncestor resolves parent and child via lookup and applies
// IsAncestorEdges. Returns ErrKeyNotFound if either key is absent.
func IsAncestor[K cmp.Ordered](lookup EdgeLookup[K], parent, child K) (bool, error) {
	p, ok := lookup(parent)
	if !ok {
		return false, ErrKeyNotFound
	}
	c, ok := lookup(child)
	if !ok {
		return false, ErrKeyNotFound
	}

	return IsAncestorEdges(p, c), nil
}

// WalkChildren performs the children-enumeration walk: given the
// parent's own edge and a SortedEdges iterator positioned at or before
// parent.Lower, it calls visit once per direct child in ascending
// Lower order. The walk relies on the nesting
// invariant: a grandchild's Lower falls inside its parent's
// (lastChild.Lower, lastChild.Upper] skip window, so only the edges of
// direct children ever pass the filter.
//
// Complexity: O(k + log N) given a SortedEdges iterator already
// positioned near parent.Lower, where k is the number of edges visited
// (direct children plus every skipped descendant).
func WalkChildren[K cmp.Ordered](parent NIEdge[K], edges SortedEdges[K], visit func(NIEdge[K])) {
	last := parent.Lower
	for edges.Next() {
		e := edges.Edge()
		if e.Lower <= last {
			continue
		}
		if e.Lower > parent.Upper {
			break
		}
		last = e.Upper
		visit(e)
	}
}

// Children returns the direct children of parent, in ascending Lower
// order, reading from the edges sorted-by-Lower index starting near
// parent.Lower.
func Children[K cmp.Ordered](lookup EdgeLookup[K], parentKey K, sorted SortedEdges[K]) ([]K, error) {
	parent, ok := lookup(parentKey)
	if !ok {
		return nil, ErrKeyNotFound
	}

	var out []K
	WalkChildren(parent, sorted, func(e NIEdge[K]) { out = append(out, e.Key) })

	return out, nil
}

// NumChildren returns the number of direct children of parent, using
// the same walk as Children without materializing the key slice.
func NumChildren[K cmp.Ordered](lookup EdgeLookup[K], parentKey K, sorted SortedEdges[K]) (uint64, error) {
	parent, ok := lookup(parentKey)
	if !ok {
		return 0, ErrKeyNotFound
	}

	var n uint64
	WalkChildren(parent, sorted, func(NIEdge[K]) { n++ })

	return n, nil
}

// DescendantCount is the same walk as NumChildren, emitting a counter
// instead of keys — despite the name, nested grandchildren fall inside
// a child's skip window and are never separately counted, so this
// counts direct children exactly like NumChildren. Kept as a distinct
// entry point so callers that only need a count never pay for building
// a key slice.
func DescendantCount[K cmp.Ordered](parent NIEdge[K], edges SortedEdges[K]) uint64 {
	var n uint64
	WalkChildren(parent, edges, func(NIEdge[K]) { n++ })

	return n
}
