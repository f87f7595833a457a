// Package nitree implements the Nested Intervals encoding of a rooted
// tree and the ancestry / children / descendant-count algorithms over
// it.
//
// A tree node is represented by an NIEdge: a (key, lower, upper) triple
// such that for any two live edges in the same version, their open
// intervals (lower, upper) are either disjoint or one strictly contains
// the other. Ancestry reduces to interval containment; enumerating
// children reduces to one linear walk over edges sorted by lower,
// bounded by the parent's own interval.
//
// This package is deliberately storage-agnostic: every operation takes
// an EdgeLookup function and, for the children/descendant walk, a
// SortedEdges iterator ordered by lower bound. The plain (non-versioned)
// hierarchy variant backs both directly with a bptree.Tree; the
// versioned deltani engine backs EdgeLookup with its own version
// reconstruction and is documented (see deltani's children.go) as choosing
// not to maintain the lower-sorted secondary index, retrofitting the
// walk over a sorted snapshot on demand instead.
package nitree
