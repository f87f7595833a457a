package nitree

import (
	"cmp"
	"errors"
)

// ErrKeyNotFound indicates an ancestry or children query referenced a
// key absent from the supplied EdgeLookup.
var ErrKeyNotFound = errors.New("nitree: key not found")

// NIEdge is one node of a rooted tree encoded as a Nested Interval: Key
// identifies the node, and (Lower, Upper) is its open containment
// interval. The root's Lower is 1. Lower must be strictly less than
// Upper.
type NIEdge[K cmp.Ordered] struct {
	Key   K
	Lower uint64
	Upper uint64
}

// EdgeLookup resolves a key to its current NIEdge, reporting false if
// the key is unknown to the caller.
type EdgeLookup[K cmp.Ordered] func(key K) (NIEdge[K], bool)

// SortedEdges yields edges in ascending Lower order, starting at some
// position at or before the Lower of the edge whose children are walked. It is the secondary index that
// supports the children walk in O(k + log N).
type SortedEdges[K cmp.Ordered] interface {
	// Next advances to the next edge at or after the starting position
	// and reports whether one is available.
	Next() bool
	// Edge returns the edge at the iterator's current position. Valid
	// only after Next returned true.
	Edge() NIEdge[K]
}
