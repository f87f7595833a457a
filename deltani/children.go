package deltani

import (
	"cmp"
	"sort"

	"github.com/katalvlaran/deltani/hierarchy"
	"github.com/katalvlaran/deltani/nitree"
)

// sliceEdges adapts a slice, sorted ascending by Lower, to
// nitree.SortedEdges.
type sliceEdges[K cmp.Ordered] struct {
	edges []nitree.NIEdge[K]
	index int
	first bool
}

func newSliceEdges[K cmp.Ordered](edges []nitree.NIEdge[K]) *sliceEdges[K] {
	return &sliceEdges[K]{edges: edges, first: true}
}

func (s *sliceEdges[K]) Next() bool {
	if s.first {
		s.first = false
		return len(s.edges) > 0
	}
	s.index++

	return s.index < len(s.edges)
}

func (s *sliceEdges[K]) Edge() nitree.NIEdge[K] {
	return s.edges[s.index]
}

// liveEdgesSnapshot reconstructs every seed edge at version and
// returns those that are live, sorted ascending by Lower — the
// lower-sorted secondary index the children walk needs, rebuilt on
// demand instead of maintained incrementally.
//
// Complexity: O(E log V log R + E log E), for E total keys ever
// introduced.
func (e *Engine[K, V]) liveEdgesSnapshot(version uint64, useWip bool) []nitree.NIEdge[K] {
	var zero K
	it := e.edges.IterFrom(zero)

	var live []nitree.NIEdge[K]
	for it.Next() {
		seed := it.Value()
		got := e.getEdge(seed, version, useWip)
		if e.isLive(got, version, useWip) {
			live = append(live, got)
		}
	}

	sort.Slice(live, func(i, j int) bool { return live[i].Lower < live[j].Lower })

	return live
}

// children reconstructs the full live edge set at the requested
// version and runs nitree's children walk over it, rather than
// returning an empty result unconditionally. The cost — dominated by
// rebuilding the sorted snapshot over every key ever introduced — is
// paid only when a caller actually asks, and every Hierarchy
// implementation then behaves consistently rather than one variant
// silently truncating to zero.
//
// Complexity: O(E log V log R + E log E) to rebuild the snapshot, plus
// O(k) for the walk itself.
func (e *Engine[K, V]) children(key K, version uint64, useWip bool) ([]K, error) {
	seed, ok := e.edges.SearchOne(key)
	if !ok {
		return nil, hierarchy.ErrInvalidKey
	}

	parent := e.getEdge(seed, version, useWip)
	live := e.liveEdgesSnapshot(version, useWip)

	var out []K
	nitree.WalkChildren(parent, newSliceEdges(live), func(child nitree.NIEdge[K]) {
		out = append(out, child.Key)
	})

	return out, nil
}

// NumChildren returns the number of direct children of key at the
// latest version, including uncommitted edits.
func (e *Engine[K, V]) NumChildren(key K) (uint64, error) {
	kids, err := e.children(key, e.MaxVersion(), true)
	if err != nil {
		return 0, err
	}

	return uint64(len(kids)), nil
}

// Children returns the direct children of key at the latest version,
// including uncommitted edits, in ascending Lower order.
func (e *Engine[K, V]) Children(key K) ([]K, error) {
	return e.children(key, e.MaxVersion(), true)
}
