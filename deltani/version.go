package deltani

import (
	"github.com/katalvlaran/deltani/delta"
	"github.com/katalvlaran/deltani/hierarchy"
	"github.com/katalvlaran/deltani/nitree"
)

// MaxVersion returns the number of committed versions.
//
// Complexity: O(1).
func (e *Engine[K, V]) MaxVersion() uint64 {
	if len(e.deltas) == 0 {
		return 0
	}

	return uint64(len(e.deltas[0]))
}

// getEdge reconstructs edge as seen at version, optionally applying
// the work-in-progress delta on top. version is clamped to
// MaxVersion() before the bit-walk begins: the walk always consumes
// the clamped value's bits, never the raw argument's.
//
// Complexity: O(log version · log R).
func (e *Engine[K, V]) getEdge(edge nitree.NIEdge[K], version uint64, useWip bool) nitree.NIEdge[K] {
	v := version
	if max := e.MaxVersion(); v > max {
		v = max
	}

	if v == 0 {
		if !useWip || e.wip.Empty() {
			return edge
		}

		return delta.Apply(e.wip, edge)
	}

	power := 63
	for v>>uint(power) == 0 {
		power--
	}

	newEdge := edge
	var current uint64
	for current < v {
		step := uint64(1) << uint(power)
		newEdge = delta.Apply(e.deltas[power][current/step], newEdge)
		current += step
		if power > 0 {
			power--
			for power > 0 && (v>>uint(power))&1 == 0 {
				power--
			}
		}
	}

	if useWip {
		newEdge = delta.Apply(e.wip, newEdge)
	}

	return newEdge
}

// GetEdge reconstructs edge as seen at the latest version, including
// any uncommitted work-in-progress edits.
func (e *Engine[K, V]) GetEdge(edge nitree.NIEdge[K]) nitree.NIEdge[K] {
	return e.getEdge(edge, e.MaxVersion(), true)
}

// GetEdgeAt reconstructs edge as seen at an explicit committed
// version, with no work-in-progress edits applied. Fails
// ErrInvalidVersion if version exceeds MaxVersion().
func (e *Engine[K, V]) GetEdgeAt(edge nitree.NIEdge[K], version uint64) (nitree.NIEdge[K], error) {
	if version > e.MaxVersion() {
		var zero nitree.NIEdge[K]
		return zero, hierarchy.ErrInvalidVersion
	}

	return e.getEdge(edge, version, false), nil
}
