package deltani

import (
	"github.com/katalvlaran/deltani/hierarchy"
	"github.com/katalvlaran/deltani/nitree"
)

// isLive reports whether a reconstructed edge is live: its Lower is
// strictly below the max-bound in force for the version it was
// reconstructed at. got must already be the result of getEdge(seed,
// version, useWip) for the same (version, useWip) pair passed here.
func (e *Engine[K, V]) isLive(got nitree.NIEdge[K], version uint64, useWip bool) bool {
	if useWip && !e.wip.Empty() {
		return got.Lower < e.wip.Max
	}
	if version == 0 {
		return got.Lower < e.initMax
	}

	return got.Lower < e.deltas[0][version-1].Max
}

func (e *Engine[K, V]) exists(key K, version uint64, useWip bool) bool {
	seed, ok := e.edges.SearchOne(key)
	if !ok {
		return false
	}
	got := e.getEdge(seed, version, useWip)

	return e.isLive(got, version, useWip)
}

// Exists reports whether key is live at the latest version, including
// uncommitted work-in-progress edits.
func (e *Engine[K, V]) Exists(key K) bool {
	return e.exists(key, e.MaxVersion(), true)
}

// ExistsAt reports whether key was live at version, with no
// work-in-progress edits applied. Fails ErrInvalidVersion if version
// exceeds MaxVersion().
func (e *Engine[K, V]) ExistsAt(key K, version uint64) (bool, error) {
	if version > e.MaxVersion() {
		return false, hierarchy.ErrInvalidVersion
	}

	return e.exists(key, version, false), nil
}

func (e *Engine[K, V]) isAncestor(parent, child K, version uint64, useWip bool) (bool, error) {
	parentSeed, ok := e.edges.SearchOne(parent)
	if !ok {
		return false, hierarchy.ErrInvalidKey
	}
	childSeed, ok := e.edges.SearchOne(child)
	if !ok {
		return false, hierarchy.ErrInvalidKey
	}

	p := e.getEdge(parentSeed, version, useWip)
	c := e.getEdge(childSeed, version, useWip)

	return nitree.IsAncestorEdges(p, c), nil
}

// IsAncestor reports whether parent strictly contains child at the
// latest version, including uncommitted edits. Fails ErrInvalidKey if
// either key is absent from the edge map.
func (e *Engine[K, V]) IsAncestor(parent, child K) (bool, error) {
	return e.isAncestor(parent, child, e.MaxVersion(), true)
}

// IsAncestorAt is IsAncestor evaluated at an explicit committed
// version, with no work-in-progress edits applied.
func (e *Engine[K, V]) IsAncestorAt(parent, child K, version uint64) (bool, error) {
	if version > e.MaxVersion() {
		return false, hierarchy.ErrInvalidVersion
	}

	return e.isAncestor(parent, child, version, false)
}

// Search returns the value associated with key, or ErrKeyNotFound.
func (e *Engine[K, V]) Search(key K) (V, error) {
	val, ok := e.values.SearchOne(key)
	if !ok {
		var zero V
		return zero, hierarchy.ErrKeyNotFound
	}

	return val, nil
}
