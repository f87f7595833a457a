package deltani

import (
	"github.com/katalvlaran/deltani/delta"
	"github.com/katalvlaran/deltani/hierarchy"
	"github.com/katalvlaran/deltani/nitree"
)

// currentMax returns the max-bound a freshly staged delta should build
// from: the work-in-progress delta's own Max if one is staged,
// otherwise the latest committed delta's Max, otherwise init_max.
func (e *Engine[K, V]) currentMax() uint64 {
	if !e.wip.Empty() {
		return e.wip.Max
	}
	if len(e.deltas) == 0 {
		return e.initMax
	}

	return e.deltas[0][len(e.deltas[0])-1].Max
}

// Insert stages the addition of key as a new child of parent with
// value v. A key reinserted after removal keeps the value it was first
// inserted with; v is stored only for a never-before-seen key. All
// preconditions are validated before any mutation: a failing Insert
// leaves the work-in-progress delta, the edge map, and the value map
// untouched.
func (e *Engine[K, V]) Insert(parent, key K, v V) error {
	parentSeed, ok := e.edges.SearchOne(parent)
	if !ok {
		return hierarchy.ErrInvalidKey
	}
	if !e.exists(parent, e.MaxVersion(), true) {
		return hierarchy.ErrKeyRemoved
	}
	if e.exists(key, e.MaxVersion(), true) {
		return hierarchy.ErrKeyExists
	}

	parentEdge := e.getEdge(parentSeed, e.MaxVersion(), true)

	var insertingEdge nitree.NIEdge[K]
	if seed, known := e.edges.SearchOne(key); known {
		insertingEdge = e.getEdge(seed, e.MaxVersion(), true)
	} else {
		insertingEdge = nitree.NIEdge[K]{Key: key, Lower: e.maxEdge + 1, Upper: e.maxEdge + 2}
		e.edges.Insert(key, insertingEdge)
		e.values.Insert(key, v)
		e.maxEdge += 2
	}

	d := delta.New()
	d.AddRange(delta.Range{From: 1, To: 1})
	d.AddRange(delta.Range{From: parentEdge.Upper, To: parentEdge.Upper + 2})
	d.AddRange(delta.Range{From: insertingEdge.Lower, To: parentEdge.Upper})
	d.AddRange(delta.Range{From: insertingEdge.Upper + 1, To: insertingEdge.Upper + 1})
	d.Max = e.currentMax() + 2

	e.wip = e.wip.Merge(d)

	return nil
}

// Remove stages the deletion of leaf key. All preconditions are
// validated before any mutation.
func (e *Engine[K, V]) Remove(key K) error {
	seed, ok := e.edges.SearchOne(key)
	if !ok {
		return hierarchy.ErrInvalidKey
	}
	if !e.exists(key, e.MaxVersion(), true) {
		return hierarchy.ErrKeyRemoved
	}

	edge := e.getEdge(seed, e.MaxVersion(), true)
	if edge.Upper-edge.Lower > 1 {
		return hierarchy.ErrKeyHasChildren
	}

	d := delta.New()
	d.AddRange(delta.Range{From: 1, To: 1})
	if edge.Lower == 1 {
		d.Max = 1
	} else {
		newMax := e.currentMax() - 2
		d.AddRange(delta.Range{From: edge.Lower, To: newMax})
		d.AddRange(delta.Range{From: edge.Upper + 1, To: edge.Lower})
		d.AddRange(delta.Range{From: newMax + 2, To: newMax + 2})
		d.Max = newMax
	}

	e.wip = e.wip.Merge(d)

	return nil
}

// insertDelta appends d to the log and performs the Fenwick-style
// merge-and-promote that keeps deltas[level][i] equal to the
// composition of 2^level contiguous committed deltas, returning the
// new max version.
func (e *Engine[K, V]) insertDelta(d *delta.Function) uint64 {
	if len(e.deltas) == 0 {
		e.deltas = append(e.deltas, []*delta.Function{d})

		return 1
	}

	e.deltas[0] = append(e.deltas[0], d)
	size := len(e.deltas[0])
	for level := 0; size%2 == 0; level++ {
		if level+1 >= len(e.deltas) {
			e.deltas = append(e.deltas, nil)
		}
		merged := e.deltas[level][size-2].Merge(e.deltas[level][size-1])
		e.deltas[level+1] = append(e.deltas[level+1], merged)
		size = len(e.deltas[level+1])
	}

	return uint64(len(e.deltas[0]))
}

// Commit transfers the work-in-progress delta into the permanent log
// and resets it to empty, returning the new max version. A commit
// with no staged edits is a no-op returning the unchanged max version.
func (e *Engine[K, V]) Commit() (uint64, error) {
	if e.wip.Empty() {
		return e.MaxVersion(), nil
	}

	v := e.insertDelta(e.wip)
	e.wip = delta.New()

	return v, nil
}
