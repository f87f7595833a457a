// Package deltani is an in-memory, versioned tree store: every committed
// edit to a rooted hierarchy is retained, so any past version can be
// queried in O(log V) without rewriting the edges that version saw.
//
// What is deltani?
//
//	A pure-Go, zero-cgo library built from three layers:
//
//	  • bptree  — an ordered multi-map indexed sequence, the storage
//	    primitive everything else is built from.
//	  • nitree  — Nested-Intervals tree encoding: ancestry and children
//	    queries answered from interval containment alone, no edge walk.
//	  • delta   — piecewise-linear integer bijections, composed and
//	    inverted to describe how one version's intervals become the
//	    next's.
//
// deltani (the subpackage) combines these into an engine that answers
// exists/children/is_ancestor/search at any committed version, plus a
// simpler adjlist baseline with no version concept at all, both
// implementing the shared hierarchy.Hierarchy contract. loader reads the
// external `|`-delimited record format that feeds either variant.
//
// Pure Go — no cgo, no hidden dependencies, save for testify in tests.
//
//	go get github.com/katalvlaran/deltani
package deltani
