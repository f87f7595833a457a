// Package hierarchy defines the query-capability contract every
// keyed-tree variant in this module implements — the adjacency-list
// baseline and the versioned DeltaNI engine alike — plus the sentinel
// error kinds they all return.
//
// A caller holding a Hierarchy[K, V] can swap implementations (an
// adjlist.List for a quick baseline, a deltani.Engine for full version
// travel) without changing call sites; errors.Is checks against this
// package's sentinels work identically regardless of which variant
// produced them.
//
// None of the three variants this module ships do their own locking.
// The engine is documented (spec §5) as single-threaded with no
// suspension points; a caller that shares a Hierarchy across
// goroutines must wrap it in its own reader-writer lock at engine
// granularity — this package adds no internal synchronization of its
// own, the same black-box contract core.Graph documents for its own
// embedders.
package hierarchy
