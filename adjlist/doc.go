// Package adjlist implements the simple adjacency-list hierarchy
// variant: a baseline with no versioning, useful for comparison and
// for fixtures that don't need version travel.
//
// List stores one bptree.Tree[K, AdjacentEdge[K]] multimap keyed by
// parent, plus the value map every hierarchy.Hierarchy carries.
// Children are the entries of one key's duplicate run; ancestry is a
// depth-first stack walk; there is no delta log, no interval
// encoding, and no version argument worth reconstructing — Commit is
// a no-op kept only so List satisfies hierarchy.Hierarchy.
//
// Unlike original_source/src/adj_list.h, where Insert/Remove/Commit
// are no-op stubs present purely because the C++ Hierarchy base class
// forces every subclass to define the full virtual surface, this
// package's Insert and Remove genuinely mutate the adjacency map: a
// standalone Go baseline with disabled edits would be useless for
// anything but read-only fixtures, so this is a deliberate behavior
// supplement over the original, not a translation of it.
package adjlist
