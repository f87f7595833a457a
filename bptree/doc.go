// Package bptree provides the indexed sequence: a generic, in-memory,
// ordered multi-map from a totally ordered key to an arbitrary value,
// shaped like a B+ tree.
//
// The container is the one primitive the rest of this module builds on:
// deltani's delta log uses two bptree.Tree instances per delta function
// (forward index keyed by "from", inverse keyed by "to"); nitree and
// deltani use one keyed by the hierarchy's key type to store NI edges;
// loader populates a value-map instance straight from input records.
//
// Characteristics:
//
//   - Point search, range-from ("floor") search, and per-key duplicate
//     iteration, all over a leaf-level doubly linked list.
//   - Inner nodes carry a parent pointer plus an index-within-parent
//     ("back-index"), so a leaf overflow propagates upward without
//     re-descending from the root.
//   - Duplicate keys are permitted and preserved: inserting the same key
//     twice keeps both values, observable via Tree.IterEqual.
//   - Node fanout ("order") is a tunable construction-time parameter
//     (WithOrder), default 32, sane range 8–64.
//
// Complexity: O(log N) Insert and SearchOne, O(1) amortized per element
// visited by either iterator. No operation ever fails; capacity is
// unbounded (bounded only by available memory).
package bptree
