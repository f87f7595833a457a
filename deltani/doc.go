// Package deltani implements the DeltaNI engine: the versioned
// hierarchy store layered on bptree, nitree, and delta.
//
// Engine owns a value map, an NI edge map (one entry per key ever
// introduced, live or not), a Fenwick-shaped delta log giving
// O(log V · log R) reconstruction of any historical edge, and a
// work-in-progress delta staging uncommitted Insert/Remove edits.
// Commit is the only operation that appends to the log; Insert and
// Remove only ever touch the work-in-progress delta (and, for a
// never-before-seen key, allocate its canonical edge slot).
//
// Engine implements hierarchy.Hierarchy[K, V], so callers can hold one
// behind that interface interchangeably with adjlist.List.
package deltani
