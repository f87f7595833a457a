package hierarchy

import "cmp"

// Hierarchy is the query-capability contract shared by every keyed-tree
// variant this module ships: the adjacency-list baseline (adjlist.List)
// and the versioned engine (deltani.Engine). A caller holding a
// Hierarchy[K, V] can swap implementations without changing call
// sites; every implementation returns this package's sentinel errors
// so errors.Is checks are variant-agnostic.
type Hierarchy[K cmp.Ordered, V any] interface {
	// Exists reports whether k is currently live, at the latest
	// version including any uncommitted edits.
	Exists(k K) bool

	// ExistsAt reports whether k was live at version, rejecting
	// version > MaxVersion with ErrInvalidVersion.
	ExistsAt(k K, version uint64) (bool, error)

	// NumChildren returns the number of direct children of k.
	NumChildren(k K) (uint64, error)

	// Children returns the direct children of k.
	Children(k K) ([]K, error)

	// IsAncestor reports whether parent strictly contains child at the
	// latest version. Fails with ErrInvalidKey if either key is absent
	// from the edge map.
	IsAncestor(parent, child K) (bool, error)

	// IsAncestorAt is IsAncestor evaluated at an explicit version.
	IsAncestorAt(parent, child K, version uint64) (bool, error)

	// Search returns the value associated with k, or ErrKeyNotFound.
	Search(k K) (V, error)

	// Insert stages the addition of k as a new child of parent with
	// value v. Fails ErrInvalidKey, ErrKeyRemoved, or ErrKeyExists
	// without mutating any staged state.
	Insert(parent, k K, v V) error

	// Remove stages the deletion of leaf k. Fails ErrInvalidKey,
	// ErrKeyRemoved, or ErrKeyHasChildren without mutating any staged
	// state.
	Remove(k K) error

	// Commit transfers staged edits into the permanent log and returns
	// the new max version.
	Commit() (uint64, error)
}
