package hierarchy

import "errors"

var (
	// ErrKeyNotFound indicates Search referenced a key absent from the
	// value map.
	ErrKeyNotFound = errors.New("hierarchy: key not found")

	// ErrInvalidKey indicates Insert, Remove, or IsAncestor referenced a
	// key absent from the edge map. The root is always present by
	// construction, so this never fires for the root.
	ErrInvalidKey = errors.New("hierarchy: invalid key")

	// ErrKeyRemoved indicates an edit referenced a key whose edge is
	// currently not live.
	ErrKeyRemoved = errors.New("hierarchy: key is removed")

	// ErrKeyExists indicates an Insert target key is currently live.
	ErrKeyExists = errors.New("hierarchy: key already exists")

	// ErrKeyHasChildren indicates a Remove target is not a leaf.
	ErrKeyHasChildren = errors.New("hierarchy: key has children")

	// ErrInvalidVersion indicates a version argument exceeds the
	// hierarchy's max committed version.
	ErrInvalidVersion = errors.New("hierarchy: invalid version")
)
