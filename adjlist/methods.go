package adjlist

import "github.com/katalvlaran/deltani/hierarchy"

// Exists reports whether key is present in the value map and has not
// been removed.
func (l *List[K, V]) Exists(key K) bool {
	_, ok := l.values.SearchOne(key)

	return ok && !l.removed[key]
}

// ExistsAt is Exists restricted to version 0, the only version this
// variant has. Any other version is rejected with ErrInvalidVersion.
func (l *List[K, V]) ExistsAt(key K, version uint64) (bool, error) {
	if version != 0 {
		return false, hierarchy.ErrInvalidVersion
	}

	return l.Exists(key), nil
}

// children collects the live children of key, failing ErrInvalidKey if
// key itself is unknown. An edge record only counts as current when
// parentOf still names key as the child's parent — this is what keeps
// a key's stale edge under its former parent from resurfacing once the
// key is reinserted elsewhere.
func (l *List[K, V]) children(key K) ([]K, error) {
	if _, ok := l.values.SearchOne(key); !ok {
		return nil, hierarchy.ErrInvalidKey
	}

	var out []K
	it := l.edges.IterEqual(key)
	for it.Next() {
		e := it.Value()
		if !l.removed[e.Child] && l.parentOf[e.Child] == key {
			out = append(out, e.Child)
		}
	}

	return out, nil
}

// NumChildren returns the number of live direct children of key.
func (l *List[K, V]) NumChildren(key K) (uint64, error) {
	kids, err := l.children(key)
	if err != nil {
		return 0, err
	}

	return uint64(len(kids)), nil
}

// Children returns the live direct children of key.
func (l *List[K, V]) Children(key K) ([]K, error) {
	return l.children(key)
}

// IsAncestor reports whether parent is a strict ancestor of child,
// via a depth-first walk of the adjacency map.
func (l *List[K, V]) IsAncestor(parent, child K) (bool, error) {
	if _, ok := l.values.SearchOne(parent); !ok {
		return false, hierarchy.ErrInvalidKey
	}
	if _, ok := l.values.SearchOne(child); !ok {
		return false, hierarchy.ErrInvalidKey
	}

	stack := []K{parent}
	for len(stack) > 0 {
		key := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		it := l.edges.IterEqual(key)
		for it.Next() {
			e := it.Value()
			if l.parentOf[e.Child] != key {
				continue
			}
			if e.Child == child {
				return true, nil
			}
			stack = append(stack, e.Child)
		}
	}

	return false, nil
}

// IsAncestorAt is IsAncestor restricted to version 0.
func (l *List[K, V]) IsAncestorAt(parent, child K, version uint64) (bool, error) {
	if version != 0 {
		return false, hierarchy.ErrInvalidVersion
	}

	return l.IsAncestor(parent, child)
}

// Search returns the value associated with key, or ErrKeyNotFound.
func (l *List[K, V]) Search(key K) (V, error) {
	val, ok := l.values.SearchOne(key)
	if !ok {
		var zero V
		return zero, hierarchy.ErrKeyNotFound
	}

	return val, nil
}

// Insert adds key as a new child of parent with value v. Fails
// ErrInvalidKey if parent is unknown, ErrKeyRemoved if parent is not
// live, and ErrKeyExists if key is currently live. A key reused after
// removal has its tombstone cleared and is re-parented under parent.
func (l *List[K, V]) Insert(parent, key K, v V) error {
	if _, ok := l.values.SearchOne(parent); !ok {
		return hierarchy.ErrInvalidKey
	}
	if l.removed[parent] {
		return hierarchy.ErrKeyRemoved
	}
	if l.Exists(key) {
		return hierarchy.ErrKeyExists
	}

	if _, known := l.values.SearchOne(key); !known {
		l.values.Insert(key, v)
	}
	delete(l.removed, key)
	l.edges.Insert(parent, AdjacentEdge[K]{Parent: parent, Child: key})
	l.parentOf[key] = parent

	return nil
}

// Remove marks key as removed. Fails ErrInvalidKey if key is unknown,
// ErrKeyRemoved if already removed, and ErrKeyHasChildren if key still
// has live children.
func (l *List[K, V]) Remove(key K) error {
	if _, ok := l.values.SearchOne(key); !ok {
		return hierarchy.ErrInvalidKey
	}
	if l.removed[key] {
		return hierarchy.ErrKeyRemoved
	}

	n, err := l.NumChildren(key)
	if err != nil {
		return err
	}
	if n > 0 {
		return hierarchy.ErrKeyHasChildren
	}

	l.removed[key] = true

	return nil
}

// Commit is a no-op: this variant carries no version concept. It
// exists only so List satisfies hierarchy.Hierarchy.
func (l *List[K, V]) Commit() (uint64, error) {
	return 0, nil
}
