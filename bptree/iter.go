package bptree

import "cmp"

// equalIterator walks a matching run of duplicate keys, starting from
// the last occurrence of key in sorted order and moving backward
// through the leaf's doubly linked list until the key changes.
type equalIterator[K cmp.Ordered, V any] struct {
	node  *node[K, V]
	index int
	key   K
	first bool
}

// rangeIterator walks forward from a starting (node, index) position to
// the end of the leaf chain.
type rangeIterator[K cmp.Ordered, V any] struct {
	node  *node[K, V]
	index int
	first bool
}

// EqualIter is the iterator type returned by Tree.IterEqual.
type EqualIter[K cmp.Ordered, V any] = *equalIterator[K, V]

// RangeIter is the iterator type returned by Tree.IterFrom.
type RangeIter[K cmp.Ordered, V any] = *rangeIterator[K, V]

// Next advances the iterator and reports whether Value is valid.
func (it *equalIterator[K, V]) Next() bool {
	if it.node == nil {
		return false
	}
	if it.first {
		it.first = false
		return it.index >= 0 && it.index < len(it.node.keys) && it.node.keys[it.index] == it.key
	}

	if it.index == 0 {
		it.node = it.node.prev
		if it.node == nil {
			return false
		}
		it.index = len(it.node.keys) - 1
	} else {
		it.index--
	}
	if it.node.keys[it.index] != it.key {
		it.node = nil
		return false
	}

	return true
}

// Value returns the value at the iterator's current position. Call
// only after a call to Next returned true.
func (it *equalIterator[K, V]) Value() V {
	return it.node.values[it.index]
}

// Next advances the iterator and reports whether Value is valid.
func (it *rangeIterator[K, V]) Next() bool {
	if it.node == nil {
		return false
	}
	if it.first {
		it.first = false
		return it.index < len(it.node.keys)
	}

	it.index++
	for it.node != nil && it.index >= len(it.node.keys) {
		it.node = it.node.next
		it.index = 0
	}

	return it.node != nil
}

// Value returns the value at the iterator's current position. Call
// only after a call to Next returned true.
func (it *rangeIterator[K, V]) Value() V {
	return it.node.values[it.index]
}

// IterEqual returns a lazy sequence of every value currently associated
// with key. Emission order is unspecified; each matching entry appears
// exactly once. Finite, stable as long as the tree is not mutated while
// iterating.
//
// Complexity: O(log N + m) where m is the number of matches.
func (t *Tree[K, V]) IterEqual(key K) *equalIterator[K, V] {
	if t.IsEmpty() {
		return &equalIterator[K, V]{}
	}

	leaf := t.descend(key)
	idx := upperBound(leaf.keys, key) - 1
	if idx < 0 || idx >= len(leaf.keys) || leaf.keys[idx] != key {
		return &equalIterator[K, V]{}
	}

	return &equalIterator[K, V]{node: leaf, index: idx, key: key, first: true}
}

// IterFrom returns a lazy forward sequence of values starting at the
// largest stored key <= key (if any) and continuing in ascending key
// order to the end. If key is below all stored keys, starts at the
// smallest; if above all, starts at the largest. Empty iff the tree is
// empty.
//
// Complexity: O(log N) to locate the start, O(1) amortized per element.
func (t *Tree[K, V]) IterFrom(key K) *rangeIterator[K, V] {
	if t.IsEmpty() {
		return &rangeIterator[K, V]{}
	}

	leaf := t.descend(key)
	idx := upperBound(leaf.keys, key)
	if idx == 0 {
		if leaf.prev == nil {
			return &rangeIterator[K, V]{node: leaf, index: 0, first: true}
		}

		return &rangeIterator[K, V]{node: leaf.prev, index: len(leaf.prev.keys) - 1, first: true}
	}

	return &rangeIterator[K, V]{node: leaf, index: idx - 1, first: true}
}
