package bptree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deltani/bptree"
)

// TestEmptyTree verifies IsEmpty and SearchOne on a freshly constructed
// tree with no insertions.
func TestEmptyTree(t *testing.T) {
	tree := bptree.New[int, string]()
	assert.True(t, tree.IsEmpty())

	_, ok := tree.SearchOne(42)
	assert.False(t, ok)
	assert.Equal(t, 0, tree.Count(42))
}

// TestInsertAndSearchOne checks that after a single insert, SearchOne
// returns the value and Count is 1.
func TestInsertAndSearchOne(t *testing.T) {
	tree := bptree.New[int, string]()
	tree.Insert(5, "five")

	assert.False(t, tree.IsEmpty())
	v, ok := tree.SearchOne(5)
	require.True(t, ok)
	assert.Equal(t, "five", v)
	assert.Equal(t, 1, tree.Count(5))

	_, ok = tree.SearchOne(6)
	assert.False(t, ok)
}

// TestDuplicateCounting locks in invariant 2: inserting the same key n
// times retains all n values and IterEqual yields a permutation of them.
func TestDuplicateCounting(t *testing.T) {
	tree := bptree.New[int, string]()
	values := []string{"a", "b", "c", "d"}
	for _, v := range values {
		tree.Insert(7, v)
	}

	assert.Equal(t, len(values), tree.Count(7))

	var seen []string
	it := tree.IterEqual(7)
	for it.Next() {
		seen = append(seen, it.Value())
	}
	assert.ElementsMatch(t, values, seen)
}

// TestManyInsertsForceSplits exercises enough inserts, with a small
// order, to force repeated leaf and inner-node splits, then checks every
// key is still reachable in sorted order via IterFrom.
func TestManyInsertsForceSplits(t *testing.T) {
	const n = 500
	tree := bptree.New[int, int](bptree.WithOrder(4))
	for i := 0; i < n; i++ {
		// insertion in a scrambled order to exercise splits on both
		// ends of the key range, not just monotonically increasing
		key := (i * 37) % n
		tree.Insert(key, key*10)
	}

	for i := 0; i < n; i++ {
		v, ok := tree.SearchOne(i)
		require.True(t, ok, "key %d should be present", i)
		assert.Equal(t, i*10, v)
	}

	it := tree.IterFrom(-1)
	prev := -1
	count := 0
	for it.Next() {
		v := it.Value()
		assert.Greater(t, v, prev*10-1)
		prev = v / 10
		count++
	}
	assert.Equal(t, n, count)
}

// TestIterFromBoundaries verifies the three documented boundary
// behaviors of IterFrom: below all keys, above all keys, and landing
// exactly between two existing keys.
func TestIterFromBoundaries(t *testing.T) {
	tree := bptree.New[int, string]()
	tree.Insert(10, "ten")
	tree.Insert(20, "twenty")
	tree.Insert(30, "thirty")

	collect := func(start int) []string {
		var out []string
		it := tree.IterFrom(start)
		for it.Next() {
			out = append(out, it.Value())
		}

		return out
	}

	assert.Equal(t, []string{"ten", "twenty", "thirty"}, collect(-100))
	assert.Equal(t, []string{"thirty"}, collect(100))
	assert.Equal(t, []string{"ten", "twenty", "thirty"}, collect(15))
	assert.Equal(t, []string{"twenty", "thirty"}, collect(20))
}

// TestIterFromEmptyTree verifies the empty container produces an empty
// iterator regardless of the query key.
func TestIterFromEmptyTree(t *testing.T) {
	tree := bptree.New[int, string]()
	it := tree.IterFrom(0)
	assert.False(t, it.Next())
}
