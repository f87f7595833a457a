package adjlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deltani/adjlist"
	"github.com/katalvlaran/deltani/bptree"
	"github.com/katalvlaran/deltani/hierarchy"
)

func TestListImplementsHierarchy(t *testing.T) {
	var _ hierarchy.Hierarchy[int, string] = adjlist.New[int, string]()
}

func buildSeedList(t *testing.T) *adjlist.List[int, string] {
	t.Helper()
	values := bptree.New[int, string]()
	values.Insert(1, "root")
	l := adjlist.NewFromSeed[int, string](values, nil)
	require.True(t, l.Exists(1))
	require.NoError(t, l.Insert(1, 2, "child-a"))
	require.NoError(t, l.Insert(1, 3, "child-b"))
	require.NoError(t, l.Insert(2, 4, "grandchild"))

	return l
}

func TestInsertAndChildren(t *testing.T) {
	l := buildSeedList(t)

	kids, err := l.Children(1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{2, 3}, kids)

	n, err := l.NumChildren(1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	kids, err = l.Children(2)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, kids)
}

func TestIsAncestorDFS(t *testing.T) {
	l := buildSeedList(t)

	ok, err := l.IsAncestor(1, 4)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.IsAncestor(3, 4)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = l.IsAncestor(1, 999)
	assert.ErrorIs(t, err, hierarchy.ErrInvalidKey)
}

func TestInsertRejectsDuplicateAndMissingParent(t *testing.T) {
	l := buildSeedList(t)

	err := l.Insert(1, 2, "dup")
	assert.ErrorIs(t, err, hierarchy.ErrKeyExists)

	err = l.Insert(999, 5, "orphan")
	assert.ErrorIs(t, err, hierarchy.ErrInvalidKey)
}

func TestRemoveLeafThenReinsert(t *testing.T) {
	l := buildSeedList(t)

	err := l.Remove(1)
	assert.ErrorIs(t, err, hierarchy.ErrKeyHasChildren, "root still has children 2 and 3")

	require.NoError(t, l.Remove(4))
	assert.False(t, l.Exists(4))

	kids, err := l.Children(2)
	require.NoError(t, err)
	assert.Empty(t, kids, "removed child must not appear in its parent's children")

	err = l.Remove(4)
	assert.ErrorIs(t, err, hierarchy.ErrKeyRemoved)

	require.NoError(t, l.Insert(3, 4, "revived"))
	assert.True(t, l.Exists(4))

	kids, err = l.Children(3)
	require.NoError(t, err)
	assert.Contains(t, kids, 4, "4 must show up under its new parent")

	kids, err = l.Children(2)
	require.NoError(t, err)
	assert.NotContains(t, kids, 4, "4's stale edge under its old parent must not resurface")
}

func TestCommitIsVersionlessNoOp(t *testing.T) {
	l := buildSeedList(t)

	v, err := l.Commit()
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = l.ExistsAt(1, 1)
	assert.ErrorIs(t, err, hierarchy.ErrInvalidVersion)
}
