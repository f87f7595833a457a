package loader_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deltani/loader"
)

func TestReadValuesSkipsUnparsableID(t *testing.T) {
	input := "1|alpha\nnot-a-number|beta\n3|gamma\n"

	values, err := loader.ReadValues(strings.NewReader(input))
	require.NoError(t, err)

	name, ok := values.SearchOne(1)
	require.True(t, ok)
	assert.Equal(t, "alpha", name)

	name, ok = values.SearchOne(3)
	require.True(t, ok)
	assert.Equal(t, "gamma", name)

	assert.Equal(t, 0, values.Count(2))
}

func TestReadValuesTruncatesLongName(t *testing.T) {
	long := strings.Repeat("x", 200)
	values, err := loader.ReadValues(strings.NewReader("1|" + long + "\n"))
	require.NoError(t, err)

	name, ok := values.SearchOne(1)
	require.True(t, ok)
	assert.Len(t, name, 127)
}

func TestReadSeedEdgesParsesTriples(t *testing.T) {
	input := "1|1|8\n2|3|4\nbogus|1|2\n3|6|7\n"

	edges, err := loader.ReadSeedEdges(strings.NewReader(input))
	require.NoError(t, err)

	edge, ok := edges.SearchOne(1)
	require.True(t, ok)
	assert.EqualValues(t, 1, edge.Lower)
	assert.EqualValues(t, 8, edge.Upper)

	assert.Equal(t, 0, edges.Count(999))
}

func TestReadSeedEdgesSkipsIncompleteRecord(t *testing.T) {
	edges, err := loader.ReadSeedEdges(strings.NewReader("1|5\n2|3|4\n"))
	require.NoError(t, err)

	assert.Equal(t, 0, edges.Count(1))
	edge, ok := edges.SearchOne(2)
	require.True(t, ok)
	assert.EqualValues(t, 3, edge.Lower)
}

func TestReadAdjacencyParsesPairs(t *testing.T) {
	input := "1|2\n1|3\nbad|4\n"

	edges, err := loader.ReadAdjacency(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.EqualValues(t, 1, edges[0].Parent)
	assert.EqualValues(t, 2, edges[0].Child)
	assert.EqualValues(t, 3, edges[1].Child)
}
