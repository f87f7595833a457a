package delta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deltani/delta"
	"github.com/katalvlaran/deltani/nitree"
)

func TestEmptyDeltaIsIdentity(t *testing.T) {
	f := delta.New()

	assert.True(t, f.Empty())
	assert.EqualValues(t, 42, f.Evaluate(42))
	assert.EqualValues(t, 42, f.EvaluateInv(42))
}

// TestApplyShiftsEdgesAcrossBreakpoints checks that a delta with
// ranges {(1,1),(5,7),(6,5),(8,8)} and max=9 widens an edge whose upper
// bound sits on a breakpoint, shifts an edge past that breakpoint down
// by one, and leaves an edge entirely inside a single range untouched.
func TestApplyShiftsEdgesAcrossBreakpoints(t *testing.T) {
	d := delta.New()
	d.AddRange(delta.Range{From: 1, To: 1})
	d.AddRange(delta.Range{From: 5, To: 7})
	d.AddRange(delta.Range{From: 6, To: 5})
	d.AddRange(delta.Range{From: 8, To: 8})
	d.Max = 9

	got := delta.Apply(d, nitree.NIEdge[int]{Key: 123, Lower: 2, Upper: 5})
	assert.Equal(t, nitree.NIEdge[int]{Key: 123, Lower: 2, Upper: 7}, got)

	got = delta.Apply(d, nitree.NIEdge[int]{Key: 123, Lower: 6, Upper: 7})
	assert.Equal(t, nitree.NIEdge[int]{Key: 123, Lower: 5, Upper: 6}, got)

	got = delta.Apply(d, nitree.NIEdge[int]{Key: 123, Lower: 3, Upper: 4})
	assert.Equal(t, nitree.NIEdge[int]{Key: 123, Lower: 3, Upper: 4}, got)
}

// TestInverseLaw checks that D^-1(D(x)) == x and D(D^-1(x)) == x for
// every endpoint touched by a non-trivial delta.
func TestInverseLaw(t *testing.T) {
	d := delta.New()
	d.AddRange(delta.Range{From: 1, To: 1})
	d.AddRange(delta.Range{From: 5, To: 7})
	d.AddRange(delta.Range{From: 6, To: 5})
	d.AddRange(delta.Range{From: 8, To: 8})
	d.Max = 9

	for x := uint64(1); x <= 20; x++ {
		require.EqualValues(t, x, d.EvaluateInv(d.Evaluate(x)), "x=%d", x)
		require.EqualValues(t, x, d.Evaluate(d.EvaluateInv(x)), "x=%d", x)
	}
}

// TestMergeComposition checks that merging A then B equals applying A
// and then B to every x in range.
func TestMergeComposition(t *testing.T) {
	a := delta.New()
	a.AddRange(delta.Range{From: 1, To: 1})
	a.AddRange(delta.Range{From: 5, To: 7})
	a.AddRange(delta.Range{From: 6, To: 5})
	a.AddRange(delta.Range{From: 8, To: 8})
	a.Max = 9

	b := delta.New()
	b.AddRange(delta.Range{From: 1, To: 1})
	b.AddRange(delta.Range{From: 3, To: 7})
	b.AddRange(delta.Range{From: 5, To: 3})
	b.AddRange(delta.Range{From: 9, To: 9})
	b.Max = 7

	merged := a.Merge(b)
	assert.EqualValues(t, 7, merged.Max)

	for x := uint64(1); x <= 16; x++ {
		want := b.Evaluate(a.Evaluate(x))
		got := merged.Evaluate(x)
		assert.EqualValues(t, want, got, "x=%d", x)
	}
}

func TestMergeWithEmptyReturnsClone(t *testing.T) {
	a := delta.New()
	a.AddRange(delta.Range{From: 1, To: 1})
	a.AddRange(delta.Range{From: 5, To: 7})
	a.Max = 9

	empty := delta.New()

	merged := a.Merge(empty)
	assert.EqualValues(t, 9, merged.Max)
	assert.EqualValues(t, a.Evaluate(6), merged.Evaluate(6))

	merged2 := empty.Merge(a)
	assert.EqualValues(t, a.Evaluate(6), merged2.Evaluate(6))
}

func TestCloneIsIndependent(t *testing.T) {
	a := delta.New()
	a.AddRange(delta.Range{From: 1, To: 1})
	a.AddRange(delta.Range{From: 5, To: 7})
	a.Max = 9

	clone := a.Clone()
	clone.AddRange(delta.Range{From: 20, To: 30})

	assert.EqualValues(t, 8, a.Evaluate(6))
	assert.NotEqualValues(t, a.Evaluate(25), clone.Evaluate(25))
}
