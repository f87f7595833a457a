package delta

import "github.com/katalvlaran/deltani/bptree"

// Range is one breakpoint of a Function: every value v with From <= v
// (up to the next breakpoint's From) maps to v + To - From.
type Range struct {
	From uint64
	To   uint64
}

// Function is a piecewise-linear bijection over uint64, built from a
// finite set of Ranges. An empty Function is the identity. Max is the
// upper bound this function's codomain edges must stay below; it
// carries no meaning for an empty Function.
type Function struct {
	ranges    *bptree.Tree[uint64, Range]
	rangesInv *bptree.Tree[uint64, Range]
	Max       uint64
}

// New returns the identity function.
func New() *Function {
	return &Function{
		ranges:    bptree.New[uint64, Range](),
		rangesInv: bptree.New[uint64, Range](),
	}
}
