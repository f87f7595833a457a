package delta

import (
	"cmp"

	"github.com/katalvlaran/deltani/bptree"
	"github.com/katalvlaran/deltani/nitree"
)

// Empty reports whether f carries any breakpoints. A nil or freshly
// zero-valued Function is treated as empty, so the wip delta's initial
// zero value needs no explicit construction before the first merge.
func (f *Function) Empty() bool {
	return f == nil || f.ranges == nil || f.ranges.IsEmpty()
}

// AddRange records one breakpoint, indexing it by From for Evaluate and
// by To for EvaluateInv.
func (f *Function) AddRange(r Range) {
	if f.ranges == nil {
		f.ranges = bptree.New[uint64, Range]()
	}
	if f.rangesInv == nil {
		f.rangesInv = bptree.New[uint64, Range]()
	}
	f.ranges.Insert(r.From, r)
	f.rangesInv.Insert(r.To, r)
}

// Evaluate applies the forward mapping: the breakpoint with the
// largest From <= value determines the constant offset.
//
// Complexity: O(log N).
func (f *Function) Evaluate(value uint64) uint64 {
	if f.Empty() {
		return value
	}
	it := f.ranges.IterFrom(value)
	if !it.Next() {
		return value
	}
	r := it.Value()

	return value + r.To - r.From
}

// EvaluateInv applies the inverse mapping, the same floor lookup over
// the by-To index.
//
// Complexity: O(log N).
func (f *Function) EvaluateInv(value uint64) uint64 {
	if f.Empty() {
		return value
	}
	it := f.rangesInv.IterFrom(value)
	if !it.Next() {
		return value
	}
	r := it.Value()

	return value - r.To + r.From
}

// Apply evaluates f at both bounds of edge, producing the edge as it
// exists after f's edit. Apply is a free function rather than a method
// because Function itself carries no key type parameter; only the
// edge being transformed does.
func Apply[K cmp.Ordered](f *Function, edge nitree.NIEdge[K]) nitree.NIEdge[K] {
	return nitree.NIEdge[K]{
		Key:   edge.Key,
		Lower: f.Evaluate(edge.Lower),
		Upper: f.Evaluate(edge.Upper),
	}
}

// Clone returns a deep, independent copy of f: a new Function sharing
// no bptree storage with f.
func (f *Function) Clone() *Function {
	clone := New()
	clone.Max = f.Max
	if f.Empty() {
		return clone
	}

	it := f.ranges.IterFrom(0)
	for it.Next() {
		clone.AddRange(it.Value())
	}

	return clone
}

// Merge composes f and other so that Apply(merged, e) == Apply(other,
// Apply(f, e)): f is applied first, other second. This is deltani.h's
// DeltaFunction::merge, read as "f.Merge(other)" for "f then other".
//
// Complexity: O(R log R) where R is the total range count of f and
// other.
func (f *Function) Merge(other *Function) *Function {
	if other.Empty() {
		return f.Clone()
	}
	if f.Empty() {
		return other.Clone()
	}

	merged := New()
	merged.Max = other.Max

	fIt := f.ranges.IterFrom(0)
	for fIt.Next() {
		r := fIt.Value()
		merged.AddRange(Range{From: r.From, To: other.Evaluate(r.To)})
	}

	oIt := other.ranges.IterFrom(0)
	for oIt.Next() {
		r := oIt.Value()
		from := f.EvaluateInv(r.From)
		if _, ok := merged.ranges.SearchOne(from); !ok {
			merged.AddRange(Range{From: from, To: r.To})
		}
	}

	return merged
}
