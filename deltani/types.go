package deltani

import (
	"cmp"

	"github.com/katalvlaran/deltani/bptree"
	"github.com/katalvlaran/deltani/delta"
	"github.com/katalvlaran/deltani/nitree"
)

// Engine is the versioned DeltaNI hierarchy: an NI edge map, a value
// map, a Fenwick-style delta log, and a work-in-progress delta
// accumulating uncommitted edits.
type Engine[K cmp.Ordered, V any] struct {
	values *bptree.Tree[K, V]
	edges  *bptree.Tree[K, nitree.NIEdge[K]]

	// deltas[level][i] holds the composition of 2^level contiguous
	// committed deltas starting at committed index i*2^level.
	// deltas[0] holds the committed deltas themselves, one per
	// version.
	deltas [][]*delta.Function
	wip    *delta.Function

	initMax uint64
	maxEdge uint64
}

// config holds the constructor overrides: explicit init_max/max_edge
// in place of the values scanned from seed edges.
type config struct {
	initMax *uint64
	maxEdge *uint64
}

// Option configures Engine construction.
type Option func(*config)

// WithInitMax overrides the scanned init_max (root.upper + 1).
func WithInitMax(m uint64) Option {
	return func(c *config) { c.initMax = &m }
}

// WithMaxEdge overrides the scanned max_edge (the largest seed upper).
func WithMaxEdge(m uint64) Option {
	return func(c *config) { c.maxEdge = &m }
}

// New builds an Engine from a value map and a set of seed NI edges.
// init_max is derived by scanning for the edge with Lower == 1 (the
// root) and setting init_max = root.Upper + 1; max_edge is the largest
// Upper among seed edges. Both may be overridden with WithInitMax /
// WithMaxEdge.
//
// Complexity: O(E log E).
func New[K cmp.Ordered, V any](values *bptree.Tree[K, V], seed []nitree.NIEdge[K], opts ...Option) *Engine[K, V] {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	edges := bptree.New[K, nitree.NIEdge[K]]()
	var scannedInitMax, scannedMaxEdge uint64
	for _, e := range seed {
		edges.Insert(e.Key, e)
		if e.Lower == 1 {
			scannedInitMax = e.Upper + 1
		}
		if e.Upper > scannedMaxEdge {
			scannedMaxEdge = e.Upper
		}
	}

	initMax := scannedInitMax
	if cfg.initMax != nil {
		initMax = *cfg.initMax
	}
	maxEdge := scannedMaxEdge
	if cfg.maxEdge != nil {
		maxEdge = *cfg.maxEdge
	}

	return &Engine[K, V]{
		values:  values,
		edges:   edges,
		initMax: initMax,
		maxEdge: maxEdge,
		wip:     delta.New(),
	}
}
