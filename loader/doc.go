// Package loader reads the `|`-delimited record streams that form the
// engine's external interface: value records, NI seed-edge records,
// and — for the baseline adjacency variant — parent/child adjacency
// records.
//
// Loading never touches the engine packages directly; it builds plain
// bptree.Tree indexed sequences (values keyed by id, seed edges keyed by
// key) and a slice of adjlist.AdjacentEdge for adjacency records,
// keeping record parsing decoupled from the core hierarchy logic. The
// value tree and the adjacency slice are what adjlist.NewFromSeed takes.
// deltani.New takes the value tree but takes its seed edges as a slice,
// not as the tree ReadSeedEdges returns.
//
// Lines that fail to parse their leading id field are skipped silently,
// reproducing locations.cpp's permissive fscanf-based reader, which simply
// continues past a record it cannot parse rather than failing the whole
// load.
package loader
