package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/deltani/adjlist"
	"github.com/katalvlaran/deltani/bptree"
	"github.com/katalvlaran/deltani/nitree"
)

// ReadValues parses one value record per line — `<u32 id>|<name>` — into
// an indexed sequence keyed by id. A line whose id field fails to parse
// as a uint32 is skipped silently. The name is truncated to
// maxNameBytes, mirroring locations.h's fixed-size name buffer.
func ReadValues(r io.Reader) (*bptree.Tree[uint32, string], error) {
	values := bptree.New[uint32, string]()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		fields := strings.SplitN(line, "|", 2)
		id, ok := parseUint32(fields[0])
		if !ok {
			continue
		}

		var name string
		if len(fields) == 2 {
			name = fields[1]
			if len(name) > maxNameBytes {
				name = name[:maxNameBytes]
			}
		}

		values.Insert(id, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScan, err)
	}

	return values, nil
}

// ReadSeedEdges parses one NI seed-edge record per line —
// `<u32 key>|<u64 lower>|<u64 upper>` — into an indexed sequence keyed by
// key. A line whose key field fails to parse is skipped silently; a line
// whose key parses but whose lower/upper fields do not is skipped as
// well, since a seed edge missing either endpoint cannot be constructed.
func ReadSeedEdges(r io.Reader) (*bptree.Tree[uint32, nitree.NIEdge[uint32]], error) {
	edges := bptree.New[uint32, nitree.NIEdge[uint32]]()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		fields := strings.Split(line, "|")
		key, ok := parseUint32(fields[0])
		if !ok {
			continue
		}
		if len(fields) != 3 {
			continue
		}
		lower, ok := parseUint64(fields[1])
		if !ok {
			continue
		}
		upper, ok := parseUint64(fields[2])
		if !ok {
			continue
		}

		edges.Insert(key, nitree.NIEdge[uint32]{Key: key, Lower: lower, Upper: upper})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScan, err)
	}

	return edges, nil
}

// ReadAdjacency parses one baseline adjacency record per line —
// `<u32 parent>|<u32 child>` — into a slice suitable for
// adjlist.NewFromSeed. A line whose parent field fails to parse is
// skipped silently.
func ReadAdjacency(r io.Reader) ([]adjlist.AdjacentEdge[uint32], error) {
	var out []adjlist.AdjacentEdge[uint32]

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		fields := strings.Split(line, "|")
		parent, ok := parseUint32(fields[0])
		if !ok {
			continue
		}
		if len(fields) != 2 {
			continue
		}
		child, ok := parseUint32(fields[1])
		if !ok {
			continue
		}

		out = append(out, adjlist.AdjacentEdge[uint32]{Parent: parent, Child: child})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScan, err)
	}

	return out, nil
}

func parseUint32(field string) (uint32, bool) {
	v, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return 0, false
	}

	return uint32(v), true
}

func parseUint64(field string) (uint64, bool) {
	v, err := strconv.ParseUint(field, 10, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}
