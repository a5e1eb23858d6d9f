package graph

import (
	"bufio"
	"io"
	"log"
	"strconv"

	"github.com/katalvlaran/forcegraph/coord"
)

// isSeparator reports whether r is a column separator accepted by
// ParseEdgeList.
func isSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == ',' || r == ';'
}

// splitColumns cuts a line into columns on the accepted separators,
// collapsing runs of separators. Every column is returned; columns beyond
// the weight are ignored by the caller.
func splitColumns(line string) []string {
	cols := make([]string, 0, 4)
	start := -1
	for i, r := range line {
		if isSeparator(r) {
			if start >= 0 {
				cols = append(cols, line[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		cols = append(cols, line[start:])
	}

	return cols
}

// ParseEdgeList reads the newline-delimited edge format:
//
//	<u> <sep> <v> [<sep> <weight>]
//
// where <sep> is any run of spaces, tabs, commas or semicolons. Node IDs
// are dense non-negative integers; the returned node count is max ID + 1
// over the accepted edges. Self-loops are silently skipped and do not
// contribute to the node count. Malformed lines and unparsable weights are
// reported to warn and skipped (the weight falls back to 1). Edges are
// normalized to U < V.
//
// The only returned error is a read failure from r.
// Complexity: O(bytes read).
func ParseEdgeList[T coord.Float](r io.Reader, warn *log.Logger) ([]Edge, []T, int, error) {
	var (
		edges   []Edge
		weights []T
		nodes   int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for lineNo := 0; scanner.Scan(); lineNo++ {
		cols := splitColumns(scanner.Text())
		if len(cols) == 0 {
			continue // blank line
		}
		if len(cols) < 2 {
			warnf(warn, "ignored line %d: fewer than 2 columns", lineNo)
			continue
		}

		u, errU := strconv.Atoi(cols[0])
		v, errV := strconv.Atoi(cols[1])
		if errU != nil || errV != nil || u < 0 || v < 0 {
			warnf(warn, "ignored line %d: bad number format", lineNo)
			continue
		}
		if u == v {
			continue // self-loop: skipped, does not raise the node count
		}

		w := T(1)
		if len(cols) >= 3 {
			parsed, err := strconv.ParseFloat(cols[2], 64)
			if err != nil {
				warnf(warn, "ignored weight on line %d: bad number format", lineNo)
			} else {
				w = T(parsed)
			}
		}

		if u > v {
			u, v = v, u
		}
		edges = append(edges, Edge{U: u, V: v})
		weights = append(weights, w)
		if v+1 > nodes {
			nodes = v + 1
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, 0, err
	}

	return edges, weights, nodes, nil
}

// warnf forwards a parse warning to the supplied logger, if any.
func warnf(warn *log.Logger, format string, args ...interface{}) {
	if warn != nil {
		warn.Printf(format, args...)
	}
}
