package graph_test

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/katalvlaran/forcegraph/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parse is a test helper running ParseEdgeList over a string with a
// captured warning log.
func parse(t *testing.T, input string) (edges []graph.Edge, weights []float64, n int, warnings string) {
	t.Helper()
	var buf bytes.Buffer
	warn := log.New(&buf, "", 0)
	edges, weights, n, err := graph.ParseEdgeList[float64](strings.NewReader(input), warn)
	require.NoError(t, err)

	return edges, weights, n, buf.String()
}

// TestParseEdgeList_Separators accepts space, tab, comma and semicolon.
func TestParseEdgeList_Separators(t *testing.T) {
	edges, weights, n, warnings := parse(t, "0 1\n1\t2\n2,3\n3;4 0.5\n")
	assert.Equal(t, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}}, edges)
	assert.Equal(t, []float64{1, 1, 1, 0.5}, weights)
	assert.Equal(t, 5, n, "n = max ID + 1")
	assert.Empty(t, warnings)
}

// TestParseEdgeList_SelfLoopSkipped verifies a `5 5` line is dropped
// silently and does not raise the node count.
func TestParseEdgeList_SelfLoopSkipped(t *testing.T) {
	edges, _, n, warnings := parse(t, "0 1\n5 5\n")
	assert.Equal(t, []graph.Edge{{U: 0, V: 1}}, edges)
	assert.Equal(t, 2, n, "index 5 must not be counted from the loop line")
	assert.Empty(t, warnings, "self-loops are skipped silently")
}

// TestParseEdgeList_WeightFallback verifies an unparsable weight keeps
// the edge with weight 1 and emits a warning.
func TestParseEdgeList_WeightFallback(t *testing.T) {
	edges, weights, _, warnings := parse(t, "0 1 abc\n")
	assert.Equal(t, []graph.Edge{{U: 0, V: 1}}, edges)
	assert.Equal(t, []float64{1}, weights)
	assert.Contains(t, warnings, "bad number format", "weight fallback must warn")
}

// TestParseEdgeList_MalformedLines verifies warn-and-skip semantics.
func TestParseEdgeList_MalformedLines(t *testing.T) {
	edges, _, n, warnings := parse(t, "x y\n7\n\n1 2\n")
	assert.Equal(t, []graph.Edge{{U: 1, V: 2}}, edges)
	assert.Equal(t, 3, n)
	assert.Contains(t, warnings, "line 0")
	assert.Contains(t, warnings, "line 1")
}

// TestParseEdgeList_NormalizesOrder verifies v < u inputs are swapped.
func TestParseEdgeList_NormalizesOrder(t *testing.T) {
	edges, _, _, _ := parse(t, "4 1\n")
	assert.Equal(t, []graph.Edge{{U: 1, V: 4}}, edges)
}

// TestParseEdgeList_NilLogger verifies warnings may be discarded.
func TestParseEdgeList_NilLogger(t *testing.T) {
	edges, _, _, err := graph.ParseEdgeList[float32](strings.NewReader("0 1 zz\n"), nil)
	require.NoError(t, err)
	assert.Len(t, edges, 1)
}
