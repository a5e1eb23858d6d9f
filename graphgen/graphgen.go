package graphgen

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/forcegraph/graph"
)

// Sentinel errors for generator parameter validation.
var (
	// ErrTooFewNodes indicates a node count below the topology's minimum.
	ErrTooFewNodes = errors.New("graphgen: too few nodes for this topology")

	// ErrInvalidProbability indicates p outside [0, 1].
	ErrInvalidProbability = errors.New("graphgen: probability must be in [0, 1]")
)

// Parameter minima per topology.
const (
	minCompleteNodes = 1
	minCycleNodes    = 3
	minStarNodes     = 2
)

// Complete returns the edge list of the complete simple graph K_n, pairs
// emitted in lexicographic (u, v) order.
// Complexity: O(n²).
func Complete(n int) ([]graph.Edge, error) {
	if n < minCompleteNodes {
		return nil, ErrTooFewNodes
	}

	edges := make([]graph.Edge, 0, n*(n-1)/2)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, graph.Edge{U: u, V: v})
		}
	}

	return edges, nil
}

// Cycle returns the edge list of the n-vertex ring C_n: i—(i+1) for
// i < n−1, closed by 0—(n−1).
// Complexity: O(n).
func Cycle(n int) ([]graph.Edge, error) {
	if n < minCycleNodes {
		return nil, ErrTooFewNodes
	}

	edges := make([]graph.Edge, 0, n)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, graph.Edge{U: i, V: i + 1})
	}
	edges = append(edges, graph.Edge{U: 0, V: n - 1})

	return edges, nil
}

// Star returns the edge list of a star over n nodes: hub index 0, spokes
// to every other node in index order.
// Complexity: O(n).
func Star(n int) ([]graph.Edge, error) {
	if n < minStarNodes {
		return nil, ErrTooFewNodes
	}

	edges := make([]graph.Edge, 0, n-1)
	for v := 1; v < n; v++ {
		edges = append(edges, graph.Edge{U: 0, V: v})
	}

	return edges, nil
}

// RandomSparse returns a seeded Erdős–Rényi edge list: every unordered
// pair is kept independently with probability p. The same (n, p, seed)
// always yields the same graph.
// Complexity: O(n²).
func RandomSparse(n int, p float64, seed int64) ([]graph.Edge, error) {
	if n < minCompleteNodes {
		return nil, ErrTooFewNodes
	}
	if p < 0 || p > 1 {
		return nil, ErrInvalidProbability
	}

	rng := rand.New(rand.NewSource(seed))
	var edges []graph.Edge
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				edges = append(edges, graph.Edge{U: u, V: v})
			}
		}
	}

	return edges, nil
}
