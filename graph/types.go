package graph

import "errors"

// Sentinel errors for edge-list validation.
var (
	// ErrSelfLoop indicates an edge with identical endpoints.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrEdgeOrder indicates an edge whose endpoints are not in U < V order.
	ErrEdgeOrder = errors.New("graph: edge endpoints must satisfy U < V")

	// ErrNodeRange indicates an edge endpoint outside [0, n).
	ErrNodeRange = errors.New("graph: edge endpoint out of node range")

	// ErrWeightCount indicates a weight slice whose length differs from the edge slice.
	ErrWeightCount = errors.New("graph: weights length must match edges length")
)

// Edge is one undirected edge between two dense node indices.
// Invariant: U < V; self-loops are rejected at construction.
type Edge struct {
	U, V int
}

// NewEdge returns the normalized (smaller endpoint first) edge for u and v,
// or ErrSelfLoop when u == v.
// Complexity: O(1).
func NewEdge(u, v int) (Edge, error) {
	if u == v {
		return Edge{}, ErrSelfLoop
	}
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}, nil
}

// ValidateEdges checks the u < v < n invariant over the whole edge list and
// that weights, when present, parallel the edges.
// Complexity: O(|edges|).
func ValidateEdges(edges []Edge, n int, weightCount int) error {
	for _, e := range edges {
		if e.U == e.V {
			return ErrSelfLoop
		}
		if e.U > e.V {
			return ErrEdgeOrder
		}
		if e.U < 0 || e.V >= n {
			return ErrNodeRange
		}
	}
	if weightCount != 0 && weightCount != len(edges) {
		return ErrWeightCount
	}

	return nil
}

// Degrees counts, for each node in [0, n), the edges incident to it.
// Each undirected edge increments both endpoints once. The result is the
// mass vector of the layout (before the +1 shift applied inside kernels).
// Complexity: O(|edges| + n).
func Degrees(edges []Edge, n int) []int {
	deg := make([]int, n)
	for _, e := range edges {
		deg[e.U]++
		deg[e.V]++
	}

	return deg
}
