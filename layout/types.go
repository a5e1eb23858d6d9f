// Package layout - settings, node policies and sentinel errors.
//
// This file declares Settings, Overlap, the Nodes construction policy,
// DefaultSettings and Validate, following the options-struct convention
// used across the module.
package layout

import (
	"errors"

	"github.com/katalvlaran/forcegraph/coord"
)

// Sentinel errors for layout construction and settings validation.
var (
	// ErrBadDimensions indicates Dimensions outside {2, 3}.
	ErrBadDimensions = errors.New("layout: dimensions must be 2 or 3")

	// ErrBadCoefficient indicates a negative Ka, Kg or Kr.
	ErrBadCoefficient = errors.New("layout: force coefficients must be non-negative")

	// ErrBadSpeed indicates a non-positive global integration step.
	ErrBadSpeed = errors.New("layout: speed must be positive")

	// ErrBadChunkSize indicates a negative chunk size.
	ErrBadChunkSize = errors.New("layout: chunk size must be zero (sequential) or positive")

	// ErrBadTheta indicates a Barnes–Hut opening angle outside (0, 2].
	ErrBadTheta = errors.New("layout: barnes-hut theta must be in (0, 2]")

	// ErrBadOverlap indicates a non-positive NodeSize or KrPrime in Overlap.
	ErrBadOverlap = errors.New("layout: overlap node size and kr' must be positive")

	// ErrBarnesHutPrecision indicates BarnesHut requested on a float32 layout.
	ErrBarnesHutPrecision = errors.New("layout: barnes-hut requires a float64 layout")
)

// Overlap enables the prevent-overlapping variant: every node has radius
// NodeSize, and once two nodes touch, repulsion switches to the linear
// KrPrime regime while attraction between them shuts off.
type Overlap[T coord.Float] struct {
	// NodeSize is the node radius; must be positive.
	NodeSize T

	// KrPrime is the repulsion coefficient applied to touching nodes; must be positive.
	KrPrime T
}

// Settings is the immutable per-run configuration of a Layout.
//
// Fields:
//
//	Dimensions         - embedding dimensionality, 2 or 3.
//	ChunkSize          - 0 runs every kernel sequentially; a positive value
//	                     tiles the O(n²) pair loop into chunks of that many
//	                     outer nodes and runs tiles on goroutines.
//	Ka, Kg, Kr         - attraction, gravity and repulsion coefficients (≥ 0).
//	Speed              - global integration step (> 0).
//	LinLog             - attraction falls off as ln(1+d)/d instead of linearly.
//	StrongGravity      - gravity magnitude independent of distance to origin.
//	DissuadeHubs       - attraction divided by the source node's mass + 1.
//	PreventOverlapping - nil, or the finite node radius regime (Overlap).
//	BarnesHut          - 0 disables; otherwise the opening angle θ ∈ (0, 2]
//	                     of the approximate repulsion tree (float64 only).
type Settings[T coord.Float] struct {
	Dimensions         int
	ChunkSize          int
	Ka                 T
	Kg                 T
	Kr                 T
	Speed              T
	LinLog             bool
	StrongGravity      bool
	DissuadeHubs       bool
	PreventOverlapping *Overlap[T]
	BarnesHut          T
}

// DefaultSettings returns the library's default profile: sequential 2D
// layout with unit coefficients and a small step. The viz tool starts from
// it and adds chunked parallel repulsion.
func DefaultSettings[T coord.Float]() Settings[T] {
	return Settings[T]{
		Dimensions: 2,
		ChunkSize:  0,
		Ka:         1,
		Kg:         1,
		Kr:         1,
		Speed:      0.01,
	}
}

// Validate checks that the settings hold a valid combination and returns
// the first violated sentinel.
func (s *Settings[T]) Validate() error {
	if s.Dimensions != 2 && s.Dimensions != 3 {
		return ErrBadDimensions
	}
	if s.ChunkSize < 0 {
		return ErrBadChunkSize
	}
	if s.Ka < 0 || s.Kg < 0 || s.Kr < 0 {
		return ErrBadCoefficient
	}
	if !coord.Positive(s.Speed) {
		return ErrBadSpeed
	}
	if !coord.IsZero(s.BarnesHut) && (s.BarnesHut <= 0 || s.BarnesHut > 2) {
		return ErrBadTheta
	}
	if po := s.PreventOverlapping; po != nil {
		if !coord.Positive(po.NodeSize) || !coord.Positive(po.KrPrime) {
			return ErrBadOverlap
		}
	}

	return nil
}

// Nodes is the mass policy handed to FromGraph: either count degrees over
// the edge list (Degree) or adopt a precomputed mass vector (Masses).
type Nodes[T coord.Float] struct {
	count  int
	masses []T
}

// Degree declares n nodes whose masses are their edge degrees, counted at
// construction.
func Degree[T coord.Float](n int) Nodes[T] {
	return Nodes[T]{count: n}
}

// Masses adopts a caller-supplied mass vector; the node count is its length.
func Masses[T coord.Float](masses []T) Nodes[T] {
	return Nodes[T]{count: len(masses), masses: masses}
}
