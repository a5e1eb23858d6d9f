// Package layout - Layout construction and the iteration driver.
package layout

import (
	"math/rand"

	"github.com/katalvlaran/forcegraph/coord"
	"github.com/katalvlaran/forcegraph/graph"
)

// defaultSeed is the fixed seed behind the default initial placement.
// The value is arbitrary but stable so that runs without an explicit RNG
// are reproducible.
const defaultSeed int64 = 1

// kernel is one force pass over the whole layout.
type kernel[T coord.Float] func(*Layout[T])

// Layout owns the buffers of one embedding and advances them in place.
// A Layout is not safe for concurrent use: Iteration requires exclusive
// access, observers may read between iterations under an external lock.
type Layout[T coord.Float] struct {
	edges   []graph.Edge
	weights []T
	masses  []T

	points    PointList[T]
	speeds    PointList[T]
	oldSpeeds PointList[T]

	settings Settings[T]

	attraction kernel[T]
	repulsion  kernel[T]
	gravity    kernel[T]

	// di is the hoisted d-dimensional scratch of the sequential kernels;
	// parallel tiles allocate their own per-goroutine scratch.
	di []T

	// waves is the precomputed tile schedule when ChunkSize > 0.
	waves [][]tile
}

// Option configures construction-time behavior of FromGraph.
type Option[T coord.Float] func(*config[T])

type config[T coord.Float] struct {
	rng        *rand.Rand
	positioner func(i int, pos []T)
	vectorized bool
}

// WithRand supplies the random source of the default uniform placement.
func WithRand[T coord.Float](r *rand.Rand) Option[T] {
	return func(c *config[T]) { c.rng = r }
}

// WithPositioner replaces random placement entirely: fn is called once per
// node with a zeroed d-scalar slice to fill in.
func WithPositioner[T coord.Float](fn func(i int, pos []T)) Option[T] {
	return func(c *config[T]) { c.positioner = fn }
}

// WithVectorizedKernels selects the lane-grouped repulsion tier, which
// processes runs of consecutive inner nodes the way the wide-register
// kernels do. Results match the scalar tier bit for bit.
func WithVectorizedKernels[T coord.Float]() Option[T] {
	return func(c *config[T]) { c.vectorized = true }
}

// FromGraph assembles a Layout from an edge list, a mass policy, optional
// per-edge weights (nil ⇒ all 1) and validated settings. Initial positions
// are uniform random in [-1, 1]^d unless a positioner is supplied.
//
// Complexity: O(n·d + |edges|).
func FromGraph[T coord.Float](edges []graph.Edge, nodes Nodes[T], weights []T, settings Settings[T], opts ...Option[T]) (*Layout[T], error) {
	// 1) Validate settings and the edge list against the node count.
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	n := nodes.count
	if err := graph.ValidateEdges(edges, n, len(weights)); err != nil {
		return nil, err
	}

	// 2) Resolve masses: count degrees, or copy the supplied vector so the
	// caller cannot mutate it afterwards.
	masses := make([]T, n)
	if nodes.masses == nil {
		for i, deg := range graph.Degrees(edges, n) {
			masses[i] = T(deg)
		}
	} else {
		copy(masses, nodes.masses)
	}

	// 3) Allocate the three buffers once, for the whole lifetime.
	d := settings.Dimensions
	l := &Layout[T]{
		edges:     edges,
		weights:   weights,
		masses:    masses,
		points:    NewPointList[T](d, n),
		speeds:    NewPointList[T](d, n),
		oldSpeeds: NewPointList[T](d, n),
		settings:  settings,
		di:        coord.Valloc[T](d),
	}

	// 4) Apply construction options.
	cfg := config[T]{}
	for _, opt := range opts {
		opt(&cfg)
	}

	// 5) Initial placement.
	if cfg.positioner != nil {
		for i := 0; i < n; i++ {
			cfg.positioner(i, l.points.Get(i))
		}
	} else {
		rng := cfg.rng
		if rng == nil {
			rng = rand.New(rand.NewSource(defaultSeed))
		}
		for i := range l.points.coords {
			l.points.coords[i] = T(rng.Float64()*2 - 1)
		}
	}

	// 6) Fix the kernel dispatch for the lifetime of the Layout.
	if err := l.dispatch(cfg.vectorized); err != nil {
		return nil, err
	}

	// 7) Precompute the parallel tile schedule.
	if settings.ChunkSize > 0 {
		chunks := (n + settings.ChunkSize - 1) / settings.ChunkSize
		l.waves = waveSchedule(chunks)
	}

	return l, nil
}

// Iteration runs one simulation step: attraction, repulsion, gravity, then
// integration. After it returns, speeds are zeroed and oldSpeeds hold this
// step's accumulated forces.
func (l *Layout[T]) Iteration() {
	l.attraction(l)
	l.repulsion(l)
	l.gravity(l)
	applyForces(l)
}

// Points returns the position buffer. The view stays valid for the
// lifetime of the Layout; read it only between iterations.
func (l *Layout[T]) Points() *PointList[T] { return &l.points }

// Masses returns the per-node mass vector (degrees, before the +1 shift).
func (l *Layout[T]) Masses() []T { return l.masses }

// Edges returns the edge list the layout was built from.
func (l *Layout[T]) Edges() []graph.Edge { return l.edges }

// Weights returns the per-edge weights, or nil when all weights are 1.
func (l *Layout[T]) Weights() []T { return l.weights }

// Settings returns the immutable per-run configuration.
func (l *Layout[T]) Settings() Settings[T] { return l.settings }

// NodeCount returns n.
func (l *Layout[T]) NodeCount() int { return len(l.masses) }

// Node bundles one node's mass and its position and speed views for the
// pair iteration below.
type Node[T coord.Float] struct {
	Index int
	Mass  T
	Pos   []T
	Speed []T
}

// forEachPair visits every unordered node pair exactly once, upper
// triangle only (n2 < n1), handing the visitor simultaneous mutable speed
// views of both endpoints. The views are disjoint because the indices are.
// Complexity: O(n²·d).
func (l *Layout[T]) forEachPair(visit func(n1, n2 Node[T])) {
	n := len(l.masses)
	for i := 1; i < n; i++ {
		n1 := Node[T]{Index: i, Mass: l.masses[i], Pos: l.points.Get(i), Speed: l.speeds.Get(i)}
		for j := 0; j < i; j++ {
			visit(n1, Node[T]{Index: j, Mass: l.masses[j], Pos: l.points.Get(j), Speed: l.speeds.Get(j)})
		}
	}
}
