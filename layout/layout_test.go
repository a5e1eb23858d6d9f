package layout_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/forcegraph/graph"
	"github.com/katalvlaran/forcegraph/graphgen"
	"github.com/katalvlaran/forcegraph/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoNodes builds the S1 fixture: one edge, node 0 at the origin and
// node 1 at (1, 0, ...), attraction and repulsion on, gravity off.
func twoNodes(t *testing.T, dims int) *layout.Layout[float64] {
	t.Helper()
	s := layout.DefaultSettings[float64]()
	s.Dimensions = dims
	s.Kg = 0
	s.Speed = 0.1
	l, err := layout.FromGraph(
		[]graph.Edge{{U: 0, V: 1}},
		layout.Degree[float64](2),
		nil,
		s,
		layout.WithPositioner[float64](func(i int, pos []float64) {
			pos[0] = float64(i)
		}),
	)
	require.NoError(t, err)

	return l
}

// TestFromGraph_BuffersAndMasses verifies allocation sizes and the degree
// mass policy.
func TestFromGraph_BuffersAndMasses(t *testing.T) {
	edges, err := graphgen.Star(5)
	require.NoError(t, err)
	l, err := layout.FromGraph(edges, layout.Degree[float64](5), nil, layout.DefaultSettings[float64]())
	require.NoError(t, err)

	assert.Equal(t, 5, l.NodeCount())
	assert.Equal(t, 5, l.Points().Len())
	assert.Len(t, l.Points().Coords(), 10, "n·d scalars")
	assert.Equal(t, []float64{4, 1, 1, 1, 1}, l.Masses(), "mass = degree")
	assert.Nil(t, l.Weights())
}

// TestFromGraph_MassPolicyCopies verifies a supplied mass vector is
// adopted by value, not by reference.
func TestFromGraph_MassPolicyCopies(t *testing.T) {
	masses := []float64{3, 5}
	l, err := layout.FromGraph([]graph.Edge{{U: 0, V: 1}}, layout.Masses(masses), nil, layout.DefaultSettings[float64]())
	require.NoError(t, err)

	masses[0] = 99
	assert.Equal(t, []float64{3, 5}, l.Masses(), "caller mutation must not leak in")
}

// TestFromGraph_DefaultPlacement verifies the deterministic uniform cube.
func TestFromGraph_DefaultPlacement(t *testing.T) {
	edges, err := graphgen.Cycle(8)
	require.NoError(t, err)

	a, err := layout.FromGraph(edges, layout.Degree[float64](8), nil, layout.DefaultSettings[float64]())
	require.NoError(t, err)
	b, err := layout.FromGraph(edges, layout.Degree[float64](8), nil, layout.DefaultSettings[float64]())
	require.NoError(t, err)

	assert.Equal(t, a.Points().Coords(), b.Points().Coords(), "no explicit RNG ⇒ reproducible placement")
	for _, x := range a.Points().Coords() {
		assert.GreaterOrEqual(t, x, -1.0)
		assert.LessOrEqual(t, x, 1.0)
	}

	c, err := layout.FromGraph(edges, layout.Degree[float64](8), nil, layout.DefaultSettings[float64](),
		layout.WithRand[float64](rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	assert.NotEqual(t, a.Points().Coords(), c.Points().Coords(), "an explicit source reseeds placement")
}

// TestFromGraph_Rejections verifies the construction error paths.
func TestFromGraph_Rejections(t *testing.T) {
	s := layout.DefaultSettings[float64]()

	_, err := layout.FromGraph([]graph.Edge{{U: 1, V: 1}}, layout.Degree[float64](2), nil, s)
	assert.ErrorIs(t, err, graph.ErrSelfLoop)

	_, err = layout.FromGraph([]graph.Edge{{U: 2, V: 1}}, layout.Degree[float64](3), nil, s)
	assert.ErrorIs(t, err, graph.ErrEdgeOrder)

	_, err = layout.FromGraph([]graph.Edge{{U: 0, V: 5}}, layout.Degree[float64](3), nil, s)
	assert.ErrorIs(t, err, graph.ErrNodeRange)

	_, err = layout.FromGraph([]graph.Edge{{U: 0, V: 1}}, layout.Degree[float64](2), []float64{1, 2}, s)
	assert.ErrorIs(t, err, graph.ErrWeightCount)

	bad := s
	bad.Dimensions = 7
	_, err = layout.FromGraph(nil, layout.Degree[float64](0), nil, bad)
	assert.ErrorIs(t, err, layout.ErrBadDimensions)

	bh := layout.DefaultSettings[float32]()
	bh.BarnesHut = 1.2
	_, err = layout.FromGraph(nil, layout.Degree[float32](4), nil, bh)
	assert.ErrorIs(t, err, layout.ErrBarnesHutPrecision, "barnes-hut is float64 only")
}

// TestIteration_TwoNodeSymmetry is scenario S1: after one step the pair
// stays symmetric about the midpoint (0.5, 0) and, repulsion dominating at
// unit distance, moves apart along x.
func TestIteration_TwoNodeSymmetry(t *testing.T) {
	l := twoNodes(t, 2)
	l.Iteration()

	p0 := l.Points().Get(0)
	p1 := l.Points().Get(1)
	assert.InDelta(t, 1.0, p0[0]+p1[0], 1e-12, "symmetric about x = 0.5")
	assert.Zero(t, p0[1])
	assert.Zero(t, p1[1])

	// Net force per node is |f_r − f_a| = 3 at unit distance; the damped
	// step follows the integration formula exactly.
	want := 0.1 / (1 + math.Sqrt(0.1*3)) * 3
	assert.InDelta(t, -want, p0[0], 1e-12)
	assert.InDelta(t, 1+want, p1[0], 1e-12)
}

// TestIteration_TwoNode3D is scenario S6: the z components stay exactly
// zero by symmetry.
func TestIteration_TwoNode3D(t *testing.T) {
	l := twoNodes(t, 3)
	for i := 0; i < 50; i++ {
		l.Iteration()
	}

	p0 := l.Points().Get(0)
	p1 := l.Points().Get(1)
	assert.Zero(t, p0[2], "z stays zero")
	assert.Zero(t, p1[2], "z stays zero")
	assert.Zero(t, p0[1])
	assert.Zero(t, p1[1])
	assert.InDelta(t, 1.0, p0[0]+p1[0], 1e-9, "midpoint preserved")
}

// TestIteration_TriangleEquilateral is scenario S2: a 3-cycle settles into
// an equilateral triangle.
func TestIteration_TriangleEquilateral(t *testing.T) {
	edges, err := graphgen.Cycle(3)
	require.NoError(t, err)

	s := layout.DefaultSettings[float64]()
	s.Kg = 0
	s.Speed = 0.05
	l, err := layout.FromGraph(edges, layout.Degree[float64](3), nil, s,
		layout.WithPositioner[float64](func(i int, pos []float64) {
			// Scalene start, nothing symmetric about it.
			starts := [][2]float64{{0, 0}, {1.3, 0.1}, {0.2, 0.9}}
			pos[0], pos[1] = starts[i][0], starts[i][1]
		}))
	require.NoError(t, err)

	for i := 0; i < 2000; i++ {
		l.Iteration()
	}

	d01 := dist2D(l, 0, 1)
	d12 := dist2D(l, 1, 2)
	d02 := dist2D(l, 0, 2)
	assert.InDelta(t, d01, d12, 0.01, "equilateral emerges")
	assert.InDelta(t, d12, d02, 0.01, "equilateral emerges")
	assert.Greater(t, d01, 1.0, "pair distance sits at the ka/kr equilibrium")
}

// TestIteration_GravityPullsSingleton is scenario S3: with gravity on, an
// isolated node drifts to the origin while the connected pair keeps a
// stable separation.
func TestIteration_GravityPullsSingleton(t *testing.T) {
	s := layout.DefaultSettings[float64]()
	s.Speed = 0.1
	l, err := layout.FromGraph([]graph.Edge{{U: 0, V: 1}}, layout.Degree[float64](3), nil, s,
		layout.WithPositioner[float64](func(i int, pos []float64) {
			starts := [][2]float64{{-1, 0.2}, {1, -0.2}, {1.5, 1.5}}
			pos[0], pos[1] = starts[i][0], starts[i][1]
		}))
	require.NoError(t, err)

	for i := 0; i < 300; i++ {
		l.Iteration()
	}
	mid := math.Hypot(l.Points().Get(2)[0], l.Points().Get(2)[1])
	assert.Less(t, mid, 0.5, "singleton pulled to the origin")

	before := dist2D(l, 0, 1)
	for i := 0; i < 100; i++ {
		l.Iteration()
	}
	assert.InDelta(t, before, dist2D(l, 0, 1), 0.05, "pair separation stabilized")
}

// TestIteration_CoincidentStartStaysFinite is the zero-distance edge case:
// every node starting at the same point must not produce NaN.
func TestIteration_CoincidentStartStaysFinite(t *testing.T) {
	edges, err := graphgen.Complete(4)
	require.NoError(t, err)

	s := layout.DefaultSettings[float64]()
	l, err := layout.FromGraph(edges, layout.Degree[float64](4), nil, s,
		layout.WithPositioner[float64](func(_ int, pos []float64) {
			pos[0], pos[1] = 0.5, 0.5
		}))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		l.Iteration()
	}
	for _, x := range l.Points().Coords() {
		assert.False(t, math.IsNaN(x) || math.IsInf(x, 0), "coincident pairs are skipped, not divided by zero")
	}
}

// TestIteration_MassesAndLengthsInvariant is properties 1 and 2: buffer
// lengths and masses never change across iterations.
func TestIteration_MassesAndLengthsInvariant(t *testing.T) {
	edges, err := graphgen.RandomSparse(20, 0.2, 7)
	require.NoError(t, err)

	l, err := layout.FromGraph(edges, layout.Degree[float64](20), nil, layout.DefaultSettings[float64]())
	require.NoError(t, err)

	masses := append([]float64(nil), l.Masses()...)
	for i := 0; i < 10; i++ {
		l.Iteration()
	}
	assert.Equal(t, masses, l.Masses())
	assert.Equal(t, 20, l.Points().Len())
	assert.Len(t, l.Points().Coords(), 40)
}

// TestIteration_ParallelMatchesSequential is equivalence property 6:
// identical initial conditions, sequential vs chunked parallel.
func TestIteration_ParallelMatchesSequential(t *testing.T) {
	edges, err := graphgen.RandomSparse(60, 0.1, 42)
	require.NoError(t, err)

	seq := layout.DefaultSettings[float64]()
	par := seq
	par.ChunkSize = 16

	a, err := layout.FromGraph(edges, layout.Degree[float64](60), nil, seq,
		layout.WithRand[float64](rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	b, err := layout.FromGraph(edges, layout.Degree[float64](60), nil, par,
		layout.WithRand[float64](rand.New(rand.NewSource(1))))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		a.Iteration()
		b.Iteration()
	}
	pa, pb := a.Points().Coords(), b.Points().Coords()
	for k := range pa {
		assert.InDelta(t, pa[k], pb[k], 1e-6, "component %d", k)
	}
}

// TestIteration_VectorizedMatchesScalar is equivalence property 7: the
// lane-grouped tier preserves accumulation order, so positions match bit
// for bit — float64 in 2D and 3D, and float32 in 2D.
func TestIteration_VectorizedMatchesScalar(t *testing.T) {
	edges, err := graphgen.RandomSparse(33, 0.15, 5) // odd count exercises the tails
	require.NoError(t, err)

	for _, dims := range []int{2, 3} {
		s := layout.DefaultSettings[float64]()
		s.Dimensions = dims

		a, err := layout.FromGraph(edges, layout.Degree[float64](33), nil, s,
			layout.WithRand[float64](rand.New(rand.NewSource(3))))
		require.NoError(t, err)
		b, err := layout.FromGraph(edges, layout.Degree[float64](33), nil, s,
			layout.WithRand[float64](rand.New(rand.NewSource(3))),
			layout.WithVectorizedKernels[float64]())
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			a.Iteration()
			b.Iteration()
		}
		assert.Equal(t, a.Points().Coords(), b.Points().Coords(), "dims=%d must be bit-identical", dims)
	}

	sf := layout.DefaultSettings[float32]()
	a32, err := layout.FromGraph(edges, layout.Degree[float32](33), nil, sf,
		layout.WithRand[float32](rand.New(rand.NewSource(3))))
	require.NoError(t, err)
	b32, err := layout.FromGraph(edges, layout.Degree[float32](33), nil, sf,
		layout.WithRand[float32](rand.New(rand.NewSource(3))),
		layout.WithVectorizedKernels[float32]())
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		a32.Iteration()
		b32.Iteration()
	}
	assert.Equal(t, a32.Points().Coords(), b32.Points().Coords(), "float32 lanes must be bit-identical")
}

// dist2D returns the Euclidean distance between nodes i and j of a 2D layout.
func dist2D(l *layout.Layout[float64], i, j int) float64 {
	pi, pj := l.Points().Get(i), l.Points().Get(j)

	return math.Hypot(pj[0]-pi[0], pj[1]-pi[1])
}
