// Package layout is the ForceAtlas2 physics kernel: it owns the flat
// position/mass/velocity buffers of a graph embedding and advances them one
// simulation step at a time.
//
// 🚀 What is forcegraph/layout?
//
//	A per-iteration force simulation over n nodes in 2 or 3 dimensions:
//
//	  • Attraction  — connected nodes pull on each other along every edge,
//	    with linear or lin-log falloff, optional hub dissuasion and weights
//	  • Repulsion   — every unordered node pair pushes apart, exact O(n²)
//	    or Barnes–Hut O(n log n) via gonum's spatial tree
//	  • Gravity     — every node is pulled toward the origin, normal or strong
//	  • Integration — per-node adaptive damping from the "swinging" estimate,
//	    then positions advance and the velocity accumulator resets
//
// ✨ Why this shape?
//
//   - Flat buffers         — node i's d coordinates live at [i·d, (i+1)·d);
//     kernels stream through memory with zero per-pair allocation
//   - Generic precision    — every kernel instantiates at float32 or float64
//     through the coord.Float constraint
//   - Fixed dispatch       — variant selection happens once in FromGraph;
//     Iteration() runs straight through three kernel function pointers,
//     then the integration step
//   - Chunked parallelism  — the O(n²) pair loop tiles over node chunks and
//     runs tiles in waves whose write sets never overlap, so no locks and
//     no races
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/forcegraph/layout"
//
//	s := layout.DefaultSettings[float64]()
//	l, err := layout.FromGraph(edges, layout.Degree[float64](n), nil, s)
//	if err != nil { ... }
//	for i := 0; i < 100; i++ {
//	    l.Iteration()
//	}
//	pos := l.Points().Get(0) // node 0's coordinates
//
// Performance: one iteration is O(|E|) attraction + O(n²) exact repulsion
// (or O(n log n) with BarnesHut set) + O(n) gravity and integration. The
// exact kernels allocate nothing per iteration beyond per-tile scratch
// vectors; the Barnes–Hut tier allocates its particle slices and rebuilds
// its tree on every iteration.
package layout
