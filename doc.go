// Package forcegraph computes force-directed graph layouts with the
// ForceAtlas2 algorithm: connected nodes attract, all nodes repel, and a
// per-node adaptive damping step turns the tug-of-war into a readable
// embedding in 2 or 3 dimensions.
//
// 🚀 What is forcegraph?
//
//	An iteration engine, not a renderer: you hand it an edge list, call
//	Iteration() until you like the picture, and read the positions out.
//
//	  • layout/   — flat-buffer storage, all force kernels (exact O(n²),
//	    Barnes–Hut O(n log n), lane-grouped and chunked-parallel tiers),
//	    adaptive integration
//	  • graph/    — dense-index edge model and the edge-list text format
//	  • graphgen/ — deterministic topology fixtures for tests & benchmarks
//	  • coord/    — one generic scalar layer over float32 and float64
//	  • cmd/viz   — the CLI collaborator: file in, positions out
//
// ✨ Why choose forcegraph?
//
//   - Repeatable           — every stochastic path is seeded; same input,
//     same layout
//   - Precision-generic    — the whole kernel instantiates at float32 or
//     float64
//   - Race-free parallel   — the pair loop tiles into waves with disjoint
//     write sets; no locks on the hot path
//   - Variant-complete     — lin-log, hub dissuasion, strong gravity,
//     overlap prevention, weighted edges, Barnes–Hut approximation
//
// Quick ASCII intuition:
//
//	before            after
//	 a─b─c─d           a───b
//	 (a line)          │   │   (edges relax, non-edges repel)
//	                   d───c
//
// Dive into layout/doc.go for the simulation model and DESIGN.md for the
// grounding of each component.
//
//	go get github.com/katalvlaran/forcegraph
package forcegraph
