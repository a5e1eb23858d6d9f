// Package graphgen builds deterministic edge-list fixtures for layout
// tests and benchmarks: classic topologies over dense node indices.
//
// 🚀 What is forcegraph/graphgen?
//
//	Tiny constructors for the shapes a layout engine gets measured on:
//
//	  • Complete(n)      — K_n, every unordered pair once
//	  • Cycle(n)         — C_n, the n-vertex ring
//	  • Star(n)          — one hub (index 0) with n−1 spokes
//	  • RandomSparse     — each pair kept with probability p, seeded
//
// ✨ Determinism:
//
//   - Every edge has u < v; emission order is lexicographic by (u, v),
//     except that Cycle emits its closing edge 0—(n−1) last
//   - RandomSparse draws from a seeded source; same seed ⇒ same graph
//   - Only sentinel errors, never panics
package graphgen
