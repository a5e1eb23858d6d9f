// Package coord unifies float32 and float64 behind one generic capability
// set so every force kernel can be written once and instantiated at either
// precision.
//
// 🚀 What is forcegraph/coord?
//
//	The numeric floor of the layout engine:
//
//	  • Float constraint: the two supported scalar types
//	  • Scalar helpers: Sqrt, Log1p, Abs, sign tests
//	  • Vector helpers: SquaredNorm, DeltaSquaredNorm, Valloc
//
// ✨ Why a separate package?
//
//   - One instantiation point — kernels never mention float32/float64
//   - Hot-path shape      — DeltaSquaredNorm fills the caller's scratch
//     slice, so inner loops allocate nothing
//   - Honest precision    — float32 math stays in float32 range semantics;
//     only the transcendental calls round-trip through float64, matching
//     what the hardware instructions do anyway
//
// Performance: every helper is O(d) or O(1); all but Valloc, which
// allocates the scratch slice, run with zero allocations.
package coord
