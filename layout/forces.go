// Package layout - integration step ("apply forces").
package layout

import "github.com/katalvlaran/forcegraph/coord"

// applyForces advances positions by this iteration's accumulated forces
// with per-node adaptive damping, then rotates the velocity buffers.
//
// For node i with v = speed_i and v₀ = oldSpeed_i:
//
//	swinging_i = √Σ (v_k − v₀_k)²       — oscillation estimate
//	factor_i   = Speed / (1 + √(Speed · swinging_i))
//	pos_i     += factor_i · v
//	oldSpeed_i = v, speed_i = 0
//
// A node whose force keeps flipping direction gets a small factor and
// settles; a node pushed consistently keeps close to the global step.
// Complexity: O(n·d), zero allocations.
func applyForces[T coord.Float](l *Layout[T]) {
	speed := l.settings.Speed
	d := l.settings.Dimensions
	pts := l.points.coords
	sp := l.speeds.coords
	old := l.oldSpeeds.coords
	for base := 0; base < len(pts); base += d {
		var swg T
		for k := base; k < base+d; k++ {
			dv := sp[k] - old[k]
			swg += dv * dv
		}
		factor := speed / (1 + coord.Sqrt(speed*coord.Sqrt(swg)))
		for k := base; k < base+d; k++ {
			pts[k] += factor * sp[k]
			old[k] = sp[k]
			sp[k] = 0
		}
	}
}
