// Package layout - gravity kernels.
//
// Per node i with r = |pos_i| (r == 0 ⇒ skip):
//
//	normal: g = (mass+1)·Kg / r      strong: g = (mass+1)·Kg
//	speed_i −= g · pos_i / r
//
// With prevent-overlapping, r' = r − NodeSize replaces r in the magnitude
// (skip the node when r' ≤ 0); the direction stays pos_i / r.
package layout

import "github.com/katalvlaran/forcegraph/coord"

// chooseGravity maps StrongGravity × PreventOverlapping onto one kernel.
func chooseGravity[T coord.Float](s *Settings[T]) kernel[T] {
	po := s.PreventOverlapping != nil
	switch {
	case !s.StrongGravity && !po:
		return applyGravity[T]
	case s.StrongGravity && !po:
		return applyGravitySG[T]
	case !s.StrongGravity:
		return applyGravityPO[T]
	default:
		return applyGravitySGPO[T]
	}
}

func applyGravity[T coord.Float](l *Layout[T]) {
	kg := l.settings.Kg
	for i, m := range l.masses {
		pos := l.points.Get(i)
		r2 := coord.SquaredNorm(pos)
		if coord.IsZero(r2) {
			continue
		}
		// g/r = (m+1)·kg/r², folding the unit vector division in.
		f := (m + 1) * kg / r2
		speed := l.speeds.Get(i)
		for k, x := range pos {
			speed[k] -= f * x
		}
	}
}

func applyGravitySG[T coord.Float](l *Layout[T]) {
	kg := l.settings.Kg
	for i, m := range l.masses {
		pos := l.points.Get(i)
		r2 := coord.SquaredNorm(pos)
		if coord.IsZero(r2) {
			continue
		}
		f := (m + 1) * kg / coord.Sqrt(r2)
		speed := l.speeds.Get(i)
		for k, x := range pos {
			speed[k] -= f * x
		}
	}
}

func applyGravityPO[T coord.Float](l *Layout[T]) {
	kg := l.settings.Kg
	nodeSize := l.settings.PreventOverlapping.NodeSize
	for i, m := range l.masses {
		pos := l.points.Get(i)
		r2 := coord.SquaredNorm(pos)
		if coord.IsZero(r2) {
			continue
		}
		r := coord.Sqrt(r2)
		rprime := r - nodeSize
		if !coord.Positive(rprime) {
			continue
		}
		f := (m + 1) * kg / rprime / r
		speed := l.speeds.Get(i)
		for k, x := range pos {
			speed[k] -= f * x
		}
	}
}

func applyGravitySGPO[T coord.Float](l *Layout[T]) {
	kg := l.settings.Kg
	nodeSize := l.settings.PreventOverlapping.NodeSize
	for i, m := range l.masses {
		pos := l.points.Get(i)
		r2 := coord.SquaredNorm(pos)
		if coord.IsZero(r2) {
			continue
		}
		r := coord.Sqrt(r2)
		if !coord.Positive(r - nodeSize) {
			continue
		}
		f := (m + 1) * kg / r
		speed := l.speeds.Get(i)
		for k, x := range pos {
			speed[k] -= f * x
		}
	}
}
