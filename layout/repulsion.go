// Package layout - exact repulsion kernels, sequential tier.
//
// Per unordered pair (n1, n2):
//
//	di = n2.pos − n1.pos, d2 = Σ di².  d2 == 0 ⇒ skip.
//	f  = (mass[n1]+1)·(mass[n2]+1) / d2 · Kr
//	n1.speed −= f·di, n2.speed += f·di
//
// The prevent-overlapping variant replaces Kr by Kr/d' when the nodes are
// apart (d' = |d| − NodeSize > 0) and by KrPrime once they touch; note the
// divisor stays d2, so the full coefficient is m1·m2/d2 · (Kr/d' | Kr').
//
// The generic N-dimensional kernel is the reference implementation; the 2D
// and 3D specializations unroll the component loop over the flat buffers
// and are what dispatch actually selects.
package layout

import "github.com/katalvlaran/forcegraph/coord"

// chooseRepulsion fixes the repulsion tier from the settings. Barnes–Hut
// outranks everything (float64 only); prevent-overlapping runs on the
// sequential tier; otherwise chunking and the vectorized flag pick among
// scalar/lane and sequential/tiled specializations.
func (l *Layout[T]) chooseRepulsion(vectorized bool) (kernel[T], error) {
	s := &l.settings
	if !coord.IsZero(s.BarnesHut) {
		return l.chooseRepulsionBarnesHut()
	}
	if s.PreventOverlapping != nil {
		return applyRepulsionPO[T], nil
	}
	parallel := s.ChunkSize > 0
	if s.Dimensions == 2 {
		switch {
		case parallel && vectorized:
			return applyRepulsion2DVecParallel[T], nil
		case parallel:
			return applyRepulsion2DParallel[T], nil
		case vectorized:
			return applyRepulsion2DVec[T], nil
		default:
			return applyRepulsion2D[T], nil
		}
	}
	switch {
	case parallel && vectorized && lanes3D[T]() > 1:
		return applyRepulsion3DVecParallel[T], nil
	case parallel:
		return applyRepulsion3DParallel[T], nil
	case vectorized && lanes3D[T]() > 1:
		return applyRepulsion3DVec[T], nil
	default:
		return applyRepulsion3D[T], nil
	}
}

// applyRepulsionND is the dimension-generic reference kernel.
func applyRepulsionND[T coord.Float](l *Layout[T]) {
	kr := l.settings.Kr
	di := l.di
	l.forEachPair(func(n1, n2 Node[T]) {
		d2 := coord.DeltaSquaredNorm(di, n1.Pos, n2.Pos)
		if coord.IsZero(d2) {
			return
		}
		f := (n1.Mass + 1) * (n2.Mass + 1) / d2 * kr
		for k, d := range di {
			s := f * d
			n1.Speed[k] -= s
			n2.Speed[k] += s
		}
	})
}

// applyRepulsion2D unrolls the pair loop over the flat 2D buffers.
func applyRepulsion2D[T coord.Float](l *Layout[T]) {
	kr := l.settings.Kr
	pts := l.points.coords
	sp := l.speeds.coords
	ms := l.masses
	for n1 := 1; n1 < len(ms); n1++ {
		x1, y1 := pts[2*n1], pts[2*n1+1]
		m1 := ms[n1] + 1
		for n2 := 0; n2 < n1; n2++ {
			dx := pts[2*n2] - x1
			dy := pts[2*n2+1] - y1
			d2 := dx*dx + dy*dy
			if coord.IsZero(d2) {
				continue
			}
			f := m1 * (ms[n2] + 1) / d2 * kr
			vx, vy := f*dx, f*dy
			sp[2*n1] -= vx
			sp[2*n1+1] -= vy
			sp[2*n2] += vx
			sp[2*n2+1] += vy
		}
	}
}

// applyRepulsion3D unrolls the pair loop over the flat 3D buffers.
func applyRepulsion3D[T coord.Float](l *Layout[T]) {
	kr := l.settings.Kr
	pts := l.points.coords
	sp := l.speeds.coords
	ms := l.masses
	for n1 := 1; n1 < len(ms); n1++ {
		x1, y1, z1 := pts[3*n1], pts[3*n1+1], pts[3*n1+2]
		m1 := ms[n1] + 1
		for n2 := 0; n2 < n1; n2++ {
			dx := pts[3*n2] - x1
			dy := pts[3*n2+1] - y1
			dz := pts[3*n2+2] - z1
			d2 := dx*dx + dy*dy + dz*dz
			if coord.IsZero(d2) {
				continue
			}
			f := m1 * (ms[n2] + 1) / d2 * kr
			vx, vy, vz := f*dx, f*dy, f*dz
			sp[3*n1] -= vx
			sp[3*n1+1] -= vy
			sp[3*n1+2] -= vz
			sp[3*n2] += vx
			sp[3*n2+1] += vy
			sp[3*n2+2] += vz
		}
	}
}

// applyRepulsionPO is the prevent-overlapping variant, any dimensionality.
func applyRepulsionPO[T coord.Float](l *Layout[T]) {
	po := l.settings.PreventOverlapping
	kr := l.settings.Kr
	di := l.di
	l.forEachPair(func(n1, n2 Node[T]) {
		d2 := coord.DeltaSquaredNorm(di, n1.Pos, n2.Pos)
		if coord.IsZero(d2) {
			return
		}
		dprime := coord.Sqrt(d2) - po.NodeSize
		coef := po.KrPrime
		if coord.Positive(dprime) {
			coef = kr / dprime
		}
		f := (n1.Mass + 1) * (n2.Mass + 1) / d2 * coef
		for k, d := range di {
			s := f * d
			n1.Speed[k] -= s
			n2.Speed[k] += s
		}
	})
}
