// Package layout - lane-grouped ("vectorized") repulsion tier.
//
// The portable rendition of the wide-register kernels: the inner n2 loop
// consumes K consecutive nodes per step as one contiguous K·d-scalar run
// through PointIter.NextD (K = 4 at float32, K = 2 at float64 — a 256-bit
// register's worth), with a scalar tail for the leftover nodes. Per-pair
// arithmetic and accumulation order match the scalar tier exactly, so
// results are identical bit for bit; the gain is the grouped,
// bounds-check-friendly memory traffic.
package layout

import "github.com/katalvlaran/forcegraph/coord"

// lanes2D is the 2D lane width: 4 float32 or 2 float64 points per run.
func lanes2D[T coord.Float]() int {
	if _, ok := any(T(0)).(float32); ok {
		return 4
	}

	return 2
}

// lanes3D is the 3D lane width: 2 float32 points per run; float64 3D has
// no lane grouping and falls back to the scalar kernel.
func lanes3D[T coord.Float]() int {
	if _, ok := any(T(0)).(float32); ok {
		return 2
	}

	return 1
}

// repelRow2D applies 2D repulsion of n1 against every n2 in [lo, end),
// lane-grouped with a scalar tail.
func repelRow2D[T coord.Float](l *Layout[T], n1, lo, end, lanes int) {
	kr := l.settings.Kr
	pts := l.points.coords
	sp := l.speeds.coords
	ms := l.masses
	x1, y1 := pts[2*n1], pts[2*n1+1]
	m1 := ms[n1] + 1

	// Full runs of `lanes` inner nodes.
	it := l.points.Iter()
	it.Seek(lo)
	tail := end - (end-lo)%lanes
	for base := lo; base < tail; base += lanes {
		run := it.NextD(lanes)
		for lane := 0; lane < lanes; lane++ {
			n2 := base + lane
			dx := run[2*lane] - x1
			dy := run[2*lane+1] - y1
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

	// Tail: n2 values not filling a whole run.
	for n2 := tail; n2 < end; n2++ {
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

// repelRow3D is the 3D analogue of repelRow2D.
func repelRow3D[T coord.Float](l *Layout[T], n1, lo, end, lanes int) {
	kr := l.settings.Kr
	pts := l.points.coords
	sp := l.speeds.coords
	ms := l.masses
	x1, y1, z1 := pts[3*n1], pts[3*n1+1], pts[3*n1+2]
	m1 := ms[n1] + 1

	it := l.points.Iter()
	it.Seek(lo)
	tail := end - (end-lo)%lanes
	for base := lo; base < tail; base += lanes {
		run := it.NextD(lanes)
		for lane := 0; lane < lanes; lane++ {
			n2 := base + lane
			dx := run[3*lane] - x1
			dy := run[3*lane+1] - y1
			dz := run[3*lane+2] - z1
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

	for n2 := tail; n2 < end; n2++ {
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

func applyRepulsion2DVec[T coord.Float](l *Layout[T]) {
	lanes := lanes2D[T]()
	for n1 := 1; n1 < len(l.masses); n1++ {
		repelRow2D(l, n1, 0, n1, lanes)
	}
}

func applyRepulsion3DVec[T coord.Float](l *Layout[T]) {
	lanes := lanes3D[T]()
	for n1 := 1; n1 < len(l.masses); n1++ {
		repelRow3D(l, n1, 0, n1, lanes)
	}
}

func applyRepulsion2DVecParallel[T coord.Float](l *Layout[T]) {
	lanes := lanes2D[T]()
	l.runTiles(func(t tile, _ []T) {
		lo1, hi1 := l.chunkRange(t.i)
		lo2, hi2 := l.chunkRange(t.j)
		for n1 := lo1; n1 < hi1; n1++ {
			end := hi2
			if t.i == t.j {
				end = n1
			}
			repelRow2D(l, n1, lo2, end, lanes)
		}
	})
}

func applyRepulsion3DVecParallel[T coord.Float](l *Layout[T]) {
	lanes := lanes3D[T]()
	l.runTiles(func(t tile, _ []T) {
		lo1, hi1 := l.chunkRange(t.i)
		lo2, hi2 := l.chunkRange(t.j)
		for n1 := lo1; n1 < hi1; n1++ {
			end := hi2
			if t.i == t.j {
				end = n1
			}
			repelRow3D(l, n1, lo2, end, lanes)
		}
	})
}
