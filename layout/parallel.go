// Package layout - chunked parallel pair iteration.
//
// The O(n²) pair loop is tiled over node chunks of Settings.ChunkSize:
// tile (i, j≤i) covers pairs with n1 in chunk i and n2 in chunk j. A tile
// writes only the speed slots of its two chunks, so any set of tiles over
// pairwise-disjoint chunks may run concurrently. waveSchedule arranges all
// tiles into such waves — the diagonal first, then one round-robin
// tournament round per wave — and runTiles executes wave after wave with a
// goroutine per tile. Within a tile execution is sequential, so per-pair
// accumulation order is fixed; only the cross-chunk summation order differs
// from the sequential tier, which is the usual FP-associativity caveat.
package layout

import (
	"sync"

	"github.com/katalvlaran/forcegraph/coord"
)

// tile is one block of the pair triangle: n1 in chunk i, n2 in chunk j,
// with j ≤ i.
type tile struct {
	i, j int
}

// waveSchedule partitions all tiles over c chunks into waves such that no
// two tiles in one wave touch the same chunk. Wave 0 holds the c diagonal
// tiles (each touches a single distinct chunk); the remaining waves are the
// rounds of a round-robin tournament over the chunk indices, ⌊c/2⌋ tiles
// per round.
// Complexity: O(c²) schedule entries in O(c²) time.
func waveSchedule(c int) [][]tile {
	if c <= 0 {
		return nil
	}

	waves := make([][]tile, 0, c+1)

	// 1) Diagonal wave.
	diag := make([]tile, c)
	for i := range diag {
		diag[i] = tile{i: i, j: i}
	}
	waves = append(waves, diag)

	// 2) Tournament rounds over the off-diagonal tiles (circle method;
	// an odd chunk count gets a phantom index that pairs into byes).
	m := c
	if m%2 == 1 {
		m++
	}
	for r := 0; r < m-1; r++ {
		var wave []tile
		for k := 0; k < m/2; k++ {
			var a, b int
			if k == 0 {
				a, b = m-1, r
			} else {
				a = (r + k) % (m - 1)
				b = (r - k + m - 1) % (m - 1)
			}
			if a >= c || b >= c {
				continue // bye
			}
			if a < b {
				a, b = b, a
			}
			wave = append(wave, tile{i: a, j: b})
		}
		if len(wave) > 0 {
			waves = append(waves, wave)
		}
	}

	return waves
}

// chunkRange returns the node index range [lo, hi) of chunk c.
func (l *Layout[T]) chunkRange(c int) (lo, hi int) {
	size := l.settings.ChunkSize
	lo = c * size
	hi = lo + size
	if n := len(l.masses); hi > n {
		hi = n
	}

	return lo, hi
}

// runTiles executes the precomputed wave schedule, one goroutine per tile,
// barrier between waves. Each goroutine gets its own d-dimensional scratch.
func (l *Layout[T]) runTiles(body func(t tile, di []T)) {
	dims := l.settings.Dimensions
	for _, wave := range l.waves {
		var wg sync.WaitGroup
		for _, t := range wave {
			wg.Add(1)
			go func(t tile) {
				defer wg.Done()
				body(t, coord.Valloc[T](dims))
			}(t)
		}
		wg.Wait()
	}
}

// applyRepulsionParallel is the dimension-generic tiled kernel; the 2D and
// 3D specializations below are what dispatch selects.
func applyRepulsionParallel[T coord.Float](l *Layout[T]) {
	kr := l.settings.Kr
	l.runTiles(func(t tile, di []T) {
		lo1, hi1 := l.chunkRange(t.i)
		lo2, hi2 := l.chunkRange(t.j)
		for n1 := lo1; n1 < hi1; n1++ {
			m1 := l.masses[n1] + 1
			p1 := l.points.Get(n1)
			s1 := l.speeds.Get(n1)
			end := hi2
			if t.i == t.j {
				end = n1
			}
			for n2 := lo2; n2 < end; n2++ {
				d2 := coord.DeltaSquaredNorm(di, p1, l.points.Get(n2))
				if coord.IsZero(d2) {
					continue
				}
				f := m1 * (l.masses[n2] + 1) / d2 * kr
				s2 := l.speeds.Get(n2)
				for k, d := range di {
					s := f * d
					s1[k] -= s
					s2[k] += s
				}
			}
		}
	})
}

func applyRepulsion2DParallel[T coord.Float](l *Layout[T]) {
	kr := l.settings.Kr
	pts := l.points.coords
	sp := l.speeds.coords
	ms := l.masses
	l.runTiles(func(t tile, _ []T) {
		lo1, hi1 := l.chunkRange(t.i)
		lo2, hi2 := l.chunkRange(t.j)
		for n1 := lo1; n1 < hi1; n1++ {
			x1, y1 := pts[2*n1], pts[2*n1+1]
			m1 := ms[n1] + 1
			end := hi2
			if t.i == t.j {
				end = n1
			}
			for n2 := lo2; n2 < end; n2++ {
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
	})
}

func applyRepulsion3DParallel[T coord.Float](l *Layout[T]) {
	kr := l.settings.Kr
	pts := l.points.coords
	sp := l.speeds.coords
	ms := l.masses
	l.runTiles(func(t tile, _ []T) {
		lo1, hi1 := l.chunkRange(t.i)
		lo2, hi2 := l.chunkRange(t.j)
		for n1 := lo1; n1 < hi1; n1++ {
			x1, y1, z1 := pts[3*n1], pts[3*n1+1], pts[3*n1+2]
			m1 := ms[n1] + 1
			end := hi2
			if t.i == t.j {
				end = n1
			}
			for n2 := lo2; n2 < end; n2++ {
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
	})
}
