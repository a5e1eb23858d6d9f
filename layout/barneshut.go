// Package layout - Barnes–Hut repulsion tier.
//
// The approximate O(n log n) tier hands the spatial tree to
// gonum/spatial/barneshut: nodes become particles of mass degree+1, and
// each force closure scales the raw displacement vector v that ForceOn
// supplies by m1·m2·Kr/d2 — magnitude m1·m2·Kr/|d| along v, the same
// per-pair law as the exact kernel's f·d update with f = m1·m2·Kr/d2.
// float64 layouts only; a float32 layout with BarnesHut set is rejected
// at construction.
package layout

import (
	"math"

	"gonum.org/v1/gonum/spatial/barneshut"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// chooseRepulsionBarnesHut resolves the Barnes–Hut kernel for the layout's
// dimensionality and overlap mode, or ErrBarnesHutPrecision for float32.
func (l *Layout[T]) chooseRepulsionBarnesHut() (kernel[T], error) {
	if _, ok := any(l).(*Layout[float64]); !ok {
		return nil, ErrBarnesHutPrecision
	}
	po := l.settings.PreventOverlapping != nil
	var k func(*Layout[float64])
	switch {
	case l.settings.Dimensions == 2 && !po:
		k = applyRepulsionBH2D
	case l.settings.Dimensions == 2:
		k = applyRepulsionBH2DPO
	case !po:
		k = applyRepulsionBH3D
	default:
		k = applyRepulsionBH3DPO
	}

	return func(l *Layout[T]) { k(any(l).(*Layout[float64])) }, nil
}

// bhParticle2 adapts one node to gonum's 2D particle interface.
type bhParticle2 struct {
	pos  r2.Vec
	mass float64
}

func (p bhParticle2) Coord2() r2.Vec { return p.pos }
func (p bhParticle2) Mass() float64  { return p.mass }

// bhParticle3 adapts one node to gonum's 3D particle interface.
type bhParticle3 struct {
	pos  r3.Vec
	mass float64
}

func (p bhParticle3) Coord3() r3.Vec { return p.pos }
func (p bhParticle3) Mass() float64  { return p.mass }

// bhPlane builds the quadtree over the current positions. A nil return
// means the tree could not be built (empty layout or non-finite
// coordinates); the caller skips the pass and lets the caller of
// Iteration observe the degenerate positions.
func bhPlane(l *Layout[float64]) ([]bhParticle2, *barneshut.Plane) {
	n := len(l.masses)
	if n == 0 {
		return nil, nil
	}
	store := make([]bhParticle2, n)
	particles := make([]barneshut.Particle2, n)
	for i := 0; i < n; i++ {
		p := l.points.Get(i)
		store[i] = bhParticle2{pos: r2.Vec{X: p[0], Y: p[1]}, mass: l.masses[i] + 1}
		particles[i] = store[i]
	}
	plane, err := barneshut.NewPlane(particles)
	if err != nil {
		return nil, nil
	}

	return store, plane
}

// bhVolume is the 3D analogue of bhPlane.
func bhVolume(l *Layout[float64]) ([]bhParticle3, *barneshut.Volume) {
	n := len(l.masses)
	if n == 0 {
		return nil, nil
	}
	store := make([]bhParticle3, n)
	particles := make([]barneshut.Particle3, n)
	for i := 0; i < n; i++ {
		p := l.points.Get(i)
		store[i] = bhParticle3{pos: r3.Vec{X: p[0], Y: p[1], Z: p[2]}, mass: l.masses[i] + 1}
		particles[i] = store[i]
	}
	volume, err := barneshut.NewVolume(particles)
	if err != nil {
		return nil, nil
	}

	return store, volume
}

func applyRepulsionBH2D(l *Layout[float64]) {
	store, plane := bhPlane(l)
	if plane == nil {
		return
	}
	kr := l.settings.Kr
	theta := l.settings.BarnesHut
	for i := range store {
		f := plane.ForceOn(store[i], theta, func(_, _ barneshut.Particle2, m1, m2 float64, v r2.Vec) r2.Vec {
			d2 := v.X*v.X + v.Y*v.Y
			if d2 == 0 {
				return r2.Vec{}
			}

			return r2.Scale(m1*m2*kr/d2, v)
		})
		sp := l.speeds.Get(i)
		sp[0] -= f.X
		sp[1] -= f.Y
	}
}

func applyRepulsionBH2DPO(l *Layout[float64]) {
	store, plane := bhPlane(l)
	if plane == nil {
		return
	}
	kr := l.settings.Kr
	theta := l.settings.BarnesHut
	po := l.settings.PreventOverlapping
	for i := range store {
		f := plane.ForceOn(store[i], theta, func(_, _ barneshut.Particle2, m1, m2 float64, v r2.Vec) r2.Vec {
			d2 := v.X*v.X + v.Y*v.Y
			if d2 == 0 {
				return r2.Vec{}
			}
			d := math.Sqrt(d2)
			dprime := d - po.NodeSize
			var coef float64
			switch {
			case dprime > 0:
				coef = kr / dprime
			case dprime == 0:
				return r2.Vec{}
			default:
				coef = po.KrPrime
			}

			return r2.Scale(m1*m2*coef/d2, v)
		})
		sp := l.speeds.Get(i)
		sp[0] -= f.X
		sp[1] -= f.Y
	}
}

func applyRepulsionBH3D(l *Layout[float64]) {
	store, volume := bhVolume(l)
	if volume == nil {
		return
	}
	kr := l.settings.Kr
	theta := l.settings.BarnesHut
	for i := range store {
		f := volume.ForceOn(store[i], theta, func(_, _ barneshut.Particle3, m1, m2 float64, v r3.Vec) r3.Vec {
			d2 := v.X*v.X + v.Y*v.Y + v.Z*v.Z
			if d2 == 0 {
				return r3.Vec{}
			}

			return r3.Scale(m1*m2*kr/d2, v)
		})
		sp := l.speeds.Get(i)
		sp[0] -= f.X
		sp[1] -= f.Y
		sp[2] -= f.Z
	}
}

func applyRepulsionBH3DPO(l *Layout[float64]) {
	store, volume := bhVolume(l)
	if volume == nil {
		return
	}
	kr := l.settings.Kr
	theta := l.settings.BarnesHut
	po := l.settings.PreventOverlapping
	for i := range store {
		f := volume.ForceOn(store[i], theta, func(_, _ barneshut.Particle3, m1, m2 float64, v r3.Vec) r3.Vec {
			d2 := v.X*v.X + v.Y*v.Y + v.Z*v.Z
			if d2 == 0 {
				return r3.Vec{}
			}
			d := math.Sqrt(d2)
			dprime := d - po.NodeSize
			var coef float64
			switch {
			case dprime > 0:
				coef = kr / dprime
			case dprime == 0:
				return r3.Vec{}
			default:
				coef = po.KrPrime
			}

			return r3.Scale(m1*m2*coef/d2, v)
		})
		sp := l.speeds.Get(i)
		sp[0] -= f.X
		sp[1] -= f.Y
		sp[2] -= f.Z
	}
}
