// Package layout - flat vector storage and disjoint-access helpers.
//
// PointList is the d-dimensional analogue of a []T: n logical points stored
// contiguously, node i occupying [i·d, (i+1)·d). Three PointLists back a
// Layout: positions, the per-iteration force accumulator, and the previous
// iteration's velocities.
package layout

import (
	"fmt"

	"github.com/katalvlaran/forcegraph/coord"
)

// PointList stores n d-dimensional vectors in one flat slice.
type PointList[T coord.Float] struct {
	dims   int
	coords []T
}

// NewPointList allocates a zeroed list of n d-dimensional points.
// Complexity: O(n·d).
func NewPointList[T coord.Float](dims, n int) PointList[T] {
	return PointList[T]{dims: dims, coords: make([]T, n*dims)}
}

// Dims returns the per-point dimensionality.
func (p *PointList[T]) Dims() int { return p.dims }

// Len returns the number of points.
func (p *PointList[T]) Len() int { return len(p.coords) / p.dims }

// Coords returns the flat backing slice (n·d scalars).
func (p *PointList[T]) Coords() []T { return p.coords }

// Get returns the d-scalar view of point i. The view aliases the backing
// slice; writes through it are visible to every other accessor.
// Complexity: O(1).
func (p *PointList[T]) Get(i int) []T {
	lo := i * p.dims

	return p.coords[lo : lo+p.dims : lo+p.dims]
}

// Get2Mut returns two disjoint mutable views over points i and j.
// i == j is a fatal precondition violation and panics: handing out two
// aliased mutable views would let a pair kernel double-apply a force.
// Complexity: O(1).
func (p *PointList[T]) Get2Mut(i, j int) ([]T, []T) {
	if i == j {
		panic(fmt.Sprintf("layout: Get2Mut(%d, %d) requires distinct indices", i, j))
	}

	return p.Get(i), p.Get(j)
}

// Zero resets every scalar in the list.
// Complexity: O(n·d).
func (p *PointList[T]) Zero() {
	clear(p.coords)
}

// Iter returns a forward cursor positioned before the first point.
func (p *PointList[T]) Iter() *PointIter[T] {
	return &PointIter[T]{dims: p.dims, coords: p.coords}
}

// PointIter is a forward cursor over a PointList. It exists for the lane
// kernels, which consume k points at a time as one contiguous run.
type PointIter[T coord.Float] struct {
	dims   int
	coords []T
	offset int
}

// NextD yields the next k points as a single k·d-scalar view and advances
// the cursor past them. It returns nil when fewer than k points remain.
// Complexity: O(1).
func (it *PointIter[T]) NextD(k int) []T {
	hi := it.offset + k*it.dims
	if hi > len(it.coords) {
		return nil
	}
	v := it.coords[it.offset:hi:hi]
	it.offset = hi

	return v
}

// Seek positions the cursor at point i.
func (it *PointIter[T]) Seek(i int) {
	it.offset = i * it.dims
}
