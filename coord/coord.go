package coord

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the scalar capability set required by the layout kernels:
// addition, subtraction, multiplication, division, comparison, and the
// function helpers below. float32, float64 and types whose underlying type
// is one of them satisfy it.
type Float interface {
	constraints.Float
}

// Sqrt returns the square root of x at the precision of T.
// Complexity: O(1).
func Sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Log1p returns ln(1+x), accurate near zero.
// Complexity: O(1).
func Log1p[T Float](x T) T {
	return T(math.Log1p(float64(x)))
}

// Abs returns the absolute value of x.
// Complexity: O(1).
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// IsZero reports whether x is exactly zero.
// Complexity: O(1).
func IsZero[T Float](x T) bool {
	return x == 0
}

// Positive reports whether x is strictly greater than zero.
// Complexity: O(1).
func Positive[T Float](x T) bool {
	return x > 0
}

// Valloc allocates a zeroed d-dimensional scratch vector. The layout calls
// it once at construction for the sequential kernels and once per tile for
// the parallel ones; the kernels reuse the slice in their inner loops.
// Complexity: O(d) time, O(d) space.
func Valloc[T Float](d int) []T {
	return make([]T, d)
}

// SquaredNorm returns Σ v[k]² over the whole slice.
// Complexity: O(d).
func SquaredNorm[T Float](v []T) T {
	var sum T
	for _, x := range v {
		sum += x * x
	}

	return sum
}

// DeltaSquaredNorm writes b−a into di and returns Σ di[k]².
// di, a and b must all have the same length; di must not alias a or b.
// Complexity: O(d), zero allocations.
func DeltaSquaredNorm[T Float](di, a, b []T) T {
	var sum T
	for k := range di {
		d := b[k] - a[k]
		di[k] = d
		sum += d * d
	}

	return sum
}
