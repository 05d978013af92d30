package meshgeom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the set of scalar types the package is generic over.
type Float interface {
	constraints.Float
}

// DefaultTolerance is a default absolute residual tolerance for
// [InvertQuadMapping]. It is suitable for meshes with coordinates of order
// one.
const DefaultTolerance = 1e-10

// DefaultMaxIterations is a default iteration limit for [InvertQuadMapping].
// It allows [DefaultTolerance] to be reached from residuals of order one at
// the linear rate of the solve.
const DefaultMaxIterations = 200

// Epsilon returns the machine epsilon of T, the difference between 1 and the
// next representable value.
func Epsilon[T Float]() T {
	// 2⁻³⁰ vanishes next to 1 only in single precision.
	if one := T(1); one+T(0x1p-30) == one {
		return T(0x1p-23)
	}
	return T(0x1p-52)
}

func sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

func abs[T Float](x T) T {
	return T(math.Abs(float64(x)))
}

func isNaN[T Float](x T) bool {
	return math.IsNaN(float64(x))
}

func isInf[T Float](x T) bool {
	return math.IsInf(float64(x), 0)
}
