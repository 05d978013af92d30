package meshgeom

import (
	"fmt"
	"math"
)

type Point2[T Float] struct {
	X T
	Y T
}

// Pt2 returns the point (x, y).
func Pt2[T Float](x, y T) Point2[T] {
	return Point2[T]{X: x, Y: y}
}

func (pt Point2[T]) Splat() (T, T) {
	return pt.X, pt.Y
}

func (pt Point2[T]) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point2[T]) Translate(v Vec2[T]) Point2[T] {
	return Point2[T]{
		X: pt.X + v.X,
		Y: pt.Y + v.Y,
	}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point2[T]) Sub(o Point2[T]) Vec2[T] {
	return Vec2[T]{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point2[T]) Lerp(o Point2[T], t T) Point2[T] {
	return pt.Translate(o.Sub(pt).Mul(t))
}

// Midpoint returns the midpoint of two points.
func (pt Point2[T]) Midpoint(o Point2[T]) Point2[T] {
	return Point2[T]{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point2[T]) Distance(o Point2[T]) T {
	return T(math.Hypot(float64(pt.X-o.X), float64(pt.Y-o.Y)))
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point2[T]) DistanceSquared(o Point2[T]) T {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point2[T]) IsInf() bool {
	return isInf(pt.X) || isInf(pt.Y)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point2[T]) IsNaN() bool {
	return isNaN(pt.X) || isNaN(pt.Y)
}

type Point3[T Float] struct {
	X T
	Y T
	Z T
}

// Pt3 returns the point (x, y, z).
func Pt3[T Float](x, y, z T) Point3[T] {
	return Point3[T]{X: x, Y: y, Z: z}
}

func (pt Point3[T]) Splat() (T, T, T) {
	return pt.X, pt.Y, pt.Z
}

func (pt Point3[T]) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

// XY returns the point projected onto the xy plane by dropping z.
func (pt Point3[T]) XY() Point2[T] {
	return Point2[T]{X: pt.X, Y: pt.Y}
}

func (pt Point3[T]) Translate(v Vec3[T]) Point3[T] {
	return Point3[T]{
		X: pt.X + v.X,
		Y: pt.Y + v.Y,
		Z: pt.Z + v.Z,
	}
}

// Sub computes pt−o.
func (pt Point3[T]) Sub(o Point3[T]) Vec3[T] {
	return Vec3[T]{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
		Z: pt.Z - o.Z,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point3[T]) Lerp(o Point3[T], t T) Point3[T] {
	return pt.Translate(o.Sub(pt).Mul(t))
}

// Midpoint returns the midpoint of two points.
func (pt Point3[T]) Midpoint(o Point3[T]) Point3[T] {
	return Point3[T]{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
		Z: 0.5 * (pt.Z + o.Z),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point3[T]) Distance(o Point3[T]) T {
	return pt.Sub(o).Hypot()
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point3[T]) DistanceSquared(o Point3[T]) T {
	return pt.Sub(o).Hypot2()
}

// IsInf reports whether at least one of x, y and z is infinite.
func (pt Point3[T]) IsInf() bool {
	return isInf(pt.X) || isInf(pt.Y) || isInf(pt.Z)
}

// IsNaN reports whether at least one of x, y and z is NaN.
func (pt Point3[T]) IsNaN() bool {
	return isNaN(pt.X) || isNaN(pt.Y) || isNaN(pt.Z)
}
