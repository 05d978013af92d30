package meshgeom

import (
	"fmt"
	"math"
)

type Vec2[T Float] struct {
	X T
	Y T
}

// V2 returns the vector ⟨x, y⟩.
func V2[T Float](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Splat returns the vector's x and y coordinates.
func (v Vec2[T]) Splat() (T, T) {
	return v.X, v.Y
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2[T]) Dot(o Vec2[T]) T {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the cross product of v and o, treating
// both as vectors in the xy plane.
func (v Vec2[T]) Cross(o Vec2[T]) T {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vec2[T]) Hypot() T {
	return T(math.Hypot(float64(v.X), float64(v.Y)))
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec2.Hypot].
func (v Vec2[T]) Hypot2() T {
	return v.Dot(v)
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vec2[T]) Normalize() Vec2[T] {
	return v.Div(v.Hypot())
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vec2[T]) Mul(f T) Vec2[T] {
	return Vec2[T]{
		X: v.X * f,
		Y: v.Y * f,
	}
}

func (v Vec2[T]) Div(f T) Vec2[T] {
	return Vec2[T]{
		X: v.X / f,
		Y: v.Y / f,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2[T]) Negate() Vec2[T] {
	return Vec2[T]{
		X: -v.X,
		Y: -v.Y,
	}
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vec2[T]) IsInf() bool {
	return isInf(v.X) || isInf(v.Y)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2[T]) IsNaN() bool {
	return isNaN(v.X) || isNaN(v.Y)
}

type Vec3[T Float] struct {
	X T
	Y T
	Z T
}

// V3 returns the vector ⟨x, y, z⟩.
func V3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Splat returns the vector's x, y and z coordinates.
func (v Vec3[T]) Splat() (T, T, T) {
	return v.X, v.Y, v.Z
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

// Dot returns the dot product of v and o.
func (v Vec3[T]) Dot(o Vec3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v×o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Hypot returns the magnitude of the vector.
func (v Vec3[T]) Hypot() T {
	return sqrt(v.Dot(v))
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vec3[T]) Hypot2() T {
	return v.Dot(v)
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vec3[T]) Normalize() Vec3[T] {
	return v.Div(v.Hypot())
}

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

func (v Vec3[T]) Mul(f T) Vec3[T] {
	return Vec3[T]{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
	}
}

func (v Vec3[T]) Div(f T) Vec3[T] {
	return Vec3[T]{
		X: v.X / f,
		Y: v.Y / f,
		Z: v.Z / f,
	}
}

// Negate returns a new vector with all signs flipped.
func (v Vec3[T]) Negate() Vec3[T] {
	return Vec3[T]{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// IsInf reports whether at least one of x, y and z is infinite.
func (v Vec3[T]) IsInf() bool {
	return isInf(v.X) || isInf(v.Y) || isInf(v.Z)
}

// IsNaN reports whether at least one of x, y and z is NaN.
func (v Vec3[T]) IsNaN() bool {
	return isNaN(v.X) || isNaN(v.Y) || isNaN(v.Z)
}
