package meshgeom

import "iter"

// Affine3 describes an affine transform in ℝ³ as a linear part M and a
// translation T, mapping p to M·p + T. In augmented form:
//
//	| M00 M01 M02 T.X |
//	| M10 M11 M12 T.Y |
//	| M20 M21 M22 T.Z |
//	|  0   0   0   1  |
//
// The idea is that (A * B) * p == A * (B * p).
type Affine3[T Float] struct {
	M [3][3]T
	T Vec3[T]
}

// Identity3 returns the identity transform.
func Identity3[T Float]() Affine3[T] {
	return Affine3[T]{M: [3][3]T{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// NewAffine3 creates an affine transform from a row-major linear part and a
// translation.
func NewAffine3[T Float](m [3][3]T, t Vec3[T]) Affine3[T] {
	return Affine3[T]{M: m, T: t}
}

// Translate3 creates an affine transform representing translation.
func Translate3[T Float](v Vec3[T]) Affine3[T] {
	aff := Identity3[T]()
	aff.T = v
	return aff
}

// Scale3 creates an affine transform representing non-uniform scaling.
func Scale3[T Float](x, y, z T) Affine3[T] {
	return Affine3[T]{M: [3][3]T{{x, 0, 0}, {0, y, 0}, {0, 0, z}}}
}

// Mul returns the composition aff * o, which applies o first.
func (aff Affine3[T]) Mul(o Affine3[T]) Affine3[T] {
	var out Affine3[T]
	for i := range 3 {
		for j := range 3 {
			out.M[i][j] = aff.M[i][0]*o.M[0][j] + aff.M[i][1]*o.M[1][j] + aff.M[i][2]*o.M[2][j]
		}
	}
	out.T = aff.TransformVec(o.T).Add(aff.T)
	return out
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate3(v) * aff"
func (aff Affine3[T]) ThenTranslate(v Vec3[T]) Affine3[T] {
	aff.T = aff.T.Add(v)
	return aff
}

// PreTranslate creates a translation of v followed by aff.
//
// Equivalent to "aff * Translate3(v)"
func (aff Affine3[T]) PreTranslate(v Vec3[T]) Affine3[T] {
	return aff.Mul(Translate3(v))
}

// Determinant returns the determinant of the linear part.
func (aff Affine3[T]) Determinant() T {
	m := &aff.M
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Invert computes the inverse transform. It reports false if the absolute
// value of the determinant is below the machine epsilon of T.
func (aff Affine3[T]) Invert() (Affine3[T], bool) {
	det := aff.Determinant()
	if abs(det) < Epsilon[T]() {
		return Affine3[T]{}, false
	}
	m := &aff.M
	invDet := 1 / det
	var inv Affine3[T]
	inv.M = [3][3]T{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet,
			-(m[0][1]*m[2][2] - m[0][2]*m[2][1]) * invDet,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet,
		},
		{
			-(m[1][0]*m[2][2] - m[1][2]*m[2][0]) * invDet,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet,
			-(m[0][0]*m[1][2] - m[0][2]*m[1][0]) * invDet,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet,
			-(m[0][0]*m[2][1] - m[0][1]*m[2][0]) * invDet,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet,
		},
	}
	// −M⁻¹·T
	inv.T = inv.TransformVec(aff.T).Negate()
	return inv, true
}

// TransformPoint returns M·p + T.
func (aff Affine3[T]) TransformPoint(p Point3[T]) Point3[T] {
	return Point3[T](aff.TransformVec(Vec3[T](p)).Add(aff.T))
}

// TransformVec returns M·v, ignoring the translation.
func (aff Affine3[T]) TransformVec(v Vec3[T]) Vec3[T] {
	m := &aff.M
	return Vec3[T]{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Translation returns the translation component of this affine
// transformation.
func (aff Affine3[T]) Translation() Vec3[T] {
	return aff.T
}

func (aff Affine3[T]) IsInf() bool {
	for _, row := range aff.M {
		for _, v := range row {
			if isInf(v) {
				return true
			}
		}
	}
	return aff.T.IsInf()
}

func (aff Affine3[T]) IsNaN() bool {
	for _, row := range aff.M {
		for _, v := range row {
			if isNaN(v) {
				return true
			}
		}
	}
	return aff.T.IsNaN()
}

// TransformAABBBoundingBox returns the smallest box enclosing box after
// transformation by aff.
func (aff Affine3[T]) TransformAABBBoundingBox(box AABB[T]) AABB[T] {
	out := EmptyAABB[T]()
	for _, p := range box.Corners() {
		out = out.UnionPoint(aff.TransformPoint(p))
	}
	return out
}

// TransformPoints applies aff to every point of seq.
func TransformPoints[T Float](seq iter.Seq[Point3[T]], aff Affine3[T]) iter.Seq[Point3[T]] {
	return func(yield func(Point3[T]) bool) {
		for p := range seq {
			if !yield(aff.TransformPoint(p)) {
				break
			}
		}
	}
}
