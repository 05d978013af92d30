package meshgeom

// RayEpsilon is the fixed threshold used by [RayTriangleIntersection] both to
// reject rays parallel to the triangle and to reject hits at or behind the
// ray's origin. It is not scaled to the magnitude of the input; callers
// working at very different length scales should rescale their coordinates.
const RayEpsilon = 1e-8

// Ray is a half-line Origin + t·Dir, t ≥ 0. Dir does not have to be
// normalized; distances along the ray are measured in units of Dir's length.
type Ray[T Float] struct {
	Origin Point3[T]
	Dir    Vec3[T]
}

// At returns the point Origin + t·Dir.
func (r Ray[T]) At(t T) Point3[T] {
	return r.Origin.Translate(r.Dir.Mul(t))
}

// RayHit describes where a ray hits a triangle (a, b, c). The hit point is
// Origin + T·Dir, or equivalently (1−U−V)·a + U·b + V·c.
type RayHit[T Float] struct {
	T T
	U T
	V T
}

// RayTriangleIntersection intersects ray with the triangle (a, b, c) using
// the Möller–Trumbore algorithm. It reports false if the ray is parallel to
// the triangle's plane, misses the triangle, or hits it at a parameter not
// greater than [RayEpsilon]. Both faces of the triangle are hit.
func RayTriangleIntersection[T Float](ray Ray[T], a, b, c Point3[T]) (RayHit[T], bool) {
	const eps = RayEpsilon
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	pvec := ray.Dir.Cross(edge2)
	det := edge1.Dot(pvec)
	if abs(det) < eps {
		// Parallel
		return RayHit[T]{}, false
	}
	invDet := 1 / det
	tvec := ray.Origin.Sub(a)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return RayHit[T]{}, false
	}
	qvec := tvec.Cross(edge1)
	v := ray.Dir.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return RayHit[T]{}, false
	}
	t := edge2.Dot(qvec) * invDet
	if t <= eps {
		return RayHit[T]{}, false
	}
	return RayHit[T]{T: t, U: u, V: v}, true
}
