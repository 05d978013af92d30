package meshgeom

// TriangleArea returns the area of the triangle (a, b, c), computed as half
// the magnitude of (b−a)×(c−a). The result is never negative and does not
// depend on the orientation of the triangle.
func TriangleArea[T Float](a, b, c Point3[T]) T {
	return b.Sub(a).Cross(c.Sub(a)).Hypot() * 0.5
}

// TriangleCentroid returns (a + b + c) / 3.
func TriangleCentroid[T Float](a, b, c Point3[T]) Point3[T] {
	return Point3[T]{
		X: (a.X + b.X + c.X) / 3,
		Y: (a.Y + b.Y + c.Y) / 3,
		Z: (a.Z + b.Z + c.Z) / 3,
	}
}

// Triangle is a triangle in 3D space. The orientation of its normal follows
// the right-hand rule over A, B, C.
type Triangle[T Float] struct {
	A, B, C Point3[T]
}

// Area returns the triangle's area. See [TriangleArea].
func (tri Triangle[T]) Area() T {
	return TriangleArea(tri.A, tri.B, tri.C)
}

// Centroid returns the triangle's centroid. See [TriangleCentroid].
func (tri Triangle[T]) Centroid() Point3[T] {
	return TriangleCentroid(tri.A, tri.B, tri.C)
}

// Normal returns the un-normalized normal (B−A)×(C−A), whose magnitude is
// twice the triangle's area.
func (tri Triangle[T]) Normal() Vec3[T] {
	return tri.B.Sub(tri.A).Cross(tri.C.Sub(tri.A))
}

// Distance returns the distance from pt to the triangle. See
// [PointTriangleDistance] for its limitations.
func (tri Triangle[T]) Distance(pt Point3[T]) T {
	return PointTriangleDistance(pt, tri.A, tri.B, tri.C)
}

// IntersectRay intersects ray with the triangle. See
// [RayTriangleIntersection].
func (tri Triangle[T]) IntersectRay(ray Ray[T]) (RayHit[T], bool) {
	return RayTriangleIntersection(ray, tri.A, tri.B, tri.C)
}

func (tri Triangle[T]) BoundingBox() AABB[T] {
	return NewAABBFromPoints(tri.A, tri.B, tri.C)
}

func (tri Triangle[T]) Transform(aff Affine3[T]) Triangle[T] {
	return Triangle[T]{
		A: aff.TransformPoint(tri.A),
		B: aff.TransformPoint(tri.B),
		C: aff.TransformPoint(tri.C),
	}
}

func (tri Triangle[T]) IsNaN() bool {
	return tri.A.IsNaN() || tri.B.IsNaN() || tri.C.IsNaN()
}
