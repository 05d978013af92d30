package meshgeom

// QuadArea returns the area of the quadrilateral (a, b, c, d) as the sum of
// the triangles (a, b, c) and (a, c, d).
//
// The quadrilateral must be planar and convex. For other inputs the result is
// the area of the two triangles sharing the diagonal a–c, which is not the
// area of the quadrilateral.
func QuadArea[T Float](a, b, c, d Point3[T]) T {
	return TriangleArea(a, b, c) + TriangleArea(a, c, d)
}

// QuadCentroid returns the centroid of the planar quadrilateral (a, b, c, d),
// as the area-weighted average of the centroids of the triangles (a, b, c) and
// (a, c, d).
//
// A quadrilateral with zero area produces a NaN point.
func QuadCentroid[T Float](a, b, c, d Point3[T]) Point3[T] {
	c1 := TriangleCentroid(a, b, c)
	c2 := TriangleCentroid(a, c, d)
	w1 := b.Sub(a).Cross(c.Sub(a)).Hypot()
	w2 := c.Sub(a).Cross(d.Sub(a)).Hypot()
	w := w1 + w2
	return Point3[T]{
		X: (c1.X*w1 + c2.X*w2) / w,
		Y: (c1.Y*w1 + c2.Y*w2) / w,
		Z: (c1.Z*w1 + c2.Z*w2) / w,
	}
}
