package meshgeom

// TetrahedronVolume returns the volume |((b−a)×(c−a))·(d−a)| / 6 of the
// tetrahedron (a, b, c, d). Vertex order does not affect the result.
func TetrahedronVolume[T Float](a, b, c, d Point3[T]) T {
	return abs(SignedTetrahedronVolume(a, b, c, d))
}

// SignedTetrahedronVolume returns ((b−a)×(c−a))·(d−a) / 6. It is positive
// when d lies on the side of the triangle (a, b, c) that the triangle's
// right-hand normal points to.
//
// Summing signed volumes of (origin, a, b, c) over the triangles of a
// consistently oriented closed surface yields the enclosed volume.
func SignedTetrahedronVolume[T Float](a, b, c, d Point3[T]) T {
	return b.Sub(a).Cross(c.Sub(a)).Dot(d.Sub(a)) / 6
}

// TetrahedronCentroid returns (a + b + c + d) / 4.
func TetrahedronCentroid[T Float](a, b, c, d Point3[T]) Point3[T] {
	return Point3[T]{
		X: (a.X + b.X + c.X + d.X) * 0.25,
		Y: (a.Y + b.Y + c.Y + d.Y) * 0.25,
		Z: (a.Z + b.Z + c.Z + d.Z) * 0.25,
	}
}

// Tetrahedron is a tetrahedral cell.
type Tetrahedron[T Float] [4]Point3[T]

func (tet Tetrahedron[T]) Volume() T {
	return TetrahedronVolume(tet[0], tet[1], tet[2], tet[3])
}

func (tet Tetrahedron[T]) SignedVolume() T {
	return SignedTetrahedronVolume(tet[0], tet[1], tet[2], tet[3])
}

func (tet Tetrahedron[T]) Centroid() Point3[T] {
	return TetrahedronCentroid(tet[0], tet[1], tet[2], tet[3])
}

func (tet Tetrahedron[T]) BoundingBox() AABB[T] {
	return NewAABBFromPoints(tet[:]...)
}
