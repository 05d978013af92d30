package meshgeom

// Hexahedron is a hexahedral cell with corners in the usual order: 0 through
// 3 form the bottom face, counter-clockwise when seen from above, and 4
// through 7 form the top face, with corner i+4 above corner i.
//
//	   7-------6
//	  /|      /|
//	 4-------5 |
//	 | 3-----|-2
//	 |/      |/
//	 0-------1
type Hexahedron[T Float] [8]Point3[T]

// hexTets splits the corner ordering of [Hexahedron] into five tetrahedra:
// four corner tetrahedra around a central one.
var hexTets = [5][4]int{
	{0, 1, 3, 4},
	{1, 2, 3, 6},
	{1, 5, 4, 6},
	{3, 7, 4, 6},
	{1, 3, 4, 6},
}

// HexahedronVolume returns the volume of the hexahedron, computed by splitting
// it into five tetrahedra.
//
// The result is exact for affine hexahedra (parallelepipeds and their images
// under affine maps). For general convex hexahedra with non-planar faces it is
// an approximation whose error grows with the deviation from an affine shape.
// The corners must follow the ordering documented on [Hexahedron].
func HexahedronVolume[T Float](h [8]Point3[T]) T {
	var v T
	for _, tet := range hexTets {
		v += TetrahedronVolume(h[tet[0]], h[tet[1]], h[tet[2]], h[tet[3]])
	}
	return v
}

// HexahedronCentroid returns the average of the eight corners. This is the
// centroid only for affine hexahedra.
func HexahedronCentroid[T Float](h [8]Point3[T]) Point3[T] {
	var x, y, z T
	for _, p := range h {
		x += p.X
		y += p.Y
		z += p.Z
	}
	return Point3[T]{X: x * 0.125, Y: y * 0.125, Z: z * 0.125}
}

func (h Hexahedron[T]) Volume() T {
	return HexahedronVolume[T](h)
}

func (h Hexahedron[T]) Centroid() Point3[T] {
	return HexahedronCentroid[T](h)
}

func (h Hexahedron[T]) BoundingBox() AABB[T] {
	return NewAABBFromPoints(h[:]...)
}

// Tetrahedra returns the five tetrahedra [HexahedronVolume] sums over.
func (h Hexahedron[T]) Tetrahedra() [5]Tetrahedron[T] {
	var out [5]Tetrahedron[T]
	for i, tet := range hexTets {
		out[i] = Tetrahedron[T]{h[tet[0]], h[tet[1]], h[tet[2]], h[tet[3]]}
	}
	return out
}

func (h Hexahedron[T]) Transform(aff Affine3[T]) Hexahedron[T] {
	var out Hexahedron[T]
	for i, p := range h {
		out[i] = aff.TransformPoint(p)
	}
	return out
}
