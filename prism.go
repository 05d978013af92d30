package meshgeom

// PrismVolume returns the volume of a straight prism obtained by extruding
// the polygon base along z by height.
//
// It panics if base has fewer than 3 vertices.
func PrismVolume[T Float](base []Point2[T], height T) T {
	return PolygonArea(base) * height
}

// PrismCentroid returns the centroid of a straight prism whose base polygon
// lies in the plane z = z0 and is extruded uniformly by height. The x and y
// coordinates are those of the base centroid, z is z0 + height/2.
//
// It panics if base has fewer than 3 vertices. A base with zero signed area
// produces NaN or infinite x and y, see [PolygonCentroid].
func PrismCentroid[T Float](base []Point2[T], height, z0 T) Point3[T] {
	c := PolygonCentroid(base)
	return Point3[T]{X: c.X, Y: c.Y, Z: z0 + height*0.5}
}

// Prism is a straight extrusion of Base from Z0 to Z0+Height.
type Prism[T Float] struct {
	Base   Polygon[T]
	Height T
	Z0     T
}

func (pr Prism[T]) Volume() T {
	return PrismVolume[T](pr.Base, pr.Height)
}

func (pr Prism[T]) Centroid() Point3[T] {
	return PrismCentroid[T](pr.Base, pr.Height, pr.Z0)
}

func (pr Prism[T]) BoundingBox() AABB[T] {
	r := pr.Base.BoundingBox()
	return NewAABBFromPoints(
		Pt3(r.X0, r.Y0, pr.Z0),
		Pt3(r.X1, r.Y1, pr.Z0+pr.Height),
	)
}
