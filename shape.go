package meshgeom

// ClosedShape describes planar shapes with a closed outline, which thus have
// an area and can compute a point's [winding number].
//
// [winding number]: https://en.wikipedia.org/wiki/Winding_number
type ClosedShape[T Float] interface {
	// Area returns the area of the closed shape. [Polygon] reports the
	// absolute area and offers the signed one separately; [Rect] reports
	// Width × Height, which is negative for rectangles with flipped extents.
	Area() T

	// Winding returns the winding number of a point.
	//
	// The sign of the winding number is consistent with that of the signed
	// area, meaning it is +1 when the point is inside a positive area shape
	// and −1 when it is inside a negative area shape. Of course,
	// greater magnitude values are also possible when the shape is more
	// complex.
	Winding(pt Point2[T]) int

	// Contains reports whether a point is inside the shape.
	Contains(pt Point2[T]) bool

	// BoundingBox returns the smallest axis-aligned rectangle that encloses
	// the shape.
	BoundingBox() Rect[T]
}

// Solid describes closed volumes in 3D.
type Solid[T Float] interface {
	// Volume returns the non-negative volume enclosed by the solid.
	Volume() T
	// Centroid returns the solid's reference center. For solids whose
	// centroid is not the center of mass, the type documents which point is
	// returned.
	Centroid() Point3[T]
	// BoundingBox returns the smallest axis-aligned box that encloses the
	// solid.
	BoundingBox() AABB[T]
}

var (
	_ Solid[float64] = Tetrahedron[float64]{}
	_ Solid[float64] = Hexahedron[float64]{}
	_ Solid[float64] = Prism[float64]{}
)
