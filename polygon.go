package meshgeom

// PolygonSignedArea returns the signed area of a simple planar polygon using
// the shoelace formula. The polygon is closed implicitly; the first vertex
// must not be repeated at the end. The area is positive when the vertices
// wind counter-clockwise in a y-up coordinate system.
//
// It panics if verts has fewer than 3 vertices.
func PolygonSignedArea[T Float](verts []Point2[T]) T {
	mustPolygon(verts)
	var sum T
	n := len(verts)
	for i, a := range verts {
		b := verts[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum * 0.5
}

// PolygonArea returns the area of a simple planar polygon using the shoelace
// formula. It is correct for convex and non-convex polygons of either winding
// direction.
//
// It panics if verts has fewer than 3 vertices.
func PolygonArea[T Float](verts []Point2[T]) T {
	return abs(PolygonSignedArea(verts))
}

// PolygonCentroid returns the centroid of a simple planar polygon,
//
//	Cx = 1/(6A) Σ (xᵢ + xᵢ₊₁)(xᵢyᵢ₊₁ − xᵢ₊₁yᵢ)
//	Cy = 1/(6A) Σ (yᵢ + yᵢ₊₁)(xᵢyᵢ₊₁ − xᵢ₊₁yᵢ)
//
// where A is the signed area. A polygon with zero signed area (collinear or
// self-cancelling vertices) divides by zero and yields infinite or NaN
// coordinates; callers that may pass such polygons must check the area first.
//
// It panics if verts has fewer than 3 vertices.
func PolygonCentroid[T Float](verts []Point2[T]) Point2[T] {
	mustPolygon(verts)
	var a2, cx, cy T
	n := len(verts)
	for i, p := range verts {
		q := verts[(i+1)%n]
		cross := p.X*q.Y - q.X*p.Y
		a2 += cross
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	}
	f := 1 / (6 * (a2 * 0.5))
	return Point2[T]{X: cx * f, Y: cy * f}
}

func mustPolygon[T Float](verts []Point2[T]) {
	if len(verts) < 3 {
		panic("polygon needs at least 3 vertices")
	}
}

// Winding returns the winding number of pt with respect to the closed polygon
// poly. Edges wrap around from the last vertex to the first.
//
// Each edge is treated as half-open in y: an edge crosses upward when its
// start has y ≤ pt.Y and its end has y > pt.Y, and downward in the opposite
// case. An upward crossing with pt strictly left of the edge counts +1, a
// downward crossing with pt strictly right counts −1. Vertices shared by two
// edges are therefore never counted twice, but points lying exactly on an
// edge or vertex may be classified either way.
func Winding[T Float](pt Point2[T], poly []Point2[T]) int {
	var w int
	n := len(poly)
	for i, p1 := range poly {
		p2 := poly[(i+1)%n]
		if p1.Y <= pt.Y {
			if p2.Y > pt.Y && isLeft(p1, p2, pt) > 0 {
				w++
			}
		} else {
			if p2.Y <= pt.Y && isLeft(p1, p2, pt) < 0 {
				w--
			}
		}
	}
	return w
}

// isLeft is positive when c lies left of the directed line a→b, negative when
// right and zero when the three points are collinear.
func isLeft[T Float](a, b, c Point2[T]) T {
	return b.Sub(a).Cross(c.Sub(a))
}

// PointInPolygon reports whether pt lies inside poly, that is whether its
// winding number is non-zero. See [Winding] for boundary behavior.
func PointInPolygon[T Float](pt Point2[T], poly []Point2[T]) bool {
	return Winding[T](pt, poly) != 0
}

// Polygon is a simple planar polygon. The first vertex is not repeated at the
// end.
type Polygon[T Float] []Point2[T]

var _ ClosedShape[float64] = Polygon[float64]{}

// Area returns the polygon's unsigned area.
func (poly Polygon[T]) Area() T { return PolygonArea[T](poly) }

// SignedArea returns the polygon's signed area.
func (poly Polygon[T]) SignedArea() T { return PolygonSignedArea[T](poly) }

func (poly Polygon[T]) Centroid() Point2[T] { return PolygonCentroid[T](poly) }

func (poly Polygon[T]) Winding(pt Point2[T]) int { return Winding[T](pt, poly) }

// Contains implements ClosedShape.
func (poly Polygon[T]) Contains(pt Point2[T]) bool { return PointInPolygon[T](pt, poly) }

// Distance returns the distance from pt to the polygon, which is zero for
// points inside it. See [PointPolygonDistance].
func (poly Polygon[T]) Distance(pt Point2[T]) T { return PointPolygonDistance[T](pt, poly) }

// Perimeter returns the length of the polygon's boundary, including the
// closing edge.
func (poly Polygon[T]) Perimeter() T {
	var sum T
	for i, p := range poly {
		sum += p.Distance(poly[(i+1)%len(poly)])
	}
	return sum
}

func (poly Polygon[T]) BoundingBox() Rect[T] {
	if len(poly) == 0 {
		return Rect[T]{}
	}
	r := NewRectFromPoints(poly[0], poly[0])
	for _, p := range poly[1:] {
		r = r.UnionPoint(p)
	}
	return r
}

// Edges returns the polygon's edges, including the closing edge from the
// last vertex to the first.
func (poly Polygon[T]) Edges() []Segment[T] {
	out := make([]Segment[T], len(poly))
	for i, p := range poly {
		out[i] = Segment[T]{P0: p, P1: poly[(i+1)%len(poly)]}
	}
	return out
}

// Translate returns the polygon moved by v.
func (poly Polygon[T]) Translate(v Vec2[T]) Polygon[T] {
	out := make(Polygon[T], len(poly))
	for i, p := range poly {
		out[i] = p.Translate(v)
	}
	return out
}
