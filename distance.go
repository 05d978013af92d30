package meshgeom

import "math"

// PointTriangleDistance returns the distance from p to the triangle
// (a, b, c).
//
// p is first projected onto the triangle's plane along the unit normal. The
// containment test and the in-plane edge distances are then evaluated on the
// xy coordinates of the triangle and of the projection. If the projection
// lies inside the triangle the result is the out-of-plane distance |d|,
// otherwise it is √(d² + m²), where m is the smallest xy distance from the
// projection to the triangle's edges.
//
// Dropping z is exact only for triangles parallel to the xy plane. For tilted
// triangles the in-plane part is measured in the xy projection, and
// triangles perpendicular to the xy plane are not supported. A triangle with
// a zero normal is not normalized and the projection leaves p in place.
func PointTriangleDistance[T Float](p, a, b, c Point3[T]) T {
	n := b.Sub(a).Cross(c.Sub(a))
	if l := n.Hypot(); l != 0 {
		n = n.Div(l)
	}
	d := p.Sub(a).Dot(n)
	proj := p.Translate(n.Mul(-d))

	tri := [3]Point2[T]{a.XY(), b.XY(), c.XY()}
	pt := proj.XY()
	if PointInPolygon(pt, tri[:]) {
		return abs(d)
	}
	m := min(
		PointSegmentDistance(pt, tri[0], tri[1]),
		PointSegmentDistance(pt, tri[1], tri[2]),
		PointSegmentDistance(pt, tri[2], tri[0]),
	)
	return sqrt(d*d + m*m)
}

// PointPolygonDistance returns the distance from p to the polygon poly. It is
// zero if p is inside the polygon according to [PointInPolygon], and
// otherwise the smallest distance from p to any edge, including the edge from
// the last vertex back to the first.
//
// Repeated consecutive vertices form zero-length edges and make the result
// NaN, see [PointSegmentDistance].
func PointPolygonDistance[T Float](p Point2[T], poly []Point2[T]) T {
	if PointInPolygon(p, poly) {
		return 0
	}
	best := T(math.Inf(1))
	for i, a := range poly {
		best = min(best, PointSegmentDistance(p, a, poly[(i+1)%len(poly)]))
	}
	return best
}
