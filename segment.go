package meshgeom

// Segment represents a 2D line segment.
type Segment[T Float] struct {
	// The segment's start point.
	P0 Point2[T]
	// The segment's end point.
	P1 Point2[T]
}

// Length returns the length of the segment.
func (s Segment[T]) Length() T {
	return s.P1.Sub(s.P0).Hypot()
}

func (s Segment[T]) Eval(t T) Point2[T] {
	return s.P0.Lerp(s.P1, t)
}

// Nearest returns the parameter t ∈ [0, 1] of the point on the segment
// closest to pt. See [PointSegmentDistance] for degenerate segments.
func (s Segment[T]) Nearest(pt Point2[T]) T {
	d := s.P1.Sub(s.P0)
	t := pt.Sub(s.P0).Dot(d) / d.Dot(d)
	return min(max(t, 0), 1)
}

// Distance returns the distance from pt to the segment.
func (s Segment[T]) Distance(pt Point2[T]) T {
	return pt.Distance(s.Eval(s.Nearest(pt)))
}

func (s Segment[T]) Translate(v Vec2[T]) Segment[T] {
	return Segment[T]{
		P0: s.P0.Translate(v),
		P1: s.P1.Translate(v),
	}
}

func (s Segment[T]) IsNaN() bool {
	return s.P0.IsNaN() || s.P1.IsNaN()
}

// PointSegmentDistance returns the distance from p to the segment [a, b]. The
// projection of p onto the line through a and b is clamped to the segment.
//
// A zero-length segment (a == b) is not supported: the projection divides by
// the squared length and the result is NaN.
func PointSegmentDistance[T Float](p, a, b Point2[T]) T {
	return Segment[T]{P0: a, P1: b}.Distance(p)
}
