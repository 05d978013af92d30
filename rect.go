package meshgeom

import "fmt"

// Rect is an axis-aligned rectangle in 2D.
type Rect[T Float] struct {
	X0, Y0 T
	X1, Y1 T
}

var _ ClosedShape[float64] = Rect[float64]{}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints[T Float](p0, p1 Point2[T]) Rect[T] {
	return Rect[T]{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("[%g, %g]×[%g, %g]", r.X0, r.X1, r.Y0, r.Y1)
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect[T]) Abs() Rect[T] {
	return Rect[T]{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect[T]) Width() T {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect[T]) Height() T {
	return r.Y1 - r.Y0
}

func (r Rect[T]) Center() Point2[T] {
	return Point2[T]{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Contains reports whether pt lies inside the rectangle or on its boundary.
func (r Rect[T]) Contains(pt Point2[T]) bool {
	return pt.X >= r.X0 && pt.X <= r.X1 && pt.Y >= r.Y0 && pt.Y <= r.Y1
}

// Union returns the smallest rectangle enclosing both rectangles.
func (r Rect[T]) Union(o Rect[T]) Rect[T] {
	return Rect[T]{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint returns the smallest rectangle enclosing r and pt.
func (r Rect[T]) UnionPoint(pt Point2[T]) Rect[T] {
	return Rect[T]{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Intersects reports whether the two rectangles share at least one point.
func (r Rect[T]) Intersects(o Rect[T]) bool {
	return !(r.X1 < o.X0 || r.X0 > o.X1 || r.Y1 < o.Y0 || r.Y0 > o.Y1)
}

// Inflate returns a new rectangle that is expanded by width and height in
// each direction.
func (r Rect[T]) Inflate(width, height T) Rect[T] {
	r = r.Abs()
	return Rect[T]{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

func (r Rect[T]) Area() T {
	return r.Width() * r.Height()
}

func (r Rect[T]) BoundingBox() Rect[T] {
	return r
}

// Winding returns 1 for points strictly inside a rectangle of positive area,
// −1 for points strictly inside one of negative area, and 0 otherwise.
func (r Rect[T]) Winding(pt Point2[T]) int {
	xmin := min(r.X0, r.X1)
	xmax := max(r.X0, r.X1)
	ymin := min(r.Y0, r.Y1)
	ymax := max(r.Y0, r.Y1)
	if pt.X > xmin && pt.X < xmax && pt.Y > ymin && pt.Y < ymax {
		if (r.X1 > r.X0) != (r.Y1 > r.Y0) {
			return -1
		}
		return 1
	}
	return 0
}

// Polygon returns the rectangle's corners as a counter-clockwise (y-up)
// polygon for a rectangle with non-negative width and height.
func (r Rect[T]) Polygon() Polygon[T] {
	return Polygon[T]{
		{r.X0, r.Y0},
		{r.X1, r.Y0},
		{r.X1, r.Y1},
		{r.X0, r.Y1},
	}
}

func (r Rect[T]) IsNaN() bool {
	return isNaN(r.X0) || isNaN(r.Y0) || isNaN(r.X1) || isNaN(r.Y1)
}
