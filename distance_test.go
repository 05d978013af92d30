package meshgeom

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPointSegmentDistance(t *testing.T) {
	a := Pt2(0.0, 0)
	b := Pt2(4.0, 0)
	tests := []struct {
		p    Point2[float64]
		want float64
	}{
		{Pt2(2.0, 3), 3},
		{Pt2(2.0, -1), 1},
		{Pt2(-3.0, 4), 5}, // clamped to a
		{Pt2(7.0, -4), 5}, // clamped to b
		{Pt2(1.0, 0), 0},  // on the segment
		{Pt2(4.0, 0), 0},  // endpoint
	}
	for _, tt := range tests {
		diff(t, tt.want, PointSegmentDistance(tt.p, a, b), cmpopts.EquateApprox(0, 1e-12))
	}
}

// segmentDistanceR2 computes the same distance with r2 vector algebra.
func segmentDistanceR2(p, a, b r2.Point) float64 {
	d := b.Sub(a)
	t := p.Sub(a).Dot(d) / d.Dot(d)
	t = math.Max(0, math.Min(1, t))
	return p.Sub(a.Add(d.Mul(t))).Norm()
}

func TestPointSegmentDistanceAgainstR2(t *testing.T) {
	segs := [][2]Point2[float64]{
		{{-1, -1}, {3, 2}},
		{{0.5, 7}, {0.5, -7}},
		{{10, 10}, {11, 10.5}},
	}
	pts := []Point2[float64]{{0, 0}, {2, -3}, {10.5, 11}, {-4, 8}}
	for _, s := range segs {
		for _, p := range pts {
			want := segmentDistanceR2(r2.Point{X: p.X, Y: p.Y}, r2.Point{X: s[0].X, Y: s[0].Y}, r2.Point{X: s[1].X, Y: s[1].Y})
			diff(t, want, Segment[float64]{P0: s[0], P1: s[1]}.Distance(p), cmpopts.EquateApprox(0, 1e-12))
		}
	}
}

func TestPointSegmentDistanceDegenerate(t *testing.T) {
	a := Pt2(1.0, 1)
	if d := PointSegmentDistance(Pt2(3.0, 4), a, a); !math.IsNaN(d) {
		t.Errorf("got distance %v, want NaN", d)
	}
}

func TestSegment(t *testing.T) {
	s := Segment[float64]{P0: Pt2(0.0, 0), P1: Pt2(3.0, 4)}
	diff(t, 5.0, s.Length())
	diff(t, Pt2(1.5, 2), s.Eval(0.5))
	diff(t, 0.0, s.Nearest(Pt2(-1.0, -1)))
	diff(t, 1.0, s.Nearest(Pt2(10.0, 10)))
	diff(t, Segment[float64]{P0: Pt2(1.0, 1), P1: Pt2(4.0, 5)}, s.Translate(V2(1.0, 1)))
}

func TestPointTriangleDistance(t *testing.T) {
	a := Pt3(0.0, 0, 0)
	b := Pt3(1.0, 0, 0)
	c := Pt3(0.0, 1, 0)
	approx := cmpopts.EquateApprox(0, 1e-12)
	tests := []struct {
		p    Point3[float64]
		want float64
	}{
		{Pt3(0.25, 0.25, 0), 0},
		{Pt3(0.25, 0.25, 2), 2},
		{Pt3(0.25, 0.25, -3), 3},
		// in-plane part 1, out-of-plane part 1
		{Pt3(-1.0, 0.5, 1), math.Sqrt2},
		// beyond the hypotenuse
		{Pt3(1.0, 1, 0), math.Sqrt2 / 2},
		// beyond vertex b
		{Pt3(4.0, -4, 0), 5},
	}
	for _, tt := range tests {
		diff(t, tt.want, PointTriangleDistance(tt.p, a, b, c), approx)
		// Vertex order does not matter.
		diff(t, tt.want, PointTriangleDistance(tt.p, c, b, a), approx)
	}
}

func TestPointTriangleDistanceOffsetPlane(t *testing.T) {
	tri := Triangle[float64]{Pt3(0.0, 0, 5), Pt3(2.0, 0, 5), Pt3(0.0, 2, 5)}
	diff(t, 5.0, tri.Distance(Pt3(0.5, 0.5, 0)), cmpopts.EquateApprox(0, 1e-12))
	diff(t, 5.0, tri.Distance(Pt3(-3.0, -4, 5)), cmpopts.EquateApprox(0, 1e-12))
}

func TestPointPolygonDistance(t *testing.T) {
	square := Polygon[float64]{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, 0.0, square.Distance(Pt2(1.0, 1)))
	diff(t, 3.0, square.Distance(Pt2(5.0, 1)), approx)
	diff(t, 1.0, square.Distance(Pt2(1.0, -1)), approx)
	diff(t, 5.0, square.Distance(Pt2(-3.0, -4)), approx)
	// closing edge
	diff(t, 0.5, square.Distance(Pt2(-0.5, 1)), approx)

	// Inside the bounding box but outside the L.
	l := []Point2[float64]{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}}
	diff(t, 0.5, PointPolygonDistance(Pt2(1.5, 1.5), l), approx)
}
