package meshgeom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear[T Float](t *testing.T, p0, p1 Point3[T], epsilon T) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func assertNear2[T Float](t *testing.T, p0, p1 Point2[T], epsilon T) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

// unitCube returns the axis-aligned cube [0, s]³ in hexahedron order.
func unitCube(s float64) Hexahedron[float64] {
	return NewAABBFromPoints(Pt3(0.0, 0.0, 0.0), Pt3(s, s, s)).Corners()
}

// regularHexagon returns the regular hexagon of circumradius r centered at
// the origin, counter-clockwise.
func regularHexagon(r float64) Polygon[float64] {
	poly := make(Polygon[float64], 6)
	for i := range poly {
		a := float64(i) * math.Pi / 3
		poly[i] = Pt2(r*math.Cos(a), r*math.Sin(a))
	}
	return poly
}
