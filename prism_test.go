package meshgeom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPrism(t *testing.T) {
	hex := regularHexagon(1)
	approx := cmpopts.EquateApprox(0, 1e-9)

	for _, h := range []float64{0, 0.5, 2, 10} {
		pr := Prism[float64]{Base: hex, Height: h, Z0: 1}
		diff(t, PolygonArea[float64](hex)*h, pr.Volume(), approx)
		assertNear(t, pr.Centroid(), Pt3(0.0, 0, 1+h/2), 1e-12)
	}

	pr := Prism[float64]{Base: hex, Height: 2}
	diff(t, 3*math.Sqrt(3), pr.Volume(), cmpopts.EquateApprox(0, 1e-6))
	bb := pr.BoundingBox()
	diff(t, 0.0, bb.Min.Z)
	diff(t, 2.0, bb.Max.Z)
	diff(t, 1.0, bb.Max.X, approx)
}

func TestPrismCentroidOffset(t *testing.T) {
	base := []Point2[float64]{{2, 2}, {4, 2}, {4, 4}, {2, 4}}
	assertNear(t, PrismCentroid(base, 3, -1), Pt3(3.0, 3, 0.5), 1e-12)
	diff(t, 12.0, PrismVolume(base, 3))
}
