package meshgeom_test

import (
	"fmt"
	"math"

	"honnef.co/go/meshgeom"
)

// hexagon returns a regular hexagon with circumradius r, counter-clockwise.
func hexagon(r float64) meshgeom.Polygon[float64] {
	poly := make(meshgeom.Polygon[float64], 6)
	for i := range poly {
		a := float64(i) * math.Pi / 3
		poly[i] = meshgeom.Pt2(r*math.Cos(a), r*math.Sin(a))
	}
	return poly
}

// This example computes the volumes of the cells of a small mixed mesh.
func Example_cellVolumes() {
	tet := meshgeom.Tetrahedron[float64]{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
	}
	hex := meshgeom.Hexahedron[float64]{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	prism := meshgeom.Prism[float64]{Base: hexagon(1), Height: 2}

	cells := []struct {
		name string
		cell meshgeom.Solid[float64]
	}{
		{"tetrahedron", tet},
		{"hexahedron", hex},
		{"prism", prism},
	}
	var total float64
	for _, c := range cells {
		v := c.cell.Volume()
		total += v
		fmt.Printf("%-12s %.4f\n", c.name, v)
	}
	fmt.Printf("%-12s %.4f\n", "total", total)

	// Output:
	// tetrahedron  0.1667
	// hexahedron   1.0000
	// prism        5.1962
	// total        6.3628
}

// This example extrudes a hexagonal face into a prism.
func ExamplePrism() {
	base := hexagon(1)
	fmt.Printf("base area: %.4f\n", base.Area())
	fmt.Printf("perimeter: %.4f\n", base.Perimeter())

	prism := meshgeom.Prism[float64]{Base: base, Height: 3}
	fmt.Printf("volume: %.4f\n", prism.Volume())
	fmt.Printf("centroid z: %.4f\n", prism.Centroid().Z)

	// Output:
	// base area: 2.5981
	// perimeter: 6.0000
	// volume: 7.7942
	// centroid z: 1.5000
}

func ExampleInvertQuadMapping() {
	a := meshgeom.Pt2(0.0, 0)
	b := meshgeom.Pt2(1.0, 0)
	c := meshgeom.Pt2(1.0, 1)
	d := meshgeom.Pt2(0.0, 1)
	p := meshgeom.Pt2(0.3, 0.7)

	xi, eta, ok := meshgeom.InvertQuadMapping(0, 0, p, a, b, c, d,
		meshgeom.DefaultTolerance, meshgeom.DefaultMaxIterations)
	fmt.Printf("ξ = %.4f, η = %.4f, converged: %t\n", xi, eta, ok)

	// Output:
	// ξ = -0.4000, η = 0.4000, converged: true
}

func ExampleRayTriangleIntersection() {
	ray := meshgeom.Ray[float64]{
		Origin: meshgeom.Pt3(0.25, 0.25, 1),
		Dir:    meshgeom.V3(0.0, 0, -1),
	}
	a := meshgeom.Pt3(0.0, 0, 0)
	b := meshgeom.Pt3(1.0, 0, 0)
	c := meshgeom.Pt3(0.0, 1, 0)

	if hit, ok := meshgeom.RayTriangleIntersection(ray, a, b, c); ok {
		fmt.Printf("hit at t=%.2f (u=%.2f, v=%.2f): %s\n", hit.T, hit.U, hit.V, ray.At(hit.T))
	}
	ray.Origin = meshgeom.Pt3(2.0, 2, 1)
	if _, ok := meshgeom.RayTriangleIntersection(ray, a, b, c); !ok {
		fmt.Println("miss")
	}

	// Output:
	// hit at t=1.00 (u=0.25, v=0.25): (0.25, 0.25, 0)
	// miss
}

func ExamplePointInPolygon() {
	square := []meshgeom.Point2[float64]{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	fmt.Println(meshgeom.PointInPolygon(meshgeom.Pt2(0.5, 0.5), square))
	fmt.Println(meshgeom.PointInPolygon(meshgeom.Pt2(1.5, 0.5), square))
	fmt.Println(meshgeom.PointPolygonDistance(meshgeom.Pt2(1.5, 0.5), square))

	// Output:
	// true
	// false
	// 0.5
}
