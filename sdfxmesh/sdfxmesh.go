// Package sdfxmesh meshes solids described by signed distance functions from
// the [sdfx] library and measures the resulting triangle meshes with
// meshgeom.
//
// The volume and centroid of a closed, consistently oriented triangle mesh
// follow from the divergence theorem: every triangle spans a tetrahedron with
// a fixed reference point, and the signed volumes of these tetrahedra sum to
// the enclosed volume. Marching cubes produces such meshes for bounded
// solids.
//
// [sdfx]: https://github.com/deadsy/sdfx
package sdfxmesh

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"honnef.co/go/meshgeom"
)

// DefaultCells is a default marching cubes resolution, the number of cells
// along the longest side of a solid's bounding box.
const DefaultCells = 100

var (
	// ErrCells is returned for a marching cubes resolution that is not
	// positive.
	ErrCells = errors.New("sdfxmesh: number of cells must be positive")
	// ErrEmptyMesh is returned when there are no triangles to measure.
	ErrEmptyMesh = errors.New("sdfxmesh: empty mesh")
)

// FromV3 converts an sdfx vector to a point.
func FromV3(v v3.Vec) meshgeom.Point3[float64] {
	return meshgeom.Pt3(v.X, v.Y, v.Z)
}

// ToV3 converts a point to an sdfx vector.
func ToV3(p meshgeom.Point3[float64]) v3.Vec {
	return v3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// Box returns a box with the given side lengths, centered at the origin.
func Box(x, y, z float64) (sdf.SDF3, error) {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfxmesh: box %gx%gx%g: %w", x, y, z, err)
	}
	return s, nil
}

// Cylinder returns a cylinder along the z axis, centered at the origin.
func Cylinder(height, radius float64) (sdf.SDF3, error) {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfxmesh: cylinder h=%g r=%g: %w", height, radius, err)
	}
	return s, nil
}

// Translate moves s by v.
func Translate(s sdf.SDF3, v meshgeom.Vec3[float64]) sdf.SDF3 {
	return sdf.Transform3D(s, sdf.Translate3d(v3.Vec{X: v.X, Y: v.Y, Z: v.Z}))
}

// Bounds returns the bounding box sdfx reports for s. It encloses the solid
// but need not be tight.
func Bounds(s sdf.SDF3) meshgeom.AABB[float64] {
	bb := s.BoundingBox()
	return meshgeom.AABB[float64]{Min: FromV3(bb.Min), Max: FromV3(bb.Max)}
}

// Triangles meshes s with uniform marching cubes, using the given number of
// cells along the longest side of its bounding box.
func Triangles(s sdf.SDF3, cells int) []meshgeom.Triangle[float64] {
	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(s, renderer)

	out := make([]meshgeom.Triangle[float64], 0, len(triangles))
	for _, tri := range triangles {
		out = append(out, meshgeom.Triangle[float64]{
			A: FromV3(tri[0]),
			B: FromV3(tri[1]),
			C: FromV3(tri[2]),
		})
	}
	return out
}

// Stats describes a closed triangle mesh.
type Stats struct {
	// Number of triangles.
	Triangles int
	// Sum of the triangle areas.
	SurfaceArea float64
	// Enclosed volume.
	Volume float64
	// Center of mass of the enclosed volume, assuming uniform density.
	Centroid meshgeom.Point3[float64]
	// Bounds of the mesh's vertices.
	Bounds meshgeom.AABB[float64]
}

// Measure meshes s with [Triangles] and measures the result with
// [MeasureTriangles].
func Measure(s sdf.SDF3, cells int) (Stats, error) {
	if cells <= 0 {
		return Stats{}, fmt.Errorf("%w: got %d", ErrCells, cells)
	}
	tris := Triangles(s, cells)
	meshgeom.Logger().Debug("meshed solid",
		slog.Int("cells", cells),
		slog.Int("triangles", len(tris)))
	st, err := MeasureTriangles(tris)
	if err != nil {
		return Stats{}, fmt.Errorf("measuring solid with %d cells: %w", cells, err)
	}
	return st, nil
}

// partial holds the sums of one worker.
type partial struct {
	area   float64
	volume float64
	// volume-weighted tetrahedron centroids
	moment meshgeom.Vec3[float64]
	bounds meshgeom.AABB[float64]
}

// MeasureTriangles measures a closed triangle mesh whose triangles are
// oriented counter-clockwise when seen from outside. Inconsistent
// orientation or holes make the volume and centroid meaningless; the surface
// area and bounds are still correct. A mesh that encloses no volume has a
// NaN centroid.
//
// The work is split over GOMAXPROCS goroutines. Partial sums are combined in
// a fixed order, so the result does not depend on scheduling.
func MeasureTriangles(tris []meshgeom.Triangle[float64]) (Stats, error) {
	if len(tris) == 0 {
		return Stats{}, ErrEmptyMesh
	}

	// Apex of all tetrahedra
	ref := tris[0].A

	workers := min(runtime.GOMAXPROCS(0), len(tris))
	chunk := (len(tris) + workers - 1) / workers
	parts := make([]partial, workers)

	var wg sync.WaitGroup
	for w := range workers {
		lo := w * chunk
		hi := min(lo+chunk, len(tris))
		if lo >= hi {
			parts[w].bounds = meshgeom.EmptyAABB[float64]()
			continue
		}
		wg.Add(1)
		go func(p *partial, tris []meshgeom.Triangle[float64]) {
			defer wg.Done()
			p.bounds = meshgeom.EmptyAABB[float64]()
			for _, tri := range tris {
				p.area += tri.Area()
				v := meshgeom.SignedTetrahedronVolume(ref, tri.A, tri.B, tri.C)
				c := meshgeom.TetrahedronCentroid(ref, tri.A, tri.B, tri.C)
				p.volume += v
				p.moment = p.moment.Add(c.Sub(ref).Mul(v))
				p.bounds = p.bounds.Union(tri.BoundingBox())
			}
		}(&parts[w], tris[lo:hi])
	}
	wg.Wait()

	var total partial
	total.bounds = meshgeom.EmptyAABB[float64]()
	for _, p := range parts {
		total.area += p.area
		total.volume += p.volume
		total.moment = total.moment.Add(p.moment)
		total.bounds = total.bounds.Union(p.bounds)
	}

	st := Stats{
		Triangles:   len(tris),
		SurfaceArea: total.area,
		Volume:      total.volume,
		Centroid:    ref.Translate(total.moment.Div(total.volume)),
		Bounds:      total.bounds,
	}
	if st.Volume < 0 {
		// Clockwise mesh
		st.Volume = -st.Volume
	}
	meshgeom.Logger().Debug("measured mesh",
		slog.Int("triangles", st.Triangles),
		slog.Int("workers", workers),
		slog.Float64("area", st.SurfaceArea),
		slog.Float64("volume", st.Volume))
	return st, nil
}
