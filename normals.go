package meshgeom

// FaceNormal returns the un-normalized normal of a planar polygon with the
// given vertices in order.
//
// For a triangle this is (v1−v0)×(v2−v0). For more vertices it accumulates
// the cross products of successive edge pairs, Σ (vᵢ₊₁−vᵢ)×(vᵢ₊₂−vᵢ), with
// indices taken around the closed polygon. For convex polygons the result
// points along the normal, but its magnitude is not twice the area; use
// [NewellNormal] for that. With fewer than three vertices the zero vector is
// returned.
func FaceNormal[T Float](verts []Point3[T]) Vec3[T] {
	switch n := len(verts); {
	case n == 3:
		return verts[1].Sub(verts[0]).Cross(verts[2].Sub(verts[0]))
	case n > 3:
		var nrm Vec3[T]
		for i, a := range verts {
			b := verts[(i+1)%n]
			c := verts[(i+2)%n]
			nrm = nrm.Add(b.Sub(a).Cross(c.Sub(a)))
		}
		return nrm
	default:
		return Vec3[T]{}
	}
}

// ProjectedArea returns half the magnitude of [FaceNormal]. For triangles
// this is the area.
func ProjectedArea[T Float](verts []Point3[T]) T {
	return FaceNormal(verts).Hypot() * 0.5
}

// NewellNormal returns the area vector of a planar polygon, Σ (vᵢ−v₀)×(vᵢ₊₁−v₀)
// over the closed polygon. Its magnitude is twice the area and it agrees with
// [FaceNormal] for triangles. With fewer than three vertices the zero vector
// is returned.
func NewellNormal[T Float](verts []Point3[T]) Vec3[T] {
	n := len(verts)
	if n < 3 {
		return Vec3[T]{}
	}
	var nrm Vec3[T]
	o := verts[0]
	for i, p := range verts {
		q := verts[(i+1)%n]
		nrm = nrm.Add(p.Sub(o).Cross(q.Sub(o)))
	}
	return nrm
}

// UnitNormal returns the normalized [NewellNormal]. Degenerate polygons
// produce a NaN vector.
func UnitNormal[T Float](verts []Point3[T]) Vec3[T] {
	return NewellNormal(verts).Normalize()
}
