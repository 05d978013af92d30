package meshgeom

import "math"

// AABB is an axis-aligned bounding box in 3D. Min and Max are inclusive.
type AABB[T Float] struct {
	Min, Max Point3[T]
}

// EmptyAABB returns a box that contains nothing and that acts as the identity
// for [AABB.Union] and [AABB.UnionPoint]: Min is +∞ and Max is −∞.
func EmptyAABB[T Float]() AABB[T] {
	inf := T(math.Inf(1))
	return AABB[T]{
		Min: Point3[T]{inf, inf, inf},
		Max: Point3[T]{-inf, -inf, -inf},
	}
}

// NewAABBFromPoints returns the smallest box containing all pts. With no
// points it returns [EmptyAABB].
func NewAABBFromPoints[T Float](pts ...Point3[T]) AABB[T] {
	bb := EmptyAABB[T]()
	for _, p := range pts {
		bb = bb.UnionPoint(p)
	}
	return bb
}

// UnionPoint returns the smallest box containing both bb and p.
func (bb AABB[T]) UnionPoint(p Point3[T]) AABB[T] {
	return AABB[T]{
		Min: Point3[T]{min(bb.Min.X, p.X), min(bb.Min.Y, p.Y), min(bb.Min.Z, p.Z)},
		Max: Point3[T]{max(bb.Max.X, p.X), max(bb.Max.Y, p.Y), max(bb.Max.Z, p.Z)},
	}
}

// Union returns the smallest box containing both boxes.
func (bb AABB[T]) Union(o AABB[T]) AABB[T] {
	if o.IsEmpty() {
		return bb
	}
	return bb.UnionPoint(o.Min).UnionPoint(o.Max)
}

// IsEmpty reports whether the box contains no points.
func (bb AABB[T]) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y || bb.Min.Z > bb.Max.Z
}

// Contains reports whether p lies inside the box or on its boundary.
func (bb AABB[T]) Contains(p Point3[T]) bool {
	return p.X >= bb.Min.X && p.X <= bb.Max.X &&
		p.Y >= bb.Min.Y && p.Y <= bb.Max.Y &&
		p.Z >= bb.Min.Z && p.Z <= bb.Max.Z
}

// Intersects reports whether the two boxes share at least one point. Boxes
// that only touch intersect.
func (bb AABB[T]) Intersects(o AABB[T]) bool {
	return !(bb.Max.X < o.Min.X || bb.Min.X > o.Max.X ||
		bb.Max.Y < o.Min.Y || bb.Min.Y > o.Max.Y ||
		bb.Max.Z < o.Min.Z || bb.Min.Z > o.Max.Z)
}

// Size returns the extents of the box along each axis.
func (bb AABB[T]) Size() Vec3[T] {
	return bb.Max.Sub(bb.Min)
}

// Center returns the center point of the box.
func (bb AABB[T]) Center() Point3[T] {
	return bb.Min.Midpoint(bb.Max)
}

// Volume returns the volume of the box, or zero if it is empty.
func (bb AABB[T]) Volume() T {
	if bb.IsEmpty() {
		return 0
	}
	s := bb.Size()
	return s.X * s.Y * s.Z
}

// Corners returns the eight corners of the box in [Hexahedron] order.
func (bb AABB[T]) Corners() Hexahedron[T] {
	lo, hi := bb.Min, bb.Max
	return Hexahedron[T]{
		{lo.X, lo.Y, lo.Z},
		{hi.X, lo.Y, lo.Z},
		{hi.X, hi.Y, lo.Z},
		{lo.X, hi.Y, lo.Z},
		{lo.X, lo.Y, hi.Z},
		{hi.X, lo.Y, hi.Z},
		{hi.X, hi.Y, hi.Z},
		{lo.X, hi.Y, hi.Z},
	}
}
