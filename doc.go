// Package meshgeom provides the geometric primitives and routines that sit at
// the bottom of mesh-processing and finite-element tooling: element metrics,
// normals, containment and distance queries, ray picking, and the inverse
// isoparametric mapping of bilinear quadrilaterals.
//
// All types and functions are generic over [Float], so that the same code
// serves float32 data read from mesh files and float64 data used in solvers.
// Every routine is a pure function of its arguments and is safe for concurrent
// use.
//
// # Features
//
// We provide the following notable features:
//
//   - Triangle, quadrilateral and polygon areas and centroids (see
//     [TriangleArea], [QuadArea], [PolygonArea], [PolygonCentroid])
//   - Tetrahedron, hexahedron and prism volumes (see [TetrahedronVolume],
//     [HexahedronVolume], [PrismVolume])
//   - Face normals of arbitrary planar polygons (see [FaceNormal],
//     [NewellNormal])
//   - Winding-number point-in-polygon tests (see [PointInPolygon])
//   - Distances from points to segments, triangles and polygons (see
//     [PointSegmentDistance], [PointTriangleDistance], [PointPolygonDistance])
//   - Möller–Trumbore ray-triangle intersection (see [RayTriangleIntersection])
//   - Newton inversion of the bilinear quadrilateral map (see
//     [InvertQuadMapping])
//   - Affine transformations and bounding boxes (see [Affine3], [AABB], [Rect])
//
// The free functions operate on bare points and slices. Thin element types
// such as [Triangle], [Tetrahedron], [Hexahedron], [Prism], [Polygon] and
// [BilinearQuad] wrap them for callers that prefer methods; [ClosedShape]
// and [Solid] describe what the planar and volumetric elements have in
// common.
//
// # Conventions
//
// 2D polygons are closed implicitly: the last vertex connects back to the
// first, and the first vertex must not be repeated. Counter-clockwise
// polygons have positive signed area in a y-up coordinate system.
//
// Hexahedron corners follow the ordering documented on [Hexahedron].
// Bilinear quadrilateral corners sit at the reference coordinates (−1, −1),
// (1, −1), (1, 1) and (−1, 1), in that order.
//
// # Error handling
//
// Functions that need at least three polygon vertices panic when given fewer,
// which is a programming error. Degenerate but well-formed input, such as
// zero-area polygons or zero-length segments, does not panic; the resulting
// NaN or infinity propagates to the caller the way IEEE arithmetic dictates.
// Results that may legitimately be absent, such as a ray missing a triangle
// or a Newton solve that does not converge, are reported with an additional
// boolean.
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to receive debug records
// about failed numerical solves.
//
// # Meshes from signed distance functions
//
// The sdfxmesh subpackage meshes solids described by signed distance
// functions and measures the resulting triangle soup with this package.
package meshgeom
