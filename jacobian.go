package meshgeom

import "log/slog"

// The bilinear quadrilateral maps the reference square [−1, 1]² onto a
// physical quadrilateral with corners a, b, c, d at the reference coordinates
// (−1, −1), (1, −1), (1, 1) and (−1, 1) respectively.

// QuadShapeFunctions returns the bilinear shape functions of the corners a,
// b, c, d evaluated at (xi, eta). They sum to one.
func QuadShapeFunctions[T Float](xi, eta T) [4]T {
	return [4]T{
		(1 - xi) * (1 - eta) * 0.25,
		(1 + xi) * (1 - eta) * 0.25,
		(1 + xi) * (1 + eta) * 0.25,
		(1 - xi) * (1 + eta) * 0.25,
	}
}

// QuadEval maps the reference coordinates (xi, eta) to the physical point of
// the bilinear quadrilateral (a, b, c, d).
func QuadEval[T Float](xi, eta T, a, b, c, d Point2[T]) Point2[T] {
	n := QuadShapeFunctions(xi, eta)
	return Point2[T]{
		X: n[0]*a.X + n[1]*b.X + n[2]*c.X + n[3]*d.X,
		Y: n[0]*a.Y + n[1]*b.Y + n[2]*c.Y + n[3]*d.Y,
	}
}

// Jacobian2x2 is the Jacobian of the bilinear map at a point, as built by
// [JacobianForQuad],
//
//	| M11 M12 |       | ∂x/∂ξ ∂x/∂η |
//	| M21 M22 | = 4 · | ∂y/∂ξ ∂y/∂η |
type Jacobian2x2[T Float] struct {
	M11, M12 T
	M21, M22 T
}

// JacobianForQuad returns the Jacobian of the bilinear quadrilateral
// (a, b, c, d) at (xi, eta), formed from the derivatives of the unscaled
// shape functions (1±ξ)(1±η) weighted by the corner coordinates. Every entry
// is four times the corresponding partial derivative of [QuadEval], and Det
// is sixteen times the area scale of the map.
func JacobianForQuad[T Float](xi, eta T, a, b, c, d Point2[T]) Jacobian2x2[T] {
	// ∂N/∂ξ and ∂N/∂η for corners a, b, c, d.
	dxi := [4]T{
		-(1 - eta),
		1 - eta,
		1 + eta,
		-(1 + eta),
	}
	deta := [4]T{
		-(1 - xi),
		-(1 + xi),
		1 + xi,
		1 - xi,
	}
	return Jacobian2x2[T]{
		M11: dxi[0]*a.X + dxi[1]*b.X + dxi[2]*c.X + dxi[3]*d.X,
		M12: deta[0]*a.X + deta[1]*b.X + deta[2]*c.X + deta[3]*d.X,
		M21: dxi[0]*a.Y + dxi[1]*b.Y + dxi[2]*c.Y + dxi[3]*d.Y,
		M22: deta[0]*a.Y + deta[1]*b.Y + deta[2]*c.Y + deta[3]*d.Y,
	}
}

// Det returns the determinant of the Jacobian. It is positive for
// counter-clockwise (y-up) quadrilaterals, negative for inverted ones, and
// near zero for degenerate ones.
func (j Jacobian2x2[T]) Det() T {
	return j.M11*j.M22 - j.M12*j.M21
}

// Inverse returns the inverse matrix. It reports false if the absolute value
// of the determinant is below the machine epsilon of T.
func (j Jacobian2x2[T]) Inverse() (Jacobian2x2[T], bool) {
	det := j.Det()
	if abs(det) < Epsilon[T]() {
		return Jacobian2x2[T]{}, false
	}
	inv := 1 / det
	return Jacobian2x2[T]{
		M11: j.M22 * inv,
		M12: -j.M12 * inv,
		M21: -j.M21 * inv,
		M22: j.M11 * inv,
	}, true
}

// Apply returns the matrix-vector product j·v.
func (j Jacobian2x2[T]) Apply(v Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: j.M11*v.X + j.M12*v.Y,
		Y: j.M21*v.X + j.M22*v.Y,
	}
}

// InvertQuadMapping finds the reference coordinates (ξ, η) that the bilinear
// quadrilateral (a, b, c, d) maps to the physical point p, using Newton's
// method starting from the caller's guess (xi, eta).
//
// Iteration stops successfully once both components of the residual
// x(ξ, η) − p are smaller than tol in absolute value. It fails if the
// Jacobian becomes singular or if maxIters iterations pass without
// convergence; no partial result is returned in either case.
//
// The step uses [JacobianForQuad] as is, which moves a quarter of the way to
// the Newton update, so the residual shrinks by about ¾ per iteration near
// the solution. There is no further damping or line search. Convergence is
// not guaranteed for points outside the quadrilateral or for strongly skewed
// or inverted elements.
func InvertQuadMapping[T Float](
	xi, eta T,
	p Point2[T],
	a, b, c, d Point2[T],
	tol T,
	maxIters int,
) (T, T, bool) {
	for i := range maxIters {
		r := QuadEval(xi, eta, a, b, c, d).Sub(p)
		if abs(r.X) < tol && abs(r.Y) < tol {
			return xi, eta, true
		}
		inv, ok := JacobianForQuad(xi, eta, a, b, c, d).Inverse()
		if !ok {
			Logger().Debug("singular quad jacobian",
				slog.Int("iteration", i),
				slog.Float64("xi", float64(xi)),
				slog.Float64("eta", float64(eta)))
			return 0, 0, false
		}
		step := inv.Apply(r)
		xi -= step.X
		eta -= step.Y
	}
	Logger().Debug("quad inverse mapping did not converge",
		slog.Int("iterations", maxIters),
		slog.Float64("x", float64(p.X)),
		slog.Float64("y", float64(p.Y)))
	return 0, 0, false
}

// BilinearQuad is a bilinear quadrilateral element with corners in the order
// documented on [QuadEval].
type BilinearQuad[T Float] [4]Point2[T]

// Eval maps reference coordinates to the physical point.
func (q BilinearQuad[T]) Eval(xi, eta T) Point2[T] {
	return QuadEval(xi, eta, q[0], q[1], q[2], q[3])
}

func (q BilinearQuad[T]) Jacobian(xi, eta T) Jacobian2x2[T] {
	return JacobianForQuad(xi, eta, q[0], q[1], q[2], q[3])
}

// Invert finds the reference coordinates of p. See [InvertQuadMapping].
func (q BilinearQuad[T]) Invert(p Point2[T], xi, eta, tol T, maxIters int) (T, T, bool) {
	return InvertQuadMapping(xi, eta, p, q[0], q[1], q[2], q[3], tol, maxIters)
}

// Area returns the area of the quadrilateral, ∫∫|det J| dξ dη, evaluated
// exactly with 2×2 Gauss quadrature for elements that are not inverted.
func (q BilinearQuad[T]) Area() T {
	// det J is bilinear in (ξ, η), so the rule is exact. Det carries a
	// factor of 16.
	g := T(0.5773502691896257) // 1/√3
	var sum T
	for _, xi := range [2]T{-g, g} {
		for _, eta := range [2]T{-g, g} {
			sum += q.Jacobian(xi, eta).Det()
		}
	}
	return abs(sum) / 16
}
