package meshgeom

import (
	"math"
	"testing"
)

func TestRectAreaSign(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-8
	}

	r := Rect[float64]{0.0, 0.0, 10.0, 10.0}
	center := r.Center()
	if a := r.Area(); !approxEqual(a, 100) {
		t.Errorf("got area %v, want %v", a, 100.0)
	}
	if w := r.Winding(center); w != 1 {
		t.Errorf("got winding %v, want %v", w, 1)
	}

	p := r.Polygon()
	if ra, pa := r.Area(), p.SignedArea(); !approxEqual(ra, pa) {
		t.Errorf("expected r's and p's areas to be approximately equal, got %v and %v", ra, pa)
	}
	if rw, pw := r.Winding(center), p.Winding(center); rw != pw {
		t.Errorf("expected r's and p's winding numbers to be equal, got %v and %v", rw, pw)
	}

	rFlip := Rect[float64]{0.0, 10.0, 10.0, 0.0}
	if a := rFlip.Area(); !approxEqual(a, -100) {
		t.Errorf("got area %v, want %v", a, -100.0)
	}
	if w := rFlip.Winding(Pt2(5.0, 5)); w != -1 {
		t.Errorf("got winding %v, want %v", w, -1)
	}

	pFlip := rFlip.Polygon()
	if ra, pa := rFlip.Area(), pFlip.SignedArea(); !approxEqual(ra, pa) {
		t.Errorf("expected r's and p's areas to be approximately equal, got %v and %v", ra, pa)
	}
	if rw, pw := rFlip.Winding(center), pFlip.Winding(center); rw != pw {
		t.Errorf("expected r's and p's winding numbers to be equal, got %v and %v", rw, pw)
	}
}

func TestRectUnion(t *testing.T) {
	r := NewRectFromPoints(Pt2(3.0, 4), Pt2(1.0, 2))
	diff(t, Rect[float64]{1, 2, 3, 4}, r)
	diff(t, Rect[float64]{0, 2, 3, 7}, r.UnionPoint(Pt2(0.0, 7)))
	diff(t, Rect[float64]{1, -1, 5, 4}, r.Union(Rect[float64]{2, -1, 5, 0}))
	diff(t, Rect[float64]{0, 1, 4, 5}, r.Inflate(1, 1))
	if !r.Contains(Pt2(1.0, 4)) || r.Contains(Pt2(0.0, 3)) {
		t.Error("wrong containment")
	}
	if !r.Intersects(Rect[float64]{3, 4, 5, 5}) || r.Intersects(Rect[float64]{4, 0, 5, 1}) {
		t.Error("wrong intersection")
	}
}
