package marcher

import (
	"math"
	"testing"
)

func TestNewSierpinskiValidation(t *testing.T) {
	if _, err := NewSierpinski(0, 2, 1, 2.5); err == nil {
		t.Fatalf("zero iterations accepted")
	}
	if _, err := NewSierpinski(8, 1, 1, 2.5); err == nil {
		t.Fatalf("contraction factor <= 1 accepted")
	}
	if _, err := NewSierpinski(8, 2, 0, 2.5); err == nil {
		t.Fatalf("zero tetrahedron count accepted")
	}
	s, err := NewSierpinski(8, 2, 3, 2.5)
	if err != nil {
		t.Fatalf("valid parameters rejected: %v", err)
	}
	if len(s.Offsets) != 3 {
		t.Fatalf("offset count = %d, want 3", len(s.Offsets))
	}
	// offsets are centered on the X axis
	if s.Offsets[1] != (Vector3{0, 0, 0}) {
		t.Fatalf("middle offset not centered: %+v", s.Offsets[1])
	}
}

func TestTriangleDist(t *testing.T) {
	a := Vector3{0, 0, 0}
	b := Vector3{1, 0, 0}
	c := Vector3{0, 1, 0}
	// projection inside the triangle: plane distance
	if d := triangleDist(Vector3{0.2, 0.2, 0.5}, a, b, c); !nearly(d, 0.5, 1e-12) {
		t.Fatalf("interior distance = %.12g, want 0.5", d)
	}
	// beyond a vertex: vertex distance
	if d := triangleDist(Vector3{2, 0, 0}, a, b, c); !nearly(d, 1, 1e-12) {
		t.Fatalf("vertex distance = %.12g, want 1", d)
	}
	// beside an edge: clamped edge distance, never the plane distance (a
	// coplanar point past an edge is 1 away, not 0)
	if d := triangleDist(Vector3{0.5, -1, 0}, a, b, c); !nearly(d, 1, 1e-12) {
		t.Fatalf("edge distance = %.12g, want 1", d)
	}
	if d := triangleDist(Vector3{0.5, -1, 1}, a, b, c); !nearly(d, math.Sqrt2, 1e-12) {
		t.Fatalf("off-plane edge distance = %.12g, want sqrt(2)", d)
	}
	// on the triangle itself
	if d := triangleDist(Vector3{0.25, 0.25, 0}, a, b, c); !nearly(d, 0, 1e-12) {
		t.Fatalf("on-surface distance = %.12g, want 0", d)
	}
}

func TestSierpinskiCornerFixedPoint(t *testing.T) {
	s, _ := NewSierpinski(6, 2, 1, 2.5)
	// the base corners are fixed points of the fold, so the estimate there
	// is exactly zero no matter how many folds run
	for _, c := range tetraCorners {
		res := s.Evaluate(Point3{c.X, c.Y, c.Z})
		if !nearly(res.Dist, 0, 1e-9) {
			t.Fatalf("corner %+v estimate = %.12g, want 0", c, res.Dist)
		}
		if res.Material != 1 {
			t.Fatalf("corner material = %d, want 1", res.Material)
		}
		if res.Iterations != 6 {
			t.Fatalf("corner iterations = %d, want 6", res.Iterations)
		}
	}
}

func TestSierpinskiLowerBound(t *testing.T) {
	s, _ := NewSierpinski(6, 2, 1, 2.5)
	// the fractal keeps the base tetrahedron's edges, so from (10,0,0) the
	// true distance is 9 (to the edge midpoint (1,0,0)); the estimate must
	// be positive and never exceed it
	res := s.Evaluate(Point3{10, 0, 0})
	if res.Dist <= 0 || res.Dist > 9+1e-9 {
		t.Fatalf("far-point estimate out of range: %.12g", res.Dist)
	}
}

func TestSierpinskiUnionMaterials(t *testing.T) {
	s, _ := NewSierpinski(6, 2, 3, 2.5)
	// corners of the first and last tetrahedron map to their offset index
	left := s.Evaluate(Point3{-2.5 + 1, 1, 1})
	if !nearly(left.Dist, 0, 1e-9) || left.Material != 1 {
		t.Fatalf("left corner: dist=%.12g material=%d", left.Dist, left.Material)
	}
	right := s.Evaluate(Point3{2.5 + 1, 1, 1})
	if !nearly(right.Dist, 0, 1e-9) || right.Material != 3 {
		t.Fatalf("right corner: dist=%.12g material=%d", right.Dist, right.Material)
	}
}
