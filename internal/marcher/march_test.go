package marcher

import "testing"

// constField always reports the same distance: a broken estimator that can
// neither hit nor escape. Only the step cap stops it.
type constField struct {
	d Real
}

func (c constField) Evaluate(Point3) DEResult { return DEResult{Dist: c.d} }

// constHypField is the hyperbolic twin.
type constHypField struct {
	d Real
}

func (c constHypField) Evaluate(Vec4) DEResult { return DEResult{Dist: c.d} }

func TestMarchHitsUnitSphere(t *testing.T) {
	f := &SphereScene{Spheres: []Sphere{{Center: Point3{0, 0, 0}, Radius: 1, Material: 1}}}
	cam, err := NewCamera(Point3{0, 0, 5}, Point3{0, 0, 0}, Vector3{0, 1, 0}, 1, 1)
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	cam.MinDist = 1e-4
	cam.MaxDist = 100
	cam.MaxSteps = 256

	res := March(f, cam.Ray(0, 0), cam)
	if res.State != Hit {
		t.Fatalf("state = %v, want hit", res.State)
	}
	// exact sphere distance closes the 4-unit gap in one step
	if !nearly(res.Dist, 4, 1e-9) {
		t.Fatalf("hit distance = %.12g, want 4", res.Dist)
	}
	if res.DE.Material != 1 {
		t.Fatalf("hit material = %d, want 1", res.DE.Material)
	}
	n := Normal(f, res.Point, NormalEps)
	if !nearly(n.X, 0, 1e-9) || !nearly(n.Y, 0, 1e-9) || !nearly(n.Z, 1, 1e-9) {
		t.Fatalf("normal = %+v, want (0,0,1)", n)
	}
}

func TestMarchMiss(t *testing.T) {
	f := &SphereScene{Spheres: []Sphere{{Center: Point3{0, 0, 0}, Radius: 1, Material: 1}}}
	cam := &Camera{MaxSteps: 256, MinDist: 1e-4, MaxDist: 100}
	r := Ray{Origin: Point3{0, 0, 5}, Dir: Vector3{0, 1, 0}}
	res := March(f, r, cam)
	if res.State != Miss {
		t.Fatalf("state = %v, want miss", res.State)
	}
	if res.Dist <= cam.MaxDist {
		t.Fatalf("miss reported before exceeding the far plane: %.6g", res.Dist)
	}
}

func TestMarchTimeout(t *testing.T) {
	cam := &Camera{MaxSteps: 256, MinDist: 1e-4, MaxDist: 100}
	r := Ray{Origin: Point3{0, 0, 0}, Dir: Vector3{0, 0, -1}}
	res := March(constField{d: 1e-3}, r, cam)
	if res.State != Timeout {
		t.Fatalf("state = %v, want timeout", res.State)
	}
	if res.Steps != 256 {
		t.Fatalf("steps = %d, want 256", res.Steps)
	}
}

func TestHypMarchHit(t *testing.T) {
	center := Geodesic(HypOrigin(), Vec4{0, 0, -1, 0}, 3)
	f := &HypScene{Spheres: []HypSphere{{Center: center, Radius: 1, Material: 1}}}
	cam := NewHypCamera(1)
	res := HypMarch(f, cam.Ray(0, 0), cam)
	if res.State != Hit {
		t.Fatalf("state = %v, want hit", res.State)
	}
	if !nearly(res.Dist, 2, 1e-6) {
		t.Fatalf("hit distance = %.12g, want 2", res.Dist)
	}
	if !nearly(HypDist(HypOrigin(), res.Point), 2, 1e-6) {
		t.Fatalf("hit point at distance %.12g from the camera, want 2", HypDist(HypOrigin(), res.Point))
	}
}

func TestHypMarchMissAndTimeout(t *testing.T) {
	cam := NewHypCamera(1)
	if res := HypMarch(&HypScene{}, cam.Ray(0, 0), cam); res.State != Miss {
		t.Fatalf("empty scene state = %v, want miss", res.State)
	}
	if res := HypMarch(constHypField{d: 1e-3}, cam.Ray(0, 0), cam); res.State != Timeout {
		t.Fatalf("stalled state = %v, want timeout", res.State)
	}
}

func TestMarchStateString(t *testing.T) {
	for s, want := range map[MarchState]string{
		Marching: "marching", Hit: "hit", Miss: "miss", Timeout: "timeout",
	} {
		if s.String() != want {
			t.Fatalf("%d.String() = %q, want %q", s, s.String(), want)
		}
	}
	if MarchState(42).String() != "unknown" {
		t.Fatalf("out-of-range state not reported as unknown")
	}
}
