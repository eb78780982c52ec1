package marcher

import "testing"

func TestNewCameraValidation(t *testing.T) {
	if _, err := NewCamera(Point3{1, 2, 3}, Point3{1, 2, 3}, Vector3{0, 1, 0}, 1, 1); err == nil {
		t.Fatalf("target == position accepted")
	}
	if _, err := NewCamera(Point3{0, 0, 5}, Point3{0, 0, 0}, Vector3{0, 0, 1}, 1, 1); err == nil {
		t.Fatalf("up parallel to view direction accepted")
	}
}

func TestCameraBasis(t *testing.T) {
	cam, err := NewCamera(Point3{0, 1, 5}, Point3{0, 0, 0}, Vector3{0, 1, 0}, 1, 1)
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	for name, v := range map[string]Vector3{
		"forward": cam.Forward, "horizontal": cam.Horizontal, "vertical": cam.Vertical,
	} {
		if !nearly(v.Len(), 1, 1e-12) {
			t.Fatalf("%s not unit: %.12g", name, v.Len())
		}
	}
	if !nearly(cam.Forward.Dot(cam.Horizontal), 0, 1e-12) ||
		!nearly(cam.Forward.Dot(cam.Vertical), 0, 1e-12) ||
		!nearly(cam.Horizontal.Dot(cam.Vertical), 0, 1e-12) {
		t.Fatalf("camera basis not orthogonal")
	}
	// vertical points toward the up hint
	if cam.Vertical.Y <= 0 {
		t.Fatalf("vertical flipped: %+v", cam.Vertical)
	}
}

func TestCameraRay(t *testing.T) {
	cam, _ := NewCamera(Point3{0, 0, 5}, Point3{0, 0, 0}, Vector3{0, 1, 0}, 1, 1)
	r := cam.Ray(0, 0)
	if r.Origin != cam.Position {
		t.Fatalf("ray origin %+v != camera position %+v", r.Origin, cam.Position)
	}
	if !nearly(r.Dir.Len(), 1, 1e-12) {
		t.Fatalf("ray direction not unit: %.12g", r.Dir.Len())
	}
	// center ray looks straight down the view axis
	if !nearly(r.Dir.Dot(cam.Forward), 1, 1e-12) {
		t.Fatalf("center ray off axis: %+v", r.Dir)
	}
	// positive u leans toward the horizontal basis vector
	if cam.Ray(0.5, 0).Dir.Dot(cam.Horizontal) <= 0 {
		t.Fatalf("u does not map to the horizontal axis")
	}
	if cam.Ray(0, 0.5).Dir.Dot(cam.Vertical) <= 0 {
		t.Fatalf("v does not map to the vertical axis")
	}
}

func TestCameraAspectAndZoom(t *testing.T) {
	narrow, _ := NewCamera(Point3{0, 0, 5}, Point3{0, 0, 0}, Vector3{0, 1, 0}, 1, 1)
	wide, _ := NewCamera(Point3{0, 0, 5}, Point3{0, 0, 0}, Vector3{0, 1, 0}, 2, 1)
	zoomed, _ := NewCamera(Point3{0, 0, 5}, Point3{0, 0, 0}, Vector3{0, 1, 0}, 1, 2)

	h := narrow.Ray(0.5, 0).Dir.Dot(narrow.Horizontal)
	if hw := wide.Ray(0.5, 0).Dir.Dot(wide.Horizontal); hw <= h {
		t.Fatalf("wider aspect should widen the horizontal spread: %.6g <= %.6g", hw, h)
	}
	if hz := zoomed.Ray(0.5, 0).Dir.Dot(zoomed.Horizontal); hz >= h {
		t.Fatalf("zoom should narrow the spread: %.6g >= %.6g", hz, h)
	}
	// non-positive aspect and zoom fall back to 1
	def, _ := NewCamera(Point3{0, 0, 5}, Point3{0, 0, 0}, Vector3{0, 1, 0}, 0, -1)
	if def.Aspect != 1 || def.Zoom != 1 {
		t.Fatalf("defaults not applied: aspect=%v zoom=%v", def.Aspect, def.Zoom)
	}
}

func TestHypCameraRay(t *testing.T) {
	cam := NewHypCamera(1)
	r := cam.Ray(0, 0)
	if r.Origin != HypOrigin() {
		t.Fatalf("ray origin %+v != base point", r.Origin)
	}
	if !validVelocity(r.Tangent) {
		t.Fatalf("tangent not unit: <t,t>=%.12g", MinkDot(r.Tangent, r.Tangent))
	}
	// center ray looks down the frame's forward tangent (-Z)
	if !nearly(r.Tangent.Z, -1, 1e-12) {
		t.Fatalf("center tangent = %+v, want -Z", r.Tangent)
	}
	// off-center rays stay unit tangents at the origin
	side := cam.Ray(0.7, -0.3)
	if !validVelocity(side.Tangent) || !nearly(MinkDot(side.Tangent, side.Origin), 0, 1e-9) {
		t.Fatalf("off-center tangent invalid: %+v", side.Tangent)
	}
}
