package marcher

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	Progress = false
	os.Exit(m.Run())
}

func testScene() (*SphereScene, *Camera, *Shading) {
	f := &SphereScene{
		Spheres: []Sphere{{Center: Point3{0, 0, 0}, Radius: 1, Material: 1}},
		Ground:  true, GroundY: -1, GroundMaterial: MaterialGround,
	}
	cam, _ := NewCamera(Point3{0, 0, 5}, Point3{0, 0, 0}, Vector3{0, 1, 0}, 1, 1)
	return f, cam, NewShading()
}

func TestShadePixelPure(t *testing.T) {
	f, cam, sh := testScene()
	a := ShadePixel(0.1, -0.2, cam, f, sh)
	b := ShadePixel(0.1, -0.2, cam, f, sh)
	if a != b {
		t.Fatalf("same inputs, different radiance: %+v vs %+v", a, b)
	}
}

func TestShadePixelHitAndMiss(t *testing.T) {
	f, cam, sh := testScene()
	// center ray hits the sphere head-on
	hit := ShadePixel(0, 0, cam, f, sh)
	if hit == sh.Background {
		t.Fatalf("center ray should not return the background")
	}
	if hit.R <= 0 && hit.G <= 0 && hit.B <= 0 {
		t.Fatalf("hit radiance is dark: %+v", hit)
	}
	// a ray aimed well above everything returns exactly the background
	bare := &SphereScene{Spheres: f.Spheres}
	if miss := ShadePixel(0, 0.95, cam, bare, sh); miss != sh.Background {
		t.Fatalf("miss radiance = %+v, want background %+v", miss, sh.Background)
	}
}

func TestShadePixelHyp(t *testing.T) {
	center := Geodesic(HypOrigin(), Vec4{0, 0, -1, 0}, 3)
	f := &HypScene{
		Spheres: []HypSphere{{Center: center, Radius: 1, Material: MaterialRed}},
		Ground:  true, GroundOffset: 1, GroundMaterial: MaterialGround,
	}
	cam := NewHypCamera(1)
	sh := NewShading()

	hit := ShadePixelHyp(0, 0, cam, f, sh)
	if hit == sh.Background {
		t.Fatalf("center ray should hit the sphere")
	}
	// looking straight up there is nothing to hit
	up := &HypScene{Spheres: f.Spheres}
	if miss := ShadePixelHyp(0, 0.95, cam, up, sh); miss != sh.Background {
		t.Fatalf("upward ray radiance = %+v, want background", miss)
	}
}

func TestFrameSetAt(t *testing.T) {
	fr := NewFrame(4, 3)
	want := RGB{0.25, 0.5, 0.75}
	fr.Set(3, 2, want)
	if got := fr.At(3, 2); got != want {
		t.Fatalf("At = %+v, want %+v", got, want)
	}
	if got := fr.At(0, 0); got != (RGB{}) {
		t.Fatalf("untouched pixel = %+v, want zero", got)
	}
}

func TestRenderFrameDeterministic(t *testing.T) {
	f, cam, sh := testScene()
	fn := func(u, v Real) RGB { return ShadePixel(u, v, cam, f, sh) }
	a := RenderFrame(16, 12, fn)
	b := RenderFrame(16, 12, fn)
	if len(a.Buf) != 16*12*3 {
		t.Fatalf("buffer length = %d", len(a.Buf))
	}
	for i := range a.Buf {
		if a.Buf[i] != b.Buf[i] {
			t.Fatalf("renders differ at index %d: %.17g vs %.17g", i, a.Buf[i], b.Buf[i])
		}
	}
}

func TestRenderFrameCoordinates(t *testing.T) {
	// paint by quadrant and check the device-coordinate orientation:
	// u grows rightward, v grows upward
	fr := RenderFrame(8, 8, func(u, v Real) RGB {
		var c RGB
		if u > 0 {
			c.R = 1
		}
		if v > 0 {
			c.G = 1
		}
		return c
	})
	if got := fr.At(7, 0); got != (RGB{1, 1, 0}) {
		t.Fatalf("top-right = %+v, want {1 1 0}", got)
	}
	if got := fr.At(0, 7); got != (RGB{0, 0, 0}) {
		t.Fatalf("bottom-left = %+v, want zero", got)
	}
}
