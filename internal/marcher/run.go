package marcher

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// LoadConfig reads and validates a render config. Exported for the viewer,
// which shares config files with the offline renderer.
func LoadConfig(path string) (*Config, error) {
	return loadConfig(path)
}

// BuildField constructs the Euclidean estimator the config selects. An
// empty sphere scene gets a small default arrangement so a bare config
// still renders something.
func (cfg *Config) BuildField() (Field, error) {
	switch cfg.Variant {
	case VariantMandelbulb:
		return cfg.Mandelbulb.Build()
	case VariantSierpinski:
		return cfg.Sierpinski.Build()
	case VariantSpheres:
		sc := cfg.Scene
		if len(sc.Spheres) == 0 {
			sc.Spheres = []SphereCfg{
				{Center: Point3{0, 0, 0}, Radius: 1, Material: MaterialRed},
				{Center: Point3{-2.2, -0.4, -0.5}, Radius: 0.6, Material: MaterialGreen},
				{Center: Point3{2.0, -0.55, 0.5}, Radius: 0.45, Material: MaterialBlue},
			}
			sc.Ground = true
			sc.GroundY = -1
		}
		return sc.Build()
	}
	return nil, fmt.Errorf("variant %q has no Euclidean field", cfg.Variant)
}

// BuildHypField constructs the hyperbolic estimator, defaulting to one
// sphere three units down the view geodesic above a horocycle ground.
func (cfg *Config) BuildHypField() (*HypScene, error) {
	hc := cfg.Hyperbolic
	if len(hc.Spheres) == 0 {
		center := Geodesic(HypOrigin(), Vec4{0, 0, -1, 0}, 3)
		hc.Spheres = []HypSphereCfg{
			{Center: center, Radius: 1, Material: MaterialRed},
		}
		hc.Ground = true
	}
	return hc.Build()
}

// BuildShading wires the lighting rig for the selected variant: escape-time
// variants color by iteration fraction, scene variants by material table.
func (cfg *Config) BuildShading() (*Shading, error) {
	sh := NewShading()
	if err := cfg.Shading.Apply(sh); err != nil {
		return nil, err
	}
	if cfg.Variant == VariantMandelbulb {
		sh.UsePalette = true
		if sh.Palette == nil {
			sh.Palette = SinePalette
		}
		mb, err := cfg.Mandelbulb.Build()
		if err != nil {
			return nil, err
		}
		sh.PaletteIter = mb.MaxIterations
	}
	return sh, nil
}

// BuildHypCamera maps the config's camera tunables onto the hyperbolic
// camera (whose pose is the hyperboloid base frame; zoom narrows the fov).
func (cfg *Config) BuildHypCamera(aspect Real) *HypCamera {
	cam := NewHypCamera(aspect)
	if cfg.Camera.MaxSteps > 0 {
		cam.MaxSteps = cfg.Camera.MaxSteps
	}
	if cfg.Camera.MinDist > 0 {
		cam.MinDist = cfg.Camera.MinDist
	}
	if cfg.Camera.MaxDist > 0 {
		cam.MaxDist = cfg.Camera.MaxDist
	}
	if cfg.Camera.Zoom > 0 {
		cam.TanFov /= cfg.Camera.Zoom
	}
	return cam
}

// orbitCamera places the camera on a circle of the given radius around the
// target, keeping the configured height.
func (cfg *Config) orbitCamera(angle, aspect Real) (*Camera, error) {
	cc := cfg.Camera
	cc.Position = Point3{
		cc.Target.X + cfg.OrbitRadius*math.Sin(angle),
		cc.Position.Y,
		cc.Target.Z + cfg.OrbitRadius*math.Cos(angle),
	}
	return cc.Build(aspect)
}

func Run(cfgPath string) error {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	aspect := Real(cfg.ResX) / Real(cfg.ResY)
	sh, err := cfg.BuildShading()
	if err != nil {
		return err
	}
	wantGIF := strings.HasSuffix(cfg.Out, ".gif")

	start := time.Now()
	if cfg.Variant == VariantHyperbolic {
		if wantGIF {
			return fmt.Errorf("orbit animation is not supported for the hyperbolic variant")
		}
		f, err := cfg.BuildHypField()
		if err != nil {
			return err
		}
		cam := cfg.BuildHypCamera(aspect)
		fr := RenderFrame(cfg.ResX, cfg.ResY, func(u, v Real) RGB {
			return ShadePixelHyp(u, v, cam, f, sh)
		})
		DebugLog("Rendered %dx%d hyperbolic frame in %s", cfg.ResX, cfg.ResY, time.Since(start))
		return fr.SavePNG16(cfg.Out, cfg.Gamma)
	}

	f, err := cfg.BuildField()
	if err != nil {
		return err
	}
	if wantGIF {
		frames := make([]*Frame, 0, cfg.OrbitFrames)
		for k := 0; k < cfg.OrbitFrames; k++ {
			angle := 2 * math.Pi * Real(k) / Real(cfg.OrbitFrames)
			cam, err := cfg.orbitCamera(angle, aspect)
			if err != nil {
				return err
			}
			frames = append(frames, RenderFrame(cfg.ResX, cfg.ResY, func(u, v Real) RGB {
				return ShadePixel(u, v, cam, f, sh)
			}))
			DebugLog("Orbit frame %d/%d done", k+1, cfg.OrbitFrames)
		}
		DebugLog("Rendered %d orbit frames in %s", cfg.OrbitFrames, time.Since(start))
		return SaveAnimatedGIF(frames, cfg.Out, cfg.GIFDelay, cfg.Gamma)
	}

	cam, err := cfg.Camera.Build(aspect)
	if err != nil {
		return err
	}
	fr := RenderFrame(cfg.ResX, cfg.ResY, func(u, v Real) RGB {
		return ShadePixel(u, v, cam, f, sh)
	})
	DebugLog("Rendered %dx%d frame in %s", cfg.ResX, cfg.ResY, time.Since(start))
	return fr.SavePNG16(cfg.Out, cfg.Gamma)
}
