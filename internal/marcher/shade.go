package marcher

import "math"

// Shading holds everything the lighting model needs besides the geometry:
// light directions and colors, specular knobs, the base-color policy and
// the normal/AO tunables. Immutable per frame.
type Shading struct {
	Background RGB
	Ambient    RGB

	KeyDir    Vector3 // unit, toward the key light
	KeyColor  RGB
	FillDir   Vector3 // unit, toward the fill light
	FillColor RGB

	Shininess    Real
	SpecStrength Real

	// Base-color policy: palette over iteration fraction for fractal
	// variants, material table lookup for scene variants.
	UsePalette  bool
	Palette     Palette
	PaletteIter int
	Materials   []RGB

	NormalEps Real
	AOSamples int
	AOStep    Real
}

// NewShading returns the default lighting rig: a warm key light, a weak
// downward-facing fill, white Blinn-Phong highlights.
func NewShading() *Shading {
	return &Shading{
		Background:   RGB{0.3, 0.3, 0.3},
		Ambient:      RGB{0.10, 0.10, 0.12},
		KeyDir:       Vector3{1, 1, 0.5}.Norm(),
		KeyColor:     RGB{0.85, 0.80, 0.75},
		FillDir:      Vector3{0, 1, 0},
		FillColor:    RGB{0.20, 0.22, 0.25},
		Shininess:    Shininess,
		SpecStrength: 0.5,
		Materials:    DefaultMaterials,
		NormalEps:    NormalEps,
		AOSamples:    AOSamples,
		AOStep:       AOStep,
	}
}

// BaseColor picks the albedo for a hit: iteration-fraction palette or
// material table, whichever policy the frame selected.
func (s *Shading) BaseColor(res DEResult) RGB {
	if s.UsePalette && s.Palette != nil && s.PaletteIter > 0 {
		t := Real(res.Iterations) / Real(s.PaletteIter)
		if t > 1 {
			t = 1
		}
		return s.Palette(t)
	}
	if res.Material >= 0 && res.Material < len(s.Materials) {
		return s.Materials[res.Material]
	}
	return s.Materials[MaterialBackground]
}

// Shade combines normal, view direction, base color and occlusion into the
// final radiance: (ambient + diffuse terms)*base + specular, scaled by AO.
// Unclamped on purpose.
func (s *Shading) Shade(n, view Vector3, base RGB, ao Real) RGB {
	lum := s.Ambient
	if kd := n.Dot(s.KeyDir); kd > 0 {
		lum = lum.Add(s.KeyColor.Scale(kd))
	}
	if fd := n.Dot(s.FillDir); fd > 0 {
		lum = lum.Add(s.FillColor.Scale(fd))
	}
	out := base.MulRGB(lum)

	half := s.KeyDir.Add(view).Norm()
	if hd := n.Dot(half); hd > 0 {
		spec := math.Pow(hd, s.Shininess) * s.SpecStrength
		out = out.Add(RGB{spec, spec, spec})
	}
	return out.Scale(ao)
}

// shadeHyp is the tangent-space version: all vectors are unit tangents at
// the hit point, with dot products taken in the Minkowski metric.
func (s *Shading) shadeHyp(n, view, key, fill Vec4, base RGB, ao Real) RGB {
	lum := s.Ambient
	if kd := MinkDot(n, key); kd > 0 {
		lum = lum.Add(s.KeyColor.Scale(kd))
	}
	if fd := MinkDot(n, fill); fd > 0 {
		lum = lum.Add(s.FillColor.Scale(fd))
	}
	out := base.MulRGB(lum)

	half := HypNormalizeVel(key.Add(view))
	if hd := MinkDot(n, half); hd > 0 {
		spec := math.Pow(hd, s.Shininess) * s.SpecStrength
		out = out.Add(RGB{spec, spec, spec})
	}
	return out.Scale(ao)
}
