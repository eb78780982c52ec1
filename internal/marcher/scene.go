package marcher

import (
	"fmt"
	"math"
)

// Sphere is one analytic scene primitive: center, radius, material id.
type Sphere struct {
	Center   Point3
	Radius   Real
	Material int
}

func NewSphere(center Point3, radius Real, material int) (Sphere, error) {
	if radius <= 0 {
		return Sphere{}, fmt.Errorf("sphere radius must be > 0, got %.6g", radius)
	}
	if material < 0 {
		return Sphere{}, fmt.Errorf("material id must be >= 0, got %d", material)
	}
	return Sphere{Center: center, Radius: radius, Material: material}, nil
}

// SphereScene is a union of spheres plus an optional ground plane, combined
// by pointwise minimum. Order only breaks exact-distance ties.
type SphereScene struct {
	Spheres []Sphere

	Ground         bool
	GroundY        Real
	GroundMaterial int
}

func (s *SphereScene) Evaluate(p Point3) DEResult {
	best := math.Inf(1)
	mat := MaterialBackground
	for _, sp := range s.Spheres {
		d := p.Sub(sp.Center).Len() - sp.Radius
		if d < best {
			best = d
			mat = sp.Material
		}
	}
	if s.Ground {
		if d := p.Y - s.GroundY; d < best {
			best = d
			mat = s.GroundMaterial
		}
	}
	return DEResult{Dist: best, Material: mat}
}
