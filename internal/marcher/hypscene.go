package marcher

import (
	"fmt"
	"math"
)

// HypSphere is a metric ball in hyperbolic space: a hyperboloid center, a
// hyperbolic radius and a material id.
type HypSphere struct {
	Center   Vec4
	Radius   Real
	Material int
}

// NewHypSphere re-seats the center on the hyperboloid so config files can
// give approximate coordinates.
func NewHypSphere(center Vec4, radius Real, material int) (HypSphere, error) {
	if radius <= 0 {
		return HypSphere{}, fmt.Errorf("hyperbolic sphere radius must be > 0, got %.6g", radius)
	}
	if material < 0 {
		return HypSphere{}, fmt.Errorf("material id must be >= 0, got %d", material)
	}
	if center.W <= 0 && center.X == 0 && center.Y == 0 && center.Z == 0 {
		return HypSphere{}, fmt.Errorf("degenerate hyperbolic center %+v", center)
	}
	return HypSphere{Center: HypNormalizePos(center), Radius: radius, Material: material}, nil
}

// HypScene is a union of hyperbolic spheres plus an optional horocycle
// "ground": the Busemann level set of the downward ideal point, whose
// logarithmic potential log(W + Y) is an exact signed distance.
type HypScene struct {
	Spheres []HypSphere

	Ground         bool
	GroundOffset   Real
	GroundMaterial int
}

func (s *HypScene) Evaluate(p Vec4) DEResult {
	best := math.Inf(1)
	mat := MaterialBackground
	for _, sp := range s.Spheres {
		d := HypDist(p, sp.Center) - sp.Radius
		if d < best {
			best = d
			mat = sp.Material
		}
	}
	if s.Ground {
		h := p.W + p.Y
		if h < epsRadius {
			h = epsRadius
		}
		if d := math.Log(h) + s.GroundOffset; d < best {
			best = d
			mat = s.GroundMaterial
		}
	}
	return DEResult{Dist: best, Material: mat}
}
