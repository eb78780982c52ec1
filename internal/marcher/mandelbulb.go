package marcher

import (
	"fmt"
	"math"
)

// Mandelbulb is the escape-time distance estimator for the power-n
// Mandelbulb: z <- z^n + c in spherical coordinates, with the running
// derivative dr = n*r^(n-1)*dr + 1 giving the log-derivative bound
// 0.5*ln(r)*r/dr.
type Mandelbulb struct {
	Power         Real
	MaxIterations int
	Bailout       Real
}

// NewMandelbulb validates the fractal parameters. Power, iteration cap and
// bailout stay external knobs so callers can trade quality for speed per
// frame.
func NewMandelbulb(power Real, maxIterations int, bailout Real) (*Mandelbulb, error) {
	if power < 2 {
		return nil, fmt.Errorf("power must be >= 2, got %.6g", power)
	}
	if maxIterations <= 0 {
		return nil, fmt.Errorf("maxIterations must be > 0, got %d", maxIterations)
	}
	if bailout <= 1 {
		return nil, fmt.Errorf("bailout must be > 1, got %.6g", bailout)
	}
	m := &Mandelbulb{Power: power, MaxIterations: maxIterations, Bailout: bailout}
	DebugLog("Created mandelbulb: %+v", m)
	return m, nil
}

func (m *Mandelbulb) Evaluate(p Point3) DEResult {
	z := Vector3{p.X, p.Y, p.Z}
	dr := Real(1)
	r := Real(0)
	i := 0
	for ; i < m.MaxIterations; i++ {
		r = z.Len()
		if r > m.Bailout {
			break
		}
		// polar conversion; clamp r so the seed at the origin cannot
		// divide by zero in acos/atan2
		rc := r
		if rc < epsRadius {
			rc = epsRadius
		}
		theta := math.Acos(z.Z / rc)
		phi := math.Atan2(z.Y, z.X)

		dr = math.Pow(rc, m.Power-1)*m.Power*dr + 1

		zr := math.Pow(rc, m.Power)
		theta *= m.Power
		phi *= m.Power
		z = Vector3{
			zr * math.Sin(theta) * math.Cos(phi),
			zr * math.Sin(theta) * math.Sin(phi),
			zr * math.Cos(theta),
		}
		z = z.Add(Vector3{p.X, p.Y, p.Z})
	}
	if r < epsRadius {
		r = epsRadius
	}
	de := 0.5 * math.Log(r) * r / dr
	return DEResult{Dist: de, Iterations: i, Material: MaterialBackground}
}
