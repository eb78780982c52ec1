package marcher

// MarchState is the terminal state of one sphere-tracing run.
type MarchState int

const (
	Marching MarchState = iota
	Hit
	Miss
	Timeout
)

func (s MarchState) String() string {
	switch s {
	case Marching:
		return "marching"
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case Timeout:
		return "timeout"
	}
	return "unknown"
}

// MarchResult is where a ray ended up: terminal state, surface point, total
// travel distance, step count, and the DE data at the final evaluation.
type MarchResult struct {
	State MarchState
	Point Point3
	Dist  Real
	Steps int
	DE    DEResult
}

// March sphere-traces a Euclidean ray: evaluate the estimator, advance by
// exactly the returned distance, stop on hit/miss. The step cap guarantees
// termination even against a broken (non-Lipschitz) estimator.
func March(f Field, r Ray, cam *Camera) MarchResult {
	p := r.Origin
	total := Real(0)
	var res DEResult
	for step := 0; step < cam.MaxSteps; step++ {
		res = f.Evaluate(p)
		if res.Dist < cam.MinDist {
			return MarchResult{State: Hit, Point: p, Dist: total, Steps: step, DE: res}
		}
		total += res.Dist
		if total > cam.MaxDist {
			return MarchResult{State: Miss, Point: p, Dist: total, Steps: step, DE: res}
		}
		p = r.Origin.Add(r.Dir.Mul(total))
	}
	return MarchResult{State: Timeout, Point: p, Dist: total, Steps: cam.MaxSteps, DE: res}
}

// HypMarchResult also carries the geodesic parameter T at the end point so
// shading can recover the view tangent there.
type HypMarchResult struct {
	State MarchState
	Point Vec4
	Dist  Real
	Steps int
	DE    DEResult
}

// HypMarch sphere-traces along a geodesic: the current point is always
// Geodesic(origin, tangent, T) for the accumulated parameter T, and the
// point is re-seated on the hyperboloid every few steps to keep the
// Minkowski constraint from drifting.
func HypMarch(f HypField, r HypRay, cam *HypCamera) HypMarchResult {
	p := r.Origin
	total := Real(0)
	var res DEResult
	for step := 0; step < cam.MaxSteps; step++ {
		res = f.Evaluate(p)
		if res.Dist < cam.MinDist {
			return HypMarchResult{State: Hit, Point: p, Dist: total, Steps: step, DE: res}
		}
		total += res.Dist
		if total > cam.MaxDist {
			return HypMarchResult{State: Miss, Point: p, Dist: total, Steps: step, DE: res}
		}
		p = Geodesic(r.Origin, r.Tangent, total)
		if (step & renormMask) == renormMask {
			p = HypNormalizePos(p)
		}
	}
	return HypMarchResult{State: Timeout, Point: p, Dist: total, Steps: cam.MaxSteps, DE: res}
}
