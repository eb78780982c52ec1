package marcher

// Occlusion probes the field at increasing offsets along the normal and
// accumulates 1 - d/step whenever the field is closer than one step. The
// result is 1 - sum/samples in [0,1]: cheap single-direction ambient
// occlusion, not a physical estimate.
func Occlusion(f Field, p Point3, n Vector3, samples int, step Real) Real {
	if samples <= 0 || step <= 0 {
		return 1
	}
	sum := Real(0)
	for i := 1; i <= samples; i++ {
		d := f.Evaluate(p.Add(n.Mul(step * Real(i)))).Dist
		if d < step {
			c := 1 - d/step
			if c > 1 {
				c = 1
			}
			sum += c
		}
	}
	occ := 1 - sum/Real(samples)
	if occ < 0 {
		occ = 0
	}
	return occ
}

// HypOcclusion is the hyperbolic twin: the probe points walk the geodesic
// leaving p with tangent n.
func HypOcclusion(f HypField, p, n Vec4, samples int, step Real) Real {
	if samples <= 0 || step <= 0 {
		return 1
	}
	sum := Real(0)
	for i := 1; i <= samples; i++ {
		d := f.Evaluate(Geodesic(p, n, step*Real(i))).Dist
		if d < step {
			c := 1 - d/step
			if c > 1 {
				c = 1
			}
			sum += c
		}
	}
	occ := 1 - sum/Real(samples)
	if occ < 0 {
		occ = 0
	}
	return occ
}
