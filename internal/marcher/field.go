package marcher

// DEResult is one distance-estimator evaluation: a lower bound on the
// distance to the nearest surface plus the data shading needs. Fractal
// estimators fill Iterations (escape-time coloring), scene estimators fill
// Material. The bound must never overestimate the true distance; sphere
// tracing relies on that.
type DEResult struct {
	Dist       Real
	Iterations int
	Material   int
}

// Field is a distance estimator over Euclidean 3-space.
type Field interface {
	Evaluate(p Point3) DEResult
}

// HypField is a distance estimator over hyperbolic 3-space. Points are
// positions on the hyperboloid (<p,p> = -1, W > 0).
type HypField interface {
	Evaluate(p Vec4) DEResult
}
