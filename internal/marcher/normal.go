package marcher

// Normal estimates the surface normal at p as the central-difference
// gradient of the distance field. eps trades normal bias (too large)
// against estimator noise (too small); it is a caller tunable.
func Normal(f Field, p Point3, eps Real) Vector3 {
	dx := f.Evaluate(Point3{p.X + eps, p.Y, p.Z}).Dist - f.Evaluate(Point3{p.X - eps, p.Y, p.Z}).Dist
	dy := f.Evaluate(Point3{p.X, p.Y + eps, p.Z}).Dist - f.Evaluate(Point3{p.X, p.Y - eps, p.Z}).Dist
	dz := f.Evaluate(Point3{p.X, p.Y, p.Z + eps}).Dist - f.Evaluate(Point3{p.X, p.Y, p.Z - eps}).Dist
	return Vector3{dx, dy, dz}.Norm()
}

// HypNormal estimates the normal in hyperbolic space: central differences
// along the four ambient axes, then projection of the gradient onto the
// tangent space at p (g + <g,p>p, since <p,p> = -1) and Minkowski
// normalization.
func HypNormal(f HypField, p Vec4, eps Real) Vec4 {
	g := Vec4{
		X: f.Evaluate(Vec4{p.X + eps, p.Y, p.Z, p.W}).Dist - f.Evaluate(Vec4{p.X - eps, p.Y, p.Z, p.W}).Dist,
		Y: f.Evaluate(Vec4{p.X, p.Y + eps, p.Z, p.W}).Dist - f.Evaluate(Vec4{p.X, p.Y - eps, p.Z, p.W}).Dist,
		Z: f.Evaluate(Vec4{p.X, p.Y, p.Z + eps, p.W}).Dist - f.Evaluate(Vec4{p.X, p.Y, p.Z - eps, p.W}).Dist,
		W: f.Evaluate(Vec4{p.X, p.Y, p.Z, p.W + eps}).Dist - f.Evaluate(Vec4{p.X, p.Y, p.Z, p.W - eps}).Dist,
	}
	g = g.Add(p.Mul(MinkDot(g, p)))
	return HypNormalizeVel(g)
}
