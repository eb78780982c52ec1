// Package marcher renders implicit geometry by sphere tracing distance
// estimators: the Mandelbulb fractal, a Sierpinski-tetrahedron IFS, analytic
// sphere scenes, and a hyperbolic-space scene on the hyperboloid model.
package marcher

type Real = float64
