package marcher

var (
	Debug    = false // set to true for verbose debug output
	Progress = true  // set to false to silence [PROGRESS] prints

	// Compile time checks to ensure every estimator satisfies its contract
	_ Field    = (*Mandelbulb)(nil)
	_ Field    = (*Sierpinski)(nil)
	_ Field    = (*SphereScene)(nil)
	_ HypField = (*HypScene)(nil)
)
