package marcher

// Channel indices for readability.
const (
	ChR = 0
	ChG = 1
	ChB = 2

	ResX     = 720
	ResY     = 720
	Gamma    = 1.0
	PNGOut   = "out.png"
	GIFDelay = 5 // 100ths of a second per frame

	MaxSteps = 300
	MinDist  = 1e-4
	MaxDist  = 1000.0

	Power          = 8.0
	BulbIterations = 32
	Bailout        = 3.0

	FoldIterations = 12
	FoldScale      = 1.1

	NormalEps = 5e-4
	AOSamples = 8
	AOStep    = 0.05
	Shininess = 32.0

	OrbitFrames = 36
	OrbitRadius = 3.0

	// hot-loop constants
	epsRadius  = 1e-9
	renormMask = 3 // re-seat hyperbolic points every 4 steps
)

// Material ids for scene variants.
const (
	MaterialBackground = 0
	MaterialRed        = 1
	MaterialGreen      = 2
	MaterialBlue       = 3
	MaterialGround     = 4
)
