package marcher

import (
	"encoding/json"
	"fmt"
	"os"
)

// Variant names accepted in config files: the closed set of estimator
// pipelines, selected once per run.
const (
	VariantMandelbulb = "mandelbulb"
	VariantSierpinski = "sierpinski"
	VariantSpheres    = "spheres"
	VariantHyperbolic = "hyperbolic"
)

type CameraCfg struct {
	Position Point3  `json:"position"`
	Target   Point3  `json:"target"`
	Up       Vector3 `json:"up,omitempty"`
	Zoom     Real    `json:"zoom,omitempty"`
	MaxSteps int     `json:"maxSteps,omitempty"`
	MinDist  Real    `json:"minDist,omitempty"`
	MaxDist  Real    `json:"maxDist,omitempty"`
}

// Build validates and constructs the runtime camera for the given viewport
// aspect ratio.
func (cc CameraCfg) Build(aspect Real) (*Camera, error) {
	up := cc.Up
	if up.Len() == 0 {
		up = Vector3{0, 1, 0}
	}
	cam, err := NewCamera(cc.Position, cc.Target, up, aspect, cc.Zoom)
	if err != nil {
		return nil, err
	}
	if cc.MaxSteps > 0 {
		cam.MaxSteps = cc.MaxSteps
	}
	if cc.MinDist > 0 {
		cam.MinDist = cc.MinDist
	}
	if cc.MaxDist > 0 {
		cam.MaxDist = cc.MaxDist
	}
	return cam, nil
}

type MandelbulbCfg struct {
	Power         Real `json:"power,omitempty"`
	MaxIterations int  `json:"maxIterations,omitempty"`
	Bailout       Real `json:"bailout,omitempty"`
}

func (mc MandelbulbCfg) Build() (*Mandelbulb, error) {
	if mc.Power == 0 {
		mc.Power = Power
	}
	if mc.MaxIterations == 0 {
		mc.MaxIterations = BulbIterations
	}
	if mc.Bailout == 0 {
		mc.Bailout = Bailout
	}
	return NewMandelbulb(mc.Power, mc.MaxIterations, mc.Bailout)
}

type SierpinskiCfg struct {
	Iterations int  `json:"iterations,omitempty"`
	Scale      Real `json:"scale,omitempty"`
	Count      int  `json:"count,omitempty"`
	Spacing    Real `json:"spacing,omitempty"`
}

func (sc SierpinskiCfg) Build() (*Sierpinski, error) {
	if sc.Iterations == 0 {
		sc.Iterations = FoldIterations
	}
	if sc.Scale == 0 {
		sc.Scale = FoldScale
	}
	if sc.Count == 0 {
		sc.Count = 1
	}
	if sc.Spacing == 0 {
		sc.Spacing = 2.5
	}
	return NewSierpinski(sc.Iterations, sc.Scale, sc.Count, sc.Spacing)
}

type SphereCfg struct {
	Center   Point3 `json:"center"`
	Radius   Real   `json:"radius"`
	Material int    `json:"material"`
}

type SceneCfg struct {
	Spheres        []SphereCfg `json:"spheres,omitempty"`
	Ground         bool        `json:"ground,omitempty"`
	GroundY        Real        `json:"groundY,omitempty"`
	GroundMaterial int         `json:"groundMaterial,omitempty"`
}

func (sc SceneCfg) Build() (*SphereScene, error) {
	scene := &SphereScene{
		Ground:         sc.Ground,
		GroundY:        sc.GroundY,
		GroundMaterial: sc.GroundMaterial,
	}
	if scene.Ground && scene.GroundMaterial == 0 {
		scene.GroundMaterial = MaterialGround
	}
	for i, c := range sc.Spheres {
		s, err := NewSphere(c.Center, c.Radius, c.Material)
		if err != nil {
			return nil, fmt.Errorf("sphere #%d: %w", i, err)
		}
		scene.Spheres = append(scene.Spheres, s)
	}
	return scene, nil
}

type HypSphereCfg struct {
	Center   Vec4 `json:"center"`
	Radius   Real `json:"radius"`
	Material int  `json:"material"`
}

type HypSceneCfg struct {
	Spheres        []HypSphereCfg `json:"spheres,omitempty"`
	Ground         bool           `json:"ground,omitempty"`
	GroundOffset   Real           `json:"groundOffset,omitempty"`
	GroundMaterial int            `json:"groundMaterial,omitempty"`
}

func (hc HypSceneCfg) Build() (*HypScene, error) {
	scene := &HypScene{
		Ground:         hc.Ground,
		GroundOffset:   hc.GroundOffset,
		GroundMaterial: hc.GroundMaterial,
	}
	if scene.Ground && scene.GroundOffset == 0 {
		scene.GroundOffset = 1
	}
	if scene.Ground && scene.GroundMaterial == 0 {
		scene.GroundMaterial = MaterialGround
	}
	for i, c := range hc.Spheres {
		s, err := NewHypSphere(c.Center, c.Radius, c.Material)
		if err != nil {
			return nil, fmt.Errorf("hyperbolic sphere #%d: %w", i, err)
		}
		scene.Spheres = append(scene.Spheres, s)
	}
	return scene, nil
}

type ShadingCfg struct {
	Palette   string `json:"palette,omitempty"`
	AOSamples int    `json:"aoSamples,omitempty"`
	AOStep    Real   `json:"aoStep,omitempty"`
	NormalEps Real   `json:"normalEps,omitempty"`
	Shininess Real   `json:"shininess,omitempty"`
}

// Apply overrides the default rig with whatever the config set.
func (sc ShadingCfg) Apply(sh *Shading) error {
	if sc.Palette != "" {
		p, ok := Palettes[sc.Palette]
		if !ok {
			return fmt.Errorf("unknown palette %q", sc.Palette)
		}
		sh.Palette = p
	}
	if sc.AOSamples > 0 {
		sh.AOSamples = sc.AOSamples
	}
	if sc.AOStep > 0 {
		sh.AOStep = sc.AOStep
	}
	if sc.NormalEps > 0 {
		sh.NormalEps = sc.NormalEps
	}
	if sc.Shininess > 0 {
		sh.Shininess = sc.Shininess
	}
	return nil
}

type Config struct {
	Variant     string        `json:"variant"`
	ResX        int           `json:"resX,omitempty"`
	ResY        int           `json:"resY,omitempty"`
	Gamma       Real          `json:"gamma,omitempty"`
	Out         string        `json:"out,omitempty"`
	OrbitFrames int           `json:"orbitFrames,omitempty"`
	OrbitRadius Real          `json:"orbitRadius,omitempty"`
	GIFDelay    int           `json:"gifDelay,omitempty"`
	Camera      CameraCfg     `json:"camera"`
	Mandelbulb  MandelbulbCfg `json:"mandelbulb,omitempty"`
	Sierpinski  SierpinskiCfg `json:"sierpinski,omitempty"`
	Scene       SceneCfg      `json:"scene,omitempty"`
	Hyperbolic  HypSceneCfg   `json:"hyperbolic,omitempty"`
	Shading     ShadingCfg    `json:"shading,omitempty"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	// Defaults / validation
	if cfg.Variant == "" {
		cfg.Variant = VariantMandelbulb
	}
	switch cfg.Variant {
	case VariantMandelbulb, VariantSierpinski, VariantSpheres, VariantHyperbolic:
	default:
		return nil, fmt.Errorf("unknown variant %q", cfg.Variant)
	}
	if cfg.ResX <= 0 {
		cfg.ResX = ResX
	}
	if cfg.ResY <= 0 {
		cfg.ResY = ResY
	}
	if cfg.Gamma <= 0 {
		cfg.Gamma = Gamma
	}
	if cfg.Out == "" {
		cfg.Out = PNGOut
	}
	if cfg.OrbitFrames <= 0 {
		cfg.OrbitFrames = OrbitFrames
	}
	if cfg.OrbitRadius <= 0 {
		cfg.OrbitRadius = OrbitRadius
	}
	if cfg.GIFDelay <= 0 {
		cfg.GIFDelay = GIFDelay
	}
	if cfg.Camera.Position == cfg.Camera.Target {
		cfg.Camera.Position = Point3{0, 0, 2.5}
		cfg.Camera.Target = Point3{0, 0, 0}
	}
	DebugLog("Loaded config from %s: variant=%s res=(%d, %d), gamma=%f, out=%s", path, cfg.Variant, cfg.ResX, cfg.ResY, cfg.Gamma, cfg.Out)
	return &cfg, nil
}
