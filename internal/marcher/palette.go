package marcher

import "math"

// Palette maps an iteration fraction in [0,1] to a base color. The two
// implementations are interchangeable policies; pick one per frame.
type Palette func(t Real) RGB

// SinePalette bands the iteration fraction through phase-shifted sinusoids.
func SinePalette(t Real) RGB {
	v := t * 2 * math.Pi
	return RGB{
		R: 0.5 + 0.5*math.Sin(v),
		G: 0.5 + 0.5*math.Sin(v+2.0),
		B: 0.5 + 0.5*math.Sin(v+4.0),
	}
}

// HSVPalette sweeps hue with the iteration fraction while saturation and
// value oscillate sinusoidally for extra variation.
func HSVPalette(t Real) RGB {
	h := math.Mod(t*360, 360)
	s := 0.75 + 0.25*math.Sin(t*6*math.Pi)
	v := 0.80 + 0.20*math.Sin(t*4*math.Pi)
	return hsvToRGB(h, s, v)
}

// hsvToRGB converts hue in degrees [0,360), saturation and value in [0,1].
func hsvToRGB(h, s, v Real) RGB {
	c := v * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b Real
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := v - c
	return RGB{r + m, g + m, b + m}
}

// Palettes is the closed set of named palette policies for config files.
var Palettes = map[string]Palette{
	"sine": SinePalette,
	"hsv":  HSVPalette,
}

// DefaultMaterials is the albedo table keyed by material id for scene
// variants. Index 0 is the background/default id.
var DefaultMaterials = []RGB{
	{0.30, 0.30, 0.30}, // MaterialBackground
	{0.90, 0.25, 0.20}, // MaterialRed
	{0.25, 0.85, 0.30}, // MaterialGreen
	{0.25, 0.35, 0.90}, // MaterialBlue
	{0.75, 0.70, 0.60}, // MaterialGround
}
