package marcher

// RGB stores color components. Shading output is radiance and may exceed 1;
// clamping is the output consumer's job.
type RGB struct {
	R, G, B Real
}

func (c RGB) Add(o RGB) RGB    { return RGB{c.R + o.R, c.G + o.G, c.B + o.B} }
func (c RGB) Scale(s Real) RGB { return RGB{c.R * s, c.G * s, c.B * s} }
func (c RGB) MulRGB(o RGB) RGB { return RGB{c.R * o.R, c.G * o.G, c.B * o.B} }

// clamp01 clamps each channel to [0,1].
func (c RGB) clamp01() RGB {
	cl := func(x Real) Real {
		if x < 0 {
			return 0
		}
		if x > 1 {
			return 1
		}
		return x
	}
	return RGB{cl(c.R), cl(c.G), cl(c.B)}
}
