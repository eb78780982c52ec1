package marcher

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// ShadePixel is the core entry point: one normalized device coordinate in,
// one radiance value out. Pure function of its inputs; every pixel runs it
// independently.
func ShadePixel(u, v Real, cam *Camera, f Field, sh *Shading) RGB {
	r := cam.Ray(u, v)
	m := March(f, r, cam)
	if m.State != Hit {
		return sh.Background
	}
	n := Normal(f, m.Point, sh.NormalEps)
	ao := Occlusion(f, m.Point, n, sh.AOSamples, sh.AOStep)
	base := sh.BaseColor(m.DE)
	view := r.Dir.Mul(-1)
	return sh.Shade(n, view, base, ao)
}

// ShadePixelHyp is the hyperbolic entry point. Light directions are fixed
// ambient vectors projected into the tangent space at the hit point, and
// the view tangent is the reversed geodesic velocity there.
func ShadePixelHyp(u, v Real, cam *HypCamera, f HypField, sh *Shading) RGB {
	r := cam.Ray(u, v)
	m := HypMarch(f, r, cam)
	if m.State != Hit {
		return sh.Background
	}
	p := HypNormalizePos(m.Point)
	n := HypNormal(f, p, sh.NormalEps)
	ao := HypOcclusion(f, p, n, sh.AOSamples, sh.AOStep)
	base := sh.BaseColor(m.DE)

	view := HypNormalizeVel(GeodesicVel(r.Origin, r.Tangent, m.Dist).Mul(-1))
	key := tangentAt(p, Vec4{sh.KeyDir.X, sh.KeyDir.Y, sh.KeyDir.Z, 0})
	fill := tangentAt(p, Vec4{sh.FillDir.X, sh.FillDir.Y, sh.FillDir.Z, 0})
	return sh.shadeHyp(n, view, key, fill, base, ao)
}

// tangentAt projects an ambient vector onto the tangent space at p and
// normalizes it.
func tangentAt(p, u Vec4) Vec4 {
	return HypNormalizeVel(u.Add(p.Mul(MinkDot(u, p))))
}

// PixelFunc is a bound pixel pipeline: Run wires camera, field and shading
// into one of these and the renderer dispatches it over the device grid.
type PixelFunc func(u, v Real) RGB

// Frame is a flat float framebuffer: (j*W + i)*3 + c.
type Frame struct {
	W, H int
	Buf  []Real
}

func NewFrame(w, h int) *Frame {
	if w <= 0 || h <= 0 {
		panic("frame resolution must be positive")
	}
	return &Frame{W: w, H: h, Buf: make([]Real, w*h*3)}
}

// Flat buffer index helper (c in {ChR,ChG,ChB}).
func (fr *Frame) idx(i, j, c int) int {
	return (j*fr.W+i)*3 + c
}

func (fr *Frame) Set(i, j int, c RGB) {
	base := fr.idx(i, j, ChR)
	fr.Buf[base+0] = c.R
	fr.Buf[base+1] = c.G
	fr.Buf[base+2] = c.B
}

func (fr *Frame) At(i, j int) RGB {
	base := fr.idx(i, j, ChR)
	return RGB{fr.Buf[base+0], fr.Buf[base+1], fr.Buf[base+2]}
}

// maxChannel finds the peak channel value across the frame (for consistent
// brightness when tone-mapping).
func (fr *Frame) maxChannel() Real {
	maxv := Real(0)
	for i := 0; i < len(fr.Buf); i++ {
		if fr.Buf[i] > maxv {
			maxv = fr.Buf[i]
		}
	}
	if maxv == 0 {
		maxv = 1 // avoid div-by-zero
	}
	return maxv
}

// RenderFrame runs fn for every pixel, one NumCPU worker pool over rows.
// Rows partition the buffer so workers never share a pixel; result is
// independent of scheduling order.
func RenderFrame(w, h int, fn PixelFunc) *Frame {
	fr := NewFrame(w, h)
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}

	var nextRow int64 = -1
	var done int64
	printStep := int64(h / 100) // ~1% steps; silent for small frames
	var wg sync.WaitGroup
	wg.Add(workers)
	for wid := 0; wid < workers; wid++ {
		go func() {
			defer wg.Done()
			for {
				j := int(atomic.AddInt64(&nextRow, 1))
				if j >= h {
					return
				}
				v := 1 - 2*(Real(j)+0.5)/Real(h)
				for i := 0; i < w; i++ {
					u := 2*(Real(i)+0.5)/Real(w) - 1
					fr.Set(i, j, fn(u, v))
				}
				if Progress && printStep > 0 {
					if d := atomic.AddInt64(&done, 1); d%printStep == 0 {
						fmt.Printf("[PROGRESS] %.2f%%\n", float64(d)*100/float64(h))
					}
				}
			}
		}()
	}
	wg.Wait()
	return fr
}
