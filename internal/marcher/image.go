package marcher

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"math"
	"os"
)

// toneScale picks the tone-mapping scale for a frame: HDR frames are
// normalized by their peak channel, already-bounded frames pass through.
func (fr *Frame) toneScale() Real {
	m := fr.maxChannel()
	if m < 1 {
		m = 1
	}
	return 1 / m
}

// toU16 maps a scalar to [0..65535] with gamma.
func toU16(v, scale, gamma Real) uint16 {
	if v <= 0 {
		return 0
	}
	n := v * scale
	if n > 1 {
		n = 1
	}
	if gamma != 1 {
		n = math.Pow(n, 1.0/gamma)
	}
	x := math.Round(n * 65535.0)
	if x < 0 {
		return 0
	}
	if x > 65535 {
		return 65535
	}
	return uint16(x)
}

// SavePNG16 writes the frame as a lossless 16-bit-per-channel PNG. The only
// quantization is the float-radiance -> 16-bit mapping with tone scale and
// gamma.
func (fr *Frame) SavePNG16(path string, gamma Real) error {
	scale := fr.toneScale()
	img := image.NewNRGBA64(image.Rect(0, 0, fr.W, fr.H))
	const pxBytes = 8 // 4 channels * 2 bytes/channel
	for j := 0; j < fr.H; j++ {
		rowOff := j * img.Stride
		for i := 0; i < fr.W; i++ {
			base := fr.idx(i, j, ChR)
			r := toU16(fr.Buf[base+0], scale, gamma)
			g := toU16(fr.Buf[base+1], scale, gamma)
			b := toU16(fr.Buf[base+2], scale, gamma)
			a := uint16(0xFFFF)

			p := rowOff + i*pxBytes
			// NRGBA64 stores big-endian uint16 per channel: R, G, B, A.
			img.Pix[p+0] = uint8(r >> 8)
			img.Pix[p+1] = uint8(r)
			img.Pix[p+2] = uint8(g >> 8)
			img.Pix[p+3] = uint8(g)
			img.Pix[p+4] = uint8(b >> 8)
			img.Pix[p+5] = uint8(b)
			img.Pix[p+6] = uint8(a >> 8)
			img.Pix[p+7] = uint8(a)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression} // still lossless
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteRGBA tone-maps the frame into an 8-bit RGBA byte slice (len >=
// W*H*4), for consumers that blit to a live window instead of a file.
func (fr *Frame) WriteRGBA(dst []byte, gamma Real) {
	scale := fr.toneScale()
	for j := 0; j < fr.H; j++ {
		for i := 0; i < fr.W; i++ {
			base := fr.idx(i, j, ChR)
			p := (j*fr.W + i) * 4
			dst[p+0] = uint8(toU16(fr.Buf[base+0], scale, gamma) >> 8)
			dst[p+1] = uint8(toU16(fr.Buf[base+1], scale, gamma) >> 8)
			dst[p+2] = uint8(toU16(fr.Buf[base+2], scale, gamma) >> 8)
			dst[p+3] = 0xFF
		}
	}
}

// SaveAnimatedGIF writes one GIF frame per rendered frame (a camera orbit).
// delay is in 100ths of a second (e.g., 5 => 20 fps).
func SaveAnimatedGIF(frames []*Frame, path string, delay int, gamma Real) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to encode")
	}
	w, h := frames[0].W, frames[0].H
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}
	rgba := image.NewNRGBA(image.Rect(0, 0, w, h))

	for fi, fr := range frames {
		if fr.W != w || fr.H != h {
			return fmt.Errorf("frame %d resolution %dx%d != %dx%d", fi, fr.W, fr.H, w, h)
		}
		scale := fr.toneScale()
		for j := 0; j < h; j++ {
			for i := 0; i < w; i++ {
				base := fr.idx(i, j, ChR)
				p := rgba.PixOffset(i, j)
				rgba.Pix[p+0] = uint8(toU16(fr.Buf[base+0], scale, gamma) >> 8)
				rgba.Pix[p+1] = uint8(toU16(fr.Buf[base+1], scale, gamma) >> 8)
				rgba.Pix[p+2] = uint8(toU16(fr.Buf[base+2], scale, gamma) >> 8)
				rgba.Pix[p+3] = 255
			}
		}

		// Quantize to paletted for GIF
		pimg := image.NewPaletted(rgba.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})

		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)

		if Progress {
			fmt.Printf("[GIF] %.2f%%\n", float64(fi+1)*100/float64(len(frames)))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, out)
}
