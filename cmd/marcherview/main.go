// Interactive viewer: renders the same configs as cmd/marcher into a live
// window, with keyboard camera control and live fractal parameter tuning.
//
//	W/S A/D R/F  move forward/back, strafe, up/down
//	arrow keys   look around
//	Q/E          Mandelbulb power down/up
//	Z/X          Mandelbulb iteration cap down/up
//	P            switch palette
//	Esc          quit
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"marcher/internal/marcher"
)

const (
	screenSize = 720
	renderSize = 240

	moveSpeed = 1.5 / 60.0
	turnSpeed = 1.2 / 60.0
)

type game struct {
	cfg *marcher.Config
	sh  *marcher.Shading

	hyp      bool
	field    marcher.Field
	hypField marcher.HypField

	// Euclidean pose
	pos        marcher.Point3
	yaw, pitch float64

	// hyperbolic pose
	transform marcher.HypTransform

	// live Mandelbulb knobs
	bulb    bool
	power   float64
	iters   int
	bailout float64
	useHSV  bool

	offscreen *ebiten.Image
	pix       []byte
	dirty     bool
}

func newGame(cfg *marcher.Config) (*game, error) {
	sh, err := cfg.BuildShading()
	if err != nil {
		return nil, err
	}
	g := &game{
		cfg:       cfg,
		sh:        sh,
		offscreen: ebiten.NewImage(renderSize, renderSize),
		pix:       make([]byte, renderSize*renderSize*4),
		dirty:     true,
	}
	if cfg.Variant == marcher.VariantHyperbolic {
		g.hyp = true
		g.hypField, err = cfg.BuildHypField()
		if err != nil {
			return nil, err
		}
		g.transform = marcher.NewHypTransform()
		return g, nil
	}
	g.field, err = cfg.BuildField()
	if err != nil {
		return nil, err
	}
	if mb, ok := g.field.(*marcher.Mandelbulb); ok {
		g.bulb = true
		g.power = mb.Power
		g.iters = mb.MaxIterations
		g.bailout = mb.Bailout
	}
	g.pos = cfg.Camera.Position
	fwd := cfg.Camera.Target.Sub(cfg.Camera.Position).Norm()
	g.pitch = math.Asin(fwd.Y)
	g.yaw = math.Atan2(fwd.X, -fwd.Z)
	return g, nil
}

func (g *game) forward() marcher.Vector3 {
	cp := math.Cos(g.pitch)
	return marcher.Vector3{cp * math.Sin(g.yaw), math.Sin(g.pitch), -cp * math.Cos(g.yaw)}
}

func (g *game) right() marcher.Vector3 {
	return g.forward().Cross(marcher.Vector3{0, 1, 0}).Norm()
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	var move marcher.Vector3
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		move.Z++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		move.Z--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		move.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		move.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyR) {
		move.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyF) {
		move.Y--
	}

	var dyaw, dpitch float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dyaw += turnSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dyaw -= turnSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dpitch += turnSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dpitch -= turnSpeed
	}

	if move.Len() > 0 || dyaw != 0 || dpitch != 0 {
		g.dirty = true
		if g.hyp {
			g.transform.Translate(move.Norm(), moveSpeed)
			g.transform.RotateYaw(dyaw)
			g.transform.RotatePitch(dpitch)
		} else {
			m := move.Norm().Mul(moveSpeed)
			g.pos = g.pos.Add(g.forward().Mul(m.Z)).Add(g.right().Mul(m.X)).Add(marcher.Vector3{0, m.Y, 0})
			g.yaw += dyaw
			g.pitch += dpitch
			if g.pitch > 1.5 {
				g.pitch = 1.5
			}
			if g.pitch < -1.5 {
				g.pitch = -1.5
			}
		}
	}

	if g.bulb {
		power, iters := g.power, g.iters
		if ebiten.IsKeyPressed(ebiten.KeyE) {
			power += 2.0 / 60.0
		}
		if ebiten.IsKeyPressed(ebiten.KeyQ) {
			power -= 2.0 / 60.0
		}
		if power < 2 {
			power = 2
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyX) {
			iters++
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyZ) && iters > 1 {
			iters--
		}
		if power != g.power || iters != g.iters {
			mb, err := marcher.NewMandelbulb(power, iters, g.bailout)
			if err != nil {
				return err
			}
			g.power, g.iters = power, iters
			g.field = mb
			g.sh.PaletteIter = iters
			g.dirty = true
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyP) {
			g.useHSV = !g.useHSV
			if g.useHSV {
				g.sh.Palette = marcher.HSVPalette
			} else {
				g.sh.Palette = marcher.SinePalette
			}
			g.dirty = true
		}
	}
	return nil
}

func (g *game) render() {
	var fr *marcher.Frame
	if g.hyp {
		cam := g.cfg.BuildHypCamera(1)
		cam.Transform = g.transform
		f, sh := g.hypField, g.sh
		fr = marcher.RenderFrame(renderSize, renderSize, func(u, v marcher.Real) marcher.RGB {
			return marcher.ShadePixelHyp(u, v, cam, f, sh)
		})
	} else {
		cc := g.cfg.Camera
		cc.Position = g.pos
		cc.Target = g.pos.Add(g.forward())
		cam, err := cc.Build(1)
		if err != nil {
			return // degenerate pitch; keep the previous frame
		}
		f, sh := g.field, g.sh
		fr = marcher.RenderFrame(renderSize, renderSize, func(u, v marcher.Real) marcher.RGB {
			return marcher.ShadePixel(u, v, cam, f, sh)
		})
	}
	fr.WriteRGBA(g.pix, g.cfg.Gamma)
	g.offscreen.WritePixels(g.pix)
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.dirty {
		g.render()
		g.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(screenSize)/renderSize, float64(screenSize)/renderSize)
	screen.DrawImage(g.offscreen, op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize, screenSize
}

func main() {
	marcher.Progress = false

	path := "scenes/config.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := marcher.LoadConfig(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	g, err := newGame(cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetWindowTitle("marcher")
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
