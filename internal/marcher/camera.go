package marcher

import (
	"fmt"
	"math"
)

// Ray is an origin plus a unit direction, rebuilt fresh for every pixel.
type Ray struct {
	Origin Point3
	Dir    Vector3
}

// Camera is the per-frame immutable snapshot the frame driver supplies:
// pose, projection factors and the integrator's tunables.
type Camera struct {
	Position   Point3
	Forward    Vector3
	Horizontal Vector3
	Vertical   Vector3

	Aspect Real
	Zoom   Real

	MaxSteps int
	MinDist  Real
	MaxDist  Real
}

// NewCamera builds a camera looking from pos toward target with the given up
// hint. The basis is orthonormalized with cross products. Integrator
// tunables start at package defaults; callers override fields afterwards.
func NewCamera(pos, target Point3, up Vector3, aspect, zoom Real) (*Camera, error) {
	fwd := target.Sub(pos)
	if fwd.Len() == 0 {
		return nil, fmt.Errorf("camera target equals position %+v", pos)
	}
	if !isFinite(pos.X) || !isFinite(pos.Y) || !isFinite(pos.Z) {
		return nil, fmt.Errorf("camera position not finite: %+v", pos)
	}
	fwd = fwd.Norm()
	horiz := fwd.Cross(up)
	if horiz.Len() < 1e-12 {
		return nil, fmt.Errorf("up vector %+v parallel to view direction", up)
	}
	horiz = horiz.Norm()
	vert := horiz.Cross(fwd)
	if aspect <= 0 {
		aspect = 1
	}
	if zoom <= 0 {
		zoom = 1
	}
	c := &Camera{
		Position:   pos,
		Forward:    fwd,
		Horizontal: horiz,
		Vertical:   vert,
		Aspect:     aspect,
		Zoom:       zoom,
		MaxSteps:   MaxSteps,
		MinDist:    MinDist,
		MaxDist:    MaxDist,
	}
	DebugLog("Created camera: %+v", c)
	return c, nil
}

// Ray maps a normalized device coordinate in [-1,1]^2 to a world ray.
// Zoom divides the coordinate range first, then the horizontal extent is
// scaled by the aspect ratio so non-square viewports do not stretch.
func (c *Camera) Ray(u, v Real) Ray {
	u = u / c.Zoom * c.Aspect
	v = v / c.Zoom
	dir := c.Forward.Add(c.Horizontal.Mul(u)).Add(c.Vertical.Mul(v)).Norm()
	return Ray{Origin: c.Position, Dir: dir}
}

// HypRay is a hyperbolic ray: a hyperboloid position plus a unit tangent.
type HypRay struct {
	Origin  Vec4
	Tangent Vec4
}

// HypCamera is the hyperbolic counterpart of Camera: a frame on the
// hyperboloid plus projection and integrator tunables.
type HypCamera struct {
	Transform HypTransform

	TanFov Real
	Aspect Real

	MaxSteps int
	MinDist  Real
	MaxDist  Real
}

// NewHypCamera starts at the hyperboloid base point with the default frame.
func NewHypCamera(aspect Real) *HypCamera {
	if aspect <= 0 {
		aspect = 1
	}
	return &HypCamera{
		Transform: NewHypTransform(),
		TanFov:    math.Tan(7.0 / 18.0 * math.Pi),
		Aspect:    aspect,
		MaxSteps:  MaxSteps,
		MinDist:   MinDist,
		MaxDist:   MaxDist,
	}
}

// Ray maps a normalized device coordinate to a geodesic ray: the tangent is
// forward plus fov-scaled right/up components, renormalized in the Minkowski
// metric.
func (c *HypCamera) Ray(u, v Real) HypRay {
	u = u * c.TanFov * c.Aspect
	v = v * c.TanFov
	tr := &c.Transform
	t := tr.Forward.Add(tr.Right.Mul(u)).Add(tr.Up.Mul(v))
	return HypRay{Origin: tr.Translation, Tangent: HypNormalizeVel(t)}
}
