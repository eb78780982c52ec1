package marcher

import "math"

// Vec4 is a point or tangent vector in the hyperboloid model of hyperbolic
// 3-space, embedded in Minkowski R^(3,1). Positions satisfy <p,p> = -1 with
// W > 0, unit tangents satisfy <v,v> = +1.
type Vec4 struct {
	X, Y, Z, W Real
}

func (a Vec4) Add(b Vec4) Vec4 { return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }
func (a Vec4) Sub(b Vec4) Vec4 { return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W} }
func (v Vec4) Mul(s Real) Vec4 { return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// MinkDot returns the Minkowski bilinear form with signature (+,+,+,-).
func MinkDot(a, b Vec4) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z - a.W*b.W
}

// HypNormalizePos rescales p onto the hyperboloid <p,p> = -1, keeping the
// W > 0 sheet.
func HypNormalizePos(p Vec4) Vec4 {
	p2 := MinkDot(p, p)
	l := math.Sqrt(math.Abs(p2))
	if l == 0 {
		return HypOrigin()
	}
	p = p.Mul(1 / l)
	if p.W < 0 {
		p = p.Mul(-1)
	}
	return p
}

// HypNormalizeVel rescales a tangent vector to <v,v> = +1.
// If the vector is (near) degenerate, it returns the input unchanged.
func HypNormalizeVel(v Vec4) Vec4 {
	v2 := MinkDot(v, v)
	l := math.Sqrt(math.Abs(v2))
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// HypOrigin is the base point of the hyperboloid.
func HypOrigin() Vec4 { return Vec4{0, 0, 0, 1} }

// Geodesic flows from position p along unit tangent v for hyperbolic
// distance t: p*cosh(t) + v*sinh(t).
func Geodesic(p, v Vec4, t Real) Vec4 {
	ct, st := coshSinh(t)
	return p.Mul(ct).Add(v.Mul(st))
}

// GeodesicVel is the unit tangent of the same geodesic at parameter t.
func GeodesicVel(p, v Vec4, t Real) Vec4 {
	ct, st := coshSinh(t)
	return p.Mul(st).Add(v.Mul(ct))
}

// HypDist returns the hyperbolic distance between two positions on the
// hyperboloid: acosh(-<p,q>).
func HypDist(p, q Vec4) Real {
	d := -MinkDot(p, q)
	if d < 1 {
		d = 1
	}
	return math.Acosh(d)
}

func coshSinh(t Real) (Real, Real) {
	e := math.Exp(t)
	ei := 1 / e
	return (e + ei) * 0.5, (e - ei) * 0.5
}

// HypTransform is a camera (or object) frame in hyperbolic space: a position
// plus a Minkowski-orthonormal tangent triple.
type HypTransform struct {
	Translation Vec4
	Forward     Vec4
	Right       Vec4
	Up          Vec4
}

// NewHypTransform returns the identity frame at the hyperboloid base point,
// looking down -Z.
func NewHypTransform() HypTransform {
	return HypTransform{
		Translation: HypOrigin(),
		Forward:     Vec4{0, 0, -1, 0},
		Right:       Vec4{1, 0, 0, 0},
		Up:          Vec4{0, 1, 0, 0},
	}
}

// Translate moves the frame by hyperbolic distance t along the local
// direction local (components along right/up/forward), parallel-transporting
// the basis: u' = u + <u,v>*(p*sinh(t) + v*(cosh(t)-1)).
func (tr *HypTransform) Translate(local Vector3, t Real) {
	if t == 0 || (local.X == 0 && local.Y == 0 && local.Z == 0) {
		return
	}
	v := tr.Right.Mul(local.X).Add(tr.Up.Mul(local.Y)).Add(tr.Forward.Mul(local.Z))
	v = HypNormalizeVel(v)

	p := tr.Translation
	ct, st := coshSinh(t)
	shift := p.Mul(st).Add(v.Mul(ct - 1))

	transport := func(u Vec4) Vec4 {
		return HypNormalizeVel(u.Add(shift.Mul(MinkDot(u, v))))
	}
	tr.Translation = HypNormalizePos(p.Mul(ct).Add(v.Mul(st)))
	tr.Forward = transport(tr.Forward)
	tr.Right = transport(tr.Right)
	tr.Up = transport(tr.Up)
}

func (tr *HypTransform) TranslateForward(t Real) { tr.Translate(Vector3{0, 0, 1}, t) }
func (tr *HypTransform) TranslateRight(t Real)   { tr.Translate(Vector3{1, 0, 0}, t) }
func (tr *HypTransform) TranslateUp(t Real)      { tr.Translate(Vector3{0, 1, 0}, t) }

// RotateYaw rotates forward toward right inside the tangent plane.
func (tr *HypTransform) RotateYaw(a Real) {
	c, s := math.Cos(a), math.Sin(a)
	f := tr.Forward.Mul(c).Add(tr.Right.Mul(s))
	r := tr.Right.Mul(c).Sub(tr.Forward.Mul(s))
	tr.Forward = HypNormalizeVel(f)
	tr.Right = HypNormalizeVel(r)
}

// RotatePitch rotates forward toward up inside the tangent plane.
func (tr *HypTransform) RotatePitch(a Real) {
	c, s := math.Cos(a), math.Sin(a)
	f := tr.Forward.Mul(c).Add(tr.Up.Mul(s))
	u := tr.Up.Mul(c).Sub(tr.Forward.Mul(s))
	tr.Forward = HypNormalizeVel(f)
	tr.Up = HypNormalizeVel(u)
}
