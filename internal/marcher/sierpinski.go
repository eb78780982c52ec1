package marcher

import (
	"fmt"
	"math"
)

// Sierpinski is an iterated-function-system estimator for the Sierpinski
// tetrahedron: fold the point toward the nearest of four corners N times,
// rescaling by a contraction factor each fold, then measure the exact
// distance to the base tetrahedron and undo the accumulated scaling.
// Several tetrahedra can be placed along the X axis and unioned by min.
type Sierpinski struct {
	Iterations int
	Scale      Real
	Offsets    []Vector3

	corners  [4]Vector3
	invScale Real // Scale^-Iterations
}

var tetraCorners = [4]Vector3{
	{1, 1, 1},
	{-1, -1, 1},
	{1, -1, -1},
	{-1, 1, -1},
}

// tetraFaces indexes tetraCorners; each face omits one corner.
var tetraFaces = [4][3]int{
	{0, 1, 2},
	{0, 1, 3},
	{0, 2, 3},
	{1, 2, 3},
}

func NewSierpinski(iterations int, scale Real, count int, spacing Real) (*Sierpinski, error) {
	if iterations <= 0 {
		return nil, fmt.Errorf("iterations must be > 0, got %d", iterations)
	}
	if scale <= 1 {
		return nil, fmt.Errorf("contraction factor must be > 1, got %.6g", scale)
	}
	if count < 1 {
		return nil, fmt.Errorf("tetrahedron count must be >= 1, got %d", count)
	}
	s := &Sierpinski{
		Iterations: iterations,
		Scale:      scale,
		corners:    tetraCorners,
		invScale:   math.Pow(scale, -Real(iterations)),
	}
	half := Real(count-1) * 0.5
	for i := 0; i < count; i++ {
		s.Offsets = append(s.Offsets, Vector3{(Real(i) - half) * spacing, 0, 0})
	}
	DebugLog("Created sierpinski: iterations=%d scale=%.3f offsets=%d", iterations, scale, count)
	return s, nil
}

func (s *Sierpinski) Evaluate(p Point3) DEResult {
	best := math.Inf(1)
	mat := MaterialBackground
	for i, off := range s.Offsets {
		d := s.tetraDE(Vector3{p.X - off.X, p.Y - off.Y, p.Z - off.Z})
		if d < best {
			best = d
			mat = i + 1
		}
	}
	return DEResult{Dist: best, Iterations: s.Iterations, Material: mat}
}

// tetraDE folds z toward its nearest corner Iterations times, then evaluates
// the exact tetrahedron distance and rescales back.
func (s *Sierpinski) tetraDE(z Vector3) Real {
	for n := 0; n < s.Iterations; n++ {
		c := s.corners[0]
		dist := z.Sub(c).Dot(z.Sub(c))
		for i := 1; i < 4; i++ {
			d := z.Sub(s.corners[i]).Dot(z.Sub(s.corners[i]))
			if d < dist {
				c = s.corners[i]
				dist = d
			}
		}
		z = z.Mul(s.Scale).Sub(c.Mul(s.Scale - 1))
	}
	d := math.Inf(1)
	for _, f := range tetraFaces {
		t := triangleDist(z, s.corners[f[0]], s.corners[f[1]], s.corners[f[2]])
		if t < d {
			d = t
		}
	}
	return d * s.invScale
}

// triangleDist is the exact point-to-triangle distance: plane projection
// when the projection falls inside the triangle, nearest clamped edge
// otherwise.
func triangleDist(p, a, b, c Vector3) Real {
	ba := b.Sub(a)
	pa := p.Sub(a)
	cb := c.Sub(b)
	pb := p.Sub(b)
	ac := a.Sub(c)
	pc := p.Sub(c)
	nor := ba.Cross(ac)

	inside := 0
	if ba.Cross(nor).Dot(pa) > 0 {
		inside++
	}
	if cb.Cross(nor).Dot(pb) > 0 {
		inside++
	}
	if ac.Cross(nor).Dot(pc) > 0 {
		inside++
	}
	if inside == 3 {
		n2 := nor.Dot(nor)
		if n2 == 0 {
			return pa.Len() // degenerate face
		}
		d := nor.Dot(pa)
		return math.Abs(d) / math.Sqrt(n2)
	}
	d := segmentDist2(pa, ba)
	if t := segmentDist2(pb, cb); t < d {
		d = t
	}
	if t := segmentDist2(pc, ac); t < d {
		d = t
	}
	return math.Sqrt(d)
}

// segmentDist2 is the squared distance from point pa (relative to the
// segment start) to the segment with direction ba.
func segmentDist2(pa, ba Vector3) Real {
	t := pa.Dot(ba) / ba.Dot(ba)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	d := pa.Sub(ba.Mul(t))
	return d.Dot(d)
}
