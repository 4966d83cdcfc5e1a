package geom

import (
	"fmt"
	"math/big"
	"sync"
)

// Tetrahedron is a finite polytope on four non-coplanar points.
type Tetrahedron struct {
	p, q, r, s *Point

	facesOnce sync.Once
	faces     [4]*Triangle

	centOnce sync.Once
	cent     *Point

	volOnce sync.Once
	vol     *big.Rat

	envOnce sync.Once
	env     *Envelope
}

// NewTetrahedron builds a tetrahedron on four points. A zero scalar triple
// product (q-p).((r-p) x (s-p)), meaning the fourth point is coplanar with
// the other three, is a degenerate input.
func NewTetrahedron(p, q, r, s *Point) (*Tetrahedron, error) {
	if signedTriple(p, q, r, s).Sign() == 0 {
		return nil, degenerate(
			"tetrahedron on coplanar points %s, %s, %s, %s", p, q, r, s)
	}
	return &Tetrahedron{p: p, q: q, r: r, s: s}, nil
}

// signedTriple returns (q-p).((r-p) x (s-p)), six times the signed volume.
func signedTriple(p, q, r, s *Point) *big.Rat {
	return q.Sub(p).Dot(r.Sub(p).Cross(s.Sub(p)))
}

// Points returns the four corners.
func (t *Tetrahedron) Points() [4]*Point {
	return [4]*Point{t.p, t.q, t.r, t.s}
}

// Faces returns the four triangular faces, each face opposite the
// same-index corner. Memoized.
func (t *Tetrahedron) Faces() [4]*Triangle {
	t.facesOnce.Do(func() {
		t.faces[0] = &Triangle{p: t.q, q: t.r, r: t.s} // opposite p
		t.faces[1] = &Triangle{p: t.p, q: t.r, r: t.s} // opposite q
		t.faces[2] = &Triangle{p: t.p, q: t.q, r: t.s} // opposite r
		t.faces[3] = &Triangle{p: t.p, q: t.q, r: t.r} // opposite s
	})
	return t.faces
}

// Edges returns the six edges.
func (t *Tetrahedron) Edges() [6]*LineSegment {
	return [6]*LineSegment{
		{p: t.p, q: t.q}, {p: t.p, q: t.r}, {p: t.p, q: t.s},
		{p: t.q, q: t.r}, {p: t.q, q: t.s}, {p: t.r, q: t.s},
	}
}

// Centroid returns the barycenter of the corners. Memoized.
func (t *Tetrahedron) Centroid() *Point {
	t.centOnce.Do(func() {
		quarter := big.NewRat(1, 4)
		sum := t.q.Sub(t.p).Add(t.r.Sub(t.p)).Add(t.s.Sub(t.p)).Scale(quarter)
		t.cent = t.p.Translate(sum)
	})
	return t.cent
}

// Volume returns the exact volume |(q-p).((r-p) x (s-p))| / 6. No square
// root is involved, so no rounding ever happens here.
func (t *Tetrahedron) Volume() *big.Rat {
	t.volOnce.Do(func() {
		v := signedTriple(t.p, t.q, t.r, t.s)
		v.Abs(v)
		t.vol = v.Quo(v, big.NewRat(6, 1))
	})
	return new(big.Rat).Set(t.vol)
}

// ContainsPoint reports whether x lies in the closed tetrahedron: for every
// face, x must be on the same side of the face plane as the opposite
// corner, or on the plane itself.
func (t *Tetrahedron) ContainsPoint(x *Point) bool {
	corners := t.Points()
	for i, face := range t.Faces() {
		pl := face.Plane()
		inner := pl.Side(corners[i])
		side := pl.Side(x)
		if side != 0 && side != inner {
			return false
		}
	}
	return true
}

// Translate returns the tetrahedron moved by w.
func (t *Tetrahedron) Translate(w *Vector) *Tetrahedron {
	return &Tetrahedron{
		p: t.p.Translate(w), q: t.q.Translate(w),
		r: t.r.Translate(w), s: t.s.Translate(w),
	}
}

// Envelope returns the corner bounding envelope. Memoized.
func (t *Tetrahedron) Envelope() *Envelope {
	t.envOnce.Do(func() {
		t.env = envelopeOfPoints(t.p, t.q, t.r, t.s)
	})
	return t.env
}

func (t *Tetrahedron) String() string {
	return fmt.Sprintf("Tetrahedron[%s, %s, %s, %s]",
		t.p.Pos(), t.q.Pos(), t.r.Pos(), t.s.Pos())
}
