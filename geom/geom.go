/*package geom computes three dimensional Euclidean geometry exactly.

Points, lines, rays, planes, line segments, triangles, tetrahedra and
axis-aligned envelopes are built on arbitrary-precision rationals from the
arith package. Every predicate (intersection existence, containment,
parallelism, side-of tests) is decided with exact rational arithmetic; a
result is rounded only when it is provably irrational, in which case the
caller supplies an order of magnitude and a rounding policy.

Distance clamping follows Schneider & Eberly; polytope clipping is
Sutherland-Hodgman with rational crossing parameters.

Every value is immutable after construction. Derived quantities (magnitude,
centroid, area, volume, envelope) are memoized with a publish-once
discipline, so values may be shared between concurrent readers.
*/
package geom

// Geometry is the closed set of primitive kinds the pairwise query engine
// operates on.
type Geometry interface {
	// Envelope returns the axis-aligned bounding envelope of the geometry,
	// or nil for unbounded kinds (lines, rays, planes).
	Envelope() *Envelope

	geometry()
}

func (p *Point) geometry()        {}
func (l *Line) geometry()         {}
func (r *Ray) geometry()          {}
func (pl *Plane) geometry()       {}
func (s *LineSegment) geometry()  {}
func (t *Triangle) geometry()     {}
func (t *Tetrahedron) geometry()  {}
