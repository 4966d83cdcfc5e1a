package geom

import (
	"fmt"
)

// Polygon is a planar convex vertex loop. It only ever appears as the
// result of an intersection query (plane sections, coplanar triangle
// overlaps, face clips); it is not one of the primitive kinds the engine
// dispatches on.
type Polygon struct {
	verts []*Point
	plane *Plane
}

// NewPolygon builds a polygon from at least three loop-ordered coplanar
// vertices.
func NewPolygon(plane *Plane, verts []*Point) (*Polygon, error) {
	if len(verts) < 3 {
		return nil, degenerate("polygon with %d vertices", len(verts))
	}
	for _, v := range verts {
		if !plane.ContainsPoint(v) {
			return nil, degenerate("polygon vertex %s off its plane", v)
		}
	}
	return &Polygon{verts: verts, plane: plane}, nil
}

// Vertices returns the vertex loop.
func (pg *Polygon) Vertices() []*Point {
	out := make([]*Point, len(pg.verts))
	copy(out, pg.verts)
	return out
}

// Plane returns the carrier plane.
func (pg *Polygon) Plane() *Plane { return pg.plane }

// Translate returns the polygon moved by w.
func (pg *Polygon) Translate(w *Vector) *Polygon {
	verts := make([]*Point, len(pg.verts))
	for i, v := range pg.verts {
		verts[i] = v.Translate(w)
	}
	return &Polygon{verts: verts, plane: pg.plane.Translate(w)}
}

func (pg *Polygon) String() string {
	return fmt.Sprintf("Polygon[%d vertices]", len(pg.verts))
}

// Polyhedron is a convex volume described by its boundary faces. It is the
// result kind of a volumetric tetrahedron-tetrahedron overlap.
type Polyhedron struct {
	faces []*Polygon
}

// Faces returns the boundary polygons.
func (ph *Polyhedron) Faces() []*Polygon {
	out := make([]*Polygon, len(ph.faces))
	copy(out, ph.faces)
	return out
}

func (ph *Polyhedron) String() string {
	return fmt.Sprintf("Polyhedron[%d faces]", len(ph.faces))
}
