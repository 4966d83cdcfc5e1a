// Package io reads scene configuration files and point tables for the
// command line tools.
package io

import (
	"fmt"
	"math/big"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/exactgeom/exactgeom/arith"
	"github.com/exactgeom/exactgeom/geom"
)

// ShapeConfig describes one primitive in a scene file. Coordinates are
// comma-separated rational triples, e.g. "1/2, 0, -3".
type ShapeConfig struct {
	// Required
	Kind string

	// P1..P4 are corner points; how many are required depends on Kind.
	P1, P2, P3, P4 string

	// Dir is an alternative to P2 for lines and rays, and the normal
	// for planes.
	Dir string

	Name string
}

var shapeKinds = []string{
	"Point", "Line", "Ray", "Plane", "LineSegment", "Triangle", "Tetrahedron",
}

func (sc *ShapeConfig) CheckInit(name string) error {
	sc.Name = name

	valid := false
	for _, k := range shapeKinds {
		if sc.Kind == k {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf(
			"Shape '%s' has Kind '%s'; accepted kinds are: %s.",
			name, sc.Kind, strings.Join(shapeKinds, ", "),
		)
	}

	if sc.P1 == "" {
		return fmt.Errorf("Need to specify 'P1' for Shape '%s'.", name)
	}

	switch sc.Kind {
	case "Line", "Ray", "Plane":
		if sc.P2 == "" && sc.Dir == "" {
			return fmt.Errorf(
				"Need 'P2' or 'Dir' for %s Shape '%s'.", sc.Kind, name,
			)
		}
	case "LineSegment":
		if sc.P2 == "" {
			return fmt.Errorf("Need 'P2' for LineSegment Shape '%s'.", name)
		}
	case "Triangle":
		if sc.P2 == "" || sc.P3 == "" {
			return fmt.Errorf(
				"Need 'P2' and 'P3' for Triangle Shape '%s'.", name,
			)
		}
	case "Tetrahedron":
		if sc.P2 == "" || sc.P3 == "" || sc.P4 == "" {
			return fmt.Errorf(
				"Need 'P2', 'P3' and 'P4' for Tetrahedron Shape '%s'.", name,
			)
		}
	}

	return nil
}

// Build constructs the described primitive. Degenerate coordinates come
// back as the construction error of the underlying kind.
func (sc *ShapeConfig) Build() (geom.Geometry, error) {
	p1, err := parsePoint(sc.Name, "P1", sc.P1)
	if err != nil {
		return nil, err
	}

	switch sc.Kind {
	case "Point":
		return p1, nil
	case "Line":
		if sc.Dir != "" {
			d, err := parseVector(sc.Name, "Dir", sc.Dir)
			if err != nil {
				return nil, err
			}
			return geom.NewLine(p1, d)
		}
		p2, err := parsePoint(sc.Name, "P2", sc.P2)
		if err != nil {
			return nil, err
		}
		return geom.NewLineFromPoints(p1, p2)
	case "Ray":
		if sc.Dir != "" {
			d, err := parseVector(sc.Name, "Dir", sc.Dir)
			if err != nil {
				return nil, err
			}
			return geom.NewRay(p1, d)
		}
		p2, err := parsePoint(sc.Name, "P2", sc.P2)
		if err != nil {
			return nil, err
		}
		return geom.NewRayFromPoints(p1, p2)
	case "Plane":
		if sc.Dir != "" {
			n, err := parseVector(sc.Name, "Dir", sc.Dir)
			if err != nil {
				return nil, err
			}
			return geom.NewPlane(p1, n)
		}
		p2, err := parsePoint(sc.Name, "P2", sc.P2)
		if err != nil {
			return nil, err
		}
		p3, err := parsePoint(sc.Name, "P3", sc.P3)
		if err != nil {
			return nil, err
		}
		return geom.NewPlaneFromPoints(p1, p2, p3)
	case "LineSegment":
		p2, err := parsePoint(sc.Name, "P2", sc.P2)
		if err != nil {
			return nil, err
		}
		return geom.NewLineSegment(p1, p2)
	case "Triangle":
		p2, err := parsePoint(sc.Name, "P2", sc.P2)
		if err != nil {
			return nil, err
		}
		p3, err := parsePoint(sc.Name, "P3", sc.P3)
		if err != nil {
			return nil, err
		}
		return geom.NewTriangle(p1, p2, p3)
	case "Tetrahedron":
		p2, err := parsePoint(sc.Name, "P2", sc.P2)
		if err != nil {
			return nil, err
		}
		p3, err := parsePoint(sc.Name, "P3", sc.P3)
		if err != nil {
			return nil, err
		}
		p4, err := parsePoint(sc.Name, "P4", sc.P4)
		if err != nil {
			return nil, err
		}
		return geom.NewTetrahedron(p1, p2, p3, p4)
	}
	return nil, fmt.Errorf("Shape '%s' has unknown Kind '%s'.", sc.Name, sc.Kind)
}

func parseTriple(shape, field, s string) ([3]*big.Rat, error) {
	var out [3]*big.Rat
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf(
			"'%s' of Shape '%s' must be three comma-separated rationals, "+
				"but is '%s'.", field, shape, s,
		)
	}
	for i, p := range parts {
		r, ok := new(big.Rat).SetString(strings.TrimSpace(p))
		if !ok {
			return out, fmt.Errorf(
				"Coordinate %d of '%s' in Shape '%s' is not a rational: '%s'.",
				i+1, field, shape, strings.TrimSpace(p),
			)
		}
		out[i] = r
	}
	return out, nil
}

func parsePoint(shape, field, s string) (*geom.Point, error) {
	c, err := parseTriple(shape, field, s)
	if err != nil {
		return nil, err
	}
	return geom.NewPoint(c[0], c[1], c[2]), nil
}

func parseVector(shape, field, s string) (*geom.Vector, error) {
	c, err := parseTriple(shape, field, s)
	if err != nil {
		return nil, err
	}
	return geom.NewVector(c[0], c[1], c[2]), nil
}

// IntersectConfig selects two shapes of a scene by name. When PointsFile
// is set it replaces B: every point of the table is tested against A.
type IntersectConfig struct {
	// Required
	A string

	// One of the two
	B          string
	PointsFile string
}

func (con *IntersectConfig) CheckInit() error {
	if con.A == "" {
		return fmt.Errorf("Need to specify 'A' in the [Intersect] section.")
	}
	if (con.B == "") == (con.PointsFile == "") {
		return fmt.Errorf(
			"Need exactly one of 'B' and 'PointsFile' in the " +
				"[Intersect] section.",
		)
	}
	return nil
}

// DistanceConfig selects two shapes and the rounding grid for the decimal
// distance. When PointsFile is set it replaces B, and the distance reported
// per point.
type DistanceConfig struct {
	// Required
	A string

	// One of the two
	B          string
	PointsFile string

	// Optional
	OOM    int
	Policy string
}

func (con *DistanceConfig) CheckInit() error {
	if con.A == "" {
		return fmt.Errorf("Need to specify 'A' in the [Distance] section.")
	}
	if (con.B == "") == (con.PointsFile == "") {
		return fmt.Errorf(
			"Need exactly one of 'B' and 'PointsFile' in the " +
				"[Distance] section.",
		)
	}
	if con.Policy == "" {
		con.Policy = "HalfEven"
	}
	if _, err := arith.ParsePolicy(con.Policy); err != nil {
		return err
	}
	return arith.CheckOOM(con.OOM)
}

// RoundingPolicy returns the parsed policy. CheckInit must have succeeded.
func (con *DistanceConfig) RoundingPolicy() arith.RoundingPolicy {
	p, err := arith.ParsePolicy(con.Policy)
	if err != nil {
		panic(err)
	}
	return p
}

// IntersectWrapper is the gcfg layout of an [Intersect] run.
type IntersectWrapper struct {
	Intersect IntersectConfig
	Shape     map[string]*ShapeConfig
}

// DistanceWrapper is the gcfg layout of a [Distance] run.
type DistanceWrapper struct {
	Distance DistanceConfig
	Shape    map[string]*ShapeConfig
}

// ReadIntersectConfig parses and validates an [Intersect] scene file.
func ReadIntersectConfig(fname string) (*IntersectWrapper, error) {
	wrap := &IntersectWrapper{}
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Intersect.CheckInit(); err != nil {
		return nil, err
	}
	if err := checkShapes(wrap.Shape); err != nil {
		return nil, err
	}
	return wrap, nil
}

// ReadDistanceConfig parses and validates a [Distance] scene file.
func ReadDistanceConfig(fname string) (*DistanceWrapper, error) {
	wrap := &DistanceWrapper{}
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Distance.CheckInit(); err != nil {
		return nil, err
	}
	if err := checkShapes(wrap.Shape); err != nil {
		return nil, err
	}
	return wrap, nil
}

func checkShapes(shapes map[string]*ShapeConfig) error {
	if len(shapes) == 0 {
		return fmt.Errorf("Need at least one [Shape \"name\"] section.")
	}
	for name, sc := range shapes {
		if err := sc.CheckInit(name); err != nil {
			return err
		}
	}
	return nil
}

// BuildShape looks a shape up by name and constructs it.
func BuildShape(shapes map[string]*ShapeConfig, name string) (geom.Geometry, error) {
	sc, ok := shapes[name]
	if !ok {
		return nil, fmt.Errorf("No [Shape \"%s\"] section in the config.", name)
	}
	return sc.Build()
}

const ExampleIntersectFile = `[Intersect]
A = diagonal
B = antidiagonal

[Shape "diagonal"]
Kind = Line
P1 = 0, 0, 0
P2 = 1, 1, 1

[Shape "antidiagonal"]
Kind = Line
P1 = 1, -1, 1
P2 = -1, 1, -1`

const ExampleDistanceFile = `[Distance]
A = probe
B = target
OOM = -6
Policy = HalfEven

[Shape "probe"]
Kind = Ray
P1 = 0, 0, 0
Dir = 1, 0, 0

[Shape "target"]
Kind = Triangle
P1 = 2, -1, 1
P2 = 2, 1, 1
P3 = 2, 0, 2`

const ExamplePointsFile = `0    0    0
0.5  0.5  0
1    1    1`
