package io

import (
	"fmt"
	"math/big"

	"github.com/phil-mansfield/table"

	"github.com/exactgeom/exactgeom/geom"
)

// ReadPoints reads a whitespace table of x y z rows into exact points. The
// table values pass through float64, so coordinates keep whatever precision
// a decimal literal has at double precision.
func ReadPoints(fname string) ([]*geom.Point, error) {
	cols, err := table.ReadTable(fname, []int{0, 1, 2}, nil)
	if err != nil {
		return nil, err
	}

	xs, ys, zs := cols[0], cols[1], cols[2]
	pts := make([]*geom.Point, len(xs))
	for i := range pts {
		x := new(big.Rat).SetFloat64(xs[i])
		if x == nil {
			return nil, fmt.Errorf("Row %d of '%s' is not finite.", i+1, fname)
		}
		y := new(big.Rat).SetFloat64(ys[i])
		if y == nil {
			return nil, fmt.Errorf("Row %d of '%s' is not finite.", i+1, fname)
		}
		z := new(big.Rat).SetFloat64(zs[i])
		if z == nil {
			return nil, fmt.Errorf("Row %d of '%s' is not finite.", i+1, fname)
		}
		pts[i] = geom.NewPoint(x, y, z)
	}
	return pts, nil
}
