package geom

import (
	"github.com/pkg/errors"
)

// ErrDegenerateInput is the sentinel for structurally invalid constructions:
// zero direction vectors, coincident segment endpoints, collinear triangle
// corners, coplanar tetrahedron corners. Constructors always validate; there
// is no unchecked fast path.
var ErrDegenerateInput = errors.New("degenerate input")

func degenerate(format string, args ...interface{}) error {
	return errors.Wrapf(ErrDegenerateInput, format, args...)
}

// IsDegenerate reports whether err came from a degenerate construction.
func IsDegenerate(err error) bool {
	return errors.Is(err, ErrDegenerateInput)
}
