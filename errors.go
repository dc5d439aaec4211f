package planar

import "github.com/pkg/errors"

// Malformed inputs are the only errors this package produces. Irregular but
// valid configurations (parallel lines asked for a crossing point, disjoint
// circles asked for intersections, a point inside a circle asked for
// tangents) are not errors; they come back as empty results.
var (
	// ErrDegenerateInput is returned by constructors: a Line or Segment whose
	// endpoints coincide within tolerance, a Circle with a non-positive
	// radius, or a Polygon left with no vertices.
	ErrDegenerateInput = errors.New("planar: degenerate input")

	// ErrDivisionByZero is returned by Point.Div for an exact-zero divisor.
	ErrDivisionByZero = errors.New("planar: division by zero")

	// ErrUnsupportedOperand reports a Liner implementation other than Line or
	// Segment handed to a crossing predicate. The operand set is closed, so
	// this is a contract violation and the predicates panic with it.
	ErrUnsupportedOperand = errors.New("planar: unsupported operand type")
)
