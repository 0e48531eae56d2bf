package ornament

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is the single error kind reported by the geometry
// engine. It is returned synchronously by constructors and vertex
// computations, never while drawing.
var ErrInvalidParameter = errors.New("ornament: invalid parameter")

// ParamError describes which parameter was rejected and why.
// It matches ErrInvalidParameter with errors.Is.
type ParamError struct {
	Param  string
	Value  any
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("ornament: invalid %s %v: %s", e.Param, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidParameter.
func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}

func invalid(param string, value any, reason string) error {
	return &ParamError{Param: param, Value: value, Reason: reason}
}

// validatePolygon checks the parameter domain shared by every polygon:
// a positive radius, density of at least 1 and at least 2*density+1 sides.
func validatePolygon(radius float64, sides, density int) error {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return invalid("radius", radius, "must be finite and > 0")
	}
	if density < 1 {
		return invalid("density", density, "must be >= 1")
	}
	if sides < 2*density+1 {
		return invalid("sides", sides, fmt.Sprintf("must be >= 2*density+1 (%d)", 2*density+1))
	}
	return nil
}
