package ornament

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// CircleSides returns the number of sides of the regular polygon used to
// approximate a circle: round(2*pi/precision), halves rounding to even.
// It returns an error wrapping ErrInvalidParameter when precision <= 0 or
// so small that the side count does not fit in an int.
func CircleSides(precision float64) (int, error) {
	if !(precision > 0) {
		return 0, invalid("precision", precision, "must be > 0")
	}
	n := scalar.RoundEven(2*math.Pi/precision, 0)
	if !(n < float64(math.MaxInt)) {
		return 0, invalid("precision", precision, "too small")
	}
	return int(n), nil
}

// ApproximateCircle computes the outline of a circle approximated by a
// regular polygon with CircleSides(precision) sides. Only WithCentre is
// honoured; density is always 1 and the angle offset 0.
//
// A precision coarse enough to give fewer than three sides is rejected by
// the same validation as Vertices.
func ApproximateCircle(radius, precision float64, opts ...Option) (Outline, error) {
	sides, err := CircleSides(precision)
	if err != nil {
		return Outline{}, err
	}
	o := applyOptions(opts)
	return Vertices(radius, sides, WithCentre(o.centre))
}
