package ornament

// DefaultPrecision is the angular step, in radians, between the vertices
// of an approximated circle when no precision is given.
const DefaultPrecision = 0.1

// Option configures vertex placement and shape construction.
// Options that do not apply to a constructor are ignored by it.
//
// Example:
//
//	// A pentagram rotated a quarter turn, centred at (10, 20)
//	p, err := ornament.NewRegularPolygon(100, 5,
//	    ornament.WithDensity(2),
//	    ornament.WithCentre(ornament.Pt(10, 20)),
//	    ornament.WithAngleOffset(math.Pi/2),
//	)
type Option func(*options)

// options holds the optional parameters of a shape.
type options struct {
	density     int
	centre      Point
	angleOffset float64
	precision   float64
}

// defaultOptions returns a simple polygon centred at the origin,
// unrotated, with circles approximated at DefaultPrecision.
func defaultOptions() options {
	return options{
		density:   1,
		centre:    Origin,
		precision: DefaultPrecision,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithDensity sets the star density: the number of vertices skipped plus one
// when connecting edges. Density 1 is a simple convex polygon.
func WithDensity(d int) Option {
	return func(o *options) {
		o.density = d
	}
}

// WithCentre sets the centre of the shape.
func WithCentre(c Point) Option {
	return func(o *options) {
		o.centre = c
	}
}

// WithAngleOffset rotates the shape anticlockwise about its centre by the
// given angle in radians.
func WithAngleOffset(a float64) Option {
	return func(o *options) {
		o.angleOffset = a
	}
}

// WithPrecision sets the angular step, in radians, between the vertices
// of an approximated circle. Smaller values give smoother circles.
func WithPrecision(p float64) Option {
	return func(o *options) {
		o.precision = p
	}
}
