package ornament

import (
	"fmt"
	"math"
)

// Shape is a validated, value-like drawing descriptor.
// Shapes hold no reference to a canvas and carry no drawing state.
//
// Radius is positive for every constructed shape except an empty Nested,
// which reports 0 and draws nothing. Zero values also report 0 and draw
// nothing.
type Shape interface {
	Radius() float64
	Centre() Point
	Draw(c Canvas)
}

var (
	_ Shape = RegularPolygon{}
	_ Shape = Circle{}
	_ Shape = CircumscribedPolygon{}
	_ Shape = (*Nested)(nil)
)

// RegularPolygon is a regular polygon or star polygon inscribed in a circle
// of the given radius.
type RegularPolygon struct {
	radius      float64
	sides       int
	density     int
	centre      Point
	angleOffset float64
}

// NewRegularPolygon creates a polygon with the given circumradius and number
// of sides. WithDensity, WithCentre and WithAngleOffset apply.
//
// It returns an error wrapping ErrInvalidParameter when radius <= 0,
// density < 1 or sides < 2*density+1.
func NewRegularPolygon(radius float64, sides int, opts ...Option) (RegularPolygon, error) {
	o := applyOptions(opts)
	if err := validatePolygon(radius, sides, o.density); err != nil {
		return RegularPolygon{}, err
	}
	return RegularPolygon{
		radius:      radius,
		sides:       sides,
		density:     o.density,
		centre:      o.centre,
		angleOffset: o.angleOffset,
	}, nil
}

// Radius returns the circumradius.
func (p RegularPolygon) Radius() float64 { return p.radius }

// Centre returns the centre point.
func (p RegularPolygon) Centre() Point { return p.centre }

// Sides returns the number of vertices.
func (p RegularPolygon) Sides() int { return p.sides }

// Density returns the star density.
func (p RegularPolygon) Density() int { return p.density }

// AngleOffset returns the anticlockwise rotation in radians.
func (p RegularPolygon) AngleOffset() float64 { return p.angleOffset }

// ApothemRatio returns cos(pi*density/sides), the ratio of the radius of the
// largest concentric circle that fits inside the polygon to its circumradius.
func (p RegularPolygon) ApothemRatio() float64 {
	return math.Cos(math.Pi * float64(p.density) / float64(p.sides))
}

// Inradius returns the radius of the largest concentric circle inside the polygon.
func (p RegularPolygon) Inradius() float64 {
	return p.radius * p.ApothemRatio()
}

// Outline returns the vertex sequence of the polygon.
func (p RegularPolygon) Outline() Outline {
	return outline(p.radius, p.sides, p.density, p.centre, p.angleOffset)
}

// Draw strokes the polygon onto c.
func (p RegularPolygon) Draw(c Canvas) {
	stroke(c, p.Outline())
}

// scaled assumes ratio > 0.
func (p RegularPolygon) scaled(ratio float64) RegularPolygon {
	p.radius *= ratio
	return p
}

func (p RegularPolygon) String() string {
	return fmt.Sprintf("RegularPolygon{r=%g n=%d d=%d c=(%g,%g) a=%g}",
		p.radius, p.sides, p.density, p.centre.X, p.centre.Y, p.angleOffset)
}

// Circle is a circle approximated by a many-sided regular polygon.
type Circle struct {
	radius    float64
	centre    Point
	precision float64
	sides     int
}

// NewCircle creates a circle of the given radius. WithCentre and
// WithPrecision apply; precision defaults to DefaultPrecision.
//
// It returns an error wrapping ErrInvalidParameter when radius <= 0,
// precision <= 0, or precision is so coarse that fewer than three sides result.
func NewCircle(radius float64, opts ...Option) (Circle, error) {
	o := applyOptions(opts)
	sides, err := CircleSides(o.precision)
	if err != nil {
		return Circle{}, err
	}
	if err := validatePolygon(radius, sides, 1); err != nil {
		return Circle{}, err
	}
	return Circle{
		radius:    radius,
		centre:    o.centre,
		precision: o.precision,
		sides:     sides,
	}, nil
}

// Radius returns the radius.
func (c Circle) Radius() float64 { return c.radius }

// Centre returns the centre point.
func (c Circle) Centre() Point { return c.centre }

// Precision returns the angular step between approximation vertices.
func (c Circle) Precision() float64 { return c.precision }

// Sides returns the number of sides of the approximating polygon.
func (c Circle) Sides() int { return c.sides }

// Polygon returns the equivalent regular polygon: density 1, no rotation.
func (c Circle) Polygon() RegularPolygon {
	return RegularPolygon{
		radius:  c.radius,
		sides:   c.sides,
		density: 1,
		centre:  c.centre,
	}
}

// Draw strokes the circle onto c.
func (c Circle) Draw(cv Canvas) {
	c.Polygon().Draw(cv)
}

func (c Circle) scaled(ratio float64) Circle {
	c.radius *= ratio
	return c
}

// CircumscribedPolygon is a regular polygon together with the circle passing
// through its vertices. Both share the same radius and centre.
type CircumscribedPolygon struct {
	circle  Circle
	polygon RegularPolygon
}

// NewCircumscribedPolygon creates a polygon and its circumscribed circle.
// All options apply: WithDensity and WithAngleOffset to the polygon,
// WithPrecision to the circle, WithCentre to both.
func NewCircumscribedPolygon(radius float64, sides int, opts ...Option) (CircumscribedPolygon, error) {
	poly, err := NewRegularPolygon(radius, sides, opts...)
	if err != nil {
		return CircumscribedPolygon{}, err
	}
	o := applyOptions(opts)
	circle, err := NewCircle(radius, WithCentre(o.centre), WithPrecision(o.precision))
	if err != nil {
		return CircumscribedPolygon{}, err
	}
	return CircumscribedPolygon{circle: circle, polygon: poly}, nil
}

// Circumscribe pairs an existing polygon with an existing circle.
// The two must share radius and centre.
func Circumscribe(poly RegularPolygon, circle Circle) (CircumscribedPolygon, error) {
	cp := CircumscribedPolygon{circle: circle, polygon: poly}
	if err := cp.validate(); err != nil {
		return CircumscribedPolygon{}, err
	}
	return cp, nil
}

// validate rejects zero values and mismatched pairs.
func (cp CircumscribedPolygon) validate() error {
	poly, circle := cp.polygon, cp.circle
	if poly.sides == 0 {
		return invalid("polygon", poly, "not constructed")
	}
	if circle.sides == 0 {
		return invalid("circle", circle.radius, "not constructed")
	}
	if poly.radius != circle.radius {
		return invalid("radius", circle.radius,
			fmt.Sprintf("circle radius differs from polygon radius %g", poly.radius))
	}
	if poly.centre != circle.centre {
		return invalid("centre", circle.centre, "circle centre differs from polygon centre")
	}
	return nil
}

// Radius returns the shared radius.
func (cp CircumscribedPolygon) Radius() float64 { return cp.polygon.radius }

// Centre returns the shared centre.
func (cp CircumscribedPolygon) Centre() Point { return cp.polygon.centre }

// Polygon returns the polygon component.
func (cp CircumscribedPolygon) Polygon() RegularPolygon { return cp.polygon }

// Circle returns the circle component.
func (cp CircumscribedPolygon) Circle() Circle { return cp.circle }

// Draw strokes the circle and then the polygon over it.
func (cp CircumscribedPolygon) Draw(c Canvas) {
	cp.circle.Draw(c)
	cp.polygon.Draw(c)
}

// Scaled returns a copy with the radius multiplied by ratio.
// The receiver is left unchanged.
func (cp CircumscribedPolygon) Scaled(ratio float64) (CircumscribedPolygon, error) {
	if !(ratio > 0) || math.IsInf(ratio, 1) {
		return CircumscribedPolygon{}, invalid("ratio", ratio, "must be finite and > 0")
	}
	return cp.scaled(ratio), nil
}

func (cp CircumscribedPolygon) scaled(ratio float64) CircumscribedPolygon {
	return CircumscribedPolygon{
		circle:  cp.circle.scaled(ratio),
		polygon: cp.polygon.scaled(ratio),
	}
}
