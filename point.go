package ornament

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Point represents a 2D point in drawing coordinates.
// The origin is the centre of the canvas, X increases right and Y increases up.
type Point struct {
	X, Y float64
}

// Origin is the point (0, 0).
var Origin = Point{}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Polar returns the point at the given distance and angle (radians,
// counter-clockwise from the positive X axis) from p.
func (p Point) Polar(r, angle float64) Point {
	return Point{
		X: p.X + r*math.Cos(angle),
		Y: p.Y + r*math.Sin(angle),
	}
}

// Approx reports whether p and q are equal within tol on both axes.
func (p Point) Approx(q Point, tol float64) bool {
	return scalar.EqualWithinAbs(p.X, q.X, tol) && scalar.EqualWithinAbs(p.Y, q.Y, tol)
}
