package ornament

import "math"

// Segment is a straight edge between two points.
type Segment struct {
	From, To Point
}

// Outline is the ordered point sequence describing the boundary of a
// regular or star polygon.
//
// For density 1 Points is a single closed loop of sides+1 points whose last
// point repeats the first. For density greater than 1 Points holds the star
// walk as consecutive (home, destination) pairs, 2*sides points in total;
// the pen is lifted between pairs.
type Outline struct {
	Points  []Point
	Density int
}

// Len returns the number of points in the outline.
func (o Outline) Len() int {
	return len(o.Points)
}

// IsStar reports whether the outline is a self-intersecting star walk.
func (o Outline) IsStar() bool {
	return o.Density > 1
}

// Runs returns the pen-down polylines of the outline in drawing order.
// A simple polygon is one run; a star is one two-point run per edge.
func (o Outline) Runs() [][]Point {
	if len(o.Points) == 0 {
		return nil
	}
	if !o.IsStar() {
		return [][]Point{o.Points}
	}
	runs := make([][]Point, 0, len(o.Points)/2)
	for i := 0; i+1 < len(o.Points); i += 2 {
		runs = append(runs, o.Points[i:i+2:i+2])
	}
	return runs
}

// Edges returns every edge drawn by the outline.
func (o Outline) Edges() []Segment {
	var edges []Segment
	for _, run := range o.Runs() {
		for i := 1; i < len(run); i++ {
			edges = append(edges, Segment{From: run[i-1], To: run[i]})
		}
	}
	return edges
}

// Vertices computes the outline of a regular polygon (density 1) or a star
// polygon (density > 1) inscribed in a circle of the given radius.
//
// Vertex k lies at angle 2*pi*k/sides + angleOffset from the centre. A star of
// density d connects home vertex i to vertex i+d for i = 0..sides-1, so the
// outline always has exactly sides edges.
//
// Vertices returns an error wrapping ErrInvalidParameter when radius <= 0,
// density < 1 or sides < 2*density+1.
func Vertices(radius float64, sides int, opts ...Option) (Outline, error) {
	o := applyOptions(opts)
	if err := validatePolygon(radius, sides, o.density); err != nil {
		return Outline{}, err
	}
	return outline(radius, sides, o.density, o.centre, o.angleOffset), nil
}

// outline assumes validated parameters. Zero-value shapes have no sides and
// get an empty outline, so they draw nothing.
func outline(radius float64, sides, density int, centre Point, angleOffset float64) Outline {
	if sides <= 0 {
		return Outline{}
	}
	vertex := func(k int) Point {
		// Reduce k so the closing vertex is bit-identical to the first.
		theta := 2*math.Pi*float64(k%sides)/float64(sides) + angleOffset
		return centre.Polar(radius, theta)
	}

	if density == 1 {
		pts := make([]Point, sides+1)
		for k := 0; k <= sides; k++ {
			pts[k] = vertex(k)
		}
		return Outline{Points: pts, Density: 1}
	}

	pts := make([]Point, 0, 2*sides)
	for i := 0; i < sides; i++ {
		pts = append(pts, vertex(i), vertex(i+density))
	}
	return Outline{Points: pts, Density: density}
}
