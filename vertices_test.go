package ornament

import (
	"errors"
	"math"
	"testing"
)

const tol = 1e-9

func TestVerticesSimpleClosedLoop(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		sides  int
		centre Point
	}{
		{"triangle", 1, 3, Origin},
		{"square", 100, 4, Origin},
		{"hexagon offset centre", 20, 6, Pt(5, -7)},
		{"many sides", 3.5, 63, Pt(-100, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := Vertices(tt.radius, tt.sides, WithCentre(tt.centre))
			if err != nil {
				t.Fatalf("Vertices() error = %v", err)
			}
			if o.Len() != tt.sides+1 {
				t.Fatalf("Len() = %d, want %d", o.Len(), tt.sides+1)
			}
			if o.Points[0] != o.Points[tt.sides] {
				t.Errorf("first %v != last %v", o.Points[0], o.Points[tt.sides])
			}
			for i, p := range o.Points {
				if d := p.Distance(tt.centre); math.Abs(d-tt.radius) > tol {
					t.Errorf("point %d at distance %v, want %v", i, d, tt.radius)
				}
			}
			if got := len(o.Edges()); got != tt.sides {
				t.Errorf("edges = %d, want %d", got, tt.sides)
			}
		})
	}
}

func TestVerticesSquare(t *testing.T) {
	o, err := Vertices(100, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{Pt(100, 0), Pt(0, 100), Pt(-100, 0), Pt(0, -100), Pt(100, 0)}
	for i, p := range want {
		if !o.Points[i].Approx(p, tol) {
			t.Errorf("point %d = %v, want %v", i, o.Points[i], p)
		}
	}
}

func TestVerticesStar(t *testing.T) {
	tests := []struct {
		sides, density int
	}{
		{5, 2},
		{7, 2},
		{7, 3},
		{9, 2},
		{9, 4},
		{8, 3},
	}
	for _, tt := range tests {
		o, err := Vertices(10, tt.sides, WithDensity(tt.density), WithCentre(Pt(1, 1)))
		if err != nil {
			t.Fatalf("{%d/%d}: %v", tt.sides, tt.density, err)
		}
		if !o.IsStar() {
			t.Errorf("{%d/%d}: IsStar() = false", tt.sides, tt.density)
		}
		if o.Len() != 2*tt.sides {
			t.Errorf("{%d/%d}: Len() = %d, want %d", tt.sides, tt.density, o.Len(), 2*tt.sides)
		}
		for i, p := range o.Points {
			if d := p.Distance(Pt(1, 1)); math.Abs(d-10) > tol {
				t.Errorf("{%d/%d}: point %d at distance %v", tt.sides, tt.density, i, d)
			}
		}
		edges := o.Edges()
		if len(edges) != tt.sides {
			t.Errorf("{%d/%d}: edges = %d, want %d", tt.sides, tt.density, len(edges), tt.sides)
		}
		chord := 2 * 10 * math.Sin(math.Pi*float64(tt.density)/float64(tt.sides))
		for _, e := range edges {
			if math.Abs(e.From.Distance(e.To)-chord) > tol {
				t.Errorf("{%d/%d}: edge %v is not a density chord", tt.sides, tt.density, e)
			}
		}
	}
}

func TestVerticesStarWalkOrder(t *testing.T) {
	o, err := Vertices(1, 5, WithDensity(2))
	if err != nil {
		t.Fatal(err)
	}
	at := func(k int) Point {
		a := 2 * math.Pi * float64(k) / 5
		return Pt(math.Cos(a), math.Sin(a))
	}
	for i := 0; i < 5; i++ {
		if !o.Points[2*i].Approx(at(i), tol) {
			t.Errorf("home %d = %v, want %v", i, o.Points[2*i], at(i))
		}
		if !o.Points[2*i+1].Approx(at(i+2), tol) {
			t.Errorf("destination %d = %v, want %v", i, o.Points[2*i+1], at(i+2))
		}
	}
	runs := o.Runs()
	if len(runs) != 5 {
		t.Fatalf("runs = %d, want 5", len(runs))
	}
	for _, r := range runs {
		if len(r) != 2 {
			t.Errorf("star run has %d points, want 2", len(r))
		}
	}
}

func TestVerticesAngleOffset(t *testing.T) {
	quarter, err := Vertices(100, 4, WithAngleOffset(math.Pi/4))
	if err != nil {
		t.Fatal(err)
	}
	h := 100 / math.Sqrt2
	if !quarter.Points[0].Approx(Pt(h, h), tol) {
		t.Errorf("first point = %v, want (%v, %v)", quarter.Points[0], h, h)
	}

	for _, density := range []int{1, 2} {
		base, _ := Vertices(30, 7, WithDensity(density), WithAngleOffset(0.3))
		turned, _ := Vertices(30, 7, WithDensity(density), WithAngleOffset(0.3+2*math.Pi))
		if base.Len() != turned.Len() {
			t.Fatalf("density %d: lengths differ", density)
		}
		for i := range base.Points {
			if !base.Points[i].Approx(turned.Points[i], 1e-9) {
				t.Errorf("density %d: point %d = %v, want %v", density, i, turned.Points[i], base.Points[i])
			}
		}
	}
}

func TestVerticesInvalid(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		sides  int
		opts   []Option
		param  string
	}{
		{"zero radius", 0, 5, nil, "radius"},
		{"negative radius", -1, 5, nil, "radius"},
		{"NaN radius", math.NaN(), 5, nil, "radius"},
		{"infinite radius", math.Inf(1), 5, nil, "radius"},
		{"two sides", 1, 2, nil, "sides"},
		{"pentagon density 3", 1, 5, []Option{WithDensity(3)}, "sides"},
		{"hexagon density 3", 1, 6, []Option{WithDensity(3)}, "sides"},
		{"zero density", 1, 5, []Option{WithDensity(0)}, "density"},
		{"negative density", 1, 5, []Option{WithDensity(-2)}, "density"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Vertices(tt.radius, tt.sides, tt.opts...)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("error = %v, want ErrInvalidParameter", err)
			}
			var pe *ParamError
			if !errors.As(err, &pe) {
				t.Fatalf("error %T is not a *ParamError", err)
			}
			if pe.Param != tt.param {
				t.Errorf("Param = %q, want %q", pe.Param, tt.param)
			}
		})
	}
}

func TestOutlineEmpty(t *testing.T) {
	var o Outline
	if o.Runs() != nil || o.Edges() != nil {
		t.Error("zero Outline should have no runs or edges")
	}
}
