// Package config reads ornament descriptions from TOML files.
//
// A file describes the drawing surface and an ordered list of shapes:
//
//	[canvas]
//	width = 800
//	height = 800
//	background = "#100026"
//	pen = "#A0A0A0"
//	pen_width = 2
//
//	[[shape]]
//	kind = "nested"
//	radius = 390
//	sides = 9
//	density = 2
//	angle_offset = "pi/18"
//
// Angle offsets are arithmetic expressions in radians; the constants pi and
// tau are available.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Knetic/govaluate"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/ornament"
	"github.com/gogpu/ornament/recording"
)

// Shape kinds.
const (
	KindPolygon       = "polygon"
	KindCircle        = "circle"
	KindCircumscribed = "circumscribed"
	KindNested        = "nested" // descending nest generated from one polygon
	KindLayers        = "layers" // nest of explicitly listed layers
)

// ErrInvalid is wrapped by every validation error of this package.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is a complete ornament description.
type Config struct {
	Canvas Canvas        `toml:"canvas"`
	Shapes []ShapeConfig `toml:"shape"`
}

// Canvas describes the drawing surface.
type Canvas struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Background string  `toml:"background"`
	Pen        string  `toml:"pen"`
	PenWidth   float64 `toml:"pen_width"`
}

// ShapeConfig describes one shape. Density and Precision are pointers so an
// explicit zero is rejected instead of being mistaken for "unset".
type ShapeConfig struct {
	Kind        string        `toml:"kind"`
	Radius      float64       `toml:"radius"`
	Sides       int           `toml:"sides"`
	Density     *int          `toml:"density"`
	Centre      [2]float64    `toml:"centre"`
	AngleOffset string        `toml:"angle_offset"`
	Precision   *float64      `toml:"precision"`
	Layers      []ShapeConfig `toml:"layers"`
}

// Default returns the classic ornament: a 9-pointed density-2 star nested
// down to a pentagram on an 800x800 violet surface.
func Default() *Config {
	density := 2
	return &Config{
		Canvas: Canvas{
			Width:      800,
			Height:     800,
			Background: "#100026",
			Pen:        "#A0A0A0",
			PenWidth:   2,
		},
		Shapes: []ShapeConfig{{
			Kind:    KindNested,
			Radius:  800/2 - 10,
			Sides:   9,
			Density: &density,
		}},
	}
}

// Load reads and validates the TOML file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads TOML from r on top of Default and validates the result.
// Unknown keys are an error. A file with no [[shape]] keeps the default shape.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	defaults := c.Shapes
	c.Shapes = nil

	md, err := toml.NewDecoder(r).Decode(c)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if len(c.Shapes) == 0 {
		c.Shapes = defaults
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the canvas and builds every shape once.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.PenWidth <= 0 {
		return fmt.Errorf("%w: pen_width %v must be > 0", ErrInvalid, c.Canvas.PenWidth)
	}
	if _, err := c.Style(); err != nil {
		return err
	}
	_, err := c.Build()
	return err
}

// Style returns the playback style of the canvas.
func (c *Config) Style() (recording.Style, error) {
	s := recording.Style{PenWidth: c.Canvas.PenWidth}
	if c.Canvas.Background != "" {
		bg, err := colorful.Hex(c.Canvas.Background)
		if err != nil {
			return s, fmt.Errorf("%w: background %q: %v", ErrInvalid, c.Canvas.Background, err)
		}
		s.Background = bg
	}
	if c.Canvas.Pen != "" {
		pen, err := colorful.Hex(c.Canvas.Pen)
		if err != nil {
			return s, fmt.Errorf("%w: pen %q: %v", ErrInvalid, c.Canvas.Pen, err)
		}
		s.Pen = pen
	}
	return s, nil
}

// Build constructs the configured shapes in order. Parameter errors wrap
// both ErrInvalid and ornament.ErrInvalidParameter.
func (c *Config) Build() ([]ornament.Shape, error) {
	shapes := make([]ornament.Shape, 0, len(c.Shapes))
	for i, sc := range c.Shapes {
		s, err := sc.Build()
		if err != nil {
			return nil, fmt.Errorf("%w: shape %d (%s): %w", ErrInvalid, i, sc.Kind, err)
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

// Build constructs the shape.
func (sc ShapeConfig) Build() (ornament.Shape, error) {
	switch sc.Kind {
	case KindPolygon:
		opts, err := sc.options()
		if err != nil {
			return nil, err
		}
		return ornament.NewRegularPolygon(sc.Radius, sc.Sides, opts...)
	case KindCircle:
		opts, err := sc.options()
		if err != nil {
			return nil, err
		}
		return ornament.NewCircle(sc.Radius, opts...)
	case KindCircumscribed:
		return sc.circumscribed()
	case KindNested:
		cp, err := sc.circumscribed()
		if err != nil {
			return nil, err
		}
		return ornament.NestedFromPolygon(cp), nil
	case KindLayers:
		layers := make([]ornament.CircumscribedPolygon, 0, len(sc.Layers))
		for i, l := range sc.Layers {
			cp, err := sc.inherit(l).circumscribed()
			if err != nil {
				return nil, fmt.Errorf("layer %d: %w", i, err)
			}
			layers = append(layers, cp)
		}
		nest, err := ornament.NestedFromLayers(layers...)
		if err != nil {
			return nil, err
		}
		return nest, nil
	default:
		return nil, fmt.Errorf("unknown kind %q", sc.Kind)
	}
}

// inherit fills the unset fields of a layer from its parent.
func (sc ShapeConfig) inherit(l ShapeConfig) ShapeConfig {
	if l.Radius == 0 {
		l.Radius = sc.Radius
	}
	if l.Density == nil {
		l.Density = sc.Density
	}
	if l.Centre == [2]float64{} {
		l.Centre = sc.Centre
	}
	if l.AngleOffset == "" {
		l.AngleOffset = sc.AngleOffset
	}
	if l.Precision == nil {
		l.Precision = sc.Precision
	}
	return l
}

func (sc ShapeConfig) circumscribed() (ornament.CircumscribedPolygon, error) {
	opts, err := sc.options()
	if err != nil {
		return ornament.CircumscribedPolygon{}, err
	}
	return ornament.NewCircumscribedPolygon(sc.Radius, sc.Sides, opts...)
}

func (sc ShapeConfig) options() ([]ornament.Option, error) {
	angle, err := EvalAngle(sc.AngleOffset)
	if err != nil {
		return nil, err
	}
	opts := []ornament.Option{
		ornament.WithCentre(ornament.Pt(sc.Centre[0], sc.Centre[1])),
		ornament.WithAngleOffset(angle),
	}
	if sc.Density != nil {
		opts = append(opts, ornament.WithDensity(*sc.Density))
	}
	if sc.Precision != nil {
		opts = append(opts, ornament.WithPrecision(*sc.Precision))
	}
	return opts, nil
}

// angleParams are the constants available in angle expressions.
var angleParams = map[string]interface{}{
	"pi":  math.Pi,
	"tau": 2 * math.Pi,
}

// EvalAngle evaluates an angle expression such as "pi/9" or "2*pi/5 + 0.1".
// The empty string is 0.
func EvalAngle(expr string) (float64, error) {
	if strings.TrimSpace(expr) == "" {
		return 0, nil
	}
	e, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return 0, fmt.Errorf("angle_offset %q: %v", expr, err)
	}
	v, err := e.Evaluate(angleParams)
	if err != nil {
		return 0, fmt.Errorf("angle_offset %q: %v", expr, err)
	}
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("angle_offset %q: not a finite number", expr)
	}
	return f, nil
}
