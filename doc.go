// Package ornament generates layered geometric line art from regular and
// star polygons and the circles that circumscribe them.
//
// # Overview
//
// The package computes vertex sequences for regular polygons and star
// polygons, approximates circles as many-sided polygons, and nests a
// sequence of circumscribed polygons so that each layer fits exactly inside
// the polygon drawn before it. Drawing is streamed to a [Canvas], a minimal
// pen abstraction implemented by the recording package and its backends.
//
// # Quick Start
//
//	import "github.com/gogpu/ornament"
//
//	// A nonagram (9 sides, density 2) and every smaller star down to 5 sides
//	outer, err := ornament.NewCircumscribedPolygon(390, 9, ornament.WithDensity(2))
//	if err != nil {
//	    return err
//	}
//	nest := ornament.NestedFromPolygon(outer)
//
//	rec := recording.NewRecorder(800, 800)
//	if err := ornament.Render(rec, []ornament.Shape{nest}); err != nil {
//	    return err
//	}
//
// # Geometry
//
// Vertex k of an n-sided polygon of radius r lies at angle 2*pi*k/n plus the
// angle offset. A star polygon of density d connects vertex i to vertex i+d
// for every i, so it always has n edges. The largest circle that fits inside
// such a polygon has radius r*cos(pi*d/n); nesting multiplies these ratios
// layer by layer.
//
// # Coordinate System
//
// Uses mathematical coordinates:
//   - Origin (0,0) at the centre of the canvas
//   - X increases right
//   - Y increases up
//   - Angles in radians, 0 is right, increases counter-clockwise
//
// # Errors
//
// Invalid parameters are reported when shapes are constructed, never while
// drawing. Every such error matches [ErrInvalidParameter] with errors.Is.
package ornament

// Version is the current version of the library.
const Version = "0.1.0"
