package ornament

import (
	"fmt"
	"math"
)

// Nested is an ordered sequence of circumscribed polygons, outermost first,
// where each layer is shrunk to fit exactly inside the polygon before it.
//
// Layer i is drawn at its own radius times the product of the apothem ratios
// cos(pi*d/n) of all earlier layers. Scaling is pure: the layers given at
// construction are never modified.
type Nested struct {
	layers []CircumscribedPolygon
}

// NestedFromLayers creates a nest from layers built by NewCircumscribedPolygon
// or Circumscribe. The slice is copied.
//
// It returns an error wrapping ErrInvalidParameter when a layer is a zero
// value or its circle and polygon disagree on radius or centre.
func NestedFromLayers(layers ...CircumscribedPolygon) (*Nested, error) {
	for i, layer := range layers {
		if err := layer.validate(); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return &Nested{layers: append([]CircumscribedPolygon(nil), layers...)}, nil
}

// NestedFromPolygon creates the descending nest of cp: layers with
// cp.Polygon().Sides() sides down to 2*density+1 sides, each sharing the
// radius, density, centre, angle offset and circle precision of cp.
func NestedFromPolygon(cp CircumscribedPolygon) *Nested {
	poly := cp.polygon
	last := 2*poly.density + 1
	layers := make([]CircumscribedPolygon, 0, poly.sides-last+1)
	for n := poly.sides; n >= last; n-- {
		layer := cp
		layer.polygon.sides = n
		layers = append(layers, layer)
	}
	return &Nested{layers: layers}
}

// Len returns the number of layers.
func (n *Nested) Len() int {
	return len(n.layers)
}

// Radius returns the radius of the outermost layer, or 0 for an empty nest.
func (n *Nested) Radius() float64 {
	if len(n.layers) == 0 {
		return 0
	}
	return n.layers[0].Radius()
}

// Centre returns the centre of the outermost layer, or the origin for an empty nest.
func (n *Nested) Centre() Point {
	if len(n.layers) == 0 {
		return Origin
	}
	return n.layers[0].Centre()
}

// RadiusRatios returns the compounded scale factor applied to each layer.
// The first ratio is always 1.
func (n *Nested) RadiusRatios() []float64 {
	ratios := make([]float64, len(n.layers))
	ratio := 1.0
	for i, layer := range n.layers {
		ratios[i] = ratio
		p := layer.polygon
		ratio *= math.Cos(math.Pi * float64(p.density) / float64(p.sides))
	}
	return ratios
}

// Layers returns new layer values scaled by the nesting recurrence.
func (n *Nested) Layers() []CircumscribedPolygon {
	ratios := n.RadiusRatios()
	scaled := make([]CircumscribedPolygon, len(n.layers))
	for i, layer := range n.layers {
		scaled[i] = layer.scaled(ratios[i])
	}
	return scaled
}

// Draw strokes every scaled layer onto c in order.
func (n *Nested) Draw(c Canvas) {
	for _, layer := range n.Layers() {
		layer.Draw(c)
	}
}
