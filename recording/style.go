package recording

import "image/color"

// Style describes the appearance of a played-back recording.
type Style struct {
	// Background fills the whole surface before any stroke. Nil leaves it transparent.
	Background color.Color

	// Pen is the stroke colour.
	Pen color.Color

	// PenWidth is the stroke width in surface pixels.
	PenWidth float64
}

// DefaultStyle returns a light grey 2px pen on a deep violet background.
func DefaultStyle() Style {
	return Style{
		Background: color.RGBA{R: 0x10, G: 0x00, B: 0x26, A: 0xff},
		Pen:        color.RGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff},
		PenWidth:   2,
	}
}

// withDefaults fills unset pen fields from DefaultStyle.
func (s Style) withDefaults() Style {
	d := DefaultStyle()
	if s.Pen == nil {
		s.Pen = d.Pen
	}
	if s.PenWidth <= 0 {
		s.PenWidth = d.PenWidth
	}
	return s
}
