package recording

import (
	"image"
	"io"

	"github.com/gogpu/ornament"
)

// Backend is the interface that all output backends must implement.
// Backends receive pen-down polylines in surface coordinates (origin
// top-left, Y down) and translate them to their output format.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions:
//
//	func init() {
//	    recording.Register(recording.Format{
//	        Name:      "svg",
//	        Extension: ".svg",
//	        New:       func() recording.Backend { return NewBackend() },
//	    })
//	}
type Backend interface {
	// Begin prepares a surface of the given size, filled with the style's
	// background. It must be called before StrokePolyline.
	Begin(width, height int, style Style) error

	// StrokePolyline strokes the connected line through points with the
	// style's pen. Points has at least two elements.
	StrokePolyline(points []ornament.Point)

	// End finalizes the output. Output methods may be used afterwards.
	// End reports any error deferred from earlier calls.
	End() error
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content. It should only be called after End.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content. It should only be called after End.
	SaveToFile(path string) error
}

// ImageBackend extends Backend with access to the rasterized image.
type ImageBackend interface {
	Backend

	// Image returns the rendered image, or nil before End.
	Image() image.Image
}
