// Package raster provides a PNG backend for the recording system that
// rasterizes polylines with the gg 2D graphics library.
//
// Strokes use round caps and joins so the separate edges of a star meet
// cleanly at its vertices.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/ornament/recording/backends/raster"
//
//	backend, _ := recording.NewBackend("raster")
//	_ = rec.Playback(backend, recording.DefaultStyle())
//	_ = backend.(recording.FileBackend).SaveToFile("ornament.png")
package raster

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/ornament"
	"github.com/gogpu/ornament/recording"
)

// Name is the registry name of the backend.
const Name = "raster"

func init() {
	recording.Register(recording.Format{
		Name:      Name,
		Extension: ".png",
		New:       func() recording.Backend { return NewBackend() },
	})
}

// ErrNotStarted is returned when output is requested before Begin.
var ErrNotStarted = errors.New("raster: backend not started")

// Backend renders recordings to a pixel image using gg.Context.
type Backend struct {
	ctx    *gg.Context
	width  int
	height int
	err    error
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin creates the drawing context and paints the background.
func (b *Backend) Begin(width, height int, style recording.Style) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid dimensions: width=%d, height=%d", width, height)
	}
	b.width, b.height, b.err = width, height, nil
	b.ctx = gg.NewContext(width, height)
	if style.Background != nil {
		b.ctx.ClearWithColor(gg.FromColor(style.Background))
	}
	b.ctx.SetColor(style.Pen)
	b.ctx.SetLineWidth(style.PenWidth)
	b.ctx.SetLineCap(gg.LineCapRound)
	b.ctx.SetLineJoin(gg.LineJoinRound)
	ornament.Logger().Debug("raster: begin", "width", width, "height", height)
	return nil
}

// StrokePolyline strokes the line through points. The first stroke error
// is kept and reported by End.
func (b *Backend) StrokePolyline(points []ornament.Point) {
	if b.ctx == nil || len(points) < 2 {
		return
	}
	b.ctx.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		b.ctx.LineTo(p.X, p.Y)
	}
	if err := b.ctx.Stroke(); err != nil && b.err == nil {
		b.err = fmt.Errorf("raster: stroke: %w", err)
	}
}

// End finalizes the rendering.
func (b *Backend) End() error {
	if b.ctx == nil {
		return ErrNotStarted
	}
	return b.err
}

// WriteTo writes the rendered image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.ctx == nil {
		return 0, ErrNotStarted
	}
	cw := &countingWriter{w: w}
	err := b.ctx.EncodePNG(cw)
	return cw.n, err
}

// SaveToFile saves the rendered image as PNG.
func (b *Backend) SaveToFile(path string) error {
	if b.ctx == nil {
		return ErrNotStarted
	}
	return b.ctx.SavePNG(path)
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() image.Image {
	if b.ctx == nil {
		return nil
	}
	return b.ctx.Image()
}

// Width returns the surface width.
func (b *Backend) Width() int { return b.width }

// Height returns the surface height.
func (b *Backend) Height() int { return b.height }

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
