// Package vector provides a lightweight PNG backend for the recording
// system built directly on the golang.org/x/image/vector scanline
// rasterizer.
//
// Every segment is expanded into a quadrilateral of the pen width and every
// vertex into a small disc, all wound the same way, and the accumulated
// coverage is composited once with the pen colour at End.
package vector

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
	xvector "golang.org/x/image/vector"

	"github.com/gogpu/ornament"
	"github.com/gogpu/ornament/recording"
)

// Name is the registry name of the backend.
const Name = "vector"

// capSegments is the number of edges of the polygon approximating a round cap.
const capSegments = 12

func init() {
	recording.Register(recording.Format{
		Name:      Name,
		Extension: ".png",
		New:       func() recording.Backend { return NewBackend() },
	})
}

// ErrNotFinished is returned when output is requested before End.
var ErrNotFinished = errors.New("vector: image not finished")

// Backend rasterizes recordings into an *image.RGBA.
type Backend struct {
	img      *image.RGBA
	raster   *xvector.Rasterizer
	style    recording.Style
	strokes  int
	finished bool
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a new vector backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin allocates the image and paints the background.
func (b *Backend) Begin(width, height int, style recording.Style) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("vector: invalid dimensions: width=%d, height=%d", width, height)
	}
	b.img = image.NewRGBA(image.Rect(0, 0, width, height))
	b.raster = xvector.NewRasterizer(width, height)
	b.style = style
	b.strokes, b.finished = 0, false
	if style.Background != nil {
		draw.Draw(b.img, b.img.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)
	}
	ornament.Logger().Debug("vector: begin", "width", width, "height", height)
	return nil
}

// StrokePolyline adds the outline of the stroked polyline to the coverage mask.
func (b *Backend) StrokePolyline(points []ornament.Point) {
	if b.raster == nil || len(points) < 2 {
		return
	}
	half := b.style.PenWidth / 2
	for i := 1; i < len(points); i++ {
		b.addSegment(points[i-1], points[i], half)
	}
	for _, p := range points {
		b.addDisc(p, half)
	}
	b.strokes++
}

// addSegment adds the rectangle of half-width w around a->b.
func (b *Backend) addSegment(a, c ornament.Point, w float64) {
	d := c.Sub(a)
	l := d.Length()
	if l == 0 {
		return
	}
	n := ornament.Pt(-d.Y/l*w, d.X/l*w)
	b.polygon(a.Add(n), c.Add(n), c.Sub(n), a.Sub(n))
}

// addDisc adds a regular polygon approximating a disc of radius r.
func (b *Backend) addDisc(centre ornament.Point, r float64) {
	pts := make([]ornament.Point, capSegments)
	for i := range pts {
		pts[i] = centre.Polar(r, -2*math.Pi*float64(i)/capSegments)
	}
	b.polygon(pts...)
}

func (b *Backend) polygon(pts ...ornament.Point) {
	b.raster.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		b.raster.LineTo(float32(p.X), float32(p.Y))
	}
	b.raster.ClosePath()
}

// End composites the accumulated coverage with the pen colour.
func (b *Backend) End() error {
	if b.raster == nil {
		return ErrNotFinished
	}
	if b.strokes > 0 && b.style.Pen != nil {
		b.raster.Draw(b.img, b.img.Bounds(), image.NewUniform(b.style.Pen), image.Point{})
	}
	b.finished = true
	ornament.Logger().Debug("vector: end", "strokes", b.strokes)
	return nil
}

// Image returns the rendered image, or nil before End.
func (b *Backend) Image() image.Image {
	if !b.finished {
		return nil
	}
	return b.img
}

// WriteTo encodes the image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.finished {
		return 0, ErrNotFinished
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

// SaveToFile encodes the image as PNG into path.
func (b *Backend) SaveToFile(path string) (err error) {
	if !b.finished {
		return ErrNotFinished
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("vector: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, b.img)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
