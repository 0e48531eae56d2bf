// Package svg provides an SVG backend for the recording system.
// Each polyline becomes one <path> element inside a group carrying the pen
// style, so the output stays an editable vector drawing.
//
// # Example
//
//	import _ "github.com/gogpu/ornament/recording/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
//	_ = rec.Playback(backend, recording.DefaultStyle())
//	_ = backend.(recording.FileBackend).SaveToFile("ornament.svg")
package svg

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/ornament"
	"github.com/gogpu/ornament/recording"
)

// Name is the registry name of the backend.
const Name = "svg"

func init() {
	recording.Register(recording.Format{
		Name:      Name,
		Extension: ".svg",
		New:       func() recording.Backend { return NewBackend() },
	})
}

// ErrNotFinished is returned when output is requested before End.
var ErrNotFinished = errors.New("svg: document not finished")

// Backend writes recordings as an SVG document.
type Backend struct {
	buf      bytes.Buffer
	canvas   *svgo.SVG
	paths    int
	finished bool
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new SVG backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin starts the document, paints the background and opens the pen group.
func (b *Backend) Begin(width, height int, style recording.Style) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid dimensions: width=%d, height=%d", width, height)
	}
	b.buf.Reset()
	b.paths, b.finished = 0, false
	b.canvas = svgo.New(&b.buf)
	b.canvas.Start(width, height)
	if fill, ok := hexColor(style.Background); ok {
		b.canvas.Rect(0, 0, width, height, "fill:"+fill)
	}
	pen, ok := hexColor(style.Pen)
	if !ok {
		pen = "none"
	}
	b.canvas.Gstyle(fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s;stroke-linecap:round;stroke-linejoin:round",
		pen, strconv.FormatFloat(style.PenWidth, 'g', -1, 64)))
	ornament.Logger().Debug("svg: begin", "width", width, "height", height)
	return nil
}

// StrokePolyline emits one path element.
func (b *Backend) StrokePolyline(points []ornament.Point) {
	if b.canvas == nil || len(points) < 2 {
		return
	}
	b.canvas.Path(pathData(points))
	b.paths++
}

// End closes the pen group and the document.
func (b *Backend) End() error {
	if b.canvas == nil {
		return ErrNotFinished
	}
	b.canvas.Gend()
	b.canvas.End()
	b.finished = true
	ornament.Logger().Debug("svg: end", "paths", b.paths, "bytes", b.buf.Len())
	return nil
}

// Paths returns the number of path elements written.
func (b *Backend) Paths() int { return b.paths }

// Bytes returns the finished document.
func (b *Backend) Bytes() []byte {
	if !b.finished {
		return nil
	}
	return b.buf.Bytes()
}

// WriteTo writes the finished document.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.finished {
		return 0, ErrNotFinished
	}
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// SaveToFile writes the finished document to path.
func (b *Backend) SaveToFile(path string) error {
	if !b.finished {
		return ErrNotFinished
	}
	if err := os.WriteFile(path, b.buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	return nil
}

// pathData formats points as an absolute move-to followed by line-tos.
func pathData(points []ornament.Point) string {
	var sb strings.Builder
	for i, p := range points {
		if i == 0 {
			sb.WriteString("M")
		} else {
			sb.WriteString(" L")
		}
		sb.WriteString(strconv.FormatFloat(p.X, 'f', 3, 64))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(p.Y, 'f', 3, 64))
	}
	return sb.String()
}

// hexColor formats c as #rrggbb. Nil and fully transparent colours report false.
func hexColor(c color.Color) (string, bool) {
	if c == nil {
		return "", false
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "", false
	}
	return cf.Hex(), true
}
