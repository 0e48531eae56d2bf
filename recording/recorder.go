package recording

import (
	"fmt"

	"github.com/gogpu/ornament"
	"github.com/jbeda/geom"
)

// Recorder captures canvas operations as commands.
// It implements ornament.Canvas; use FinishRecording to obtain an immutable
// Recording that can be replayed to different backends.
//
// Example:
//
//	rec := recording.NewRecorder(800, 800)
//	poly.Draw(rec)
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
}

var _ ornament.Canvas = (*Recorder)(nil)

// NewRecorder creates a new Recorder for a surface of the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 256),
	}
}

// PenUp records a PenUpCommand.
func (r *Recorder) PenUp() {
	r.commands = append(r.commands, PenUpCommand{})
}

// PenDown records a PenDownCommand.
func (r *Recorder) PenDown() {
	r.commands = append(r.commands, PenDownCommand{})
}

// MoveTo records a MoveToCommand.
func (r *Recorder) MoveTo(p ornament.Point) {
	r.commands = append(r.commands, MoveToCommand{Point: p})
}

// Refresh records a RefreshCommand. Recording never fails.
func (r *Recorder) Refresh() error {
	r.commands = append(r.commands, RefreshCommand{})
	return nil
}

// FinishRecording returns an immutable Recording containing all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
	}
}

// Recording is an immutable container for recorded canvas commands.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording surface.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording surface.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Refreshes returns the number of refresh requests recorded.
func (r *Recording) Refreshes() int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == CmdRefresh {
			n++
		}
	}
	return n
}

// Polylines resolves the pen state into the polylines actually drawn, in
// ornament coordinates. A move with the pen up starts a new polyline; a move
// with the pen down extends the current one. Polylines of fewer than two
// points draw nothing and are omitted. The pen starts down at the origin.
func (r *Recording) Polylines() [][]ornament.Point {
	var (
		lines   [][]ornament.Point
		current = []ornament.Point{ornament.Origin}
		down    = true
	)
	flush := func() {
		if len(current) >= 2 {
			lines = append(lines, current)
		}
	}
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case PenUpCommand:
			down = false
		case PenDownCommand:
			down = true
		case MoveToCommand:
			if down {
				current = append(current, c.Point)
				continue
			}
			flush()
			current = []ornament.Point{c.Point}
		}
	}
	flush()
	return lines
}

// Segments returns every straight segment drawn, in drawing order.
func (r *Recording) Segments() []ornament.Segment {
	var segs []ornament.Segment
	for _, line := range r.Polylines() {
		for i := 1; i < len(line); i++ {
			segs = append(segs, ornament.Segment{From: line[i-1], To: line[i]})
		}
	}
	return segs
}

// Bounds returns the bounding box of everything drawn, in ornament
// coordinates. ok is false when nothing was drawn.
func (r *Recording) Bounds() (bounds geom.Rect, ok bool) {
	for _, line := range r.Polylines() {
		for _, p := range line {
			c := geom.Coord{X: p.X, Y: p.Y}
			if !ok {
				bounds = geom.Rect{Min: c, Max: c}
				ok = true
				continue
			}
			bounds.ExpandToContainCoord(c)
		}
	}
	return bounds, ok
}

// Fits reports whether everything drawn lies on the surface.
func (r *Recording) Fits() bool {
	b, ok := r.Bounds()
	if !ok {
		return true
	}
	hw, hh := float64(r.width)/2, float64(r.height)/2
	surface := geom.Rect{Min: geom.Coord{X: -hw, Y: -hh}, Max: geom.Coord{X: hw, Y: hh}}
	return surface.ContainsRect(b)
}

// ToSurface maps a point in ornament coordinates to surface coordinates:
// origin at the top-left corner, Y down.
func (r *Recording) ToSurface(p ornament.Point) ornament.Point {
	return ornament.Pt(float64(r.width)/2+p.X, float64(r.height)/2-p.Y)
}

// Playback replays the recording to the given backend.
func (r *Recording) Playback(backend Backend, style Style) error {
	if r.width <= 0 || r.height <= 0 {
		return fmt.Errorf("recording: invalid dimensions: width=%d, height=%d (both must be > 0)", r.width, r.height)
	}
	style = style.withDefaults()
	if err := backend.Begin(r.width, r.height, style); err != nil {
		return fmt.Errorf("recording: begin: %w", err)
	}
	if !r.Fits() {
		ornament.Logger().Warn("recording: drawing extends beyond the surface",
			"width", r.width, "height", r.height)
	}

	lines := r.Polylines()
	for _, line := range lines {
		pts := make([]ornament.Point, len(line))
		for i, p := range line {
			pts[i] = r.ToSurface(p)
		}
		backend.StrokePolyline(pts)
	}

	if err := backend.End(); err != nil {
		return fmt.Errorf("recording: end: %w", err)
	}
	ornament.Logger().Debug("recording: playback complete", "polylines", len(lines))
	return nil
}
