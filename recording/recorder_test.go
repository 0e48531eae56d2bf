package recording

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/ornament"
)

const tol = 1e-9

func TestRecorderCommands(t *testing.T) {
	rec := NewRecorder(100, 100)
	rec.PenUp()
	rec.MoveTo(ornament.Pt(1, 2))
	rec.PenDown()
	rec.MoveTo(ornament.Pt(3, 4))
	if err := rec.Refresh(); err != nil {
		t.Fatalf("Refresh() = %v", err)
	}

	r := rec.FinishRecording()
	want := []CommandType{CmdPenUp, CmdMoveTo, CmdPenDown, CmdMoveTo, CmdRefresh}
	cmds := r.Commands()
	if len(cmds) != len(want) {
		t.Fatalf("got %d commands, want %d", len(cmds), len(want))
	}
	for i, cmd := range cmds {
		if cmd.Type() != want[i] {
			t.Errorf("cmds[%d] = %v, want %v", i, cmd.Type(), want[i])
		}
	}
	if r.Refreshes() != 1 {
		t.Errorf("Refreshes() = %d, want 1", r.Refreshes())
	}
}

func TestCommandTypeString(t *testing.T) {
	if got := CmdMoveTo.String(); got != "MoveTo" {
		t.Errorf("CmdMoveTo.String() = %q", got)
	}
	if got := CommandType(99).String(); got != "CommandType(99)" {
		t.Errorf("CommandType(99).String() = %q", got)
	}
}

func TestPolylinesPenState(t *testing.T) {
	rec := NewRecorder(100, 100)
	// Pen starts down at the origin, as a turtle does.
	rec.MoveTo(ornament.Pt(10, 0))
	rec.PenUp()
	rec.MoveTo(ornament.Pt(20, 0))
	rec.MoveTo(ornament.Pt(30, 0)) // invisible reposition
	rec.PenDown()
	rec.MoveTo(ornament.Pt(30, 10))
	rec.MoveTo(ornament.Pt(40, 10))
	rec.PenUp()
	rec.MoveTo(ornament.Pt(0, 0)) // lone point draws nothing

	lines := rec.FinishRecording().Polylines()
	want := [][]ornament.Point{
		{ornament.Pt(0, 0), ornament.Pt(10, 0)},
		{ornament.Pt(30, 0), ornament.Pt(30, 10), ornament.Pt(40, 10)},
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d polylines, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if len(lines[i]) != len(want[i]) {
			t.Fatalf("line %d = %v, want %v", i, lines[i], want[i])
		}
		for j := range want[i] {
			if lines[i][j] != want[i][j] {
				t.Errorf("line %d point %d = %v, want %v", i, j, lines[i][j], want[i][j])
			}
		}
	}
}

func TestSquareDrawsExpectedPoints(t *testing.T) {
	sq, err := ornament.NewRegularPolygon(100, 4)
	if err != nil {
		t.Fatal(err)
	}
	rec := NewRecorder(400, 400)
	sq.Draw(rec)

	lines := rec.FinishRecording().Polylines()
	if len(lines) != 1 {
		t.Fatalf("got %d polylines, want 1", len(lines))
	}
	want := []ornament.Point{
		ornament.Pt(100, 0), ornament.Pt(0, 100), ornament.Pt(-100, 0),
		ornament.Pt(0, -100), ornament.Pt(100, 0),
	}
	for i, p := range want {
		if !lines[0][i].Approx(p, tol) {
			t.Errorf("point %d = %v, want %v", i, lines[0][i], p)
		}
	}
}

func TestStarDrawsSidesEdges(t *testing.T) {
	star, err := ornament.NewRegularPolygon(50, 7, ornament.WithDensity(3))
	if err != nil {
		t.Fatal(err)
	}
	rec := NewRecorder(200, 200)
	star.Draw(rec)

	segs := rec.FinishRecording().Segments()
	if len(segs) != 7 {
		t.Errorf("got %d segments, want 7", len(segs))
	}
	for _, s := range segs {
		if d := s.From.Distance(s.To); math.Abs(d-2*50*math.Sin(3*math.Pi/7)) > 1e-9 {
			t.Errorf("segment %v has length %v, want chord skipping 3 vertices", s, d)
		}
	}
}

func TestBoundsAndFits(t *testing.T) {
	empty := NewRecorder(10, 10).FinishRecording()
	if _, ok := empty.Bounds(); ok {
		t.Error("empty recording should have no bounds")
	}
	if !empty.Fits() {
		t.Error("empty recording should fit")
	}

	c, err := ornament.NewCircle(40)
	if err != nil {
		t.Fatal(err)
	}
	rec := NewRecorder(100, 100)
	c.Draw(rec)
	r := rec.FinishRecording()
	b, ok := r.Bounds()
	if !ok {
		t.Fatal("expected bounds")
	}
	if b.Max.X > 40+tol || b.Min.X < -40-tol || b.Max.Y > 40+tol || b.Min.Y < -40-tol {
		t.Errorf("bounds %v exceed the circle radius", b)
	}
	if !r.Fits() {
		t.Error("radius 40 circle should fit a 100x100 surface")
	}

	small := NewRecorder(60, 60)
	c.Draw(small)
	if small.FinishRecording().Fits() {
		t.Error("radius 40 circle should not fit a 60x60 surface")
	}
}

func TestPlaybackMapsToSurface(t *testing.T) {
	rec := NewRecorder(200, 100)
	rec.PenUp()
	rec.MoveTo(ornament.Pt(0, 0))
	rec.PenDown()
	rec.MoveTo(ornament.Pt(50, 25))
	_ = rec.Refresh()

	mock := newMockBackend("m")
	if err := rec.FinishRecording().Playback(mock, Style{}); err != nil {
		t.Fatalf("Playback() = %v", err)
	}
	if mock.beginCalls != 1 || mock.endCalls != 1 {
		t.Errorf("Begin/End calls = %d/%d, want 1/1", mock.beginCalls, mock.endCalls)
	}
	if mock.width != 200 || mock.height != 100 {
		t.Errorf("got dimensions %dx%d, want 200x100", mock.width, mock.height)
	}
	if len(mock.lines) != 1 {
		t.Fatalf("got %d polylines, want 1", len(mock.lines))
	}
	want := []ornament.Point{ornament.Pt(100, 50), ornament.Pt(150, 25)}
	for i, p := range want {
		if !mock.lines[0][i].Approx(p, tol) {
			t.Errorf("surface point %d = %v, want %v", i, mock.lines[0][i], p)
		}
	}
	// Unset pen fields fall back to the default style.
	if mock.style.PenWidth != 2 || mock.style.Pen == nil {
		t.Errorf("style = %+v, want default pen", mock.style)
	}
	if mock.style.Background != nil {
		t.Errorf("background = %v, want nil (transparent)", mock.style.Background)
	}
}

func TestPlaybackErrors(t *testing.T) {
	if err := NewRecorder(0, 10).FinishRecording().Playback(newMockBackend("m"), DefaultStyle()); err == nil {
		t.Error("expected error for zero width")
	}

	endErr := errors.New("disk full")
	mock := newMockBackend("m")
	mock.endErr = endErr
	err := NewRecorder(10, 10).FinishRecording().Playback(mock, DefaultStyle())
	if !errors.Is(err, endErr) {
		t.Errorf("Playback() = %v, want wrapped %v", err, endErr)
	}
}

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if s.Background != (color.RGBA{R: 0x10, G: 0x00, B: 0x26, A: 0xff}) {
		t.Errorf("background = %v", s.Background)
	}
	if s.PenWidth != 2 {
		t.Errorf("pen width = %v, want 2", s.PenWidth)
	}
}
