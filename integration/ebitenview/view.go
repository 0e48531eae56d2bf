// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenview

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gogpu/ornament"
	"github.com/gogpu/ornament/recording"
)

// ErrEmptyRecording is returned for recordings without a drawable surface.
var ErrEmptyRecording = errors.New("ebitenview: recording has no surface")

// Game is an ebiten.Game presenting one recording.
type Game struct {
	width, height int
	style         recording.Style
	lines         [][]ornament.Point // surface coordinates
	frame         *ebiten.Image
}

var _ ebiten.Game = (*Game)(nil)

// New prepares a Game for r. Unset pen fields of style take their defaults.
func New(r *recording.Recording, style recording.Style) (*Game, error) {
	if r == nil || r.Width() <= 0 || r.Height() <= 0 {
		return nil, ErrEmptyRecording
	}
	d := recording.DefaultStyle()
	if style.Pen == nil {
		style.Pen = d.Pen
	}
	if style.PenWidth <= 0 {
		style.PenWidth = d.PenWidth
	}

	polylines := r.Polylines()
	lines := make([][]ornament.Point, len(polylines))
	for i, line := range polylines {
		lines[i] = make([]ornament.Point, len(line))
		for j, p := range line {
			lines[i][j] = r.ToSurface(p)
		}
	}
	return &Game{
		width:  r.Width(),
		height: r.Height(),
		style:  style,
		lines:  lines,
	}, nil
}

// Update ends the game when Escape is pressed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw presents the ornament, rasterizing it on the first call.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		g.frame = ebiten.NewImage(g.width, g.height)
		g.render(g.frame)
	}
	screen.DrawImage(g.frame, nil)
}

// Layout keeps the logical screen at the recording size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Segments returns the number of line segments the view strokes.
func (g *Game) Segments() int {
	n := 0
	for _, line := range g.lines {
		n += len(line) - 1
	}
	return n
}

func (g *Game) render(dst *ebiten.Image) {
	if g.style.Background != nil {
		dst.Fill(g.style.Background)
	}
	w := float32(g.style.PenWidth)
	for _, line := range g.lines {
		for i := 1; i < len(line); i++ {
			a, b := line[i-1], line[i]
			vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), w, g.style.Pen, true)
		}
	}
}

// Run opens a window titled title showing r and blocks until it is closed.
func Run(r *recording.Recording, style recording.Style, title string) error {
	g, err := New(r, style)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	ornament.Logger().Debug("ebitenview: run", "width", g.width, "height", g.height, "segments", g.Segments())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebitenview: %w", err)
	}
	return nil
}
