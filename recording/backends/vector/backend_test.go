package vector

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/ornament"
	"github.com/gogpu/ornament/recording"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func red(t *testing.T, b *Backend, x, y int) uint32 {
	t.Helper()
	r, _, _, _ := b.Image().At(x, y).RGBA()
	return r >> 8
}

func TestBackendRegistration(t *testing.T) {
	backend, err := recording.NewBackend(Name)
	require.NoError(t, err)
	_, ok := backend.(*Backend)
	assert.True(t, ok)
}

func TestStrokeCoverage(t *testing.T) {
	style := recording.Style{
		Background: color.Black,
		Pen:        color.White,
		PenWidth:   4,
	}
	b := NewBackend()
	require.NoError(t, b.Begin(50, 50, style))
	assert.Nil(t, b.Image(), "image is not available before End")

	// Two crossing strokes drawn in opposite directions must both show.
	b.StrokePolyline([]ornament.Point{ornament.Pt(5, 25), ornament.Pt(45, 25)})
	b.StrokePolyline([]ornament.Point{ornament.Pt(25, 45), ornament.Pt(25, 5)})
	require.NoError(t, b.End())

	assert.Equal(t, uint32(0xff), red(t, b, 15, 25), "on the horizontal stroke")
	assert.Equal(t, uint32(0xff), red(t, b, 25, 15), "on the vertical stroke")
	assert.Equal(t, uint32(0xff), red(t, b, 25, 25), "at the crossing")
	assert.Equal(t, uint32(0x00), red(t, b, 10, 10), "background")
	// The round cap reaches past the end point.
	assert.Greater(t, red(t, b, 45, 25), uint32(0x00))
}

func TestPlaybackOrnament(t *testing.T) {
	outer, err := ornament.NewCircumscribedPolygon(30, 6, ornament.WithDensity(2))
	require.NoError(t, err)
	nest := ornament.NestedFromPolygon(outer)

	rec := recording.NewRecorder(80, 80)
	require.NoError(t, ornament.Render(rec, []ornament.Shape{nest}))

	b := NewBackend()
	require.NoError(t, rec.FinishRecording().Playback(b, recording.DefaultStyle()))

	// The centre of the nest stays empty; the rim at (30, 0) -> surface (70, 40) is inked.
	assert.Equal(t, uint32(0x10), red(t, b, 40, 40))
	assert.Greater(t, red(t, b, 69, 40), uint32(0x10))
}

func TestOutput(t *testing.T) {
	b := NewBackend()
	_, err := b.WriteTo(&bytes.Buffer{})
	assert.ErrorIs(t, err, ErrNotFinished)
	assert.ErrorIs(t, b.End(), ErrNotFinished)

	require.NoError(t, b.Begin(20, 10, recording.DefaultStyle()))
	require.NoError(t, b.End())

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, b.SaveToFile(path))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
}
