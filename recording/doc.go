// Package recording captures pen drawing operations so an ornament can be
// replayed to different output backends.
//
// # Architecture
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: an ornament.Canvas that captures pen commands
//   - Recording: the immutable command list, resolved into polylines
//   - Backend: renders polylines to a specific output format
//
// # Basic Usage
//
//	rec := recording.NewRecorder(800, 800)
//	if err := ornament.Render(rec, shapes); err != nil {
//	    return err
//	}
//	r := rec.FinishRecording()
//
// # Playback to Backends
//
// Backends register themselves by name when their package is imported,
// following the database/sql driver pattern:
//
//	import _ "github.com/gogpu/ornament/recording/backends/svg"
//
//	b, err := recording.NewBackend("svg")
//	if err != nil {
//	    return err
//	}
//	if err := r.Playback(b, recording.DefaultStyle()); err != nil {
//	    return err
//	}
//	err = b.(recording.FileBackend).SaveToFile("ornament.svg")
//
// # Coordinates
//
// Recorded points use ornament coordinates: origin at the centre, Y up.
// Playback maps them to surface coordinates (origin top-left, Y down)
// before handing them to a backend.
package recording
