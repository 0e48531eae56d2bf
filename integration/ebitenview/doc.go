// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenview shows a recorded ornament in a desktop window using
// Ebitengine.
//
// The recording is rasterized once into an offscreen image on the first
// frame and that image is blitted on every following frame, so the window
// presents the whole ornament at once, like a batched canvas refresh.
//
// # Usage
//
//	rec := recording.NewRecorder(800, 800)
//	_ = ornament.Render(rec, shapes)
//
//	err := ebitenview.Run(rec.FinishRecording(), recording.DefaultStyle(), "Shapes")
//
// Run blocks until the window is closed or Escape is pressed.
package ebitenview
