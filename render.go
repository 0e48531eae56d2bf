package ornament

import (
	"fmt"
	"time"
)

// RenderOption configures a Render call.
type RenderOption func(*renderOptions)

type renderOptions struct {
	elapsed func(time.Duration)
}

// WithElapsedHook registers fn to be called with the time spent drawing and
// refreshing, once Render has finished. The hook is not called when the
// refresh fails.
func WithElapsedHook(fn func(time.Duration)) RenderOption {
	return func(o *renderOptions) {
		o.elapsed = fn
	}
}

// Render draws shapes onto c in order and then requests a single refresh,
// so deferred canvases present the whole ornament at once.
func Render(c Canvas, shapes []Shape, opts ...RenderOption) error {
	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	for _, s := range shapes {
		s.Draw(c)
	}
	if err := c.Refresh(); err != nil {
		return fmt.Errorf("ornament: refresh: %w", err)
	}
	elapsed := time.Since(start)

	Logger().Debug("ornament: rendered", "shapes", len(shapes), "elapsed", elapsed)
	if o.elapsed != nil {
		o.elapsed(elapsed)
	}
	return nil
}
