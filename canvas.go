package ornament

// Canvas is the stateful pen surface shapes draw on.
//
// MoveTo draws a line from the current position when the pen is down and
// repositions invisibly when it is up. Refresh flushes buffered drawing to
// the visible surface; immediate-mode canvases treat it as a no-op.
//
// Canvas implementations are not required to be safe for concurrent use.
type Canvas interface {
	PenUp()
	PenDown()
	MoveTo(p Point)
	Refresh() error
}

// stroke streams an outline to c: for each run the pen is lifted, moved to
// the first point, lowered, and moved through the remaining points.
func stroke(c Canvas, o Outline) {
	for _, run := range o.Runs() {
		c.PenUp()
		c.MoveTo(run[0])
		c.PenDown()
		for _, p := range run[1:] {
			c.MoveTo(p)
		}
	}
}
