package roster

import "time"

// Window is an inclusive date range for one extraction run.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow returns the forward-looking window [start, start+months].
func NewWindow(start time.Time, months int) Window {
	day := DateOnly(start)
	return Window{Start: day, End: day.AddDate(0, months, 0)}
}

// Overlaps reports whether [start, end] intersects the window. Bounds are
// inclusive on both sides: touching a single boundary day counts.
func (w Window) Overlaps(start, end time.Time) bool {
	return !start.After(w.End) && !end.Before(w.Start)
}
