package simulation

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

// TracePoint is one remembered position.
type TracePoint struct {
	Pos     r2.Vec
	At      time.Time
	Opacity float64
}

// Trace is a body's position history, oldest first.
type Trace struct {
	Points []TracePoint
}

// Record appends a fully opaque point.
func (t *Trace) Record(p r2.Vec, now time.Time) {
	t.Points = append(t.Points, TracePoint{Pos: p, At: now, Opacity: 1})
}

// Age fades every point older than retention by fade, never below zero.
func (t *Trace) Age(now time.Time, retention time.Duration, fade float64) {
	for i := range t.Points {
		p := &t.Points[i]
		if now.Sub(p.At) <= retention {
			continue
		}
		p.Opacity -= fade
		if p.Opacity < 0 {
			p.Opacity = 0
		}
	}
}

// Prune drops fully faded points, keeping order.
func (t *Trace) Prune() {
	kept := t.Points[:0]
	for _, p := range t.Points {
		if p.Opacity > 0 {
			kept = append(kept, p)
		}
	}
	clear(t.Points[len(kept):])
	t.Points = kept
}

// Reset forgets every point.
func (t *Trace) Reset() {
	t.Points = t.Points[:0]
}
