package physics

import "math"

// Bounds is the box bodies bounce inside. Top is pushed down by the
// height of whatever chrome sits over the surface.
type Bounds struct {
	Width, Height float64
	Top           float64
}

// Reflect bounces b off any wall it overlaps. The offending velocity
// component is negated and scaled by damping, and the position is clamped
// back inside. Axes are handled independently so a corner hit reflects both.
func (bd Bounds) Reflect(b *Body, damping float64) (hitX, hitY bool) {
	r := b.Radius

	if b.Pos.X+r > bd.Width || b.Pos.X-r < 0 {
		b.Vel.X = -b.Vel.X * damping
		b.Pos.X = math.Max(r, math.Min(b.Pos.X, bd.Width-r))
		hitX = true
	}
	if b.Pos.Y+r > bd.Height || b.Pos.Y-r < bd.Top {
		b.Vel.Y = -b.Vel.Y * damping
		b.Pos.Y = math.Max(r+bd.Top, math.Min(b.Pos.Y, bd.Height-r))
		hitY = true
	}
	return hitX, hitY
}
