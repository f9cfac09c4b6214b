package physics

import (
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"
)

// Body is a point mass drawn as a disc.
type Body struct {
	Name   string
	Pos    r2.Vec
	Vel    r2.Vec
	Mass   float64 // normalised, primary = 1
	Radius float64 // render and hit-test only
	Color  colorful.Color

	// Drag state. DragOffset is pointer minus origin and only meaningful
	// while Dragging is set.
	Dragging   bool
	DragOffset r2.Vec
}

// Contains reports whether p lies on or inside the body's disc.
func (b *Body) Contains(p r2.Vec) bool {
	d := r2.Sub(p, b.Pos)
	return d.X*d.X+d.Y*d.Y <= b.Radius*b.Radius
}

// Speed returns |Vel|.
func (b *Body) Speed() float64 {
	return r2.Norm(b.Vel)
}
