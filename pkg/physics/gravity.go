package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Acceleration returns the net gravitational acceleration on bodies[self]
// as if it sat at pos, pulled by every other body at its current position.
//
// The self mass is multiplied into the force and divided back out. Two
// coincident bodies divide by zero and the result is not finite.
func Acceleration(self int, pos r2.Vec, bodies []Body, g float64) r2.Vec {
	var acc r2.Vec
	m := bodies[self].Mass

	for j := range bodies {
		if j == self {
			continue
		}
		other := &bodies[j]

		dx := other.Pos.X - pos.X
		dy := other.Pos.Y - pos.Y
		distSq := dx*dx + dy*dy
		dist := math.Sqrt(distSq)

		force := g * m * other.Mass / distSq

		acc.X += force * dx / (dist * m)
		acc.Y += force * dy / (dist * m)
	}

	return acc
}

// FieldAt returns the acceleration a test particle at p would feel from
// every body. Bodies exactly at p are skipped.
func FieldAt(p r2.Vec, bodies []Body, g float64) r2.Vec {
	var acc r2.Vec
	for j := range bodies {
		d := r2.Sub(bodies[j].Pos, p)
		distSq := d.X*d.X + d.Y*d.Y
		if distSq == 0 {
			continue
		}
		dist := math.Sqrt(distSq)
		acc = r2.Add(acc, r2.Scale(g*bodies[j].Mass/(distSq*dist), d))
	}
	return acc
}
