package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// OrbitalSpeed returns the circular orbit speed sqrt(g*m/r).
func OrbitalSpeed(g, mass, r float64) float64 {
	return math.Sqrt(g * mass / r)
}

// InitOrbits gives secondary a circular orbit around primary and puts
// satellite on an orbit around secondary.
//
// The secondary always starts moving along +Y regardless of where it sits.
// The satellite's relative term is rotated using the primary->secondary
// radius vector, so with the default horizontal layout the satellite
// starts co-moving with the secondary.
func InitOrbits(primary, secondary, satellite *Body, g float64) {
	secDist := r2.Norm(r2.Sub(secondary.Pos, primary.Pos))
	secSpeed := OrbitalSpeed(g, primary.Mass, secDist)

	secondary.Vel = r2.Vec{X: 0, Y: secSpeed}

	if satellite == nil {
		return
	}

	satDist := r2.Norm(r2.Sub(satellite.Pos, secondary.Pos))
	satSpeed := OrbitalSpeed(g, secondary.Mass, satDist)

	relX, relY := 0.0, satSpeed

	satellite.Vel = r2.Vec{
		X: secondary.Vel.X - relY*(secondary.Pos.Y-primary.Pos.Y)/secDist,
		Y: secondary.Vel.Y + relX*(secondary.Pos.X-primary.Pos.X)/secDist,
	}
}
