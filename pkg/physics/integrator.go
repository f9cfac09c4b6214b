package physics

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// derivative of a body's (position, velocity) state
type derivative struct {
	dPos r2.Vec // velocity
	dVel r2.Vec // acceleration
}

func derive(i int, pos, vel r2.Vec, bodies []Body, g float64) derivative {
	return derivative{dPos: vel, dVel: Acceleration(i, pos, bodies, g)}
}

// advance returns (pos, vel) moved along k for a step of length h
func advance(pos, vel r2.Vec, k derivative, h float64) (r2.Vec, r2.Vec) {
	return r2.Add(pos, r2.Scale(h, k.dPos)), r2.Add(vel, r2.Scale(h, k.dVel))
}

// combine applies the (1,2,2,1)/6 RK4 weights
func combine(k1, k2, k3, k4 r2.Vec) r2.Vec {
	return r2.Vec{
		X: k1.X + 2*k2.X + 2*k3.X + k4.X,
		Y: k1.Y + 2*k2.Y + 2*k3.Y + k4.Y,
	}
}

// StepRK4 advances bodies[i] by one step of length h with classical
// fourth-order Runge-Kutta. Only bodies[i].Pos and bodies[i].Vel change;
// every other body is held where it is for all four stages.
func StepRK4(bodies []Body, i int, g, h float64) {
	b := &bodies[i]
	pos, vel := b.Pos, b.Vel

	k1 := derive(i, pos, vel, bodies, g)
	p2, v2 := advance(pos, vel, k1, h/2)
	k2 := derive(i, p2, v2, bodies, g)
	p3, v3 := advance(pos, vel, k2, h/2)
	k3 := derive(i, p3, v3, bodies, g)
	p4, v4 := advance(pos, vel, k3, h)
	k4 := derive(i, p4, v4, bodies, g)

	b.Vel = r2.Add(vel, r2.Scale(h/6, combine(k1.dVel, k2.dVel, k3.dVel, k4.dVel)))
	b.Pos = r2.Add(pos, r2.Scale(h/6, combine(k1.dPos, k2.dPos, k3.dPos, k4.dPos)))
}

// StepCoupled advances every non-dragged body together, evaluating all
// derivatives against the same stage positions. Dragged bodies keep their
// position and act as fixed attractors.
func StepCoupled(bodies []Body, g, h float64) {
	n := len(bodies)
	stage := make([]Body, n)
	copy(stage, bodies)

	eval := func() []derivative {
		ks := make([]derivative, n)
		for j := range stage {
			if stage[j].Dragging {
				continue
			}
			ks[j] = derive(j, stage[j].Pos, stage[j].Vel, stage, g)
		}
		return ks
	}
	moveStage := func(k []derivative, dt float64) {
		for j := range stage {
			stage[j].Pos, stage[j].Vel = advance(bodies[j].Pos, bodies[j].Vel, k[j], dt)
		}
	}

	k1 := eval()
	moveStage(k1, h/2)
	k2 := eval()
	moveStage(k2, h/2)
	k3 := eval()
	moveStage(k3, h)
	k4 := eval()

	for j := range bodies {
		if bodies[j].Dragging {
			continue
		}
		b := &bodies[j]
		b.Vel = r2.Add(b.Vel, r2.Scale(h/6, combine(k1[j].dVel, k2[j].dVel, k3[j].dVel, k4[j].dVel)))
		b.Pos = r2.Add(b.Pos, r2.Scale(h/6, combine(k1[j].dPos, k2[j].dPos, k3[j].dPos, k4[j].dPos)))
	}
}
