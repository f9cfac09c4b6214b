package simulation

import (
	"fmt"
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pjedinys/huge-balls/pkg/physics"
)

// Surface receives the draw commands of one frame.
type Surface interface {
	Clear(bg color.Color)
	StrokeSegment(from, to r2.Vec, c color.Color, alpha float64)
	FillDisc(center r2.Vec, radius float64, c color.Color)
}

// Simulator owns the bodies, their traces and the viewport. It is not safe
// for concurrent use: one goroutine drives input, Step and Draw.
type Simulator struct {
	cfg    Config
	orbits chain
	bounds physics.Bounds

	Bodies []physics.Body
	Traces []Trace
}

// New builds the bodies from cfg, lays them out around the centre of the
// viewport and gives them orbital velocities.
func New(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	orbits, err := cfg.orbitChain()
	if err != nil {
		return nil, err
	}

	s := &Simulator{
		cfg:    cfg,
		orbits: orbits,
		Bodies: make([]physics.Body, len(cfg.Bodies)),
		Traces: make([]Trace, len(cfg.Bodies)),
	}
	for i, bc := range cfg.Bodies {
		c, err := colorful.Hex(bc.Color)
		if err != nil {
			return nil, fmt.Errorf("body %q: %w", bc.Name, err)
		}
		s.Bodies[i] = physics.Body{
			Name:   bc.Name,
			Mass:   bc.Mass,
			Radius: bc.Radius,
			Color:  c,
		}
	}

	s.setViewport(cfg.Width, cfg.Height)
	s.layout()
	s.initOrbits()
	return s, nil
}

// Config returns the run constants with the current viewport.
func (s *Simulator) Config() Config {
	return s.cfg
}

// Bounds returns the box bodies bounce inside.
func (s *Simulator) Bounds() physics.Bounds {
	return s.bounds
}

// Primary returns the index of the body everything orbits.
func (s *Simulator) Primary() int {
	return s.orbits.primary
}

// Secondary returns the index of the body orbiting the primary.
func (s *Simulator) Secondary() int {
	return s.orbits.secondary
}

func (s *Simulator) setViewport(w, h float64) {
	s.cfg.Width, s.cfg.Height = w, h
	s.bounds = physics.Bounds{Width: w, Height: h, Top: s.cfg.HeaderOffset}
}

// layout puts each body at its configured offset from the centre
func (s *Simulator) layout() {
	cx, cy := s.cfg.Width/2, s.cfg.Height/2
	for i, bc := range s.cfg.Bodies {
		s.Bodies[i].Pos = r2.Vec{X: cx + bc.Offset[0], Y: cy + bc.Offset[1]}
	}
}

func (s *Simulator) initOrbits() {
	var satellite *physics.Body
	if s.orbits.satellite >= 0 {
		satellite = &s.Bodies[s.orbits.satellite]
	}
	physics.InitOrbits(&s.Bodies[s.orbits.primary], &s.Bodies[s.orbits.secondary], satellite, s.cfg.G)
}

// Resize adopts a new viewport, puts the bodies back at their offsets from
// the new centre and recomputes the orbital velocities. The primary keeps
// whatever velocity it had, and drag state is left alone.
func (s *Simulator) Resize(w, h float64) {
	s.setViewport(w, h)
	s.layout()
	s.initOrbits()
}

// Reset restarts the system in place: bodies back at their offsets, all
// motion and drags cleared, traces forgotten, orbits recomputed.
func (s *Simulator) Reset() {
	for i := range s.Bodies {
		b := &s.Bodies[i]
		b.Vel = r2.Vec{}
		b.Dragging = false
		b.DragOffset = r2.Vec{}
		s.Traces[i].Reset()
	}
	s.layout()
	s.initOrbits()
}

// Step advances one frame at wall time now and returns how many wall
// reflections happened.
//
// Bodies are integrated in order, each against the already updated
// positions of the ones before it. Dragged bodies are skipped entirely.
func (s *Simulator) Step(now time.Time) int {
	bounces := 0
	h := s.cfg.Step()

	if s.cfg.Coupled {
		physics.StepCoupled(s.Bodies, s.cfg.G, h)
	}
	for i := range s.Bodies {
		b := &s.Bodies[i]
		if b.Dragging {
			continue
		}
		if !s.cfg.Coupled {
			physics.StepRK4(s.Bodies, i, s.cfg.G, h)
		}
		hitX, hitY := s.bounds.Reflect(b, s.cfg.Damping)
		if hitX || hitY {
			bounces++
		}
	}

	for i := range s.Bodies {
		tr := &s.Traces[i]
		tr.Record(s.Bodies[i].Pos, now)
		tr.Age(now, s.cfg.TraceRetention, s.cfg.TraceFade)
		tr.Prune()
	}
	return bounces
}

// Draw clears the surface, lets under paint a backdrop if non-nil, strokes
// every trace and fills every body on top.
func (s *Simulator) Draw(surf Surface, bg color.Color, under func(Surface)) {
	surf.Clear(bg)
	if under != nil {
		under(surf)
	}

	for i := range s.Bodies {
		pts := s.Traces[i].Points
		for j := 1; j < len(pts); j++ {
			surf.StrokeSegment(pts[j-1].Pos, pts[j].Pos, s.Bodies[i].Color, pts[j].Opacity)
		}
	}

	for i := range s.Bodies {
		b := &s.Bodies[i]
		surf.FillDisc(b.Pos, b.Radius, b.Color)
	}
}
