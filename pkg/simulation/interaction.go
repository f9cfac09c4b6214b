package simulation

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Press grabs the first body whose disc contains p. The body stops dead
// and remembers where it was grabbed. Returns the body index or -1.
func (s *Simulator) Press(p r2.Vec) int {
	for i := range s.Bodies {
		b := &s.Bodies[i]
		if !b.Contains(p) {
			continue
		}
		b.Dragging = true
		b.DragOffset = r2.Sub(p, b.Pos)
		b.Vel = r2.Vec{}
		return i
	}
	return -1
}

// Move drags the first grabbed body so the grab point follows p.
func (s *Simulator) Move(p r2.Vec) int {
	i := s.Dragged()
	if i < 0 {
		return -1
	}
	s.Bodies[i].Pos = r2.Sub(p, s.Bodies[i].DragOffset)
	return i
}

// Release lets go of the first grabbed body and flings it by the distance
// the pointer moved since the last Move, times the release scale.
func (s *Simulator) Release(p r2.Vec) int {
	i := s.Dragged()
	if i < 0 {
		return -1
	}
	b := &s.Bodies[i]
	delta := r2.Sub(r2.Sub(p, b.Pos), b.DragOffset)
	b.Vel = r2.Scale(s.cfg.ReleaseScale, delta)
	b.Dragging = false
	b.DragOffset = r2.Vec{}
	return i
}

// Leave drops every grabbed body where it is, without a fling.
func (s *Simulator) Leave() {
	for i := range s.Bodies {
		s.Bodies[i].Dragging = false
	}
}

// Dragged returns the index of the first grabbed body or -1.
func (s *Simulator) Dragged() int {
	for i := range s.Bodies {
		if s.Bodies[i].Dragging {
			return i
		}
	}
	return -1
}
