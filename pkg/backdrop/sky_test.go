package backdrop

import (
	"testing"
)

func TestLayoutIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	a.Layout(800, 600)
	b.Layout(800, 600)

	if len(a.Stars) != len(b.Stars) {
		t.Fatalf("Expected equal star counts, got %d and %d", len(a.Stars), len(b.Stars))
	}
	for i := range a.Stars {
		if a.Stars[i] != b.Stars[i] {
			t.Fatalf("Expected star %d to match, got %+v and %+v", i, a.Stars[i], b.Stars[i])
		}
	}
}

func TestLayoutCountAndBounds(t *testing.T) {
	s := New(7)

	for _, size := range [][2]float64{{800, 600}, {1920, 1000}, {240, 96}} {
		s.Layout(size[0], size[1])

		cells := int(size[0]/cellSize) * int(size[1]/cellSize)
		if want := int(float64(cells) * density); len(s.Stars) != want {
			t.Errorf("%vx%v: Expected %d stars, got %d", size[0], size[1], want, len(s.Stars))
		}
		for _, st := range s.Stars {
			if st.Pos.X < 0 || st.Pos.X > size[0] || st.Pos.Y < 0 || st.Pos.Y > size[1] {
				t.Errorf("%vx%v: Expected star inside viewport, got %v", size[0], size[1], st.Pos)
			}
			if st.Brightness <= 0 || st.Brightness > 1 {
				t.Errorf("Expected brightness in (0, 1], got %v", st.Brightness)
			}
		}
	}
}

func TestTwinkleInRange(t *testing.T) {
	s := New(1)
	s.Layout(800, 600)

	for i := range s.Stars {
		for _, ts := range []float64{0, 0.5, 3.7, 120} {
			if v := s.Twinkle(i, ts); v < 0 || v > 1 {
				t.Fatalf("Expected twinkle in [0, 1], got %v", v)
			}
		}
	}
}
