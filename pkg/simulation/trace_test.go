package simulation

import (
	"testing"
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestTraceRecordStartsOpaque(t *testing.T) {
	var tr Trace
	now := time.Unix(1000, 0)
	tr.Record(r2.Vec{X: 1, Y: 2}, now)
	tr.Record(r2.Vec{X: 3, Y: 4}, now.Add(time.Millisecond))

	if len(tr.Points) != 2 {
		t.Fatalf("Expected 2 points, got %d", len(tr.Points))
	}
	for i, p := range tr.Points {
		if p.Opacity != 1 {
			t.Errorf("Expected point %d opacity 1, got %v", i, p.Opacity)
		}
	}
	if tr.Points[0].Pos.X != 1 || tr.Points[1].Pos.X != 3 {
		t.Errorf("Expected insertion order, got %+v", tr.Points)
	}
}

func TestTraceAgeRespectsRetention(t *testing.T) {
	var tr Trace
	start := time.Unix(1000, 0)
	tr.Record(r2.Vec{}, start)

	tr.Age(start.Add(50*time.Second), 50*time.Second, 0.2)
	if tr.Points[0].Opacity != 1 {
		t.Errorf("Expected no fade inside retention, got %v", tr.Points[0].Opacity)
	}

	tr.Age(start.Add(51*time.Second), 50*time.Second, 0.2)
	if tr.Points[0].Opacity != 0.8 {
		t.Errorf("Expected opacity 0.8, got %v", tr.Points[0].Opacity)
	}
}

func TestTraceFadesMonotonicallyAndPrunes(t *testing.T) {
	var tr Trace
	start := time.Unix(1000, 0)
	tr.Record(r2.Vec{}, start)
	later := start.Add(time.Minute)

	prev := 1.0
	frames := 0
	for len(tr.Points) > 0 {
		frames++
		if frames > 10 {
			t.Fatal("Expected point to be pruned within 10 frames")
		}
		tr.Age(later, 50*time.Second, 0.2)
		op := tr.Points[0].Opacity
		if op > prev {
			t.Fatalf("Expected non-increasing opacity, got %v after %v", op, prev)
		}
		if op < 0 {
			t.Fatalf("Expected opacity floored at 0, got %v", op)
		}
		prev = op
		tr.Prune()
	}
	if prev != 0 {
		t.Errorf("Expected last opacity 0 before removal, got %v", prev)
	}
}

func TestTracePruneKeepsOrder(t *testing.T) {
	tr := Trace{Points: []TracePoint{
		{Pos: r2.Vec{X: 1}, Opacity: 0},
		{Pos: r2.Vec{X: 2}, Opacity: 0.5},
		{Pos: r2.Vec{X: 3}, Opacity: 0},
		{Pos: r2.Vec{X: 4}, Opacity: 1},
	}}
	tr.Prune()

	if len(tr.Points) != 2 {
		t.Fatalf("Expected 2 points, got %d", len(tr.Points))
	}
	if tr.Points[0].Pos.X != 2 || tr.Points[1].Pos.X != 4 {
		t.Errorf("Expected [2 4], got %+v", tr.Points)
	}
}
