package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pjedinys/huge-balls/pkg/simulation"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(100, 40)
	t.Cleanup(screen.Fini)

	app, err := New(screen, simulation.DefaultConfig(), nil, 1)
	if err != nil {
		t.Fatalf("Expected app, got %v", err)
	}
	app.now = func() time.Time { return time.Unix(1000, 0) }
	return app, screen
}

func TestNewSizesSimulationToScreen(t *testing.T) {
	app, _ := newTestApp(t)
	cfg := app.Simulator().Config()

	if cfg.Width != 800 || cfg.Height != 640 {
		t.Errorf("Expected 800x640 viewport, got %vx%v", cfg.Width, cfg.Height)
	}
	if cfg.HeaderOffset != CellHeight {
		t.Errorf("Expected header offset %d, got %v", CellHeight, cfg.HeaderOffset)
	}
	if sun := app.Simulator().Bodies[0].Pos; sun != (r2.Vec{X: 400, Y: 320}) {
		t.Errorf("Expected sun at centre, got %v", sun)
	}
}

func TestCellMapping(t *testing.T) {
	p := ToPixel(3, 2)
	if p != (r2.Vec{X: 28, Y: 40}) {
		t.Errorf("Expected (28, 40), got %v", p)
	}
	if col, row := ToCell(p); col != 3 || row != 2 {
		t.Errorf("Expected cell (3, 2), got (%d, %d)", col, row)
	}
	if col, row := ToCell(r2.Vec{X: -1, Y: -1}); col != -1 || row != -1 {
		t.Errorf("Expected (-1, -1), got (%d, %d)", col, row)
	}
}

func TestFrameDrawsBodies(t *testing.T) {
	app, screen := newTestApp(t)
	app.paused = true
	app.Frame()

	for _, b := range app.Simulator().Bodies {
		col, row := ToCell(b.Pos)
		ch, _, _, _ := screen.GetContent(col, row)
		if ch != discRune && ch != dotRune {
			t.Errorf("Expected %s drawn at (%d, %d), got %q", b.Name, col, row, ch)
		}
	}

	ch, _, _, _ := screen.GetContent(0, 0)
	if ch != '[' {
		t.Errorf("Expected paused status line, got %q", ch)
	}
}

func TestFrameStepsUnlessPaused(t *testing.T) {
	app, _ := newTestApp(t)
	earth := app.Simulator().Bodies[1].Pos

	app.paused = true
	app.Frame()
	if app.Simulator().Bodies[1].Pos != earth {
		t.Error("Expected no motion while paused")
	}

	app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	app.Frame()
	if app.Simulator().Bodies[1].Pos == earth {
		t.Error("Expected single step while paused")
	}

	moved := app.Simulator().Bodies[1].Pos
	app.Frame()
	if app.Simulator().Bodies[1].Pos != moved {
		t.Error("Expected single step to be consumed")
	}
}

func TestMouseDragAndRelease(t *testing.T) {
	app, _ := newTestApp(t)
	sim := app.Simulator()
	col, row := ToCell(sim.Bodies[1].Pos)

	app.HandleEvent(tcell.NewEventMouse(col, row, tcell.Button1, tcell.ModNone))
	if sim.Dragged() != 1 {
		t.Fatalf("Expected earth grabbed, got %d", sim.Dragged())
	}
	if sim.Bodies[1].Vel != (r2.Vec{}) {
		t.Errorf("Expected zero velocity, got %v", sim.Bodies[1].Vel)
	}

	app.HandleEvent(tcell.NewEventMouse(col+5, row, tcell.Button1, tcell.ModNone))
	wantX := ToPixel(col+5, row).X - sim.Bodies[1].DragOffset.X
	if sim.Bodies[1].Pos.X != wantX {
		t.Errorf("Expected earth x %v, got %v", wantX, sim.Bodies[1].Pos.X)
	}

	app.HandleEvent(tcell.NewEventMouse(col+7, row, tcell.ButtonNone, tcell.ModNone))
	if sim.Dragged() != -1 {
		t.Error("Expected earth released")
	}
	if sim.Bodies[1].Vel.X <= 0 {
		t.Errorf("Expected fling to the right, got %v", sim.Bodies[1].Vel)
	}
}

func TestFocusLossDropsDrag(t *testing.T) {
	app, _ := newTestApp(t)
	sim := app.Simulator()
	col, row := ToCell(sim.Bodies[0].Pos)

	app.HandleEvent(tcell.NewEventMouse(col, row, tcell.Button1, tcell.ModNone))
	app.HandleEvent(tcell.NewEventFocus(false))

	if sim.Dragged() != -1 {
		t.Error("Expected drag dropped on focus loss")
	}
	if sim.Bodies[0].Vel != (r2.Vec{}) {
		t.Errorf("Expected no fling, got %v", sim.Bodies[0].Vel)
	}
}

func TestResizeEvent(t *testing.T) {
	app, screen := newTestApp(t)
	screen.SetSize(120, 50)
	app.HandleEvent(tcell.NewEventResize(120, 50))

	cfg := app.Simulator().Config()
	if cfg.Width != 960 || cfg.Height != 800 {
		t.Errorf("Expected 960x800 viewport, got %vx%v", cfg.Width, cfg.Height)
	}
	if sun := app.Simulator().Bodies[0].Pos; sun != (r2.Vec{X: 480, Y: 400}) {
		t.Errorf("Expected sun recentred, got %v", sun)
	}
}

func TestKeys(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		ev   *tcell.EventKey
		cont bool
	}{
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), true},
		{tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModNone), true},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), true},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), false},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false},
	}
	for _, tt := range tests {
		if got := app.HandleEvent(tt.ev); got != tt.cont {
			t.Errorf("Key %v: Expected %v, got %v", tt.ev.Name(), tt.cont, got)
		}
	}
	if !app.paused {
		t.Error("Expected space to pause")
	}
	if app.theme != 1 {
		t.Errorf("Expected light theme, got %d", app.theme)
	}
}

func TestRunStopsOnContext(t *testing.T) {
	app, _ := newTestApp(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := app.Run(ctx); err != context.DeadlineExceeded {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
}
