// Package term runs the simulation inside a terminal using tcell.
package term

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pjedinys/huge-balls/pkg/audio"
	"github.com/pjedinys/huge-balls/pkg/backdrop"
	"github.com/pjedinys/huge-balls/pkg/simulation"
	"github.com/pjedinys/huge-balls/pkg/theme"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// App is the terminal frontend. Everything runs on the goroutine calling
// Run; PollEvent is pumped from a helper goroutine through a channel.
type App struct {
	screen tcell.Screen
	sim    *simulation.Simulator
	sky    *backdrop.Sky
	chime  *audio.Chime
	surf   *cellSurface

	theme   int
	paused  bool
	step    bool
	buttons tcell.ButtonMask
	lastCol int
	lastRow int

	now func() time.Time
}

// New sizes the simulation to the screen, which must already be
// initialised. chime may be nil.
func New(screen tcell.Screen, cfg simulation.Config, chime *audio.Chime, seed int64) (*App, error) {
	cols, rows := screen.Size()
	cfg.Width = float64(cols * CellWidth)
	cfg.Height = float64(rows * CellHeight)
	// row 0 carries the status line
	if cfg.HeaderOffset < CellHeight {
		cfg.HeaderOffset = CellHeight
	}

	sim, err := simulation.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("terminal %dx%d: %w", cols, rows, err)
	}

	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	a := &App{
		screen: screen,
		sim:    sim,
		sky:    backdrop.New(seed),
		chime:  chime,
		surf:   &cellSurface{screen: screen},
		now:    time.Now,
	}
	a.sky.Layout(cfg.Width, cfg.Height)
	return a, nil
}

// Simulator exposes the running simulation.
func (a *App) Simulator() *simulation.Simulator {
	return a.sim
}

// HandleEvent applies one tcell event. It returns false when the user asked
// to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventFocus:
		if !ev.Focused {
			a.sim.Leave()
			a.buttons = tcell.ButtonNone
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		a.screen.Sync()
		w, h := float64(cols*CellWidth), float64(rows*CellHeight)
		a.sim.Resize(w, h)
		a.sky.Layout(w, h)
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			a.paused = !a.paused
		case 'n':
			if a.paused {
				a.step = true
			}
		case 'r':
			a.sim.Reset()
		case 't':
			a.theme = theme.Next(a.theme)
		}
	}
	return true
}

// handleMouse turns tcell's level-triggered button mask into
// press/move/release edges.
func (a *App) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	p := ToPixel(col, row)
	held := ev.Buttons()&tcell.Button1 != 0
	wasHeld := a.buttons&tcell.Button1 != 0

	switch {
	case held && !wasHeld:
		a.sim.Press(p)
	case held && wasHeld && (col != a.lastCol || row != a.lastRow):
		a.sim.Move(p)
	case !held && wasHeld:
		a.sim.Release(p)
	}

	a.buttons = ev.Buttons()
	a.lastCol, a.lastRow = col, row
}

// Frame advances the simulation unless paused and redraws the screen.
func (a *App) Frame() {
	now := a.now()
	if !a.paused || a.step {
		a.step = false
		if a.sim.Step(now) > 0 {
			a.chime.Play(now)
		}
	}
	a.draw(now)
}

func (a *App) draw(now time.Time) {
	th := theme.Get(a.theme)
	t := float64(now.UnixNano()) / 1e9

	a.sim.Draw(a.surf, th.Background, func(simulation.Surface) {
		for i, st := range a.sky.Stars {
			col, row := ToCell(st.Pos)
			a.surf.set(col, row, starRune, theme.Over(th.Background, th.Star, a.sky.Twinkle(i, t)))
		}
	})

	status := "space pause  n step  r reset  t theme  q quit"
	if a.paused {
		status = "[paused] " + status
	}
	for i, ch := range status {
		a.surf.set(i, 0, ch, th.Foreground)
	}
	a.screen.Show()
}

// Run pumps events and frames until ctx ends or the user quits.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if !a.HandleEvent(ev) {
				log.Printf("quit requested")
				return nil
			}

		case <-ticker.C:
			a.Frame()
		}
	}
}
