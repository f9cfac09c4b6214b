package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pjedinys/huge-balls/pkg/audio"
	"github.com/pjedinys/huge-balls/pkg/backdrop"
	"github.com/pjedinys/huge-balls/pkg/simulation"
	"github.com/pjedinys/huge-balls/pkg/theme"
)

// Window constants
const (
	FieldStep     = 16.0 // heatmap cell size
	FieldInterval = 6    // ticks between heatmap refreshes
	FieldLow      = 1e-4
	FieldHigh     = 1e-1
	TraceWidth    = 1.5
	StarSize      = 1.2
)

// Vis modes
const (
	VisTraces = iota
	VisField
	visModes
)

// Game adapts the simulation to Ebitengine's Update/Draw loop.
type Game struct {
	sim   *simulation.Simulator
	sky   *backdrop.Sky
	chime *audio.Chime

	Paused   bool
	StepOnce bool
	VisMode  int
	Theme    int
	ShowHelp bool

	field     *simulation.FieldGrid
	TickCount int

	// window size reported by the last Layout
	outW, outH int
	// pointer state from the previous tick
	prevMX, prevMY int
	pointerIn      bool

	start time.Time
}

// NewGame builds the simulation for a window of cfg.Width x cfg.Height.
func NewGame(cfg simulation.Config, chime *audio.Chime, seed int64) (*Game, error) {
	sim, err := simulation.New(cfg)
	if err != nil {
		return nil, err
	}
	g := &Game{
		sim:      sim,
		sky:      backdrop.New(seed),
		chime:    chime,
		ShowHelp: true,
		outW:     int(cfg.Width),
		outH:     int(cfg.Height),
		start:    time.Now(),
	}
	g.sky.Layout(cfg.Width, cfg.Height)
	return g, nil
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.applyResize()
	g.handleInput()

	if g.Paused && !g.StepOnce {
		return nil
	}
	g.StepOnce = false

	now := time.Now()
	if g.sim.Step(now) > 0 {
		g.chime.Play(now)
	}

	g.TickCount++
	if g.VisMode == VisField && (g.field == nil || g.TickCount%FieldInterval == 0) {
		g.field = g.sim.SampleField(FieldStep)
	}
	return nil
}

// applyResize forwards a window size change seen by Layout
func (g *Game) applyResize() {
	cfg := g.sim.Config()
	if g.outW == int(cfg.Width) && g.outH == int(cfg.Height) {
		return
	}
	if float64(g.outH) <= cfg.HeaderOffset || g.outW <= 0 {
		return
	}
	w, h := float64(g.outW), float64(g.outH)
	g.sim.Resize(w, h)
	g.sky.Layout(w, h)
	g.field = nil
}

// handleInput processes keyboard and mouse input
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Paused = !g.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.Paused {
		g.StepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.VisMode = (g.VisMode + 1) % visModes
		g.field = nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.Theme = theme.Next(g.Theme)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) {
		g.ShowHelp = !g.ShowHelp
	}

	mx, my := ebiten.CursorPosition()
	p := r2.Vec{X: float64(mx), Y: float64(my)}
	inside := mx >= 0 && my >= 0 && mx < g.outW && my < g.outH

	// Leaving the window drops whatever is held, without a fling.
	if g.pointerIn && !inside {
		g.sim.Leave()
	}
	g.pointerIn = inside

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && inside:
		g.sim.Press(p)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.sim.Release(p)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && (mx != g.prevMX || my != g.prevMY):
		g.sim.Move(p)
	}

	if g.sim.Dragged() >= 0 {
		ebiten.SetCursorShape(ebiten.CursorShapeMove)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
	g.prevMX, g.prevMY = mx, my
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	th := theme.Get(g.Theme)
	surf := imageSurface{dst: screen}

	g.sim.Draw(surf, th.Background, func(simulation.Surface) {
		g.drawStars(screen, th)
		if g.VisMode == VisField && g.field != nil {
			g.drawField(screen)
		}
	})

	if g.ShowHelp {
		g.drawHUD(screen, th)
	}
}

func (g *Game) drawStars(screen *ebiten.Image, th theme.Theme) {
	t := time.Since(g.start).Seconds()
	for i, st := range g.sky.Stars {
		vector.DrawFilledCircle(screen, float32(st.Pos.X), float32(st.Pos.Y), StarSize, theme.Fade(th.Star, g.sky.Twinkle(i, t)), true)
	}
}

// drawField paints the sampled field strength as a translucent heatmap
func (g *Game) drawField(screen *ebiten.Image) {
	f := g.field
	for y := 0; y < f.Rows; y++ {
		for x := 0; x < f.Cols; x++ {
			col := theme.Fade(theme.Field(f.At(x, y), FieldLow, FieldHigh), 0.55)
			vector.DrawFilledRect(screen, float32(float64(x)*f.Step), float32(float64(y)*f.Step), float32(f.Step), float32(f.Step), col, false)
		}
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, th theme.Theme) {
	state := "running"
	if g.Paused {
		state = "paused"
	}
	views := [...]string{"traces", "field"}
	line := fmt.Sprintf("TPS %.0f  %s  view:%s  theme:%s", ebiten.ActualTPS(), state, views[g.VisMode], th.Name)
	help := "drag a ball and let go  [space] pause [n] step [r] reset [h] view [t] theme [/] help [esc] quit"

	y := int(g.sim.Config().HeaderOffset) + 16
	text.Draw(screen, line, basicfont.Face7x13, 8, y, th.Foreground)
	text.Draw(screen, help, basicfont.Face7x13, 8, y+16, theme.Fade(th.Foreground, 0.6))
}

// Layout tracks the outside size so the viewport follows the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outW, g.outH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// imageSurface draws simulation commands onto an Ebitengine image
type imageSurface struct {
	dst *ebiten.Image
}

func (s imageSurface) Clear(bg color.Color) {
	s.dst.Fill(bg)
}

func (s imageSurface) StrokeSegment(from, to r2.Vec, c color.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	vector.StrokeLine(s.dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), TraceWidth, theme.Fade(c, alpha), true)
}

func (s imageSurface) FillDisc(center r2.Vec, radius float64, c color.Color) {
	vector.DrawFilledCircle(s.dst, float32(center.X), float32(center.Y), float32(radius), c, true)
}
