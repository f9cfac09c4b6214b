// Package report runs the simulation without a display and summarises it.
package report

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pjedinys/huge-balls/pkg/physics"
	"github.com/pjedinys/huge-balls/pkg/simulation"
)

// FrameInterval is the simulated wall time between frames.
const FrameInterval = time.Second / 60

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// Summary is what a headless run observed.
type Summary struct {
	Frames    int
	Bounces   int
	Distances []float64 // secondary to primary, one per frame
	MinDist   float64
	MaxDist   float64
	Bodies    []physics.Body
	TracePts  int
}

// Run advances sim for frames frames on a synthetic clock starting at
// start. It stops early with ctx's error if ctx ends.
func Run(ctx context.Context, sim *simulation.Simulator, frames int, start time.Time) (*Summary, error) {
	sum := &Summary{
		Distances: make([]float64, 0, frames),
		MinDist:   math.Inf(1),
		MaxDist:   math.Inf(-1),
	}
	pri, sec := sim.Primary(), sim.Secondary()

	for f := 0; f < frames; f++ {
		if err := ctx.Err(); err != nil {
			return sum, fmt.Errorf("headless run stopped at frame %d: %w", f, err)
		}
		sum.Bounces += sim.Step(start.Add(time.Duration(f) * FrameInterval))
		sum.Frames++

		d := r2.Norm(r2.Sub(sim.Bodies[sec].Pos, sim.Bodies[pri].Pos))
		sum.Distances = append(sum.Distances, d)
		sum.MinDist = math.Min(sum.MinDist, d)
		sum.MaxDist = math.Max(sum.MaxDist, d)
	}

	sum.Bodies = append([]physics.Body(nil), sim.Bodies...)
	for _, tr := range sim.Traces {
		sum.TracePts += len(tr.Points)
	}
	return sum, nil
}

// Render formats a summary for a terminal.
func Render(s *Summary) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("huge-balls: %d frames", s.Frames)))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}
	row("wall bounces", fmt.Sprintf("%d", s.Bounces))
	row("trace points", fmt.Sprintf("%d", s.TracePts))
	if s.Frames > 0 {
		row("orbit radius", fmt.Sprintf("%.2f .. %.2f", s.MinDist, s.MaxDist))
	}

	var bodies strings.Builder
	for i, body := range s.Bodies {
		if i > 0 {
			bodies.WriteString("\n")
		}
		fmt.Fprintf(&bodies, "%-6s pos (%7.2f, %7.2f)  vel (%6.3f, %6.3f)  speed %.3f",
			body.Name, body.Pos.X, body.Pos.Y, body.Vel.X, body.Vel.Y, body.Speed())
	}
	if len(s.Bodies) > 0 {
		b.WriteString(boxStyle.Render(bodies.String()))
		b.WriteString("\n")
	}

	if len(s.Distances) > 1 {
		chart := asciigraph.Plot(s.Distances,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("secondary-primary distance"))
		b.WriteString(graphStyle.Render(chart))
		b.WriteString("\n")
	}
	return b.String()
}
