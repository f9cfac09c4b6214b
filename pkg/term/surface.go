package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pjedinys/huge-balls/pkg/theme"
)

// One terminal cell stands for a CellWidth x CellHeight block of
// simulation pixels; cells are roughly twice as tall as wide.
const (
	CellWidth  = 8
	CellHeight = 16
)

const (
	traceRune = '·'
	discRune  = '█'
	dotRune   = '●'
	starRune  = '.'
)

// ToPixel maps the centre of a cell to simulation space.
func ToPixel(col, row int) r2.Vec {
	return r2.Vec{
		X: float64(col)*CellWidth + CellWidth/2,
		Y: float64(row)*CellHeight + CellHeight/2,
	}
}

// ToCell maps a simulation point to the cell containing it.
func ToCell(p r2.Vec) (col, row int) {
	return int(math.Floor(p.X / CellWidth)), int(math.Floor(p.Y / CellHeight))
}

// cellSurface rasterises draw commands onto a tcell screen.
type cellSurface struct {
	screen tcell.Screen
	bg     colorful.Color
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func toColorful(c color.Color) colorful.Color {
	cc, _ := colorful.MakeColor(c)
	return cc
}

func (s *cellSurface) style(fg colorful.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColor(fg)).Background(tcellColor(s.bg))
}

func (s *cellSurface) set(col, row int, ch rune, fg colorful.Color) {
	w, h := s.screen.Size()
	if col < 0 || row < 0 || col >= w || row >= h {
		return
	}
	s.screen.SetContent(col, row, ch, nil, s.style(fg))
}

func (s *cellSurface) Clear(bg color.Color) {
	s.bg = toColorful(bg)
	s.screen.Fill(' ', tcell.StyleDefault.Background(tcellColor(s.bg)))
}

// StrokeSegment walks the segment at half-cell resolution and tints each
// cell it crosses towards c by alpha.
func (s *cellSurface) StrokeSegment(from, to r2.Vec, c color.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	fg := theme.Over(s.bg, toColorful(c), alpha)

	d := r2.Sub(to, from)
	n := int(math.Max(math.Abs(d.X)/CellWidth, math.Abs(d.Y)/CellHeight)*2) + 1
	for i := 0; i <= n; i++ {
		col, row := ToCell(r2.Add(from, r2.Scale(float64(i)/float64(n), d)))
		s.set(col, row, traceRune, fg)
	}
}

// FillDisc fills every cell whose centre lies inside the disc. A disc
// smaller than a cell still marks the cell holding its centre.
func (s *cellSurface) FillDisc(center r2.Vec, radius float64, c color.Color) {
	fg := toColorful(c)

	c0, r0 := ToCell(r2.Vec{X: center.X - radius, Y: center.Y - radius})
	c1, r1 := ToCell(r2.Vec{X: center.X + radius, Y: center.Y + radius})
	filled := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			p := r2.Sub(ToPixel(col, row), center)
			if p.X*p.X+p.Y*p.Y <= radius*radius {
				s.set(col, row, discRune, fg)
				filled = true
			}
		}
	}
	if !filled {
		col, row := ToCell(center)
		s.set(col, row, dotRune, fg)
	}
}
