// Package backdrop generates the star field painted behind the bodies.
package backdrop

import (
	"math"
	"sort"

	"github.com/aquilax/go-perlin"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	alpha       = 2.0
	beta        = 2.0
	octaves     = 3
	cellSize    = 24.0
	noiseScale  = 0.07
	density     = 0.12 // fraction of cells holding a star
	twinkleRate = 0.8
)

// Star is one backdrop point.
type Star struct {
	Pos        r2.Vec
	Brightness float64 // base brightness in (0, 1]
}

// Sky is a deterministic star field for a given seed.
type Sky struct {
	noise *perlin.Perlin
	Stars []Star
}

// New returns an empty sky; call Layout before drawing.
func New(seed int64) *Sky {
	return &Sky{noise: perlin.NewPerlin(alpha, beta, octaves, seed)}
}

// Layout regenerates the stars for a width x height viewport. The
// brightest noise cells win, so the count only depends on the cell grid.
func (s *Sky) Layout(width, height float64) {
	cols := int(width / cellSize)
	rows := int(height / cellSize)

	type cell struct {
		x, y int
		n    float64
	}
	cells := make([]cell, 0, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			n := s.noise.Noise2D(float64(x)*noiseScale*cellSize/8, float64(y)*noiseScale*cellSize/8)
			cells = append(cells, cell{x: x, y: y, n: n})
		}
	}
	sort.SliceStable(cells, func(i, j int) bool { return cells[i].n > cells[j].n })

	keep := int(float64(len(cells)) * density)
	s.Stars = s.Stars[:0]
	for _, c := range cells[:keep] {
		// jitter inside the cell from a second noise lookup
		jx := s.noise.Noise2D(float64(c.x)+0.5, float64(c.y)+100.5)
		jy := s.noise.Noise2D(float64(c.x)+100.5, float64(c.y)+0.5)
		s.Stars = append(s.Stars, Star{
			Pos: r2.Vec{
				X: (float64(c.x) + 0.5 + clampUnit(jx)*0.45) * cellSize,
				Y: (float64(c.y) + 0.5 + clampUnit(jy)*0.45) * cellSize,
			},
			Brightness: 0.35 + 0.65*clamp01(0.5+c.n),
		})
	}
}

// Twinkle returns star i's brightness at time t seconds, in [0, 1].
func (s *Sky) Twinkle(i int, t float64) float64 {
	st := s.Stars[i]
	w := s.noise.Noise2D(st.Pos.X*0.01, t*twinkleRate)
	return clamp01(st.Brightness * (0.75 + 0.5*w))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
