package simulation

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pjedinys/huge-balls/pkg/physics"
)

// FieldGrid holds gravitational field strength sampled at cell centres.
type FieldGrid struct {
	Step   float64
	Cols   int
	Rows   int
	Values []float64 // row major, Cols*Rows
}

// At returns the sample for column x, row y.
func (f *FieldGrid) At(x, y int) float64 {
	return f.Values[y*f.Cols+x]
}

// SampleField measures |acceleration| of a test particle on a grid with the
// given cell size. Rows are sampled in parallel; the bodies are only read.
// Non-finite samples are stored as zero.
func (s *Simulator) SampleField(step float64) *FieldGrid {
	cols := int(math.Ceil(s.cfg.Width / step))
	rows := int(math.Ceil(s.cfg.Height / step))
	grid := &FieldGrid{Step: step, Cols: cols, Rows: rows, Values: make([]float64, cols*rows)}

	var wg sync.WaitGroup
	for y := 0; y < rows; y++ {
		wg.Add(1)
		go func(row int) {
			defer wg.Done()
			cy := (float64(row) + 0.5) * step
			for x := 0; x < cols; x++ {
				p := r2.Vec{X: (float64(x) + 0.5) * step, Y: cy}
				mag := r2.Norm(physics.FieldAt(p, s.Bodies, s.cfg.G))
				if math.IsNaN(mag) || math.IsInf(mag, 0) {
					mag = 0
				}
				grid.Values[row*cols+x] = mag
			}
		}(y)
	}
	wg.Wait()

	return grid
}
