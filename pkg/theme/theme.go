// Package theme holds the light and dark palettes shared by every frontend.
package theme

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Theme is a named palette.
type Theme struct {
	Name       string
	Background colorful.Color
	Foreground colorful.Color
	Star       colorful.Color
}

var themes = []Theme{
	{
		Name:       "dark",
		Background: colorful.Color{R: 0.063, G: 0.071, B: 0.094},
		Foreground: colorful.Color{R: 0.90, G: 0.90, B: 0.90},
		Star:       colorful.Color{R: 0.85, G: 0.88, B: 1.0},
	},
	{
		Name:       "light",
		Background: colorful.Color{R: 0.957, G: 0.945, B: 0.918},
		Foreground: colorful.Color{R: 0.13, G: 0.13, B: 0.13},
		Star:       colorful.Color{R: 0.55, G: 0.55, B: 0.62},
	},
}

// Get returns theme i, wrapping around.
func Get(i int) Theme {
	n := len(themes)
	return themes[((i%n)+n)%n]
}

// Next returns the index after i.
func Next(i int) int {
	return (i + 1) % len(themes)
}

// Fade returns c with its alpha set to alpha, clamped to [0, 1].
func Fade(c color.Color, alpha float64) color.NRGBA {
	cc, _ := colorful.MakeColor(c)
	r, g, b := cc.Clamped().RGB255()
	a := math.Max(0, math.Min(1, alpha))
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(a * 255))}
}

// Over blends c onto bg with the given opacity, for surfaces without an
// alpha channel.
func Over(bg, c colorful.Color, alpha float64) colorful.Color {
	a := math.Max(0, math.Min(1, alpha))
	return bg.BlendRgb(c, a).Clamped()
}

// Field maps a field strength onto a cold-to-hot palette. Strengths are
// compared on a log scale between lo and hi.
func Field(mag, lo, hi float64) colorful.Color {
	if mag <= 0 || math.IsNaN(mag) {
		return colorful.Hsv(240, 0.8, 0.15)
	}
	t := (math.Log10(mag) - math.Log10(lo)) / (math.Log10(hi) - math.Log10(lo))
	t = math.Max(0, math.Min(1, t))
	return colorful.Hsv(240*(1-t), 0.8, 0.15+0.45*t)
}
