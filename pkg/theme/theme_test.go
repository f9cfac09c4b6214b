package theme

import (
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestGetWraps(t *testing.T) {
	if Get(0).Name != "dark" || Get(1).Name != "light" {
		t.Errorf("Expected dark then light, got %s, %s", Get(0).Name, Get(1).Name)
	}
	if Get(2).Name != "dark" || Get(-1).Name != "light" {
		t.Errorf("Expected wrap-around, got %s, %s", Get(2).Name, Get(-1).Name)
	}
	if Next(1) != 0 {
		t.Errorf("Expected Next(1) = 0, got %d", Next(1))
	}
}

func TestFade(t *testing.T) {
	c := color.RGBA{R: 255, G: 204, B: 0, A: 255}

	tests := []struct {
		alpha float64
		want  uint8
	}{
		{1, 255},
		{0, 0},
		{0.5, 128},
		{-1, 0},
		{2, 255},
	}
	for _, tt := range tests {
		got := Fade(c, tt.alpha)
		if got.A != tt.want {
			t.Errorf("alpha %v: Expected A=%d, got %d", tt.alpha, tt.want, got.A)
		}
		if got.R != 255 || got.G != 204 || got.B != 0 {
			t.Errorf("alpha %v: Expected rgb kept, got %v", tt.alpha, got)
		}
	}
}

func TestOver(t *testing.T) {
	bg := colorful.Color{R: 0, G: 0, B: 0}
	fg := colorful.Color{R: 1, G: 1, B: 1}

	if got := Over(bg, fg, 0); got != bg {
		t.Errorf("Expected background at alpha 0, got %v", got)
	}
	if got := Over(bg, fg, 1); got != fg {
		t.Errorf("Expected foreground at alpha 1, got %v", got)
	}
	if got := Over(bg, fg, 0.5); got.R < 0.49 || got.R > 0.51 {
		t.Errorf("Expected mid grey, got %v", got)
	}
}

func TestFieldIsMonotonicInHue(t *testing.T) {
	weak := Field(1e-5, 1e-4, 1e-1)
	mid := Field(3e-3, 1e-4, 1e-1)
	strong := Field(1, 1e-4, 1e-1)

	hw, _, _ := weak.Hsv()
	hm, _, _ := mid.Hsv()
	hs, _, _ := strong.Hsv()
	if !(hw > hm && hm > hs) {
		t.Errorf("Expected hue to fall with strength, got %v %v %v", hw, hm, hs)
	}
	if Field(0, 1e-4, 1e-1) != Field(-1, 1e-4, 1e-1) {
		t.Error("Expected non-positive strengths to share the floor colour")
	}
}
