// Package audio plays the short tone used for wall bounces.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneFreq   = 660
	toneLength = 40 * time.Millisecond
	minGap     = 120 * time.Millisecond
)

// Chime is a rate limited bounce tone. The zero value is muted.
type Chime struct {
	enabled bool
	gap     time.Duration
	last    time.Time
}

// NewChime opens the speaker. On failure the returned Chime is muted and
// the error says why; callers may keep using it.
func NewChime() (*Chime, error) {
	c := &Chime{gap: minGap}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return c, fmt.Errorf("init speaker: %w", err)
	}
	c.enabled = true
	return c, nil
}

// Enabled reports whether Play can make a sound.
func (c *Chime) Enabled() bool {
	return c != nil && c.enabled
}

// Play sounds the tone unless one played within the last gap. Reports
// whether it played.
func (c *Chime) Play(now time.Time) bool {
	if !c.Enabled() || !c.allow(now) {
		return false
	}

	sine, err := generators.SineTone(sampleRate, toneFreq)
	if err != nil {
		return false
	}
	tone := &effects.Volume{
		Streamer: beep.Take(sampleRate.N(toneLength), sine),
		Base:     2,
		Volume:   -3,
	}
	speaker.Play(tone)
	return true
}

func (c *Chime) allow(now time.Time) bool {
	if !c.last.IsZero() && now.Sub(c.last) < c.gap {
		return false
	}
	c.last = now
	return true
}

// Close releases the speaker.
func (c *Chime) Close() {
	if c.Enabled() {
		speaker.Close()
		c.enabled = false
	}
}
