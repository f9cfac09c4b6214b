package simulation

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the constants of one run. Width and Height are the only
// fields that change after start, on resize.
type Config struct {
	G              float64       `yaml:"gravity"`
	TimeStep       float64       `yaml:"time_step"`
	Speed          float64       `yaml:"speed"`
	Damping        float64       `yaml:"damping"`
	TraceRetention time.Duration `yaml:"trace_retention"`
	TraceFade      float64       `yaml:"trace_fade"`
	ReleaseScale   float64       `yaml:"release_scale"`
	Width          float64       `yaml:"width"`
	Height         float64       `yaml:"height"`
	HeaderOffset   float64       `yaml:"header_offset"`

	// Coupled integrates all bodies against shared RK4 stages instead of
	// one body at a time.
	Coupled bool `yaml:"coupled"`

	Bodies []BodyConfig `yaml:"bodies"`
}

// BodyConfig places a body relative to the centre of the viewport.
type BodyConfig struct {
	Name   string     `yaml:"name"`
	Offset [2]float64 `yaml:"offset"`
	Radius float64    `yaml:"radius"`
	Color  string     `yaml:"color"`
	Mass   float64    `yaml:"mass"`
	Orbits string     `yaml:"orbits,omitempty"`
}

// DefaultConfig returns the sun/earth/moon system.
func DefaultConfig() Config {
	return Config{
		G:              30,
		TimeStep:       0.0001,
		Speed:          100000,
		Damping:        0.9999,
		TraceRetention: 50 * time.Second,
		TraceFade:      0.2,
		ReleaseScale:   0.1,
		Width:          800,
		Height:         600,
		Bodies: []BodyConfig{
			{Name: "sun", Radius: 30, Color: "#ffcc00", Mass: 1},
			{Name: "earth", Offset: [2]float64{200, 0}, Radius: 15, Color: "#0077cc", Mass: 3.0027e-6, Orbits: "sun"},
			{Name: "moon", Offset: [2]float64{240, 0}, Radius: 5, Color: "#aaaaaa", Mass: 3.6943e-8, Orbits: "earth"},
		},
	}
}

// Step is the length of one integrator step.
func (c Config) Step() float64 {
	return c.TimeStep * c.Speed
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
// A bodies list in the file replaces the default one.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the constants and the orbit chain.
func (c Config) Validate() error {
	switch {
	case c.TimeStep <= 0 || c.Speed <= 0:
		return fmt.Errorf("%w: time_step and speed must be positive", ErrInvalidConfig)
	case c.Damping <= 0 || c.Damping > 1:
		return fmt.Errorf("%w: damping %v outside (0, 1]", ErrInvalidConfig, c.Damping)
	case c.TraceFade <= 0:
		return fmt.Errorf("%w: trace_fade must be positive", ErrInvalidConfig)
	case c.TraceRetention < 0:
		return fmt.Errorf("%w: negative trace_retention", ErrInvalidConfig)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: viewport %vx%v", ErrInvalidConfig, c.Width, c.Height)
	case c.HeaderOffset < 0 || c.HeaderOffset >= c.Height:
		return fmt.Errorf("%w: header_offset %v", ErrInvalidConfig, c.HeaderOffset)
	}

	seen := make(map[string]bool, len(c.Bodies))
	for _, b := range c.Bodies {
		if b.Name == "" {
			return fmt.Errorf("%w: body without a name", ErrInvalidConfig)
		}
		if seen[b.Name] {
			return fmt.Errorf("%w: duplicate body %q", ErrInvalidConfig, b.Name)
		}
		seen[b.Name] = true
		if b.Mass <= 0 || b.Radius <= 0 {
			return fmt.Errorf("%w: body %q needs positive mass and radius", ErrInvalidConfig, b.Name)
		}
		if _, err := colorful.Hex(b.Color); err != nil {
			return fmt.Errorf("%w: body %q colour: %v", ErrInvalidConfig, b.Name, err)
		}
	}

	_, err := c.orbitChain()
	return err
}

// chain indexes the primary, its secondary and the secondary's satellite.
// satellite is -1 when absent.
type chain struct {
	primary, secondary, satellite int
}

func (c Config) orbitChain() (chain, error) {
	ch := chain{primary: -1, secondary: -1, satellite: -1}
	if len(c.Bodies) < 2 {
		return ch, fmt.Errorf("%w: need at least a primary and a secondary, got %d bodies", ErrInvalidConfig, len(c.Bodies))
	}

	for i, b := range c.Bodies {
		if b.Orbits != "" {
			continue
		}
		if ch.primary != -1 {
			return ch, fmt.Errorf("%w: %q and %q both orbit nothing", ErrInvalidConfig, c.Bodies[ch.primary].Name, b.Name)
		}
		ch.primary = i
	}
	if ch.primary == -1 {
		return ch, fmt.Errorf("%w: no primary body", ErrInvalidConfig)
	}

	for i, b := range c.Bodies {
		switch b.Orbits {
		case "":
		case c.Bodies[ch.primary].Name:
			if ch.secondary != -1 {
				return ch, fmt.Errorf("%w: more than one body orbits %q", ErrInvalidConfig, b.Orbits)
			}
			ch.secondary = i
		}
	}
	if ch.secondary == -1 {
		return ch, fmt.Errorf("%w: nothing orbits %q", ErrInvalidConfig, c.Bodies[ch.primary].Name)
	}

	for i, b := range c.Bodies {
		if i == ch.primary || i == ch.secondary {
			continue
		}
		if b.Orbits != c.Bodies[ch.secondary].Name {
			return ch, fmt.Errorf("%w: body %q orbits unknown or unsupported %q", ErrInvalidConfig, b.Name, b.Orbits)
		}
		if ch.satellite != -1 {
			return ch, fmt.Errorf("%w: more than one body orbits %q", ErrInvalidConfig, b.Orbits)
		}
		ch.satellite = i
	}
	return ch, nil
}
