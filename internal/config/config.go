// Package config loads depthlab settings from an optional YAML file and
// DEPTHLAB_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	ModeZPlot   = "zplot"
	ModeShowTri = "showtri"
	ModeZFight  = "zfight"
)

// Bits limits per mode. The precision plot draws every level, so it stops
// well below what the depth buffer view can hold.
const (
	MaxPlotBits   = 16
	MaxZFightBits = 24
)

// MaxDim bounds frame width and height; text drawing addresses pixels as
// int16.
const MaxDim = 32767

var ErrInvalid = errors.New("config: invalid value")

// Config holds everything needed to produce one figure.
type Config struct {
	Mode string `yaml:"mode" env:"DEPTHLAB_MODE"`

	Near    float64 `yaml:"near" env:"DEPTHLAB_NEAR"`
	Far     float64 `yaml:"far" env:"DEPTHLAB_FAR"`
	Bits    int     `yaml:"bits" env:"DEPTHLAB_BITS"`
	Samples int     `yaml:"samples" env:"DEPTHLAB_SAMPLES"`

	Width  int `yaml:"width" env:"DEPTHLAB_WIDTH"`
	Height int `yaml:"height" env:"DEPTHLAB_HEIGHT"`

	Headless bool   `yaml:"headless" env:"DEPTHLAB_HEADLESS"`
	Out      string `yaml:"out" env:"DEPTHLAB_OUT"`
	Scale    int    `yaml:"scale" env:"DEPTHLAB_SCALE"`

	Grid      Grid            `yaml:"grid"`
	Triangles [][3][2]float64 `yaml:"triangles"`
}

// Grid is the cell range of the triangle inspector. A zero Max means the
// range is fitted to the triangles.
type Grid struct {
	Min    [2]int `yaml:"min"`
	Max    [2]int `yaml:"max"`
	Margin int    `yaml:"margin"`
	Cell   int    `yaml:"cell"`
}

// Default returns the settings the tool runs with when nothing is
// configured.
func Default() Config {
	return Config{
		Mode:    ModeZPlot,
		Near:    1,
		Far:     50,
		Bits:    8,
		Samples: 100,
		Width:   640,
		Height:  480,
		Out:     "depthlab.png",
		Scale:   1,
		Grid: Grid{
			Min:    [2]int{27, 27},
			Max:    [2]int{34, 37},
			Margin: 2,
			Cell:   32,
		},
		Triangles: [][3][2]float64{
			{{29.835339, 31.480373}, {27.397650, 35.332142}, {32.223534, 27.745636}},
		},
	}
}

// Load starts from Default, applies the YAML file at path (if non-empty),
// then environment overrides, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges. Near/far ordering is left to the depth package so
// the error carries the codec's sentinel.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeZPlot, ModeShowTri, ModeZFight:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalid, c.Mode)
	}
	maxBits := MaxPlotBits
	if c.Mode == ModeZFight {
		maxBits = MaxZFightBits
	}
	if c.Bits < 1 || c.Bits > maxBits {
		return fmt.Errorf("%w: bits=%d out of range [1,%d]", ErrInvalid, c.Bits, maxBits)
	}
	if c.Samples < 2 {
		return fmt.Errorf("%w: samples=%d, need at least 2", ErrInvalid, c.Samples)
	}
	if c.Width <= 0 || c.Height <= 0 || c.Width > MaxDim || c.Height > MaxDim {
		return fmt.Errorf("%w: size %dx%d outside 1..%d", ErrInvalid, c.Width, c.Height, MaxDim)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale=%d", ErrInvalid, c.Scale)
	}
	if c.Grid.Cell <= 0 {
		return fmt.Errorf("%w: grid cell=%d", ErrInvalid, c.Grid.Cell)
	}
	if c.Headless && c.Out == "" {
		return fmt.Errorf("%w: headless mode needs an output path", ErrInvalid)
	}
	return nil
}
