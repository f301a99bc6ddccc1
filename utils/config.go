package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	GridWidth      = 50
	GridHeight     = 30
	InitialDensity = 0.2
	FrameDelay     = 100 * time.Millisecond
)

const (
	RendererANSI  = "ansi"
	RendererTcell = "tcell"
)

// Config holds the configuration for the game. The simulation fields are
// fixed at compile time and are never read from the config file.
type Config struct {
	Width      int           `json:"-"`
	Height     int           `json:"-"`
	Density    float64       `json:"-"`
	FrameDelay time.Duration `json:"-"`

	Renderer    string `json:"renderer"`
	MetricsAddr string `json:"metrics_addr"`
}

// DefaultConfig returns the fixed simulation settings with ANSI rendering and no metrics listener
func DefaultConfig() Config {
	return Config{
		Width:      GridWidth,
		Height:     GridHeight,
		Density:    InitialDensity,
		FrameDelay: FrameDelay,
		Renderer:   RendererANSI,
	}
}

// LoadConfig loads presentation settings from a JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the presentation settings
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererANSI, RendererTcell:
		return nil
	default:
		return errors.Errorf("[Validate] unknown renderer %q, expected %q or %q", c.Renderer, RendererANSI, RendererTcell)
	}
}
