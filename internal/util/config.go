package util

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/DaanHessen/brainrot-tui/internal/engine"
)

// ErrOutOfRange marks a setting outside its allowed bounds.
var ErrOutOfRange = errors.New("out of range")

// Config holds runtime settings and flags. Environment provides defaults; flags override.
type Config struct {
	SeedText  string `env:"BRAINROT_SEED"`
	Duration  int    `env:"BRAINROT_DURATION" envDefault:"15"`
	Intensity int    `env:"BRAINROT_INTENSITY" envDefault:"5"` // displayed only
	Theme     string `env:"BRAINROT_THEME" envDefault:"catppuccin"`
	LogFile   string `env:"BRAINROT_LOG"`
}

// LoadEnv reads Config from the environment.
func LoadEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}

// Validate checks ranges. Seed text and theme are resolved later and not checked here.
func (c Config) Validate() error {
	if c.Duration < engine.MinDuration || c.Duration > engine.MaxDuration {
		return errors.Wrapf(ErrOutOfRange, "duration %ds not in [%d,%d]", c.Duration, engine.MinDuration, engine.MaxDuration)
	}
	if c.Intensity < engine.MinIntensity || c.Intensity > engine.MaxIntensity {
		return errors.Wrapf(ErrOutOfRange, "intensity %d not in [%d,%d]", c.Intensity, engine.MinIntensity, engine.MaxIntensity)
	}
	return nil
}
