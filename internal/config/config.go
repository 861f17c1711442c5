// Package config loads brush and window settings from built-in defaults,
// an optional TOML file and the persisted app preferences, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"NeonBoard/internal/history"
	"NeonBoard/internal/logging"
	"NeonBoard/internal/state"
)

// Preference keys, shared with the toolbar sliders.
const (
	KeyMaxWidth         = "maxWidth"
	KeyGlowLevel        = "glowLevel"
	KeyUniformityFactor = "uniformityFactor"
)

// Limits of the user-adjustable values.
const (
	MinMaxWidth = 1
	MaxMaxWidth = 50
)

var (
	ErrGlowRange    = errors.New("glow level outside [0, 50]")
	ErrHistorySize  = errors.New("history size must be positive")
	ErrSurfaceSize  = errors.New("surface size must be positive")
	ErrUnknownField = errors.New("unknown config field")
)

// Config holds every tunable of the board.
type Config struct {
	MaxWidth         float64 `toml:"max_width"`
	GlowLevel        float64 `toml:"glow_level"`
	UniformityFactor float64 `toml:"uniformity_factor"`
	MinWidth         float64 `toml:"min_width"`
	MinSpeed         float64 `toml:"min_speed"`
	MaxSpeed         float64 `toml:"max_speed"`
	SmoothingFactor  float64 `toml:"smoothing_factor"`
	HistorySize      int     `toml:"history_size"`
	Width            int     `toml:"width"`
	Height           int     `toml:"height"`
}

func Default() Config {
	b := state.DefaultBrush()
	return Config{
		MaxWidth:         b.MaxWidth,
		GlowLevel:        state.DefaultGlowLevel,
		UniformityFactor: b.UniformityFactor,
		MinWidth:         b.MinWidth,
		MinSpeed:         b.MinSpeed,
		MaxSpeed:         b.MaxSpeed,
		SmoothingFactor:  b.SmoothingFactor,
		HistorySize:      history.DefaultMaxSize,
		Width:            1200,
		Height:           800,
	}
}

// LoadFile overlays the TOML file at path on the defaults. Fields missing
// from the file keep their default value.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Default(), fmt.Errorf("%w in %s: %s", ErrUnknownField, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	logging.Logger().Debug("config: loaded", "path", path)
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := c.Brush().Validate(); err != nil {
		return err
	}
	switch {
	case c.GlowLevel < 0 || c.GlowLevel > state.MaxGlowLevel:
		return fmt.Errorf("%w: %g", ErrGlowRange, c.GlowLevel)
	case c.HistorySize < 1:
		return fmt.Errorf("%w: %d", ErrHistorySize, c.HistorySize)
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: %dx%d", ErrSurfaceSize, c.Width, c.Height)
	}
	return nil
}

// Store is the subset of fyne.Preferences the config needs.
type Store interface {
	FloatWithFallback(key string, fallback float64) float64
	SetFloat(key string, value float64)
}

// FromPreferences returns base with the user-adjusted values read from
// store. Values that would break the brush invariants are ignored.
func FromPreferences(store Store, base Config) Config {
	cfg := base
	cfg.MaxWidth = clamp(store.FloatWithFallback(KeyMaxWidth, base.MaxWidth), MinMaxWidth, MaxMaxWidth)
	cfg.GlowLevel = clamp(store.FloatWithFallback(KeyGlowLevel, base.GlowLevel), 0, state.MaxGlowLevel)
	cfg.UniformityFactor = clamp(store.FloatWithFallback(KeyUniformityFactor, base.UniformityFactor), 0, 100)
	if cfg.MaxWidth < cfg.MinWidth {
		logging.Logger().Warn("config: stored max width below min width, ignoring", "maxWidth", cfg.MaxWidth)
		cfg.MaxWidth = base.MaxWidth
	}
	return cfg
}

// Save writes the user-adjustable values to store.
func (c Config) Save(store Store) {
	store.SetFloat(KeyMaxWidth, c.MaxWidth)
	store.SetFloat(KeyGlowLevel, c.GlowLevel)
	store.SetFloat(KeyUniformityFactor, c.UniformityFactor)
}

func (c Config) Brush() state.BrushConfig {
	return state.BrushConfig{
		MinWidth:         c.MinWidth,
		MaxWidth:         c.MaxWidth,
		UniformityFactor: c.UniformityFactor,
		MinSpeed:         c.MinSpeed,
		MaxSpeed:         c.MaxSpeed,
		SmoothingFactor:  c.SmoothingFactor,
	}
}

func (c Config) Glow() state.GlowConfig {
	return state.GlowConfig{GlowLevel: c.GlowLevel}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
