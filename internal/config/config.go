package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/lifesim/internal/life"
)

const (
	DefaultWidth      = 80
	DefaultHeight     = 80
	DefaultCellWidth  = 10
	DefaultCellHeight = 10
	DefaultFrameDelay = 0
	DefaultTheme      = "classic"
)

var ErrInvalidConfig = errors.New("config: invalid config")

type Config struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	CellWidth    int    `yaml:"cell_width"`
	CellHeight   int    `yaml:"cell_height"`
	FrameDelayMs int    `yaml:"frame_delay_ms"`
	Seed         int64  `yaml:"seed"`
	Mirror       bool   `yaml:"mirror"`
	Theme        string `yaml:"theme"`
	Pattern      string `yaml:"pattern"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		CellWidth:    DefaultCellWidth,
		CellHeight:   DefaultCellHeight,
		FrameDelayMs: DefaultFrameDelay,
		Theme:        DefaultTheme,
	}
}

// Load reads a YAML file on top of DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("grid %dx%d: %w", c.Width, c.Height, life.ErrInvalidDimension)
	}
	if c.CellWidth < 1 || c.CellHeight < 1 {
		return fmt.Errorf("%w: cell size %dx%d must be positive", ErrInvalidConfig, c.CellWidth, c.CellHeight)
	}
	if c.FrameDelayMs < 0 {
		return fmt.Errorf("%w: frame delay %dms is negative", ErrInvalidConfig, c.FrameDelayMs)
	}
	return nil
}

func (c *Config) FrameDelay() time.Duration {
	return time.Duration(c.FrameDelayMs) * time.Millisecond
}
