package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/circular-seekbar/internal/seekbar"
)

const (
	appName        = "circular-seekbar"
	configFileName = "config.toml"

	// Open button dimensions
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonX      = 20
	ButtonY      = 50

	// ControlHeight is the seek bar's height; it spans the window width.
	ControlHeight = 300
)

type Config struct {
	Window  WindowConfig  `koanf:"window"`
	SeekBar SeekBarConfig `koanf:"seekbar"`
	Player  PlayerConfig  `koanf:"player"`
}

type WindowConfig struct {
	Width  int    `koanf:"width"`
	Height int    `koanf:"height"`
	Title  string `koanf:"title"`
}

// SeekBarConfig mirrors seekbar.Config with colors as hex strings.
type SeekBarConfig struct {
	Minimum          float64  `koanf:"minimum"`
	Maximum          float64  `koanf:"maximum"`
	Value            float64  `koanf:"value"` // initial value
	BarWidth         float64  `koanf:"bar_width"`
	InnerThumbRadius float64  `koanf:"inner_thumb_radius"`
	OuterThumbRadius float64  `koanf:"outer_thumb_radius"`
	GradientColors   []string `koanf:"gradient_colors"` // e.g. ["#00ff00", "#ff0000"]
	StartAngle       float64  `koanf:"start_angle"`     // degrees, clockwise from 3 o'clock
	SweepAngle       float64  `koanf:"sweep_angle"`
	DashWidth        float64  `koanf:"dash_width"`
	DashGap          float64  `koanf:"dash_gap"`
	ExtraDashGap     float64  `koanf:"extra_dash_gap"`
}

type PlayerConfig struct {
	SeekCooldownMS int `koanf:"seek_cooldown_ms"` // minimum time between seeks while dragging
}

// Default returns the built-in configuration.
func Default() *Config {
	sb := seekbar.DefaultConfig()
	hexes := make([]string, len(sb.GradientColors))
	for i, c := range sb.GradientColors {
		cf, _ := colorful.MakeColor(c)
		hexes[i] = cf.Hex()
	}

	return &Config{
		Window: WindowConfig{
			Width:  640,
			Height: 480,
			Title:  "Circular Seek Bar - Click Open File, drag the ring to seek, Space: Play/Pause, Esc/Q: Quit",
		},
		SeekBar: SeekBarConfig{
			Minimum:          sb.MinimumValue,
			Maximum:          sb.MaximumValue,
			Value:            sb.MinimumValue,
			BarWidth:         sb.BarWidth,
			InnerThumbRadius: sb.InnerThumbRadius,
			OuterThumbRadius: sb.OuterThumbRadius,
			GradientColors:   hexes,
			StartAngle:       sb.StartAngle,
			SweepAngle:       sb.SweepAngle,
			DashWidth:        sb.DashWidth,
			DashGap:          sb.DashGap,
			ExtraDashGap:     sb.ExtraDashGap,
		},
		Player: PlayerConfig{
			SeekCooldownMS: 50,
		},
	}
}

// Load merges the config files found in the XDG config dirs, the working
// directory and explicitPath, in that order (last wins). An explicit path
// that does not exist is an error; the others are optional.
func Load(explicitPath string) (*Config, error) {
	var paths []string
	if p, err := xdg.SearchConfigFile(appName + "/" + configFileName); err == nil {
		paths = append(paths, p)
	}
	if _, err := os.Stat(configFileName); err == nil {
		paths = append(paths, configFileName)
	}
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		paths = append(paths, explicitPath)
	}
	return loadFiles(paths)
}

func loadFiles(paths []string) (*Config, error) {
	k := koanf.New(".")
	for _, path := range paths {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	cfg := Default()
	// Decoding into a non-empty slice keeps its tail, so a shorter list in
	// the file must start from scratch.
	if k.Exists("seekbar.gradient_colors") {
		cfg.SeekBar.GradientColors = nil
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the window and that the seek bar section converts.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Player.SeekCooldownMS < 0 {
		errs = append(errs, fmt.Errorf("seek_cooldown_ms %d must not be negative", c.Player.SeekCooldownMS))
	}
	if _, err := c.SeekBar.SeekBar(); err != nil {
		errs = append(errs, fmt.Errorf("seekbar: %w", err))
	}
	return errors.Join(errs...)
}

// SeekBar converts the section into a validated seekbar.Config.
func (c SeekBarConfig) SeekBar() (seekbar.Config, error) {
	colors := make([]color.Color, 0, len(c.GradientColors))
	for _, h := range c.GradientColors {
		cf, err := colorful.Hex(h)
		if err != nil {
			return seekbar.Config{}, fmt.Errorf("gradient color %q: %w", h, err)
		}
		colors = append(colors, cf)
	}

	sb := seekbar.Config{
		MinimumValue:     c.Minimum,
		MaximumValue:     c.Maximum,
		BarWidth:         c.BarWidth,
		InnerThumbRadius: c.InnerThumbRadius,
		OuterThumbRadius: c.OuterThumbRadius,
		GradientColors:   colors,
		StartAngle:       c.StartAngle,
		SweepAngle:       c.SweepAngle,
		DashWidth:        c.DashWidth,
		DashGap:          c.DashGap,
		ExtraDashGap:     c.ExtraDashGap,
	}
	if err := sb.Validate(); err != nil {
		return seekbar.Config{}, err
	}
	return sb, nil
}

func (c PlayerConfig) SeekCooldown() time.Duration {
	return time.Duration(c.SeekCooldownMS) * time.Millisecond
}
