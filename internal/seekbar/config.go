package seekbar

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"slices"
)

// Configuration errors. Setters and Validate wrap these, so callers match
// them with errors.Is.
var (
	ErrInvalidRange      = errors.New("minimum value must be less than maximum value")
	ErrNoGradientColors  = errors.New("gradient needs at least one color")
	ErrInvalidSweep      = errors.New("sweep angle must be positive")
	ErrNegativeDimension = errors.New("dimension must not be negative")
	ErrInvalidDashStep   = errors.New("dash width plus gaps must be positive")
	ErrNotFinite         = errors.New("value must be finite")
	ErrTooManyTicks      = errors.New("sweep angle over dash step exceeds the tick limit")
)

// MaxTicks bounds the number of tick marks one sweep may hold.
const MaxTicks = 1 << 16

// Config holds every visual and range parameter of the seek bar.
// Angles are in degrees, measured clockwise from 3 o'clock in screen space.
type Config struct {
	MinimumValue float64
	MaximumValue float64

	BarWidth         float64
	InnerThumbRadius float64
	OuterThumbRadius float64

	// One color draws a solid arc.
	GradientColors []color.Color

	StartAngle float64
	SweepAngle float64

	DashWidth    float64
	DashGap      float64
	ExtraDashGap float64
}

// DefaultConfig returns a 0..100 bar sweeping 270° from the lower left,
// filled green to yellow to red.
func DefaultConfig() Config {
	return Config{
		MinimumValue:     0,
		MaximumValue:     100,
		BarWidth:         8,
		InnerThumbRadius: 5,
		OuterThumbRadius: 10,
		GradientColors: []color.Color{
			color.NRGBA{R: 0, G: 255, B: 0, A: 255},
			color.NRGBA{R: 255, G: 255, B: 0, A: 255},
			color.NRGBA{R: 255, G: 0, B: 0, A: 255},
		},
		StartAngle:   135,
		SweepAngle:   270,
		DashWidth:    1,
		DashGap:      2,
		ExtraDashGap: 2,
	}
}

// DashStep is the angular distance in degrees between two tick marks.
func (c Config) DashStep() float64 {
	return c.DashWidth + c.DashGap + c.ExtraDashGap
}

// Validate reports every violated invariant, joined into one error.
func (c Config) Validate() error {
	var errs []error

	switch {
	case !finite(c.MinimumValue) || !finite(c.MaximumValue):
		errs = append(errs, fmt.Errorf("range: %w", ErrNotFinite))
	case c.MinimumValue >= c.MaximumValue:
		errs = append(errs, fmt.Errorf("range [%g, %g]: %w", c.MinimumValue, c.MaximumValue, ErrInvalidRange))
	}

	for _, d := range []struct {
		name  string
		value float64
	}{
		{"bar width", c.BarWidth},
		{"inner thumb radius", c.InnerThumbRadius},
		{"outer thumb radius", c.OuterThumbRadius},
		{"dash width", c.DashWidth},
		{"dash gap", c.DashGap},
		{"extra dash gap", c.ExtraDashGap},
	} {
		if err := checkDimension(d.name, d.value); err != nil {
			errs = append(errs, err)
		}
	}

	if len(c.GradientColors) == 0 {
		errs = append(errs, ErrNoGradientColors)
	}
	for i, clr := range c.GradientColors {
		if clr == nil {
			errs = append(errs, fmt.Errorf("gradient color %d is nil: %w", i, ErrNoGradientColors))
		}
	}

	if !finite(c.StartAngle) {
		errs = append(errs, fmt.Errorf("start angle: %w", ErrNotFinite))
	}
	switch {
	case !finite(c.SweepAngle):
		errs = append(errs, fmt.Errorf("sweep angle: %w", ErrNotFinite))
	case c.SweepAngle <= 0:
		errs = append(errs, fmt.Errorf("sweep angle %g: %w", c.SweepAngle, ErrInvalidSweep))
	}

	step := c.DashStep()
	if finite(step) && step <= 0 {
		errs = append(errs, fmt.Errorf("dash step %g: %w", step, ErrInvalidDashStep))
	}
	if n := c.SweepAngle / step; step > 0 && c.SweepAngle > 0 && !(n <= MaxTicks) {
		errs = append(errs, fmt.Errorf("%g ticks: %w", n, ErrTooManyTicks))
	}

	return errors.Join(errs...)
}

// clone returns a copy that shares no slices with c.
func (c Config) clone() Config {
	c.GradientColors = slices.Clone(c.GradientColors)
	return c
}

func checkDimension(name string, v float64) error {
	if !finite(v) {
		return fmt.Errorf("%s: %w", name, ErrNotFinite)
	}
	if v < 0 {
		return fmt.Errorf("%s %g: %w", name, v, ErrNegativeDimension)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
