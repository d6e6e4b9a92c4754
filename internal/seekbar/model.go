package seekbar

import "math"

// Model owns the configuration and the current value, and converts
// between values and angles.
type Model struct {
	cfg   Config
	value float64
}

// NewModel validates cfg and starts the value at its minimum.
func NewModel(cfg Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Model{cfg: cfg.clone(), value: cfg.MinimumValue}, nil
}

// Config returns a copy of the current configuration.
func (m *Model) Config() Config {
	return m.cfg.clone()
}

// setConfig replaces the configuration if it validates, re-clamping the value
// into the new range. On error m is unchanged.
func (m *Model) setConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	m.cfg = cfg.clone()
	m.value = m.clamp(m.value)
	return nil
}

func (m *Model) Value() float64 {
	return m.value
}

// SetValue stores v clamped to [MinimumValue, MaximumValue] and returns the
// stored value. Out of range input is not an error. NaN is ignored.
func (m *Model) SetValue(v float64) float64 {
	if math.IsNaN(v) {
		return m.value
	}
	m.value = m.clamp(v)
	return m.value
}

// Fraction is the position of the value within the range, in [0, 1].
func (m *Model) Fraction() float64 {
	return clamp01((m.value - m.cfg.MinimumValue) / (m.cfg.MaximumValue - m.cfg.MinimumValue))
}

// HandleAngle is the angle of the handle in degrees.
func (m *Model) HandleAngle() float64 {
	return m.cfg.StartAngle + m.cfg.SweepAngle*m.Fraction()
}

func (m *Model) HandleAngleRadians() float64 {
	return ToRadians(m.HandleAngle())
}

// AdjustedAngle normalizes a raw pointer angle in degrees relative to the
// start angle into [0, 360).
func (m *Model) AdjustedAngle(angle float64) float64 {
	a := math.Mod(angle-m.cfg.StartAngle, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

// ValueForAngleFraction maps an adjusted angle onto the value range and
// clamps it. Angles past the sweep end, including the gap between the end
// and the start, resolve to MaximumValue.
func (m *Model) ValueForAngleFraction(adjusted float64) float64 {
	span := m.cfg.MaximumValue - m.cfg.MinimumValue
	return m.clamp(m.cfg.MinimumValue + span*adjusted/m.cfg.SweepAngle)
}

func (m *Model) clamp(v float64) float64 {
	return math.Min(m.cfg.MaximumValue, math.Max(m.cfg.MinimumValue, v))
}

func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func ToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
