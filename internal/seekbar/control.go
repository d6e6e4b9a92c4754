// Package seekbar implements a circular seek control: a gradient arc with
// tick marks and a draggable handle, mapped onto a numeric range.
//
// The package draws nothing itself. A host supplies the bounding box,
// delivers pointer events, and replays the drawing commands onto a Surface
// whenever NeedsRedraw reports true. All methods must be called from the
// goroutine that runs the host's event loop.
package seekbar

import (
	"fmt"
	"image/color"
	"slices"
)

// Control is one seek bar instance.
type Control struct {
	model    *Model
	tracker  Tracker
	renderer Renderer
	size     Size
	dirty    bool

	observers []observer
	nextID    int
}

type observer struct {
	id int
	fn func(value float64)
}

// New returns a control for cfg, or the validation error.
func New(cfg Config) (*Control, error) {
	m, err := NewModel(cfg)
	if err != nil {
		return nil, err
	}
	return &Control{model: m, dirty: true}, nil
}

// OnValueChanged registers fn to run synchronously each time a drag commits
// a value. The returned func removes it.
func (c *Control) OnValueChanged(fn func(value float64)) (unsubscribe func()) {
	id := c.nextID
	c.nextID++
	c.observers = append(c.observers, observer{id: id, fn: fn})
	return func() {
		c.observers = slices.DeleteFunc(c.observers, func(o observer) bool { return o.id == id })
	}
}

func (c *Control) notify(v float64) {
	for _, o := range slices.Clone(c.observers) {
		o.fn(v)
	}
}

// NeedsRedraw reports whether anything visible changed since the last Draw.
func (c *Control) NeedsRedraw() bool {
	return c.dirty
}

// Invalidate forces the next NeedsRedraw to report true.
func (c *Control) Invalidate() {
	c.dirty = true
}

// SetSize updates the bounding box supplied by the host layout.
func (c *Control) SetSize(size Size) {
	if size != c.size {
		c.size = size
		c.dirty = true
	}
}

func (c *Control) Size() Size {
	return c.size
}

// Draw replays the current frame onto s and clears the redraw flag. An
// empty bounding box draws nothing.
func (c *Control) Draw(s Surface) error {
	cmds, err := c.Commands()
	if err != nil {
		return err
	}
	for _, cmd := range cmds {
		cmd.Draw(s)
	}
	c.dirty = false
	return nil
}

// Commands returns the drawing commands for the current state.
func (c *Control) Commands() ([]Command, error) {
	return c.renderer.Render(c.model.cfg, c.model.value, c.size)
}

func (c *Control) Geometry() Geometry {
	return NewGeometry(c.size, c.model.cfg.OuterThumbRadius)
}

// HandleCenter returns where the handle is drawn. ok is false when the box
// is too small to draw anything.
func (c *Control) HandleCenter() (p Point, ok bool) {
	geo := c.Geometry()
	if c.size.Empty() || geo.Radius <= 0 {
		return Point{}, false
	}
	return geo.PointAt(c.model.HandleAngle(), geo.Radius), true
}

// Tracking state machine.

func (c *Control) Tracking() TrackingState {
	return c.tracker.State()
}

// PointerDown starts a drag when p is inside the bounding box.
func (c *Control) PointerDown(p Point) bool {
	return c.tracker.Begin(p, c.size)
}

// PointerMove commits the value under p, notifies observers and marks the
// control for redraw. It reports false when no drag is in progress.
func (c *Control) PointerMove(p Point) bool {
	v, ok := c.tracker.Move(p, c.model, c.Geometry())
	if !ok {
		return false
	}
	c.model.SetValue(v)
	c.dirty = true
	c.notify(c.model.value)
	return true
}

func (c *Control) PointerUp() {
	c.tracker.End()
}

func (c *Control) PointerCancel() {
	c.tracker.Cancel()
}

// Value and configuration accessors. Every setter marks the control for
// redraw; a failing setter leaves the configuration unchanged.

func (c *Control) Value() float64 {
	return c.model.Value()
}

// SetValue clamps and stores v without notifying observers.
func (c *Control) SetValue(v float64) {
	old := c.model.value
	if c.model.SetValue(v) != old {
		c.dirty = true
	}
}

// Fraction is the value's position within the range, in [0, 1].
func (c *Control) Fraction() float64 {
	return c.model.Fraction()
}

func (c *Control) Config() Config {
	return c.model.Config()
}

// SetConfig replaces the whole configuration.
func (c *Control) SetConfig(cfg Config) error {
	return c.update("config", func(dst *Config) { *dst = cfg })
}

func (c *Control) update(field string, mutate func(cfg *Config)) error {
	cfg := c.model.Config()
	mutate(&cfg)
	if err := c.model.setConfig(cfg); err != nil {
		return fmt.Errorf("set %s: %w", field, err)
	}
	c.dirty = true
	return nil
}

func (c *Control) MinimumValue() float64 { return c.model.cfg.MinimumValue }
func (c *Control) MaximumValue() float64 { return c.model.cfg.MaximumValue }

func (c *Control) SetMinimumValue(v float64) error {
	return c.update("minimum value", func(cfg *Config) { cfg.MinimumValue = v })
}

func (c *Control) SetMaximumValue(v float64) error {
	return c.update("maximum value", func(cfg *Config) { cfg.MaximumValue = v })
}

// SetRange sets both bounds at once, so a range can move past the old one.
func (c *Control) SetRange(minimum, maximum float64) error {
	return c.update("range", func(cfg *Config) {
		cfg.MinimumValue, cfg.MaximumValue = minimum, maximum
	})
}

func (c *Control) BarWidth() float64 { return c.model.cfg.BarWidth }

func (c *Control) SetBarWidth(v float64) error {
	return c.update("bar width", func(cfg *Config) { cfg.BarWidth = v })
}

func (c *Control) InnerThumbRadius() float64 { return c.model.cfg.InnerThumbRadius }

func (c *Control) SetInnerThumbRadius(v float64) error {
	return c.update("inner thumb radius", func(cfg *Config) { cfg.InnerThumbRadius = v })
}

func (c *Control) OuterThumbRadius() float64 { return c.model.cfg.OuterThumbRadius }

func (c *Control) SetOuterThumbRadius(v float64) error {
	return c.update("outer thumb radius", func(cfg *Config) { cfg.OuterThumbRadius = v })
}

func (c *Control) GradientColors() []color.Color {
	return slices.Clone(c.model.cfg.GradientColors)
}

func (c *Control) SetGradientColors(colors []color.Color) error {
	return c.update("gradient colors", func(cfg *Config) { cfg.GradientColors = slices.Clone(colors) })
}

func (c *Control) StartAngle() float64 { return c.model.cfg.StartAngle }

func (c *Control) SetStartAngle(v float64) error {
	return c.update("start angle", func(cfg *Config) { cfg.StartAngle = v })
}

func (c *Control) SweepAngle() float64 { return c.model.cfg.SweepAngle }

func (c *Control) SetSweepAngle(v float64) error {
	return c.update("sweep angle", func(cfg *Config) { cfg.SweepAngle = v })
}

func (c *Control) DashWidth() float64 { return c.model.cfg.DashWidth }

func (c *Control) SetDashWidth(v float64) error {
	return c.update("dash width", func(cfg *Config) { cfg.DashWidth = v })
}

func (c *Control) DashGap() float64 { return c.model.cfg.DashGap }

func (c *Control) SetDashGap(v float64) error {
	return c.update("dash gap", func(cfg *Config) { cfg.DashGap = v })
}

func (c *Control) ExtraDashGap() float64 { return c.model.cfg.ExtraDashGap }

func (c *Control) SetExtraDashGap(v float64) error {
	return c.update("extra dash gap", func(cfg *Config) { cfg.ExtraDashGap = v })
}
