package seekbar

import (
	"image/color"
	"math"
)

var (
	tickColor   = color.NRGBA{A: 255}
	handleColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Renderer turns a configuration and a value into drawing commands.
// It holds no state; the same inputs always give the same commands.
type Renderer struct{}

// Render returns the progress arc, the tick marks and the handle, in
// drawing order. An empty box, or one too small to fit the outer thumb
// radius, renders nothing.
func (Renderer) Render(cfg Config, value float64, size Size) ([]Command, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	geo := NewGeometry(size, cfg.OuterThumbRadius)
	if size.Empty() || geo.Radius <= 0 {
		return nil, nil
	}

	fraction := clamp01((value - cfg.MinimumValue) / (cfg.MaximumValue - cfg.MinimumValue))
	handleAngle := cfg.StartAngle + cfg.SweepAngle*fraction

	ticks := TickAngles(cfg)
	cmds := make([]Command, 0, len(ticks)+2)

	// Progress arc
	cmds = append(cmds, progressArc(cfg, geo, size, handleAngle))

	// Tick marks, inside to outside across the bar
	inner, outer := geo.Radius-cfg.BarWidth/2, geo.Radius+cfg.BarWidth/2
	for _, a := range ticks {
		cmds = append(cmds, LineStroke{
			From:  geo.PointAt(a, inner),
			To:    geo.PointAt(a, outer),
			Width: cfg.DashWidth,
			Color: tickColor,
		})
	}

	// Handle
	c := geo.PointAt(handleAngle, geo.Radius)
	r := cfg.InnerThumbRadius
	cmds = append(cmds, EllipseFill{
		Bounds: Rect{Min: Point{X: c.X - r, Y: c.Y - r}, Max: Point{X: c.X + r, Y: c.Y + r}},
		Color:  handleColor,
	})

	return cmds, nil
}

// progressArc fills the arc with a horizontal gradient laid across the whole
// box; it does not rotate with the start angle or the value.
func progressArc(cfg Config, geo Geometry, size Size, endAngle float64) Command {
	arc := Arc{
		Center:     geo.Center,
		Radius:     geo.Radius,
		StartAngle: ToRadians(cfg.StartAngle),
		EndAngle:   ToRadians(endAngle),
		Clockwise:  true,
	}
	if len(cfg.GradientColors) == 1 {
		return ArcStroke{Arc: arc, Width: cfg.BarWidth, Color: cfg.GradientColors[0]}
	}
	return GradientArcFill{
		Arc:   arc,
		Width: cfg.BarWidth,
		Gradient: Gradient{
			Start:  Point{X: 0, Y: size.Height / 2},
			End:    Point{X: size.Width, Y: size.Height / 2},
			Colors: cfg.GradientColors,
		},
	}
}

// TickAngles returns the absolute angle in degrees of every tick mark, from
// the start angle up to and including the sweep end. A sweep holding more
// than MaxTicks steps yields none.
func TickAngles(cfg Config) []float64 {
	step := cfg.DashStep()
	if !(step > 0) || !(cfg.SweepAngle >= 0) {
		return nil
	}
	// Tolerate rounding so a step that divides the sweep lands on its end.
	f := math.Floor(cfg.SweepAngle / step * (1 + 1e-12))
	if !(f <= MaxTicks) {
		return nil
	}
	n := int(f) + 1
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = cfg.StartAngle + float64(i)*step
	}
	return angles
}
