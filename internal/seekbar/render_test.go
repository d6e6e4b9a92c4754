package seekbar

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a Surface that keeps every call it receives.
type recorder struct {
	calls []string
	arcs  []Arc
	lines []LineStroke
	fills []EllipseFill
	grads []Gradient
	solid []color.Color
}

func (r *recorder) StrokeArc(arc Arc, _ float64, clr color.Color) {
	r.calls = append(r.calls, "arc")
	r.arcs = append(r.arcs, arc)
	r.solid = append(r.solid, clr)
}

func (r *recorder) FillGradientStroke(arc Arc, _ float64, g Gradient) {
	r.calls = append(r.calls, "gradient")
	r.arcs = append(r.arcs, arc)
	r.grads = append(r.grads, g)
}

func (r *recorder) StrokeLine(from, to Point, width float64, clr color.Color) {
	r.calls = append(r.calls, "line")
	r.lines = append(r.lines, LineStroke{From: from, To: to, Width: width, Color: clr})
}

func (r *recorder) FillEllipse(bounds Rect, clr color.Color) {
	r.calls = append(r.calls, "ellipse")
	r.fills = append(r.fills, EllipseFill{Bounds: bounds, Color: clr})
}

func TestTickCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SweepAngle = 270
	cfg.DashWidth, cfg.DashGap, cfg.ExtraDashGap = 1, 2, 2

	angles := TickAngles(cfg)
	require.Len(t, angles, 55)
	assert.Equal(t, cfg.StartAngle, angles[0])
	assert.Equal(t, cfg.StartAngle+270, angles[54])
}

func TestTickCountIncludesSweepEndOnlyWhenReached(t *testing.T) {
	tests := []struct {
		sweep, step float64
		want        int
	}{
		{270, 5, 55},
		{272, 5, 55},
		{360, 7.2, 51},
		{90, 0.1, 901},
		{3, 5, 1},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.SweepAngle = tt.sweep
		cfg.DashWidth, cfg.DashGap, cfg.ExtraDashGap = tt.step, 0, 0
		assert.Len(t, TickAngles(cfg), tt.want, "sweep %v step %v", tt.sweep, tt.step)
	}
}

func TestTickAnglesAboveLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SweepAngle = 1e20
	assert.Empty(t, TickAngles(cfg))

	cfg = DefaultConfig()
	cfg.DashWidth, cfg.DashGap, cfg.ExtraDashGap = 1e-6, 0, 0
	assert.Empty(t, TickAngles(cfg))

	cfg = DefaultConfig()
	cfg.DashWidth, cfg.DashGap, cfg.ExtraDashGap = 1, 0, 0
	cfg.SweepAngle = MaxTicks
	assert.Len(t, TickAngles(cfg), MaxTicks+1)
}

func TestRenderOrder(t *testing.T) {
	cmds, err := Renderer{}.Render(DefaultConfig(), 50, Size{Width: 300, Height: 300})
	require.NoError(t, err)

	var rec recorder
	for _, c := range cmds {
		c.Draw(&rec)
	}

	require.Len(t, rec.calls, 1+55+1)
	assert.Equal(t, "gradient", rec.calls[0])
	for _, c := range rec.calls[1:56] {
		assert.Equal(t, "line", c)
	}
	assert.Equal(t, "ellipse", rec.calls[56])
}

func TestRenderProgressArc(t *testing.T) {
	cmds, err := Renderer{}.Render(DefaultConfig(), 50, Size{Width: 400, Height: 300})
	require.NoError(t, err)

	fill, ok := cmds[0].(GradientArcFill)
	require.True(t, ok)
	assert.Equal(t, Point{X: 200, Y: 150}, fill.Arc.Center)
	assert.Equal(t, 140.0, fill.Arc.Radius) // 300/2 - outer thumb 10
	assert.InDelta(t, ToRadians(135), fill.Arc.StartAngle, 1e-12)
	assert.InDelta(t, ToRadians(270), fill.Arc.EndAngle, 1e-12)
	assert.True(t, fill.Arc.Clockwise)
	assert.Equal(t, 8.0, fill.Width)

	// The gradient spans the box horizontally, independent of the arc.
	assert.Equal(t, Point{X: 0, Y: 150}, fill.Gradient.Start)
	assert.Equal(t, Point{X: 400, Y: 150}, fill.Gradient.End)
	assert.Len(t, fill.Gradient.Colors, 3)
}

func TestRenderSingleColorIsSolid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GradientColors = []color.Color{color.NRGBA{R: 10, G: 20, B: 30, A: 255}}

	cmds, err := Renderer{}.Render(cfg, 30, Size{Width: 200, Height: 200})
	require.NoError(t, err)

	stroke, ok := cmds[0].(ArcStroke)
	require.True(t, ok)
	assert.Equal(t, cfg.GradientColors[0], stroke.Color)
}

func TestRenderTicksSpanTheBar(t *testing.T) {
	cfg := DefaultConfig()
	cmds, err := Renderer{}.Render(cfg, 0, Size{Width: 200, Height: 200})
	require.NoError(t, err)

	geo := NewGeometry(Size{Width: 200, Height: 200}, cfg.OuterThumbRadius)
	line, ok := cmds[1].(LineStroke)
	require.True(t, ok)

	dist := func(p Point) float64 { return math.Hypot(p.X-geo.Center.X, p.Y-geo.Center.Y) }
	assert.InDelta(t, geo.Radius-cfg.BarWidth/2, dist(line.From), 1e-9)
	assert.InDelta(t, geo.Radius+cfg.BarWidth/2, dist(line.To), 1e-9)
	assert.InDelta(t, cfg.StartAngle, geo.AngleTo(line.To), 1e-9)
	assert.Equal(t, cfg.DashWidth, line.Width)
	assert.Equal(t, tickColor, line.Color)
}

func TestRenderHandle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartAngle = 0
	cfg.SweepAngle = 360

	cmds, err := Renderer{}.Render(cfg, 25, Size{Width: 220, Height: 220})
	require.NoError(t, err)

	handle, ok := cmds[len(cmds)-1].(EllipseFill)
	require.True(t, ok)
	// radius 100, a quarter turn clockwise from 3 o'clock is straight down.
	assert.InDelta(t, 110-5, handle.Bounds.Min.X, 1e-9)
	assert.InDelta(t, 210-5, handle.Bounds.Min.Y, 1e-9)
	assert.InDelta(t, 10, handle.Bounds.Width(), 1e-9)
	assert.InDelta(t, 10, handle.Bounds.Height(), 1e-9)
	assert.Equal(t, handleColor, handle.Color)
}

func TestRenderEmptyBoxIsNoop(t *testing.T) {
	for _, size := range []Size{{}, {Width: 100}, {Height: 100}, {Width: 15, Height: 15}} {
		cmds, err := Renderer{}.Render(DefaultConfig(), 50, size)
		assert.NoError(t, err)
		assert.Empty(t, cmds, "size %+v", size)
	}
}

func TestRenderRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GradientColors = nil

	cmds, err := Renderer{}.Render(cfg, 50, Size{Width: 100, Height: 100})
	assert.ErrorIs(t, err, ErrNoGradientColors)
	assert.Nil(t, cmds)
}

func TestRenderRejectsTooManyTicks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DashWidth, cfg.DashGap, cfg.ExtraDashGap = 1e-6, 0, 0

	cmds, err := Renderer{}.Render(cfg, 50, Size{Width: 100, Height: 100})
	assert.ErrorIs(t, err, ErrTooManyTicks)
	assert.Nil(t, cmds)
}

func TestGradientAt(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	g := Gradient{End: Point{X: 100}, Colors: []color.Color{red, blue}}

	assert.Equal(t, color.NRGBA{R: 255, A: 255}, g.At(0))
	assert.Equal(t, blue, g.At(1))
	assert.Equal(t, color.NRGBA{R: 128, B: 128, A: 255}, g.At(0.5))
	assert.Equal(t, g.At(0), g.ColorAt(Point{X: -20, Y: 50}))
	assert.Equal(t, g.At(0.25), g.ColorAt(Point{X: 25, Y: -7}))
	assert.Equal(t, g.At(1), g.ColorAt(Point{X: 500}))
}

func TestGradientEvenStops(t *testing.T) {
	colors := DefaultConfig().GradientColors
	g := Gradient{End: Point{X: 1}, Colors: colors}

	assert.Equal(t, color.NRGBA{G: 255, A: 255}, g.At(0))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, A: 255}, g.At(0.5))
	assert.Equal(t, colors[2], g.At(1))
}

func TestGradientSingleColor(t *testing.T) {
	g := Gradient{Colors: []color.Color{color.White}}
	assert.Equal(t, color.White, g.At(0.7))
	assert.Equal(t, color.White, g.ColorAt(Point{X: 3}))
}
