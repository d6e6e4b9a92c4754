package seekbar

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Gradient is a linear gradient from Start to End with evenly spaced stops.
// Points before Start take the first color, points past End the last.
type Gradient struct {
	Start, End Point
	Colors     []color.Color
}

// ColorAt projects p onto the gradient axis and returns the color there.
func (g Gradient) ColorAt(p Point) color.Color {
	dx, dy := g.End.X-g.Start.X, g.End.Y-g.Start.Y
	length := dx*dx + dy*dy
	if length == 0 {
		return g.At(0)
	}
	return g.At(((p.X-g.Start.X)*dx + (p.Y-g.Start.Y)*dy) / length)
}

// At returns the color at t in [0, 1] along the gradient.
func (g Gradient) At(t float64) color.Color {
	switch len(g.Colors) {
	case 0:
		return color.Transparent
	case 1:
		return g.Colors[0]
	}

	t = clamp01(t)
	segments := float64(len(g.Colors) - 1)
	i := int(math.Floor(t * segments))
	if i >= len(g.Colors)-1 {
		return g.Colors[len(g.Colors)-1]
	}
	return blend(g.Colors[i], g.Colors[i+1], t*segments-float64(i))
}

// blend interpolates in RGB, which is what device-RGB gradients do.
func blend(from, to color.Color, t float64) color.Color {
	c1, a1 := stop(from)
	c2, a2 := stop(to)
	r, g, b := c1.BlendRgb(c2, t).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round((a1 + (a2-a1)*t) * 255))}
}

func stop(c color.Color) (colorful.Color, float64) {
	_, _, _, a := c.RGBA()
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return colorful.Color{}, 0
	}
	return cf, float64(a) / 0xffff
}
