package canvas

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/circular-seekbar/internal/seekbar"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

// extremes returns the vertices furthest left and right.
func extremes(vs []ebiten.Vertex) (left, right ebiten.Vertex) {
	left, right = vs[0], vs[0]
	for _, v := range vs[1:] {
		if v.DstX < left.DstX {
			left = v
		}
		if v.DstX > right.DstX {
			right = v
		}
	}
	return left, right
}

func assertVertexColor(t *testing.T, want color.Color, v ebiten.Vertex) {
	t.Helper()
	r, g, b, a := want.RGBA()
	assert.InDelta(t, float32(r)/0xffff, v.ColorR, 1e-3)
	assert.InDelta(t, float32(g)/0xffff, v.ColorG, 1e-3)
	assert.InDelta(t, float32(b)/0xffff, v.ColorB, 1e-3)
	assert.InDelta(t, float32(a)/0xffff, v.ColorA, 1e-3)
}

func TestGradientArcEndsTakeEndStops(t *testing.T) {
	arc := seekbar.Arc{
		Center:     seekbar.Point{X: 100, Y: 100},
		Radius:     80,
		StartAngle: seekbar.ToRadians(135),
		EndAngle:   seekbar.ToRadians(405),
		Clockwise:  true,
	}
	vs, is, ok := appendArcStroke(nil, nil, arc, 8)
	require.True(t, ok)
	require.NotEmpty(t, vs)
	require.NotEmpty(t, is)

	left, right := extremes(vs)
	assert.InDelta(t, 16, left.DstX, 1)
	assert.InDelta(t, 184, right.DstX, 1)

	g := seekbar.Gradient{
		Start:  seekbar.Point{X: float64(left.DstX), Y: 100},
		End:    seekbar.Point{X: float64(right.DstX), Y: 100},
		Colors: []color.Color{red, green, blue},
	}
	shadeVertices(vs, g.ColorAt)

	left, right = extremes(vs)
	assertVertexColor(t, red, left)
	assertVertexColor(t, blue, right)
}

func TestShadeVerticesUsesDestinationPosition(t *testing.T) {
	vs := []ebiten.Vertex{{DstX: 250, DstY: 40}, {DstX: 260, DstY: 40}}
	g := seekbar.Gradient{
		Start:  seekbar.Point{X: 250, Y: 0},
		End:    seekbar.Point{X: 260, Y: 0},
		Colors: []color.Color{red, blue},
	}

	var seen []seekbar.Point
	shadeVertices(vs, func(p seekbar.Point) color.Color {
		seen = append(seen, p)
		return g.ColorAt(p)
	})

	assert.Equal(t, []seekbar.Point{{X: 250, Y: 40}, {X: 260, Y: 40}}, seen)
	assertVertexColor(t, red, vs[0])
	assertVertexColor(t, blue, vs[1])
}

func TestShadeVerticesPremultiplies(t *testing.T) {
	vs := []ebiten.Vertex{{DstX: 3, DstY: 4, SrcX: 7, SrcY: 9}}
	shadeVertices(vs, solid(color.NRGBA{R: 255, A: 128}))

	v := vs[0]
	assert.Equal(t, float32(1), v.SrcX)
	assert.Equal(t, float32(1), v.SrcY)
	assert.InDelta(t, 128.0/255, v.ColorR, 1e-3)
	assert.InDelta(t, v.ColorA, v.ColorR, 1e-6)
	assert.Zero(t, v.ColorG)
	assert.Zero(t, v.ColorB)
}

func TestAppendArcStrokeSkipsInvisible(t *testing.T) {
	arc := seekbar.Arc{Center: seekbar.Point{X: 50, Y: 50}, Radius: 40, StartAngle: 0, EndAngle: 1}
	zeroRadius := arc
	zeroRadius.Radius = 0
	empty := arc
	empty.EndAngle = empty.StartAngle

	tests := []struct {
		name  string
		arc   seekbar.Arc
		width float64
	}{
		{"zero width", arc, 0},
		{"zero radius", zeroRadius, 4},
		{"empty sweep", empty, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vs, is, ok := appendArcStroke(nil, nil, tt.arc, tt.width)
			assert.False(t, ok)
			assert.Empty(t, vs)
			assert.Empty(t, is)
		})
	}
}

func TestAppendEllipseFillSpansBounds(t *testing.T) {
	bounds := seekbar.Rect{Min: seekbar.Point{X: 10, Y: 20}, Max: seekbar.Point{X: 30, Y: 30}}
	vs, is, ok := appendEllipseFill(nil, nil, bounds)
	require.True(t, ok)
	require.GreaterOrEqual(t, len(vs), ellipseSegments)
	require.NotEmpty(t, is)

	minX, maxX, minY, maxY := vs[0].DstX, vs[0].DstX, vs[0].DstY, vs[0].DstY
	for _, v := range vs {
		minX, maxX = min(minX, v.DstX), max(maxX, v.DstX)
		minY, maxY = min(minY, v.DstY), max(maxY, v.DstY)
	}
	assert.InDelta(t, 10, minX, 1e-3)
	assert.InDelta(t, 30, maxX, 1e-3)
	assert.InDelta(t, 20, minY, 1e-3)
	assert.InDelta(t, 30, maxY, 1e-3)
}

func TestAppendEllipseFillSkipsEmptyBounds(t *testing.T) {
	flat := seekbar.Rect{Min: seekbar.Point{X: 10, Y: 20}, Max: seekbar.Point{X: 30, Y: 20}}
	vs, is, ok := appendEllipseFill(nil, nil, flat)
	assert.False(t, ok)
	assert.Empty(t, vs)
	assert.Empty(t, is)
}
