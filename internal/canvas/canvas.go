// Package canvas draws seek bar commands onto an ebiten image.
package canvas

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/circular-seekbar/internal/seekbar"
)

// ellipseSegments is how many edges approximate an ellipse.
const ellipseSegments = 64

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// white returns a 1x1 opaque white source for DrawTriangles; vertex colors
// tint it.
func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Surface implements seekbar.Surface on top of an ebiten image. Commands
// are drawn in the image's own coordinates.
type Surface struct {
	dst       *ebiten.Image
	antialias bool

	vertices []ebiten.Vertex
	indices  []uint16
}

var _ seekbar.Surface = (*Surface)(nil)

// New returns a surface drawing onto dst.
func New(dst *ebiten.Image, antialias bool) *Surface {
	return &Surface{dst: dst, antialias: antialias}
}

// SetTarget switches the destination image, e.g. after a resize.
func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) StrokeArc(arc seekbar.Arc, width float64, clr color.Color) {
	s.strokeArc(arc, width, solid(clr))
}

// FillGradientStroke strokes the arc and shades each vertex by its position
// on the gradient axis; the GPU interpolates between them.
func (s *Surface) FillGradientStroke(arc seekbar.Arc, width float64, g seekbar.Gradient) {
	s.strokeArc(arc, width, g.ColorAt)
}

func (s *Surface) strokeArc(arc seekbar.Arc, width float64, shade func(seekbar.Point) color.Color) {
	var ok bool
	s.vertices, s.indices, ok = appendArcStroke(s.vertices[:0], s.indices[:0], arc, width)
	if !ok {
		return
	}
	s.draw(shade)
}

func (s *Surface) StrokeLine(from, to seekbar.Point, width float64, clr color.Color) {
	if width <= 0 {
		return
	}
	vector.StrokeLine(s.dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y),
		float32(width), clr, s.antialias)
}

func (s *Surface) FillEllipse(bounds seekbar.Rect, clr color.Color) {
	var ok bool
	s.vertices, s.indices, ok = appendEllipseFill(s.vertices[:0], s.indices[:0], bounds)
	if !ok {
		return
	}
	s.draw(solid(clr))
}

func (s *Surface) draw(shade func(seekbar.Point) color.Color) {
	shadeVertices(s.vertices, shade)

	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = s.antialias
	s.dst.DrawTriangles(s.vertices, s.indices, white(), op)
}

// appendArcStroke appends the triangles of a stroked arc. It reports false,
// appending nothing, when the stroke would be invisible.
func appendArcStroke(vs []ebiten.Vertex, is []uint16, arc seekbar.Arc, width float64) ([]ebiten.Vertex, []uint16, bool) {
	if width <= 0 || arc.Radius <= 0 || arc.StartAngle == arc.EndAngle {
		return vs, is, false
	}

	dir := vector.CounterClockwise
	if arc.Clockwise {
		dir = vector.Clockwise
	}

	var path vector.Path
	path.Arc(float32(arc.Center.X), float32(arc.Center.Y), float32(arc.Radius),
		float32(arc.StartAngle), float32(arc.EndAngle), dir)

	vs, is = path.AppendVerticesAndIndicesForStroke(vs, is, &vector.StrokeOptions{
		Width: float32(width),
	})
	return vs, is, true
}

// appendEllipseFill appends the triangles of the ellipse inscribed in bounds.
func appendEllipseFill(vs []ebiten.Vertex, is []uint16, bounds seekbar.Rect) ([]ebiten.Vertex, []uint16, bool) {
	rx, ry := bounds.Width()/2, bounds.Height()/2
	if rx <= 0 || ry <= 0 {
		return vs, is, false
	}
	cx, cy := bounds.Min.X+rx, bounds.Min.Y+ry

	var path vector.Path
	for i := range ellipseSegments {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		x, y := float32(cx+rx*math.Cos(a)), float32(cy+ry*math.Sin(a))
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	vs, is = path.AppendVerticesAndIndicesForFilling(vs, is)
	return vs, is, true
}

// shadeVertices points every vertex at the white source pixel and sets its
// color to shade at the vertex position, premultiplied.
func shadeVertices(vs []ebiten.Vertex, shade func(seekbar.Point) color.Color) {
	for i := range vs {
		v := &vs[i]
		r, g, b, a := shade(seekbar.Point{X: float64(v.DstX), Y: float64(v.DstY)}).RGBA()
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(r) / 0xffff
		v.ColorG = float32(g) / 0xffff
		v.ColorB = float32(b) / 0xffff
		v.ColorA = float32(a) / 0xffff
	}
}

func solid(clr color.Color) func(seekbar.Point) color.Color {
	return func(seekbar.Point) color.Color { return clr }
}
