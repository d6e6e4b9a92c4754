package seekbar

import "image/color"

// Surface is the 2D drawing backend the renderer emits commands to.
// Implementations own pixels and color spaces; the seek bar never does.
type Surface interface {
	StrokeArc(arc Arc, width float64, clr color.Color)
	// FillGradientStroke fills the outline of arc stroked at width with g.
	FillGradientStroke(arc Arc, width float64, g Gradient)
	StrokeLine(from, to Point, width float64, clr color.Color)
	FillEllipse(bounds Rect, clr color.Color)
}

// Arc is a circular arc; angles are in radians.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Clockwise  bool
}

// Command is one drawing primitive.
type Command interface {
	Draw(s Surface)
}

type ArcStroke struct {
	Arc   Arc
	Width float64
	Color color.Color
}

func (c ArcStroke) Draw(s Surface) { s.StrokeArc(c.Arc, c.Width, c.Color) }

type GradientArcFill struct {
	Arc      Arc
	Width    float64
	Gradient Gradient
}

func (c GradientArcFill) Draw(s Surface) { s.FillGradientStroke(c.Arc, c.Width, c.Gradient) }

type LineStroke struct {
	From, To Point
	Width    float64
	Color    color.Color
}

func (c LineStroke) Draw(s Surface) { s.StrokeLine(c.From, c.To, c.Width, c.Color) }

type EllipseFill struct {
	Bounds Rect
	Color  color.Color
}

func (c EllipseFill) Draw(s Surface) { s.FillEllipse(c.Bounds, c.Color) }
