package seekbar

import "math"

type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max Point
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Size is the control's bounding box in its own coordinate space, with the
// origin at the top left corner.
type Size struct {
	Width, Height float64
}

func (s Size) Empty() bool {
	return !(s.Width > 0) || !(s.Height > 0)
}

// Contains reports whether p lies inside the box.
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.Width && p.Y < s.Height
}

// Geometry is derived from the bounding box on every draw.
type Geometry struct {
	Center Point
	Radius float64
}

// NewGeometry centers the circle in the box and shrinks it so the outer
// thumb radius still fits.
func NewGeometry(size Size, outerThumbRadius float64) Geometry {
	return Geometry{
		Center: Point{X: size.Width / 2, Y: size.Height / 2},
		Radius: math.Min(size.Width, size.Height)/2 - outerThumbRadius,
	}
}

// PointAt returns the point at distance r from the center, at angle degrees.
func (g Geometry) PointAt(angle, r float64) Point {
	rad := ToRadians(angle)
	return Point{
		X: g.Center.X + r*math.Cos(rad),
		Y: g.Center.Y + r*math.Sin(rad),
	}
}

// AngleTo returns the angle in degrees from the center to p, in (-180, 180].
func (g Geometry) AngleTo(p Point) float64 {
	return ToDegrees(math.Atan2(p.Y-g.Center.Y, p.X-g.Center.X))
}
