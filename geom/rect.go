// Package geom holds the plane geometry shared by the sortable engine:
// points, rectangles, insets, the list axis and affine transforms.
package geom

import "math"

// Point is a position in viewport coordinates.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Rect is an axis aligned rectangle. Width and Height may be zero but are
// never negative for rectangles produced by this package.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectFromEdges builds a rectangle from its edges. Inverted edges yield a
// zero sized rectangle at the start edge.
func RectFromEdges(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, Width: nonNegative(right - left), Height: nonNegative(bottom - top)}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Origin returns the top left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point { return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2} }

// Translate moves the rectangle by d.
func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// MoveTo places the rectangle's origin at p.
func (r Rect) MoveTo(p Point) Rect {
	r.X, r.Y = p.X, p.Y
	return r
}

// Scale resizes the rectangle around its own origin.
func (r Rect) Scale(f float64) Rect {
	r.Width = nonNegative(r.Width * f)
	r.Height = nonNegative(r.Height * f)
	return r
}

// Inset shrinks the rectangle by in on every side. The result never has
// negative extents.
func (r Rect) Inset(in Insets) Rect {
	return RectFromEdges(r.Left()+in.Left, r.Top()+in.Top, r.Right()-in.Right, r.Bottom()-in.Bottom)
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Extent returns the rectangle's size along axis.
func (r Rect) Extent(axis Axis) float64 {
	if axis == Horizontal {
		return r.Width
	}
	return r.Height
}

// Start returns the leading edge along axis.
func (r Rect) Start(axis Axis) float64 {
	if axis == Horizontal {
		return r.Left()
	}
	return r.Top()
}

// End returns the trailing edge along axis.
func (r Rect) End(axis Axis) float64 {
	if axis == Horizontal {
		return r.Right()
	}
	return r.Bottom()
}

// Intersect returns the overlap of a and b. Disjoint rectangles produce a
// zero sized rectangle.
func Intersect(a, b Rect) Rect {
	return RectFromEdges(
		math.Max(a.Left(), b.Left()),
		math.Max(a.Top(), b.Top()),
		math.Min(a.Right(), b.Right()),
		math.Min(a.Bottom(), b.Bottom()),
	)
}

// Area returns width * height.
func (r Rect) Area() float64 { return r.Width * r.Height }

// Insets are per edge distances, as used for margins and borders.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Uniform returns insets of v on every edge.
func Uniform(v float64) Insets { return Insets{Top: v, Right: v, Bottom: v, Left: v} }

// Start returns the leading inset along axis.
func (in Insets) Start(axis Axis) float64 {
	if axis == Horizontal {
		return in.Left
	}
	return in.Top
}

// End returns the trailing inset along axis.
func (in Insets) End(axis Axis) float64 {
	if axis == Horizontal {
		return in.Right
	}
	return in.Bottom
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
