// Package entity defines domain entities for spatial navigation.
package entity

// Point is a position in screen pixels.
type Point struct {
	X, Y float64
}

// Size is the extent of an element in screen pixels.
type Size struct {
	Width, Height float64
}

// Rect represents an element's screen position and size.
// Used for geometric navigation to find adjacent elements by position.
type Rect struct {
	X, Y float64 // Top-left position relative to the screen
	W, H float64 // Width and height
}

// RectFromCenter builds the bounding rectangle around a center point.
func RectFromCenter(center Point, size Size) Rect {
	return Rect{
		X: center.X - size.Width/2,
		Y: center.Y - size.Height/2,
		W: size.Width,
		H: size.Height,
	}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Size returns the width and height of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.W, Height: r.H}
}

// HorizontalGap returns the empty horizontal space between r and other.
// It is 0 when their horizontal spans intersect or touch.
func (r Rect) HorizontalGap(other Rect) float64 {
	return max(0, other.X-(r.X+r.W), r.X-(other.X+other.W))
}

// VerticalGap returns the empty vertical space between r and other.
// It is 0 when their vertical spans intersect or touch.
func (r Rect) VerticalGap(other Rect) float64 {
	return max(0, other.Y-(r.Y+r.H), r.Y-(other.Y+other.H))
}
