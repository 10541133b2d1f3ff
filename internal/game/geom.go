package game

import "math"

// Vec2 represents a 2D position in water pixels
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add adds two vectors
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Distance returns the distance between two points
func Distance(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect represents an axis-aligned bounding box
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// CenteredRect builds a rectangle of the given size around a center point
func CenteredRect(center Vec2, width, height float64) Rect {
	return Rect{
		X:      center.X - width/2,
		Y:      center.Y - height/2,
		Width:  width,
		Height: height,
	}
}

// Contains checks if a point is inside the rectangle
func (r Rect) Contains(point Vec2) bool {
	return point.X >= r.X && point.X <= r.X+r.Width &&
		point.Y >= r.Y && point.Y <= r.Y+r.Height
}

// Overlaps checks if two rectangles overlap. Touching edges count.
func (r Rect) Overlaps(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Grow returns the rectangle expanded by dx on both horizontal sides and dy on both vertical sides
func (r Rect) Grow(dx, dy float64) Rect {
	return Rect{
		X:      r.X - dx,
		Y:      r.Y - dy,
		Width:  r.Width + 2*dx,
		Height: r.Height + 2*dy,
	}
}

// Bounds is the water interior supplied by the layout collaborator
type Bounds struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Rect converts the bounds into a rectangle
func (b Bounds) Rect() Rect {
	return Rect{X: b.Left, Y: b.Top, Width: b.Right - b.Left, Height: b.Bottom - b.Top}
}

// Clamp restricts a value between min and max
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
