// Package clip tracks the rectangle drawing is confined to and clips line
// segments against it.
package clip

import "image"

// Rect is an integer rectangle. X2 and Y2 are exclusive.
type Rect struct {
	X, Y   int
	X2, Y2 int
}

// NewRect creates a Rect from position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, X2: x + w, Y2: y + h}
}

// FromImage converts an image.Rectangle.
func FromImage(r image.Rectangle) Rect {
	return Rect{X: r.Min.X, Y: r.Min.Y, X2: r.Max.X, Y2: r.Max.Y}
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X2, r.Y2)
}

// W returns the width.
func (r Rect) W() int { return r.X2 - r.X }

// H returns the height.
func (r Rect) H() int { return r.Y2 - r.Y }

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.X2 <= r.X || r.Y2 <= r.Y
}

// Overlaps reports whether the box at (x, y) of size w×h shares at least
// one pixel with r. Boxes without area never overlap.
func (r Rect) Overlaps(x, y, w, h int) bool {
	return w > 0 && h > 0 && !r.Empty() &&
		x < r.X2 && x+w > r.X && y < r.Y2 && y+h > r.Y
}

// Contains reports whether the box at (x, y) of size w×h lies entirely
// inside r.
func (r Rect) Contains(x, y, w, h int) bool {
	return x >= r.X && y >= r.Y && x+w <= r.X2 && y+h <= r.Y2
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.X2 <= r.X2 && o.Y2 <= r.Y2
}

// Intersect returns the intersection of two rectangles, or the zero Rect
// if they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.X2, other.X2)
	y1 := min(r.Y2, other.Y2)

	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, X2: x1, Y2: y1}
}
