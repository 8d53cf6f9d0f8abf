package main

import "image"

// Rectangle is an area on the screen. Min is included, Max is excluded, the
// same as image.Rectangle, so that adjacent widgets never both claim the same
// pixel.
type Rectangle struct {
	Min Pt
	Max Pt
}

// NewRectangleI builds a rectangle from its top-left corner and its size.
func NewRectangleI(x, y, width, height int64) Rectangle {
	return Rectangle{Pt{x, y}, Pt{x + width, y + height}}
}

func Abs(x int64) int64 {
	if x < 0 {
		return -x
	} else {
		return x
	}
}

func (r Rectangle) Width() int64 {
	return Abs(r.Max.X - r.Min.X)
}

func (r Rectangle) Height() int64 {
	return Abs(r.Max.Y - r.Min.Y)
}

func (r Rectangle) Center() Pt {
	return Pt{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

func (r Rectangle) ContainsPt(pt Pt) bool {
	return pt.X >= r.Min.X && pt.X < r.Max.X && pt.Y >= r.Min.Y && pt.Y < r.Max.Y
}

func (r Rectangle) Translate(offset Pt) Rectangle {
	return Rectangle{r.Min.Plus(offset), r.Max.Plus(offset)}
}

func (r Rectangle) ToImageRectangle() image.Rectangle {
	return image.Rect(int(r.Min.X), int(r.Min.Y), int(r.Max.X), int(r.Max.Y))
}

// Clamp limits x to the interval [lo, hi]. If the interval is inverted, lo
// wins, which keeps the lower bound of a min/max pair authoritative.
func Clamp(x, lo, hi float64) float64 {
	if x > hi {
		x = hi
	}
	if x < lo {
		x = lo
	}
	return x
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
