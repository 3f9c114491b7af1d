package common

// Rect is an axis-aligned screen-space box in pixels.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// RectBetween builds the rect spanning two corners given in any order.
func RectBetween(x0, y0, x1, y1 float32) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Overlaps reports whether r and o share area. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width &&
		r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height &&
		r.Y+r.Height > o.Y
}

// Inset moves every edge inward by d, or outward when d is negative. The
// size never drops below zero.
func (r Rect) Inset(d float32) Rect {
	r.X += d
	r.Y += d
	r.Width = max(r.Width-2*d, 0)
	r.Height = max(r.Height-2*d, 0)
	return r
}
