package gamemath

// Rect is an axis-aligned box covering [X, X+W) × [Y, Y+H).
type Rect struct {
	X, Y float64
	W, H float64
}

// Intersects reports whether r and o share any interior area.
// Boxes that only touch along an edge or corner do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W &&
		o.X < r.X+r.W &&
		r.Y < o.Y+o.H &&
		o.Y < r.Y+r.H
}
