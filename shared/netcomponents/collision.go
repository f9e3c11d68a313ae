package netcomponents

import "github.com/automoto/coinarena/shared/gamemath"

// Boxed is anything with an axis-aligned bounding box.
type Boxed interface {
	Bounds() gamemath.Rect
}

// Intersects is the half-open AABB overlap test shared by client and server.
func Intersects(a, b Boxed) bool {
	return a.Bounds().Intersects(b.Bounds())
}
