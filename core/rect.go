package core

import "math"

// Rect is an axis-aligned rectangle spanning [Min, Max) on both axes
type Rect struct {
	Min, Max Vec2
}

// FullPlane covers every finite point
var FullPlane = Rect{
	Min: Vec2{X: math.Inf(-1), Y: math.Inf(-1)},
	Max: Vec2{X: math.Inf(1), Y: math.Inf(1)},
}

// NewRect builds a rectangle from corner coordinates
func NewRect(minX, minY, maxX, maxY float64) Rect {
	return Rect{Min: Vec2{X: minX, Y: minY}, Max: Vec2{X: maxX, Y: maxY}}
}

// BoundingBox returns the rectangle centered at center with half extents size/2
func BoundingBox(center, size Vec2) Rect {
	extents := size.Scale(0.5)
	return Rect{Min: center.Sub(extents), Max: center.Add(extents)}
}

// Intersect clamps to the overlap of r and o
// Result may be empty or inverted; callers check Empty
func (r Rect) Intersect(o Rect) Rect {
	return Rect{Min: r.Min.Max(o.Min), Max: r.Max.Min(o.Max)}
}

// Empty reports whether no point can be contained, including inverted rects
// NaN bounds count as empty
func (r Rect) Empty() bool {
	return !(r.Min.X < r.Max.X) || !(r.Min.Y < r.Max.Y)
}

// Contains tests half-open membership: min <= p < max on both axes
func (r Rect) Contains(p Vec2) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// Size returns width and height, zero on inverted axes
func (r Rect) Size() Vec2 {
	return Vec2{X: max(r.Max.X-r.Min.X, 0), Y: max(r.Max.Y-r.Min.Y, 0)}
}

// VisibleRect is the element's bounding box clipped by clip; nil clip means FullPlane
func VisibleRect(position Vec3, size Vec2, clip *Rect) Rect {
	visible := BoundingBox(position.Truncate(), size)
	if clip != nil {
		visible = visible.Intersect(*clip)
	}
	return visible
}
