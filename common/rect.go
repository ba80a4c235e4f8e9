package common

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned rectangle in world units with its origin at the top-left.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p cp.Vector) bool {
	return r.BB().ContainsVect(p)
}

// BB converts r to a chipmunk bounding box. Y grows downward in screen space,
// so the box's "bottom" is the rect's top edge.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
}

// Min returns the top-left corner.
func (r Rect) Min() cp.Vector {
	return cp.Vector{X: r.X, Y: r.Y}
}

// Center returns the midpoint of r.
func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Area returns Width*Height.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}
