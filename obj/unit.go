package obj

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

var (
	unitSelectedColor color.Color = colornames.Lime
	unitIdleColor     color.Color = colornames.Blue
)

// Unit is a circle the viewer can select with a left click and move with a
// right click while selected.
//
// Position is the top-left of the circle's bounding box, so the circle's
// center sits at Position + (Radius, Radius) for both drawing and hit tests.
type Unit struct {
	Position cp.Vector
	Radius   float64
	Selected bool
}

func NewUnit(pos cp.Vector, radius float64) *Unit {
	return &Unit{Position: pos, Radius: radius}
}

// Center returns the circle center used by Contains and Draw.
func (u *Unit) Center() cp.Vector {
	return u.Position.Add(cp.Vector{X: u.Radius, Y: u.Radius})
}

func (u *Unit) Contains(p cp.Vector) bool {
	return p.DistanceSq(u.Center()) <= u.Radius*u.Radius
}

// HandleLeftClick toggles selection on a hit and clears it on a miss.
func (u *Unit) HandleLeftClick(p cp.Vector) {
	if u.Contains(p) {
		u.Selected = !u.Selected
		return
	}
	u.Selected = false
}

// HandleRightClick moves a selected unit to p and reports whether it moved.
func (u *Unit) HandleRightClick(p cp.Vector) bool {
	if !u.Selected {
		return false
	}
	u.MoveTo(p)
	return true
}

func (u *Unit) MoveTo(p cp.Vector) {
	u.Position = p
}

func (u *Unit) Color() color.Color {
	if u.Selected {
		return unitSelectedColor
	}
	return unitIdleColor
}

func (u *Unit) Draw(s Surface) {
	s.FillCircle(u.Center(), u.Radius, u.Color())
}
