package obj

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/quadsandbox/common"
)

// Quadrant indexes the children of a subdivided node.
type Quadrant int

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

// quadrantOffsets holds the half-size multipliers for each quadrant's origin,
// in child order.
var quadrantOffsets = [4]cp.Vector{
	TopLeft:     {X: 0, Y: 0},
	TopRight:    {X: 1, Y: 0},
	BottomLeft:  {X: 0, Y: 1},
	BottomRight: {X: 1, Y: 1},
}

func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	}
	return fmt.Sprintf("Quadrant(%d)", int(q))
}

// Quadtree is a node of a uniformly subdivided rectangle. Children are owned
// by value and are either absent (leaf) or exactly four, in Quadrant order.
type Quadtree struct {
	Bounds   common.Rect
	Depth    int
	Children []Quadtree
}

func NewQuadtree(bounds common.Rect, depth int) *Quadtree {
	return &Quadtree{Bounds: bounds, Depth: depth}
}

// BuildQuadtree creates and fully subdivides a tree.
func BuildQuadtree(bounds common.Rect, depth int) *Quadtree {
	qt := NewQuadtree(bounds, depth)
	qt.Subdivide()
	return qt
}

func (qt *Quadtree) IsLeaf() bool {
	return len(qt.Children) == 0
}

// ChildRect returns the bounds of quadrant q. Indexing outside the four
// quadrants panics.
func (qt *Quadtree) ChildRect(q Quadrant) common.Rect {
	off := quadrantOffsets[q]
	halfW := qt.Bounds.Width / 2
	halfH := qt.Bounds.Height / 2
	return common.Rect{
		X:      qt.Bounds.X + off.X*halfW,
		Y:      qt.Bounds.Y + off.Y*halfH,
		Width:  halfW,
		Height: halfH,
	}
}

// Subdivide eagerly splits the node until depth 0 is reached. It does nothing
// on a node that already has children or has no depth left.
func (qt *Quadtree) Subdivide() {
	if !qt.IsLeaf() || qt.Depth <= 0 {
		return
	}

	qt.Children = make([]Quadtree, len(quadrantOffsets))
	for i := range qt.Children {
		child := &qt.Children[i]
		child.Bounds = qt.ChildRect(Quadrant(i))
		child.Depth = qt.Depth - 1
		child.Subdivide()
	}
}

// Draw strokes every node's outline, deeper nodes first so parents are
// stroked over their subtrees.
func (qt *Quadtree) Draw(s Surface, p Palette) {
	for i := range qt.Children {
		qt.Children[i].Draw(s, p)
	}
	s.StrokeRect(qt.Bounds, p.Color(qt.Depth), 1)
}

// Walk visits every node in pre-order.
func (qt *Quadtree) Walk(fn func(n *Quadtree)) {
	fn(qt)
	for i := range qt.Children {
		qt.Children[i].Walk(fn)
	}
}

// Count returns the number of nodes including qt.
func (qt *Quadtree) Count() int {
	n := 0
	qt.Walk(func(*Quadtree) { n++ })
	return n
}

func (qt *Quadtree) Leaves() []*Quadtree {
	var leaves []*Quadtree
	qt.Walk(func(n *Quadtree) {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
	})
	return leaves
}

// Levels returns the node count keyed by depth.
func (qt *Quadtree) Levels() map[int]int {
	levels := make(map[int]int)
	qt.Walk(func(n *Quadtree) { levels[n.Depth]++ })
	return levels
}

// LeafAt returns the deepest node whose bounds contain p, or nil when p is
// outside the tree. Points on a shared edge resolve to the first quadrant in
// child order.
func (qt *Quadtree) LeafAt(p cp.Vector) *Quadtree {
	if !qt.Bounds.Contains(p) {
		return nil
	}
	for i := range qt.Children {
		if n := qt.Children[i].LeafAt(p); n != nil {
			return n
		}
	}
	return qt
}
