package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/quadsandbox/common"
)

// Surface is the drawing target the sandbox objects render into. All
// coordinates passed to it are world-space; the active view decides where they
// land on screen.
type Surface interface {
	Clear()
	SetView(center, size cp.Vector)
	StrokeRect(r common.Rect, clr color.Color, thickness float64)
	FillCircle(center cp.Vector, radius float64, clr color.Color)
}

// ScreenSurface draws onto an ebiten screen image through a world-space view
// that is stretched to fill the whole screen.
type ScreenSurface struct {
	screen *ebiten.Image
	bg     color.Color

	screenW int
	screenH int

	center cp.Vector
	size   cp.Vector
}

func NewScreenSurface(screenW, screenH int, bg color.Color) *ScreenSurface {
	s := &ScreenSurface{bg: bg}
	s.SetScreenSize(screenW, screenH)
	s.resetView()
	return s
}

// SetBackground changes the clear color without touching the view.
func (s *ScreenSurface) SetBackground(bg color.Color) {
	s.bg = bg
}

// Background returns the clear color.
func (s *ScreenSurface) Background() color.Color {
	return s.bg
}

// Begin binds the image that subsequent draw calls target.
func (s *ScreenSurface) Begin(screen *ebiten.Image) {
	s.screen = screen
	if screen == nil {
		return
	}
	b := screen.Bounds()
	s.SetScreenSize(b.Dx(), b.Dy())
}

// SetScreenSize updates the pixel size the view is mapped onto.
func (s *ScreenSurface) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	s.screenW = w
	s.screenH = h
}

func (s *ScreenSurface) resetView() {
	s.size = cp.Vector{X: float64(s.screenW), Y: float64(s.screenH)}
	s.center = s.size.Mult(0.5)
}

func (s *ScreenSurface) Clear() {
	if s.screen == nil {
		return
	}
	if s.bg == nil {
		s.screen.Clear()
		return
	}
	s.screen.Fill(s.bg)
}

// SetView centers the view on center and makes size world units visible.
// A degenerate size falls back to one world unit per pixel.
func (s *ScreenSurface) SetView(center, size cp.Vector) {
	if size.X <= 0 || size.Y <= 0 {
		s.resetView()
		s.center = center
		return
	}
	s.center = center
	s.size = size
}

// View returns the current view center and size.
func (s *ScreenSurface) View() (center, size cp.Vector) {
	return s.center, s.size
}

// Visible returns the world-space rectangle covered by the view.
func (s *ScreenSurface) Visible() common.Rect {
	tl := s.topLeft()
	return common.Rect{X: tl.X, Y: tl.Y, Width: s.size.X, Height: s.size.Y}
}

// InView reports whether any part of r, edges included, falls inside the
// view. Zero-width or zero-height rects still count when they touch it.
func (s *ScreenSurface) InView(r common.Rect) bool {
	return r.BB().Intersects(s.Visible().BB())
}

func (s *ScreenSurface) topLeft() cp.Vector {
	return s.center.Sub(s.size.Mult(0.5))
}

func (s *ScreenSurface) scale() (float64, float64) {
	return float64(s.screenW) / s.size.X, float64(s.screenH) / s.size.Y
}

// WorldToScreen maps a world point to screen pixels.
func (s *ScreenSurface) WorldToScreen(p cp.Vector) (float64, float64) {
	sx, sy := s.scale()
	tl := s.topLeft()
	return (p.X - tl.X) * sx, (p.Y - tl.Y) * sy
}

// ScreenToWorld maps screen pixels to the world point under them.
func (s *ScreenSurface) ScreenToWorld(x, y int) cp.Vector {
	sx, sy := s.scale()
	tl := s.topLeft()
	return cp.Vector{X: float64(x)/sx + tl.X, Y: float64(y)/sy + tl.Y}
}

func (s *ScreenSurface) StrokeRect(r common.Rect, clr color.Color, thickness float64) {
	if s.screen == nil || !s.InView(r) {
		return
	}
	sx, sy := s.scale()
	x, y := s.WorldToScreen(r.Min())
	vector.StrokeRect(s.screen, float32(x), float32(y), float32(r.Width*sx), float32(r.Height*sy), float32(thickness), clr, false)
}

func (s *ScreenSurface) FillCircle(center cp.Vector, radius float64, clr color.Color) {
	if s.screen == nil {
		return
	}
	sx, _ := s.scale()
	x, y := s.WorldToScreen(center)
	vector.FillCircle(s.screen, float32(x), float32(y), float32(radius*sx), clr, true)
}
