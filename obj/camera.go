package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/quadsandbox/common"
	"github.com/milk9111/quadsandbox/prefabs"
)

const (
	defaultScrollSpeed   = 5.0
	defaultEdgeThreshold = 70
	defaultZoomStep      = 0.05
	defaultMinZoom       = 0.1
	defaultOverscan      = 1.5
)

// Camera looks at a world-space focus point with a zoom factor and scrolls
// when the cursor nears a viewport edge.
type Camera struct {
	Focus cp.Vector

	// ScrollSpeed is the focus shift in world units per frame of edge scrolling.
	ScrollSpeed float64
	// EdgeThreshold is the distance in pixels from a viewport edge that
	// triggers scrolling.
	EdgeThreshold int
	ZoomStep      float64
	MinZoom       float64
	// Overscan widens the visible world beyond one world unit per pixel.
	Overscan float64

	zoom    float64
	screenW int
	screenH int
}

// NewCamera creates a camera with the default tuning, focused on focus.
func NewCamera(screenW, screenH int, focus cp.Vector, zoom float64) *Camera {
	c := &Camera{
		Focus:         focus,
		ScrollSpeed:   defaultScrollSpeed,
		EdgeThreshold: defaultEdgeThreshold,
		ZoomStep:      defaultZoomStep,
		MinZoom:       defaultMinZoom,
		Overscan:      defaultOverscan,
		screenW:       screenW,
		screenH:       screenH,
	}
	c.SetZoom(zoom)
	return c
}

// NewCameraFromSpec creates a camera tuned by spec.
func NewCameraFromSpec(spec prefabs.CameraSpec, screenW, screenH int, focus cp.Vector) *Camera {
	c := NewCamera(screenW, screenH, focus, spec.Zoom)
	c.Configure(spec)
	c.SetZoom(spec.Zoom)
	return c
}

// Configure applies the tuning fields of spec. Focus and zoom are kept; zoom
// is raised to the new floor if needed. Zero fields keep their current value.
func (c *Camera) Configure(spec prefabs.CameraSpec) {
	if spec.ScrollSpeed > 0 {
		c.ScrollSpeed = spec.ScrollSpeed
	}
	if spec.EdgeThreshold > 0 {
		c.EdgeThreshold = spec.EdgeThreshold
	}
	if spec.ZoomStep > 0 {
		c.ZoomStep = spec.ZoomStep
	}
	if spec.MinZoom > 0 {
		c.MinZoom = spec.MinZoom
	}
	if spec.Overscan > 0 {
		c.Overscan = spec.Overscan
	}
	c.SetZoom(c.zoom)
}

// SetZoom sets the zoom, never below MinZoom.
func (c *Camera) SetZoom(z float64) {
	c.zoom = math.Max(c.MinZoom, z)
}

// Zoom returns the current camera zoom.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// SetScreenSize updates the viewport size in pixels.
func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW = w
	c.screenH = h
}

// UpdateEdgeScrolling moves the focus by ScrollSpeed along each axis whose
// cursor coordinate lies within EdgeThreshold pixels of a viewport edge. The
// low edge wins when both are in range on a tiny viewport.
func (c *Camera) UpdateEdgeScrolling(viewportW, viewportH, cursorX, cursorY int) {
	c.Focus.X += c.edgeStep(viewportW, cursorX)
	c.Focus.Y += c.edgeStep(viewportH, cursorY)
}

func (c *Camera) edgeStep(size, pos int) float64 {
	if pos < c.EdgeThreshold {
		return -c.ScrollSpeed
	}
	if pos > size-c.EdgeThreshold {
		return c.ScrollSpeed
	}
	return 0
}

// UpdateZoom applies one wheel event; each notch changes zoom by ZoomStep.
func (c *Camera) UpdateZoom(wheelDelta float64) {
	c.SetZoom(c.zoom + wheelDelta*c.ZoomStep)
}

// WorldToView maps a world point into focus-relative, zoomed view space.
func (c *Camera) WorldToView(p cp.Vector) cp.Vector {
	return p.Sub(c.Focus).Mult(c.zoom)
}

// ViewToWorld is the inverse of WorldToView.
func (c *Camera) ViewToWorld(v cp.Vector) cp.Vector {
	return common.Div(v, c.zoom).Add(c.Focus)
}

// ViewSize returns the world extent shown on screen.
func (c *Camera) ViewSize() cp.Vector {
	return cp.Vector{
		X: float64(c.screenW) / c.zoom * c.Overscan,
		Y: float64(c.screenH) / c.zoom * c.Overscan,
	}
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() cp.Vector {
	return c.Focus.Sub(c.ViewSize().Mult(0.5))
}

// ApplyTransform centers s on the focus and sizes its view from the viewport,
// zoom and overscan.
func (c *Camera) ApplyTransform(s Surface) {
	s.SetView(c.Focus, c.ViewSize())
}
