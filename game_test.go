package main

import (
	"context"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/quadsandbox/common"
	"github.com/milk9111/quadsandbox/obj"
	"github.com/milk9111/quadsandbox/prefabs"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	spec, err := prefabs.LoadSandboxSpec(prefabs.DefaultSandboxSpec)
	require.NoError(t, err)
	return newGame(context.Background(), spec, 800, 600)
}

func TestNewGameScene(t *testing.T) {
	g := newTestGame(t)

	require.Equal(t, 85, g.tree.Count())
	require.Equal(t, 800.0, g.tree.Bounds.Width)
	require.Equal(t, cp.Vector{X: 400, Y: 300}, g.camera.Focus)
	require.Equal(t, 1.0, g.camera.Zoom())
	require.Equal(t, cp.Vector{X: 400, Y: 300}, g.unit.Position)
	require.Equal(t, 30.0, g.unit.Radius)
	require.False(t, g.unit.Selected)
}

func requireVecNear(t *testing.T, want, got cp.Vector) {
	t.Helper()
	require.True(t, common.VecNearlyEqual(want, got, 1e-6), "want %v, got %v", want, got)
}

func leftClick(x, y int) obj.Event {
	return obj.Event{Kind: obj.EventButton, Button: ebiten.MouseButtonLeft, X: x, Y: y}
}

func rightClick(x, y int) obj.Event {
	return obj.Event{Kind: obj.EventButton, Button: ebiten.MouseButtonRight, X: x, Y: y}
}

func TestHandleEventSelectAndMove(t *testing.T) {
	g := newTestGame(t)

	// zoom 1 with overscan 1.5 shows 1200x900 world units around (400, 300),
	// so screen (x, y) lands on world (1.5x - 200, 1.5y - 150)
	g.handleEvent(leftClick(430, 330))
	require.True(t, g.unit.Selected)

	g.handleEvent(rightClick(100, 50))
	requireVecNear(t, cp.Vector{X: -50, Y: -75}, g.unit.Position)

	g.handleEvent(leftClick(700, 500))
	require.False(t, g.unit.Selected)

	g.handleEvent(rightClick(5, 5))
	requireVecNear(t, cp.Vector{X: -50, Y: -75}, g.unit.Position)
}

func TestHandleEventClicksUseWorldSpace(t *testing.T) {
	g := newTestGame(t)
	g.camera.SetZoom(2)

	// at zoom 2 with overscan 1.5 the view is 600x450 world units around the
	// focus, so the screen center still maps to the focus
	requireVecNear(t, cp.Vector{X: 400, Y: 300}, g.worldAt(400, 300))

	g.unit.Selected = true
	g.handleEvent(rightClick(0, 0))
	require.Equal(t, cp.Vector{X: 100, Y: 75}, g.unit.Position)
}

func TestHandleEventClickAfterWheelInSameTick(t *testing.T) {
	g := newTestGame(t)
	g.unit.Selected = true

	g.input.Events.Push(obj.Event{Kind: obj.EventWheel, Delta: 2})
	g.input.Events.Push(rightClick(0, 0))
	for _, ev := range g.input.Events.Drain() {
		g.handleEvent(ev)
	}

	// zoom 1.1 shows 1090.9x818.2 world units around (400, 300)
	require.InDelta(t, 1.1, g.camera.Zoom(), 1e-12)
	require.InDelta(t, 400-800/1.1*1.5/2, g.unit.Position.X, 1e-9)
	require.InDelta(t, 300-600/1.1*1.5/2, g.unit.Position.Y, 1e-9)
	require.InDelta(t, -145.4545, g.unit.Position.X, 1e-3)
	require.InDelta(t, -109.0909, g.unit.Position.Y, 1e-3)
}

func TestClickAfterReloadUsesCamera(t *testing.T) {
	g := newTestGame(t)
	g.camera.SetZoom(2)
	g.unit.Selected = true
	surface := g.surface

	spec := *g.spec
	spec.Palette.Background = prefabs.YAMLColor{Color: colornames.Navy}
	g.applySpec(&spec)

	require.Same(t, surface, g.surface)
	require.Equal(t, colornames.Navy, g.surface.Background())

	g.handleEvent(rightClick(0, 0))
	require.Equal(t, cp.Vector{X: 100, Y: 75}, g.unit.Position)
}

func TestHandleEventWheelAndPause(t *testing.T) {
	g := newTestGame(t)

	g.handleEvent(obj.Event{Kind: obj.EventWheel, Delta: 2})
	require.InDelta(t, 1.1, g.camera.Zoom(), 1e-12)

	g.handleEvent(obj.Event{Kind: obj.EventPause})
	require.True(t, g.paused)

	g.handleEvent(obj.Event{Kind: obj.EventWheel, Delta: 10})
	g.handleEvent(leftClick(430, 330))
	require.InDelta(t, 1.1, g.camera.Zoom(), 1e-12)
	require.False(t, g.unit.Selected)

	g.handleEvent(obj.Event{Kind: obj.EventPause})
	require.False(t, g.paused)
}

func TestHandleEventClose(t *testing.T) {
	g := newTestGame(t)
	g.handleEvent(obj.Event{Kind: obj.EventClose})
	require.True(t, g.quitRequested)
}

func TestApplySpec(t *testing.T) {
	g := newTestGame(t)
	g.camera.Focus = cp.Vector{X: -50, Y: 75}
	g.camera.SetZoom(3)
	g.unit.Selected = true

	spec := *g.spec
	spec.Quadtree.Depth = 1
	spec.Camera.ScrollSpeed = 11
	spec.Unit.Radius = 12
	g.applySpec(&spec)

	require.Equal(t, 5, g.tree.Count())
	require.Equal(t, 11.0, g.camera.ScrollSpeed)
	require.Equal(t, cp.Vector{X: -50, Y: 75}, g.camera.Focus)
	require.Equal(t, 3.0, g.camera.Zoom())
	require.Equal(t, 12.0, g.unit.Radius)
	require.True(t, g.unit.Selected)
}

func TestLayoutTracksWindow(t *testing.T) {
	g := newTestGame(t)

	w, h := g.Layout(1024, 768)
	require.Equal(t, 1024, w)
	require.Equal(t, 768, h)
	require.Equal(t, cp.Vector{X: 1024 * 1.5, Y: 768 * 1.5}, g.camera.ViewSize())

	// the tree keeps the bounds it was built with
	require.Equal(t, 800.0, g.tree.Bounds.Width)
}
