package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/quadsandbox/common"
	"github.com/milk9111/quadsandbox/metrics"
	"github.com/milk9111/quadsandbox/obj"
	"github.com/milk9111/quadsandbox/prefabs"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
)

type Game struct {
	ctx    context.Context
	frames int
	debug  bool

	specName string
	spec     *prefabs.SandboxSpec

	screenW int
	screenH int

	input   *obj.Input
	camera  *obj.Camera
	tree    *obj.Quadtree
	unit    *obj.Unit
	palette obj.Palette
	surface *obj.ScreenSurface
	clock   *obj.FrameClock

	watcher       *prefabs.Watcher
	clipboardOK   bool
	pauseUI       *ebitenui.UI
	paused        bool
	quitRequested bool
}

func NewGame(ctx context.Context, conf config, screenW, screenH int) (*Game, error) {
	spec, err := prefabs.LoadSandboxSpec(conf.Spec)
	if err != nil {
		return nil, errors.New("game: load sandbox spec").WithTag("spec", conf.Spec).Wrap(err)
	}

	g := newGame(ctx, spec, screenW, screenH)
	g.specName = conf.Spec
	g.debug = conf.Debug
	g.palette = loadPalette(spec.Palette)
	g.pauseUI = NewPauseUI(g)

	if conf.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			logs.Warn(errors.New("game: prefab hot reload disabled").Wrap(err))
		} else {
			g.watcher = w
		}
	}

	if err := clipboard.Init(); err != nil {
		logs.Warn(errors.New("game: clipboard unavailable").Wrap(err))
	} else {
		g.clipboardOK = true
	}

	return g, nil
}

// newGame builds the scene without touching optional subsystems.
func newGame(ctx context.Context, spec *prefabs.SandboxSpec, screenW, screenH int) *Game {
	center := cp.Vector{X: float64(screenW) / 2, Y: float64(screenH) / 2}
	g := &Game{
		ctx:      ctx,
		spec:     spec,
		specName: prefabs.DefaultSandboxSpec,
		screenW:  screenW,
		screenH:  screenH,
		input:    obj.NewInput(),
		camera:   obj.NewCameraFromSpec(spec.Camera, screenW, screenH, center),
		unit:     obj.NewUnit(center, spec.Unit.Radius),
		palette:  obj.DefaultPalette{},
		surface:  obj.NewScreenSurface(screenW, screenH, spec.BackgroundColor()),
		clock:    obj.NewFrameClock(spec.Frame.TargetFPS),
	}
	g.buildTree()
	return g
}

func (g *Game) buildTree() {
	root := common.Rect{Width: float64(g.screenW), Height: float64(g.screenH)}
	g.tree = obj.BuildQuadtree(root, g.spec.Quadtree.Depth)
	metrics.SetNodeCount(g.tree.Count())
	logs.WithTag("depth", g.spec.Quadtree.Depth).
		WithTag("nodes", g.tree.Count()).
		Info("quadtree built")
}

func loadPalette(spec prefabs.PaletteSpec) obj.Palette {
	if spec.Script == "" {
		return obj.DefaultPalette{}
	}
	src, err := prefabs.LoadScript(spec.Script)
	if err != nil {
		logs.Warn(errors.New("game: load palette script").WithTag("script", spec.Script).Wrap(err))
		return obj.DefaultPalette{}
	}
	p, err := obj.NewScriptPalette(spec.Script, src)
	if err != nil {
		logs.Warn(err)
		return obj.DefaultPalette{}
	}
	return p
}

// Close releases the watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			logs.Warn(errors.New("game: close prefab watcher").Wrap(err))
		}
	}
}

func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}

	g.frames++
	g.clock.Restart()
	g.pollReload()

	g.input.Update()
	for _, ev := range g.input.Events.Drain() {
		g.handleEvent(ev)
	}
	if g.quitRequested {
		return ebiten.Termination
	}

	if g.paused {
		if g.pauseUI != nil {
			g.pauseUI.Update()
		}
		return nil
	}

	g.camera.UpdateEdgeScrolling(g.screenW, g.screenH, g.input.CursorX, g.input.CursorY)
	metrics.SetZoom(g.camera.Zoom())
	return nil
}

func (g *Game) handleEvent(ev obj.Event) {
	switch ev.Kind {
	case obj.EventClose:
		g.quitRequested = true
	case obj.EventPause:
		g.paused = !g.paused
	case obj.EventWheel:
		if !g.paused {
			g.camera.UpdateZoom(ev.Delta)
		}
	case obj.EventButton:
		if !g.paused {
			g.handleButton(ev)
		}
	case obj.EventCopyCursor:
		g.copyCursor(ev.X, ev.Y)
	}
}

// worldAt maps screen pixels through the camera as it stands now, so events
// earlier in the same tick (a wheel zoom, a reload) are already reflected.
func (g *Game) worldAt(x, y int) cp.Vector {
	g.camera.ApplyTransform(g.surface)
	return g.surface.ScreenToWorld(x, y)
}

// handleButton dispatches a click at the world point under the cursor.
func (g *Game) handleButton(ev obj.Event) {
	p := g.worldAt(ev.X, ev.Y)
	switch ev.Button {
	case ebiten.MouseButtonLeft:
		g.unit.HandleLeftClick(p)
		if g.debug {
			logs.WithTag("x", p.X).WithTag("y", p.Y).WithTag("selected", g.unit.Selected).Debug("left click")
		}
	case ebiten.MouseButtonRight:
		if g.unit.HandleRightClick(p) {
			metrics.UnitMoved()
		}
	}
}

func (g *Game) copyCursor(x, y int) {
	p := g.worldAt(x, y)
	text := fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
	if !g.clipboardOK {
		logs.WithTag("cursor", text).Info("clipboard unavailable")
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	logs.WithTag("cursor", text).Info("copied cursor position")
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	changed, err := g.watcher.Poll()
	if err != nil {
		logs.Warn(errors.New("game: prefab watcher").Wrap(err))
	}
	for _, name := range changed {
		switch {
		case prefabs.IsSpecFile(name) && filepath.Base(name) == filepath.Base(g.specName):
			g.reloadSpec()
		case prefabs.IsScriptFile(name) && filepath.Base(name) == filepath.Base(g.spec.Palette.Script):
			g.palette = loadPalette(g.spec.Palette)
			logs.WithTag("script", name).Info("palette reloaded")
		}
	}
}

func (g *Game) reloadSpec() {
	spec, err := prefabs.LoadSandboxSpec(g.specName)
	if err != nil {
		logs.Warn(errors.New("game: reload sandbox spec, keeping previous").Wrap(err))
		return
	}
	g.applySpec(spec)
	logs.WithTag("spec", g.specName).Info("sandbox spec reloaded")
}

// applySpec retunes the running scene. Camera focus, zoom, the surface view
// and the unit's position and selection survive; the tree is rebuilt only on
// a depth change.
func (g *Game) applySpec(spec *prefabs.SandboxSpec) {
	prev := g.spec
	g.spec = spec

	g.camera.Configure(spec.Camera)
	g.unit.Radius = spec.Unit.Radius
	g.surface.SetBackground(spec.BackgroundColor())

	if prev == nil || prev.Quadtree.Depth != spec.Quadtree.Depth {
		g.buildTree()
	}
	if prev == nil || prev.Frame.TargetFPS != spec.Frame.TargetFPS {
		g.clock = obj.NewFrameClock(spec.Frame.TargetFPS)
		ebiten.SetTPS(spec.Frame.TargetFPS)
	}
	if prev == nil || prev.Palette.Script != spec.Palette.Script {
		g.palette = loadPalette(spec.Palette)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Begin(screen)
	g.surface.Clear()
	g.camera.ApplyTransform(g.surface)

	g.tree.Draw(g.surface, g.palette)
	if g.debug {
		if cell := g.tree.LeafAt(g.surface.ScreenToWorld(g.input.CursorX, g.input.CursorY)); cell != nil {
			g.surface.StrokeRect(cell.Bounds, colornames.Yellow, 2)
		}
	}
	g.unit.Draw(g.surface)

	ebitenutil.DebugPrint(screen, g.hudText())

	if g.paused && g.pauseUI != nil {
		g.pauseUI.Draw(screen)
	}

	elapsed := g.clock.Elapsed()
	metrics.ObserveFrame(elapsed, g.clock.Remaining(elapsed) == 0)
}

func (g *Game) hudText() string {
	cursor := g.surface.ScreenToWorld(g.input.CursorX, g.input.CursorY)
	lines := []string{
		fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()),
		fmt.Sprintf("Zoom: %.2f    Focus: (%.0f, %.0f)", g.camera.Zoom(), g.camera.Focus.X, g.camera.Focus.Y),
		fmt.Sprintf("Cursor: (%.0f, %.0f)    Selected: %v", cursor.X, cursor.Y, g.unit.Selected),
	}
	if g.debug {
		lines = append(lines, fmt.Sprintf("Nodes: %d    Leaves: %d    Overruns: %d", g.tree.Count(), len(g.tree.Leaves()), g.clock.Overruns()))
	}
	return strings.Join(lines, "\n")
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.screenW || outsideHeight != g.screenH {
		g.screenW = outsideWidth
		g.screenH = outsideHeight
		g.camera.SetScreenSize(outsideWidth, outsideHeight)
		g.surface.SetScreenSize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
