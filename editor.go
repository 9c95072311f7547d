package nodeboard

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Camera animation tuning for FitAll and FocusSelected.
const (
	focusDuration = 0.35 // seconds
	fitPadding    = 48.0 // screen pixels around the fitted nodes
)

// Pointer ids used for live input. Injected events share the mouse id.
const (
	mousePointerID = 0
	touchPointerID = 1
)

// pointerState is what the editor remembers about one polled pointer between
// frames so presses and releases can be told apart from holds.
type pointerState struct {
	down   bool
	button MouseButton
	last   Vec2
}

// Editor is the canvas as an ebiten.Game. It polls mouse, wheel, and a single
// touch each frame, feeds them through a Router, and draws the grid, nodes,
// and HUD. The node collection and the selection stay owned by the caller.
type Editor struct {
	camera *Camera
	router *Router
	nodes  NodeStore
	sel    Selection
	opts   Options

	viewport Vec2
	snaps    []*NodeTween

	// Synthetic input and automation.
	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	screenshotQueue []string
	// ScreenshotDir is where Screenshot writes PNGs. Defaults to "screenshots".
	ScreenshotDir string

	debug     bool
	liveInput bool
	mouse     pointerState
	touch     pointerState
	touchID   ebiten.TouchID
	touchBuf  []ebiten.TouchID
	lastStats debugStats
}

// NewEditor creates an editor over nodes and sel. The camera starts at
// opts.InitialCamera and opts.InitialScale.
func NewEditor(nodes NodeStore, sel Selection, opts Options) *Editor {
	opts = opts.withDefaults()
	cam := NewCamera(opts.InitialCamera.X, opts.InitialCamera.Y, opts.InitialScale, opts.MinScale, opts.MaxScale)
	cam.ZoomRate = opts.ZoomRate

	e := &Editor{
		camera:        cam,
		nodes:         nodes,
		sel:           sel,
		opts:          opts,
		ScreenshotDir: "screenshots",
		debug:         opts.Debug,
		liveInput:     true,
	}
	e.router = NewRouter(cam, nodes, sel)
	e.router.OnDragStart(func(ctx DragContext) {
		e.stopSnap(ctx.NodeID)
	})
	e.router.OnDragEnd(func(ctx DragContext) {
		if e.opts.SnapToGrid && !ctx.Cancelled {
			e.snapNode(ctx.NodeID)
		}
	})
	return e
}

// Router returns the interaction router, for registering callbacks or
// setting an entity store.
func (e *Editor) Router() *Router {
	return e.router
}

// Camera returns the editor camera.
func (e *Editor) Camera() *Camera {
	return e.camera
}

// Options returns the resolved options.
func (e *Editor) Options() Options {
	return e.opts
}

// Viewport returns the canvas size in pixels as of the last Layout call.
func (e *Editor) Viewport() Vec2 {
	return e.viewport
}

// SetViewport sets the canvas size directly. Layout calls it every frame.
func (e *Editor) SetViewport(w, h float64) {
	e.viewport = Vec2{w, h}
}

// SetDebugMode enables or disables per-frame timing output on stderr.
func (e *Editor) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// Update implements ebiten.Game.
func (e *Editor) Update() error {
	e.update(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

func (e *Editor) update(dt float32) {
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	e.camera.Update(dt)
	e.updateSnaps(dt)

	// The app may delete the dragged node between frames.
	if id, ok := e.router.DraggedNode(); ok {
		if _, ok := e.nodes.Node(id); !ok {
			e.router.Cancel()
		}
	}

	if e.testRunner != nil {
		e.testRunner.step(e)
	}
	e.processInput()

	if e.debug {
		e.lastStats.updateTime = time.Since(t0)
	}
}

// Frame derives the picture for the current state.
func (e *Editor) Frame() Frame {
	f := BuildFrame(*e.camera, e.viewport, e.nodes.Nodes(), e.sel.Selected(), e.opts)
	if e.opts.ShowFPS && f.HUD != "" {
		f.HUD += fpsSuffix()
	}
	return f
}

// Draw implements ebiten.Game.
func (e *Editor) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	f := e.Frame()
	if e.debug {
		e.lastStats.buildTime = time.Since(t0)
		e.lastStats.gridLines = len(f.Grid)
		e.lastStats.nodeCount = len(f.Nodes)
		t0 = time.Now()
	}

	f.Paint(NewEbitenSurface(screen))

	if e.debug {
		e.lastStats.paintTime = time.Since(t0)
		e.lastStats.mode = e.router.Mode()
		e.debugLog(e.lastStats)
	}

	e.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The canvas always fills the window.
func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.SetViewport(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// FitAll animates the camera to show every node.
func (e *Editor) FitAll() bool {
	r, ok := NodesBounds(e.nodes.Nodes())
	if !ok {
		return false
	}
	e.camera.FitRect(r, e.viewport, fitPadding, focusDuration, ease.OutCubic)
	return true
}

// FocusSelected animates the camera to center the selected node.
func (e *Editor) FocusSelected() bool {
	n, ok := e.nodes.Node(e.sel.Selected())
	if !ok {
		return false
	}
	e.camera.FocusOn(Vec2{n.X, n.Y}, e.viewport, focusDuration, ease.OutCubic)
	return true
}

// CancelInteraction ends any pan or drag in progress.
func (e *Editor) CancelInteraction() {
	e.router.Cancel()
}

// --- Grid snapping ---

func (e *Editor) snapNode(id string) {
	n, ok := e.nodes.Node(id)
	if !ok {
		return
	}
	to := SnapToGrid(Vec2{n.X, n.Y}, e.opts.GridSize)
	if to == (Vec2{n.X, n.Y}) {
		return
	}
	if e.opts.SnapDuration < 0 {
		e.nodes.MoveNode(id, to.X, to.Y)
		return
	}
	e.stopSnap(id)
	e.snaps = append(e.snaps, TweenNodePosition(e.nodes, id, to.X, to.Y, e.opts.SnapDuration, ease.OutQuad))
}

func (e *Editor) stopSnap(id string) {
	kept := e.snaps[:0]
	for _, t := range e.snaps {
		if t.NodeID() != id {
			kept = append(kept, t)
		}
	}
	e.snaps = kept
}

func (e *Editor) updateSnaps(dt float32) {
	kept := e.snaps[:0]
	for _, t := range e.snaps {
		t.Update(dt)
		if !t.Done {
			kept = append(kept, t)
		}
	}
	e.snaps = kept
}

// --- Live input ---

func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// processInput is called from Update. An injected event replaces live input
// for the frame it is consumed in.
func (e *Editor) processInput() {
	if e.processInjectedInput() {
		return
	}
	if !e.liveInput {
		return
	}
	if !ebiten.IsFocused() {
		// The release will never arrive; drop the session.
		e.router.Cancel()
		e.mouse = pointerState{}
		e.touch = pointerState{}
		return
	}
	mods := readModifiers()
	e.processMousePointer(mods)
	e.processWheel(mods)
	e.processTouchPointer(mods)
}

func (e *Editor) processMousePointer(mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()
	pos := Vec2{float64(mx), float64(my)}

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}
	e.trackPointer(&e.mouse, mousePointerID, pos, pressed, button, mods)
}

func (e *Editor) processWheel(mods KeyModifiers) {
	_, wy := ebiten.Wheel()
	if wy == 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	e.router.Wheel(WheelEvent{
		X: float64(mx), Y: float64(my),
		DeltaY:    -wy * e.opts.WheelStep,
		Modifiers: mods,
	})
}

// processTouchPointer follows the first active touch only.
func (e *Editor) processTouchPointer(mods KeyModifiers) {
	e.touchBuf = ebiten.AppendTouchIDs(e.touchBuf[:0])
	if e.touch.down {
		for _, id := range e.touchBuf {
			if id == e.touchID {
				tx, ty := ebiten.TouchPosition(id)
				e.trackPointer(&e.touch, touchPointerID, Vec2{float64(tx), float64(ty)}, true, MouseButtonLeft, mods)
				return
			}
		}
		e.trackPointer(&e.touch, touchPointerID, e.touch.last, false, MouseButtonLeft, mods)
		return
	}
	if len(e.touchBuf) == 0 {
		return
	}
	e.touchID = e.touchBuf[0]
	tx, ty := ebiten.TouchPosition(e.touchID)
	e.trackPointer(&e.touch, touchPointerID, Vec2{float64(tx), float64(ty)}, true, MouseButtonLeft, mods)
}

// trackPointer turns a polled pressed/position sample into press, move, and
// release events. The button latched at press is kept until release.
func (e *Editor) trackPointer(ps *pointerState, id int, pos Vec2, pressed bool, button MouseButton, mods KeyModifiers) {
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.last = pos
		e.router.PointerDown(PointerEvent{PointerID: id, X: pos.X, Y: pos.Y, Button: button, Modifiers: mods})
	case pressed && ps.down:
		if pos == ps.last {
			return
		}
		ps.last = pos
		e.router.PointerMove(PointerEvent{PointerID: id, X: pos.X, Y: pos.Y, Button: ps.button, Modifiers: mods})
	case !pressed && ps.down:
		ps.down = false
		ps.last = pos
		e.router.PointerUp(PointerEvent{PointerID: id, X: pos.X, Y: pos.Y, Button: ps.button, Modifiers: mods})
	}
}

// --- Running ---

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	ShowFPS   bool
}

// Run opens a window and runs the editor until it is closed.
func Run(e *Editor, cfg RunConfig) error {
	if cfg.ShowFPS {
		e.opts.ShowFPS = true
	}
	return RunGame(e, cfg)
}

// RunGame runs any ebiten.Game wrapping an editor, e.g. an app adding key
// bindings, with the same window setup as Run.
func RunGame(game ebiten.Game, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}
