package nodeboard

// Mode is the router's current interaction mode. At most one session is
// active at a time.
type Mode uint8

const (
	ModeIdle         Mode = iota // no pointer session
	ModePanning                  // background drag moving the camera
	ModeDraggingNode             // pointer held on a node, moving it
)

// String returns a short name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModePanning:
		return "panning"
	case ModeDraggingNode:
		return "dragging"
	default:
		return "unknown"
	}
}

// PointerEvent is a press, move, or release in screen pixels relative to the
// canvas origin.
type PointerEvent struct {
	PointerID int
	X, Y      float64
	Button    MouseButton
	Modifiers KeyModifiers
}

// Screen returns the event position as a Vec2.
func (e PointerEvent) Screen() Vec2 { return Vec2{e.X, e.Y} }

// WheelEvent is a wheel step at a screen position. DeltaY follows the DOM
// convention: positive scrolls down and zooms out, measured in pixels.
type WheelEvent struct {
	X, Y      float64
	DeltaY    float64
	Modifiers KeyModifiers
}

// DefaultPanTrigger starts a background pan on middle button, right button,
// or Ctrl with the left button.
func DefaultPanTrigger(ev PointerEvent) bool {
	switch ev.Button {
	case MouseButtonMiddle, MouseButtonRight:
		return true
	case MouseButtonLeft:
		return ev.Modifiers.Has(ModCtrl)
	}
	return false
}

// --- Callback contexts ---

// SelectionContext carries a selection change.
type SelectionContext struct {
	Previous string
	Current  string
}

// DragContext carries node drag data. World is the pointer in world space,
// Position the node center written for this event.
type DragContext struct {
	NodeID    string
	PointerID int
	Button    MouseButton
	Screen    Vec2
	World     Vec2
	Position  Vec2
	Offset    Vec2
	Cancelled bool
}

// CameraContext carries a camera change caused by a pan or zoom.
type CameraContext struct {
	Event     EventType
	X, Y      float64
	Scale     float64
	Screen    Vec2
	Delta     Vec2
	Cancelled bool
}

// EntityStore is the interface for optional ECS integration.
// When set on a Router, interaction events are forwarded to it.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type      EventType
	NodeID    string
	PointerID int
	ScreenX   float64
	ScreenY   float64
	WorldX    float64
	WorldY    float64
	DeltaX    float64
	DeltaY    float64
	Button    MouseButton
	Modifiers KeyModifiers
	Scale     float64
	Cancelled bool
}

// --- Handler registry ---

// Removal never mutates a slice that a dispatch loop may be ranging over.

type selectionHandler struct {
	id uint32
	fn func(SelectionContext)
}

type dragHandler struct {
	id uint32
	fn func(DragContext)
}

type cameraHandler struct {
	id uint32
	fn func(CameraContext)
}

type handlerRegistry struct {
	selection []selectionHandler
	dragStart []dragHandler
	drag      []dragHandler
	dragEnd   []dragHandler
	camera    []cameraHandler
	nextID    uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventSelect:
		h.reg.selection = removeSelectionHandler(h.reg.selection, h.id)
	case EventDragStart:
		h.reg.dragStart = removeDragHandler(h.reg.dragStart, h.id)
	case EventDrag:
		h.reg.drag = removeDragHandler(h.reg.drag, h.id)
	case EventDragEnd:
		h.reg.dragEnd = removeDragHandler(h.reg.dragEnd, h.id)
	case EventPan:
		h.reg.camera = removeCameraHandler(h.reg.camera, h.id)
	}
}

func removeSelectionHandler(s []selectionHandler, id uint32) []selectionHandler {
	for i := range s {
		if s[i].id == id {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

func removeDragHandler(s []dragHandler, id uint32) []dragHandler {
	for i := range s {
		if s[i].id == id {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

func removeCameraHandler(s []cameraHandler, id uint32) []cameraHandler {
	for i := range s {
		if s[i].id == id {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

// --- Router ---

// session is the transient state of one pointer interaction.
type session struct {
	mode      Mode
	pointerID int
	button    MouseButton
	last      Vec2   // panning: previous screen point
	nodeID    string // dragging: node being moved
	offset    Vec2   // dragging: pointer world position minus node center at press
}

// Router turns pointer and wheel events into camera moves, node moves, and
// selection changes. It owns only the transient session; nodes and selection
// belong to the caller.
type Router struct {
	// PanTrigger decides whether a press on the background starts a pan.
	PanTrigger func(PointerEvent) bool

	camera *Camera
	nodes  NodeStore
	sel    Selection
	store  EntityStore

	handlers handlerRegistry
	sess     session
	captured int // pointer id holding capture, -1 when free

	// A background press that started nothing arms a click; the matching
	// release deselects.
	armed        bool
	armedPointer int
}

// NewRouter creates a router driving cam and mutating nodes and sel.
func NewRouter(cam *Camera, nodes NodeStore, sel Selection) *Router {
	return &Router{
		PanTrigger: DefaultPanTrigger,
		camera:     cam,
		nodes:      nodes,
		sel:        sel,
		captured:   -1,
	}
}

// Mode returns the current interaction mode.
func (r *Router) Mode() Mode {
	return r.sess.mode
}

// Active reports whether a pan or drag session is in progress.
func (r *Router) Active() bool {
	return r.sess.mode != ModeIdle
}

// DraggedNode returns the id of the node being dragged, if any.
func (r *Router) DraggedNode() (string, bool) {
	if r.sess.mode != ModeDraggingNode {
		return "", false
	}
	return r.sess.nodeID, true
}

// Captured returns the pointer holding capture, if any.
func (r *Router) Captured() (int, bool) {
	return r.captured, r.captured >= 0
}

// Camera returns the camera the router drives.
func (r *Router) Camera() *Camera {
	return r.camera
}

// SetEntityStore sets the optional ECS bridge.
func (r *Router) SetEntityStore(store EntityStore) {
	r.store = store
}

// OnSelectionChange registers a callback for selection changes made by the
// router.
func (r *Router) OnSelectionChange(fn func(SelectionContext)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.selection = append(r.handlers.selection, selectionHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventSelect}
}

// OnDragStart registers a callback for the start of a node drag.
func (r *Router) OnDragStart(fn func(DragContext)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.dragStart = append(r.handlers.dragStart, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventDragStart}
}

// OnDrag registers a callback fired each time the dragged node moves.
func (r *Router) OnDrag(fn func(DragContext)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.drag = append(r.handlers.drag, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventDrag}
}

// OnDragEnd registers a callback for the end of a node drag, released or
// cancelled.
func (r *Router) OnDragEnd(fn func(DragContext)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.dragEnd = append(r.handlers.dragEnd, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventDragEnd}
}

// OnCameraChange registers a callback for pan sessions and zoom steps.
func (r *Router) OnCameraChange(fn func(CameraContext)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.camera = append(r.handlers.camera, cameraHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventPan}
}

func (r *Router) capture(pointerID int) {
	r.captured = pointerID
}

func (r *Router) release() {
	r.captured = -1
}

// PointerDown starts a node drag when the press lands on a node, a pan when
// the press matches PanTrigger, and otherwise arms a background click.
// Presses while a session is active are ignored.
func (r *Router) PointerDown(ev PointerEvent) {
	if r.sess.mode != ModeIdle {
		return
	}
	r.armed = false

	screen := ev.Screen()
	world := ScreenToWorld(*r.camera, screen)

	if n, ok := hitTest(r.nodes.Nodes(), world); ok {
		r.setSelection(n.ID, ev)
		r.sess = session{
			mode:      ModeDraggingNode,
			pointerID: ev.PointerID,
			button:    ev.Button,
			last:      screen,
			nodeID:    n.ID,
			offset:    world.Sub(Vec2{n.X, n.Y}),
		}
		r.capture(ev.PointerID)
		r.fireDrag(EventDragStart, DragContext{
			NodeID: n.ID, PointerID: ev.PointerID, Button: ev.Button,
			Screen: screen, World: world, Position: Vec2{n.X, n.Y}, Offset: r.sess.offset,
		}, ev.Modifiers)
		return
	}

	if r.PanTrigger != nil && r.PanTrigger(ev) {
		r.sess = session{
			mode:      ModePanning,
			pointerID: ev.PointerID,
			button:    ev.Button,
			last:      screen,
		}
		r.capture(ev.PointerID)
		r.fireCamera(EventPanStart, screen, Vec2{}, false, ev)
		return
	}

	r.armed = true
	r.armedPointer = ev.PointerID
}

// PointerMove pans the camera or moves the dragged node. Moves from a
// pointer other than the captured one are ignored.
func (r *Router) PointerMove(ev PointerEvent) {
	switch r.sess.mode {
	case ModePanning:
		if ev.PointerID != r.sess.pointerID {
			return
		}
		screen := ev.Screen()
		delta := screen.Sub(r.sess.last)
		if delta == (Vec2{}) {
			return
		}
		r.camera.PanBy(delta.X, delta.Y)
		r.sess.last = screen
		r.fireCamera(EventPan, screen, delta, false, ev)

	case ModeDraggingNode:
		if ev.PointerID != r.sess.pointerID {
			return
		}
		id := r.sess.nodeID
		if _, ok := r.nodes.Node(id); !ok {
			r.Cancel()
			return
		}
		screen := ev.Screen()
		world := ScreenToWorld(*r.camera, screen)
		pos := world.Sub(r.sess.offset)
		if !r.nodes.MoveNode(id, pos.X, pos.Y) {
			r.Cancel()
			return
		}
		r.sess.last = screen
		r.fireDrag(EventDrag, DragContext{
			NodeID: id, PointerID: ev.PointerID, Button: r.sess.button,
			Screen: screen, World: world, Position: pos, Offset: r.sess.offset,
		}, ev.Modifiers)
	}
}

// PointerUp ends the active session, or completes an armed background click
// by clearing the selection.
func (r *Router) PointerUp(ev PointerEvent) {
	switch r.sess.mode {
	case ModePanning:
		if ev.PointerID != r.sess.pointerID {
			return
		}
		r.end()
		r.fireCamera(EventPanEnd, ev.Screen(), Vec2{}, false, ev)

	case ModeDraggingNode:
		if ev.PointerID != r.sess.pointerID {
			return
		}
		sess := r.sess
		r.end()
		ctx := DragContext{
			NodeID: sess.nodeID, PointerID: ev.PointerID, Button: sess.button,
			Screen: ev.Screen(), World: ScreenToWorld(*r.camera, ev.Screen()), Offset: sess.offset,
		}
		if n, ok := r.nodes.Node(sess.nodeID); ok {
			ctx.Position = Vec2{n.X, n.Y}
		} else {
			ctx.Cancelled = true
		}
		r.fireDrag(EventDragEnd, ctx, ev.Modifiers)

	case ModeIdle:
		if !r.armed || ev.PointerID != r.armedPointer {
			return
		}
		r.armed = false
		r.setSelection("", ev)
	}
}

// Wheel zooms the camera at the event position. It works in every mode and
// never changes the mode. Returns true if the scale changed.
func (r *Router) Wheel(ev WheelEvent) bool {
	anchor := Vec2{ev.X, ev.Y}
	if !r.camera.ZoomAt(anchor, ev.DeltaY) {
		return false
	}
	r.fireCamera(EventZoom, anchor, Vec2{0, ev.DeltaY}, false, PointerEvent{X: ev.X, Y: ev.Y, Modifiers: ev.Modifiers})
	return true
}

// Cancel abandons the active session and releases pointer capture. Use it
// when the terminating release will never arrive, e.g. the window lost
// focus. Safe to call when idle.
func (r *Router) Cancel() {
	r.armed = false
	sess := r.sess
	switch sess.mode {
	case ModePanning:
		r.end()
		r.fireCamera(EventPanEnd, sess.last, Vec2{}, true, PointerEvent{PointerID: sess.pointerID, Button: sess.button})
	case ModeDraggingNode:
		r.end()
		ctx := DragContext{
			NodeID: sess.nodeID, PointerID: sess.pointerID, Button: sess.button,
			Screen: sess.last, Offset: sess.offset, Cancelled: true,
		}
		if n, ok := r.nodes.Node(sess.nodeID); ok {
			ctx.Position = Vec2{n.X, n.Y}
		}
		r.fireDrag(EventDragEnd, ctx, 0)
	}
}

func (r *Router) end() {
	r.release()
	r.sess = session{}
}

// --- Event dispatch ---

func (r *Router) setSelection(id string, ev PointerEvent) {
	prev := r.sel.Selected()
	if prev == id {
		return
	}
	r.sel.SetSelected(id)
	ctx := SelectionContext{Previous: prev, Current: id}
	for _, h := range r.handlers.selection {
		h.fn(ctx)
	}
	typ := EventSelect
	if id == "" {
		typ = EventDeselect
	}
	world := ScreenToWorld(*r.camera, ev.Screen())
	r.emit(InteractionEvent{
		Type: typ, NodeID: id, PointerID: ev.PointerID,
		ScreenX: ev.X, ScreenY: ev.Y, WorldX: world.X, WorldY: world.Y,
		Button: ev.Button, Modifiers: ev.Modifiers, Scale: r.camera.Scale,
	})
}

func (r *Router) fireDrag(typ EventType, ctx DragContext, mods KeyModifiers) {
	var hs []dragHandler
	switch typ {
	case EventDragStart:
		hs = r.handlers.dragStart
	case EventDrag:
		hs = r.handlers.drag
	case EventDragEnd:
		hs = r.handlers.dragEnd
	}
	for _, h := range hs {
		h.fn(ctx)
	}
	r.emit(InteractionEvent{
		Type: typ, NodeID: ctx.NodeID, PointerID: ctx.PointerID,
		ScreenX: ctx.Screen.X, ScreenY: ctx.Screen.Y, WorldX: ctx.World.X, WorldY: ctx.World.Y,
		Button: ctx.Button, Modifiers: mods, Scale: r.camera.Scale, Cancelled: ctx.Cancelled,
	})
}

func (r *Router) fireCamera(typ EventType, screen, delta Vec2, cancelled bool, ev PointerEvent) {
	ctx := CameraContext{
		Event: typ, X: r.camera.X, Y: r.camera.Y, Scale: r.camera.Scale,
		Screen: screen, Delta: delta, Cancelled: cancelled,
	}
	for _, h := range r.handlers.camera {
		h.fn(ctx)
	}
	world := ScreenToWorld(*r.camera, screen)
	r.emit(InteractionEvent{
		Type: typ, PointerID: ev.PointerID,
		ScreenX: screen.X, ScreenY: screen.Y, WorldX: world.X, WorldY: world.Y,
		DeltaX: delta.X, DeltaY: delta.Y,
		Button: ev.Button, Modifiers: ev.Modifiers, Scale: r.camera.Scale, Cancelled: cancelled,
	})
}

func (r *Router) emit(ev InteractionEvent) {
	if r.store == nil {
		return
	}
	r.store.EmitEvent(ev)
}
