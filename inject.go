package nodeboard

// syntheticKind tags an injected event.
type syntheticKind uint8

const (
	synthPress syntheticKind = iota
	synthMove
	synthRelease
	synthWheel
	synthCancel
)

// syntheticEvent is a single injected input event in screen coordinates,
// the same coordinates a screenshot shows.
type syntheticEvent struct {
	kind      syntheticKind
	x, y      float64
	button    MouseButton
	modifiers KeyModifiers
	deltaY    float64
}

// InjectPress queues a left-button press at the given screen coordinates.
// The event is consumed on the next frame's processInput call.
func (e *Editor) InjectPress(x, y float64) {
	e.InjectPressButton(x, y, MouseButtonLeft, 0)
}

// InjectPressButton queues a press with an explicit button and modifiers.
func (e *Editor) InjectPressButton(x, y float64, button MouseButton, mods KeyModifiers) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{
		kind: synthPress, x: x, y: y, button: button, modifiers: mods,
	})
}

// InjectMove queues a pointer move at the given screen coordinates. Use it
// between InjectPress and InjectRelease to simulate a drag.
func (e *Editor) InjectMove(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthMove, x: x, y: y})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (e *Editor) InjectRelease(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthRelease, x: x, y: y})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (e *Editor) InjectClick(x, y float64) {
	e.InjectPress(x, y)
	e.InjectRelease(x, y)
}

// InjectDrag queues a full left-button drag: press at (fromX, fromY),
// frames-2 linearly interpolated moves ending on (toX, toY), and release
// there. The sequence consumes frames frames, minimum 2. With 2 frames and
// distinct endpoints one move to the target is added, since a release does
// not move anything.
func (e *Editor) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	e.injectStroke(fromX, fromY, toX, toY, frames, MouseButtonLeft, 0)
}

// InjectPan is InjectDrag with the right button, which pans when it starts
// on the background.
func (e *Editor) InjectPan(fromX, fromY, toX, toY float64, frames int) {
	e.injectStroke(fromX, fromY, toX, toY, frames, MouseButtonRight, 0)
}

func (e *Editor) injectStroke(fromX, fromY, toX, toY float64, frames int, button MouseButton, mods KeyModifiers) {
	if frames < 2 {
		frames = 2
	}
	e.InjectPressButton(fromX, fromY, button, mods)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		e.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	if steps == 0 && (fromX != toX || fromY != toY) {
		e.InjectMove(toX, toY)
	}
	e.InjectRelease(toX, toY)
}

// InjectWheel queues a wheel step at the given screen coordinates. deltaY is
// in wheel pixels; positive zooms out.
func (e *Editor) InjectWheel(x, y, deltaY float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthWheel, x: x, y: y, deltaY: deltaY})
}

// InjectCancel queues an interaction cancel, as when the window loses focus.
func (e *Editor) InjectCancel() {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthCancel})
}

// PendingInjections returns the number of queued synthetic events.
func (e *Editor) PendingInjections() int {
	return len(e.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it to
// the router. Returns true if an event was consumed, in which case live
// input is skipped for the frame.
func (e *Editor) processInjectedInput() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	evt := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	ps := &e.mouse
	switch evt.kind {
	case synthPress:
		ps.down = true
		ps.button = evt.button
		ps.last = Vec2{evt.x, evt.y}
		e.router.PointerDown(PointerEvent{PointerID: mousePointerID, X: evt.x, Y: evt.y, Button: evt.button, Modifiers: evt.modifiers})
	case synthMove:
		ps.last = Vec2{evt.x, evt.y}
		e.router.PointerMove(PointerEvent{PointerID: mousePointerID, X: evt.x, Y: evt.y, Button: ps.button, Modifiers: evt.modifiers})
	case synthRelease:
		ps.down = false
		ps.last = Vec2{evt.x, evt.y}
		e.router.PointerUp(PointerEvent{PointerID: mousePointerID, X: evt.x, Y: evt.y, Button: ps.button, Modifiers: evt.modifiers})
	case synthWheel:
		e.router.Wheel(WheelEvent{X: evt.x, Y: evt.y, DeltaY: evt.deltaY, Modifiers: evt.modifiers})
	case synthCancel:
		*ps = pointerState{}
		e.router.Cancel()
	}
	return true
}
