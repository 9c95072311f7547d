package nodeboard

import "testing"

// newTestRouter returns a router over the default nodes with the camera at
// the origin, so screen and world coordinates coincide.
func newTestRouter() (*Router, *Board) {
	board := NewBoard(DefaultNodes())
	cam := NewCamera(0, 0, 1, 0, 0)
	return NewRouter(cam, board, board), board
}

func press(r *Router, x, y float64) {
	r.PointerDown(PointerEvent{X: x, Y: y, Button: MouseButtonLeft})
}

func move(r *Router, x, y float64) {
	r.PointerMove(PointerEvent{X: x, Y: y})
}

func release(r *Router, x, y float64) {
	r.PointerUp(PointerEvent{X: x, Y: y})
}

type recordingStore struct {
	events []InteractionEvent
}

func (s *recordingStore) EmitEvent(ev InteractionEvent) {
	s.events = append(s.events, ev)
}

func (s *recordingStore) types() []EventType {
	out := make([]EventType, len(s.events))
	for i, ev := range s.events {
		out[i] = ev.Type
	}
	return out
}

// --- Node drag ---

func TestDragMovesNodeByPointerDelta(t *testing.T) {
	r, board := newTestRouter()

	press(r, 10, 10)
	if r.Mode() != ModeDraggingNode {
		t.Fatalf("Mode = %v, want dragging", r.Mode())
	}
	move(r, 50, 50)
	release(r, 50, 50)

	a, _ := board.Node("a")
	if a.X != 40 || a.Y != 40 {
		t.Errorf("a = (%v,%v), want (40,40)", a.X, a.Y)
	}
	if r.Mode() != ModeIdle {
		t.Errorf("Mode = %v after release, want idle", r.Mode())
	}
	if _, ok := r.Captured(); ok {
		t.Error("capture should be released")
	}
}

func TestDragKeepsGrabOffset(t *testing.T) {
	r, board := newTestRouter()

	// Grab node a near its right edge.
	press(r, 100, -30)
	move(r, 300, 300)
	move(r, 110, -20)

	a, _ := board.Node("a")
	if a.X != 10 || a.Y != 10 {
		t.Errorf("a = (%v,%v), want (10,10)", a.X, a.Y)
	}
}

func TestDragUnderZoomedCamera(t *testing.T) {
	board := NewBoard(DefaultNodes())
	cam := NewCamera(200, 120, 2, 0, 0)
	r := NewRouter(cam, board, board)

	// Node a center is at screen (200,120).
	r.PointerDown(PointerEvent{X: 200, Y: 120})
	r.PointerMove(PointerEvent{X: 260, Y: 100})

	a, _ := board.Node("a")
	if !approxEqual(a.X, 30, epsilon) || !approxEqual(a.Y, -10, epsilon) {
		t.Errorf("a = (%v,%v), want (30,-10)", a.X, a.Y)
	}
}

func TestDragWithRightButtonOnNode(t *testing.T) {
	r, board := newTestRouter()

	r.PointerDown(PointerEvent{X: 0, Y: 0, Button: MouseButtonRight})
	if r.Mode() != ModeDraggingNode {
		t.Fatalf("Mode = %v, a node hit should win over the pan trigger", r.Mode())
	}
	r.PointerMove(PointerEvent{X: 5, Y: 5})
	a, _ := board.Node("a")
	if a.X != 5 || a.Y != 5 {
		t.Errorf("a = (%v,%v), want (5,5)", a.X, a.Y)
	}
	if r.Camera().X != 0 || r.Camera().Y != 0 {
		t.Error("camera must not move during a node drag")
	}
}

func TestTopmostNodeWins(t *testing.T) {
	board := NewBoard([]NodeData{
		{ID: "bottom", W: 100, H: 100},
		{ID: "top", W: 100, H: 100},
	})
	r := NewRouter(NewCamera(0, 0, 1, 0, 0), board, board)
	press(r, 0, 0)
	if id, _ := r.DraggedNode(); id != "top" {
		t.Errorf("dragged = %q, want top", id)
	}
}

// --- Selection ---

func TestPressSelectsNode(t *testing.T) {
	r, board := newTestRouter()

	press(r, 0, 0)
	release(r, 0, 0)
	if board.Selected() != "a" {
		t.Fatalf("Selected = %q, want a", board.Selected())
	}

	press(r, 240, 120)
	release(r, 240, 120)
	if board.Selected() != "b" {
		t.Errorf("Selected = %q, want b", board.Selected())
	}
}

func TestSelectionExclusive(t *testing.T) {
	r, board := newTestRouter()
	hits := []Vec2{{0, 0}, {240, 120}, {-100, 40}, {300, 150}}
	for _, p := range hits {
		press(r, p.X, p.Y)
		release(r, p.X, p.Y)

		frame := BuildFrame(*r.Camera(), Vec2{800, 600}, board.Nodes(), board.Selected(), Options{})
		selected := 0
		for _, v := range frame.Nodes {
			if v.Selected {
				selected++
			}
		}
		if selected != 1 {
			t.Errorf("after press at %v: %d nodes highlighted, want 1", p, selected)
		}
	}
}

func TestBackgroundClickDeselects(t *testing.T) {
	r, board := newTestRouter()
	board.SetSelected("a")

	press(r, 600, 600)
	if board.Selected() != "a" {
		t.Error("press alone must not deselect")
	}
	release(r, 600, 600)
	if board.Selected() != "" {
		t.Errorf("Selected = %q, want empty", board.Selected())
	}
}

func TestReleaseOnNodeDoesNotDeselect(t *testing.T) {
	r, board := newTestRouter()
	press(r, 0, 0)
	release(r, 0, 0)
	if board.Selected() != "a" {
		t.Errorf("Selected = %q, want a", board.Selected())
	}
}

func TestPanDoesNotDeselect(t *testing.T) {
	r, board := newTestRouter()
	board.SetSelected("a")

	r.PointerDown(PointerEvent{X: 600, Y: 600, Button: MouseButtonRight})
	r.PointerMove(PointerEvent{X: 620, Y: 610})
	r.PointerUp(PointerEvent{X: 620, Y: 610})

	if board.Selected() != "a" {
		t.Errorf("Selected = %q, a pan must keep the selection", board.Selected())
	}
}

func TestSelectionCallbackFiresOnChangeOnly(t *testing.T) {
	r, _ := newTestRouter()
	var changes []SelectionContext
	r.OnSelectionChange(func(ctx SelectionContext) { changes = append(changes, ctx) })

	press(r, 0, 0)
	release(r, 0, 0)
	press(r, 0, 0) // already selected
	release(r, 0, 0)
	press(r, 600, 600)
	release(r, 600, 600)
	press(r, 600, 600) // already clear
	release(r, 600, 600)

	want := []SelectionContext{{Previous: "", Current: "a"}, {Previous: "a", Current: ""}}
	if len(changes) != len(want) {
		t.Fatalf("changes = %v, want %v", changes, want)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d = %+v, want %+v", i, changes[i], want[i])
		}
	}
}

// --- Panning ---

func TestPanTriggers(t *testing.T) {
	tests := []struct {
		name   string
		button MouseButton
		mods   KeyModifiers
		pans   bool
	}{
		{"middle", MouseButtonMiddle, 0, true},
		{"right", MouseButtonRight, 0, true},
		{"ctrl+left", MouseButtonLeft, ModCtrl, true},
		{"plain left", MouseButtonLeft, 0, false},
		{"shift+left", MouseButtonLeft, ModShift, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRouter()
			r.PointerDown(PointerEvent{X: 600, Y: 600, Button: tt.button, Modifiers: tt.mods})
			r.PointerMove(PointerEvent{X: 630, Y: 580})

			cam := r.Camera()
			if tt.pans {
				if r.Mode() != ModePanning {
					t.Errorf("Mode = %v, want panning", r.Mode())
				}
				if cam.X != 30 || cam.Y != -20 {
					t.Errorf("cam = (%v,%v), want (30,-20)", cam.X, cam.Y)
				}
			} else {
				if r.Mode() != ModeIdle {
					t.Errorf("Mode = %v, want idle", r.Mode())
				}
				if cam.X != 0 || cam.Y != 0 {
					t.Errorf("cam = (%v,%v), want unchanged", cam.X, cam.Y)
				}
			}
		})
	}
}

func TestPanAccumulatesDeltas(t *testing.T) {
	r, _ := newTestRouter()
	r.PointerDown(PointerEvent{X: 600, Y: 600, Button: MouseButtonMiddle})
	r.PointerMove(PointerEvent{X: 610, Y: 600})
	r.PointerMove(PointerEvent{X: 615, Y: 590})
	r.PointerUp(PointerEvent{X: 615, Y: 590})

	cam := r.Camera()
	if cam.X != 15 || cam.Y != -10 {
		t.Errorf("cam = (%v,%v), want (15,-10)", cam.X, cam.Y)
	}
	if r.Mode() != ModeIdle {
		t.Errorf("Mode = %v, want idle", r.Mode())
	}
}

func TestCustomPanTrigger(t *testing.T) {
	r, _ := newTestRouter()
	r.PanTrigger = func(ev PointerEvent) bool { return ev.Modifiers.Has(ModAlt) }

	r.PointerDown(PointerEvent{X: 600, Y: 600, Button: MouseButtonRight})
	if r.Mode() != ModeIdle {
		t.Errorf("right button should no longer pan, Mode = %v", r.Mode())
	}
	r.PointerUp(PointerEvent{X: 600, Y: 600})

	r.PointerDown(PointerEvent{X: 600, Y: 600, Modifiers: ModAlt})
	if r.Mode() != ModePanning {
		t.Errorf("alt should pan, Mode = %v", r.Mode())
	}
}

// --- Sessions and capture ---

func TestOtherPointerIgnoredWhileCaptured(t *testing.T) {
	r, board := newTestRouter()

	r.PointerDown(PointerEvent{PointerID: 1, X: 0, Y: 0})
	if id, ok := r.Captured(); !ok || id != 1 {
		t.Fatalf("Captured = %d,%v, want 1,true", id, ok)
	}
	r.PointerMove(PointerEvent{PointerID: 2, X: 100, Y: 100})
	r.PointerUp(PointerEvent{PointerID: 2, X: 100, Y: 100})

	a, _ := board.Node("a")
	if a.X != 0 || a.Y != 0 {
		t.Errorf("a = (%v,%v), foreign pointer must not move it", a.X, a.Y)
	}
	if r.Mode() != ModeDraggingNode {
		t.Errorf("Mode = %v, foreign release must not end the drag", r.Mode())
	}
}

func TestPressDuringSessionIgnored(t *testing.T) {
	r, board := newTestRouter()
	press(r, 0, 0)
	r.PointerDown(PointerEvent{PointerID: 3, X: 240, Y: 120})

	if id, _ := r.DraggedNode(); id != "a" {
		t.Errorf("dragged = %q, want a", id)
	}
	if board.Selected() != "a" {
		t.Errorf("Selected = %q, want a", board.Selected())
	}
}

func TestMoveWithoutSessionIsNoop(t *testing.T) {
	r, board := newTestRouter()
	move(r, 100, 100)
	a, _ := board.Node("a")
	if a.X != 0 || a.Y != 0 || r.Camera().X != 0 {
		t.Error("move without a session must change nothing")
	}
}

func TestWheelDuringDragKeepsMode(t *testing.T) {
	r, board := newTestRouter()
	press(r, 10, 10)
	if !r.Wheel(WheelEvent{X: 10, Y: 10, DeltaY: -200}) {
		t.Fatal("Wheel should change the scale")
	}
	if r.Mode() != ModeDraggingNode {
		t.Errorf("Mode = %v, wheel must not end the drag", r.Mode())
	}

	// The grab offset is in world units, so the node stays under the cursor.
	cam := *r.Camera()
	move(r, 10, 10)
	a, _ := board.Node("a")
	world := ScreenToWorld(cam, Vec2{10, 10})
	if !approxEqual(a.X, world.X-10, 1e-9) || !approxEqual(a.Y, world.Y-10, 1e-9) {
		t.Errorf("a = (%v,%v), want (%v,%v)", a.X, a.Y, world.X-10, world.Y-10)
	}
}

func TestWheelWhilePanning(t *testing.T) {
	r, _ := newTestRouter()
	r.PointerDown(PointerEvent{X: 600, Y: 600, Button: MouseButtonRight})
	r.Wheel(WheelEvent{X: 300, Y: 200, DeltaY: 100})
	if r.Mode() != ModePanning {
		t.Errorf("Mode = %v, want panning", r.Mode())
	}
}

// --- Cancel ---

func TestCancelDrag(t *testing.T) {
	r, _ := newTestRouter()
	var ends []DragContext
	r.OnDragEnd(func(ctx DragContext) { ends = append(ends, ctx) })

	press(r, 0, 0)
	move(r, 20, 20)
	r.Cancel()

	if r.Mode() != ModeIdle {
		t.Errorf("Mode = %v, want idle", r.Mode())
	}
	if _, ok := r.Captured(); ok {
		t.Error("capture should be released")
	}
	if len(ends) != 1 || !ends[0].Cancelled {
		t.Fatalf("ends = %+v, want one cancelled end", ends)
	}
	if ends[0].Position != (Vec2{20, 20}) {
		t.Errorf("Position = %v, want (20,20)", ends[0].Position)
	}

	// A late release must do nothing.
	release(r, 20, 20)
	if len(ends) != 1 {
		t.Errorf("late release fired another end")
	}
}

func TestCancelPan(t *testing.T) {
	r, _ := newTestRouter()
	var last CameraContext
	r.OnCameraChange(func(ctx CameraContext) { last = ctx })

	r.PointerDown(PointerEvent{X: 600, Y: 600, Button: MouseButtonRight})
	r.Cancel()
	if r.Mode() != ModeIdle {
		t.Errorf("Mode = %v, want idle", r.Mode())
	}
	if last.Event != EventPanEnd || !last.Cancelled {
		t.Errorf("last = %+v, want cancelled panend", last)
	}
}

func TestCancelIdleIsSafe(t *testing.T) {
	r, board := newTestRouter()
	board.SetSelected("a")
	press(r, 600, 600) // arms a click
	r.Cancel()
	release(r, 600, 600)
	if board.Selected() != "a" {
		t.Error("cancel should disarm the pending background click")
	}
}

func TestDraggedNodeDeletedCancels(t *testing.T) {
	r, board := newTestRouter()
	var ends []DragContext
	r.OnDragEnd(func(ctx DragContext) { ends = append(ends, ctx) })

	press(r, 0, 0)
	board.DeleteSelected()
	move(r, 30, 30)

	if r.Mode() != ModeIdle {
		t.Errorf("Mode = %v, want idle", r.Mode())
	}
	if len(ends) != 1 || !ends[0].Cancelled {
		t.Errorf("ends = %+v, want one cancelled end", ends)
	}
	if board.Len() != 1 {
		t.Errorf("Len = %d, want 1", board.Len())
	}
}

// --- Callbacks and entity store ---

func TestDragCallbacksSequence(t *testing.T) {
	r, _ := newTestRouter()
	var events []string
	r.OnDragStart(func(ctx DragContext) { events = append(events, "dragstart") })
	r.OnDrag(func(ctx DragContext) { events = append(events, "drag") })
	r.OnDragEnd(func(ctx DragContext) { events = append(events, "dragend") })

	press(r, 0, 0)
	move(r, 5, 5)
	move(r, 10, 10)
	release(r, 10, 10)

	want := []string{"dragstart", "drag", "drag", "dragend"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %s, want %s", i, events[i], want[i])
		}
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	r, _ := newTestRouter()
	count := 0
	h := r.OnDragStart(func(ctx DragContext) { count++ })

	press(r, 0, 0)
	release(r, 0, 0)
	h.Remove()
	press(r, 0, 0)
	release(r, 0, 0)

	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	var zero CallbackHandle
	zero.Remove()
}

func TestEntityStoreReceivesEvents(t *testing.T) {
	r, _ := newTestRouter()
	store := &recordingStore{}
	r.SetEntityStore(store)

	press(r, 0, 0)
	move(r, 5, 5)
	release(r, 5, 5)
	r.PointerDown(PointerEvent{X: 600, Y: 600, Button: MouseButtonRight})
	r.PointerMove(PointerEvent{X: 610, Y: 600})
	r.PointerUp(PointerEvent{X: 610, Y: 600})
	r.Wheel(WheelEvent{X: 100, Y: 100, DeltaY: -100})
	press(r, 600, 600)
	release(r, 600, 600)

	want := []EventType{
		EventSelect, EventDragStart, EventDrag, EventDragEnd,
		EventPanStart, EventPan, EventPanEnd,
		EventZoom,
		EventDeselect,
	}
	got := store.types()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
	if store.events[5].DeltaX != 10 {
		t.Errorf("pan DeltaX = %v, want 10", store.events[5].DeltaX)
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		m    Mode
		want string
	}{
		{ModeIdle, "idle"},
		{ModePanning, "panning"},
		{ModeDraggingNode, "dragging"},
		{Mode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestHandlerRemovingItselfDuringDispatch(t *testing.T) {
	r, _ := newTestRouter()
	var first, second, third int
	var h CallbackHandle
	h = r.OnDragStart(func(DragContext) {
		first++
		h.Remove()
	})
	r.OnDragStart(func(DragContext) { second++ })
	r.OnDragStart(func(DragContext) { third++ })

	press(r, 0, 0)
	release(r, 0, 0)
	if first != 1 || second != 1 || third != 1 {
		t.Fatalf("first drag: calls = %d,%d,%d, want 1,1,1", first, second, third)
	}

	press(r, 0, 0)
	release(r, 0, 0)
	if first != 1 || second != 2 || third != 2 {
		t.Errorf("second drag: calls = %d,%d,%d, want 1,2,2", first, second, third)
	}
}

func TestSelectionHandlerRemovedDuringDispatch(t *testing.T) {
	r, _ := newTestRouter()
	var calls []string
	var h CallbackHandle
	h = r.OnSelectionChange(func(SelectionContext) {
		calls = append(calls, "a")
		h.Remove()
	})
	r.OnSelectionChange(func(SelectionContext) { calls = append(calls, "b") })

	press(r, 0, 0)
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Errorf("calls = %v, want [a b]", calls)
	}
}
