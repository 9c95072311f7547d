package nodeboard

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// NodeTween animates a node's center inside a NodeStore. Call Update(dt)
// each frame. If the node disappears from the store the tween stops
// immediately.
type NodeTween struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	store  NodeStore
	nodeID string
	toX    float64
	toY    float64
	Done   bool
}

// TweenNodePosition creates a NodeTween moving node id to (toX, toY) over
// duration seconds. The start is the node's current center; an unknown id
// yields a tween that is already done.
func TweenNodePosition(store NodeStore, id string, toX, toY float64, duration float32, fn ease.TweenFunc) *NodeTween {
	n, ok := store.Node(id)
	if !ok {
		return &NodeTween{store: store, nodeID: id, Done: true}
	}
	if fn == nil {
		fn = ease.OutQuad
	}
	return &NodeTween{
		tweenX: gween.New(float32(n.X), float32(toX), duration, fn),
		tweenY: gween.New(float32(n.Y), float32(toY), duration, fn),
		store:  store,
		nodeID: id,
		toX:    toX,
		toY:    toY,
	}
}

// NodeID returns the id of the animated node.
func (t *NodeTween) NodeID() string {
	return t.nodeID
}

// Update advances the tween by dt seconds and writes the node center.
func (t *NodeTween) Update(dt float32) {
	if t.Done {
		return
	}
	if _, ok := t.store.Node(t.nodeID); !ok {
		t.Done = true
		return
	}
	x32, doneX := t.tweenX.Update(dt)
	y32, doneY := t.tweenY.Update(dt)
	x, y := float64(x32), float64(y32)
	t.Done = doneX && doneY
	if t.Done {
		x, y = t.toX, t.toY
	}
	if !t.store.MoveNode(t.nodeID, x, y) {
		t.Done = true
	}
}

// SnapToGrid rounds a world point to the nearest multiple of grid.
// A non-positive grid returns p unchanged.
func SnapToGrid(p Vec2, grid float64) Vec2 {
	if grid <= 0 {
		return p
	}
	return Vec2{
		X: math.Round(p.X/grid) * grid,
		Y: math.Round(p.Y/grid) * grid,
	}
}
