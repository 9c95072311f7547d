package ecs

import (
	"github.com/phanxgames/nodeboard"

	"github.com/yohamta/donburi"
)

// Node is the Donburi component holding a node's data.
var Node = donburi.NewComponentType[nodeboard.NodeData]()

// NodeWorld stores nodes as entities in a Donburi world and implements
// nodeboard.NodeStore and nodeboard.Selection. Painter order is the order of
// insertion.
type NodeWorld struct {
	world    donburi.World
	order    []donburi.Entity
	byID     map[string]donburi.Entity
	selected string
	buf      []nodeboard.NodeData
}

// NewNodeWorld creates one entity per node in world.
func NewNodeWorld(world donburi.World, nodes []nodeboard.NodeData) *NodeWorld {
	w := &NodeWorld{world: world, byID: make(map[string]donburi.Entity, len(nodes))}
	for _, n := range nodes {
		w.Add(n)
	}
	return w
}

// World returns the underlying Donburi world.
func (w *NodeWorld) World() donburi.World {
	return w.world
}

// Add creates an entity for n on top of the others. An existing id is
// replaced in place.
func (w *NodeWorld) Add(n nodeboard.NodeData) donburi.Entity {
	if e, ok := w.byID[n.ID]; ok {
		Node.SetValue(w.world.Entry(e), n)
		return e
	}
	e := w.world.Create(Node)
	Node.SetValue(w.world.Entry(e), n)
	w.order = append(w.order, e)
	w.byID[n.ID] = e
	return e
}

// Remove deletes the node's entity. Removing the selected node clears the
// selection.
func (w *NodeWorld) Remove(id string) bool {
	e, ok := w.byID[id]
	if !ok {
		return false
	}
	w.world.Remove(e)
	delete(w.byID, id)
	for i, oe := range w.order {
		if oe == e {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	if w.selected == id {
		w.selected = ""
	}
	return true
}

// Entity returns the entity holding node id.
func (w *NodeWorld) Entity(id string) (donburi.Entity, bool) {
	e, ok := w.byID[id]
	if !ok || !w.world.Valid(e) {
		var none donburi.Entity
		return none, false
	}
	return e, true
}

func (w *NodeWorld) entry(id string) (*donburi.Entry, bool) {
	e, ok := w.Entity(id)
	if !ok {
		return nil, false
	}
	return w.world.Entry(e), true
}

// Nodes returns the nodes in painter order. The slice is reused by the next
// call.
func (w *NodeWorld) Nodes() []nodeboard.NodeData {
	w.buf = w.buf[:0]
	for _, e := range w.order {
		if !w.world.Valid(e) {
			continue
		}
		w.buf = append(w.buf, *Node.Get(w.world.Entry(e)))
	}
	return w.buf
}

// Node looks up a node by id.
func (w *NodeWorld) Node(id string) (nodeboard.NodeData, bool) {
	entry, ok := w.entry(id)
	if !ok {
		return nodeboard.NodeData{}, false
	}
	return *Node.Get(entry), true
}

// MoveNode sets a node's center.
func (w *NodeWorld) MoveNode(id string, x, y float64) bool {
	entry, ok := w.entry(id)
	if !ok {
		return false
	}
	n := Node.Get(entry)
	n.X, n.Y = x, y
	return true
}

// Selected returns the selected id.
func (w *NodeWorld) Selected() string {
	return w.selected
}

// SetSelected selects id. An empty id clears the selection.
func (w *NodeWorld) SetSelected(id string) {
	w.selected = id
}
