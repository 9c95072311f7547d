package nodeboard

import (
	"github.com/google/uuid"
)

// Default size and tint for nodes made by CreateNode.
const (
	NewNodeWidth  = 250.0
	NewNodeHeight = 100.0
	NewNodeLabel  = "Node"
)

// NewNodeColor tints nodes made by CreateNode.
var NewNodeColor = RGBA8(255, 0, 0, 0.12).String()

// Board is an in-memory NodeStore and Selection: the application state the
// editor reads and mutates. The zero value is an empty board.
type Board struct {
	nodes    []NodeData
	selected string
}

// NewBoard creates a board holding a copy of nodes, nothing selected.
func NewBoard(nodes []NodeData) *Board {
	b := &Board{nodes: make([]NodeData, len(nodes))}
	copy(b.nodes, nodes)
	return b
}

// DefaultNodes returns the two starter nodes a fresh board shows.
func DefaultNodes() []NodeData {
	return []NodeData{
		{ID: "a", X: 0, Y: 0, W: 250, H: 100, Label: "Node A", Color: RGBA8(255, 0, 0, 0.12).String()},
		{ID: "b", X: 240, Y: 120, W: 160, H: 90, Label: "Node B", Color: RGBA8(0, 0, 255, 0.12).String()},
	}
}

// Nodes returns the nodes in painter order. The slice is shared; callers
// must not modify it.
func (b *Board) Nodes() []NodeData {
	return b.nodes
}

// Len returns the node count.
func (b *Board) Len() int {
	return len(b.nodes)
}

func (b *Board) index(id string) int {
	if id == "" {
		return -1
	}
	for i := range b.nodes {
		if b.nodes[i].ID == id {
			return i
		}
	}
	return -1
}

// Node looks up a node by id.
func (b *Board) Node(id string) (NodeData, bool) {
	i := b.index(id)
	if i < 0 {
		return NodeData{}, false
	}
	return b.nodes[i], true
}

// MoveNode sets a node's center.
func (b *Board) MoveNode(id string, x, y float64) bool {
	i := b.index(id)
	if i < 0 {
		return false
	}
	b.nodes[i].X = x
	b.nodes[i].Y = y
	return true
}

// Patch applies fn to the node with the given id in place.
func (b *Board) Patch(id string, fn func(*NodeData)) bool {
	i := b.index(id)
	if i < 0 {
		return false
	}
	fn(&b.nodes[i])
	return true
}

// Selected returns the selected id, or "" when nothing is selected.
func (b *Board) Selected() string {
	return b.selected
}

// SetSelected selects id. An empty id clears the selection.
func (b *Board) SetSelected(id string) {
	b.selected = id
}

// SelectedNode resolves the selection against the current nodes. A selected
// id that no longer names a node reports false.
func (b *Board) SelectedNode() (NodeData, bool) {
	return b.Node(b.selected)
}

// AddNode appends n on top. An empty id gets a fresh one. Returns the id.
func (b *Board) AddNode(n NodeData) string {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	b.nodes = append(b.nodes, n)
	return n.ID
}

// CreateNode appends a default node at the world origin and selects it.
func (b *Board) CreateNode() NodeData {
	n := NodeData{
		ID:    uuid.NewString(),
		W:     NewNodeWidth,
		H:     NewNodeHeight,
		Label: NewNodeLabel,
		Color: NewNodeColor,
	}
	b.AddNode(n)
	b.selected = n.ID
	return n
}

// DeleteSelected removes the selected node and clears the selection.
// Returns false when nothing was removed.
func (b *Board) DeleteSelected() bool {
	i := b.index(b.selected)
	b.selected = ""
	if i < 0 {
		return false
	}
	b.nodes = append(b.nodes[:i], b.nodes[i+1:]...)
	return true
}
