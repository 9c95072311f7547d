package nodeboard

// Link is a reserved endpoint for future connections between nodes. No
// behavior reads it yet.
type Link struct {
	ID     string
	Pos    Vec2
	Input  string
	Output string
}

// NodeData is a rectangular node in world space. X and Y are the center of
// the node; W and H its world-space size. ID is the only key used for lookup
// and equality.
type NodeData struct {
	ID    string
	X, Y  float64
	W, H  float64
	Label string
	// Color is a CSS color string carrying alpha, e.g. "rgba(255, 0, 0, 0.12)".
	// It tints the selection border and glow.
	Color      string
	Interfaces []Link
}

// Bounds returns the node's world-space rectangle.
func (n NodeData) Bounds() Rect {
	return Rect{X: n.X - n.W/2, Y: n.Y - n.H/2, Width: n.W, Height: n.H}
}

// Contains reports whether the world point lies on the node. Edges count.
func (n NodeData) Contains(p Vec2) bool {
	return n.Bounds().Contains(p.X, p.Y)
}

// DisplayLabel returns the label, or the id when the label is empty.
func (n NodeData) DisplayLabel() string {
	if n.Label == "" {
		return n.ID
	}
	return n.Label
}

// NodeStore is the node collection the editor reads and moves nodes in. It
// is owned by the application; the editor never adds or removes nodes.
type NodeStore interface {
	// Nodes returns the nodes in painter order: later nodes draw on top.
	Nodes() []NodeData
	// Node looks up a node by id.
	Node(id string) (NodeData, bool)
	// MoveNode sets a node's center. Returns false if the id is unknown.
	MoveNode(id string, x, y float64) bool
}

// Selection is the application-owned single selection. An empty id means
// nothing is selected.
type Selection interface {
	Selected() string
	SetSelected(id string)
}

// hitTest returns the topmost node containing the world point.
func hitTest(nodes []NodeData, p Vec2) (NodeData, bool) {
	for i := len(nodes) - 1; i >= 0; i-- {
		if nodes[i].Contains(p) {
			return nodes[i], true
		}
	}
	return NodeData{}, false
}

// NodesBounds returns the union of all node rectangles, false when empty.
func NodesBounds(nodes []NodeData) (Rect, bool) {
	if len(nodes) == 0 {
		return Rect{}, false
	}
	r := nodes[0].Bounds()
	for _, n := range nodes[1:] {
		r = r.Union(n.Bounds())
	}
	return r, true
}
