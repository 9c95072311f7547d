package ecs

import (
	"testing"

	"github.com/phanxgames/nodeboard"

	"github.com/yohamta/donburi"
)

func TestNodeWorldImplementsStore(t *testing.T) {
	w := NewNodeWorld(donburi.NewWorld(), nil)
	var _ nodeboard.NodeStore = w
	var _ nodeboard.Selection = w
}

func TestNodeWorldOrderAndLookup(t *testing.T) {
	w := NewNodeWorld(donburi.NewWorld(), nodeboard.DefaultNodes())

	nodes := w.Nodes()
	if len(nodes) != 2 {
		t.Fatalf("len = %d, want 2", len(nodes))
	}
	if nodes[0].ID != "a" || nodes[1].ID != "b" {
		t.Errorf("order = %s,%s, want a,b", nodes[0].ID, nodes[1].ID)
	}
	n, ok := w.Node("b")
	if !ok || n.X != 240 || n.Y != 120 {
		t.Errorf("Node(b) = %+v, %v", n, ok)
	}
	if _, ok := w.Node("missing"); ok {
		t.Error("Node(missing) should report false")
	}
}

func TestNodeWorldMoveNode(t *testing.T) {
	w := NewNodeWorld(donburi.NewWorld(), nodeboard.DefaultNodes())
	if !w.MoveNode("a", 40, -20) {
		t.Fatal("MoveNode(a) = false")
	}
	n, _ := w.Node("a")
	if n.X != 40 || n.Y != -20 {
		t.Errorf("a = (%v,%v), want (40,-20)", n.X, n.Y)
	}
	if w.MoveNode("missing", 1, 1) {
		t.Error("MoveNode(missing) = true")
	}
}

func TestNodeWorldRemoveClearsSelection(t *testing.T) {
	w := NewNodeWorld(donburi.NewWorld(), nodeboard.DefaultNodes())
	w.SetSelected("a")
	if !w.Remove("a") {
		t.Fatal("Remove(a) = false")
	}
	if w.Selected() != "" {
		t.Errorf("Selected = %q, want empty", w.Selected())
	}
	if got := len(w.Nodes()); got != 1 {
		t.Errorf("len = %d, want 1", got)
	}
	if w.Remove("a") {
		t.Error("second Remove(a) = true")
	}
}

func TestNodeWorldAddReplacesExisting(t *testing.T) {
	w := NewNodeWorld(donburi.NewWorld(), nodeboard.DefaultNodes())
	w.Add(nodeboard.NodeData{ID: "a", W: 10, H: 10, Label: "renamed"})
	nodes := w.Nodes()
	if len(nodes) != 2 {
		t.Fatalf("len = %d, want 2", len(nodes))
	}
	if nodes[0].Label != "renamed" {
		t.Errorf("label = %q, want renamed", nodes[0].Label)
	}
}
