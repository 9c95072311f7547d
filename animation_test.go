package nodeboard

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestNodeTweenMovesToTarget(t *testing.T) {
	b := NewBoard(DefaultNodes())
	tw := TweenNodePosition(b, "a", 100, 50, 1, ease.Linear)

	tw.Update(0.5)
	n, _ := b.Node("a")
	if !approxEqual(n.X, 50, 1e-4) || !approxEqual(n.Y, 25, 1e-4) {
		t.Errorf("halfway = (%v,%v), want (50,25)", n.X, n.Y)
	}
	if tw.Done {
		t.Error("Done at halfway")
	}

	tw.Update(0.5)
	n, _ = b.Node("a")
	if n.X != 100 || n.Y != 50 {
		t.Errorf("end = (%v,%v), want (100,50)", n.X, n.Y)
	}
	if !tw.Done {
		t.Error("not Done at the end")
	}
	if tw.NodeID() != "a" {
		t.Errorf("NodeID = %q", tw.NodeID())
	}
}

func TestNodeTweenUnknownID(t *testing.T) {
	b := NewBoard(DefaultNodes())
	tw := TweenNodePosition(b, "missing", 1, 1, 1, nil)
	if !tw.Done {
		t.Error("tween for unknown id should start done")
	}
	tw.Update(1)
}

func TestNodeTweenStopsWhenNodeDeleted(t *testing.T) {
	b := NewBoard(DefaultNodes())
	tw := TweenNodePosition(b, "b", 0, 0, 1, ease.OutQuad)
	tw.Update(0.25)

	b.SetSelected("b")
	b.DeleteSelected()
	tw.Update(0.25)
	if !tw.Done {
		t.Error("tween should stop once the node is gone")
	}
}

func TestSnapToGrid(t *testing.T) {
	tests := []struct {
		p    Vec2
		grid float64
		want Vec2
	}{
		{Vec2{19, 21}, 40, Vec2{0, 40}},
		{Vec2{-21, 60}, 40, Vec2{-40, 80}},
		{Vec2{80, -80}, 40, Vec2{80, -80}},
		{Vec2{13, 7}, 0, Vec2{13, 7}},
		{Vec2{13, 7}, -5, Vec2{13, 7}},
	}
	for _, tt := range tests {
		if got := SnapToGrid(tt.p, tt.grid); got != tt.want {
			t.Errorf("SnapToGrid(%v, %v) = %v, want %v", tt.p, tt.grid, got, tt.want)
		}
	}
}

func TestNodeTweenLandsOnExactTarget(t *testing.T) {
	b := NewBoard(DefaultNodes())
	tw := TweenNodePosition(b, "a", 0.1, -123.456789, 0.12, ease.OutQuad)
	for i := 0; i < 20 && !tw.Done; i++ {
		tw.Update(1.0 / 60)
	}
	if !tw.Done {
		t.Fatal("tween did not finish")
	}
	if n, _ := b.Node("a"); n.X != 0.1 || n.Y != -123.456789 {
		t.Errorf("a = (%v,%v), want exactly (0.1,-123.456789)", n.X, n.Y)
	}
}
