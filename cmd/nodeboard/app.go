package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/nodeboard"
)

// app is the window shell around the editor: it owns the board and binds
// keys for creating, deleting, and framing nodes.
type app struct {
	board  *nodeboard.Board
	editor *nodeboard.Editor
	runner *nodeboard.TestRunner
}

func newApp(board *nodeboard.Board, opts nodeboard.Options) *app {
	return &app{
		board:  board,
		editor: nodeboard.NewEditor(board, board, opts),
	}
}

func (a *app) Update() error {
	if err := a.editor.Update(); err != nil {
		return err
	}
	if a.runner != nil && a.runner.Done() {
		return ebiten.Termination
	}
	a.handleKeys()
	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	a.editor.Draw(screen)
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.editor.Layout(outsideWidth, outsideHeight)
}

func ctrlHeld() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

func (a *app) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		a.board.CreateNode()
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete), inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		a.board.DeleteSelected()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		a.editor.FitAll()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		if ctrlHeld() {
			a.copySelection()
		} else {
			a.editor.FocusSelected()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		a.editor.CancelInteraction()
	}
}

func (a *app) copySelection() {
	n, ok := a.board.SelectedNode()
	if !ok {
		return
	}
	text := fmt.Sprintf("%s %s (%.0f, %.0f) %gx%g %s", n.ID, n.DisplayLabel(), n.X, n.Y, n.W, n.H, n.Color)
	if err := clipboard.WriteAll(text); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[nodeboard] clipboard: %v\n", err)
	}
}
