// Package nodeboard is an infinite, pannable, zoomable node canvas for
// [Ebitengine].
//
// A [Camera] maps world space to screen space with an offset and a uniform
// scale: screen = (cam.X + world.X*Scale, cam.Y + world.Y*Scale). Nodes live
// in world space, centered on their X/Y, and are drawn over a grid whose
// lines follow the camera.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	board := nodeboard.NewBoard(nodeboard.DefaultNodes())
//	ed := nodeboard.NewEditor(board, board, nodeboard.Options{})
//	nodeboard.Run(ed, nodeboard.RunConfig{
//		Title: "Board", Width: 1280, Height: 720,
//	})
//
// For full control, implement [ebiten.Game] yourself and forward to
// [Editor.Update], [Editor.Draw], and [Editor.Layout].
//
// # Interaction
//
// A [Router] interprets pointer and wheel events. A press on a node selects
// it and starts a drag that keeps the grab offset; a press on the background
// with the right or middle button, or Ctrl with the left button, pans; a
// plain background click clears the selection. The wheel zooms around the
// cursor by exp(-delta*ZoomRate), clamped to [MinScale, MaxScale]. Only the
// pointer that started a session can move or end it, and [Router.Cancel]
// ends a session whose release never arrives.
//
// The node collection and the selection belong to the application through
// the [NodeStore] and [Selection] interfaces. [Board] is a ready-made
// in-memory implementation; the adapters in nodeboard/ecs keep
// nodes in a [Donburi] world instead.
//
// # Rendering
//
// [BuildFrame] derives a [Frame] (grid lines, node cards, HUD text) from the
// camera and nodes without touching the GPU. [Frame.Paint] draws it onto a
// [Surface]: [EbitenSurface] for the window, [ImageSurface] (backed by gg)
// for headless PNG output.
//
// # Testing
//
// Synthetic input ([Editor.InjectClick], [Editor.InjectDrag],
// [Editor.InjectWheel]) and YAML/JSON scripts ([LoadTestScript]) drive the
// editor frame by frame; [Editor.Screenshot] captures the result.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package nodeboard
