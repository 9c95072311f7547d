package nodeboard

import "math"

// maxGridLines caps lines per axis so a degenerate camera cannot stall a frame.
const maxGridLines = 4096

// Line is a screen-space segment.
type Line struct {
	From, To Vec2
}

// GridLines returns the grid lines covering a viewport of the given pixel
// size. The visible world rectangle is rounded outward to multiples of
// gridSize and one line is emitted per step on each axis, verticals first.
// Endpoints are in screen space.
func GridLines(cam Camera, viewport Vec2, gridSize float64) []Line {
	if gridSize <= 0 || viewport.X <= 0 || viewport.Y <= 0 || cam.Scale == 0 {
		return nil
	}
	tl := ScreenToWorld(cam, Vec2{})
	br := ScreenToWorld(cam, viewport)

	startX := math.Floor(tl.X/gridSize) * gridSize
	endX := math.Ceil(br.X/gridSize) * gridSize
	startY := math.Floor(tl.Y/gridSize) * gridSize
	endY := math.Ceil(br.Y/gridSize) * gridSize

	nx := gridSteps(startX, endX, gridSize)
	ny := gridSteps(startY, endY, gridSize)
	lines := make([]Line, 0, nx+ny)

	for i := 0; i < nx; i++ {
		x := startX + float64(i)*gridSize
		lines = append(lines, Line{
			From: WorldToScreen(cam, Vec2{x, startY}),
			To:   WorldToScreen(cam, Vec2{x, endY}),
		})
	}
	for i := 0; i < ny; i++ {
		y := startY + float64(i)*gridSize
		lines = append(lines, Line{
			From: WorldToScreen(cam, Vec2{startX, y}),
			To:   WorldToScreen(cam, Vec2{endX, y}),
		})
	}
	return lines
}

// gridSteps counts the lines from start to end inclusive.
func gridSteps(start, end, step float64) int {
	n := int(math.Round((end-start)/step)) + 1
	return max(0, min(n, maxGridLines))
}
