package nodeboard

// Surface is a 2D drawing area in screen pixels. Frames paint through it so
// the same frame can go to an ebiten window or an offscreen image.
type Surface interface {
	// Fill clears the whole surface to c.
	Fill(c Color)
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, width float64, c Color)
	StrokeLine(l Line, width float64, c Color)
	// DrawText draws a single line with its top-left corner at the given point.
	DrawText(s string, at Vec2, size float64, c Color)
	MeasureText(s string, size float64) (w, h float64)
}
