package nodeboard

// WorldToScreen maps a world-space point to screen pixels under cam.
func WorldToScreen(cam Camera, p Vec2) Vec2 {
	return Vec2{
		X: cam.X + p.X*cam.Scale,
		Y: cam.Y + p.Y*cam.Scale,
	}
}

// ScreenToWorld maps a screen-space point to world units under cam. It is the
// inverse of WorldToScreen. cam.Scale must be non-zero; Camera keeps it
// inside [MinScale, MaxScale] so this holds for any camera it manages.
func ScreenToWorld(cam Camera, p Vec2) Vec2 {
	return Vec2{
		X: (p.X - cam.X) / cam.Scale,
		Y: (p.Y - cam.Y) / cam.Scale,
	}
}

// WorldRectToScreen maps a world-space rectangle to screen pixels.
func WorldRectToScreen(cam Camera, r Rect) Rect {
	tl := WorldToScreen(cam, Vec2{r.X, r.Y})
	return Rect{X: tl.X, Y: tl.Y, Width: r.Width * cam.Scale, Height: r.Height * cam.Scale}
}
