package nodeboard

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Default camera limits and wheel tuning.
const (
	DefaultMinScale = 0.2
	DefaultMaxScale = 4.0
	DefaultZoomRate = 0.0015 // scale exponent per wheel pixel
)

// focusAnim holds active tweens for an animated camera move.
type focusAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	tweenS *gween.Tween // nil when the scale is not animated
	// Exact targets, written once the float32 tweens finish.
	toX, toY, toS float64
	doneX  bool
	doneY  bool
	doneS  bool
}

// Camera maps world space to screen space: a screen point is
// (X + wx*Scale, Y + wy*Scale). X and Y are the screen-space position of the
// world origin.
type Camera struct {
	X, Y float64
	// Scale is the world-to-screen scale factor, kept in [MinScale, MaxScale].
	Scale float64

	MinScale float64
	MaxScale float64
	// ZoomRate converts wheel delta pixels into an exponential scale change.
	ZoomRate float64

	anim *focusAnim
}

// NewCamera creates a camera at the given offset and scale. Non-positive or
// non-finite limits fall back to the defaults, a non-finite scale to 1, and
// scale is clamped into the limits.
func NewCamera(x, y, scale, minScale, maxScale float64) *Camera {
	c := &Camera{
		X:        x,
		Y:        y,
		MinScale: minScale,
		MaxScale: maxScale,
		ZoomRate: DefaultZoomRate,
	}
	c.MinScale, c.MaxScale = c.limits()
	if !isFinite(scale) {
		scale = 1
	}
	c.Scale = c.clampScale(scale)
	return c
}

// limits returns the usable scale range. A Camera built as a literal has
// zero limits; those read as the defaults.
func (c *Camera) limits() (lo, hi float64) {
	lo, hi = c.MinScale, c.MaxScale
	if !isFinite(lo) || lo <= 0 {
		lo = DefaultMinScale
	}
	if !isFinite(hi) || hi < lo {
		hi = max(DefaultMaxScale, lo)
	}
	return lo, hi
}

func (c *Camera) zoomRate() float64 {
	if !isFinite(c.ZoomRate) || c.ZoomRate <= 0 {
		return DefaultZoomRate
	}
	return c.ZoomRate
}

// clampScale clamps s into the limits. NaN keeps the current scale, or 1
// when the current scale is unusable too.
func (c *Camera) clampScale(s float64) float64 {
	lo, hi := c.limits()
	if math.IsNaN(s) {
		s = c.Scale
		if !isFinite(s) || s <= 0 {
			s = 1
		}
	}
	return math.Min(hi, math.Max(lo, s))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// PanBy translates the camera by a screen-space delta. Panning is unbounded.
func (c *Camera) PanBy(dx, dy float64) {
	c.anim = nil
	c.X += dx
	c.Y += dy
}

// ZoomAt applies one wheel step anchored at the cursor. The scale changes by
// exp(-wheelDelta*ZoomRate) and is clamped. Returns false when the scale is
// already at the bound the wheel pushes toward.
func (c *Camera) ZoomAt(cursor Vec2, wheelDelta float64) bool {
	factor := math.Exp(-wheelDelta * c.zoomRate())
	return c.SetScaleAt(cursor, c.Scale*factor)
}

// SetScaleAt changes the scale while keeping the world point under the
// screen-space anchor fixed on screen. Returns false if the clamped scale
// equals the current one.
func (c *Camera) SetScaleAt(anchor Vec2, scale float64) bool {
	newScale := c.clampScale(scale)
	if newScale == c.Scale {
		return false
	}
	c.anim = nil
	if !isFinite(c.Scale) || c.Scale <= 0 {
		// Nothing to anchor against.
		c.Scale = newScale
		return true
	}
	pre := ScreenToWorld(*c, anchor)
	c.X = anchor.X - pre.X*newScale
	c.Y = anchor.Y - pre.Y*newScale
	c.Scale = newScale
	return true
}

// VisibleBounds returns the world-space rectangle covered by a viewport of
// the given pixel size.
func (c *Camera) VisibleBounds(viewport Vec2) Rect {
	tl := ScreenToWorld(*c, Vec2{})
	br := ScreenToWorld(*c, viewport)
	return Rect{X: tl.X, Y: tl.Y, Width: br.X - tl.X, Height: br.Y - tl.Y}
}

// FocusOn animates the camera so the world point ends at the center of the
// viewport, keeping the current scale. A zero duration moves immediately.
func (c *Camera) FocusOn(world, viewport Vec2, duration float32, easeFn ease.TweenFunc) {
	c.animateTo(viewport.X/2-world.X*c.Scale, viewport.Y/2-world.Y*c.Scale, c.Scale, duration, easeFn)
}

// FitRect animates the camera so the world rectangle fills the viewport
// minus padding pixels on each side, within the scale limits.
func (c *Camera) FitRect(r Rect, viewport Vec2, padding float64, duration float32, easeFn ease.TweenFunc) {
	availW := viewport.X - 2*padding
	availH := viewport.Y - 2*padding
	scale := c.Scale
	switch {
	case r.Width > 0 && r.Height > 0:
		scale = math.Min(availW/r.Width, availH/r.Height)
	case r.Width > 0:
		scale = availW / r.Width
	case r.Height > 0:
		scale = availH / r.Height
	}
	if scale <= 0 {
		scale = c.Scale
	}
	scale = c.clampScale(scale)
	center := r.Center()
	c.animateTo(viewport.X/2-center.X*scale, viewport.Y/2-center.Y*scale, scale, duration, easeFn)
}

func (c *Camera) animateTo(x, y, scale float64, duration float32, easeFn ease.TweenFunc) {
	if duration <= 0 {
		c.anim = nil
		c.X, c.Y, c.Scale = x, y, scale
		return
	}
	if easeFn == nil {
		easeFn = ease.OutCubic
	}
	a := &focusAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
		doneS:  true,
		toX:    x,
		toY:    y,
		toS:    scale,
	}
	if scale != c.Scale {
		a.tweenS = gween.New(float32(c.Scale), float32(scale), duration, easeFn)
		a.doneS = false
	}
	c.anim = a
}

// Animating reports whether a FocusOn or FitRect tween is in progress.
func (c *Camera) Animating() bool {
	return c.anim != nil
}

// Update advances an active camera tween by dt seconds. Returns true if the
// camera moved.
func (c *Camera) Update(dt float32) bool {
	a := c.anim
	if a == nil {
		return false
	}
	if !a.doneX {
		val, done := a.tweenX.Update(dt)
		c.X = float64(val)
		a.doneX = done
	}
	if !a.doneY {
		val, done := a.tweenY.Update(dt)
		c.Y = float64(val)
		a.doneY = done
	}
	if !a.doneS {
		val, done := a.tweenS.Update(dt)
		c.Scale = c.clampScale(float64(val))
		a.doneS = done
	}
	if a.doneX && a.doneY && a.doneS {
		c.X, c.Y = a.toX, a.toY
		if a.tweenS != nil {
			c.Scale = c.clampScale(a.toS)
		}
		c.anim = nil
	}
	return true
}
