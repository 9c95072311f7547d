package nodeboard

// Option defaults.
const (
	DefaultGridSize     = 40.0  // world units between grid lines
	DefaultWheelStep    = 100.0 // wheel pixels per ebiten wheel tick
	DefaultSnapDuration = 0.12  // seconds
)

// DefaultBackground is the canvas clear color (#0b0f19).
var DefaultBackground = Color{R: 11.0 / 255, G: 15.0 / 255, B: 25.0 / 255, A: 1}

// DefaultGridColor is the grid line color, a faint white.
var DefaultGridColor = Color{R: 1, G: 1, B: 1, A: 0.06}

// DefaultCamera is the camera every editor starts with.
var DefaultCamera = Vec2{X: 200, Y: 120}

// Options configures an Editor. Every field is independently overridable;
// zero values take the defaults.
type Options struct {
	MinScale float64
	MaxScale float64
	// GridSize is the world-space spacing of grid lines.
	GridSize   float64
	Background Color
	GridColor  Color
	// ZoomRate is the exponent per wheel pixel: scale *= exp(-delta*ZoomRate).
	ZoomRate float64
	// WheelStep converts ebiten wheel ticks into wheel pixels.
	WheelStep float64

	// InitialCamera is the screen offset of the world origin at start.
	// nil means DefaultCamera.
	InitialCamera *Vec2
	InitialScale  float64

	// SnapToGrid moves a released node to the nearest grid intersection.
	SnapToGrid bool
	// SnapDuration is the snap animation length in seconds. Negative snaps
	// instantly.
	SnapDuration float32

	// HideHUD turns off the scale/camera/selection overlay.
	HideHUD bool
	ShowFPS bool
	Debug   bool
}

// DefaultOptions returns the defaults.
func DefaultOptions() Options {
	return Options{}.withDefaults()
}

// withDefaults fills unset fields. Non-positive and non-finite numbers
// count as unset.
func (o Options) withDefaults() Options {
	if !positive(o.MinScale) {
		o.MinScale = DefaultMinScale
	}
	if !positive(o.MaxScale) {
		o.MaxScale = DefaultMaxScale
	}
	if o.MaxScale < o.MinScale {
		o.MaxScale = o.MinScale
	}
	if !positive(o.GridSize) {
		o.GridSize = DefaultGridSize
	}
	if o.Background == (Color{}) {
		o.Background = DefaultBackground
	}
	if o.GridColor == (Color{}) {
		o.GridColor = DefaultGridColor
	}
	if !positive(o.ZoomRate) {
		o.ZoomRate = DefaultZoomRate
	}
	if !positive(o.WheelStep) {
		o.WheelStep = DefaultWheelStep
	}
	if o.InitialCamera == nil || !isFinite(o.InitialCamera.X) || !isFinite(o.InitialCamera.Y) {
		c := DefaultCamera
		o.InitialCamera = &c
	}
	if !positive(o.InitialScale) {
		o.InitialScale = 1
	}
	if o.SnapDuration == 0 || !isFinite(float64(o.SnapDuration)) {
		o.SnapDuration = DefaultSnapDuration
	}
	return o
}

func positive(v float64) bool {
	return isFinite(v) && v > 0
}
