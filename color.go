package nodeboard

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned by ParseColor for strings it cannot read.
var ErrInvalidColor = errors.New("invalid color")

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication happens in RGBA, so a Color can be handed directly to
// anything that accepts a color.Color.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA implements color.Color with alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	ca := clamp01(c.A)
	r = uint32(clamp01(c.R) * ca * 0xffff)
	g = uint32(clamp01(c.G) * ca * 0xffff)
	b = uint32(clamp01(c.B) * ca * 0xffff)
	a = uint32(ca * 0xffff)
	return
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// Blend mixes c toward other by t in [0, 1] in RGB space. Alpha is
// interpolated linearly.
func (c Color) Blend(other Color, t float64) Color {
	t = clamp01(t)
	mixed := colorful.Color{R: c.R, G: c.G, B: c.B}.BlendRgb(colorful.Color{R: other.R, G: other.G, B: other.B}, t)
	return Color{R: mixed.R, G: mixed.G, B: mixed.B, A: c.A + (other.A-c.A)*t}
}

// Hex returns the opaque part of c as "#rrggbb".
func (c Color) Hex() string {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Clamped().Hex()
}

// String formats c in CSS functional notation: "rgb(r, g, b)" when opaque,
// "rgba(r, g, b, a)" otherwise. Node colors are stored in this form.
func (c Color) String() string {
	r := int(math.Round(clamp01(c.R) * 255))
	g := int(math.Round(clamp01(c.G) * 255))
	b := int(math.Round(clamp01(c.B) * 255))
	a := math.Round(clamp01(c.A)*1e4) / 1e4
	if a >= 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(a, 'f', -1, 64))
}

// RGBA8 builds a Color from 8-bit channels and an alpha in [0, 1].
func RGBA8(r, g, b uint8, a float64) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: clamp01(a)}
}

// MustParseColor is like ParseColor but panics on error. Intended for
// package-level defaults built from literals.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseColor reads "#rgb", "#rgba", "#rrggbb", "#rrggbbaa", "rgb(r, g, b)"
// and "rgba(r, g, b, a)". Channels in the functional forms are 0-255, alpha
// is 0-1.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s)
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFuncColor(s, s[len("rgba("):len(s)-1])
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFuncColor(s, s[len("rgb("):len(s)-1])
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func parseHexColor(s string) (Color, error) {
	alpha := 1.0
	switch len(s) {
	case 5: // #rgba
		a, err := strconv.ParseUint(strings.Repeat(s[4:], 2), 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		alpha = float64(a) / 255
		s = s[:4]
	case 9: // #rrggbbaa
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

func parseFuncColor(orig, body string) (Color, error) {
	parts := strings.Split(body, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	var ch [4]float64
	ch[3] = 1
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
		}
		ch[i] = v
	}
	return Color{
		R: clamp01(ch[0] / 255),
		G: clamp01(ch[1] / 255),
		B: clamp01(ch[2] / 255),
		A: clamp01(ch[3]),
	}, nil
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
