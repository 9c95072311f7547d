package nodeboard

import (
	"errors"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#f00", Color{1, 0, 0, 1}},
		{"#00ff00", Color{0, 1, 0, 1}},
		{"#0000ff80", Color{0, 0, 1, 128.0 / 255}},
		{"#fff0", Color{1, 1, 1, 0}},
		{"rgb(255, 0, 0)", Color{1, 0, 0, 1}},
		{"rgba(0, 0, 255, 0.12)", Color{0, 0, 1, 0.12}},
		{"  RGBA(255,255,255,0.5) ", Color{1, 1, 1, 0.5}},
		{"rgba(300, -4, 0, 2)", Color{1, 0, 0, 1}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if !approxEqual(got.R, tt.want.R, 1e-6) || !approxEqual(got.G, tt.want.G, 1e-6) ||
			!approxEqual(got.B, tt.want.B, 1e-6) || !approxEqual(got.A, tt.want.A, 1e-6) {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "red", "#12", "#gggggg", "rgb(1, 2)", "rgb(a, b, c)", "rgba(1, 2, 3, NaN)", "hsl(0, 0%, 0%)"} {
		_, err := ParseColor(in)
		if !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestColorStringRoundTrip(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Color{1, 0, 0, 1}, "rgb(255, 0, 0)"},
		{RGBA8(255, 0, 0, 0.12), "rgba(255, 0, 0, 0.12)"},
		{RGBA8(0, 0, 255, 0.5), "rgba(0, 0, 255, 0.5)"},
		{Color{0.5, 0.5, 0.5, 0}, "rgba(128, 128, 128, 0)"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		back, err := ParseColor(tt.want)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tt.want, err)
		}
		if back.String() != tt.want {
			t.Errorf("round trip %q -> %q", tt.want, back.String())
		}
	}
}

func TestColorRGBAPremultiplied(t *testing.T) {
	half, quarter := 0.5, 0.25
	r, g, b, a := Color{1, 0.5, 0, 0.5}.RGBA()
	if a != uint32(half*0xffff) {
		t.Errorf("a = %d", a)
	}
	if r != a {
		t.Errorf("r = %d, want %d", r, a)
	}
	if g != uint32(quarter*0xffff) || b != 0 {
		t.Errorf("g, b = %d, %d", g, b)
	}
}

func TestColorBlendAndHex(t *testing.T) {
	black := Color{0, 0, 0, 0}
	white := Color{1, 1, 1, 1}
	mid := black.Blend(white, 0.5)
	if !approxEqual(mid.R, 0.5, 1e-9) || !approxEqual(mid.A, 0.5, 1e-9) {
		t.Errorf("Blend = %+v", mid)
	}
	if got := black.Blend(white, 2); got != white {
		t.Errorf("Blend clamps t: %+v", got)
	}
	if got := (Color{1, 0, 0, 0.3}).Hex(); got != "#ff0000" {
		t.Errorf("Hex = %q", got)
	}
	if got := white.WithAlpha(-1).A; got != 0 {
		t.Errorf("WithAlpha(-1).A = %v", got)
	}
}

func TestMustParseColorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseColor did not panic")
		}
	}()
	MustParseColor("nope")
}
