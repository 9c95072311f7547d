package nodeboard

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"
)

// monoSource is the Go Mono face source shared by every ebiten surface.
// Loaded on first use; nil after a failed load, in which case text falls
// back to ebitenutil.DebugPrintAt.
var (
	monoSource     *text.GoTextFaceSource
	monoSourceDone bool
)

func goMonoSource() *text.GoTextFaceSource {
	if monoSourceDone {
		return monoSource
	}
	monoSourceDone = true
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[nodeboard] load Go Mono face: %v\n", err)
		return nil
	}
	monoSource = src
	return monoSource
}

// EbitenSurface draws onto an ebiten image with the vector package and
// text/v2.
type EbitenSurface struct {
	dst *ebiten.Image
}

// NewEbitenSurface wraps dst.
func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{dst: dst}
}

func (s *EbitenSurface) Fill(c Color) {
	s.dst.Fill(c)
}

func (s *EbitenSurface) FillRect(r Rect, c Color) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, true)
}

func (s *EbitenSurface) StrokeRect(r Rect, width float64, c Color) {
	vector.StrokeRect(s.dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), float32(width), c, true)
}

func (s *EbitenSurface) StrokeLine(l Line, width float64, c Color) {
	vector.StrokeLine(s.dst, float32(l.From.X), float32(l.From.Y), float32(l.To.X), float32(l.To.Y), float32(width), c, false)
}

func (s *EbitenSurface) DrawText(str string, at Vec2, size float64, c Color) {
	src := goMonoSource()
	if src == nil {
		ebitenutil.DebugPrintAt(s.dst, str, int(at.X), int(at.Y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, str, &text.GoTextFace{Source: src, Size: size}, op)
}

func (s *EbitenSurface) MeasureText(str string, size float64) (w, h float64) {
	src := goMonoSource()
	if src == nil {
		// DebugPrint glyphs are 6x16.
		return float64(6 * len(str)), 16
	}
	return text.Measure(str, &text.GoTextFace{Source: src, Size: size}, size*lineHeightFactor)
}
