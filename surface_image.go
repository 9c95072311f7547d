package nodeboard

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// ImageSurface is a software Surface backed by a gg context. It needs no
// window or GPU, so frames can be rendered headless.
type ImageSurface struct {
	dc    *gg.Context
	ttf   *truetype.Font
	faces map[float64]font.Face
}

// NewImageSurface creates a w x h surface using the Go Mono face for text.
func NewImageSurface(w, h int) (*ImageSurface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("image surface: invalid size %dx%d", w, h)
	}
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("image surface: parse font: %w", err)
	}
	return &ImageSurface{
		dc:    gg.NewContext(w, h),
		ttf:   ttf,
		faces: make(map[float64]font.Face),
	}, nil
}

func (s *ImageSurface) face(size float64) font.Face {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(s.ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	s.faces[size] = f
	return f
}

func (s *ImageSurface) Fill(c Color) {
	s.dc.SetColor(c)
	s.dc.Clear()
}

func (s *ImageSurface) FillRect(r Rect, c Color) {
	s.dc.SetColor(c)
	s.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	s.dc.Fill()
}

func (s *ImageSurface) StrokeRect(r Rect, width float64, c Color) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	s.dc.Stroke()
}

func (s *ImageSurface) StrokeLine(l Line, width float64, c Color) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(l.From.X, l.From.Y, l.To.X, l.To.Y)
	s.dc.Stroke()
}

func (s *ImageSurface) DrawText(str string, at Vec2, size float64, c Color) {
	s.dc.SetFontFace(s.face(size))
	s.dc.SetColor(c)
	s.dc.DrawStringAnchored(str, at.X, at.Y, 0, 1)
}

func (s *ImageSurface) MeasureText(str string, size float64) (w, h float64) {
	s.dc.SetFontFace(s.face(size))
	return s.dc.MeasureString(str)
}

// Image returns the rendered image.
func (s *ImageSurface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the rendered image as PNG.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the rendered image to path.
func (s *ImageSurface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// RenderImage paints a frame for the given camera and nodes onto a new
// ImageSurface of the viewport size.
func RenderImage(cam Camera, viewport Vec2, nodes []NodeData, selected string, opts Options) (*ImageSurface, error) {
	s, err := NewImageSurface(int(viewport.X), int(viewport.Y))
	if err != nil {
		return nil, err
	}
	f := BuildFrame(cam, viewport, nodes, selected, opts)
	f.Paint(s)
	return s, nil
}
