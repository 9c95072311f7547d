package nodeboard

import (
	"fmt"
	"math"
)

// Node card styling in screen pixels.
const (
	nodePadding      = 12.0
	nodeBorderWidth  = 1.0
	nodeGlowWidth    = 4.0
	labelBaseSize    = 14.0
	labelMinSize     = 12.0
	captionBaseSize  = 12.0
	captionMinSize   = 10.0
	captionGap       = 6.0
	lineHeightFactor = 1.2

	hudMargin   = 12.0
	hudPadX     = 10.0
	hudPadY     = 6.0
	hudTextSize = 12.0
)

var (
	nodeFill         = Color{R: 1, G: 1, B: 1, A: 0.06}
	nodeFillSelected = RGBA8(80, 160, 255, 0.15)
	nodeBorder       = Color{R: 1, G: 1, B: 1, A: 0.12}
	labelColor       = Color{R: 1, G: 1, B: 1, A: 0.8}
	captionColor     = Color{R: 1, G: 1, B: 1, A: 0.6}
	hudBackground    = RGBA8(11, 15, 25, 0.6)
	hudBorder        = RGBA8(0x1b, 0x24, 0x40, 1)
	hudText          = RGBA8(0xc9, 0xd4, 0xff, 1)
	fallbackColor    = RGBA8(255, 0, 0, 0.12)
)

// TextItem is a line of text placed in screen space.
type TextItem struct {
	Text  string
	At    Vec2
	Size  float64
	Color Color
}

// NodeVisual is everything needed to draw one node card.
type NodeVisual struct {
	ID       string
	Selected bool
	// Center is the node center in screen space; Box is centered on it.
	Center      Vec2
	Box         Rect
	Fill        Color
	Border      Color
	BorderWidth float64
	// GlowWidth is zero for unselected nodes.
	Glow      Color
	GlowWidth float64
	Label     TextItem
	Caption   TextItem
}

// NodeVisuals computes screen-space cards for nodes under cam. Only the node
// whose id equals selected gets the colored border and glow.
func NodeVisuals(cam Camera, nodes []NodeData, selected string) []NodeVisual {
	out := make([]NodeVisual, 0, len(nodes))
	labelSize := math.Max(labelMinSize, labelBaseSize*cam.Scale)
	captionSize := math.Max(captionMinSize, captionBaseSize*cam.Scale)

	for _, n := range nodes {
		center := WorldToScreen(cam, Vec2{n.X, n.Y})
		w, h := n.W*cam.Scale, n.H*cam.Scale
		box := Rect{X: center.X - w/2, Y: center.Y - h/2, Width: w, Height: h}

		v := NodeVisual{
			ID:          n.ID,
			Center:      center,
			Box:         box,
			Fill:        nodeFill,
			Border:      nodeBorder,
			BorderWidth: nodeBorderWidth,
		}
		if n.ID != "" && n.ID == selected {
			accent, err := ParseColor(n.Color)
			if err != nil {
				accent = fallbackColor
			}
			v.Selected = true
			v.Fill = nodeFillSelected
			v.Border = accent
			v.Glow = accent
			v.GlowWidth = nodeGlowWidth
		}

		textX := box.X + nodePadding
		labelY := box.Y + nodePadding
		v.Label = TextItem{Text: n.DisplayLabel(), At: Vec2{textX, labelY}, Size: labelSize, Color: labelColor}
		v.Caption = TextItem{
			Text:  fmt.Sprintf("(%.0f, %.0f)", n.X, n.Y),
			At:    Vec2{textX, labelY + labelSize*lineHeightFactor + captionGap},
			Size:  captionSize,
			Color: captionColor,
		}
		out = append(out, v)
	}
	return out
}

// HUDText formats the overlay line: scale, camera offset, and the selected
// node's label when one is selected and present.
func HUDText(cam Camera, nodes []NodeData, selected string) string {
	s := fmt.Sprintf("scale: %.2f | cam: %.0f,%.0f", cam.Scale, cam.X, cam.Y)
	if selected == "" {
		return s
	}
	for _, n := range nodes {
		if n.ID == selected {
			return s + " | selected: " + n.Label
		}
	}
	return s
}

// Frame is one fully derived picture of the canvas. It owns no state beyond
// what BuildFrame computed from the camera and nodes.
type Frame struct {
	Size       Vec2
	Background Color
	GridColor  Color
	Grid       []Line
	Nodes      []NodeVisual
	// HUD is empty when the overlay is hidden.
	HUD string
}

// BuildFrame derives the frame for a viewport of the given pixel size.
func BuildFrame(cam Camera, viewport Vec2, nodes []NodeData, selected string, opts Options) Frame {
	opts = opts.withDefaults()
	f := Frame{
		Size:       viewport,
		Background: opts.Background,
		GridColor:  opts.GridColor,
		Grid:       GridLines(cam, viewport, opts.GridSize),
		Nodes:      NodeVisuals(cam, nodes, selected),
	}
	if !opts.HideHUD {
		f.HUD = HUDText(cam, nodes, selected)
	}
	return f
}

// Paint draws the frame: background, grid behind nodes, node cards, HUD.
func (f *Frame) Paint(s Surface) {
	s.Fill(f.Background)
	for _, l := range f.Grid {
		s.StrokeLine(l, 1, f.GridColor)
	}
	for i := range f.Nodes {
		paintNode(s, &f.Nodes[i])
	}
	if f.HUD != "" {
		paintHUD(s, f.HUD, f.Size)
	}
}

func paintNode(s Surface, v *NodeVisual) {
	if v.GlowWidth > 0 {
		g := v.GlowWidth
		ring := Rect{X: v.Box.X - g/2, Y: v.Box.Y - g/2, Width: v.Box.Width + g, Height: v.Box.Height + g}
		s.StrokeRect(ring, g, v.Glow)
	}
	s.FillRect(v.Box, v.Fill)
	s.StrokeRect(v.Box, v.BorderWidth, v.Border)
	drawText(s, v.Label)
	drawText(s, v.Caption)
}

func drawText(s Surface, t TextItem) {
	if t.Text == "" {
		return
	}
	s.DrawText(t.Text, t.At, t.Size, t.Color)
}

func paintHUD(s Surface, msg string, size Vec2) {
	w, h := s.MeasureText(msg, hudTextSize)
	box := Rect{
		X:      hudMargin,
		Y:      size.Y - hudMargin - h - 2*hudPadY,
		Width:  w + 2*hudPadX,
		Height: h + 2*hudPadY,
	}
	s.FillRect(box, hudBackground)
	s.StrokeRect(box, 1, hudBorder)
	s.DrawText(msg, Vec2{box.X + hudPadX, box.Y + hudPadY}, hudTextSize, hudText)
}
