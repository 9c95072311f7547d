package nodeboard

import (
	"math"
	"strconv"
	"strings"
)

// Field names an editable node property.
type Field uint8

const (
	FieldLabel Field = iota
	FieldX
	FieldY
	FieldW
	FieldH
	FieldColor
)

var fieldNames = [...]string{"label", "x", "y", "w", "h", "color"}

// String returns the field's short name.
func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "unknown"
}

// ParseField maps a short name ("x", "label", ...) back to a Field.
func ParseField(s string) (Field, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range fieldNames {
		if n == s {
			return Field(i), true
		}
	}
	return 0, false
}

// SetField writes a raw property value onto the selected node. Numbers are
// parsed leniently: surrounding space is ignored and a value that is not a
// finite number leaves the node unchanged. Width and height must also be
// positive. Colors go through ParseColor and are stored normalized.
// Returns true if the node changed.
func (b *Board) SetField(f Field, raw string) bool {
	id := b.selected
	if _, ok := b.Node(id); !ok {
		return false
	}
	if f == FieldLabel {
		return b.Patch(id, func(n *NodeData) { n.Label = raw })
	}
	if f == FieldColor {
		c, err := ParseColor(raw)
		if err != nil {
			return false
		}
		return b.SetColor(c)
	}

	v, ok := parseNumber(raw)
	if !ok {
		return false
	}
	switch f {
	case FieldX:
		return b.Patch(id, func(n *NodeData) { n.X = v })
	case FieldY:
		return b.Patch(id, func(n *NodeData) { n.Y = v })
	case FieldW, FieldH:
		if v <= 0 {
			return false
		}
		return b.Patch(id, func(n *NodeData) {
			if f == FieldW {
				n.W = v
			} else {
				n.H = v
			}
		})
	}
	return false
}

// SetColor stores c on the selected node.
func (b *Board) SetColor(c Color) bool {
	return b.Patch(b.selected, func(n *NodeData) { n.Color = c.String() })
}

func parseNumber(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
