package model

import "fmt"

// HAlign is the horizontal alignment of the overlay text
type HAlign string

const (
	HAlignLeft   HAlign = "left"
	HAlignCenter HAlign = "center"
	HAlignRight  HAlign = "right"
)

// VAlign is the vertical alignment of the overlay text
type VAlign string

const (
	VAlignStart  VAlign = "start"
	VAlignCenter VAlign = "center"
	VAlignEnd    VAlign = "end"
)

// Display names the monitor the overlay is placed on
type Display string

const (
	DisplayPrimary   Display = "primary"
	DisplaySecondary Display = "secondary"
)

// Position is a 9-way placement token. The first character is the vertical
// component (t, c, b), the last one the horizontal component (l, c, r).
type Position string

const (
	PositionTopLeft      Position = "tl"
	PositionTopCenter    Position = "tc"
	PositionTopRight     Position = "tr"
	PositionCenterLeft   Position = "cl"
	PositionCenter       Position = "cc"
	PositionCenterRight  Position = "cr"
	PositionBottomLeft   Position = "bl"
	PositionBottomCenter Position = "bc"
	PositionBottomRight  Position = "br"
)

// String returns the string representation of HAlign
func (h HAlign) String() string {
	return string(h)
}

// String returns the string representation of VAlign
func (v VAlign) String() string {
	return string(v)
}

// String returns the string representation of Display
func (d Display) String() string {
	return string(d)
}

// Normalize maps the flex spellings (flex-start, flex-end) onto start/end.
// Unknown values are returned unchanged.
func (v VAlign) Normalize() VAlign {
	switch v {
	case "flex-start":
		return VAlignStart
	case "flex-end":
		return VAlignEnd
	}
	return v
}

// IsValid reports whether h is one of the known horizontal alignments
func (h HAlign) IsValid() bool {
	return h == HAlignLeft || h == HAlignCenter || h == HAlignRight
}

// IsValid reports whether v, after normalization, is a known vertical alignment
func (v VAlign) IsValid() bool {
	n := v.Normalize()
	return n == VAlignStart || n == VAlignCenter || n == VAlignEnd
}

// IsValid reports whether d is a known display target
func (d Display) IsValid() bool {
	return d == DisplayPrimary || d == DisplaySecondary
}

// Split decomposes the position token into its alignment pair.
func (p Position) Split() (HAlign, VAlign, error) {
	if len(p) < 2 {
		return "", "", fmt.Errorf("invalid position %q", string(p))
	}

	var h HAlign
	switch p[len(p)-1] {
	case 'l':
		h = HAlignLeft
	case 'c':
		h = HAlignCenter
	case 'r':
		h = HAlignRight
	default:
		return "", "", fmt.Errorf("invalid horizontal component in position %q", string(p))
	}

	var v VAlign
	switch p[0] {
	case 't':
		v = VAlignStart
	case 'c':
		v = VAlignCenter
	case 'b':
		v = VAlignEnd
	default:
		return "", "", fmt.Errorf("invalid vertical component in position %q", string(p))
	}

	return h, v, nil
}

// HAlignOptions returns the horizontal alignments in display order
func HAlignOptions() []HAlign {
	return []HAlign{HAlignLeft, HAlignCenter, HAlignRight}
}

// VAlignOptions returns the vertical alignments in display order
func VAlignOptions() []VAlign {
	return []VAlign{VAlignStart, VAlignCenter, VAlignEnd}
}

// DisplayOptions returns the supported display targets
func DisplayOptions() []Display {
	return []Display{DisplayPrimary, DisplaySecondary}
}

// PositionOptions returns every 9-way token, row by row from the top left
func PositionOptions() []Position {
	return []Position{
		PositionTopLeft, PositionTopCenter, PositionTopRight,
		PositionCenterLeft, PositionCenter, PositionCenterRight,
		PositionBottomLeft, PositionBottomCenter, PositionBottomRight,
	}
}
