package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// RGBA is a color with 8-bit channels and a fractional alpha in [0, 1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

// NRGBA converts to a non-premultiplied color for the canvas.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(c.A * 255))}
}

// CSS formats the color as an rgba() value.
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// ExpandHex normalizes a hex color to the 6-digit lowercase form with a
// leading '#'. 3-digit input is expanded by doubling each digit.
func ExpandHex(hex string) (string, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	default:
		return "", fmt.Errorf("invalid hex color %q", hex)
	}
	if _, err := strconv.ParseUint(h, 16, 32); err != nil {
		return "", fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return "#" + strings.ToLower(h), nil
}

// ParseHex converts a 3- or 6-digit hex color and an opacity into RGBA.
// The opacity is clamped to [0, 1].
func ParseHex(hex string, opacity float64) (RGBA, error) {
	full, err := ExpandHex(hex)
	if err != nil {
		return RGBA{}, err
	}
	v, _ := strconv.ParseUint(full[1:], 16, 32)
	return RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: clamp01(opacity),
	}, nil
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
