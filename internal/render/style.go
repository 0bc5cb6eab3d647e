package render

import (
	"fmt"

	"github.com/ytget/text-overlay/internal/model"
)

// Flex keywords used for justify (horizontal) and align (vertical).
type Flex string

const (
	FlexStart  Flex = "start"
	FlexCenter Flex = "center"
	FlexEnd    Flex = "end"
)

// Margin is a directional margin in pixels.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Shadow is the resolved drop shadow.
type Shadow struct {
	Color   RGBA
	OffsetX float64
	OffsetY float64
	Blur    float64
}

// CSS formats the shadow as a text-shadow value.
func (s Shadow) CSS() string {
	return fmt.Sprintf("%s %gpx %gpx %gpx", s.Color.CSS(), s.OffsetX, s.OffsetY, s.Blur)
}

// Style is everything the overlay needs to paint one pass.
type Style struct {
	Text          string
	FontFamily    string
	FontSize      float64
	FontWeight    int
	LetterSpacing float64
	Color         RGBA

	Justify Flex
	Align   Flex
	Margin  Margin
	Shadow  Shadow

	// PassThrough is the click-through state requested from the host.
	PassThrough bool
	Display     model.Display
}

// Compute derives a Style from s. Every property is re-derived; no state from a
// previous pass is consulted. Invalid colors fall back to their defaults.
func Compute(s model.Settings) Style {
	text := s.Text
	if text == "" {
		text = model.DefaultText
	}

	h, v := s.Alignment()
	justify := JustifyFor(h)
	align := AlignFor(v)

	textColor, err := ParseHex(s.Color, 1)
	if err != nil {
		textColor, _ = ParseHex(model.DefaultColor, 1)
	}

	display := s.Display
	if !display.IsValid() {
		display = model.DefaultDisplay
	}

	return Style{
		Text:          text,
		FontFamily:    s.FontFamily,
		FontSize:      s.FontSize,
		FontWeight:    s.Weight(),
		LetterSpacing: s.LetterSpacing,
		Color:         textColor,
		Justify:       justify,
		Align:         align,
		Margin:        MarginFor(s.Padding, justify, align),
		Shadow:        ShadowFor(s.Shadow),
		PassThrough:   s.ClickThrough,
		Display:       display,
	}
}

// JustifyFor maps a horizontal alignment onto its flex keyword.
func JustifyFor(h model.HAlign) Flex {
	switch h {
	case model.HAlignLeft:
		return FlexStart
	case model.HAlignRight:
		return FlexEnd
	default:
		return FlexCenter
	}
}

// AlignFor maps a vertical alignment onto its flex keyword.
func AlignFor(v model.VAlign) Flex {
	switch v.Normalize() {
	case model.VAlignStart:
		return FlexStart
	case model.VAlignEnd:
		return FlexEnd
	default:
		return FlexCenter
	}
}

// MarginFor places the padding on the active edges: the start edge when
// aligned to start or center, the end edge when aligned to end or center.
func MarginFor(padding float64, justify, align Flex) Margin {
	var m Margin
	if justify == FlexStart || justify == FlexCenter {
		m.Left = padding
	}
	if justify == FlexEnd || justify == FlexCenter {
		m.Right = padding
	}
	if align == FlexStart || align == FlexCenter {
		m.Top = padding
	}
	if align == FlexEnd || align == FlexCenter {
		m.Bottom = padding
	}
	return m
}

// ShadowFor resolves the configured shadow group.
func ShadowFor(s model.Shadow) Shadow {
	c, err := ParseHex(s.Color, s.Opacity)
	if err != nil {
		c, _ = ParseHex(model.DefaultShadowColor, s.Opacity)
	}
	return Shadow{
		Color:   c,
		OffsetX: s.OffsetX,
		OffsetY: s.OffsetY,
		Blur:    s.Blur,
	}
}
