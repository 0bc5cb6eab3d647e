package ui

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/text-overlay/internal/render"
)

// Weight from which the theme's bold face is used when no font file is loaded
const boldWeightThreshold = 600

// OverlayText paints a render.Style: the text with its letter spacing, a drop
// shadow behind it, placed inside its area by the style's flex keywords and
// margin. It implements no input interfaces, so pointer events fall through.
type OverlayText struct {
	widget.BaseWidget

	mu    sync.RWMutex
	style render.Style
	font  fyne.Resource
}

// NewOverlayText creates an empty overlay text widget
func NewOverlayText() *OverlayText {
	t := &OverlayText{}
	t.ExtendBaseWidget(t)
	return t
}

// SetStyle replaces the painted style. font may be nil to use the theme font.
func (t *OverlayText) SetStyle(style render.Style, font fyne.Resource) {
	t.mu.Lock()
	t.style = style
	t.font = font
	t.mu.Unlock()
	t.Refresh()
}

// Style returns the style currently painted
func (t *OverlayText) Style() render.Style {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.style
}

// CreateRenderer implements fyne.Widget
func (t *OverlayText) CreateRenderer() fyne.WidgetRenderer {
	r := &overlayTextRenderer{text: t}
	r.rebuild()
	return r
}

type overlayTextRenderer struct {
	text    *OverlayText
	glyphs  []*canvas.Text
	shadows []*canvas.Text
	objects []fyne.CanvasObject

	sizes    []fyne.Size
	spacing  float32
	textSize fyne.Size
}

// segments splits the text into runs that are measured and placed separately.
// Without letter spacing the text is one run so the shaper keeps kerning.
func segments(text string, spacing float64) []string {
	if spacing == 0 {
		return []string{text}
	}
	runes := []rune(text)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}

func (r *overlayTextRenderer) rebuild() {
	r.text.mu.RLock()
	style := r.text.style
	font := r.text.font
	r.text.mu.RUnlock()

	parts := segments(style.Text, style.LetterSpacing)
	textStyle := fyne.TextStyle{Bold: font == nil && style.FontWeight >= boldWeightThreshold}
	size := float32(style.FontSize)
	fill := style.Color.NRGBA()
	shadowFill := style.Shadow.Color.NRGBA()

	r.glyphs = make([]*canvas.Text, 0, len(parts))
	r.shadows = make([]*canvas.Text, 0, len(parts))
	r.sizes = make([]fyne.Size, 0, len(parts))
	r.objects = make([]fyne.CanvasObject, 0, 2*len(parts))

	for _, part := range parts {
		r.shadows = append(r.shadows, newGlyph(part, size, textStyle, font, shadowFill))
		r.glyphs = append(r.glyphs, newGlyph(part, size, textStyle, font, fill))
		r.sizes = append(r.sizes, measure(part, size, textStyle, font))
	}
	// shadows first so they are drawn underneath
	for _, s := range r.shadows {
		r.objects = append(r.objects, s)
	}
	for _, g := range r.glyphs {
		r.objects = append(r.objects, g)
	}

	r.spacing = float32(style.LetterSpacing)
	r.textSize = fyne.Size{}
	for i, s := range r.sizes {
		r.textSize.Width += s.Width
		if i > 0 {
			r.textSize.Width += r.spacing
		}
		if s.Height > r.textSize.Height {
			r.textSize.Height = s.Height
		}
	}
}

func newGlyph(text string, size float32, style fyne.TextStyle, font fyne.Resource, fill color.Color) *canvas.Text {
	g := canvas.NewText(text, fill)
	g.TextSize = size
	g.TextStyle = style
	g.FontSource = font
	return g
}

func measure(text string, size float32, style fyne.TextStyle, font fyne.Resource) fyne.Size {
	if app := fyne.CurrentApp(); app != nil && app.Driver() != nil {
		s, _ := app.Driver().RenderedTextSize(text, size, style, font)
		return s
	}
	return fyne.MeasureText(text, size, style)
}

// origin returns the top-left corner of the text block inside area.
func origin(area, text fyne.Size, style render.Style) fyne.Position {
	m := style.Margin
	var x, y float32
	switch style.Justify {
	case render.FlexStart:
		x = float32(m.Left)
	case render.FlexEnd:
		x = area.Width - float32(m.Right) - text.Width
	default:
		inner := area.Width - float32(m.Left) - float32(m.Right)
		x = float32(m.Left) + (inner-text.Width)/2
	}
	switch style.Align {
	case render.FlexStart:
		y = float32(m.Top)
	case render.FlexEnd:
		y = area.Height - float32(m.Bottom) - text.Height
	default:
		inner := area.Height - float32(m.Top) - float32(m.Bottom)
		y = float32(m.Top) + (inner-text.Height)/2
	}
	return fyne.NewPos(x, y)
}

func (r *overlayTextRenderer) Layout(size fyne.Size) {
	style := r.text.Style()
	pos := origin(size, r.textSize, style)
	dx, dy := float32(style.Shadow.OffsetX), float32(style.Shadow.OffsetY)

	x := pos.X
	for i, g := range r.glyphs {
		s := r.sizes[i]
		g.Move(fyne.NewPos(x, pos.Y))
		g.Resize(s)
		r.shadows[i].Move(fyne.NewPos(x+dx, pos.Y+dy))
		r.shadows[i].Resize(s)
		x += s.Width + r.spacing
	}
}

func (r *overlayTextRenderer) MinSize() fyne.Size {
	m := r.text.Style().Margin
	return fyne.NewSize(
		r.textSize.Width+float32(m.Left+m.Right),
		r.textSize.Height+float32(m.Top+m.Bottom),
	)
}

func (r *overlayTextRenderer) Refresh() {
	r.rebuild()
	r.Layout(r.text.Size())
	canvas.Refresh(r.text)
}

func (r *overlayTextRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *overlayTextRenderer) Destroy() {}
