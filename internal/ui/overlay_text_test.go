package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/text-overlay/internal/model"
	"github.com/ytget/text-overlay/internal/render"
)

func renderText(t *testing.T, s model.Settings) (*OverlayText, *overlayTextRenderer) {
	t.Helper()
	test.NewApp()

	text := NewOverlayText()
	text.SetStyle(render.Compute(s), nil)
	r, ok := text.CreateRenderer().(*overlayTextRenderer)
	require.True(t, ok)
	return text, r
}

func TestSegments(t *testing.T) {
	assert.Equal(t, []string{"héllo"}, segments("héllo", 0))
	assert.Equal(t, []string{"h", "é", "y"}, segments("héy", 2))
}

func TestOverlayText_StartAlignment(t *testing.T) {
	s := model.DefaultSettings()
	s.Text = "ab"
	s.HAlign = model.HAlignLeft
	s.VAlign = model.VAlignStart
	s.Padding = 10
	s.LetterSpacing = 3
	s.Shadow.OffsetX = 2
	s.Shadow.OffsetY = 5

	_, r := renderText(t, s)
	require.Len(t, r.glyphs, 2)
	require.Len(t, r.Objects(), 4)

	r.Layout(fyne.NewSize(800, 600))

	first, second := r.glyphs[0], r.glyphs[1]
	assert.Equal(t, fyne.NewPos(10, 10), first.Position())
	assert.Equal(t, first.Position().X+r.sizes[0].Width+3, second.Position().X)
	assert.Equal(t, fyne.NewPos(12, 15), r.shadows[0].Position())
}

func TestOverlayText_EndAlignment(t *testing.T) {
	s := model.DefaultSettings()
	s.Text = "end"
	s.HAlign = model.HAlignRight
	s.VAlign = model.VAlignEnd
	s.Padding = 20

	_, r := renderText(t, s)
	require.Len(t, r.glyphs, 1)

	area := fyne.NewSize(800, 600)
	r.Layout(area)

	pos := r.glyphs[0].Position()
	assert.InDelta(t, area.Width-20-r.textSize.Width, pos.X, 0.01)
	assert.InDelta(t, area.Height-20-r.textSize.Height, pos.Y, 0.01)
}

func TestOverlayText_Colors(t *testing.T) {
	s := model.DefaultSettings()
	s.Color = "#0f0"
	s.Shadow.Color = "#000000"
	s.Shadow.Opacity = 0.5

	_, r := renderText(t, s)
	assert.Equal(t, render.RGBA{G: 255, A: 1}.NRGBA(), r.glyphs[0].Color)
	assert.Equal(t, render.RGBA{A: 0.5}.NRGBA(), r.shadows[0].Color)
}

func TestOverlayText_BoldFallback(t *testing.T) {
	s := model.DefaultSettings()
	s.FontWeight = "700"
	_, r := renderText(t, s)
	assert.True(t, r.glyphs[0].TextStyle.Bold)

	s.FontWeight = "400"
	_, r = renderText(t, s)
	assert.False(t, r.glyphs[0].TextStyle.Bold)
}

func TestOverlayText_MinSizeIncludesMargin(t *testing.T) {
	s := model.DefaultSettings()
	s.HAlign = model.HAlignCenter
	s.VAlign = model.VAlignCenter
	s.Padding = 8

	_, r := renderText(t, s)
	min := r.MinSize()
	assert.InDelta(t, r.textSize.Width+16, min.Width, 0.01)
	assert.InDelta(t, r.textSize.Height+16, min.Height, 0.01)
}
