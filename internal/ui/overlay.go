package ui

import (
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/text-overlay/internal/fonts"
	"github.com/ytget/text-overlay/internal/logging"
	"github.com/ytget/text-overlay/internal/model"
	"github.com/ytget/text-overlay/internal/platform"
	"github.com/ytget/text-overlay/internal/render"
)

// FontSource returns the loaded font resource for a family and weight, or nil.
type FontSource interface {
	Font(family string, weight int) fyne.Resource
}

// Overlay paints settings onto its text widget.
type Overlay struct {
	host     platform.Host
	resolver *fonts.Resolver
	fonts    FontSource
	log      *slog.Logger

	mu      sync.Mutex
	text    *OverlayText
	current model.Settings
}

// NewOverlay creates an overlay that is not yet bound to a window
func NewOverlay(host platform.Host, resolver *fonts.Resolver, source FontSource) *Overlay {
	return &Overlay{
		host:     host,
		resolver: resolver,
		fonts:    source,
		log:      logging.WithComponent("overlay"),
	}
}

// Bind makes w the render target.
func (o *Overlay) Bind(w fyne.Window) {
	text := NewOverlayText()

	o.mu.Lock()
	o.text = text
	o.mu.Unlock()

	w.SetContent(container.NewThemeOverride(text, NewOverlayTheme()))
	w.SetPadded(false)
}

// Apply re-derives every visual property from s and paints it. Without a
// bound render target the pass is skipped.
func (o *Overlay) Apply(s model.Settings) {
	o.mu.Lock()
	text := o.text
	o.current = s
	o.mu.Unlock()

	if text == nil {
		o.log.Debug("no render target, skipping pass")
		return
	}

	style := render.Compute(s)

	var font fyne.Resource
	if !s.IsSystemFont() {
		if o.resolver != nil {
			o.resolver.EnsureLoaded(style.FontFamily)
		}
		if o.fonts != nil {
			font = o.fonts.Font(style.FontFamily, style.FontWeight)
		}
	}
	text.SetStyle(style, font)

	o.notifyHost(style)
}

// Current returns the settings last passed to Apply
func (o *Overlay) Current() model.Settings {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

// Text returns the bound text widget, or nil
func (o *Overlay) Text() *OverlayText {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.text
}

func (o *Overlay) notifyHost(style render.Style) {
	if o.host == nil {
		return
	}
	if err := o.host.SetPassThrough(OverlayWindowID, style.PassThrough); err != nil {
		o.log.Debug("host ignored pass-through request", "enabled", style.PassThrough, "error", err)
	}
	if err := o.host.SetDisplay(OverlayWindowID, style.Display); err != nil {
		o.log.Debug("host ignored display request", "display", style.Display, "error", err)
	}
}
