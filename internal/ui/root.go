package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"

	"github.com/ytget/text-overlay/internal/bus"
	"github.com/ytget/text-overlay/internal/config"
	"github.com/ytget/text-overlay/internal/fonts"
	"github.com/ytget/text-overlay/internal/logging"
	"github.com/ytget/text-overlay/internal/model"
	"github.com/ytget/text-overlay/internal/platform"
)

// RootUI wires the overlay window, the settings window and the tray together
// through one bus and one settings store.
type RootUI struct {
	app          fyne.App
	window       fyne.Window
	host         *platform.FyneHost
	bus          *bus.Bus
	store        *config.Store
	overlay      *Overlay
	windows      *Windows
	localization *Localization
	origin       uuid.UUID
	log          *slog.Logger
	unsubscribe  func()
}

// NewRootUI binds the overlay to window, paints the stored settings and
// starts listening for bus events.
func NewRootUI(window fyne.Window, app fyne.App, store *config.Store, resolver *fonts.Resolver, source FontSource, localization *Localization) *RootUI {
	if localization == nil {
		localization = NewLocalization()
	}

	host := platform.NewFyneHost(app)
	host.Register(OverlayWindowID, window, nil)

	ui := &RootUI{
		app:          app,
		window:       window,
		host:         host,
		bus:          bus.New(),
		store:        store,
		localization: localization,
		origin:       bus.NewOrigin(),
		log:          logging.WithComponent("root"),
	}

	ui.overlay = NewOverlay(host, resolver, source)
	ui.windows = NewWindows(host, localization, func() (*Editor, error) {
		var manifest *fonts.Manifest
		if resolver != nil {
			manifest = resolver.Manifest()
		}
		return NewEditor(app, store, ui.bus, manifest, localization)
	})

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetMaster()
	window.SetPadded(false)
	window.SetFullScreen(true)
	ui.overlay.Bind(window)

	ui.unsubscribe = ui.bus.Subscribe(ui.onEvent)
	ui.overlay.Apply(store.Load())

	// Without a tray the undecorated overlay has no way to reach the editor.
	if !ui.setupTray() {
		ui.windows.EnsureSettingsWindow()
	}

	ui.log.Info("overlay ready")
	return ui
}

func (ui *RootUI) onEvent(ev bus.Event) {
	switch e := ev.(type) {
	case bus.SettingsChanged:
		ui.overlay.Apply(e.Settings)
	case bus.ShowSettings:
		ui.windows.EnsureSettingsWindow()
	}
}

// ResetSettings persists and broadcasts the defaults
func (ui *RootUI) ResetSettings() {
	defaults := model.DefaultSettings()
	if err := ui.store.Save(defaults); err != nil {
		ui.log.Warn("settings not persisted", "error", err)
	}
	ui.bus.PublishSettings(ui.origin, defaults)
}

// ShowSettings requests the settings window through the bus
func (ui *RootUI) ShowSettings() {
	ui.bus.Publish(bus.ShowSettings{})
}

// Bus returns the shared event bus
func (ui *RootUI) Bus() *bus.Bus {
	return ui.bus
}

// Overlay returns the overlay renderer
func (ui *RootUI) Overlay() *Overlay {
	return ui.overlay
}

// Host returns the window host
func (ui *RootUI) Host() *platform.FyneHost {
	return ui.host
}

// Window returns the overlay window
func (ui *RootUI) Window() fyne.Window {
	return ui.window
}

// Close stops listening for bus events
func (ui *RootUI) Close() {
	if ui.unsubscribe != nil {
		ui.unsubscribe()
		ui.unsubscribe = nil
	}
}
