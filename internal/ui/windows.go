package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/ytget/text-overlay/internal/logging"
	"github.com/ytget/text-overlay/internal/platform"
)

// Windows owns the settings window lifecycle.
type Windows struct {
	host         platform.Host
	localization *Localization
	newEditor    func() (*Editor, error)
	log          *slog.Logger
}

// NewWindows creates the window manager. newEditor builds the editor shown
// in a freshly created settings window.
func NewWindows(host platform.Host, localization *Localization, newEditor func() (*Editor, error)) *Windows {
	return &Windows{
		host:         host,
		localization: localization,
		newEditor:    newEditor,
		log:          logging.WithComponent("windows"),
	}
}

// EnsureSettingsWindow focuses the settings window if it exists and creates
// it otherwise. Repeated calls never create a second window.
func (w *Windows) EnsureSettingsWindow() {
	if win, ok := w.host.Window(SettingsWindowID); ok {
		win.Show()
		win.RequestFocus()
		return
	}

	editor, err := w.newEditor()
	if err != nil {
		w.log.Error("cannot build settings editor", "error", err)
		return
	}

	win := w.host.CreateWindow(SettingsWindowID, platform.WindowOptions{
		Title:     w.localization.GetText(KeySettings),
		Width:     SettingsWindowWidth,
		Height:    SettingsWindowHeight,
		Resizable: true,
		OnClosed:  editor.Close,
	})
	editor.SetOnClose(win.Close)
	win.SetContent(editor.Content())
	win.Show()
	w.log.Debug("settings window created")
}

// NewOverlayWindow creates the overlay window. Desktop drivers give it no
// decorations; NewRootUI makes it fullscreen.
func NewOverlayWindow(app fyne.App, title string) fyne.Window {
	if drv, ok := app.Driver().(desktop.Driver); ok {
		w := drv.CreateSplashWindow()
		w.SetTitle(title)
		return w
	}
	return app.NewWindow(title)
}
