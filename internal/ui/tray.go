package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/ytget/text-overlay/internal/bus"
)

// setupTray installs the system tray menu on desktop drivers. It reports
// whether a tray is available.
func (ui *RootUI) setupTray() bool {
	desk, ok := ui.app.(desktop.App)
	if !ok {
		return false
	}

	menu := fyne.NewMenu(ui.localization.GetText(KeyAppTitle),
		fyne.NewMenuItem(ui.localization.GetText(KeySettings), func() {
			ui.bus.Publish(bus.ShowSettings{})
		}),
		fyne.NewMenuItem(ui.localization.GetText(KeyReset), ui.ResetSettings),
	)
	desk.SetSystemTrayMenu(menu)
	desk.SetSystemTrayIcon(LoadAppIcon())
	return true
}
