package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "text-overlay.png"
)

// LoadAppIcon loads the app icon from the working directory, falling back to
// the theme's settings icon.
func LoadAppIcon() fyne.Resource {
	res, err := fyne.LoadResourceFromPath(AppIcon)
	if err != nil {
		return theme.SettingsIcon()
	}
	return res
}
