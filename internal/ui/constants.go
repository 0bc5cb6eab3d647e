package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window identifiers registered with the host
const (
	OverlayWindowID  = "overlay"
	SettingsWindowID = "settings"
)

// Settings window sizing
const (
	SettingsWindowWidth  float32 = 420
	SettingsWindowHeight float32 = 640
)

// Text fragments
const (
	DashPlaceholder = "—"
)

// Editor input ranges
const (
	OpacityMin = 0.0
	OpacityMax = 1.0
)
