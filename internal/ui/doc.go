package ui

// Package ui contains the Fyne windows of the text overlay: the overlay that
// paints the configured text, the settings editor that edits and broadcasts
// it, and the tray and window plumbing that connects them through the bus.
