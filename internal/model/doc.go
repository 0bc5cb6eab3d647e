package model

// Package model defines the overlay's canonical data: the persisted Settings
// record with its defaults, and the alignment, position and display enums that
// the renderer and the settings editor share. Structures are plain values so a
// change always produces a complete new Settings.
