package platform

// Package platform contains OS and host-window integration: durable file
// writes for the settings store and the Host that owns window lookup,
// pointer pass-through and display placement.
