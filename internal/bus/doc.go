// Package bus carries typed notifications between the overlay and the
// settings editor. Delivery is synchronous in the publisher's goroutine, so a
// publish from a Fyne callback reaches every subscriber before it returns.
package bus
