// Package render derives every visual property of the overlay from a
// model.Settings value: flex keywords, directional margin, shadow color and
// the host requests. Compute is pure; painting happens in package ui.
package render
