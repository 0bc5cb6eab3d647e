// Package fonts holds the font manifest and the resolver that keeps exactly
// one active face set installed for the family the overlay paints with.
package fonts
