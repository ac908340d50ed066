// Package accesscode generates the opaque bearer credentials attendees
// use for every public networking action. Codes are URL-safe so they can
// travel in links and query strings.
package accesscode

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Uppercase-only alphabet: codes are read aloud at registration desks
// and typed from printed badges.
const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	Length   = 12
)

// New returns a fresh attendee access code. 36^12 > 2^62, comfortably
// above the 8 bytes of entropy the credential scheme requires.
func New() (string, error) {
	return gonanoid.Generate(alphabet, Length)
}

// NewEventCode returns a short public identifier for an event. Event
// codes are not secrets; they appear in registration URLs.
func NewEventCode() (string, error) {
	return gonanoid.Generate(alphabet, 8)
}
