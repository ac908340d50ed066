package profile

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrEmptyFullName     = errors.New("full name is required")
	ErrInvalidSlotLabel  = errors.New("invalid slot label")
	ErrInvalidAccessCode = errors.New("invalid access code")
)

var (
	emailRegex     = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	slotLabelRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// ValidSlotLabel reports whether s is a well-formed "HH:MM" label.
// Membership in a specific attendee's declared availability is a
// separate check; this only guards shape.
func ValidSlotLabel(s string) bool {
	return slotLabelRegex.MatchString(s)
}
