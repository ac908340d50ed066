package company

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidHexColor = errors.New("invalid hex color")

var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// HexColor is a "#RGB" or "#RRGGBB" brand color, normalized to uppercase.
type HexColor struct {
	value string
}

func NewHexColor(s string) (HexColor, error) {
	s = strings.TrimSpace(s)
	if !hexColorRegex.MatchString(s) {
		return HexColor{}, ErrInvalidHexColor
	}
	return HexColor{value: strings.ToUpper(s)}, nil
}

func (h HexColor) Value() string {
	return h.value
}
