package event

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInvalidTimeOfDay        = errors.New("invalid time of day")
	ErrNegativeNetworkingHours = errors.New("networking hours cannot be negative")
)

var timeOfDayRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// TimeOfDay is a wall-clock time with minute precision, detached from
// any date. Events are single-day, so dates live on the event itself.
type TimeOfDay struct {
	minutes int // minutes since midnight
}

func NewTimeOfDay(s string) (TimeOfDay, error) {
	if !timeOfDayRegex.MatchString(s) {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	parts := strings.SplitN(s, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return TimeOfDay{minutes: h*60 + m}, nil
}

func ReconstructTimeOfDay(minutes int) TimeOfDay {
	return TimeOfDay{minutes: minutes}
}

func (t TimeOfDay) Minutes() int { return t.minutes }

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.minutes < other.minutes }

// String renders "HH:MM". Minutes past midnight wrap, matching how
// networking windows that cross midnight label their slots.
func (t TimeOfDay) String() string {
	m := t.minutes % (24 * 60)
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// NetworkingHours is the configured length of the networking block in
// hours, with one decimal place of precision. Stored as tenths to avoid
// float drift in slot math.
type NetworkingHours struct {
	tenths int
}

func NewNetworkingHours(hours float64) (NetworkingHours, error) {
	if hours < 0 {
		return NetworkingHours{}, ErrNegativeNetworkingHours
	}
	return NetworkingHours{tenths: int(math.Round(hours * 10))}, nil
}

func (n NetworkingHours) Value() float64 { return float64(n.tenths) / 10 }

func (n NetworkingHours) DurationMinutes() int { return n.tenths * 6 }

func (n NetworkingHours) IsZero() bool { return n.tenths == 0 }
