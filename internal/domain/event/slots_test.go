//go:build unit

package event_test

import (
	"testing"

	"eventlink/internal/domain/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) event.TimeOfDay {
	t.Helper()
	tod, err := event.NewTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func mustHours(t *testing.T, h float64) event.NetworkingHours {
	t.Helper()
	nh, err := event.NewNetworkingHours(h)
	require.NoError(t, err)
	return nh
}

func TestNetworkingSlots(t *testing.T) {
	cases := []struct {
		name    string
		endTime string
		hours   float64
		want    []string
	}{
		{
			name:    "one hour block after an 18:00 close",
			endTime: "18:00",
			hours:   1.0,
			want:    []string{"18:15", "18:30", "18:45", "19:00", "19:15"},
		},
		{
			name:    "half hour block",
			endTime: "17:00",
			hours:   0.5,
			want:    []string{"17:15", "17:30", "17:45"},
		},
		{
			name:    "fractional hours round to slot count",
			endTime: "18:00",
			hours:   1.5,
			want:    []string{"18:15", "18:30", "18:45", "19:00", "19:15", "19:30", "19:45"},
		},
		{
			name:    "zero hours yields no slots",
			endTime: "18:00",
			hours:   0,
			want:    []string{},
		},
		{
			name:    "block crossing midnight keeps wall clock labels",
			endTime: "23:30",
			hours:   1.0,
			want:    []string{"23:45", "00:00", "00:15", "00:30", "00:45"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := event.NetworkingSlots(mustTime(t, tc.endTime), mustHours(t, tc.hours))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNetworkingSlotsDeterministic(t *testing.T) {
	endTime := mustTime(t, "18:00")
	hours := mustHours(t, 2.0)

	first := event.NetworkingSlots(endTime, hours)
	for range 10 {
		assert.Equal(t, first, event.NetworkingSlots(endTime, hours))
	}
}

func TestNewNetworkingHours(t *testing.T) {
	t.Run("negative hours rejected", func(t *testing.T) {
		_, err := event.NewNetworkingHours(-0.5)
		require.ErrorIs(t, err, event.ErrNegativeNetworkingHours)
	})

	t.Run("one decimal place preserved", func(t *testing.T) {
		nh, err := event.NewNetworkingHours(1.5)
		require.NoError(t, err)
		assert.InDelta(t, 1.5, nh.Value(), 0.001)
		assert.Equal(t, 90, nh.DurationMinutes())
	})
}

func TestNewTimeOfDay(t *testing.T) {
	cases := []struct {
		input string
		ok    bool
	}{
		{"00:00", true},
		{"23:59", true},
		{"09:30", true},
		{"24:00", false},
		{"9:30", false},
		{"18:60", false},
		{"", false},
		{"banana", false},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			tod, err := event.NewTimeOfDay(tc.input)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, tc.input, tod.String())
			} else {
				require.ErrorIs(t, err, event.ErrInvalidTimeOfDay)
			}
		})
	}
}
