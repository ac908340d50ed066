//go:build unit

package profile_test

import (
	"testing"

	"eventlink/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEmail(t *testing.T, s string) profile.Email {
	t.Helper()
	email, err := profile.NewEmail(s)
	require.NoError(t, err)
	return email
}

func newProfile(t *testing.T) *profile.Profile {
	t.Helper()
	p, err := profile.NewProfile(
		uuid.New(),
		"Jordan Reyes", "Engineer", "Acme", "bio",
		[]string{"go", "databases"},
		"https://linkedin.com/in/jordan",
		mustEmail(t, "jordan@example.com"),
		"+1-555-0100",
		nil,
		"ABC123DEF456",
	)
	require.NoError(t, err)
	return p
}

func TestNewProfile(t *testing.T) {
	t.Run("starts unverified with no availability", func(t *testing.T) {
		p := newProfile(t)
		assert.False(t, p.IsVerified())
		assert.Empty(t, p.AvailableSlots())
		assert.NotEqual(t, uuid.Nil, p.ID())
	})

	t.Run("full name required", func(t *testing.T) {
		_, err := profile.NewProfile(
			uuid.New(), "   ", "", "", "", nil, "",
			mustEmail(t, "a@example.com"), "", nil, "ABC123DEF456",
		)
		require.ErrorIs(t, err, profile.ErrEmptyFullName)
	})

	t.Run("access code required", func(t *testing.T) {
		_, err := profile.NewProfile(
			uuid.New(), "Jordan", "", "", "", nil, "",
			mustEmail(t, "a@example.com"), "", nil, "",
		)
		require.ErrorIs(t, err, profile.ErrInvalidAccessCode)
	})

	t.Run("nil interests normalized to empty", func(t *testing.T) {
		p, err := profile.NewProfile(
			uuid.New(), "Jordan", "", "", "", nil, "",
			mustEmail(t, "a@example.com"), "", nil, "ABC123DEF456",
		)
		require.NoError(t, err)
		assert.NotNil(t, p.Interests())
		assert.Empty(t, p.Interests())
	})
}

func TestNewEmail(t *testing.T) {
	cases := []struct {
		input string
		ok    bool
	}{
		{"user@example.com", true},
		{"  padded@example.com  ", true},
		{"user+tag@sub.example.co", true},
		{"", false},
		{"no-at-sign.com", false},
		{"user@", false},
		{"user@nodot", false},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			_, err := profile.NewEmail(tc.input)
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, profile.ErrInvalidEmail)
			}
		})
	}
}

func TestSetAvailableSlots(t *testing.T) {
	t.Run("well formed labels accepted", func(t *testing.T) {
		p := newProfile(t)
		require.NoError(t, p.SetAvailableSlots([]string{"18:15", "18:30"}))
		assert.Equal(t, []string{"18:15", "18:30"}, p.AvailableSlots())
	})

	t.Run("malformed label rejects the whole list", func(t *testing.T) {
		p := newProfile(t)
		err := p.SetAvailableSlots([]string{"18:15", "6pm"})
		require.ErrorIs(t, err, profile.ErrInvalidSlotLabel)
		assert.Empty(t, p.AvailableSlots())
	})

	t.Run("nil clears availability", func(t *testing.T) {
		p := newProfile(t)
		require.NoError(t, p.SetAvailableSlots([]string{"18:15"}))
		require.NoError(t, p.SetAvailableSlots(nil))
		assert.NotNil(t, p.AvailableSlots())
		assert.Empty(t, p.AvailableSlots())
	})
}

func TestHasAvailableSlot(t *testing.T) {
	p := newProfile(t)
	require.NoError(t, p.SetAvailableSlots([]string{"18:15", "18:45"}))

	assert.True(t, p.HasAvailableSlot("18:15"))
	assert.False(t, p.HasAvailableSlot("18:30"))
}

func TestVerify(t *testing.T) {
	p := newProfile(t)
	p.Verify()
	assert.True(t, p.IsVerified())

	// Idempotent.
	p.Verify()
	assert.True(t, p.IsVerified())
}

func TestCarryOver(t *testing.T) {
	p := newProfile(t)
	require.NoError(t, p.SetAvailableSlots([]string{"18:15"}))
	p.Verify()

	nextEvent := uuid.New()
	carried, err := p.CarryOver(nextEvent, "XYZ789XYZ789")
	require.NoError(t, err)

	assert.NotEqual(t, p.ID(), carried.ID())
	assert.Equal(t, nextEvent, carried.EventID())
	assert.Equal(t, p.FullName(), carried.FullName())
	assert.Equal(t, p.Email(), carried.Email())

	// Credential state never carries over.
	assert.Equal(t, "XYZ789XYZ789", carried.AccessCode())
	assert.False(t, carried.IsVerified())
	assert.Empty(t, carried.AvailableSlots())
}
