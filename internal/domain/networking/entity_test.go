//go:build unit

package networking_test

import (
	"testing"

	"eventlink/internal/domain/networking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlotRequest(t *testing.T) {
	target := uuid.New()
	requester := uuid.New()

	t.Run("valid request starts pending", func(t *testing.T) {
		r, err := networking.NewSlotRequest(target, requester, "18:15", "  let's talk  ")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, target, r.ProfileID())
		assert.Equal(t, requester, r.RequesterID())
		assert.Equal(t, "18:15", r.TimeSlot())
		assert.Equal(t, "let's talk", r.Message())
		assert.Equal(t, networking.StatusPending, r.Status())
	})

	t.Run("requesting yourself rejected", func(t *testing.T) {
		_, err := networking.NewSlotRequest(target, target, "18:15", "")
		require.ErrorIs(t, err, networking.ErrSelfRequest)
	})

	t.Run("slot label carried verbatim", func(t *testing.T) {
		// Eligibility lives in the target's declared slot list, not in the
		// label shape, so odd labels pass through untouched.
		for _, label := range []string{"6pm", "25:00", "18:5"} {
			r, err := networking.NewSlotRequest(target, requester, label, "")
			require.NoError(t, err, "label %q", label)
			assert.Equal(t, label, r.TimeSlot())
		}
	})
}

func TestSlotRequestDecide(t *testing.T) {
	newRequest := func(t *testing.T) *networking.SlotRequest {
		t.Helper()
		r, err := networking.NewSlotRequest(uuid.New(), uuid.New(), "18:15", "")
		require.NoError(t, err)
		return r
	}

	t.Run("accept", func(t *testing.T) {
		r := newRequest(t)
		require.NoError(t, r.Decide(networking.StatusAccepted))
		assert.Equal(t, networking.StatusAccepted, r.Status())
	})

	t.Run("reject", func(t *testing.T) {
		r := newRequest(t)
		require.NoError(t, r.Decide(networking.StatusRejected))
		assert.Equal(t, networking.StatusRejected, r.Status())
	})

	t.Run("pending and cancelled are not decisions", func(t *testing.T) {
		r := newRequest(t)
		require.ErrorIs(t, r.Decide(networking.StatusPending), networking.ErrInvalidDecision)
		require.ErrorIs(t, r.Decide(networking.StatusCancelled), networking.ErrInvalidDecision)
		assert.Equal(t, networking.StatusPending, r.Status())
	})

	t.Run("a second decision overwrites the first", func(t *testing.T) {
		r := newRequest(t)
		require.NoError(t, r.Decide(networking.StatusAccepted))
		require.NoError(t, r.Decide(networking.StatusRejected))
		assert.Equal(t, networking.StatusRejected, r.Status())
	})
}

func TestSlotRequestCancel(t *testing.T) {
	t.Run("cancel from pending", func(t *testing.T) {
		r, err := networking.NewSlotRequest(uuid.New(), uuid.New(), "18:15", "")
		require.NoError(t, err)
		r.Cancel()
		assert.Equal(t, networking.StatusCancelled, r.Status())
	})

	t.Run("cancel after acceptance", func(t *testing.T) {
		r, err := networking.NewSlotRequest(uuid.New(), uuid.New(), "18:15", "")
		require.NoError(t, err)
		require.NoError(t, r.Decide(networking.StatusAccepted))
		r.Cancel()
		assert.Equal(t, networking.StatusCancelled, r.Status())
	})
}

func TestSlotRequestIsParty(t *testing.T) {
	target := uuid.New()
	requester := uuid.New()
	r, err := networking.NewSlotRequest(target, requester, "18:15", "")
	require.NoError(t, err)

	assert.True(t, r.IsParty(target))
	assert.True(t, r.IsParty(requester))
	assert.False(t, r.IsParty(uuid.New()))
}

func TestSlotRequestDisclosesContactInfo(t *testing.T) {
	r, err := networking.NewSlotRequest(uuid.New(), uuid.New(), "18:15", "")
	require.NoError(t, err)

	assert.False(t, r.DisclosesContactInfo())

	require.NoError(t, r.Decide(networking.StatusAccepted))
	assert.True(t, r.DisclosesContactInfo())

	r.Cancel()
	assert.False(t, r.DisclosesContactInfo())
}

func TestNewDecision(t *testing.T) {
	cases := []struct {
		input string
		want  networking.Status
		errIs error
	}{
		{input: "accepted", want: networking.StatusAccepted},
		{input: "rejected", want: networking.StatusRejected},
		{input: "pending", errIs: networking.ErrInvalidDecision},
		{input: "cancelled", errIs: networking.ErrInvalidDecision},
		{input: "", errIs: networking.ErrInvalidDecision},
		{input: "ACCEPTED", errIs: networking.ErrInvalidDecision},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := networking.NewDecision(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
