//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	reqdto "eventlink/internal/handler/dto/request"
	"eventlink/internal/infra"
	"eventlink/internal/pkg/errs"
	"eventlink/internal/usecase/commands"
	"eventlink/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	sent    []string
	sendErr error
}

func (n *recordingNotifier) SendAccessCode(_ context.Context, email, _, _, _, _ string) error {
	if n.sendErr != nil {
		return n.sendErr
	}
	n.sent = append(n.sent, email)
	return nil
}

type registrationFixture struct {
	event    *shared.EventSnapshot
	reads    *fakeReads
	repo     *fakeProfileRepo
	notifier *recordingNotifier
	cmd      commands.RegistrationCommands
}

func newRegistrationFixture() *registrationFixture {
	f := &registrationFixture{
		event:    &shared.EventSnapshot{ID: uuid.New(), EventCode: "EVNT2026", Name: "Tech Mixer", IsActive: true},
		repo:     &fakeProfileRepo{},
		notifier: &recordingNotifier{},
	}

	f.reads = &fakeReads{
		activeEventByCode: func(code string) (*shared.EventSnapshot, error) {
			if code != f.event.EventCode {
				return nil, notFoundErr()
			}
			return f.event, nil
		},
		profileEmailTaken: func(_ uuid.UUID, _ string) (bool, error) { return false, nil },
		accessCodeExists:  func(_ string) (bool, error) { return false, nil },
	}

	f.cmd = commands.NewRegistrationCommands(&fakeUoW{reads: f.reads, profiles: f.repo}, f.notifier)
	return f
}

func freshRequest() reqdto.RegisterProfileRequest {
	return reqdto.RegisterProfileRequest{
		FullName: "Jordan Reyes",
		Position: "Engineer",
		Email:    "jordan@example.com",
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh registration issues a code and emails it", func(t *testing.T) {
		f := newRegistrationFixture()

		result, err := f.cmd.Register(ctx, "EVNT2026", freshRequest())
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, result.ProfileID)
		assert.NotEmpty(t, result.AccessCode)
		assert.False(t, result.CarriedOver)

		require.Len(t, f.repo.created, 1)
		assert.False(t, f.repo.created[0].IsVerified())
		assert.Equal(t, []string{"jordan@example.com"}, f.notifier.sent)
	})

	t.Run("inactive or unknown event", func(t *testing.T) {
		f := newRegistrationFixture()
		_, err := f.cmd.Register(ctx, "GONE0000", freshRequest())
		require.ErrorIs(t, err, commands.ErrEventNotFound)
	})

	t.Run("email already registered for the event", func(t *testing.T) {
		f := newRegistrationFixture()
		f.reads.profileEmailTaken = func(_ uuid.UUID, _ string) (bool, error) { return true, nil }

		_, err := f.cmd.Register(ctx, "EVNT2026", freshRequest())
		require.ErrorIs(t, err, commands.ErrAlreadyRegistered)
	})

	t.Run("invalid email", func(t *testing.T) {
		f := newRegistrationFixture()
		req := freshRequest()
		req.Email = "not-an-email"

		_, err := f.cmd.Register(ctx, "EVNT2026", req)
		// The sentinel is attached as a mark, which stdlib errors.Is
		// cannot see, so the check goes through errs.Is.
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrRegistrationValidation))
	})

	t.Run("failed email never unwinds the registration", func(t *testing.T) {
		f := newRegistrationFixture()
		f.notifier.sendErr = errors.New("smtp down")

		result, err := f.cmd.Register(ctx, "EVNT2026", freshRequest())
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessCode)
		require.Len(t, f.repo.created, 1)
	})

	t.Run("duplicate insert maps to already registered", func(t *testing.T) {
		f := newRegistrationFixture()
		f.repo.createErr = infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey)

		_, err := f.cmd.Register(ctx, "EVNT2026", freshRequest())
		require.ErrorIs(t, err, commands.ErrAlreadyRegistered)
	})

	t.Run("carry-over copies the profile but never the credential", func(t *testing.T) {
		f := newRegistrationFixture()
		source := &shared.ProfileSnapshot{
			ID:             uuid.New(),
			EventID:        uuid.New(), // previous event
			FullName:       "Jordan Reyes",
			Position:       "Engineer",
			Email:          "jordan@example.com",
			AccessCode:     "OLDCODE12345",
			CodeVerified:   true,
			AvailableSlots: []string{"18:15"},
		}
		f.reads.profileByEmailAndAccessCode = func(email, accessCode string) (*shared.ProfileSnapshot, error) {
			if email == source.Email && accessCode == source.AccessCode {
				return source, nil
			}
			return nil, notFoundErr()
		}

		result, err := f.cmd.Register(ctx, "EVNT2026", reqdto.RegisterProfileRequest{
			UseExistingProfile: true,
			ExistingEmail:      "jordan@example.com",
			ExistingAccessCode: "OLDCODE12345",
		})
		require.NoError(t, err)
		assert.True(t, result.CarriedOver)
		assert.NotEqual(t, source.AccessCode, result.AccessCode)

		require.Len(t, f.repo.created, 1)
		created := f.repo.created[0]
		assert.Equal(t, f.event.ID, created.EventID())
		assert.Equal(t, source.FullName, created.FullName())
		assert.False(t, created.IsVerified())
		assert.Empty(t, created.AvailableSlots())
	})

	t.Run("carry-over with wrong credential", func(t *testing.T) {
		f := newRegistrationFixture()
		f.reads.profileByEmailAndAccessCode = func(_, _ string) (*shared.ProfileSnapshot, error) {
			return nil, notFoundErr()
		}

		_, err := f.cmd.Register(ctx, "EVNT2026", reqdto.RegisterProfileRequest{
			UseExistingProfile: true,
			ExistingEmail:      "jordan@example.com",
			ExistingAccessCode: "WRONG",
		})
		require.ErrorIs(t, err, commands.ErrProfileNotFound)
	})
}

func TestVerify(t *testing.T) {
	ctx := context.Background()

	setup := func(f *registrationFixture) *shared.ProfileSnapshot {
		snap := &shared.ProfileSnapshot{
			ID:         uuid.New(),
			EventID:    f.event.ID,
			AccessCode: "GOODCODE1234",
		}
		f.reads.profileByEventAndAccessCode = func(eventID uuid.UUID, accessCode string) (*shared.ProfileSnapshot, error) {
			if eventID == f.event.ID && accessCode == snap.AccessCode {
				return snap, nil
			}
			return nil, notFoundErr()
		}
		return snap
	}

	t.Run("marks the profile verified", func(t *testing.T) {
		f := newRegistrationFixture()
		snap := setup(f)

		id, err := f.cmd.Verify(ctx, "EVNT2026", snap.AccessCode)
		require.NoError(t, err)
		assert.Equal(t, snap.ID, id)
		assert.Equal(t, []uuid.UUID{snap.ID}, f.repo.verified)
	})

	t.Run("bad code reads as not found", func(t *testing.T) {
		f := newRegistrationFixture()
		setup(f)

		_, err := f.cmd.Verify(ctx, "EVNT2026", "WRONG")
		require.ErrorIs(t, err, commands.ErrProfileNotFound)
	})
}

func TestCheckExisting(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the source profile", func(t *testing.T) {
		f := newRegistrationFixture()
		source := &shared.ProfileSnapshot{
			ID:         uuid.New(),
			Email:      "jordan@example.com",
			AccessCode: "OLDCODE12345",
			FullName:   "Jordan Reyes",
		}
		f.reads.profileByEmailAndAccessCode = func(email, code string) (*shared.ProfileSnapshot, error) {
			if email == source.Email && code == source.AccessCode {
				return source, nil
			}
			return nil, notFoundErr()
		}

		snap, err := f.cmd.CheckExisting(ctx, "EVNT2026", source.Email, source.AccessCode)
		require.NoError(t, err)
		assert.Equal(t, source.ID, snap.ID)
	})

	t.Run("already registered here", func(t *testing.T) {
		f := newRegistrationFixture()
		f.reads.profileByEmailAndAccessCode = func(_, _ string) (*shared.ProfileSnapshot, error) {
			return &shared.ProfileSnapshot{ID: uuid.New()}, nil
		}
		f.reads.profileEmailTaken = func(_ uuid.UUID, _ string) (bool, error) { return true, nil }

		_, err := f.cmd.CheckExisting(ctx, "EVNT2026", "jordan@example.com", "OLDCODE12345")
		require.ErrorIs(t, err, commands.ErrAlreadyRegistered)
	})
}
