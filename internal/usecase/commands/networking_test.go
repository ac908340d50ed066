//go:build unit

package commands_test

import (
	"context"
	"testing"

	"eventlink/internal/domain/networking"
	"eventlink/internal/domain/profile"
	reqdto "eventlink/internal/handler/dto/request"
	"eventlink/internal/infra"
	"eventlink/internal/infra/db"
	"eventlink/internal/usecase/commands"
	"eventlink/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Hand-rolled fakes: the command layer only needs CommandReads and the
// slot request repository, so full mocks would be noise.

type fakeReads struct {
	shared.CommandReads

	activeEventByCode           func(eventCode string) (*shared.EventSnapshot, error)
	profileByEventAndAccessCode func(eventID uuid.UUID, accessCode string) (*shared.ProfileSnapshot, error)
	profileByEmailAndAccessCode func(email, accessCode string) (*shared.ProfileSnapshot, error)
	profileInEvent              func(eventID, profileID uuid.UUID) (*shared.ProfileSnapshot, error)
	profileEmailTaken           func(eventID uuid.UUID, email string) (bool, error)
	accessCodeExists            func(accessCode string) (bool, error)
	slotRequestByID             func(id uuid.UUID) (*shared.SlotRequestSnapshot, error)
	slotRequestForTarget        func(id, targetProfileID uuid.UUID) (*shared.SlotRequestSnapshot, error)
}

func (f *fakeReads) ActiveEventByCode(_ context.Context, eventCode string) (*shared.EventSnapshot, error) {
	return f.activeEventByCode(eventCode)
}

func (f *fakeReads) ProfileByEventAndAccessCode(_ context.Context, eventID uuid.UUID, accessCode string) (*shared.ProfileSnapshot, error) {
	return f.profileByEventAndAccessCode(eventID, accessCode)
}

func (f *fakeReads) ProfileByEmailAndAccessCode(_ context.Context, email, accessCode string) (*shared.ProfileSnapshot, error) {
	return f.profileByEmailAndAccessCode(email, accessCode)
}

func (f *fakeReads) ProfileInEvent(_ context.Context, eventID, profileID uuid.UUID) (*shared.ProfileSnapshot, error) {
	return f.profileInEvent(eventID, profileID)
}

func (f *fakeReads) ProfileEmailTaken(_ context.Context, eventID uuid.UUID, email string) (bool, error) {
	return f.profileEmailTaken(eventID, email)
}

func (f *fakeReads) AccessCodeExists(_ context.Context, accessCode string) (bool, error) {
	return f.accessCodeExists(accessCode)
}

func (f *fakeReads) SlotRequestByID(_ context.Context, id uuid.UUID) (*shared.SlotRequestSnapshot, error) {
	return f.slotRequestByID(id)
}

func (f *fakeReads) SlotRequestForTarget(_ context.Context, id, targetProfileID uuid.UUID) (*shared.SlotRequestSnapshot, error) {
	return f.slotRequestForTarget(id, targetProfileID)
}

type fakeSlotRepo struct {
	createErr    error
	created      []*networking.SlotRequest
	statusByID   map[uuid.UUID]networking.Status
	updateStatus error
}

func (f *fakeSlotRepo) Create(_ context.Context, _ db.DBTX, r *networking.SlotRequest) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = append(f.created, r)
	return r.ID(), nil
}

func (f *fakeSlotRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, status networking.Status) error {
	if f.updateStatus != nil {
		return f.updateStatus
	}
	if f.statusByID == nil {
		f.statusByID = map[uuid.UUID]networking.Status{}
	}
	f.statusByID[id] = status
	return nil
}

type fakeProfileRepo struct {
	createErr error
	created   []*profile.Profile
	verified  []uuid.UUID
}

func (f *fakeProfileRepo) Create(_ context.Context, _ db.DBTX, p *profile.Profile) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = append(f.created, p)
	return p.ID(), nil
}

func (f *fakeProfileRepo) Update(_ context.Context, _ db.DBTX, _ *profile.Profile) error { return nil }

func (f *fakeProfileRepo) SetVerified(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	f.verified = append(f.verified, id)
	return nil
}

func (f *fakeProfileRepo) Delete(_ context.Context, _ db.DBTX, _ uuid.UUID) error { return nil }

type fakeTx struct {
	shared.Tx

	slots    *fakeSlotRepo
	profiles *fakeProfileRepo
}

func (f *fakeTx) SlotRequests() shared.SlotRequestRepository { return f.slots }
func (f *fakeTx) Profiles() shared.ProfileRepository         { return f.profiles }
func (f *fakeTx) DB() db.DBTX                                { return nil }

type fakeUoW struct {
	reads    *fakeReads
	slots    *fakeSlotRepo
	profiles *fakeProfileRepo
}

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{slots: f.slots, profiles: f.profiles})
}

func (f *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) CommandReads() shared.CommandReads { return f.reads }

func notFoundErr() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

type slotFixture struct {
	event     *shared.EventSnapshot
	requester *shared.ProfileSnapshot
	target    *shared.ProfileSnapshot
	repo      *fakeSlotRepo
	reads     *fakeReads
	cmd       commands.NetworkingCommands
}

func newSlotFixture() *slotFixture {
	eventID := uuid.New()
	f := &slotFixture{
		event: &shared.EventSnapshot{ID: eventID, EventCode: "EVNT2026", IsActive: true},
		requester: &shared.ProfileSnapshot{
			ID:         uuid.New(),
			EventID:    eventID,
			AccessCode: "REQUESTER123",
		},
		target: &shared.ProfileSnapshot{
			ID:             uuid.New(),
			EventID:        eventID,
			AvailableSlots: []string{"18:15", "18:30"},
		},
		repo: &fakeSlotRepo{},
	}

	f.reads = &fakeReads{
		activeEventByCode: func(code string) (*shared.EventSnapshot, error) {
			if code != f.event.EventCode {
				return nil, notFoundErr()
			}
			return f.event, nil
		},
		profileByEventAndAccessCode: func(eventID uuid.UUID, accessCode string) (*shared.ProfileSnapshot, error) {
			if eventID == f.event.ID && accessCode == f.requester.AccessCode {
				return f.requester, nil
			}
			return nil, notFoundErr()
		},
		profileInEvent: func(eventID, profileID uuid.UUID) (*shared.ProfileSnapshot, error) {
			if eventID == f.event.ID && profileID == f.target.ID {
				return f.target, nil
			}
			return nil, notFoundErr()
		},
	}

	f.cmd = commands.NewNetworkingCommands(&fakeUoW{reads: f.reads, slots: f.repo})
	return f
}

func (f *slotFixture) request() reqdto.RequestSlotRequest {
	return reqdto.RequestSlotRequest{
		AccessCode: f.requester.AccessCode,
		ProfileID:  f.target.ID,
		TimeSlot:   "18:15",
		Message:    "coffee?",
	}
}

func TestRequestSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("claims a declared slot", func(t *testing.T) {
		f := newSlotFixture()

		id, err := f.cmd.RequestSlot(ctx, "EVNT2026", f.request())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		require.Len(t, f.repo.created, 1)
		created := f.repo.created[0]
		assert.Equal(t, f.target.ID, created.ProfileID())
		assert.Equal(t, f.requester.ID, created.RequesterID())
		assert.Equal(t, networking.StatusPending, created.Status())
	})

	t.Run("unknown event code", func(t *testing.T) {
		f := newSlotFixture()
		_, err := f.cmd.RequestSlot(ctx, "NOPE0000", f.request())
		require.ErrorIs(t, err, commands.ErrEventNotFound)
	})

	t.Run("bad access code", func(t *testing.T) {
		f := newSlotFixture()
		req := f.request()
		req.AccessCode = "WRONG"
		_, err := f.cmd.RequestSlot(ctx, "EVNT2026", req)
		require.ErrorIs(t, err, commands.ErrInvalidAccessCode)
	})

	t.Run("target outside the event", func(t *testing.T) {
		f := newSlotFixture()
		req := f.request()
		req.ProfileID = uuid.New()
		_, err := f.cmd.RequestSlot(ctx, "EVNT2026", req)
		require.ErrorIs(t, err, commands.ErrTargetNotFound)
	})

	t.Run("requesting yourself", func(t *testing.T) {
		f := newSlotFixture()
		f.target = f.requester
		req := f.request()
		req.ProfileID = f.requester.ID
		f.reads.profileInEvent = func(_, profileID uuid.UUID) (*shared.ProfileSnapshot, error) {
			return f.requester, nil
		}
		_, err := f.cmd.RequestSlot(ctx, "EVNT2026", req)
		require.ErrorIs(t, err, commands.ErrSelfRequest)
	})

	t.Run("slot the target never declared", func(t *testing.T) {
		f := newSlotFixture()
		req := f.request()
		req.TimeSlot = "19:00"
		_, err := f.cmd.RequestSlot(ctx, "EVNT2026", req)
		require.ErrorIs(t, err, commands.ErrSlotNotAvailable)
		assert.Empty(t, f.repo.created)
	})

	t.Run("declared label books even when oddly shaped", func(t *testing.T) {
		f := newSlotFixture()
		f.target.AvailableSlots = []string{"6pm sharp"}
		req := f.request()
		req.TimeSlot = "6pm sharp"

		_, err := f.cmd.RequestSlot(ctx, "EVNT2026", req)
		require.NoError(t, err)
		require.Len(t, f.repo.created, 1)
		assert.Equal(t, "6pm sharp", f.repo.created[0].TimeSlot())
	})

	t.Run("second claim on the same slot conflicts", func(t *testing.T) {
		f := newSlotFixture()
		f.repo.createErr = infra.WrapRepoErr("slot already requested", nil, infra.KindDuplicateKey)
		_, err := f.cmd.RequestSlot(ctx, "EVNT2026", f.request())
		require.ErrorIs(t, err, commands.ErrSlotConflict)
	})
}

func TestDecideSlot(t *testing.T) {
	ctx := context.Background()

	setup := func(f *slotFixture, slotID uuid.UUID) {
		// The decider authenticates as the target.
		f.target.AccessCode = "TARGET123456"
		f.reads.profileByEventAndAccessCode = func(eventID uuid.UUID, accessCode string) (*shared.ProfileSnapshot, error) {
			if accessCode == f.target.AccessCode {
				return f.target, nil
			}
			return nil, notFoundErr()
		}
		f.reads.slotRequestForTarget = func(id, targetProfileID uuid.UUID) (*shared.SlotRequestSnapshot, error) {
			if id == slotID && targetProfileID == f.target.ID {
				return &shared.SlotRequestSnapshot{
					ID:          slotID,
					ProfileID:   f.target.ID,
					RequesterID: f.requester.ID,
					TimeSlot:    "18:15",
					Status:      "pending",
				}, nil
			}
			return nil, notFoundErr()
		}
	}

	t.Run("target accepts", func(t *testing.T) {
		f := newSlotFixture()
		slotID := uuid.New()
		setup(f, slotID)

		err := f.cmd.DecideSlot(ctx, "EVNT2026", slotID, reqdto.DecideSlotRequest{
			AccessCode: f.target.AccessCode,
			Status:     "accepted",
		})
		require.NoError(t, err)
		assert.Equal(t, networking.StatusAccepted, f.repo.statusByID[slotID])
	})

	t.Run("only accepted or rejected are decisions", func(t *testing.T) {
		f := newSlotFixture()
		slotID := uuid.New()
		setup(f, slotID)

		err := f.cmd.DecideSlot(ctx, "EVNT2026", slotID, reqdto.DecideSlotRequest{
			AccessCode: f.target.AccessCode,
			Status:     "cancelled",
		})
		require.ErrorIs(t, err, commands.ErrInvalidDecision)
	})

	t.Run("missing request wins over a bad status", func(t *testing.T) {
		f := newSlotFixture()
		slotID := uuid.New()
		setup(f, slotID)

		err := f.cmd.DecideSlot(ctx, "EVNT2026", uuid.New(), reqdto.DecideSlotRequest{
			AccessCode: f.target.AccessCode,
			Status:     "pending",
		})
		require.ErrorIs(t, err, commands.ErrSlotRequestNotFound)
	})

	t.Run("someone else's request reads as not found", func(t *testing.T) {
		f := newSlotFixture()
		slotID := uuid.New()
		setup(f, slotID)

		// Authenticate as the requester instead of the target; the
		// target-scoped lookup must miss.
		f.reads.profileByEventAndAccessCode = func(_ uuid.UUID, accessCode string) (*shared.ProfileSnapshot, error) {
			return f.requester, nil
		}

		err := f.cmd.DecideSlot(ctx, "EVNT2026", slotID, reqdto.DecideSlotRequest{
			AccessCode: f.requester.AccessCode,
			Status:     "accepted",
		})
		require.ErrorIs(t, err, commands.ErrSlotRequestNotFound)
	})
}

func TestCancelSlot(t *testing.T) {
	ctx := context.Background()

	setup := func(f *slotFixture) uuid.UUID {
		slotID := uuid.New()
		f.reads.slotRequestByID = func(id uuid.UUID) (*shared.SlotRequestSnapshot, error) {
			if id != slotID {
				return nil, notFoundErr()
			}
			return &shared.SlotRequestSnapshot{
				ID:          slotID,
				ProfileID:   f.target.ID,
				RequesterID: f.requester.ID,
				TimeSlot:    "18:15",
				Status:      "accepted",
			}, nil
		}
		return slotID
	}

	t.Run("requester cancels", func(t *testing.T) {
		f := newSlotFixture()
		slotID := setup(f)

		err := f.cmd.CancelSlot(ctx, "EVNT2026", f.requester.AccessCode, slotID)
		require.NoError(t, err)
		assert.Equal(t, networking.StatusCancelled, f.repo.statusByID[slotID])
	})

	t.Run("target cancels", func(t *testing.T) {
		f := newSlotFixture()
		slotID := setup(f)
		f.target.AccessCode = "TARGET123456"
		f.reads.profileByEventAndAccessCode = func(_ uuid.UUID, accessCode string) (*shared.ProfileSnapshot, error) {
			if accessCode == f.target.AccessCode {
				return f.target, nil
			}
			return nil, notFoundErr()
		}

		err := f.cmd.CancelSlot(ctx, "EVNT2026", f.target.AccessCode, slotID)
		require.NoError(t, err)
		assert.Equal(t, networking.StatusCancelled, f.repo.statusByID[slotID])
	})

	t.Run("third party is forbidden", func(t *testing.T) {
		f := newSlotFixture()
		slotID := setup(f)
		bystander := &shared.ProfileSnapshot{ID: uuid.New(), EventID: f.event.ID, AccessCode: "BYSTANDER999"}
		f.reads.profileByEventAndAccessCode = func(_ uuid.UUID, accessCode string) (*shared.ProfileSnapshot, error) {
			if accessCode == bystander.AccessCode {
				return bystander, nil
			}
			return nil, notFoundErr()
		}

		err := f.cmd.CancelSlot(ctx, "EVNT2026", bystander.AccessCode, slotID)
		require.ErrorIs(t, err, commands.ErrNotSlotParty)
	})

	t.Run("missing request", func(t *testing.T) {
		f := newSlotFixture()
		setup(f)

		err := f.cmd.CancelSlot(ctx, "EVNT2026", f.requester.AccessCode, uuid.New())
		require.ErrorIs(t, err, commands.ErrSlotRequestNotFound)
	})
}
