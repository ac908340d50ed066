package queries

import (
	"context"
	"time"

	"eventlink/internal/infra"
	"eventlink/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound   = errs.New("profile not found")
	ErrInvalidAccessCode = errs.New("invalid access code")
)

// ProfileView is the full read model: own-profile and admin reads. The
// directory uses DirectoryEntry, which omits the credential and email.
type ProfileView struct {
	ID               uuid.UUID             `json:"id"`
	EventID          uuid.UUID             `json:"event_id"`
	FullName         string                `json:"full_name"`
	Position         string                `json:"position"`
	CompanyName      string                `json:"company_name"`
	Bio              string                `json:"bio"`
	Interests        []string              `json:"interests"`
	LinkedinURL      string                `json:"linkedin_url"`
	Email            string                `json:"email"`
	Phone            string                `json:"phone"`
	PhotoURL         *string               `json:"photo_url,omitempty"`
	AccessCode       string                `json:"access_code"`
	CodeVerified     bool                  `json:"code_verified"`
	AvailableSlots   []string              `json:"available_slots"`
	ReceivedRequests []*NetworkingSlotView `json:"received_requests,omitempty"`
	SentRequests     []*NetworkingSlotView `json:"sent_requests,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

type DirectoryEntry struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"full_name"`
	Position       string    `json:"position"`
	CompanyName    string    `json:"company_name"`
	Bio            string    `json:"bio"`
	Interests      []string  `json:"interests"`
	LinkedinURL    string    `json:"linkedin_url"`
	Phone          string    `json:"phone"`
	PhotoURL       *string   `json:"photo_url,omitempty"`
	AvailableSlots []string  `json:"available_slots"`
}

type DirectoryView struct {
	Event    *EventView        `json:"event"`
	Profiles []*DirectoryEntry `json:"profiles"`
}

type ProfileReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProfileView, error)
	// FindByEventAndAccessCode is the credential resolver: exact match
	// on (event, code), no normalization.
	FindByEventAndAccessCode(ctx context.Context, eventID uuid.UUID, accessCode string) (*ProfileView, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*ProfileView, error)
	ListVerifiedByEvent(ctx context.Context, eventID uuid.UUID) ([]*DirectoryEntry, error)
}

type ProfileQueries interface {
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*ProfileView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ProfileView, error)
	// GetOwn resolves the caller's credential and returns their profile
	// with sent and received slot requests embedded.
	GetOwn(ctx context.Context, eventCode, accessCode string) (*ProfileView, error)
	// Directory needs a valid credential but lists only verified
	// profiles; whether the caller is verified does not matter.
	Directory(ctx context.Context, eventCode, accessCode string) (*DirectoryView, error)
}

type profileQueriesImpl struct {
	readStore      ProfileReadStore
	eventReads     EventReadStore
	networkingRead NetworkingReadStore
}

func NewProfileQueries(readStore ProfileReadStore, eventReads EventReadStore, networkingRead NetworkingReadStore) ProfileQueries {
	return &profileQueriesImpl{
		readStore:      readStore,
		eventReads:     eventReads,
		networkingRead: networkingRead,
	}
}

func (q *profileQueriesImpl) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*ProfileView, error) {
	return q.readStore.ListByEvent(ctx, eventID)
}

func (q *profileQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProfileView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *profileQueriesImpl) GetOwn(ctx context.Context, eventCode, accessCode string) (*ProfileView, error) {
	view, err := q.resolve(ctx, eventCode, accessCode)
	if err != nil {
		return nil, err
	}

	received, err := q.networkingRead.ListForTarget(ctx, view.ID)
	if err != nil {
		return nil, err
	}
	sent, err := q.networkingRead.ListForRequester(ctx, view.ID)
	if err != nil {
		return nil, err
	}
	view.ReceivedRequests = received
	view.SentRequests = sent
	return view, nil
}

func (q *profileQueriesImpl) Directory(ctx context.Context, eventCode, accessCode string) (*DirectoryView, error) {
	evt, err := q.eventReads.FindActiveByCode(ctx, eventCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	fillNetworkingSlots(evt)

	if _, err := q.readStore.FindByEventAndAccessCode(ctx, evt.ID, accessCode); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidAccessCode
		}
		return nil, err
	}

	profiles, err := q.readStore.ListVerifiedByEvent(ctx, evt.ID)
	if err != nil {
		return nil, err
	}

	return &DirectoryView{Event: evt, Profiles: profiles}, nil
}

func (q *profileQueriesImpl) resolve(ctx context.Context, eventCode, accessCode string) (*ProfileView, error) {
	evt, err := q.eventReads.FindActiveByCode(ctx, eventCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	view, err := q.readStore.FindByEventAndAccessCode(ctx, evt.ID, accessCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidAccessCode
		}
		return nil, err
	}
	return view, nil
}
