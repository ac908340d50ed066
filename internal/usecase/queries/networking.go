package queries

import (
	"context"
	"time"

	"eventlink/internal/infra"
	"eventlink/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSlotRequestNotFound = errs.New("slot request not found")

// NetworkingSlotView is the read model for one slot request. Contact
// pointers are nil unless the request is accepted; the read stores
// apply that gate before the view ever leaves the infra layer, so no
// renderer can leak an email or phone by forgetting to check.
type NetworkingSlotView struct {
	ID                uuid.UUID `json:"id"`
	ProfileID         uuid.UUID `json:"profile_id"`
	ProfileName       string    `json:"profile_name"`
	ProfileEmail      *string   `json:"profile_email,omitempty"`
	ProfilePhone      *string   `json:"profile_phone,omitempty"`
	RequesterID       uuid.UUID `json:"requester_id"`
	RequesterName     string    `json:"requester_name"`
	RequesterPosition string    `json:"requester_position"`
	RequesterCompany  string    `json:"requester_company"`
	RequesterPhotoURL *string   `json:"requester_photo_url,omitempty"`
	RequesterEmail    *string   `json:"requester_email,omitempty"`
	RequesterPhone    *string   `json:"requester_phone,omitempty"`
	TimeSlot          string    `json:"time_slot"`
	Message           string    `json:"message"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type NetworkingReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*NetworkingSlotView, error)
	// ListForTarget returns requests where the profile is the one being
	// asked; ListForRequester the ones it sent.
	ListForTarget(ctx context.Context, profileID uuid.UUID) ([]*NetworkingSlotView, error)
	ListForRequester(ctx context.Context, profileID uuid.UUID) ([]*NetworkingSlotView, error)
}

type NetworkingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*NetworkingSlotView, error)
}

type networkingQueriesImpl struct {
	readStore NetworkingReadStore
}

func NewNetworkingQueries(readStore NetworkingReadStore) NetworkingQueries {
	return &networkingQueriesImpl{readStore: readStore}
}

func (q *networkingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*NetworkingSlotView, error) {
	view, err := q.readStore.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotRequestNotFound
		}
		return nil, err
	}
	return view, nil
}
