package queries

import (
	"context"
	"time"

	"eventlink/internal/domain/event"
	"eventlink/internal/infra"
	"eventlink/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEventNotFound = errs.New("event not found")

// CompanyBrand is the slice of company data shown on public event pages.
type CompanyBrand struct {
	Name           string  `json:"name"`
	LogoURL        *string `json:"logo_url,omitempty"`
	PrimaryColor   string  `json:"primary_color"`
	SecondaryColor string  `json:"secondary_color"`
	AccentColor    string  `json:"accent_color"`
}

type EventView struct {
	ID              uuid.UUID    `json:"id"`
	CompanyID       uuid.UUID    `json:"company_id"`
	Company         CompanyBrand `json:"company"`
	Name            string       `json:"name"`
	EventCode       string       `json:"event_code"`
	Description     string       `json:"description"`
	StartDate       time.Time    `json:"start_date"`
	EndDate         time.Time    `json:"end_date"`
	StartTime       string       `json:"start_time"`
	EndTime         string       `json:"end_time"`
	NetworkingHours float64      `json:"networking_hours"`
	Location        string       `json:"location"`
	IsActive        bool         `json:"is_active"`
	NetworkingSlots []string     `json:"networking_slots"`
	ProfilesCount   int64        `json:"profiles_count"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type EventFilters struct {
	CompanyID *uuid.UUID
	IsActive  *bool
}

type EventReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	FindActiveByCode(ctx context.Context, eventCode string) (*EventView, error)
	List(ctx context.Context, filters EventFilters) ([]*EventView, error)
}

type EventQueries interface {
	List(ctx context.Context, filters EventFilters) ([]*EventView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	// GetActiveByCode backs the public event page; inactive events are
	// indistinguishable from missing ones.
	GetActiveByCode(ctx context.Context, eventCode string) (*EventView, error)
}

type eventQueriesImpl struct {
	readStore EventReadStore
}

func NewEventQueries(readStore EventReadStore) EventQueries {
	return &eventQueriesImpl{readStore: readStore}
}

func (q *eventQueriesImpl) List(ctx context.Context, filters EventFilters) ([]*EventView, error) {
	views, err := q.readStore.List(ctx, filters)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		fillNetworkingSlots(v)
	}
	return views, nil
}

func (q *eventQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EventView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return fillNetworkingSlots(view), nil
}

func (q *eventQueriesImpl) GetActiveByCode(ctx context.Context, eventCode string) (*EventView, error) {
	view, err := q.readStore.FindActiveByCode(ctx, eventCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return fillNetworkingSlots(view), nil
}

// fillNetworkingSlots derives the advertised slot labels from the
// stored schedule so list and detail views never disagree with the
// generator.
func fillNetworkingSlots(v *EventView) *EventView {
	v.NetworkingSlots = []string{}
	endTime, err := event.NewTimeOfDay(v.EndTime)
	if err != nil {
		return v
	}
	hours, err := event.NewNetworkingHours(v.NetworkingHours)
	if err != nil {
		return v
	}
	v.NetworkingSlots = event.NetworkingSlots(endTime, hours)
	return v
}
