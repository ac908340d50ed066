package queries

import (
	"context"
	"time"

	"eventlink/internal/infra"
	"eventlink/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCompanyNotFound = errs.New("company not found")

type CompanyView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Industry       string    `json:"industry"`
	LogoURL        *string   `json:"logo_url,omitempty"`
	PrimaryColor   string    `json:"primary_color"`
	SecondaryColor string    `json:"secondary_color"`
	AccentColor    string    `json:"accent_color"`
	IsActive       bool      `json:"is_active"`
	EventsCount    int64     `json:"events_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CompanyFilters struct {
	Industry *string
	IsActive *bool
}

type CompanyReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CompanyView, error)
	List(ctx context.Context, filters CompanyFilters) ([]*CompanyView, error)
}

type CompanyQueries interface {
	List(ctx context.Context, filters CompanyFilters) ([]*CompanyView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CompanyView, error)
}

type companyQueriesImpl struct {
	readStore CompanyReadStore
}

func NewCompanyQueries(readStore CompanyReadStore) CompanyQueries {
	return &companyQueriesImpl{readStore: readStore}
}

func (q *companyQueriesImpl) List(ctx context.Context, filters CompanyFilters) ([]*CompanyView, error) {
	return q.readStore.List(ctx, filters)
}

func (q *companyQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CompanyView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return view, nil
}
