package readstore

import (
	"context"

	"eventlink/internal/infra"
	"eventlink/internal/infra/db"
	"eventlink/internal/pkg/pgconv"
	"eventlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const companyViewColumns = `
	c.id, c.name, c.description, c.industry, c.logo_url,
	c.primary_color, c.secondary_color, c.accent_color, c.is_active,
	(SELECT COUNT(*) FROM events e WHERE e.company_id = c.id) AS events_count,
	c.created_at, c.updated_at`

type CompanyReadStore struct {
	db db.DBTX
}

func NewCompanyReadStore(db db.DBTX) *CompanyReadStore {
	return &CompanyReadStore{db: db}
}

func (r *CompanyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CompanyView, error) {
	query := `SELECT` + companyViewColumns + ` FROM companies c WHERE c.id = $1`

	view, err := scanCompanyView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("company not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find company by ID", err)
	}
	return view, nil
}

func (r *CompanyReadStore) List(ctx context.Context, filters queries.CompanyFilters) ([]*queries.CompanyView, error) {
	query := `SELECT` + companyViewColumns + `
		FROM companies c
		WHERE ($1::text IS NULL OR c.industry = $1)
		  AND ($2::boolean IS NULL OR c.is_active = $2)
		ORDER BY c.name`

	rows, err := r.db.Query(ctx, query, filters.Industry, filters.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list companies", err)
	}
	defer rows.Close()

	views := []*queries.CompanyView{}
	for rows.Next() {
		view, err := scanCompanyView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan company row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list companies", err)
	}
	return views, nil
}

func scanCompanyView(row pgx.Row) (*queries.CompanyView, error) {
	var v queries.CompanyView
	err := row.Scan(
		&v.ID, &v.Name, &v.Description, &v.Industry, &v.LogoURL,
		&v.PrimaryColor, &v.SecondaryColor, &v.AccentColor, &v.IsActive,
		&v.EventsCount, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
