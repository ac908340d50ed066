package repository

import (
	"context"

	"eventlink/internal/domain/company"
	"eventlink/internal/infra"
	"eventlink/internal/infra/db"

	"github.com/google/uuid"
)

type CompanyRepository struct{}

func NewCompanyRepository() *CompanyRepository {
	return &CompanyRepository{}
}

func (r *CompanyRepository) Create(ctx context.Context, tx db.DBTX, c *company.Company) (uuid.UUID, error) {
	const query = `
		INSERT INTO companies (
			id, name, description, industry, logo_url,
			primary_color, secondary_color, accent_color, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		c.ID(), c.Name(), c.Description(), c.Industry(), c.LogoURL(),
		c.PrimaryColor().Value(), c.SecondaryColor().Value(), c.AccentColor().Value(), c.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create company", err)
	}
	return id, nil
}

func (r *CompanyRepository) Update(ctx context.Context, tx db.DBTX, c *company.Company) error {
	const query = `
		UPDATE companies SET
			name = $2, description = $3, industry = $4, logo_url = $5,
			primary_color = $6, secondary_color = $7, accent_color = $8,
			is_active = $9, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		c.ID(), c.Name(), c.Description(), c.Industry(), c.LogoURL(),
		c.PrimaryColor().Value(), c.SecondaryColor().Value(), c.AccentColor().Value(), c.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update company", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("company not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete company", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("company not found", nil, infra.KindNotFound)
	}
	return nil
}
