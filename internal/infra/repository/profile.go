package repository

import (
	"context"

	"eventlink/internal/domain/profile"
	"eventlink/internal/infra"
	"eventlink/internal/infra/db"

	"github.com/google/uuid"
)

type ProfileRepository struct{}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{}
}

func (r *ProfileRepository) Create(ctx context.Context, tx db.DBTX, p *profile.Profile) (uuid.UUID, error) {
	const query = `
		INSERT INTO profiles (
			id, event_id, full_name, position, company_name, bio,
			interests, linkedin_url, email, phone, photo_url,
			access_code, code_verified, available_slots
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		p.ID(), p.EventID(), p.FullName(), p.Position(), p.CompanyName(), p.Bio(),
		p.Interests(), p.LinkedinURL(), p.Email().Value(), p.Phone(), p.PhotoURL(),
		p.AccessCode(), p.IsVerified(), p.AvailableSlots(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create profile", err)
	}
	return id, nil
}

// Update writes the attendee-editable fields. Event, email, access code
// and verification state are managed through dedicated paths.
func (r *ProfileRepository) Update(ctx context.Context, tx db.DBTX, p *profile.Profile) error {
	const query = `
		UPDATE profiles SET
			full_name = $2, position = $3, company_name = $4, bio = $5,
			interests = $6, linkedin_url = $7, phone = $8, photo_url = $9,
			available_slots = $10, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		p.ID(), p.FullName(), p.Position(), p.CompanyName(), p.Bio(),
		p.Interests(), p.LinkedinURL(), p.Phone(), p.PhotoURL(),
		p.AvailableSlots(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("profile not found", nil, infra.KindNotFound)
	}
	return nil
}

// SetVerified is idempotent: verifying an already verified profile is a
// no-op, not an error.
func (r *ProfileRepository) SetVerified(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const query = `
		UPDATE profiles SET code_verified = TRUE, updated_at = now()
		WHERE id = $1 AND code_verified = FALSE`

	if _, err := tx.Exec(ctx, query, id); err != nil {
		return infra.WrapRepoErr("failed to verify profile", err)
	}
	return nil
}

func (r *ProfileRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("profile not found", nil, infra.KindNotFound)
	}
	return nil
}
