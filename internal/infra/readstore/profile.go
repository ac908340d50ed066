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

const profileViewColumns = `
	p.id, p.event_id, p.full_name, p.position, p.company_name, p.bio,
	p.interests, p.linkedin_url, p.email, p.phone, p.photo_url,
	p.access_code, p.code_verified, p.available_slots,
	p.created_at, p.updated_at`

type ProfileReadStore struct {
	db db.DBTX
}

func NewProfileReadStore(db db.DBTX) *ProfileReadStore {
	return &ProfileReadStore{db: db}
}

func (r *ProfileReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProfileView, error) {
	query := `SELECT` + profileViewColumns + ` FROM profiles p WHERE p.id = $1`

	view, err := scanProfileView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find profile by ID", err)
	}
	return view, nil
}

// FindByEventAndAccessCode is the credential resolver. The match is
// exact and case-sensitive; a miss is a plain not-found, the usecase
// layer decides whether that means 403 or 404.
func (r *ProfileReadStore) FindByEventAndAccessCode(ctx context.Context, eventID uuid.UUID, accessCode string) (*queries.ProfileView, error) {
	query := `SELECT` + profileViewColumns + `
		FROM profiles p WHERE p.event_id = $1 AND p.access_code = $2`

	view, err := scanProfileView(r.db.QueryRow(ctx, query, eventID, accessCode))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("profile not found for access code", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find profile by access code", err)
	}
	return view, nil
}

func (r *ProfileReadStore) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*queries.ProfileView, error) {
	query := `SELECT` + profileViewColumns + `
		FROM profiles p WHERE p.event_id = $1 ORDER BY p.full_name`

	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list profiles", err)
	}
	defer rows.Close()

	views := []*queries.ProfileView{}
	for rows.Next() {
		view, err := scanProfileView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan profile row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list profiles", err)
	}
	return views, nil
}

// ListVerifiedByEvent backs the attendee directory: only profiles whose
// code was verified appear, and the entry type never carries email or
// access code.
func (r *ProfileReadStore) ListVerifiedByEvent(ctx context.Context, eventID uuid.UUID) ([]*queries.DirectoryEntry, error) {
	const query = `
		SELECT p.id, p.full_name, p.position, p.company_name, p.bio,
		       p.interests, p.linkedin_url, p.phone, p.photo_url,
		       p.available_slots
		FROM profiles p
		WHERE p.event_id = $1 AND p.code_verified = TRUE
		ORDER BY p.full_name`

	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list directory", err)
	}
	defer rows.Close()

	entries := []*queries.DirectoryEntry{}
	for rows.Next() {
		var e queries.DirectoryEntry
		err := rows.Scan(
			&e.ID, &e.FullName, &e.Position, &e.CompanyName, &e.Bio,
			&e.Interests, &e.LinkedinURL, &e.Phone, &e.PhotoURL,
			&e.AvailableSlots,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan directory row", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list directory", err)
	}
	return entries, nil
}

func scanProfileView(row pgx.Row) (*queries.ProfileView, error) {
	var v queries.ProfileView
	err := row.Scan(
		&v.ID, &v.EventID, &v.FullName, &v.Position, &v.CompanyName, &v.Bio,
		&v.Interests, &v.LinkedinURL, &v.Email, &v.Phone, &v.PhotoURL,
		&v.AccessCode, &v.CodeVerified, &v.AvailableSlots,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
