package uow

import (
	"context"

	"eventlink/internal/infra"
	"eventlink/internal/infra/db"
	"eventlink/internal/pkg/pgconv"
	"eventlink/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// commandReads serves the snapshots commands validate against. It runs
// on whatever DBTX it was built with, so inside Within it sees the
// transaction's own writes.
type commandReads struct {
	dbtx db.DBTX
}

func (r *commandReads) CompanyByID(ctx context.Context, id uuid.UUID) (*shared.CompanySnapshot, error) {
	const query = `SELECT id, name, is_active FROM companies WHERE id = $1`

	var s shared.CompanySnapshot
	err := r.dbtx.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("company not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read company snapshot", err)
	}
	return &s, nil
}

func (r *commandReads) EventByID(ctx context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	const query = `SELECT id, company_id, event_code, name, is_active FROM events WHERE id = $1`
	return r.scanEvent(r.dbtx.QueryRow(ctx, query, id))
}

func (r *commandReads) ActiveEventByCode(ctx context.Context, eventCode string) (*shared.EventSnapshot, error) {
	const query = `
		SELECT id, company_id, event_code, name, is_active
		FROM events WHERE event_code = $1 AND is_active = TRUE`
	return r.scanEvent(r.dbtx.QueryRow(ctx, query, eventCode))
}

func (r *commandReads) EventCodeExists(ctx context.Context, eventCode string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM events WHERE event_code = $1)`

	var exists bool
	if err := r.dbtx.QueryRow(ctx, query, eventCode).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check event code", err)
	}
	return exists, nil
}

func (r *commandReads) ProfileInEvent(ctx context.Context, eventID, profileID uuid.UUID) (*shared.ProfileSnapshot, error) {
	query := `SELECT` + profileSnapshotColumns + ` FROM profiles WHERE event_id = $1 AND id = $2`
	return r.scanProfile(r.dbtx.QueryRow(ctx, query, eventID, profileID))
}

func (r *commandReads) ProfileByEventAndAccessCode(ctx context.Context, eventID uuid.UUID, accessCode string) (*shared.ProfileSnapshot, error) {
	query := `SELECT` + profileSnapshotColumns + ` FROM profiles WHERE event_id = $1 AND access_code = $2`
	return r.scanProfile(r.dbtx.QueryRow(ctx, query, eventID, accessCode))
}

func (r *commandReads) ProfileByEmailAndAccessCode(ctx context.Context, email, accessCode string) (*shared.ProfileSnapshot, error) {
	query := `SELECT` + profileSnapshotColumns + ` FROM profiles WHERE email = $1 AND access_code = $2`
	return r.scanProfile(r.dbtx.QueryRow(ctx, query, email, accessCode))
}

func (r *commandReads) ProfileEmailTaken(ctx context.Context, eventID uuid.UUID, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM profiles WHERE event_id = $1 AND email = $2)`

	var exists bool
	if err := r.dbtx.QueryRow(ctx, query, eventID, email).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check profile email", err)
	}
	return exists, nil
}

func (r *commandReads) AccessCodeExists(ctx context.Context, accessCode string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM profiles WHERE access_code = $1)`

	var exists bool
	if err := r.dbtx.QueryRow(ctx, query, accessCode).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check access code", err)
	}
	return exists, nil
}

func (r *commandReads) SlotRequestByID(ctx context.Context, id uuid.UUID) (*shared.SlotRequestSnapshot, error) {
	const query = `
		SELECT id, profile_id, requester_id, time_slot, status
		FROM networking_slots WHERE id = $1`
	return r.scanSlotRequest(r.dbtx.QueryRow(ctx, query, id))
}

// SlotRequestForTarget scopes the lookup to the deciding attendee, so a
// request that exists but belongs to someone else reads as not found.
func (r *commandReads) SlotRequestForTarget(ctx context.Context, id, targetProfileID uuid.UUID) (*shared.SlotRequestSnapshot, error) {
	const query = `
		SELECT id, profile_id, requester_id, time_slot, status
		FROM networking_slots WHERE id = $1 AND profile_id = $2`
	return r.scanSlotRequest(r.dbtx.QueryRow(ctx, query, id, targetProfileID))
}

const profileSnapshotColumns = `
	id, event_id, full_name, position, company_name, bio, interests,
	linkedin_url, email, phone, photo_url, access_code, code_verified,
	available_slots`

func (r *commandReads) scanEvent(row pgx.Row) (*shared.EventSnapshot, error) {
	var s shared.EventSnapshot
	err := row.Scan(&s.ID, &s.CompanyID, &s.EventCode, &s.Name, &s.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read event snapshot", err)
	}
	return &s, nil
}

func (r *commandReads) scanProfile(row pgx.Row) (*shared.ProfileSnapshot, error) {
	var s shared.ProfileSnapshot
	err := row.Scan(
		&s.ID, &s.EventID, &s.FullName, &s.Position, &s.CompanyName, &s.Bio,
		&s.Interests, &s.LinkedinURL, &s.Email, &s.Phone, &s.PhotoURL,
		&s.AccessCode, &s.CodeVerified, &s.AvailableSlots,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read profile snapshot", err)
	}
	return &s, nil
}

func (r *commandReads) scanSlotRequest(row pgx.Row) (*shared.SlotRequestSnapshot, error) {
	var s shared.SlotRequestSnapshot
	err := row.Scan(&s.ID, &s.ProfileID, &s.RequesterID, &s.TimeSlot, &s.Status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read slot request snapshot", err)
	}
	return &s, nil
}
