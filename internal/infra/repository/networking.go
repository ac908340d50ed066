package repository

import (
	"context"

	"eventlink/internal/domain/networking"
	"eventlink/internal/infra"
	"eventlink/internal/infra/db"

	"github.com/google/uuid"
)

type SlotRequestRepository struct{}

func NewSlotRequestRepository() *SlotRequestRepository {
	return &SlotRequestRepository{}
}

// Create is the atomic get-or-create on (profile_id, time_slot). The
// unique constraint decides the winner under concurrency; a losing
// insert affects zero rows and surfaces as a duplicate-key error.
// Check-then-insert would race, so it is never done here.
func (r *SlotRequestRepository) Create(ctx context.Context, tx db.DBTX, req *networking.SlotRequest) (uuid.UUID, error) {
	const query = `
		INSERT INTO networking_slots (
			id, profile_id, requester_id, time_slot, message, status
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (profile_id, time_slot) DO NOTHING`

	tag, err := tx.Exec(ctx, query,
		req.ID(), req.ProfileID(), req.RequesterID(),
		req.TimeSlot(), req.Message(), req.Status().String(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create slot request", err)
	}
	if tag.RowsAffected() == 0 {
		return uuid.Nil, infra.WrapRepoErr("slot already requested", nil, infra.KindDuplicateKey)
	}
	return req.ID(), nil
}

func (r *SlotRequestRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status networking.Status) error {
	const query = `
		UPDATE networking_slots SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update slot request status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot request not found", nil, infra.KindNotFound)
	}
	return nil
}
