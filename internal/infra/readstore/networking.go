package readstore

import (
	"context"

	"eventlink/internal/domain/networking"
	"eventlink/internal/infra"
	"eventlink/internal/infra/db"
	"eventlink/internal/pkg/pgconv"
	"eventlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const slotViewColumns = `
	n.id, n.profile_id, tp.full_name, tp.email, tp.phone,
	n.requester_id, rp.full_name, rp.position, rp.company_name,
	rp.photo_url, rp.email, rp.phone,
	n.time_slot, n.message, n.status, n.created_at, n.updated_at`

const slotViewJoins = `
	FROM networking_slots n
	JOIN profiles tp ON tp.id = n.profile_id
	JOIN profiles rp ON rp.id = n.requester_id`

type NetworkingReadStore struct {
	db db.DBTX
}

func NewNetworkingReadStore(db db.DBTX) *NetworkingReadStore {
	return &NetworkingReadStore{db: db}
}

func (r *NetworkingReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.NetworkingSlotView, error) {
	query := `SELECT` + slotViewColumns + slotViewJoins + ` WHERE n.id = $1`

	view, err := scanSlotView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot request by ID", err)
	}
	return view, nil
}

func (r *NetworkingReadStore) ListForTarget(ctx context.Context, profileID uuid.UUID) ([]*queries.NetworkingSlotView, error) {
	query := `SELECT` + slotViewColumns + slotViewJoins + `
		WHERE n.profile_id = $1 ORDER BY n.time_slot`
	return r.list(ctx, query, profileID)
}

func (r *NetworkingReadStore) ListForRequester(ctx context.Context, profileID uuid.UUID) ([]*queries.NetworkingSlotView, error) {
	query := `SELECT` + slotViewColumns + slotViewJoins + `
		WHERE n.requester_id = $1 ORDER BY n.time_slot`
	return r.list(ctx, query, profileID)
}

func (r *NetworkingReadStore) list(ctx context.Context, query string, profileID uuid.UUID) ([]*queries.NetworkingSlotView, error) {
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slot requests", err)
	}
	defer rows.Close()

	views := []*queries.NetworkingSlotView{}
	for rows.Next() {
		view, err := scanSlotView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot request row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list slot requests", err)
	}
	return views, nil
}

// scanSlotView applies the contact-disclosure gate: email and phone of
// both parties leave this function only on accepted requests.
func scanSlotView(row pgx.Row) (*queries.NetworkingSlotView, error) {
	var v queries.NetworkingSlotView
	var targetEmail, targetPhone, requesterEmail, requesterPhone string
	err := row.Scan(
		&v.ID, &v.ProfileID, &v.ProfileName, &targetEmail, &targetPhone,
		&v.RequesterID, &v.RequesterName, &v.RequesterPosition, &v.RequesterCompany,
		&v.RequesterPhotoURL, &requesterEmail, &requesterPhone,
		&v.TimeSlot, &v.Message, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if v.Status == networking.StatusAccepted.String() {
		v.ProfileEmail = &targetEmail
		v.ProfilePhone = &targetPhone
		v.RequesterEmail = &requesterEmail
		v.RequesterPhone = &requesterPhone
	}
	return &v, nil
}
