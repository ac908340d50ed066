package repository

import (
	"context"

	"eventlink/internal/domain/event"
	"eventlink/internal/infra"
	"eventlink/internal/infra/db"
	"eventlink/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type EventRepository struct{}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

func (r *EventRepository) Create(ctx context.Context, tx db.DBTX, e *event.Event) (uuid.UUID, error) {
	const query = `
		INSERT INTO events (
			id, company_id, name, event_code, description,
			start_date, end_date, start_time, end_time,
			networking_hours, location, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		e.ID(), e.CompanyID(), e.Name(), e.EventCode(), e.Description(),
		e.StartDate(), e.EndDate(),
		pgconv.MinutesToPgTime(e.StartTime().Minutes()),
		pgconv.MinutesToPgTime(e.EndTime().Minutes()),
		e.Hours().Value(), e.Location(), e.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create event", err)
	}
	return id, nil
}

func (r *EventRepository) Update(ctx context.Context, tx db.DBTX, e *event.Event) error {
	const query = `
		UPDATE events SET
			name = $2, description = $3,
			start_date = $4, end_date = $5, start_time = $6, end_time = $7,
			networking_hours = $8, location = $9, is_active = $10,
			updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		e.ID(), e.Name(), e.Description(),
		e.StartDate(), e.EndDate(),
		pgconv.MinutesToPgTime(e.StartTime().Minutes()),
		pgconv.MinutesToPgTime(e.EndTime().Minutes()),
		e.Hours().Value(), e.Location(), e.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}
	return nil
}
