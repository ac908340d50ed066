package readstore

import (
	"context"
	"fmt"

	"eventlink/internal/infra"
	"eventlink/internal/infra/db"
	"eventlink/internal/pkg/pgconv"
	"eventlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const eventViewColumns = `
	e.id, e.company_id, c.name, c.logo_url,
	c.primary_color, c.secondary_color, c.accent_color,
	e.name, e.event_code, e.description,
	e.start_date, e.end_date, e.start_time, e.end_time,
	e.networking_hours, e.location, e.is_active,
	(SELECT COUNT(*) FROM profiles p WHERE p.event_id = e.id) AS profiles_count,
	e.created_at, e.updated_at`

type EventReadStore struct {
	db db.DBTX
}

func NewEventReadStore(db db.DBTX) *EventReadStore {
	return &EventReadStore{db: db}
}

func (r *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	query := `SELECT` + eventViewColumns + `
		FROM events e JOIN companies c ON c.id = e.company_id
		WHERE e.id = $1`

	view, err := scanEventView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event by ID", err)
	}
	return view, nil
}

func (r *EventReadStore) FindActiveByCode(ctx context.Context, eventCode string) (*queries.EventView, error) {
	query := `SELECT` + eventViewColumns + `
		FROM events e JOIN companies c ON c.id = e.company_id
		WHERE e.event_code = $1 AND e.is_active = TRUE`

	view, err := scanEventView(r.db.QueryRow(ctx, query, eventCode))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event by code", err)
	}
	return view, nil
}

func (r *EventReadStore) List(ctx context.Context, filters queries.EventFilters) ([]*queries.EventView, error) {
	query := `SELECT` + eventViewColumns + `
		FROM events e JOIN companies c ON c.id = e.company_id
		WHERE ($1::uuid IS NULL OR e.company_id = $1)
		  AND ($2::boolean IS NULL OR e.is_active = $2)
		ORDER BY e.start_date DESC, e.name`

	rows, err := r.db.Query(ctx, query, filters.CompanyID, filters.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events", err)
	}
	defer rows.Close()

	views := []*queries.EventView{}
	for rows.Next() {
		view, err := scanEventView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan event row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list events", err)
	}
	return views, nil
}

func scanEventView(row pgx.Row) (*queries.EventView, error) {
	var v queries.EventView
	var startTime, endTime pgtype.Time
	err := row.Scan(
		&v.ID, &v.CompanyID, &v.Company.Name, &v.Company.LogoURL,
		&v.Company.PrimaryColor, &v.Company.SecondaryColor, &v.Company.AccentColor,
		&v.Name, &v.EventCode, &v.Description,
		&v.StartDate, &v.EndDate, &startTime, &endTime,
		&v.NetworkingHours, &v.Location, &v.IsActive,
		&v.ProfilesCount, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.StartTime = clockLabel(startTime)
	v.EndTime = clockLabel(endTime)
	return &v, nil
}

func clockLabel(t pgtype.Time) string {
	m := pgconv.MinutesFromPgTime(t)
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
