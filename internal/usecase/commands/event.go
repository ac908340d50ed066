package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"eventlink/internal/domain/event"
	reqdto "eventlink/internal/handler/dto/request"
	"eventlink/internal/infra"
	"eventlink/internal/pkg/accesscode"
	"eventlink/internal/pkg/errs"
	"eventlink/internal/usecase/shared"
)

var (
	ErrEventNotFound       = errs.New("event not found")
	ErrEventValidation     = errs.New("invalid event data")
	ErrEventCodeGeneration = errs.New("could not generate a unique event code")
)

const maxCodeAttempts = 5

type EventCommands interface {
	Create(ctx context.Context, req reqdto.CreateEventRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateEventRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewEventCommands(uow shared.UnitOfWork) EventCommands {
	return &eventCommandsImpl{uow: uow}
}

func (c *eventCommandsImpl) Create(ctx context.Context, req reqdto.CreateEventRequest) (uuid.UUID, error) {
	reads := c.uow.CommandReads()

	if _, err := reads.CompanyByID(ctx, req.CompanyID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrCompanyNotFound
		}
		return uuid.Nil, err
	}

	startDate, endDate, err := req.Dates()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrEventValidation)
	}
	startTime, endTime, hours, err := parseSchedule(req.StartTime, req.EndTime, req.NetworkingHours)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrEventValidation)
	}

	// The event code is unique platform-wide; regenerate on collision
	// and let the constraint be the judge.
	var id uuid.UUID
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, genErr := accesscode.NewEventCode()
		if genErr != nil {
			return uuid.Nil, genErr
		}

		entity, newErr := event.NewEvent(
			req.CompanyID, req.Name, code, req.Description,
			startDate, endDate, startTime, endTime, hours, req.Location,
		)
		if newErr != nil {
			return uuid.Nil, errs.Mark(newErr, ErrEventValidation)
		}

		err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			createdID, createErr := tx.Events().Create(ctx, tx.DB(), entity)
			if createErr != nil {
				return createErr
			}
			id = createdID
			return nil
		})
		if err == nil {
			return id, nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, err
		}
	}
	return uuid.Nil, ErrEventCodeGeneration
}

func (c *eventCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateEventRequest) error {
	snap, err := c.uow.CommandReads().EventByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrEventNotFound
		}
		return err
	}

	startDate, endDate, err := req.Dates()
	if err != nil {
		return errs.Mark(err, ErrEventValidation)
	}
	startTime, endTime, hours, err := parseSchedule(req.StartTime, req.EndTime, req.NetworkingHours)
	if err != nil {
		return errs.Mark(err, ErrEventValidation)
	}

	entity, err := event.NewEvent(
		snap.CompanyID, req.Name, snap.EventCode, req.Description,
		startDate, endDate, startTime, endTime, hours, req.Location,
	)
	if err != nil {
		return errs.Mark(err, ErrEventValidation)
	}

	isActive := snap.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	updated := event.ReconstructEvent(
		snap.ID, snap.CompanyID, entity.Name(), snap.EventCode, entity.Description(),
		startDate, endDate, startTime, endTime, hours, entity.Location(),
		isActive, time.Time{}, time.Time{},
	)

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Events().Update(ctx, tx.DB(), updated); updateErr != nil {
			if infra.IsKind(updateErr, infra.KindNotFound) {
				return ErrEventNotFound
			}
			return updateErr
		}
		return nil
	})
}

func (c *eventCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Events().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		return nil
	})
}

func parseSchedule(startStr, endStr string, networkingHours float64) (event.TimeOfDay, event.TimeOfDay, event.NetworkingHours, error) {
	startTime, err := event.NewTimeOfDay(startStr)
	if err != nil {
		return event.TimeOfDay{}, event.TimeOfDay{}, event.NetworkingHours{}, err
	}
	endTime, err := event.NewTimeOfDay(endStr)
	if err != nil {
		return event.TimeOfDay{}, event.TimeOfDay{}, event.NetworkingHours{}, err
	}
	hours, err := event.NewNetworkingHours(networkingHours)
	if err != nil {
		return event.TimeOfDay{}, event.TimeOfDay{}, event.NetworkingHours{}, err
	}
	return startTime, endTime, hours, nil
}
