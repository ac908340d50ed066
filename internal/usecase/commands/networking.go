package commands

import (
	"context"

	"github.com/google/uuid"

	"eventlink/internal/domain/networking"
	reqdto "eventlink/internal/handler/dto/request"
	"eventlink/internal/infra"
	"eventlink/internal/pkg/errs"
	"eventlink/internal/usecase/shared"
)

var (
	ErrTargetNotFound      = errs.New("target profile not found")
	ErrSelfRequest         = errs.New("cannot request a slot with yourself")
	ErrSlotNotAvailable    = errs.New("slot not available")
	ErrSlotConflict        = errs.New("this slot already has a request")
	ErrSlotRequestNotFound = errs.New("slot request not found")
	ErrNotSlotParty        = errs.New("not a party to this slot request")
	ErrInvalidDecision     = errs.New("status must be accepted or rejected")
)

type NetworkingCommands interface {
	// RequestSlot claims one of the target's declared slots for the
	// requester. The (target, time slot) pair is first come, first
	// served; a loser gets ErrSlotConflict and learns nothing about the
	// holder.
	RequestSlot(ctx context.Context, eventCode string, req reqdto.RequestSlotRequest) (uuid.UUID, error)
	// DecideSlot is the target accepting or rejecting a request aimed
	// at them. The lookup is scoped to the deciding attendee, so
	// someone else's request id reads as not found.
	DecideSlot(ctx context.Context, eventCode string, slotID uuid.UUID, req reqdto.DecideSlotRequest) error
	// CancelSlot moves a request to cancelled. Requester or target
	// only; anyone else with a valid credential gets a forbidden error.
	CancelSlot(ctx context.Context, eventCode, accessCode string, slotID uuid.UUID) error
}

type networkingCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewNetworkingCommands(uow shared.UnitOfWork) NetworkingCommands {
	return &networkingCommandsImpl{uow: uow}
}

func (c *networkingCommandsImpl) RequestSlot(ctx context.Context, eventCode string, req reqdto.RequestSlotRequest) (uuid.UUID, error) {
	reads := c.uow.CommandReads()

	evt, err := reads.ActiveEventByCode(ctx, eventCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrEventNotFound
		}
		return uuid.Nil, err
	}

	requester, err := reads.ProfileByEventAndAccessCode(ctx, evt.ID, req.AccessCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrInvalidAccessCode
		}
		return uuid.Nil, err
	}

	target, err := reads.ProfileInEvent(ctx, evt.ID, req.ProfileID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrTargetNotFound
		}
		return uuid.Nil, err
	}

	if requester.ID == target.ID {
		return uuid.Nil, ErrSelfRequest
	}

	// Booking eligibility is the target's declared list, nothing else.
	if !contains(target.AvailableSlots, req.TimeSlot) {
		return uuid.Nil, ErrSlotNotAvailable
	}

	slotRequest, err := networking.NewSlotRequest(target.ID, requester.ID, req.TimeSlot, req.Message)
	if err != nil {
		if err == networking.ErrSelfRequest {
			return uuid.Nil, ErrSelfRequest
		}
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		createdID, createErr := tx.SlotRequests().Create(ctx, tx.DB(), slotRequest)
		if createErr != nil {
			return createErr
		}
		id = createdID
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrSlotConflict
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (c *networkingCommandsImpl) DecideSlot(ctx context.Context, eventCode string, slotID uuid.UUID, req reqdto.DecideSlotRequest) error {
	reads := c.uow.CommandReads()

	evt, err := reads.ActiveEventByCode(ctx, eventCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrEventNotFound
		}
		return err
	}

	decider, err := reads.ProfileByEventAndAccessCode(ctx, evt.ID, req.AccessCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrInvalidAccessCode
		}
		return err
	}

	// Resolve the request before looking at the status, so a bad status
	// aimed at someone else's request still reads as not found.
	snap, err := reads.SlotRequestForTarget(ctx, slotID, decider.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSlotRequestNotFound
		}
		return err
	}

	decision, err := networking.NewDecision(req.Status)
	if err != nil {
		return ErrInvalidDecision
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.SlotRequests().UpdateStatus(ctx, tx.DB(), snap.ID, decision)
	})
}

func (c *networkingCommandsImpl) CancelSlot(ctx context.Context, eventCode, accessCode string, slotID uuid.UUID) error {
	reads := c.uow.CommandReads()

	evt, err := reads.ActiveEventByCode(ctx, eventCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrEventNotFound
		}
		return err
	}

	caller, err := reads.ProfileByEventAndAccessCode(ctx, evt.ID, accessCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrInvalidAccessCode
		}
		return err
	}

	snap, err := reads.SlotRequestByID(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSlotRequestNotFound
		}
		return err
	}

	if caller.ID != snap.RequesterID && caller.ID != snap.ProfileID {
		return ErrNotSlotParty
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.SlotRequests().UpdateStatus(ctx, tx.DB(), snap.ID, networking.StatusCancelled)
	})
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
