package commands

import (
	"context"

	"github.com/google/uuid"

	reqdto "eventlink/internal/handler/dto/request"
	"eventlink/internal/infra"
	"eventlink/internal/pkg/errs"
	"eventlink/internal/usecase/shared"
)

var (
	ErrInvalidAccessCode = errs.New("invalid access code")
	ErrProfileValidation = errs.New("invalid profile data")
)

type ProfileCommands interface {
	// UpdateOwn is attendee self-service: the access code is the only
	// authentication, and only the presented profile can be changed.
	UpdateOwn(ctx context.Context, eventCode string, req reqdto.UpdateProfileRequest) (uuid.UUID, error)
	// Delete removes a profile; staff only. Slot requests the profile
	// is party to go with it.
	Delete(ctx context.Context, id uuid.UUID) error
}

type profileCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewProfileCommands(uow shared.UnitOfWork) ProfileCommands {
	return &profileCommandsImpl{uow: uow}
}

func (c *profileCommandsImpl) UpdateOwn(ctx context.Context, eventCode string, req reqdto.UpdateProfileRequest) (uuid.UUID, error) {
	reads := c.uow.CommandReads()

	evt, err := reads.ActiveEventByCode(ctx, eventCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrEventNotFound
		}
		return uuid.Nil, err
	}

	snap, err := reads.ProfileByEventAndAccessCode(ctx, evt.ID, req.AccessCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrInvalidAccessCode
		}
		return uuid.Nil, err
	}

	applyPatch(snap, req)

	entity, err := profileFromSnapshot(snap)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrProfileValidation)
	}
	if req.AvailableSlots != nil {
		if slotErr := entity.SetAvailableSlots(*req.AvailableSlots); slotErr != nil {
			return uuid.Nil, errs.Mark(slotErr, ErrProfileValidation)
		}
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Profiles().Update(ctx, tx.DB(), entity)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return snap.ID, nil
}

func (c *profileCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Profiles().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrProfileNotFound
			}
			return err
		}
		return nil
	})
}

func applyPatch(snap *shared.ProfileSnapshot, req reqdto.UpdateProfileRequest) {
	if req.FullName != nil {
		snap.FullName = *req.FullName
	}
	if req.Position != nil {
		snap.Position = *req.Position
	}
	if req.CompanyName != nil {
		snap.CompanyName = *req.CompanyName
	}
	if req.Bio != nil {
		snap.Bio = *req.Bio
	}
	if req.Interests != nil {
		snap.Interests = *req.Interests
	}
	if req.LinkedinURL != nil {
		snap.LinkedinURL = *req.LinkedinURL
	}
	if req.Phone != nil {
		snap.Phone = *req.Phone
	}
	if req.PhotoURL != nil {
		snap.PhotoURL = req.PhotoURL
	}
}
