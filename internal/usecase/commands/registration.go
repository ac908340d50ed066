package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"eventlink/internal/domain/profile"
	reqdto "eventlink/internal/handler/dto/request"
	"eventlink/internal/infra"
	"eventlink/internal/pkg/accesscode"
	"eventlink/internal/pkg/errs"
	"eventlink/internal/usecase/shared"
)

var (
	ErrProfileNotFound        = errs.New("profile not found")
	ErrAlreadyRegistered      = errs.New("already registered for this event")
	ErrRegistrationValidation = errs.New("invalid registration data")
	ErrAccessCodeGeneration   = errs.New("could not generate a unique access code")
)

type RegistrationCommands interface {
	// Register creates a profile for the event, either from the request
	// fields or by carrying over an existing profile from another
	// event. The access-code email is best effort.
	Register(ctx context.Context, eventCode string, req reqdto.RegisterProfileRequest) (*RegistrationResult, error)
	// CheckExisting looks up a profile by email and access code across
	// all events, for pre-filling a carry-over registration.
	CheckExisting(ctx context.Context, eventCode, email, accessCode string) (*shared.ProfileSnapshot, error)
	// Verify resolves the credential and sets the verification flag.
	// One-way, idempotent; a bad code here is a 404 to mirror the
	// public verify endpoint's contract.
	Verify(ctx context.Context, eventCode, accessCode string) (uuid.UUID, error)
}

type registrationCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier AccessCodeNotifier
}

func NewRegistrationCommands(uow shared.UnitOfWork, notifier AccessCodeNotifier) RegistrationCommands {
	return &registrationCommandsImpl{uow: uow, notifier: notifier}
}

func (c *registrationCommandsImpl) Register(ctx context.Context, eventCode string, req reqdto.RegisterProfileRequest) (*RegistrationResult, error) {
	reads := c.uow.CommandReads()

	evt, err := reads.ActiveEventByCode(ctx, eventCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	var newProfile *profile.Profile
	if req.UseExistingProfile {
		newProfile, err = c.buildCarryOver(ctx, evt.ID, req)
	} else {
		newProfile, err = c.buildFresh(ctx, evt.ID, req)
	}
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, createErr := tx.Profiles().Create(ctx, tx.DB(), newProfile)
		return createErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}

	// Best effort only. Registration is complete at this point and a
	// failed email never unwinds it.
	if sendErr := c.notifier.SendAccessCode(ctx,
		newProfile.Email().Value(), newProfile.FullName(),
		evt.Name, evt.EventCode, newProfile.AccessCode(),
	); sendErr != nil {
		slog.Warn("failed to send access code email",
			"profile_id", newProfile.ID(),
			"event_code", evt.EventCode,
			"error", sendErr.Error())
	}

	return &RegistrationResult{
		ProfileID:   newProfile.ID(),
		AccessCode:  newProfile.AccessCode(),
		CarriedOver: req.UseExistingProfile,
	}, nil
}

func (c *registrationCommandsImpl) CheckExisting(ctx context.Context, eventCode, email, accessCode string) (*shared.ProfileSnapshot, error) {
	reads := c.uow.CommandReads()

	evt, err := reads.ActiveEventByCode(ctx, eventCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	snap, err := reads.ProfileByEmailAndAccessCode(ctx, email, accessCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	taken, err := reads.ProfileEmailTaken(ctx, evt.ID, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrAlreadyRegistered
	}

	return snap, nil
}

func (c *registrationCommandsImpl) Verify(ctx context.Context, eventCode, accessCode string) (uuid.UUID, error) {
	reads := c.uow.CommandReads()

	evt, err := reads.ActiveEventByCode(ctx, eventCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrEventNotFound
		}
		return uuid.Nil, err
	}

	snap, err := reads.ProfileByEventAndAccessCode(ctx, evt.ID, accessCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrProfileNotFound
		}
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Profiles().SetVerified(ctx, tx.DB(), snap.ID)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return snap.ID, nil
}

func (c *registrationCommandsImpl) buildFresh(ctx context.Context, eventID uuid.UUID, req reqdto.RegisterProfileRequest) (*profile.Profile, error) {
	email, err := profile.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrRegistrationValidation)
	}

	taken, err := c.uow.CommandReads().ProfileEmailTaken(ctx, eventID, email.Value())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrAlreadyRegistered
	}

	code, err := c.freshAccessCode(ctx)
	if err != nil {
		return nil, err
	}

	p, err := profile.NewProfile(
		eventID,
		req.FullName, req.Position, req.CompanyName, req.Bio,
		req.Interests, req.LinkedinURL, email, req.Phone, req.PhotoURL,
		code,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrRegistrationValidation)
	}
	return p, nil
}

func (c *registrationCommandsImpl) buildCarryOver(ctx context.Context, eventID uuid.UUID, req reqdto.RegisterProfileRequest) (*profile.Profile, error) {
	reads := c.uow.CommandReads()

	snap, err := reads.ProfileByEmailAndAccessCode(ctx, req.ExistingEmail, req.ExistingAccessCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	taken, err := reads.ProfileEmailTaken(ctx, eventID, snap.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrAlreadyRegistered
	}

	source, err := profileFromSnapshot(snap)
	if err != nil {
		return nil, err
	}

	code, err := c.freshAccessCode(ctx)
	if err != nil {
		return nil, err
	}

	p, err := source.CarryOver(eventID, code)
	if err != nil {
		return nil, errs.Mark(err, ErrRegistrationValidation)
	}
	return p, nil
}

// freshAccessCode mirrors the registration desk contract: codes are
// globally unique, regenerated until unused.
func (c *registrationCommandsImpl) freshAccessCode(ctx context.Context) (string, error) {
	reads := c.uow.CommandReads()
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := accesscode.New()
		if err != nil {
			return "", err
		}
		exists, err := reads.AccessCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrAccessCodeGeneration
}

func profileFromSnapshot(snap *shared.ProfileSnapshot) (*profile.Profile, error) {
	email, err := profile.NewEmail(snap.Email)
	if err != nil {
		return nil, err
	}
	return profile.ReconstructProfile(
		snap.ID, snap.EventID,
		snap.FullName, snap.Position, snap.CompanyName, snap.Bio,
		snap.Interests, snap.LinkedinURL, email, snap.Phone, snap.PhotoURL,
		snap.AccessCode, snap.CodeVerified, snap.AvailableSlots,
		time.Time{}, time.Time{},
	), nil
}
