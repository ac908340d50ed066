package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"eventlink/internal/domain/company"
	reqdto "eventlink/internal/handler/dto/request"
	"eventlink/internal/infra"
	"eventlink/internal/pkg/errs"
	"eventlink/internal/usecase/shared"
)

var (
	ErrCompanyNotFound   = errs.New("company not found")
	ErrCompanyValidation = errs.New("invalid company data")
	ErrCompanyHasEvents  = errs.New("company still has events")
)

type CompanyCommands interface {
	Create(ctx context.Context, req reqdto.CreateCompanyRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCompanyRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type companyCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCompanyCommands(uow shared.UnitOfWork) CompanyCommands {
	return &companyCommandsImpl{uow: uow}
}

func (c *companyCommandsImpl) Create(ctx context.Context, req reqdto.CreateCompanyRequest) (uuid.UUID, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrCompanyValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		createdID, createErr := tx.Companies().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return createErr
		}
		id = createdID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *companyCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCompanyRequest) error {
	snap, err := c.uow.CommandReads().CompanyByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCompanyNotFound
		}
		return err
	}

	isActive := snap.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	entity, err := company.NewCompany(
		req.Name, req.Description, req.Industry, req.LogoURL,
		req.PrimaryColor, req.SecondaryColor, req.AccentColor,
	)
	if err != nil {
		return errs.Mark(err, ErrCompanyValidation)
	}

	// Timestamps are owned by the database; zero values are fine here.
	updated := company.ReconstructCompany(
		snap.ID, entity.Name(), entity.Description(), entity.Industry(), entity.LogoURL(),
		entity.PrimaryColor(), entity.SecondaryColor(), entity.AccentColor(),
		isActive, time.Time{}, time.Time{},
	)

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Companies().Update(ctx, tx.DB(), updated); updateErr != nil {
			if infra.IsKind(updateErr, infra.KindNotFound) {
				return ErrCompanyNotFound
			}
			return updateErr
		}
		return nil
	})
}

func (c *companyCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Companies().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCompanyNotFound
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrCompanyHasEvents
			}
			return err
		}
		return nil
	})
}
