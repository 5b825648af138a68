package service

import (
	"context"

	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/internal/pkg/apperror"
	"ouderschapsplan-api/internal/repository/specification"
	"ouderschapsplan-api/internal/repository/unitofwork"
)

// IAccessService holds the single authorization rule: a dossier and
// everything under it belongs to the user that owns the dossier.
type IAccessService interface {
	CheckAccess(ctx context.Context, dossierId, userId uint) (bool, error)
	IsOwner(ctx context.Context, dossierId, userId uint) (bool, error)
	// RequireDossierAccess answers 404 for a missing dossier and 403 for one
	// owned by someone else.
	RequireDossierAccess(ctx context.Context, dossierId, userId uint) (*model.Dossier, error)
	RequireDossierOwner(ctx context.Context, dossierId, userId uint) (*model.Dossier, error)
}

type accessService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAccessService(uowFactory unitofwork.RepositoryFactory) IAccessService {
	return &accessService{uowFactory: uowFactory}
}

func (s *accessService) CheckAccess(ctx context.Context, dossierId, userId uint) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.DossierRepository().Count(ctx,
		specification.ByID{ID: dossierId},
		specification.UserOwnedBy{UserID: userId},
	)
	return count > 0, err
}

func (s *accessService) IsOwner(ctx context.Context, dossierId, userId uint) (bool, error) {
	return s.CheckAccess(ctx, dossierId, userId)
}

func (s *accessService) RequireDossierAccess(ctx context.Context, dossierId, userId uint) (*model.Dossier, error) {
	return s.require(ctx, dossierId, userId, "Access denied")
}

func (s *accessService) RequireDossierOwner(ctx context.Context, dossierId, userId uint) (*model.Dossier, error) {
	return s.require(ctx, dossierId, userId, "Only the owner can perform this action")
}

func (s *accessService) require(ctx context.Context, dossierId, userId uint, denied string) (*model.Dossier, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	dossier, err := uow.DossierRepository().FindOne(ctx, specification.ByID{ID: dossierId})
	if err != nil {
		return nil, err
	}
	if dossier == nil {
		return nil, apperror.NotFound("Dossier not found")
	}
	if dossier.GebruikerId != userId {
		return nil, apperror.Forbidden(denied)
	}
	return dossier, nil
}
