package service

import (
	"context"

	"ouderschapsplan-api/internal/dto"
	"ouderschapsplan-api/internal/mapper"
	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/internal/pkg/apperror"
	"ouderschapsplan-api/internal/repository/specification"
	"ouderschapsplan-api/internal/repository/unitofwork"
	"ouderschapsplan-api/pkg/database"
)

const msgDuplicatePartij = "This person already has this role in the dossier"

type IPartijService interface {
	List(ctx context.Context, userId, dossierId uint) ([]dto.PartijResponse, error)
	Create(ctx context.Context, userId, dossierId uint, req *dto.CreatePartijRequest) (*dto.PartijResponse, error)
	Update(ctx context.Context, userId uint, params dto.PartijParams, req *dto.UpdatePartijRequest) (*dto.PartijResponse, error)
	Delete(ctx context.Context, userId uint, params dto.PartijParams) error
}

type partijService struct {
	uowFactory    unitofwork.RepositoryFactory
	accessService IAccessService
	dossierMapper *mapper.DossierMapper
	persoonMapper *mapper.PersoonMapper
}

func NewPartijService(uowFactory unitofwork.RepositoryFactory, accessService IAccessService) IPartijService {
	return &partijService{
		uowFactory:    uowFactory,
		accessService: accessService,
		dossierMapper: mapper.NewDossierMapper(),
		persoonMapper: mapper.NewPersoonMapper(),
	}
}

func (s *partijService) List(ctx context.Context, userId, dossierId uint) ([]dto.PartijResponse, error) {
	if _, err := s.accessService.RequireDossierAccess(ctx, dossierId, userId); err != nil {
		return nil, err
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	partijen, err := uow.PartijRepository().FindAllByDossier(ctx, dossierId)
	if err != nil {
		return nil, err
	}
	return s.dossierMapper.PartijenToResponse(partijen), nil
}

func (s *partijService) requireRol(ctx context.Context, uow unitofwork.UnitOfWork, rolId uint) error {
	exists, err := uow.LookupRepository().Exists(ctx, &model.Rol{}, rolId)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.BadRequest("rolId: unknown role")
	}
	return nil
}

func (s *partijService) Create(ctx context.Context, userId, dossierId uint, req *dto.CreatePartijRequest) (*dto.PartijResponse, error) {
	if _, err := s.accessService.RequireDossierAccess(ctx, dossierId, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.requireRol(ctx, uow, req.RolId); err != nil {
		return nil, err
	}

	if req.PersoonId != nil {
		persoon, err := uow.PersoonRepository().FindOne(ctx, specification.ByID{ID: *req.PersoonId})
		if err != nil {
			return nil, err
		}
		if persoon == nil {
			return nil, apperror.NotFound("Persoon not found")
		}
		taken, err := uow.PartijRepository().Count(ctx,
			specification.ByDossierID{DossierID: dossierId},
			specification.ByPersoonID{PersoonID: persoon.Id},
			specification.ByRolID{RolID: req.RolId},
		)
		if err != nil {
			return nil, err
		}
		if taken > 0 {
			return nil, apperror.Conflict(msgDuplicatePartij)
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	persoonId := uint(0)
	if req.PersoonId != nil {
		persoonId = *req.PersoonId
	} else {
		persoon := s.persoonMapper.ToModel(req.Persoon)
		persoon.GebruikerId = &userId
		if err := uow.PersoonRepository().Create(ctx, persoon); err != nil {
			return nil, err
		}
		persoonId = persoon.Id
	}

	partij := &model.Partij{DossierId: dossierId, PersoonId: persoonId, RolId: req.RolId}
	if err := uow.PartijRepository().Create(ctx, partij); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperror.Conflict(msgDuplicatePartij)
		}
		return nil, err
	}

	partij, err := uow.PartijRepository().FindOneWithRelations(ctx, partij.Id)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	res := s.dossierMapper.PartijToResponse(partij)
	return &res, nil
}

func (s *partijService) findPartij(ctx context.Context, uow unitofwork.UnitOfWork, params dto.PartijParams) (*model.Partij, error) {
	partij, err := uow.PartijRepository().FindOne(ctx,
		specification.ByID{ID: params.PartijId},
		specification.ByDossierID{DossierID: params.DossierId},
	)
	if err != nil {
		return nil, err
	}
	if partij == nil {
		return nil, apperror.NotFound("Partij not found")
	}
	return partij, nil
}

func (s *partijService) Update(ctx context.Context, userId uint, params dto.PartijParams, req *dto.UpdatePartijRequest) (*dto.PartijResponse, error) {
	if _, err := s.accessService.RequireDossierAccess(ctx, params.DossierId, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	partij, err := s.findPartij(ctx, uow, params)
	if err != nil {
		return nil, err
	}

	if req.RolId != nil && *req.RolId != partij.RolId {
		if err := s.requireRol(ctx, uow, *req.RolId); err != nil {
			return nil, err
		}
		taken, err := uow.PartijRepository().Count(ctx,
			specification.ByDossierID{DossierID: partij.DossierId},
			specification.ByPersoonID{PersoonID: partij.PersoonId},
			specification.ByRolID{RolID: *req.RolId},
			specification.ExcludeID{ID: partij.Id},
		)
		if err != nil {
			return nil, err
		}
		if taken > 0 {
			return nil, apperror.Conflict(msgDuplicatePartij)
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if req.RolId != nil {
		partij.RolId = *req.RolId
		if err := uow.PartijRepository().Update(ctx, partij); err != nil {
			if database.IsUniqueViolation(err) {
				return nil, apperror.Conflict(msgDuplicatePartij)
			}
			return nil, err
		}
	}

	if req.Persoon != nil {
		persoon, err := uow.PersoonRepository().FindOne(ctx, specification.ByID{ID: partij.PersoonId})
		if err != nil {
			return nil, err
		}
		if persoon == nil {
			return nil, apperror.NotFound("Persoon not found")
		}
		s.persoonMapper.Apply(persoon, req.Persoon)
		if err := uow.PersoonRepository().Update(ctx, persoon); err != nil {
			return nil, err
		}
	}

	partij, err = uow.PartijRepository().FindOneWithRelations(ctx, partij.Id)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	res := s.dossierMapper.PartijToResponse(partij)
	return &res, nil
}

func (s *partijService) Delete(ctx context.Context, userId uint, params dto.PartijParams) error {
	if _, err := s.accessService.RequireDossierAccess(ctx, params.DossierId, userId); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	removed, err := uow.PartijRepository().Delete(ctx,
		specification.ByID{ID: params.PartijId},
		specification.ByDossierID{DossierID: params.DossierId},
	)
	if err != nil {
		return err
	}
	if removed == 0 {
		return apperror.NotFound("Partij not found")
	}
	return nil
}
