package service

import (
	"context"

	"ouderschapsplan-api/internal/dto"
	"ouderschapsplan-api/internal/mapper"
	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/internal/pkg/apperror"
	"ouderschapsplan-api/internal/repository/specification"
	"ouderschapsplan-api/internal/repository/unitofwork"
)

type IZorgService interface {
	List(ctx context.Context, userId, dossierId uint, query dto.ZorgQuery) ([]dto.ZorgResponse, error)
	Create(ctx context.Context, userId, dossierId uint, req *dto.CreateZorgRequest) (*dto.ZorgResponse, error)
	Update(ctx context.Context, userId uint, params dto.ZorgParams, req *dto.UpdateZorgRequest) (*dto.ZorgResponse, error)
	Delete(ctx context.Context, userId uint, params dto.ZorgParams) error
}

type zorgService struct {
	uowFactory    unitofwork.RepositoryFactory
	accessService IAccessService
	omgangMapper  *mapper.OmgangMapper
}

func NewZorgService(uowFactory unitofwork.RepositoryFactory, accessService IAccessService) IZorgService {
	return &zorgService{
		uowFactory:    uowFactory,
		accessService: accessService,
		omgangMapper:  mapper.NewOmgangMapper(),
	}
}

func (s *zorgService) List(ctx context.Context, userId, dossierId uint, query dto.ZorgQuery) ([]dto.ZorgResponse, error) {
	if _, err := s.accessService.RequireDossierAccess(ctx, dossierId, userId); err != nil {
		return nil, err
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.ZorgRepository().FindAllWithRelations(ctx, dossierId, query.ZorgCategorieId)
	if err != nil {
		return nil, err
	}
	return s.omgangMapper.ZorgenToResponse(rows), nil
}

// validateSituatie checks that the situatie exists and belongs to the
// categorie. Situaties without a categorie are valid in every categorie.
func (s *zorgService) validateSituatie(ctx context.Context, uow unitofwork.UnitOfWork, categorieId, situatieId uint) error {
	exists, err := uow.LookupRepository().Exists(ctx, &model.ZorgCategorie{}, categorieId)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.BadRequest("zorgCategorieId: unknown category")
	}

	situatie, err := uow.LookupRepository().FindZorgSituatie(ctx, situatieId)
	if err != nil {
		return err
	}
	if situatie == nil {
		return apperror.BadRequest("zorgSituatieId: unknown situation")
	}
	if situatie.ZorgCategorieId != nil && *situatie.ZorgCategorieId != categorieId {
		return apperror.BadRequest("zorgSituatieId: situation does not belong to the category")
	}
	return nil
}

func (s *zorgService) withRelations(ctx context.Context, uow unitofwork.UnitOfWork, row *model.Zorg) (*dto.ZorgResponse, error) {
	rows, err := uow.ZorgRepository().FindAllWithRelations(ctx, row.DossierId, &row.ZorgCategorieId)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if r.Id == row.Id {
			res := s.omgangMapper.ZorgToResponse(r)
			return &res, nil
		}
	}
	res := s.omgangMapper.ZorgToResponse(row)
	return &res, nil
}

func (s *zorgService) Create(ctx context.Context, userId, dossierId uint, req *dto.CreateZorgRequest) (*dto.ZorgResponse, error) {
	if _, err := s.accessService.RequireDossierAccess(ctx, dossierId, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.validateSituatie(ctx, uow, req.ZorgCategorieId, req.ZorgSituatieId); err != nil {
		return nil, err
	}

	row := &model.Zorg{
		DossierId:       dossierId,
		ZorgCategorieId: req.ZorgCategorieId,
		ZorgSituatieId:  req.ZorgSituatieId,
		Overeenkomst:    req.Overeenkomst,
		SituatieAnders:  req.SituatieAnders,
		AangemaaktDoor:  userId,
	}
	if err := uow.ZorgRepository().Create(ctx, row); err != nil {
		return nil, err
	}
	return s.withRelations(ctx, uow, row)
}

func (s *zorgService) findZorg(ctx context.Context, uow unitofwork.UnitOfWork, params dto.ZorgParams) (*model.Zorg, error) {
	row, err := uow.ZorgRepository().FindOne(ctx,
		specification.ByID{ID: params.ZorgId},
		specification.ByDossierID{DossierID: params.DossierId},
	)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperror.NotFound("Zorg not found")
	}
	return row, nil
}

func (s *zorgService) Update(ctx context.Context, userId uint, params dto.ZorgParams, req *dto.UpdateZorgRequest) (*dto.ZorgResponse, error) {
	if _, err := s.accessService.RequireDossierAccess(ctx, params.DossierId, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	row, err := s.findZorg(ctx, uow, params)
	if err != nil {
		return nil, err
	}

	if req.ZorgSituatieId != nil {
		if err := s.validateSituatie(ctx, uow, row.ZorgCategorieId, *req.ZorgSituatieId); err != nil {
			return nil, err
		}
		row.ZorgSituatieId = *req.ZorgSituatieId
	}
	if req.Overeenkomst != nil {
		row.Overeenkomst = *req.Overeenkomst
	}
	if req.SituatieAnders != nil {
		row.SituatieAnders = *req.SituatieAnders
	}
	row.GewijzigdDoor = &userId

	if err := uow.ZorgRepository().Update(ctx, row); err != nil {
		return nil, err
	}
	return s.withRelations(ctx, uow, row)
}

func (s *zorgService) Delete(ctx context.Context, userId uint, params dto.ZorgParams) error {
	if _, err := s.accessService.RequireDossierAccess(ctx, params.DossierId, userId); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	removed, err := uow.ZorgRepository().Delete(ctx,
		specification.ByID{ID: params.ZorgId},
		specification.ByDossierID{DossierID: params.DossierId},
	)
	if err != nil {
		return err
	}
	if removed == 0 {
		return apperror.NotFound("Zorg not found")
	}
	return nil
}
