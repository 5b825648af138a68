package service

import (
	"context"
	"fmt"

	"ouderschapsplan-api/internal/dto"
	"ouderschapsplan-api/internal/mapper"
	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/internal/pkg/apperror"
	"ouderschapsplan-api/internal/repository/specification"
	"ouderschapsplan-api/internal/repository/unitofwork"
)

type IOuderschapsplanService interface {
	GetInfo(ctx context.Context, userId, dossierId uint) (*dto.OuderschapsplanResponse, error)
	// UpsertInfo reports whether a new row was inserted.
	UpsertInfo(ctx context.Context, userId, dossierId uint, req *dto.OuderschapsplanRequest) (*dto.OuderschapsplanResponse, bool, error)

	GetAlimentatie(ctx context.Context, userId, dossierId uint) (*dto.AlimentatieResponse, error)
	UpsertAlimentatie(ctx context.Context, userId, dossierId uint, req *dto.AlimentatieRequest) (*dto.AlimentatieResponse, bool, error)
	ReplaceBijdragen(ctx context.Context, userId, dossierId uint, req *dto.BijdragenRequest) (*dto.AlimentatieResponse, error)
	ReplaceFinancieleAfspraken(ctx context.Context, userId, dossierId uint, req *dto.FinancieleAfsprakenRequest) (*dto.AlimentatieResponse, error)
}

type ouderschapsplanService struct {
	uowFactory    unitofwork.RepositoryFactory
	accessService IAccessService
	planMapper    *mapper.OuderschapsplanMapper
}

func NewOuderschapsplanService(uowFactory unitofwork.RepositoryFactory, accessService IAccessService) IOuderschapsplanService {
	return &ouderschapsplanService{
		uowFactory:    uowFactory,
		accessService: accessService,
		planMapper:    mapper.NewOuderschapsplanMapper(),
	}
}

func (s *ouderschapsplanService) GetInfo(ctx context.Context, userId, dossierId uint) (*dto.OuderschapsplanResponse, error) {
	if _, err := s.accessService.RequireDossierAccess(ctx, dossierId, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	info, err := uow.OuderschapsplanRepository().FindOne(ctx, specification.ByDossierID{DossierID: dossierId})
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, apperror.NotFound("Ouderschapsplan info not found")
	}
	return s.planMapper.InfoToResponse(info), nil
}

// UpsertInfo fetches the row of the dossier and updates it in place, or
// inserts it when there is none.
func (s *ouderschapsplanService) UpsertInfo(ctx context.Context, userId, dossierId uint, req *dto.OuderschapsplanRequest) (*dto.OuderschapsplanResponse, bool, error) {
	if _, err := s.accessService.RequireDossierAccess(ctx, dossierId, userId); err != nil {
		return nil, false, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.OuderschapsplanRepository()

	info, err := repo.FindOne(ctx, specification.ByDossierID{DossierID: dossierId})
	if err != nil {
		return nil, false, err
	}

	created := info == nil
	if created {
		info = &model.OuderschapsplanInfo{DossierId: dossierId}
	}
	if err := s.planMapper.ApplyInfo(info, req); err != nil {
		return nil, false, apperror.BadRequest("bankrekeningKinderen: invalid value")
	}

	if created {
		err = repo.Create(ctx, info)
	} else {
		err = repo.Update(ctx, info)
	}
	if err != nil {
		return nil, false, err
	}
	return s.planMapper.InfoToResponse(info), created, nil
}

func (s *ouderschapsplanService) findAlimentatie(ctx context.Context, uow unitofwork.UnitOfWork, dossierId uint) (*model.Alimentatie, error) {
	alimentatie, err := uow.AlimentatieRepository().FindOneWithLines(ctx, dossierId)
	if err != nil {
		return nil, err
	}
	if alimentatie == nil {
		return nil, apperror.NotFound("Alimentatie not found")
	}
	return alimentatie, nil
}

func (s *ouderschapsplanService) GetAlimentatie(ctx context.Context, userId, dossierId uint) (*dto.AlimentatieResponse, error) {
	if _, err := s.accessService.RequireDossierAccess(ctx, dossierId, userId); err != nil {
		return nil, err
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	alimentatie, err := s.findAlimentatie(ctx, uow, dossierId)
	if err != nil {
		return nil, err
	}
	return s.planMapper.AlimentatieToResponse(alimentatie), nil
}

func (s *ouderschapsplanService) UpsertAlimentatie(ctx context.Context, userId, dossierId uint, req *dto.AlimentatieRequest) (*dto.AlimentatieResponse, bool, error) {
	if _, err := s.accessService.RequireDossierAccess(ctx, dossierId, userId); err != nil {
		return nil, false, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.AlimentatieRepository()

	alimentatie, err := repo.FindOneWithLines(ctx, dossierId)
	if err != nil {
		return nil, false, err
	}

	created := alimentatie == nil
	if created {
		alimentatie = &model.Alimentatie{DossierId: dossierId}
	}
	s.planMapper.ApplyAlimentatie(alimentatie, req)

	if created {
		err = repo.Create(ctx, alimentatie)
	} else {
		err = repo.Update(ctx, alimentatie)
	}
	if err != nil {
		return nil, false, err
	}
	return s.planMapper.AlimentatieToResponse(alimentatie), created, nil
}

func (s *ouderschapsplanService) ReplaceBijdragen(ctx context.Context, userId, dossierId uint, req *dto.BijdragenRequest) (*dto.AlimentatieResponse, error) {
	if _, err := s.accessService.RequireDossierAccess(ctx, dossierId, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	alimentatie, err := s.findAlimentatie(ctx, uow, dossierId)
	if err != nil {
		return nil, err
	}

	rows := make([]*model.BijdrageKostenKinderen, 0, len(req.Bijdragen))
	for i, b := range req.Bijdragen {
		count, err := uow.PartijRepository().Count(ctx,
			specification.ByDossierID{DossierID: dossierId},
			specification.ByPersoonID{PersoonID: b.PersoonId},
		)
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, apperror.BadRequest(fmt.Sprintf("bijdragen[%d].persoonId: not a partij of this dossier", i))
		}
		rows = append(rows, &model.BijdrageKostenKinderen{PersoonId: b.PersoonId, EigenAandeel: b.EigenAandeel})
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.AlimentatieRepository().ReplaceBijdragen(ctx, alimentatie.Id, rows); err != nil {
		return nil, err
	}
	return s.reloadAndCommit(ctx, uow, dossierId)
}

func (s *ouderschapsplanService) ReplaceFinancieleAfspraken(ctx context.Context, userId, dossierId uint, req *dto.FinancieleAfsprakenRequest) (*dto.AlimentatieResponse, error) {
	if _, err := s.accessService.RequireDossierAccess(ctx, dossierId, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	alimentatie, err := s.findAlimentatie(ctx, uow, dossierId)
	if err != nil {
		return nil, err
	}

	rows := make([]*model.FinancieleAfsprakenKinderen, 0, len(req.Afspraken))
	for i, a := range req.Afspraken {
		count, err := uow.DossierKindRepository().Count(ctx,
			specification.ByDossierID{DossierID: dossierId},
			specification.ByKindID{KindID: a.KindId},
		)
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, apperror.BadRequest(fmt.Sprintf("afspraken[%d].kindId: not a kind of this dossier", i))
		}
		rows = append(rows, &model.FinancieleAfsprakenKinderen{
			KindId:                 a.KindId,
			AlimentatieBedrag:      a.AlimentatieBedrag,
			Hoofdverblijf:          a.Hoofdverblijf,
			KinderbijslagOntvanger: a.KinderbijslagOntvanger,
			ZorgkortingPercentage:  a.ZorgkortingPercentage,
			AlimentatieGaatNaar:    a.AlimentatieGaatNaar,
		})
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.AlimentatieRepository().ReplaceFinancieleAfspraken(ctx, alimentatie.Id, rows); err != nil {
		return nil, err
	}
	return s.reloadAndCommit(ctx, uow, dossierId)
}

func (s *ouderschapsplanService) reloadAndCommit(ctx context.Context, uow unitofwork.UnitOfWork, dossierId uint) (*dto.AlimentatieResponse, error) {
	alimentatie, err := s.findAlimentatie(ctx, uow, dossierId)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return s.planMapper.AlimentatieToResponse(alimentatie), nil
}
