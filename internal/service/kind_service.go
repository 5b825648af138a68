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

const (
	msgSelfParent     = "A person cannot be their own parent"
	msgKindLinked     = "Child is already linked to this dossier"
	msgRelationExists = "This parent relation already exists"
	msgKindNotFound   = "Kind not found in dossier"
)

type IKindService interface {
	List(ctx context.Context, userId, dossierId uint) ([]dto.KindResponse, error)
	Create(ctx context.Context, userId, dossierId uint, req *dto.CreateKindRequest) (*dto.KindResponse, error)
	Update(ctx context.Context, userId uint, params dto.DossierKindParams, req *dto.UpdateKindRequest) (*dto.KindResponse, error)
	Delete(ctx context.Context, userId uint, params dto.DossierKindParams) error
	AddOuder(ctx context.Context, userId uint, params dto.KindParams, req *dto.AddOuderRequest) (*dto.OuderRelatieResponse, error)
	RemoveOuder(ctx context.Context, userId uint, params dto.KindOuderParams) error
}

type kindService struct {
	uowFactory    unitofwork.RepositoryFactory
	accessService IAccessService
	dossierMapper *mapper.DossierMapper
	persoonMapper *mapper.PersoonMapper
}

func NewKindService(uowFactory unitofwork.RepositoryFactory, accessService IAccessService) IKindService {
	return &kindService{
		uowFactory:    uowFactory,
		accessService: accessService,
		dossierMapper: mapper.NewDossierMapper(),
		persoonMapper: mapper.NewPersoonMapper(),
	}
}

func (s *kindService) List(ctx context.Context, userId, dossierId uint) ([]dto.KindResponse, error) {
	if _, err := s.accessService.RequireDossierAccess(ctx, dossierId, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	kinderen, err := uow.DossierKindRepository().FindAllByDossier(ctx, dossierId)
	if err != nil {
		return nil, err
	}
	return s.withOuders(ctx, uow, kinderen)
}

func (s *kindService) withOuders(ctx context.Context, uow unitofwork.UnitOfWork, kinderen []*model.DossierKind) ([]dto.KindResponse, error) {
	kindIds := make([]uint, 0, len(kinderen))
	for _, k := range kinderen {
		kindIds = append(kindIds, k.KindId)
	}
	relaties, err := uow.KindOuderRepository().FindAllByKinderen(ctx, kindIds)
	if err != nil {
		return nil, err
	}
	return s.dossierMapper.KinderenToResponse(kinderen, relaties), nil
}

func (s *kindService) single(ctx context.Context, uow unitofwork.UnitOfWork, dossierKindId uint) (*dto.KindResponse, error) {
	link, err := uow.DossierKindRepository().FindOneWithKind(ctx, dossierKindId)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, apperror.NotFound(msgKindNotFound)
	}
	res, err := s.withOuders(ctx, uow, []*model.DossierKind{link})
	if err != nil {
		return nil, err
	}
	return &res[0], nil
}

func (s *kindService) Create(ctx context.Context, userId, dossierId uint, req *dto.CreateKindRequest) (*dto.KindResponse, error) {
	if _, err := s.accessService.RequireDossierAccess(ctx, dossierId, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if req.KindId != nil {
		kind, err := uow.PersoonRepository().FindOne(ctx, specification.ByID{ID: *req.KindId})
		if err != nil {
			return nil, err
		}
		if kind == nil {
			return nil, apperror.NotFound("Persoon not found")
		}
		linked, err := uow.DossierKindRepository().Count(ctx,
			specification.ByDossierID{DossierID: dossierId},
			specification.ByKindID{KindID: kind.Id},
		)
		if err != nil {
			return nil, err
		}
		if linked > 0 {
			return nil, apperror.Conflict(msgKindLinked)
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	var kindId uint
	if req.KindId != nil {
		kindId = *req.KindId
	} else {
		kind := s.persoonMapper.ToModel(req.Kind)
		kind.GebruikerId = &userId
		if err := uow.PersoonRepository().Create(ctx, kind); err != nil {
			return nil, err
		}
		kindId = kind.Id
	}

	link := &model.DossierKind{DossierId: dossierId, KindId: kindId}
	if err := uow.DossierKindRepository().Create(ctx, link); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperror.Conflict(msgKindLinked)
		}
		return nil, err
	}

	res, err := s.single(ctx, uow, link.Id)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *kindService) findLink(ctx context.Context, uow unitofwork.UnitOfWork, params dto.DossierKindParams) (*model.DossierKind, error) {
	link, err := uow.DossierKindRepository().FindOne(ctx,
		specification.ByID{ID: params.DossierKindId},
		specification.ByDossierID{DossierID: params.DossierId},
	)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, apperror.NotFound(msgKindNotFound)
	}
	return link, nil
}

func (s *kindService) Update(ctx context.Context, userId uint, params dto.DossierKindParams, req *dto.UpdateKindRequest) (*dto.KindResponse, error) {
	if _, err := s.accessService.RequireDossierAccess(ctx, params.DossierId, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	link, err := s.findLink(ctx, uow, params)
	if err != nil {
		return nil, err
	}

	kind, err := uow.PersoonRepository().FindOne(ctx, specification.ByID{ID: link.KindId})
	if err != nil {
		return nil, err
	}
	if kind == nil {
		return nil, apperror.NotFound("Persoon not found")
	}
	s.persoonMapper.Apply(kind, &req.Kind)
	if err := uow.PersoonRepository().Update(ctx, kind); err != nil {
		return nil, err
	}
	return s.single(ctx, uow, link.Id)
}

// Delete unlinks the child from the dossier; the persoon row stays.
func (s *kindService) Delete(ctx context.Context, userId uint, params dto.DossierKindParams) error {
	if _, err := s.accessService.RequireDossierAccess(ctx, params.DossierId, userId); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	removed, err := uow.DossierKindRepository().Delete(ctx,
		specification.ByID{ID: params.DossierKindId},
		specification.ByDossierID{DossierID: params.DossierId},
	)
	if err != nil {
		return err
	}
	if removed == 0 {
		return apperror.NotFound(msgKindNotFound)
	}
	return nil
}

func (s *kindService) requireKindInDossier(ctx context.Context, uow unitofwork.UnitOfWork, dossierId, kindId uint) error {
	linked, err := uow.DossierKindRepository().Count(ctx,
		specification.ByDossierID{DossierID: dossierId},
		specification.ByKindID{KindID: kindId},
	)
	if err != nil {
		return err
	}
	if linked == 0 {
		return apperror.NotFound(msgKindNotFound)
	}
	return nil
}

// AddOuder links a parent to a child of the dossier. The parent is an existing
// persoon or is created from the inline data.
func (s *kindService) AddOuder(ctx context.Context, userId uint, params dto.KindParams, req *dto.AddOuderRequest) (*dto.OuderRelatieResponse, error) {
	ouderId := req.OuderId
	if ouderId == nil && req.Ouder != nil && req.Ouder.Id != nil {
		ouderId = req.Ouder.Id
	}

	if _, err := s.accessService.RequireDossierAccess(ctx, params.DossierId, userId); err != nil {
		return nil, err
	}
	if ouderId != nil && *ouderId == params.KindId {
		return nil, apperror.BadRequest(msgSelfParent)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.requireKindInDossier(ctx, uow, params.DossierId, params.KindId); err != nil {
		return nil, err
	}

	exists, err := uow.LookupRepository().Exists(ctx, &model.RelatieType{}, req.RelatieTypeId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.BadRequest("relatieTypeId: unknown relation type")
	}

	if ouderId != nil {
		ouder, err := uow.PersoonRepository().FindOne(ctx, specification.ByID{ID: *ouderId})
		if err != nil {
			return nil, err
		}
		if ouder == nil {
			return nil, apperror.NotFound("Ouder not found")
		}
		count, err := uow.KindOuderRepository().Count(ctx,
			specification.ByKindID{KindID: params.KindId},
			specification.ByOuderID{OuderID: ouder.Id},
		)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, apperror.Conflict(msgRelationExists)
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if ouderId == nil {
		input := req.Ouder.Persoon()
		persoon := s.persoonMapper.ToModel(&input)
		persoon.GebruikerId = &userId
		if err := uow.PersoonRepository().Create(ctx, persoon); err != nil {
			return nil, err
		}
		ouderId = &persoon.Id
	}

	relatie := &model.KindOuder{KindId: params.KindId, OuderId: *ouderId, RelatieTypeId: req.RelatieTypeId}
	if err := uow.KindOuderRepository().Create(ctx, relatie); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperror.Conflict(msgRelationExists)
		}
		return nil, err
	}

	relaties, err := uow.KindOuderRepository().FindAllByKinderen(ctx, []uint{params.KindId})
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	for _, r := range relaties {
		if r.Id == relatie.Id {
			res := s.dossierMapper.OuderToResponse(r)
			return &res, nil
		}
	}
	res := s.dossierMapper.OuderToResponse(relatie)
	return &res, nil
}

func (s *kindService) RemoveOuder(ctx context.Context, userId uint, params dto.KindOuderParams) error {
	if _, err := s.accessService.RequireDossierAccess(ctx, params.DossierId, userId); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.requireKindInDossier(ctx, uow, params.DossierId, params.KindId); err != nil {
		return err
	}

	removed, err := uow.KindOuderRepository().Delete(ctx,
		specification.ByKindID{KindID: params.KindId},
		specification.ByOuderID{OuderID: params.OuderId},
	)
	if err != nil {
		return err
	}
	if removed == 0 {
		return apperror.NotFound("Ouder relation not found")
	}
	return nil
}
