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

const msgSlotTaken = "This time slot already has a verzorger"

type IOmgangService interface {
	List(ctx context.Context, userId, dossierId uint, query dto.OmgangQuery) ([]dto.OmgangResponse, error)
	Create(ctx context.Context, userId, dossierId uint, req *dto.CreateOmgangRequest) (*dto.OmgangResponse, error)
	Update(ctx context.Context, userId uint, params dto.OmgangParams, req *dto.UpdateOmgangRequest) (*dto.OmgangResponse, error)
	Delete(ctx context.Context, userId uint, params dto.OmgangParams) error
	ReplaceWeek(ctx context.Context, userId, dossierId uint, req *dto.ReplaceWeekRequest) ([]dto.OmgangResponse, error)
}

type omgangService struct {
	uowFactory    unitofwork.RepositoryFactory
	accessService IAccessService
	omgangMapper  *mapper.OmgangMapper
}

func NewOmgangService(uowFactory unitofwork.RepositoryFactory, accessService IAccessService) IOmgangService {
	return &omgangService{
		uowFactory:    uowFactory,
		accessService: accessService,
		omgangMapper:  mapper.NewOmgangMapper(),
	}
}

func (s *omgangService) List(ctx context.Context, userId, dossierId uint, query dto.OmgangQuery) ([]dto.OmgangResponse, error) {
	if _, err := s.accessService.RequireDossierAccess(ctx, dossierId, userId); err != nil {
		return nil, err
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.OmgangRepository().FindAllWithRelations(ctx, dossierId, query.WeekRegelingId)
	if err != nil {
		return nil, err
	}
	return s.omgangMapper.OmgangenToResponse(rows), nil
}

// validateRefs checks the lookup ids and that the verzorger is a partij of
// the dossier.
func (s *omgangService) validateRefs(ctx context.Context, uow unitofwork.UnitOfWork, row *model.Omgang) error {
	refs := []struct {
		field string
		model interface{}
		id    uint
	}{
		{"dagId", &model.Dag{}, row.DagId},
		{"dagdeelId", &model.Dagdeel{}, row.DagdeelId},
		{"weekRegelingId", &model.WeekRegeling{}, row.WeekRegelingId},
	}
	for _, ref := range refs {
		exists, err := uow.LookupRepository().Exists(ctx, ref.model, ref.id)
		if err != nil {
			return err
		}
		if !exists {
			return apperror.BadRequest(fmt.Sprintf("%s: unknown value %d", ref.field, ref.id))
		}
	}
	return s.requireVerzorger(ctx, uow, row.DossierId, row.VerzorgerId)
}

func (s *omgangService) requireVerzorger(ctx context.Context, uow unitofwork.UnitOfWork, dossierId, verzorgerId uint) error {
	count, err := uow.PartijRepository().Count(ctx,
		specification.ByDossierID{DossierID: dossierId},
		specification.ByPersoonID{PersoonID: verzorgerId},
	)
	if err != nil {
		return err
	}
	if count == 0 {
		return apperror.BadRequest("verzorgerId: verzorger must be a partij of this dossier")
	}
	return nil
}

func (s *omgangService) withRelations(ctx context.Context, uow unitofwork.UnitOfWork, row *model.Omgang) (*dto.OmgangResponse, error) {
	rows, err := uow.OmgangRepository().FindAllWithRelations(ctx, row.DossierId, &row.WeekRegelingId)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if r.Id == row.Id {
			res := s.omgangMapper.OmgangToResponse(r)
			return &res, nil
		}
	}
	res := s.omgangMapper.OmgangToResponse(row)
	return &res, nil
}

func (s *omgangService) Create(ctx context.Context, userId, dossierId uint, req *dto.CreateOmgangRequest) (*dto.OmgangResponse, error) {
	if _, err := s.accessService.RequireDossierAccess(ctx, dossierId, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	row := &model.Omgang{
		DossierId:          dossierId,
		DagId:              req.DagId,
		DagdeelId:          req.DagdeelId,
		WeekRegelingId:     req.WeekRegelingId,
		VerzorgerId:        req.VerzorgerId,
		WisselTijd:         req.WisselTijd,
		WeekRegelingAnders: req.WeekRegelingAnders,
	}
	if err := s.validateRefs(ctx, uow, row); err != nil {
		return nil, err
	}

	taken, err := uow.OmgangRepository().SlotTaken(ctx, row)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.Conflict(msgSlotTaken)
	}

	if err := uow.OmgangRepository().Create(ctx, row); err != nil {
		return nil, err
	}
	return s.withRelations(ctx, uow, row)
}

func (s *omgangService) findOmgang(ctx context.Context, uow unitofwork.UnitOfWork, params dto.OmgangParams) (*model.Omgang, error) {
	row, err := uow.OmgangRepository().FindOne(ctx,
		specification.ByID{ID: params.OmgangId},
		specification.ByDossierID{DossierID: params.DossierId},
	)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperror.NotFound("Omgang not found")
	}
	return row, nil
}

func (s *omgangService) Update(ctx context.Context, userId uint, params dto.OmgangParams, req *dto.UpdateOmgangRequest) (*dto.OmgangResponse, error) {
	if _, err := s.accessService.RequireDossierAccess(ctx, params.DossierId, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	row, err := s.findOmgang(ctx, uow, params)
	if err != nil {
		return nil, err
	}

	if req.DagId != nil {
		row.DagId = *req.DagId
	}
	if req.DagdeelId != nil {
		row.DagdeelId = *req.DagdeelId
	}
	if req.WeekRegelingId != nil {
		row.WeekRegelingId = *req.WeekRegelingId
	}
	if req.VerzorgerId != nil {
		row.VerzorgerId = *req.VerzorgerId
	}
	if req.WisselTijd != nil {
		row.WisselTijd = *req.WisselTijd
	}
	if req.WeekRegelingAnders != nil {
		row.WeekRegelingAnders = *req.WeekRegelingAnders
	}

	if err := s.validateRefs(ctx, uow, row); err != nil {
		return nil, err
	}
	taken, err := uow.OmgangRepository().SlotTaken(ctx, row)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.Conflict(msgSlotTaken)
	}

	if err := uow.OmgangRepository().Update(ctx, row); err != nil {
		return nil, err
	}
	return s.withRelations(ctx, uow, row)
}

func (s *omgangService) Delete(ctx context.Context, userId uint, params dto.OmgangParams) error {
	if _, err := s.accessService.RequireDossierAccess(ctx, params.DossierId, userId); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	removed, err := uow.OmgangRepository().Delete(ctx,
		specification.ByID{ID: params.OmgangId},
		specification.ByDossierID{DossierID: params.DossierId},
	)
	if err != nil {
		return err
	}
	if removed == 0 {
		return apperror.NotFound("Omgang not found")
	}
	return nil
}

// ReplaceWeek swaps every slot of one week regeling for the given entries in
// a single transaction.
func (s *omgangService) ReplaceWeek(ctx context.Context, userId, dossierId uint, req *dto.ReplaceWeekRequest) ([]dto.OmgangResponse, error) {
	if _, err := s.accessService.RequireDossierAccess(ctx, dossierId, userId); err != nil {
		return nil, err
	}

	type slot struct{ dag, dagdeel uint }
	seen := make(map[slot]bool, len(req.Entries))
	rows := make([]*model.Omgang, 0, len(req.Entries))
	for _, e := range req.Entries {
		key := slot{e.DagId, e.DagdeelId}
		if seen[key] {
			return nil, apperror.Conflict(fmt.Sprintf("Duplicate slot for dag %d dagdeel %d", e.DagId, e.DagdeelId))
		}
		seen[key] = true
		rows = append(rows, &model.Omgang{
			DossierId:          dossierId,
			DagId:              e.DagId,
			DagdeelId:          e.DagdeelId,
			WeekRegelingId:     req.WeekRegelingId,
			VerzorgerId:        e.VerzorgerId,
			WisselTijd:         e.WisselTijd,
			WeekRegelingAnders: req.WeekRegelingAnders,
		})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	exists, err := uow.LookupRepository().Exists(ctx, &model.WeekRegeling{}, req.WeekRegelingId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.BadRequest(fmt.Sprintf("weekRegelingId: unknown value %d", req.WeekRegelingId))
	}
	for _, row := range rows {
		if err := s.validateRefs(ctx, uow, row); err != nil {
			return nil, err
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if _, err := uow.OmgangRepository().Delete(ctx,
		specification.ByDossierID{DossierID: dossierId},
		specification.ByWeekRegelingID{WeekRegelingID: req.WeekRegelingId},
	); err != nil {
		return nil, err
	}
	if err := uow.OmgangRepository().CreateBulk(ctx, rows); err != nil {
		return nil, err
	}

	saved, err := uow.OmgangRepository().FindAllWithRelations(ctx, dossierId, &req.WeekRegelingId)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return s.omgangMapper.OmgangenToResponse(saved), nil
}
