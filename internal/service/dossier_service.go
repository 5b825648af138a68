package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"ouderschapsplan-api/internal/dto"
	"ouderschapsplan-api/internal/mapper"
	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/internal/pkg/apperror"
	"ouderschapsplan-api/internal/pkg/logger"
	"ouderschapsplan-api/internal/repository/specification"
	"ouderschapsplan-api/internal/repository/unitofwork"
	"ouderschapsplan-api/pkg/database"
	"ouderschapsplan-api/pkg/events"

	"golang.org/x/sync/errgroup"
)

const (
	defaultTemplateType   = "ouderschapsplan"
	dossierNummerAttempts = 5
)

type IDossierService interface {
	List(ctx context.Context, userId uint) ([]*dto.DossierResponse, error)
	Create(ctx context.Context, userId uint, req *dto.CreateDossierRequest) (*dto.DossierResponse, error)
	Show(ctx context.Context, userId, dossierId uint) (*dto.DossierDetailResponse, error)
	Update(ctx context.Context, userId, dossierId uint, req *dto.UpdateDossierRequest) (*dto.DossierResponse, error)
	Delete(ctx context.Context, userId, dossierId uint) error
}

type dossierService struct {
	uowFactory       unitofwork.RepositoryFactory
	accessService    IAccessService
	publisherService IPublisherService
	dossierMapper    *mapper.DossierMapper
	logger           logger.ILogger
	now              func() time.Time
}

func NewDossierService(
	uowFactory unitofwork.RepositoryFactory,
	accessService IAccessService,
	publisherService IPublisherService,
	log logger.ILogger,
) IDossierService {
	return &dossierService{
		uowFactory:       uowFactory,
		accessService:    accessService,
		publisherService: publisherService,
		dossierMapper:    mapper.NewDossierMapper(),
		logger:           log,
		now:              time.Now,
	}
}

func (s *dossierService) List(ctx context.Context, userId uint) ([]*dto.DossierResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	dossiers, err := uow.DossierRepository().FindAllByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	return s.dossierMapper.ToResponses(dossiers), nil
}

// generateNummer formats DOS-<yyyymmdd>-<4 digits>.
func (s *dossierService) generateNummer() string {
	return fmt.Sprintf("DOS-%s-%04d", s.now().Format("20060102"), rand.Intn(10000))
}

func (s *dossierService) Create(ctx context.Context, userId uint, req *dto.CreateDossierRequest) (*dto.DossierResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.DossierRepository()

	templateType := req.TemplateType
	if templateType == "" {
		templateType = defaultTemplateType
	}

	for attempt := 0; attempt < dossierNummerAttempts; attempt++ {
		nummer := s.generateNummer()
		taken, err := repo.Count(ctx, specification.ByDossierNummer{Nummer: nummer})
		if err != nil {
			return nil, err
		}
		if taken > 0 {
			continue
		}

		dossier := &model.Dossier{
			DossierNummer: nummer,
			GebruikerId:   userId,
			Status:        false,
			IsAnoniem:     req.IsAnoniem,
			TemplateType:  templateType,
		}
		if err := repo.Create(ctx, dossier); err != nil {
			if database.IsUniqueViolation(err) {
				continue
			}
			return nil, err
		}

		s.logger.Info("DOSSIER", "Dossier created", map[string]interface{}{
			"dossier_id":     dossier.Id,
			"dossier_nummer": dossier.DossierNummer,
			"gebruiker_id":   userId,
		})
		return s.dossierMapper.ToResponse(dossier), nil
	}

	return nil, apperror.Internal("Could not generate a unique dossier number", nil)
}

// Show loads partijen and kinderen concurrently once access is confirmed.
func (s *dossierService) Show(ctx context.Context, userId, dossierId uint) (*dto.DossierDetailResponse, error) {
	dossier, err := s.accessService.RequireDossierAccess(ctx, dossierId, userId)
	if err != nil {
		return nil, err
	}

	var (
		partijen []*model.Partij
		kinderen []*model.DossierKind
		relaties []*model.KindOuder
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		partijen, err = s.uowFactory.NewUnitOfWork(gctx).PartijRepository().FindAllByDossier(gctx, dossierId)
		return err
	})
	g.Go(func() error {
		uow := s.uowFactory.NewUnitOfWork(gctx)
		var err error
		kinderen, err = uow.DossierKindRepository().FindAllByDossier(gctx, dossierId)
		if err != nil {
			return err
		}
		kindIds := make([]uint, 0, len(kinderen))
		for _, k := range kinderen {
			kindIds = append(kindIds, k.KindId)
		}
		relaties, err = uow.KindOuderRepository().FindAllByKinderen(gctx, kindIds)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.DossierDetailResponse{
		DossierResponse: *s.dossierMapper.ToResponse(dossier),
		Partijen:        s.dossierMapper.PartijenToResponse(partijen),
		Kinderen:        s.dossierMapper.KinderenToResponse(kinderen, relaties),
	}, nil
}

func (s *dossierService) Update(ctx context.Context, userId, dossierId uint, req *dto.UpdateDossierRequest) (*dto.DossierResponse, error) {
	dossier, err := s.accessService.RequireDossierAccess(ctx, dossierId, userId)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		dossier.Status = *req.Status
	}
	if req.IsAnoniem != nil {
		dossier.IsAnoniem = *req.IsAnoniem
	}
	if req.TemplateType != nil {
		dossier.TemplateType = *req.TemplateType
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.DossierRepository().Update(ctx, dossier); err != nil {
		return nil, err
	}
	return s.dossierMapper.ToResponse(dossier), nil
}

// Delete removes the dossier and all dependent rows in one transaction.
func (s *dossierService) Delete(ctx context.Context, userId, dossierId uint) error {
	if _, err := s.accessService.RequireDossierOwner(ctx, dossierId, userId); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to delete dossier %d: %w", dossierId, err)
	}
	defer uow.Rollback()

	report, err := uow.DossierRepository().DeleteCascade(ctx, dossierId)
	if err != nil {
		s.logger.Error("DOSSIER", "Cascade delete failed, rolled back", map[string]interface{}{
			"dossier_id": dossierId,
			"error":      err.Error(),
		})
		return fmt.Errorf("failed to delete dossier %d: %w", dossierId, err)
	}

	for _, step := range report.Steps {
		s.logger.Info("DOSSIER", "Deleted dependent rows", map[string]interface{}{
			"dossier_id": dossierId,
			"table":      step.Table,
			"rows":       step.Rows,
		})
	}

	if report.Rows("dossiers") < 1 {
		return apperror.NotFound("Dossier not found")
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to delete dossier %d: %w", dossierId, err)
	}

	publishAfterCommit(ctx, s.publisherService, events.New(events.DossierDeleted, map[string]interface{}{
		"dossierId":   dossierId,
		"gebruikerId": userId,
	}))
	return nil
}
