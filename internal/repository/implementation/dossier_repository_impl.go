package implementation

import (
	"context"

	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/internal/repository/cascade"
	"ouderschapsplan-api/internal/repository/contract"
	"ouderschapsplan-api/internal/repository/scope"

	"gorm.io/gorm"
)

var dossierGraph = cascade.DossierGraph()

type DossierRepositoryImpl struct {
	baseRepository[model.Dossier]
}

func NewDossierRepository(db *gorm.DB) contract.DossierRepository {
	return &DossierRepositoryImpl{baseRepository[model.Dossier]{db: db}}
}

func (r *DossierRepositoryImpl) FindAllByUser(ctx context.Context, userId uint) ([]*model.Dossier, error) {
	var dossiers []*model.Dossier
	err := r.db.WithContext(ctx).
		Where("gebruiker_id = ?", userId).
		Scopes(scope.OrderByCreatedDesc).
		Find(&dossiers).Error
	return dossiers, err
}

func (r *DossierRepositoryImpl) DeleteCascade(ctx context.Context, dossierId uint) (cascade.Report, error) {
	return dossierGraph.Delete(ctx, r.db, dossierId)
}

type PersoonRepositoryImpl struct {
	baseRepository[model.Persoon]
}

func NewPersoonRepository(db *gorm.DB) contract.PersoonRepository {
	return &PersoonRepositoryImpl{baseRepository[model.Persoon]{db: db}}
}

type PartijRepositoryImpl struct {
	baseRepository[model.Partij]
}

func NewPartijRepository(db *gorm.DB) contract.PartijRepository {
	return &PartijRepositoryImpl{baseRepository[model.Partij]{db: db}}
}

func (r *PartijRepositoryImpl) FindAllByDossier(ctx context.Context, dossierId uint) ([]*model.Partij, error) {
	var partijen []*model.Partij
	err := r.db.WithContext(ctx).
		Preload("Persoon").
		Preload("Rol").
		Where("dossier_id = ?", dossierId).
		Scopes(scope.OrderByID).
		Find(&partijen).Error
	return partijen, err
}

func (r *PartijRepositoryImpl) FindOneWithRelations(ctx context.Context, id uint) (*model.Partij, error) {
	var partijen []*model.Partij
	err := r.db.WithContext(ctx).
		Preload("Persoon").
		Preload("Rol").
		Where("id = ?", id).
		Limit(1).
		Find(&partijen).Error
	if err != nil || len(partijen) == 0 {
		return nil, err
	}
	return partijen[0], nil
}

type DossierKindRepositoryImpl struct {
	baseRepository[model.DossierKind]
}

func NewDossierKindRepository(db *gorm.DB) contract.DossierKindRepository {
	return &DossierKindRepositoryImpl{baseRepository[model.DossierKind]{db: db}}
}

func (r *DossierKindRepositoryImpl) FindAllByDossier(ctx context.Context, dossierId uint) ([]*model.DossierKind, error) {
	var kinderen []*model.DossierKind
	err := r.db.WithContext(ctx).
		Preload("Kind").
		Where("dossier_id = ?", dossierId).
		Scopes(scope.OrderByID).
		Find(&kinderen).Error
	return kinderen, err
}

func (r *DossierKindRepositoryImpl) FindOneWithKind(ctx context.Context, id uint) (*model.DossierKind, error) {
	var kinderen []*model.DossierKind
	err := r.db.WithContext(ctx).
		Preload("Kind").
		Where("id = ?", id).
		Limit(1).
		Find(&kinderen).Error
	if err != nil || len(kinderen) == 0 {
		return nil, err
	}
	return kinderen[0], nil
}

type KindOuderRepositoryImpl struct {
	baseRepository[model.KindOuder]
}

func NewKindOuderRepository(db *gorm.DB) contract.KindOuderRepository {
	return &KindOuderRepositoryImpl{baseRepository[model.KindOuder]{db: db}}
}

func (r *KindOuderRepositoryImpl) FindAllByKinderen(ctx context.Context, kindIds []uint) ([]*model.KindOuder, error) {
	var relaties []*model.KindOuder
	if len(kindIds) == 0 {
		return relaties, nil
	}
	err := r.db.WithContext(ctx).
		Preload("Ouder").
		Preload("RelatieType").
		Where("kind_id IN ?", kindIds).
		Scopes(scope.OrderByID).
		Find(&relaties).Error
	return relaties, err
}
