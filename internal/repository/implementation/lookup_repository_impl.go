package implementation

import (
	"context"
	"errors"

	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/internal/repository/contract"

	"gorm.io/gorm"
)

type LookupRepositoryImpl struct {
	db *gorm.DB
}

func NewLookupRepository(db *gorm.DB) contract.LookupRepository {
	return &LookupRepositoryImpl{db: db}
}

func findAllOrdered[T any](ctx context.Context, db *gorm.DB, order string) ([]T, error) {
	rows := []T{}
	err := db.WithContext(ctx).Order(order).Find(&rows).Error
	return rows, err
}

func (r *LookupRepositoryImpl) Rollen(ctx context.Context) ([]model.Rol, error) {
	return findAllOrdered[model.Rol](ctx, r.db, "id")
}

func (r *LookupRepositoryImpl) Dagen(ctx context.Context) ([]model.Dag, error) {
	return findAllOrdered[model.Dag](ctx, r.db, "id")
}

func (r *LookupRepositoryImpl) Dagdelen(ctx context.Context) ([]model.Dagdeel, error) {
	return findAllOrdered[model.Dagdeel](ctx, r.db, "id")
}

func (r *LookupRepositoryImpl) WeekRegelingen(ctx context.Context) ([]model.WeekRegeling, error) {
	return findAllOrdered[model.WeekRegeling](ctx, r.db, "id")
}

func (r *LookupRepositoryImpl) ZorgCategorieen(ctx context.Context) ([]model.ZorgCategorie, error) {
	return findAllOrdered[model.ZorgCategorie](ctx, r.db, "id")
}

func (r *LookupRepositoryImpl) ZorgSituaties(ctx context.Context, categorieId *uint) ([]model.ZorgSituatie, error) {
	db := r.db
	if categorieId != nil {
		db = db.Where("zorg_categorie_id = ?", *categorieId)
	}
	return findAllOrdered[model.ZorgSituatie](ctx, db, "id")
}

func (r *LookupRepositoryImpl) Schoolvakanties(ctx context.Context) ([]model.Schoolvakantie, error) {
	return findAllOrdered[model.Schoolvakantie](ctx, r.db, "start_datum, id")
}

func (r *LookupRepositoryImpl) RegelingTemplates(ctx context.Context, filter contract.RegelingTemplateFilter) ([]model.RegelingTemplate, error) {
	db := r.db
	if filter.Type != "" {
		db = db.Where("type = ?", filter.Type)
	}
	if filter.Meervoud != nil {
		db = db.Where("meervoud = ?", *filter.Meervoud)
	}
	return findAllOrdered[model.RegelingTemplate](ctx, db, "sort_order, id")
}

func (r *LookupRepositoryImpl) RelatieTypes(ctx context.Context) ([]model.RelatieType, error) {
	return findAllOrdered[model.RelatieType](ctx, r.db, "id")
}

func (r *LookupRepositoryImpl) Exists(ctx context.Context, row interface{}, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(row).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *LookupRepositoryImpl) FindZorgSituatie(ctx context.Context, id uint) (*model.ZorgSituatie, error) {
	var situatie model.ZorgSituatie
	if err := r.db.WithContext(ctx).First(&situatie, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &situatie, nil
}
